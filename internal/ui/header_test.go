package ui

import (
	"errors"
	"testing"
)

func TestClassifyConnectionError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"dns", errors.New(`dial tcp: lookup api.github.com: no such host`), "HOST NOT FOUND"},
		{"timeout", errors.New("context deadline exceeded"), "TIMEOUT"},
		{"client timeout", errors.New("Client.Timeout exceeded while awaiting headers... timeout"), "TIMEOUT"},
		{"refused", errors.New("dial tcp 127.0.0.1:443: connection refused"), "OFFLINE"},
		{"other", errors.New("api /users/x/repos returned status 500"), "ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyConnectionError(tt.err); got != tt.want {
				t.Errorf("classifyConnectionError = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a longer description", 9); got != "a longer…" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abc", 1); got != "…" {
		t.Errorf("truncate to 1 = %q", got)
	}
}

func TestTruncateMiddle(t *testing.T) {
	if got := truncateMiddle("https://github.com/calegray/foyer", 100); got != "https://github.com/calegray/foyer" {
		t.Errorf("no-op truncate = %q", got)
	}
	got := truncateMiddle("https://github.com/calegray/foyer", 21)
	if got != "https://gi…gray/foyer" {
		t.Errorf("truncateMiddle = %q", got)
	}
}

func TestViewTitles(t *testing.T) {
	if viewTitle(ViewHome) != "Home" || viewTitle(ViewProjects) != "Projects" || viewTitle(ViewAbout) != "About" {
		t.Error("view titles wrong")
	}
}
