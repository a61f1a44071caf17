package cli

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/calegray/foyer/internal/ui"
)

func TestThemesCommandListsThemes(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := ""
	cmd := newThemesCmd(&path)
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("themes failed: %v", err)
	}
	for _, name := range ui.ThemeNames() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("themes output missing %q", name)
		}
	}
	if !strings.Contains(out.String(), "* Nightfox") {
		t.Error("default theme not marked as current")
	}
}

func TestReposCommandPrintsList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/calegray/repos" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `[
			{"name":"foyer","language":"Go","stargazers_count":3,"pushed_at":"2025-06-01T10:00:00Z"},
			{"name":"mirror","fork":true,"pushed_at":"2024-01-01T00:00:00Z"}
		]`)
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	cfg := fmt.Sprintf("github_user = %q\napi_base = %q\n", "calegray", srv.URL)
	if err := os.WriteFile(cfgPath, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	path := cfgPath
	cmd := newReposCmd(&path)
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.Execute(); err != nil {
		t.Fatalf("repos failed: %v", err)
	}
	if !strings.Contains(out.String(), "foyer") {
		t.Errorf("repos output missing repository:\n%s", out.String())
	}
	if strings.Contains(out.String(), "mirror") {
		t.Error("fork shown despite show_forks defaulting to false")
	}
}

func TestTuiLoggerDiscardsWithoutPath(t *testing.T) {
	logger, cleanup, err := tuiLogger("", false)
	if err != nil {
		t.Fatal(err)
	}
	defer cleanup()
	if logger == nil {
		t.Fatal("nil logger")
	}
	logger.Info("goes nowhere")
}

func TestTuiLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foyer.log")
	logger, cleanup, err := tuiLogger(path, true)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("hello", "k", "v")
	cleanup()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestLoggerFromContextFallsBack(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Fatal("nil logger from bare context")
	}
	attached := newLogger(os.Stderr, log.DebugLevel)
	ctx := withLogger(context.Background(), attached)
	if loggerFromContext(ctx) != attached {
		t.Error("attached logger not returned")
	}
}
