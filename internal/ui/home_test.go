package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/calegray/foyer/internal/config"
)

func testHomeConfig() *config.Config {
	return &config.Config{
		Name:     "Cale Gray",
		Role:     "Infrastructure engineer",
		Location: "Portland, OR",
		Tagline:  "I build small sharp tools and keep servers honest.",
		Tags: []config.TagGroup{
			{Title: "Tools", Labels: []string{"vim", "tmux"}},
			{Title: "Langs", Labels: []string{"go"}},
		},
	}
}

func TestHomeViewLineCount(t *testing.T) {
	v := newHomeView(testHomeConfig(), true)
	v.setArea(0, 1, 80, 22, time.Unix(0, 0))

	out := v.view(GetTheme("Nightfox").Styles(), time.Unix(10, 0))
	if got := len(strings.Split(out, "\n")); got != 22 {
		t.Errorf("home view has %d lines, want 22", got)
	}
}

func TestHomeViewLineCountDuringEntrance(t *testing.T) {
	v := newHomeView(testHomeConfig(), false)
	t0 := time.Unix(0, 0)
	v.setArea(0, 1, 80, 22, t0)

	// Mid-entrance some sections are hidden; the block must keep its
	// height so nothing jumps when they appear.
	out := v.view(GetTheme("Nightfox").Styles(), t0.Add(revealStagger))
	if got := len(strings.Split(out, "\n")); got != 22 {
		t.Errorf("home view has %d lines mid-entrance, want 22", got)
	}
	if !v.animating(t0.Add(revealStagger)) {
		t.Error("home not animating during entrance")
	}
}

func TestHomeViewShowsIdentity(t *testing.T) {
	v := newHomeView(testHomeConfig(), true)
	v.setArea(0, 1, 80, 22, time.Unix(0, 0))

	out := v.view(GetTheme("Nightfox").Styles(), time.Unix(10, 0))
	for _, want := range []string{"Cale Gray", "Infrastructure engineer", "Portland, OR", "vim", "Tools"} {
		if !strings.Contains(out, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestHomeMouseScattersAndLeaveRestores(t *testing.T) {
	v := newHomeView(testHomeConfig(), true)
	v.setArea(0, 1, 80, 22, time.Unix(0, 0))

	v.mouse(2, 12) // inside the tag field
	if v.field.settled() {
		t.Fatal("pointer inside the field did not scatter it")
	}

	v.leave()
	if !v.field.settled() {
		t.Error("leave did not put the field back")
	}
}

func TestHomeScatterToggle(t *testing.T) {
	v := newHomeView(testHomeConfig(), true)
	v.setArea(0, 1, 80, 22, time.Unix(0, 0))

	v.scatterToggle(true)
	if v.field.settled() {
		t.Fatal("toggle from settled did not scatter")
	}
	v.scatterToggle(true) // reduced motion restores instantly
	if !v.field.settled() {
		t.Error("toggle from scattered did not restore")
	}
}

func TestHomeNarrowWidthDropsAvatar(t *testing.T) {
	v := newHomeView(testHomeConfig(), true)
	v.setArea(0, 1, 24, 22, time.Unix(0, 0))
	if v.logoColumnWidth() != 0 {
		t.Error("narrow layout kept the avatar column")
	}

	out := v.view(GetTheme("Nightfox").Styles(), time.Unix(10, 0))
	if strings.Contains(out, "‿") {
		t.Error("narrow layout still renders the avatar")
	}
}
