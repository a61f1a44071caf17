package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func testAvatar() *avatar {
	return &avatar{rng: rand.New(rand.NewSource(1))}
}

func TestGazeFollowsPointer(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		dx, dy int
	}{
		{"dead center", 6.5, 1.5, 0, 0},
		{"far right", 40, 1.5, 1, 0},
		{"far left", -20, 1.5, -1, 0},
		{"above", 6.5, -6, 0, -1},
		{"below", 6.5, 12, 0, 1},
		{"slightly right", 9, 1.5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testAvatar()
			a.setPosition(0, 0)
			a.pointerMoved(tt.px, tt.py)
			dx, dy := a.gaze()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("gaze = (%d, %d), want (%d, %d)", dx, dy, tt.dx, tt.dy)
			}
		})
	}
}

func TestGazeRestsWithoutPointer(t *testing.T) {
	a := testAvatar()
	a.setPosition(10, 5)
	a.pointerMoved(100, 100)
	a.pointerLeft()
	if dx, dy := a.gaze(); dx != 0 || dy != 0 {
		t.Errorf("gaze after pointerLeft = (%d, %d), want (0, 0)", dx, dy)
	}
}

func TestGazeTracksFacePosition(t *testing.T) {
	a := testAvatar()
	a.setPosition(60, 2)
	a.pointerMoved(0, 3.5) // far to the face's left
	if dx, _ := a.gaze(); dx != -1 {
		t.Errorf("dx = %d, want -1", dx)
	}
}

func TestSocketPlacesPupil(t *testing.T) {
	if got := socket(-1, 'o'); got != "o  " {
		t.Errorf("socket(-1) = %q", got)
	}
	if got := socket(0, 'o'); got != " o " {
		t.Errorf("socket(0) = %q", got)
	}
	if got := socket(1, 'o'); got != "  o" {
		t.Errorf("socket(1) = %q", got)
	}
}

func TestPupilGlyphs(t *testing.T) {
	if g := pupilGlyph(0, false); g != 'o' {
		t.Errorf("center glyph = %q", g)
	}
	if g := pupilGlyph(-1, false); g != '°' {
		t.Errorf("up glyph = %q", g)
	}
	if g := pupilGlyph(1, false); g != '.' {
		t.Errorf("down glyph = %q", g)
	}
	if g := pupilGlyph(0, true); g != '-' {
		t.Errorf("blink glyph = %q", g)
	}
}

func TestBlinkSchedule(t *testing.T) {
	a := testAvatar()
	t0 := time.Unix(0, 0)

	a.tick(t0)
	if a.blinking(t0) {
		t.Fatal("blinking immediately after first tick")
	}
	if a.blinkAt.Before(t0.Add(blinkMinGap)) || a.blinkAt.After(t0.Add(blinkMaxGap)) {
		t.Fatalf("first blink scheduled at %v, want within [3s, 7s]", a.blinkAt.Sub(t0))
	}

	// Past the scheduled time the blink fires and the next one is queued.
	fire := t0.Add(8 * time.Second)
	a.tick(fire)
	if !a.blinking(fire.Add(50 * time.Millisecond)) {
		t.Error("not blinking inside the blink window")
	}
	if a.blinking(fire.Add(blinkLen + time.Millisecond)) {
		t.Error("still blinking after the window")
	}
	if !a.blinkAt.After(fire) {
		t.Error("next blink not rescheduled")
	}
}

func TestRenderBlockShape(t *testing.T) {
	a := testAvatar()
	a.setPosition(0, 0)
	out := a.render(GetTheme("Nightfox").Styles(), time.Unix(0, 0))
	lines := strings.Split(out, "\n")
	if len(lines) != avatarHeight {
		t.Fatalf("render has %d lines, want %d", len(lines), avatarHeight)
	}
}
