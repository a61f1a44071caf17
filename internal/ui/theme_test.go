package ui

import "testing"

func TestGetThemeKnownNames(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Errorf("GetTheme(%q).Name = %q", name, th.Name)
		}
	}
}

func TestGetThemeFallsBackToNightfox(t *testing.T) {
	th := GetTheme("NoSuchTheme")
	if th.Name != "Nightfox" {
		t.Errorf("fallback theme = %q, want Nightfox", th.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	names := ThemeNames()
	seen := map[string]bool{}
	current := names[0]
	for range names {
		seen[current] = true
		current = NextTheme(current)
	}
	if len(seen) != len(names) {
		t.Errorf("cycle visited %d themes, want %d", len(seen), len(names))
	}
	if current != names[0] {
		t.Errorf("cycle did not wrap: ended on %q", current)
	}
}

func TestNextThemeUnknownStartsOver(t *testing.T) {
	if got := NextTheme("NoSuchTheme"); got != ThemeNames()[0] {
		t.Errorf("NextTheme(unknown) = %q, want %q", got, ThemeNames()[0])
	}
}

func TestThemesCarryLanguageColors(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		for _, lang := range []string{"Go", "Rust", "Python", "TypeScript"} {
			if th.LangColors[lang] == "" {
				t.Errorf("theme %q has no color for %s", name, lang)
			}
		}
		if len(th.TagColors) == 0 {
			t.Errorf("theme %q has no tag colors", name)
		}
	}
}

func TestTagStyleCyclesGroups(t *testing.T) {
	st := GetTheme("Nightfox").Styles()
	// Group indexes beyond the palette wrap around instead of panicking.
	a := st.TagStyle(0, false)
	b := st.TagStyle(len(nightfoxTheme().TagColors), false)
	if a.GetForeground() != b.GetForeground() {
		t.Error("group color did not wrap around the palette")
	}
}

func TestLangStyleUnknownFallsBackToMuted(t *testing.T) {
	th := GetTheme("Slate")
	st := th.Styles()
	got := st.LangStyle("Befunge").GetForeground()
	want := st.MutedText.GetForeground()
	if got != want {
		t.Errorf("unknown language foreground = %v, want muted %v", got, want)
	}
}

func TestWithBackgroundKeepsDynamicPalettes(t *testing.T) {
	st := GetTheme("Kanagawa").Styles().WithBackground("#000000")
	if len(st.tagColors) == 0 {
		t.Error("WithBackground dropped tag colors")
	}
	if st.langColors["Go"] == "" {
		t.Error("WithBackground dropped language colors")
	}
}
