package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/calegray/foyer/internal/config"
)

// Home view layout, top to bottom: a padding row, the wordmark with the
// avatar on the right, the identity lines, the tag field, and a hint row.
const (
	homeSections  = 4 // hero, identity, field, hint
	homeChromeTop = 10
)

const homeHint = "drift the pointer through the tags to scatter them; they find their own way back (s toggles)"

type homeView struct {
	cfg   *config.Config
	field *tagField
	face  *avatar
	entry reveal

	x, y          int
	width, height int
	fieldH        int
}

func newHomeView(cfg *config.Config, reduceMotion bool) *homeView {
	return &homeView{
		cfg:   cfg,
		field: newTagField(cfg.Tags, nil),
		face:  newAvatar(),
		entry: reveal{skip: reduceMotion},
	}
}

// setArea places the view at the absolute screen rectangle and starts
// the entrance on first sight.
func (v *homeView) setArea(x, y, w, h int, now time.Time) {
	v.x, v.y = x, y
	v.width, v.height = w, h
	v.fieldH = h - homeChromeTop - 1
	if v.fieldH < 1 {
		v.fieldH = 1
	}
	v.field.setArea(x+1, y+homeChromeTop, w-2, v.fieldH)
	if lw := v.logoColumnWidth(); lw > 0 {
		v.face.setPosition(x+1+lw, y+1)
	}
	v.entry.begin(now)
}

// logoColumnWidth is the hero's left column width, or 0 when there is no
// room for the avatar beside it.
func (v *homeView) logoColumnWidth() int {
	lw := v.width - 2 - avatarWidth
	if lw < logoWidth+2 {
		return 0
	}
	return lw
}

// mouse forwards an absolute pointer position to the avatar and the field.
func (v *homeView) mouse(mx, my int) {
	v.face.pointerMoved(float64(mx), float64(my))
	v.field.mouseMoved(mx, my)
}

// leave is called when the user switches away: any in-flight scatter is
// put back instantly so the view is whole when they return.
func (v *homeView) leave() {
	v.face.pointerLeft()
	v.field.pointerLeft()
	<-v.field.restore(false)
}

func (v *homeView) blur() {
	v.face.pointerLeft()
	v.field.blur()
}

func (v *homeView) focus() { v.field.focus() }

func (v *homeView) step() { v.field.step() }

func (v *homeView) tick(now time.Time) { v.face.tick(now) }

func (v *homeView) animating(now time.Time) bool {
	return v.field.active() ||
		v.entry.animating(homeSections, now) ||
		v.face.blinking(now)
}

// scatterToggle flips the field by keyboard: settled fields dismantle,
// anything else heads home.
func (v *homeView) scatterToggle(reduceMotion bool) {
	if v.field.settled() {
		v.field.dismantle()
		return
	}
	v.field.restore(!reduceMotion)
}

func (v *homeView) setReduceMotion(on bool) {
	v.entry.skip = on
}

func (v *homeView) view(st Styles, now time.Time) string {
	parts := make([]string, 0, 8)
	parts = append(parts, "")

	switch v.entry.phase(0, now) {
	case revealHidden:
		parts = append(parts, blankLines(avatarHeight))
	case revealFaint:
		parts = append(parts, padLeft(st.FaintText.Render(v.plainHero())))
	default:
		parts = append(parts, padLeft(v.hero(st, now)))
	}
	parts = append(parts, "")

	switch v.entry.phase(1, now) {
	case revealHidden:
		parts = append(parts, blankLines(3))
	case revealFaint:
		parts = append(parts, padLeft(st.FaintText.Render(v.plainIdentity())))
	default:
		parts = append(parts, padLeft(v.identity(st)))
	}
	parts = append(parts, "")

	if v.entry.phase(2, now) == revealHidden {
		parts = append(parts, blankLines(v.fieldH))
	} else {
		parts = append(parts, padLeft(v.field.render(st)))
	}

	if v.entry.phase(3, now) == revealHidden {
		parts = append(parts, "")
	} else {
		parts = append(parts, padLeft(st.FaintText.Render(homeHint)))
	}
	return strings.Join(parts, "\n")
}

// hero joins the wordmark and the avatar into one block, always
// avatarHeight lines so the layout below never shifts.
func (v *homeView) hero(st Styles, now time.Time) string {
	lw := v.logoColumnWidth()
	if lw == 0 {
		return lipgloss.NewStyle().Height(avatarHeight).Render(renderLogo(st))
	}
	left := lipgloss.NewStyle().Width(lw).Render(renderLogo(st))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, v.face.render(st, now))
}

func (v *homeView) plainHero() string {
	lw := v.logoColumnWidth()
	if lw == 0 {
		return lipgloss.NewStyle().Height(avatarHeight).Render(plainLogo())
	}
	left := lipgloss.NewStyle().Width(lw).Render(plainLogo())
	return lipgloss.JoinHorizontal(lipgloss.Top, left, plainAvatar())
}

func (v *homeView) identity(st Styles) string {
	name := st.Text.Bold(true).Render(v.cfg.Name)
	role := st.MutedText.Render("  ·  " + v.cfg.Role)
	return name + role + "\n" +
		st.MutedText.Render(v.cfg.Location) + "\n" +
		st.FaintText.Render(v.cfg.Tagline)
}

func (v *homeView) plainIdentity() string {
	return v.cfg.Name + "  ·  " + v.cfg.Role + "\n" +
		v.cfg.Location + "\n" +
		v.cfg.Tagline
}

// blankLines returns n empty lines.
func blankLines(n int) string {
	if n <= 1 {
		return ""
	}
	return strings.Repeat("\n", n-1)
}

func padLeft(s string) string {
	return lipgloss.NewStyle().PaddingLeft(1).Render(s)
}
