package ui

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/calegray/foyer/internal/config"
	"github.com/calegray/foyer/internal/scatter"
)

// tagField hosts the scatter session on the home view. It owns the
// mapping between absolute screen cells and the session's container-local
// coordinates, and renders the session's slots and sprites into a cell
// canvas.
type tagField struct {
	session    *scatter.Session
	itemGroups []int // group index per item, in session item order
	groups     int

	x, y          int // top-left screen cell of the field
	width, height int
}

func newTagField(tags []config.TagGroup, clock scatter.Clock) *tagField {
	groups := make([]scatter.Group, 0, len(tags))
	var itemGroups []int
	for gi, tg := range tags {
		groups = append(groups, scatter.Group{Title: tg.Title, Labels: tg.Labels})
		for range tg.Labels {
			itemGroups = append(itemGroups, gi)
		}
	}
	params := scatter.DefaultParams()
	// The canonical repulsion pair assumes a fine-grained coordinate
	// space; terminal cells are coarse, so rescale it and keep the rest.
	params.RepelRadius = 14
	params.RepelStrength = 28
	return &tagField{
		session:    scatter.NewSession(groups, params, clock),
		itemGroups: itemGroups,
		groups:     len(tags),
	}
}

// setArea places the field on screen and sizes the session's container.
func (f *tagField) setArea(x, y, w, h int) {
	f.x, f.y = x, y
	f.width, f.height = w, h
	f.session.SetBounds(float64(w), float64(h))
}

// mouseMoved forwards an absolute screen position to the session in
// container-local cell-center coordinates. Positions outside the field
// land outside the session bounds, which is exactly what arms the exit
// countdown.
func (f *tagField) mouseMoved(mx, my int) {
	px := float64(mx-f.x) + 0.5
	py := float64(my-f.y) + 0.5
	f.session.PointerMoved(px, py)
}

func (f *tagField) pointerLeft()  { f.session.PointerLeft() }
func (f *tagField) blur()         { f.session.Blur() }
func (f *tagField) focus()        { f.session.Focus() }
func (f *tagField) step() bool    { return f.session.Step() }
func (f *tagField) active() bool  { return f.session.Active() }
func (f *tagField) settled() bool { return f.session.Phase() == scatter.Settled }

func (f *tagField) dismantle() { f.session.Dismantle() }

func (f *tagField) restore(animate bool) <-chan struct{} {
	return f.session.Restore(animate)
}

// render draws the field block, always width x height cells.
func (f *tagField) render(st Styles) string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}
	cv := newFieldCanvas(f.width, f.height)
	headerID := cv.addStyle(st.MutedText)
	settled := make([]uint8, f.groups)
	flying := make([]uint8, f.groups)
	for gi := 0; gi < f.groups; gi++ {
		settled[gi] = cv.addStyle(st.TagStyle(gi, false))
		flying[gi] = cv.addStyle(st.TagStyle(gi, true))
	}

	gutter := f.gutterWidth()
	group := -1
	for _, slot := range f.session.Slots() {
		switch slot.Kind {
		case scatter.KindGroup:
			group++
			if gutter > 0 {
				cv.drawText(0, int(slot.Rect.Y), slot.Label, headerID)
			}
		case scatter.KindItem:
			cv.drawText(int(slot.Rect.X), int(slot.Rect.Y), chipText(slot.Label), settled[group])
		case scatter.KindPlaceholder:
			// Placeholders hold geometry but stay invisible.
		}
	}

	for i, sp := range f.session.Sprites() {
		left := int(math.Round(sp.X - sp.W/2))
		top := int(math.Round(sp.Y - sp.H/2))
		cv.drawText(left, top, chipText(sp.Label), flying[f.itemGroups[i]])
	}
	return cv.String()
}

// gutterWidth mirrors the session layout's title gutter decision so the
// renderer knows whether group titles have room.
func (f *tagField) gutterWidth() int {
	gutter := 0
	for _, slot := range f.session.Slots() {
		if slot.Kind != scatter.KindGroup {
			continue
		}
		if w := utf8.RuneCountInString(slot.Label) + 2; w > gutter {
			gutter = w
		}
	}
	if gutter >= f.width {
		return 0
	}
	return gutter
}

// chipText pads a label to its captured tag width.
func chipText(label string) string {
	return " " + label + " "
}

// fieldCanvas is a cell buffer with one style id per cell. Style id zero
// is the bare background.
type fieldCanvas struct {
	w, h    int
	runes   []rune
	styles  []uint8
	palette []lipgloss.Style
}

func newFieldCanvas(w, h int) *fieldCanvas {
	c := &fieldCanvas{
		w:       w,
		h:       h,
		runes:   make([]rune, w*h),
		styles:  make([]uint8, w*h),
		palette: make([]lipgloss.Style, 1), // index 0: unstyled
	}
	for i := range c.runes {
		c.runes[i] = ' '
	}
	return c
}

func (c *fieldCanvas) addStyle(s lipgloss.Style) uint8 {
	c.palette = append(c.palette, s)
	return uint8(len(c.palette) - 1)
}

// drawText writes s starting at (x, y), clipping at the canvas edges.
func (c *fieldCanvas) drawText(x, y int, s string, style uint8) {
	if y < 0 || y >= c.h {
		return
	}
	for _, r := range s {
		if x >= c.w {
			return
		}
		if x >= 0 {
			i := y*c.w + x
			c.runes[i] = r
			c.styles[i] = style
		}
		x++
	}
}

// String renders the canvas, grouping runs of equally styled cells.
func (c *fieldCanvas) String() string {
	var b strings.Builder
	for y := 0; y < c.h; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		x := 0
		for x < c.w {
			id := c.styles[y*c.w+x]
			start := x
			for x < c.w && c.styles[y*c.w+x] == id {
				x++
			}
			seg := string(c.runes[y*c.w+start : y*c.w+x])
			if id == 0 {
				b.WriteString(seg)
			} else {
				b.WriteString(c.palette[id].Render(seg))
			}
		}
	}
	return b.String()
}
