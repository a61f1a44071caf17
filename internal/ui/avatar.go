package ui

import (
	"math"
	"math/rand"
	"strings"
	"time"
)

const (
	avatarWidth  = 13
	avatarHeight = 4

	blinkLen    = 140 * time.Millisecond
	blinkMinGap = 3 * time.Second
	blinkMaxGap = 7 * time.Second
)

// avatar is the small face on the home view whose pupils follow the
// pointer. It translates pupil positions only; the face itself never
// moves and the tag physics never touch it.
type avatar struct {
	x, y int // top-left screen cell of the face

	px, py     float64
	hasPointer bool

	blinkAt    time.Time // next scheduled blink
	blinkUntil time.Time
	rng        *rand.Rand
}

func newAvatar() *avatar {
	return &avatar{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (a *avatar) setPosition(x, y int) {
	a.x, a.y = x, y
}

func (a *avatar) pointerMoved(x, y float64) {
	a.px, a.py = x, y
	a.hasPointer = true
}

func (a *avatar) pointerLeft() {
	a.hasPointer = false
}

// tick schedules and fires blinks against the supplied time.
func (a *avatar) tick(now time.Time) {
	if a.blinkAt.IsZero() {
		a.blinkAt = now.Add(a.blinkGap())
		return
	}
	if !now.Before(a.blinkAt) {
		a.blinkUntil = now.Add(blinkLen)
		a.blinkAt = now.Add(a.blinkGap())
	}
}

// blinking reports whether the eyes are shut; hosts keep frames coming
// while it is true so the blink clears promptly.
func (a *avatar) blinking(now time.Time) bool {
	return now.Before(a.blinkUntil)
}

func (a *avatar) blinkGap() time.Duration {
	return blinkMinGap + time.Duration(a.rng.Int63n(int64(blinkMaxGap-blinkMinGap)))
}

// gaze maps the pointer's offset from the eye line to a pupil offset.
// Horizontal shift saturates at one cell per six cells of pointer
// distance; vertical at one glyph step per three rows.
func (a *avatar) gaze() (dx, dy int) {
	if !a.hasPointer {
		return 0, 0
	}
	ex := float64(a.x) + float64(avatarWidth)/2
	ey := float64(a.y) + 1.5 // eye row center
	dx = clampInt(int(math.Round((a.px-ex)/6)), -1, 1)
	dy = clampInt(int(math.Round((a.py-ey)/3)), -1, 1)
	return dx, dy
}

// render draws the face. Rows are all avatarWidth cells wide.
func (a *avatar) render(st Styles, now time.Time) string {
	dx, dy := a.gaze()
	glyph := pupilGlyph(dy, a.blinking(now))
	eye := st.AccentText.Render(socket(dx, glyph))

	face := st.MutedText
	var b strings.Builder
	b.WriteString(face.Render("   .-----.   "))
	b.WriteByte('\n')
	b.WriteString(face.Render(" ( "))
	b.WriteString(eye)
	b.WriteString(face.Render(" "))
	b.WriteString(eye)
	b.WriteString(face.Render(" ) "))
	b.WriteByte('\n')
	b.WriteString(face.Render(`  \   ‿   /  `))
	b.WriteByte('\n')
	b.WriteString(face.Render("   '-----'   "))
	return b.String()
}

// plainAvatar returns the unstyled resting face for entrance fades.
func plainAvatar() string {
	return strings.Join([]string{
		"   .-----.   ",
		" ( " + socket(0, 'o') + " " + socket(0, 'o') + " ) ",
		`  \   ‿   /  `,
		"   '-----'   ",
	}, "\n")
}

// socket places the pupil glyph within a three-cell eye socket.
func socket(dx int, glyph rune) string {
	cells := []rune{' ', ' ', ' '}
	cells[1+dx] = glyph
	return string(cells)
}

// pupilGlyph picks the pupil for the vertical gaze direction.
func pupilGlyph(dy int, blink bool) rune {
	if blink {
		return '-'
	}
	switch {
	case dy < 0:
		return '°'
	case dy > 0:
		return '.'
	default:
		return 'o'
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
