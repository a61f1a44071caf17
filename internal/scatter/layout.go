package scatter

import "unicode/utf8"

// Rect is a laid-out rectangle in container-local cells, origin top-left.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the rectangle's midpoint.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// TagWidth is the rendered width of a tag in cells: the label plus one
// cell of padding on each side. Renderers must draw tags at exactly this
// width for captured rectangles to be truthful.
func TagWidth(label string) float64 {
	return float64(utf8.RuneCountInString(label)) + 2
}

const (
	flowHGap = 1.0 // cells between tags on a row
	flowVGap = 1.0 // blank rows between groups
)

// flowLayout assigns rectangles to every in-flow node: group titles form
// a left gutter, their children flow left to right after it and wrap at
// the container width. The overlay and anything under it are not in flow.
// Returns the rectangles and the total content height.
func flowLayout(t *Tree, groups []NodeID, width float64) (map[NodeID]Rect, float64) {
	rects := make(map[NodeID]Rect, len(t.nodes))

	gutter := 0.0
	for _, g := range groups {
		if w := float64(utf8.RuneCountInString(t.Label(g))) + 2; w > gutter {
			gutter = w
		}
	}
	if gutter >= width {
		gutter = 0
	}

	y := 0.0
	for gi, g := range groups {
		if gi > 0 {
			y += flowVGap
		}
		top := y
		x := gutter
		rowH := 1.0
		for _, c := range t.Children(g) {
			w, h := t.SizeOf(c)
			if x+w > width && x > gutter {
				x = gutter
				y += rowH
			}
			rects[c] = Rect{X: x, Y: y, W: w, H: h}
			x += w + flowHGap
			if h > rowH {
				rowH = h
			}
		}
		y += rowH
		rects[g] = Rect{X: 0, Y: top, W: width, H: y - top}
	}
	return rects, y
}
