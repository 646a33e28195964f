package canvas

import "math"

type SegmentKind int

const (
	SegMove SegmentKind = iota
	SegLine
	SegArc
	SegClose
)

// Segment is one path instruction. X, Y hold the target point for moves and
// lines and the center for arcs.
type Segment struct {
	Kind       SegmentKind
	X, Y       float64
	R          float64
	Start, End float64
}

// Sweep returns the clockwise angle an arc covers, clamped to one turn.
func (s Segment) Sweep() float64 {
	if s.Kind != SegArc {
		return 0
	}
	return math.Max(0, math.Min(s.End-s.Start, 2*math.Pi))
}

// Path is an ordered list of segments. Methods return the receiver so paths
// can be built in one expression.
type Path struct {
	segs []Segment
}

func (p *Path) MoveTo(x, y float64) *Path {
	p.segs = append(p.segs, Segment{Kind: SegMove, X: x, Y: y})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.segs = append(p.segs, Segment{Kind: SegLine, X: x, Y: y})
	return p
}

// Arc adds a clockwise arc around (cx, cy) from angle start to end, in
// radians. When the path already has a current point a straight edge joins
// it to the start of the arc.
func (p *Path) Arc(cx, cy, r, start, end float64) *Path {
	p.segs = append(p.segs, Segment{Kind: SegArc, X: cx, Y: cy, R: r, Start: start, End: end})
	return p
}

func (p *Path) Close() *Path {
	p.segs = append(p.segs, Segment{Kind: SegClose})
	return p
}

func (p *Path) Segments() []Segment {
	return p.segs
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return p == nil || len(p.segs) == 0 }

// Circle returns a closed full circle.
func Circle(cx, cy, r float64) *Path {
	return new(Path).Arc(cx, cy, r, 0, 2*math.Pi).Close()
}

// Line returns a single open segment.
func Line(x1, y1, x2, y2 float64) *Path {
	return new(Path).MoveTo(x1, y1).LineTo(x2, y2)
}

// Rect returns a closed axis-aligned rectangle.
func Rect(x, y, w, h float64) *Path {
	return new(Path).MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Polygon returns a closed polyline through pts.
func Polygon(pts ...[2]float64) *Path {
	p := new(Path)
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt[0], pt[1])
			continue
		}
		p.LineTo(pt[0], pt[1])
	}
	return p.Close()
}
