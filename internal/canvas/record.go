package canvas

import (
	"image"
	"image/color"
)

type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpStroke
	OpFillRect
	OpStrokeRect
	OpText
)

// Op is one recorded paint call. Only the fields relevant to Kind are set.
type Op struct {
	Kind       OpKind
	Path       *Path
	Color      color.Color
	Pen        Pen
	X, Y, W, H float64
	Text       string
	Face       Face
	Align      Align
}

var _ Surface = (*Recorder)(nil)

// Recorder logs paint calls instead of rasterizing them. Clear discards the
// log and records a single OpClear, so after a frame the log holds exactly
// what that frame painted.
type Recorder struct {
	bounds image.Rectangle
	ops    []Op
}

func NewRecorder(w, h int) *Recorder {
	return &Recorder{bounds: image.Rect(0, 0, w, h)}
}

func (r *Recorder) Bounds() image.Rectangle { return r.bounds }

func (r *Recorder) Clear() {
	r.ops = append(r.ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) Fill(p *Path, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFill, Path: p, Color: c})
}

func (r *Recorder) Stroke(p *Path, pen Pen) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Path: p, Pen: pen, Color: pen.Color})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, pen Pen) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, X: x, Y: y, W: w, H: h, Pen: pen, Color: pen.Color})
}

func (r *Recorder) Text(s string, x, y float64, f Face, a Align, c color.Color) {
	r.ops = append(r.ops, Op{Kind: OpText, Text: s, X: x, Y: y, Face: f, Align: a, Color: c})
}

func (r *Recorder) Ops() []Op { return r.ops }

// Kind returns the recorded operations of kind k in order.
func (r *Recorder) Kind(k OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == k {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Kind(OpText) {
		out = append(out, op.Text)
	}
	return out
}

// FindText returns the first text operation drawing s.
func (r *Recorder) FindText(s string) (Op, bool) {
	for _, op := range r.Kind(OpText) {
		if op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}

func (r *Recorder) HasText(s string) bool {
	_, ok := r.FindText(s)
	return ok
}

// Arcs returns every arc segment of filled or stroked paths, paired with the
// color it was painted in.
func (r *Recorder) Arcs() []PaintedSegment {
	return r.segments(SegArc)
}

// Lines returns every line segment of filled or stroked paths.
func (r *Recorder) Lines() []PaintedSegment {
	return r.segments(SegLine)
}

// PaintedSegment is a path segment with the color and operation that drew it.
type PaintedSegment struct {
	Segment
	Op    OpKind
	Color color.Color
}

func (r *Recorder) segments(k SegmentKind) []PaintedSegment {
	var out []PaintedSegment
	for _, op := range r.ops {
		if op.Kind != OpFill && op.Kind != OpStroke {
			continue
		}
		for _, s := range op.Path.Segments() {
			if s.Kind == k {
				out = append(out, PaintedSegment{Segment: s, Op: op.Kind, Color: op.Color})
			}
		}
	}
	return out
}

// Painted returns all operations painted in color c.
func (r *Recorder) Painted(c color.Color) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind != OpClear && SameColor(op.Color, c) {
			out = append(out, op)
		}
	}
	return out
}

// SameColor compares colors by their premultiplied RGBA values.
func SameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
