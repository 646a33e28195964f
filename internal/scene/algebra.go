package scene

import (
	"fmt"
	"image/color"
	"math"

	"github.com/san-kum/paaviz/internal/canvas"
)

// BeamTilt is the balance beam's slope. It rocks with a 120-step period
// until the system is solved, then rests level.
func BeamTilt(step int, reveal bool) float64 {
	if reveal {
		return 0
	}
	return 0.1 * math.Sin(2*math.Pi*float64(step)/120)
}

func drawEquation(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	ink := pen(canvas.Ink, 3)

	s.Stroke(new(canvas.Path).MoveTo(cx-30, cy+50).LineTo(cx+30, cy+50).LineTo(cx, cy).Close(), ink)

	lift := BeamTilt(step, reveal) * 50
	s.Stroke(canvas.Line(cx-100, cy+lift, cx+100, cy-lift), ink)

	s.Text("x + y", cx-70, cy+lift-20, bold18, canvas.AlignCenter, canvas.Unsolved)
	s.Text("= 45", cx-70, cy+lift, bold18, canvas.AlignCenter, canvas.Unsolved)
	s.Text("x - y", cx+70, cy-lift-20, bold18, canvas.AlignCenter, canvas.Unsolved)
	s.Text("= 11", cx+70, cy-lift, bold18, canvas.AlignCenter, canvas.Unsolved)

	if reveal {
		s.Text("x = 28", cx, cy+100, bold20, canvas.AlignCenter, canvas.Solved)
		s.Text("y = 17", cx, cy+130, bold20, canvas.AlignCenter, canvas.Solved)
	}
}

// ParabolaRoots are the x values where (x-3)² = 9.
var ParabolaRoots = []float64{0, 6}

func drawParabola(s canvas.Surface, step int, reveal bool) {
	w, h := canvas.Size(s)
	cx, cy := w/2, h/2
	const scale = 20.0

	axes := new(canvas.Path).MoveTo(0, cy).LineTo(w, cy).MoveTo(cx, 0).LineTo(cx, h)
	s.Stroke(axes, pen(canvas.Grid, 1))

	curve := new(canvas.Path)
	for px := 0; px < int(w); px++ {
		x := (float64(px) - cx) / scale
		py := cy - (x-3)*(x-3)*scale
		if px == 0 {
			curve.MoveTo(float64(px), py)
		} else {
			curve.LineTo(float64(px), py)
		}
	}
	s.Stroke(curve, pen(canvas.Unsolved, 2))

	if !reveal {
		return
	}
	for _, root := range ParabolaRoots {
		x := cx + root*scale
		y := cy - 9*scale
		dot(s, x, y, 5, canvas.Solved)
		s.Text(fmt.Sprintf("x = %g", root), x, y-10, bold14, canvas.AlignCenter, canvas.Solved)
	}
}

// FunctionPhase splits the 60-step composition loop into thirds: 0 while the
// input 2 enters f, 1 while f(2) = 1 travels to g, 2 while the output is
// shown. t is the position within the current third in [0, 1).
func FunctionPhase(step int) (phase int, t float64) {
	p := step % 60
	return p / 20, float64(p%20) / 20
}

func drawFunction(s canvas.Surface, step int, reveal bool) {
	_, cy := canvas.Center(s)
	const (
		boxWidth  = 100.0
		boxHeight = 60.0
	)

	s.FillRect(50, cy-30, boxWidth, boxHeight, canvas.Unsolved)
	s.Text("f(x) = 2x - 3", 100, cy, bold16, canvas.AlignCenter, canvas.White)
	s.FillRect(250, cy-30, boxWidth, boxHeight, canvas.Teal)
	s.Text("g(x) = x²", 300, cy, bold16, canvas.AlignCenter, canvas.White)

	if !reveal {
		return
	}
	arrow := pen(canvas.Ink, 2)
	s.Stroke(canvas.Line(30, cy, 50, cy), arrow)
	s.Stroke(canvas.Line(150, cy, 250, cy), arrow)
	s.Stroke(canvas.Line(350, cy, 370, cy), arrow)

	phase, t := FunctionPhase(step)
	switch phase {
	case 0:
		s.Text("2", 30+20*t, cy-40, bold18, canvas.AlignCenter, canvas.Solved)
	case 1:
		s.Text("1", 150+100*t, cy-40, bold18, canvas.AlignCenter, canvas.Solved)
	default:
		s.Text("= 1", 380, cy, bold24, canvas.AlignCenter, canvas.Solved)
	}
}

// ExpPoint is the marked solution of log₂(x) = 3.
var ExpPoint = [2]float64{3, 8}

func drawExponential(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const (
		originX = 100.0
		scaleX  = 30.0
		scaleY  = 5.0
	)
	toScreen := func(x, y float64) (float64, float64) {
		return originX + x*scaleX, cy - y*scaleY
	}

	axes := new(canvas.Path).MoveTo(50, cy).LineTo(350, cy).MoveTo(originX, 50).LineTo(originX, 350)
	s.Stroke(axes, pen(canvas.Grid, 1))

	curve := new(canvas.Path)
	for i := 0; i <= 50; i++ {
		x := float64(i) / 10
		px, py := toScreen(x, math.Exp2(x))
		if i == 0 {
			curve.MoveTo(px, py)
		} else {
			curve.LineTo(px, py)
		}
	}
	s.Stroke(curve, pen(canvas.Unsolved, 2))

	if !reveal {
		return
	}
	px, py := toScreen(ExpPoint[0], ExpPoint[1])
	guides := new(canvas.Path).MoveTo(px, cy).LineTo(px, py).LineTo(originX, py)
	s.Stroke(guides, dashed(canvas.Solved, 1))
	dot(s, px, py, 5, canvas.Solved)
	s.Text("(3, 8)", px+10, py-10, bold16, canvas.AlignLeft, canvas.Solved)
	s.Text("log₂(8) = 3", cx, 320, bold16, canvas.AlignCenter, canvas.Solved)
}

var sequenceTerms = []int{2, 6, 18, 54}

const sequenceNext = 162

// SequenceVisible is how many of the four given terms have appeared by
// step, one every 30 steps.
func SequenceVisible(step int) int {
	n := 0
	for i := range sequenceTerms {
		if step > 30*i {
			n++
		}
	}
	return n
}

func drawSequence(s canvas.Surface, step int, reveal bool) {
	const (
		left      = 10.0
		top       = 150.0
		boxWidth  = 60.0
		boxHeight = 40.0
		spacing   = 20.0
	)
	mid := top + boxHeight/2
	times := func(x float64) {
		s.Stroke(canvas.Line(x+5, mid, x+spacing-5, mid), pen(canvas.Ink, 2))
		s.Text("×3", x+spacing/2, mid-10, regular14, canvas.AlignCenter, canvas.Ink)
	}
	box := func(x float64, term int, c color.Color) {
		s.FillRect(x, top, boxWidth, boxHeight, c)
		s.Text(fmt.Sprint(term), x+boxWidth/2, mid+6, bold18, canvas.AlignCenter, canvas.White)
	}

	center(s, "2, 6, 18, 54, …", 100, regular16, canvas.Ink)

	visible := SequenceVisible(step)
	for i := 0; i < visible; i++ {
		x := left + float64(i)*(boxWidth+spacing)
		box(x, sequenceTerms[i], canvas.Unsolved)
		if i < len(sequenceTerms)-1 {
			times(x + boxWidth)
		}
	}

	if !reveal {
		return
	}
	x := left + float64(len(sequenceTerms))*(boxWidth+spacing)
	times(x - spacing)
	box(x, sequenceNext, canvas.Solved)
	center(s, "Progresión geométrica: r = 3", 250, regular16, canvas.Ink)
	center(s, "5° término = 2 × 3⁴ = 162", 280, regular16, canvas.Solved)
}
