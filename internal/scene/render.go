package scene

import (
	"image/color"
	"math"

	"github.com/san-kum/paaviz/internal/canvas"
)

// Cycle is the number of animation steps before the counter wraps.
const Cycle = 360

// Render paints one frame of category c. The surface is expected to be
// cleared by the caller. Every renderer reads only its own constants, the
// step and the reveal flag.
func Render(s canvas.Surface, c Category, step int, reveal bool) {
	switch c {
	case Percentage:
		drawPercentage(s, step, reveal)
	case Workers:
		drawWorkers(s, step, reveal)
	case Equation:
		drawEquation(s, step, reveal)
	case Parabola:
		drawParabola(s, step, reveal)
	case Triangle:
		drawTriangle(s, step, reveal)
	case Circle:
		drawCircle(s, step, reveal)
	case Dice:
		drawDice(s, step, reveal)
	case Function:
		drawFunction(s, step, reveal)
	case Rectangle:
		drawRectangle(s, step, reveal)
	case Exponential:
		drawExponential(s, step, reveal)
	case Average:
		drawAverage(s, step, reveal)
	case Polygon:
		drawPolygon(s, step, reveal)
	case Tank:
		drawTank(s, step, reveal)
	case Cube:
		drawCube(s, step, reveal)
	case Balls:
		drawBalls(s, step, reveal)
	case Trigonometry:
		drawTrigonometry(s, step, reveal)
	case Sequence:
		drawSequence(s, step, reveal)
	default:
		drawFallback(s, step, reveal)
	}
}

// RenderTag is Render for a raw visualization tag.
func RenderTag(s canvas.Surface, tag string, step int, reveal bool) {
	Render(s, ParseCategory(tag), step, reveal)
}

// Progress is the one-shot completion ratio min(step/n, 1).
func Progress(step, n int) float64 {
	if n <= 0 || step >= n {
		return 1
	}
	if step <= 0 {
		return 0
	}
	return float64(step) / float64(n)
}

var (
	regular14 = canvas.Face{Size: 14}
	regular16 = canvas.Face{Size: 16}
	regular18 = canvas.Face{Size: 18}
	bold14    = canvas.Face{Size: 14, Bold: true}
	bold16    = canvas.Face{Size: 16, Bold: true}
	bold18    = canvas.Face{Size: 18, Bold: true}
	bold20    = canvas.Face{Size: 20, Bold: true}
	bold24    = canvas.Face{Size: 24, Bold: true}
)

func dot(s canvas.Surface, x, y, r float64, c color.Color) {
	s.Fill(canvas.Circle(x, y, r), c)
}

func pen(c color.Color, w float64) canvas.Pen {
	return canvas.Pen{Color: c, Width: w}
}

func dashed(c color.Color, w float64) canvas.Pen {
	return canvas.Pen{Color: c, Width: w, Dash: []float64{5, 5}}
}

func center(s canvas.Surface, text string, y float64, f canvas.Face, c color.Color) {
	w, _ := canvas.Size(s)
	s.Text(text, w/2, y, f, canvas.AlignCenter, c)
}

func polar(cx, cy, r, a float64) (float64, float64) {
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}
