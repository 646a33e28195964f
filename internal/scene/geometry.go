package scene

import (
	"math"

	"github.com/san-kum/paaviz/internal/canvas"
)

// HypotenuseProgress is the drawn fraction of the hypotenuse: it grows over
// 60 steps and holds at 1.
func HypotenuseProgress(step int) float64 {
	return Progress(step, 60)
}

func drawTriangle(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const scale = 30.0

	x1, y1 := cx-2*scale, cy+scale
	x2, y2 := cx+scale, cy+scale
	x3, y3 := cx+scale, cy-2*scale

	legs := new(canvas.Path).MoveTo(x1, y1).LineTo(x2, y2).LineTo(x3, y3).Close()
	s.Fill(legs, canvas.Alpha(canvas.Unsolved, 0.1))
	s.Stroke(legs, pen(canvas.Unsolved, 3))

	corner := new(canvas.Path).MoveTo(x2-20, y2).LineTo(x2-20, y2-20).LineTo(x2, y2-20)
	s.Stroke(corner, pen(canvas.Ink, 2))

	s.Text("3", (x1+x2)/2, y1+20, bold16, canvas.AlignCenter, canvas.Ink)
	s.Text("4", x2+15, (y2+y3)/2, bold16, canvas.AlignCenter, canvas.Ink)

	if !reveal {
		return
	}
	progress := HypotenuseProgress(step)
	endX := x1 + (x3-x1)*progress
	endY := y1 + (y3-y1)*progress
	s.Stroke(canvas.Line(x1, y1, endX, endY), pen(canvas.Solved, 3))
	if progress == 1 {
		s.Text("5", (x1+x3)/2-20, (y1+y3)/2, bold20, canvas.AlignCenter, canvas.Solved)
	}
}

// PerimeterAngle is the angle of the point orbiting the circle; one lap
// takes 180 steps.
func PerimeterAngle(step int) float64 {
	return 2 * math.Pi * float64(step%180) / 180
}

func drawCircle(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const radius = 60.0 // r = 6 at ten pixels per unit

	disc := canvas.Circle(cx, cy, radius)
	s.Fill(disc, canvas.Alpha(canvas.Unsolved, 0.1))
	s.Stroke(disc, pen(canvas.Unsolved, 3))
	s.Stroke(canvas.Line(cx, cy, cx+radius, cy), pen(canvas.Ink, 2))

	s.Text("r = 6", cx+radius/2, cy-10, bold16, canvas.AlignCenter, canvas.Ink)
	s.Text("Área = 36π", cx, cy+radius+30, bold16, canvas.AlignCenter, canvas.Ink)

	if !reveal {
		return
	}
	x, y := polar(cx, cy, radius, PerimeterAngle(step))
	dot(s, x, y, 5, canvas.Solved)
	s.Text("Perímetro = 12π", cx, cy-radius-30, bold18, canvas.AlignCenter, canvas.Solved)
}

// RectangleSize is the drawn width and height: a 200×100 placeholder for
// the statement and 7×3 at 30 pixels per unit once solved.
func RectangleSize(reveal bool) (w, h float64) {
	if reveal {
		return 210, 90
	}
	return 200, 100
}

func drawRectangle(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	w, h := RectangleSize(reveal)
	left, top := cx-w/2, cy-h/2

	s.FillRect(left, top, w, h, canvas.Alpha(canvas.Unsolved, 0.2))
	s.StrokeRect(left, top, w, h, pen(canvas.Unsolved, 3))

	long, short := "l", "w"
	if reveal {
		long, short = "7", "3"
	}
	s.Text(long, cx, top-10, bold16, canvas.AlignCenter, canvas.Ink)
	s.Text(short, left-20, cy, bold16, canvas.AlignCenter, canvas.Ink)

	if reveal {
		s.Text("Perímetro = 20", cx, cy+h/2+40, bold18, canvas.AlignCenter, canvas.Solved)
		s.Text("Área = 21", cx, cy+h/2+65, bold18, canvas.AlignCenter, canvas.Solved)
	}
}

const hexSides = 6

// hexDiagonals lists vertex pairs joined by a diagonal in drawing order.
func hexDiagonals() [][2]int {
	var out [][2]int
	for i := 0; i < hexSides; i++ {
		for j := i + 2; j < hexSides; j++ {
			if i == 0 && j == hexSides-1 {
				continue
			}
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// DiagonalCount is how many hexagon diagonals are drawn at step: one more
// every ten steps, never more than the nine a hexagon has.
func DiagonalCount(step int) int {
	n := 0
	for k := range hexDiagonals() {
		if 10*k < step {
			n++
		}
	}
	return n
}

func drawPolygon(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const radius = 80.0

	vertex := func(i int) [2]float64 {
		x, y := polar(cx, cy, radius, 2*math.Pi*float64(i)/hexSides-math.Pi/2)
		return [2]float64{x, y}
	}
	pts := make([][2]float64, hexSides)
	for i := range pts {
		pts[i] = vertex(i)
	}
	s.Stroke(canvas.Polygon(pts...), pen(canvas.Unsolved, 3))
	for _, p := range pts {
		dot(s, p[0], p[1], 5, canvas.Unsolved)
	}

	if !reveal {
		return
	}
	for _, d := range hexDiagonals()[:DiagonalCount(step)] {
		a, b := pts[d[0]], pts[d[1]]
		s.Stroke(canvas.Line(a[0], a[1], b[0], b[1]), pen(canvas.Solved, 1))
	}
	s.Text("9 diagonales", cx, cy+radius+40, bold18, canvas.AlignCenter, canvas.Solved)
}

func drawCube(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const (
		size   = 100.0
		offset = 30.0
	)
	left, top := cx-size/2, cy-size/2
	edge := pen(canvas.Unsolved, 2)

	s.FillRect(left, top, size, size, canvas.Alpha(canvas.Unsolved, 0.3))
	s.StrokeRect(left, top, size, size, edge)
	s.FillRect(left+offset, top-offset, size, size, canvas.Alpha(canvas.Unsolved, 0.1))
	s.StrokeRect(left+offset, top-offset, size, size, edge)

	joins := new(canvas.Path)
	for _, c := range [][2]float64{{left, top}, {left + size, top}, {left + size, top + size}, {left, top + size}} {
		joins.MoveTo(c[0], c[1]).LineTo(c[0]+offset, c[1]-offset)
	}
	s.Stroke(joins, edge)

	s.Text("a = 5 cm", cx, cy+size/2+30, bold16, canvas.AlignCenter, canvas.Ink)

	if reveal {
		s.FillRect(left, top, size, size, canvas.Alpha(canvas.Solved, 0.3))
		s.Text("Área de cara = 25 cm²", cx, cy+size/2+60, bold18, canvas.AlignCenter, canvas.Solved)
		s.Text("Volumen = 125 cm³", cx, cy+size/2+85, bold18, canvas.AlignCenter, canvas.Solved)
	}
}

const trigSin = 3.0 / 5

// TrigPoint is the (cos, sin) of the marked angle. Before reveal the cosine
// is derived from the identity; once solved it snaps to 4/5.
func TrigPoint(reveal bool) (cos, sin float64) {
	if reveal {
		return 4.0 / 5, trigSin
	}
	return math.Sqrt(1 - trigSin*trigSin), trigSin
}

func drawTrigonometry(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const radius = 100.0
	grid := pen(canvas.Grid, 1)

	s.Stroke(canvas.Circle(cx, cy, radius), grid)
	axes := new(canvas.Path).
		MoveTo(cx-radius-20, cy).LineTo(cx+radius+20, cy).
		MoveTo(cx, cy-radius-20).LineTo(cx, cy+radius+20)
	s.Stroke(axes, grid)

	cos, sin := TrigPoint(reveal)
	x, y := cx+cos*radius, cy-sin*radius
	s.Stroke(canvas.Line(cx, cy, x, y), pen(canvas.Unsolved, 2))
	dot(s, x, y, 5, canvas.Unsolved)
	s.Stroke(new(canvas.Path).MoveTo(cx, cy).LineTo(x, cy).LineTo(x, y), dashed(canvas.Coral, 1))

	s.Text("sen(θ) = 3/5", cx+radius+30, cy-50, regular16, canvas.AlignCenter, canvas.Ink)
	if reveal {
		s.Text("cos(θ) = 4/5", cx+radius+30, cy-20, bold18, canvas.AlignCenter, canvas.Solved)
	}
}
