package scene

import "github.com/san-kum/paaviz/internal/canvas"

var dicePips = map[int][][2]float64{
	1: {{0.5, 0.5}},
	2: {{0.3, 0.3}, {0.7, 0.7}},
	3: {{0.3, 0.3}, {0.5, 0.5}, {0.7, 0.7}},
	4: {{0.3, 0.3}, {0.3, 0.7}, {0.7, 0.3}, {0.7, 0.7}},
	5: {{0.3, 0.3}, {0.3, 0.7}, {0.5, 0.5}, {0.7, 0.3}, {0.7, 0.7}},
	6: {{0.3, 0.3}, {0.3, 0.5}, {0.3, 0.7}, {0.7, 0.3}, {0.7, 0.5}, {0.7, 0.7}},
}

// DicePips returns the pip centers of a die face as fractions of the die
// side. Values outside 1..6 get the single center pip.
func DicePips(value int) [][2]float64 {
	if pips, ok := dicePips[value]; ok {
		return pips
	}
	return dicePips[1]
}

// DiceFaces is the pair of faces shown. Unsolved dice cycle through 1..6,
// changing every 30 steps; solved dice rest on 3 and 4.
func DiceFaces(step int, reveal bool) (int, int) {
	if reveal {
		return 3, 4
	}
	v := (step/30)%6 + 1
	return v, v
}

func drawDice(s canvas.Surface, step int, reveal bool) {
	const (
		size    = 60.0
		spacing = 20.0
		top     = 150.0
	)
	a, b := DiceFaces(step, reveal)
	for i, v := range []int{a, b} {
		x := 120 + float64(i)*(size+spacing)
		s.FillRect(x, top, size, size, canvas.White)
		s.StrokeRect(x, top, size, size, pen(canvas.Ink, 2))
		for _, p := range DicePips(v) {
			dot(s, x+p[0]*size, top+p[1]*size, 4, canvas.Ink)
		}
	}

	if reveal {
		center(s, "Suma = 7", 250, bold24, canvas.Solved)
		center(s, "Probabilidad = 1/6", 280, regular16, canvas.Solved)
	}
}

const (
	urnBalls = 10
	urnRed   = 4
)

func drawBalls(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const radius = 15.0

	urn := new(canvas.Path).
		MoveTo(cx-60, cy-80).
		LineTo(cx-50, cy+50).
		LineTo(cx+50, cy+50).
		LineTo(cx+60, cy-80)
	s.Stroke(urn, pen(canvas.Ink, 3))

	for i := 0; i < urnBalls; i++ {
		x := cx - 40 + float64(i%4)*30
		y := cy - 40 + float64(i/4)*30
		fill := canvas.Blue
		if i < urnRed {
			fill = canvas.Red
		}
		ball := canvas.Circle(x, y, radius)
		s.Fill(ball, fill)
		s.Stroke(ball, pen(canvas.Ink, 1))
	}

	if !reveal {
		return
	}
	s.Text("P(1ª roja) = 4/10", cx, cy+90, regular16, canvas.AlignCenter, canvas.Ink)
	s.Text("P(2ª roja|1ª roja) = 3/9", cx, cy+110, regular16, canvas.AlignCenter, canvas.Ink)
	s.Text("P(ambas rojas) = 2/15", cx, cy+140, bold18, canvas.AlignCenter, canvas.Solved)
}
