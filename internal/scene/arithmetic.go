package scene

import (
	"fmt"
	"math"

	"github.com/san-kum/paaviz/internal/canvas"
)

// PercentageFill is the fraction of the disc the percentage wedge covers
// once its one-shot animation completes.
func PercentageFill(reveal bool) float64 {
	if reveal {
		return 0.36
	}
	return 0.40
}

func drawPercentage(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	const radius = 100

	dot(s, cx, cy, radius, canvas.Track)

	start := -math.Pi / 2
	end := start + 2*math.Pi*PercentageFill(reveal)*Progress(step, 60)
	wedge := new(canvas.Path).MoveTo(cx, cy).Arc(cx, cy, radius, start, end).Close()
	s.Fill(wedge, canvas.Accent(reveal))

	label := fmt.Sprintf("%.0f%%", PercentageFill(reveal)*100)
	s.Text(label, cx, cy+8, bold24, canvas.AlignCenter, canvas.Ink)
}

// WorkerCount is the crew size shown: 5 in the statement, 15 once solved.
func WorkerCount(reveal bool) int {
	if reveal {
		return 15
	}
	return 5
}

// WorkersVisible is how many worker tiles have appeared by step, one every
// ten steps.
func WorkersVisible(step int, reveal bool) int {
	n := 0
	for i := 0; i < WorkerCount(reveal); i++ {
		if step > 10*i {
			n++
		}
	}
	return n
}

func drawWorkers(s canvas.Surface, step int, reveal bool) {
	const (
		cols    = 5
		size    = 30.0
		spacing = 10.0
	)
	accent := canvas.Accent(reveal)
	for i := 0; i < WorkersVisible(step, reveal); i++ {
		x := 50 + float64(i%cols)*(size+spacing)
		y := 100 + float64(i/cols)*(size+spacing)
		s.FillRect(x, y, size, size, accent)
		drawWorkerIcon(s, x+size/2, y+size/2)
	}

	days := "12 días"
	if reveal {
		days = "4 días"
	}
	center(s, days, 300, bold20, canvas.Ink)
}

// drawWorkerIcon draws a helmeted stick figure centered on (x, y).
func drawWorkerIcon(s canvas.Surface, x, y float64) {
	white := pen(canvas.White, 2)
	dot(s, x, y-7, 4, canvas.White)
	s.Fill(new(canvas.Path).MoveTo(x, y-11).Arc(x, y-9, 6, math.Pi, 2*math.Pi).Close(), canvas.White)
	s.Stroke(canvas.Line(x, y-3, x, y+5), white)
	s.Stroke(canvas.Line(x-6, y, x+6, y), white)
	s.Stroke(new(canvas.Path).MoveTo(x-5, y+12).LineTo(x, y+5).LineTo(x+5, y+12), white)
}

var averageValues = []int{10, 11, 12, 13, 14}

const averageExtra = 18

// AverageMean is the mean line's value: 12 over the five bars, 13 once the
// sixth value joins.
func AverageMean(reveal bool) int {
	sum, n := 0, len(averageValues)
	for _, v := range averageValues {
		sum += v
	}
	if reveal {
		sum += averageExtra
		n++
	}
	return sum / n
}

func drawAverage(s canvas.Surface, step int, reveal bool) {
	const (
		barWidth  = 40.0
		maxHeight = 150.0
		baseline  = 250.0
	)
	barHeight := func(v int) float64 { return float64(v) / 20 * maxHeight }

	for i, v := range averageValues {
		x := 50 + float64(i)*(barWidth+10)
		h := barHeight(v)
		s.FillRect(x, baseline-h, barWidth, h, canvas.Unsolved)
		s.Text(fmt.Sprint(v), x+barWidth/2, baseline-h-5, regular14, canvas.AlignCenter, canvas.Ink)
	}

	mean := AverageMean(reveal)
	y := baseline - barHeight(mean)
	right := 300.0
	if reveal {
		right = 350
	}
	s.Stroke(canvas.Line(40, y, right, y), dashed(canvas.Coral, 2))
	s.Text(fmt.Sprintf("Media = %d", mean), 350, y, bold16, canvas.AlignCenter, canvas.Coral)

	if reveal {
		h := barHeight(averageExtra)
		s.FillRect(300, baseline-h, barWidth, h, canvas.Solved)
		s.Text(fmt.Sprint(averageExtra), 300+barWidth/2, baseline-h-5, regular14, canvas.AlignCenter, canvas.Ink)
	}
}

const (
	tankFillRate  = 1.0 / 6
	tankDrainRate = 1.0 / 9
)

// TankLevel is the water column height at step for a tank of the given
// height. Before reveal only the filling tap runs; after it the net rate
// applies. The level grows linearly over one cycle.
func TankLevel(step int, reveal bool, height float64) float64 {
	rate := tankFillRate
	if reveal {
		rate = tankFillRate - tankDrainRate
	}
	return float64(step) / Cycle * rate * height
}

func drawTank(s canvas.Surface, step int, reveal bool) {
	const (
		tankWidth  = 150.0
		tankHeight = 200.0
	)
	cx, cy := canvas.Center(s)
	left, top := cx-tankWidth/2, cy-tankHeight/2
	bottom := cy + tankHeight/2

	s.StrokeRect(left, top, tankWidth, tankHeight, pen(canvas.Ink, 3))

	level := TankLevel(step, reveal, tankHeight)
	s.FillRect(left+3, bottom-level-3, tankWidth-6, level, canvas.Water)

	s.FillRect(left-30, top+50, 30, 20, canvas.Solved)
	s.Text("Llena: 6h", left-80, top+65, regular14, canvas.AlignCenter, canvas.Ink)

	if reveal {
		right := cx + tankWidth/2
		s.FillRect(right, bottom-50, 30, 20, canvas.Red)
		s.Text("Vacía: 9h", right+40, bottom-35, regular14, canvas.AlignCenter, canvas.Ink)
		center(s, "Tiempo total: 18 horas", bottom+40, bold18, canvas.Solved)
	}
}
