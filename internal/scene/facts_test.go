package scene

import (
	"math"
	"testing"

	gm "github.com/onsi/gomega"

	"github.com/san-kum/paaviz/internal/canvas"
)

func fraction(a canvas.PaintedSegment) float64 {
	return a.Sweep() / (2 * math.Pi)
}

func wedge(t *testing.T, r *canvas.Recorder, reveal bool) canvas.PaintedSegment {
	t.Helper()
	for _, a := range r.Arcs() {
		if canvas.SameColor(a.Color, canvas.Accent(reveal)) {
			return a
		}
	}
	t.Fatalf("no wedge painted in the %v accent", reveal)
	return canvas.PaintedSegment{}
}

func countKind(ops []canvas.Op, k canvas.OpKind) int {
	n := 0
	for _, op := range ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

func TestPercentageUnsolved(t *testing.T) {
	g := gm.NewWithT(t)
	r := record(Percentage, 60, false)
	g.Expect(fraction(wedge(t, r, false))).To(gm.BeNumerically("~", 0.40, 1e-9))
	g.Expect(r.HasText("40%")).To(gm.BeTrue())
	g.Expect(r.HasText("36%")).To(gm.BeFalse())
}

func TestPercentageSolved(t *testing.T) {
	g := gm.NewWithT(t)
	r := record(Percentage, 60, true)
	g.Expect(fraction(wedge(t, r, true))).To(gm.BeNumerically("~", 0.36, 1e-9))
	g.Expect(r.HasText("36%")).To(gm.BeTrue())
}

func TestPercentageIdempotent(t *testing.T) {
	g := gm.NewWithT(t)
	first := record(Percentage, 45, false)
	second := record(Percentage, 45, false)
	g.Expect(fraction(wedge(t, first, false))).
		To(gm.Equal(fraction(wedge(t, second, false))))
	g.Expect(PercentageFill(false)).To(gm.Equal(0.40))
}

func TestPercentageAnimatesFromTop(t *testing.T) {
	g := gm.NewWithT(t)
	r := record(Percentage, 0, true)
	g.Expect(wedge(t, r, true).Sweep()).To(gm.BeZero())
	half := record(Percentage, 30, true)
	g.Expect(fraction(wedge(t, half, true))).To(gm.BeNumerically("~", 0.18, 1e-9))
}

func hypotenuseEnd(t *testing.T, step int) [2]float64 {
	t.Helper()
	r := record(Triangle, step, true)
	for _, l := range r.Lines() {
		if canvas.SameColor(l.Color, canvas.Solved) {
			return [2]float64{l.X, l.Y}
		}
	}
	t.Fatalf("no hypotenuse at step %d", step)
	return [2]float64{}
}

func TestTriangleProgressClamps(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(HypotenuseProgress(60)).To(gm.Equal(HypotenuseProgress(120)))
	g.Expect(HypotenuseProgress(60)).To(gm.Equal(1.0))
	g.Expect(hypotenuseEnd(t, 60)).To(gm.Equal(hypotenuseEnd(t, 120)))
	g.Expect(hypotenuseEnd(t, 60)).To(gm.Equal([2]float64{230, 140}))

	prev := -1.0
	for step := 0; step <= 60; step++ {
		p := HypotenuseProgress(step)
		g.Expect(p).To(gm.BeNumerically(">=", prev), "step %d", step)
		prev = p
	}
}

func TestTriangleLabels(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(record(Triangle, 30, true).HasText("5")).To(gm.BeFalse())
	g.Expect(record(Triangle, 60, true).HasText("5")).To(gm.BeTrue())
	unsolved := record(Triangle, 200, false)
	g.Expect(unsolved.HasText("3")).To(gm.BeTrue())
	g.Expect(unsolved.HasText("4")).To(gm.BeTrue())
	g.Expect(unsolved.Painted(canvas.Solved)).To(gm.BeEmpty())
}

func TestDiceSolved(t *testing.T) {
	g := gm.NewWithT(t)
	for _, step := range []int{0, 17, 180, 359} {
		a, b := DiceFaces(step, true)
		g.Expect([]int{a, b}).To(gm.Equal([]int{3, 4}))

		r := record(Dice, step, true)
		g.Expect(r.HasText("Suma = 7")).To(gm.BeTrue())
		g.Expect(r.HasText("Probabilidad = 1/6")).To(gm.BeTrue())
		g.Expect(countKind(r.Painted(canvas.Ink), canvas.OpFill)).To(gm.Equal(7))
	}
}

func TestDiceCycle(t *testing.T) {
	tests := []struct {
		step, want int
	}{
		{0, 1}, {29, 1}, {30, 2}, {89, 3}, {150, 6}, {179, 6}, {180, 1}, {359, 6},
	}
	for _, tt := range tests {
		a, b := DiceFaces(tt.step, false)
		if a != tt.want || b != tt.want {
			t.Errorf("step %d: expected both dice on %d, got %d and %d", tt.step, tt.want, a, b)
		}
	}
	if record(Dice, 10, false).HasText("Suma = 7") {
		t.Error("sum label should only appear once solved")
	}
}

func TestDicePips(t *testing.T) {
	for v := 1; v <= 6; v++ {
		if got := len(DicePips(v)); got != v {
			t.Errorf("face %d: expected %d pips, got %d", v, v, got)
		}
	}
	for _, v := range []int{0, 7, -1} {
		pips := DicePips(v)
		if len(pips) != 1 || pips[0] != [2]float64{0.5, 0.5} {
			t.Errorf("face %d: expected single center pip, got %v", v, pips)
		}
	}
}

func TestTankSolvedAfterOneCycle(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(TankLevel(360, true, 200)).To(gm.BeNumerically("~", 200.0/18, 1e-9))
	g.Expect(TankLevel(360, false, 200)).To(gm.BeNumerically("~", 200.0/6, 1e-9))
	g.Expect(TankLevel(0, true, 200)).To(gm.BeZero())

	r := record(Tank, 360, true)
	var water []canvas.Op
	for _, op := range r.Kind(canvas.OpFillRect) {
		if canvas.SameColor(op.Color, canvas.Water) {
			water = append(water, op)
		}
	}
	g.Expect(water).To(gm.HaveLen(1))
	g.Expect(water[0].H).To(gm.BeNumerically("~", 200.0/18, 1e-9))
	g.Expect(r.HasText("Tiempo total: 18 horas")).To(gm.BeTrue())
	g.Expect(record(Tank, 100, false).HasText("Tiempo total: 18 horas")).To(gm.BeFalse())
}

func solvedLines(r *canvas.Recorder) int {
	n := 0
	for _, l := range r.Lines() {
		if l.Op == canvas.OpStroke && canvas.SameColor(l.Color, canvas.Solved) {
			n++
		}
	}
	return n
}

func TestPolygonDiagonals(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(DiagonalCount(0)).To(gm.Equal(0))
	g.Expect(DiagonalCount(1)).To(gm.Equal(1))
	g.Expect(DiagonalCount(90)).To(gm.Equal(9))
	g.Expect(DiagonalCount(359)).To(gm.Equal(9))
	g.Expect(hexDiagonals()).To(gm.HaveLen(9))

	g.Expect(solvedLines(record(Polygon, 0, true))).To(gm.Equal(0))
	g.Expect(solvedLines(record(Polygon, 90, true))).To(gm.Equal(9))
	g.Expect(solvedLines(record(Polygon, 300, true))).To(gm.Equal(9))
	for _, step := range []int{0, 45, 90, 359} {
		g.Expect(record(Polygon, step, true).HasText("9 diagonales")).To(gm.BeTrue())
	}
	g.Expect(record(Polygon, 90, false).HasText("9 diagonales")).To(gm.BeFalse())
}

func TestFallbackAccent(t *testing.T) {
	g := gm.NewWithT(t)
	for _, reveal := range []bool{false, true} {
		r := canvas.NewRecorder(400, 400)
		r.Clear()
		RenderTag(r, "unknown", 42, reveal)
		var symbols []string
		for _, op := range r.Painted(canvas.Accent(reveal)) {
			symbols = append(symbols, op.Text)
		}
		g.Expect(symbols).To(gm.ConsistOf("∑", "∫", "√", "π", "∞"))
		g.Expect(r.Painted(canvas.Accent(!reveal))).To(gm.BeEmpty())
	}
}

func TestWorkers(t *testing.T) {
	g := gm.NewWithT(t)
	unsolved := record(Workers, 359, false)
	g.Expect(unsolved.Painted(canvas.Unsolved)).To(gm.HaveLen(5))
	g.Expect(unsolved.HasText("12 días")).To(gm.BeTrue())

	solved := record(Workers, 359, true)
	g.Expect(solved.Painted(canvas.Solved)).To(gm.HaveLen(15))
	g.Expect(solved.HasText("4 días")).To(gm.BeTrue())

	g.Expect(WorkersVisible(0, true)).To(gm.Equal(0))
	g.Expect(WorkersVisible(25, true)).To(gm.Equal(3))
}

func TestEquation(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(BeamTilt(30, false)).NotTo(gm.BeZero())
	for _, step := range []int{0, 30, 200} {
		g.Expect(BeamTilt(step, true)).To(gm.BeZero())
	}
	r := record(Equation, 30, true)
	g.Expect(r.Texts()).To(gm.ContainElements("x = 28", "y = 17", "x + y", "x - y"))
	g.Expect(record(Equation, 30, false).HasText("x = 28")).To(gm.BeFalse())
}

func TestParabolaRoots(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(record(Parabola, 0, true).Texts()).To(gm.ContainElements("x = 0", "x = 6"))
	g.Expect(record(Parabola, 0, false).Painted(canvas.Solved)).To(gm.BeEmpty())
}

func TestFunctionFlow(t *testing.T) {
	g := gm.NewWithT(t)
	tests := []struct {
		step  int
		text  string
		phase int
	}{
		{0, "2", 0},
		{19, "2", 0},
		{20, "1", 1},
		{39, "1", 1},
		{40, "= 1", 2},
		{59, "= 1", 2},
		{60, "2", 0},
	}
	for _, tt := range tests {
		phase, _ := FunctionPhase(tt.step)
		g.Expect(phase).To(gm.Equal(tt.phase), "step %d", tt.step)
		var flowing []string
		for _, op := range record(Function, tt.step, true).Painted(canvas.Solved) {
			flowing = append(flowing, op.Text)
		}
		g.Expect(flowing).To(gm.Equal([]string{tt.text}), "step %d", tt.step)
	}
	g.Expect(record(Function, 10, false).Painted(canvas.Solved)).To(gm.BeEmpty())
}

func TestRectangle(t *testing.T) {
	g := gm.NewWithT(t)
	w, h := RectangleSize(false)
	g.Expect([]float64{w, h}).To(gm.Equal([]float64{200, 100}))
	w, h = RectangleSize(true)
	g.Expect([]float64{w, h}).To(gm.Equal([]float64{210, 90}))

	g.Expect(record(Rectangle, 0, false).Texts()).To(gm.ContainElements("l", "w"))
	g.Expect(record(Rectangle, 0, true).Texts()).To(gm.ContainElements("7", "3", "Perímetro = 20", "Área = 21"))
}

func TestExponential(t *testing.T) {
	g := gm.NewWithT(t)
	unsolved := record(Exponential, 0, false)
	g.Expect(unsolved.Painted(canvas.Solved)).To(gm.BeEmpty())

	solved := record(Exponential, 0, true)
	g.Expect(solved.Texts()).To(gm.ContainElements("(3, 8)", "log₂(8) = 3"))
	marker := false
	for _, a := range solved.Arcs() {
		if canvas.SameColor(a.Color, canvas.Solved) && a.X == 190 && a.Y == 160 {
			marker = true
		}
	}
	g.Expect(marker).To(gm.BeTrue())
}

func TestAverage(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(AverageMean(false)).To(gm.Equal(12))
	g.Expect(AverageMean(true)).To(gm.Equal(13))
	g.Expect(record(Average, 0, false).HasText("Media = 12")).To(gm.BeTrue())

	solved := record(Average, 0, true)
	g.Expect(solved.HasText("Media = 13")).To(gm.BeTrue())
	g.Expect(solved.HasText("18")).To(gm.BeTrue())
	g.Expect(solved.Painted(canvas.Solved)).To(gm.HaveLen(1))
}

func TestSequence(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(SequenceVisible(0)).To(gm.Equal(0))
	g.Expect(SequenceVisible(1)).To(gm.Equal(1))
	g.Expect(SequenceVisible(31)).To(gm.Equal(2))
	g.Expect(SequenceVisible(91)).To(gm.Equal(4))
	g.Expect(SequenceVisible(359)).To(gm.Equal(4))

	r := record(Sequence, 359, false)
	g.Expect(r.Texts()).To(gm.ContainElements("2", "6", "18", "54"))
	g.Expect(r.HasText("162")).To(gm.BeFalse())

	solved := record(Sequence, 359, true)
	g.Expect(solved.Texts()).To(gm.ContainElements("162", "Progresión geométrica: r = 3", "5° término = 2 × 3⁴ = 162"))
}

func TestTrigonometry(t *testing.T) {
	g := gm.NewWithT(t)
	cos, sin := TrigPoint(true)
	g.Expect(cos).To(gm.Equal(0.8))
	g.Expect(sin).To(gm.Equal(0.6))
	cos, _ = TrigPoint(false)
	g.Expect(cos).To(gm.BeNumerically("~", 0.8, 1e-12))

	g.Expect(record(Trigonometry, 0, true).HasText("cos(θ) = 4/5")).To(gm.BeTrue())
	g.Expect(record(Trigonometry, 0, false).HasText("cos(θ) = 4/5")).To(gm.BeFalse())
	g.Expect(record(Trigonometry, 0, false).HasText("sen(θ) = 3/5")).To(gm.BeTrue())
}

func TestBalls(t *testing.T) {
	g := gm.NewWithT(t)
	r := record(Balls, 0, false)
	g.Expect(countKind(r.Painted(canvas.Red), canvas.OpFill)).To(gm.Equal(4))
	g.Expect(countKind(r.Painted(canvas.Blue), canvas.OpFill)).To(gm.Equal(6))
	g.Expect(r.HasText("P(ambas rojas) = 2/15")).To(gm.BeFalse())

	solved := record(Balls, 0, true)
	g.Expect(solved.Texts()).To(gm.ContainElements(
		"P(1ª roja) = 4/10",
		"P(2ª roja|1ª roja) = 3/9",
		"P(ambas rojas) = 2/15",
	))
}

func TestCircle(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(record(Circle, 0, false).HasText("Área = 36π")).To(gm.BeTrue())
	g.Expect(record(Circle, 0, false).HasText("Perímetro = 12π")).To(gm.BeFalse())
	g.Expect(record(Circle, 0, true).HasText("Perímetro = 12π")).To(gm.BeTrue())
	g.Expect(PerimeterAngle(180)).To(gm.BeZero())
	g.Expect(PerimeterAngle(45)).To(gm.BeNumerically("~", math.Pi/2, 1e-12))
}

func TestCube(t *testing.T) {
	g := gm.NewWithT(t)
	g.Expect(record(Cube, 0, false).HasText("a = 5 cm")).To(gm.BeTrue())
	solved := record(Cube, 0, true)
	g.Expect(solved.Texts()).To(gm.ContainElements("Área de cara = 25 cm²", "Volumen = 125 cm³"))
}

func TestSymbolOrbitLoopsWithCycle(t *testing.T) {
	g := gm.NewWithT(t)
	for i := range fallbackSymbols {
		g.Expect(SymbolAngle(Cycle, i)).To(gm.BeNumerically("~", SymbolAngle(0, i), 1e-12))
		g.Expect(SymbolAngle(Cycle/2, i)).NotTo(gm.BeNumerically("~", SymbolAngle(0, i), 1e-6))
	}
}

func TestSequenceBoxesFitCanvas(t *testing.T) {
	g := gm.NewWithT(t)
	r := record(Sequence, 359, true)
	boxes := r.Kind(canvas.OpFillRect)
	g.Expect(boxes).To(gm.HaveLen(5))
	for _, b := range boxes {
		g.Expect(b.X).To(gm.BeNumerically(">=", 0))
		g.Expect(b.X + b.W).To(gm.BeNumerically("<=", 400))
	}
}
