package scene

import (
	"math"

	"github.com/san-kum/paaviz/internal/canvas"
)

var fallbackSymbols = []string{"∑", "∫", "√", "π", "∞"}

// FallbackCaption is the title drawn by the renderer for unknown tags.
const FallbackCaption = "Visualización Matemática"

// SymbolAngle is the orbit angle of symbol i; the ring turns once per cycle.
func SymbolAngle(step, i int) float64 {
	a := 2*math.Pi*float64(step%Cycle)/Cycle + float64(i)*2*math.Pi/float64(len(fallbackSymbols))
	return math.Mod(a, 2*math.Pi)
}

func drawFallback(s canvas.Surface, step int, reveal bool) {
	cx, cy := canvas.Center(s)
	accent := canvas.Accent(reveal)
	for i, sym := range fallbackSymbols {
		x, y := polar(cx, cy, 80, SymbolAngle(step, i))
		s.Text(sym, x, y, bold24, canvas.AlignCenter, accent)
	}
	s.Text(FallbackCaption, cx, cy, regular18, canvas.AlignCenter, canvas.Ink)
}
