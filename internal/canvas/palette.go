package canvas

import (
	"image/color"
	"math"
)

// Shared palette. Solved and Unsolved are the two accents every
// visualization switches between on reveal.
var (
	White    = color.RGBA{255, 255, 255, 255}
	Ink      = color.RGBA{51, 51, 51, 255}    // #333
	Grid     = color.RGBA{221, 221, 221, 255} // #ddd
	Track    = color.RGBA{224, 224, 224, 255} // #e0e0e0
	Solved   = color.RGBA{76, 175, 80, 255}   // #4caf50
	Unsolved = color.RGBA{102, 126, 234, 255} // #667eea
	Teal     = color.RGBA{78, 205, 196, 255}  // #4ecdc4
	Coral    = color.RGBA{255, 107, 107, 255} // #ff6b6b
	Red      = color.RGBA{244, 67, 54, 255}   // #f44336
	Blue     = color.RGBA{33, 150, 243, 255}  // #2196f3
	Water    = Alpha(color.RGBA{66, 165, 245, 255}, 0.6)
)

// Accent returns the solved or unsolved accent.
func Accent(solved bool) color.RGBA {
	if solved {
		return Solved
	}
	return Unsolved
}

// Alpha returns c with opacity a in [0, 1].
func Alpha(c color.RGBA, a float64) color.NRGBA {
	a = math.Max(0, math.Min(1, a))
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(a * 255))}
}
