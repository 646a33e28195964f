package anim

import (
	"image/color"

	"github.com/charmbracelet/harmonica"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/paaviz/internal/canvas"
)

// Caption is the overlay text drawn while the solution is revealed.
const Caption = "Solución Visualizada"

const (
	fadeFrequency = 4.0
	fadeDamping   = 1.0
)

var captionFace = canvas.Face{Size: 16, Bold: true}

// overlay fades the caption in with a critically damped spring so the
// opacity rises smoothly towards 1 without overshooting.
type overlay struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newOverlay(fps int) overlay {
	if fps < 1 {
		fps = 1
	}
	return overlay{spring: harmonica.NewSpring(harmonica.FPS(fps), fadeFrequency, fadeDamping)}
}

func (o *overlay) reset() {
	o.pos, o.vel = 0, 0
}

// advance moves the spring one frame and returns the clamped opacity.
func (o *overlay) advance(reveal bool) float64 {
	if !reveal {
		o.reset()
		return 0
	}
	o.pos, o.vel = o.spring.Update(o.pos, o.vel, 1)
	return clamp01(o.pos)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

type backgrounder interface {
	Background() color.Color
}

// captionColor blends the solved accent over the surface background by
// opacity, in Lab space so the fade looks even.
func captionColor(s canvas.Surface, opacity float64) color.RGBA {
	if opacity >= 1 {
		return canvas.Solved
	}
	var bg color.Color = canvas.White
	if b, ok := s.(backgrounder); ok {
		bg = b.Background()
	}
	from, _ := colorful.MakeColor(bg)
	to, _ := colorful.MakeColor(canvas.Solved)
	r, g, b := from.BlendLab(to, opacity).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

func drawCaption(s canvas.Surface, opacity float64) {
	if opacity <= 0 {
		return
	}
	w, h := canvas.Size(s)
	s.Text(Caption, w/2, h-20, captionFace, canvas.AlignCenter, captionColor(s, opacity))
}
