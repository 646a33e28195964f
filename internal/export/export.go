// Package export writes visualization frames to PNG stills and GIF loops.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"io"
	"os"

	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/scene"
)

// Palette starts with the drawing colors so they survive quantization
// exactly; the rest is filled from Plan 9.
var Palette = buildPalette()

func buildPalette() color.Palette {
	p := color.Palette{
		canvas.White, canvas.Ink, canvas.Grid, canvas.Track, canvas.Solved,
		canvas.Unsolved, canvas.Teal, canvas.Coral, canvas.Red, canvas.Blue,
	}
	for _, c := range palette.Plan9 {
		if len(p) == 256 {
			break
		}
		if p.Index(c) >= 0 && sameRGBA(p[p.Index(c)], c) {
			continue
		}
		p = append(p, c)
	}
	return p
}

func sameRGBA(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}

// Scale resizes img to a size×size square. The frame is returned unchanged
// when it already has that size.
func Scale(img *image.RGBA, size int) *image.RGBA {
	if size <= 0 || (img.Bounds().Dx() == size && img.Bounds().Dy() == size) {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}

// Paletted quantizes img to Palette.
func Paletted(img image.Image) *image.Paletted {
	dst := image.NewPaletted(img.Bounds(), Palette)
	xdraw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, xdraw.Src)
	return dst
}

func newSurface() (*canvas.Raster, error) {
	r, err := canvas.NewRaster(anim.SurfaceSize, anim.SurfaceSize)
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return r, nil
}

// PNG writes the frame at step as a size×size PNG.
func PNG(w io.Writer, in anim.Input, step anim.Step, size int) error {
	r, err := newSurface()
	if err != nil {
		return err
	}
	f := anim.Still(r, in, step)
	return png.Encode(w, Scale(f.Image, size))
}

type GIFOptions struct {
	From    anim.Step
	Steps   int // default one full cycle
	Stride  int // keep every n-th step, default 1
	DelayCS int // per-frame delay in hundredths of a second, default 5
	Size    int // output side, default anim.SurfaceSize
}

func (o GIFOptions) withDefaults() GIFOptions {
	if o.Steps <= 0 {
		o.Steps = scene.Cycle
	}
	if o.Stride <= 0 {
		o.Stride = 1
	}
	if o.DelayCS <= 0 {
		o.DelayCS = 5
	}
	if o.Size <= 0 {
		o.Size = anim.SurfaceSize
	}
	return o
}

// Capture renders the loop and collects it as a looping GIF.
func Capture(in anim.Input, opts GIFOptions) (*gif.GIF, error) {
	opts = opts.withDefaults()
	r, err := newSurface()
	if err != nil {
		return nil, err
	}
	g := &gif.GIF{LoopCount: 0}
	i := 0
	err = anim.Frames(r, in, opts.From, opts.Steps, func(f anim.Frame) error {
		defer func() { i++ }()
		if i%opts.Stride != 0 {
			return nil
		}
		g.Image = append(g.Image, Paletted(Scale(f.Image, opts.Size)))
		g.Delay = append(g.Delay, opts.DelayCS)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

// GIF captures the loop and encodes it to w, returning the frame count.
func GIF(w io.Writer, in anim.Input, opts GIFOptions) (int, error) {
	g, err := Capture(in, opts)
	if err != nil {
		return 0, err
	}
	if err := gif.EncodeAll(w, g); err != nil {
		return 0, fmt.Errorf("export: encode gif: %w", err)
	}
	return len(g.Image), nil
}

// WriteFile creates path and hands it to write, closing it afterwards.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
