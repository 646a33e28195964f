package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sync"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var _ Surface = (*Raster)(nil)

var typefaces struct {
	once    sync.Once
	regular *opentype.Font
	bold    *opentype.Font
	err     error
}

func loadTypefaces() error {
	typefaces.once.Do(func() {
		typefaces.regular, typefaces.err = opentype.Parse(goregular.TTF)
		if typefaces.err != nil {
			return
		}
		typefaces.bold, typefaces.err = opentype.Parse(gobold.TTF)
	})
	return typefaces.err
}

// Raster paints onto an RGBA image. The filler and dasher share one
// scanner; operations are applied in call order.
type Raster struct {
	img        *image.RGBA
	background color.Color
	filler     *rasterx.Filler
	dasher     *rasterx.Dasher
	faces      map[Face]font.Face
}

// NewRaster allocates a w×h surface cleared to white.
func NewRaster(w, h int) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrNoSurface, w, h)
	}
	if err := loadTypefaces(); err != nil {
		return nil, fmt.Errorf("%w: load typefaces: %v", ErrNoSurface, err)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	r := &Raster{
		img:        img,
		background: White,
		filler:     rasterx.NewFiller(w, h, scanner),
		dasher:     rasterx.NewDasher(w, h, scanner),
		faces:      make(map[Face]font.Face),
	}
	r.Clear()
	return r, nil
}

// SetBackground changes the color Clear paints.
func (r *Raster) SetBackground(c color.Color) { r.background = c }

func (r *Raster) Background() color.Color { return r.background }

// Image returns the live backing image. It is overwritten by later frames.
func (r *Raster) Image() *image.RGBA { return r.img }

// Snapshot returns a copy of the current frame.
func (r *Raster) Snapshot() *image.RGBA {
	cp := image.NewRGBA(r.img.Bounds())
	copy(cp.Pix, r.img.Pix)
	return cp
}

func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

func toFixed(pt [2]float64) fixed.Point26_6 {
	return rasterx.ToFixedP(pt[0], pt[1])
}

// trace feeds p to a rasterx adder. Arcs go through rasterx.AddArc in
// pieces of at most a quarter turn, since an endpoint arc cannot span a full
// turn. Subpaths are always closed when fill is set.
func trace(p *Path, a rasterx.Adder, fill bool) {
	var (
		cur, origin [2]float64
		has, open   bool
	)
	begin := func() {
		if !open {
			a.Start(toFixed(cur))
			origin, open = cur, true
		}
	}
	for _, s := range p.Segments() {
		switch s.Kind {
		case SegMove:
			if open {
				a.Stop(fill)
				open = false
			}
			cur, has = [2]float64{s.X, s.Y}, true
		case SegLine:
			pt := [2]float64{s.X, s.Y}
			if !has {
				cur, has = pt, true
				continue
			}
			begin()
			a.Line(toFixed(pt))
			cur = pt
		case SegArc:
			from := [2]float64{s.X + s.R*math.Cos(s.Start), s.Y + s.R*math.Sin(s.Start)}
			if !has {
				cur, has = from, true
			}
			begin()
			if from != cur {
				a.Line(toFixed(from))
				cur = from
			}
			sweep := s.Sweep()
			if sweep == 0 || s.R <= 0 {
				continue
			}
			n := int(math.Ceil(sweep / (math.Pi / 2)))
			for i := 1; i <= n; i++ {
				angle := s.Start + sweep*float64(i)/float64(n)
				ex, ey := s.X+s.R*math.Cos(angle), s.Y+s.R*math.Sin(angle)
				x, y := rasterx.AddArc([]float64{s.R, s.R, 0, 0, 1, ex, ey}, s.X, s.Y, cur[0], cur[1], a)
				cur = [2]float64{x, y}
			}
		case SegClose:
			if open {
				a.Stop(true)
				open = false
				cur = origin
			}
		}
	}
	if open {
		a.Stop(fill)
	}
}

func (r *Raster) Fill(p *Path, c color.Color) {
	if p.Empty() {
		return
	}
	r.filler.Clear()
	trace(p, r.filler, true)
	r.filler.SetColor(c)
	r.filler.Draw()
}

func (r *Raster) Stroke(p *Path, pen Pen) {
	if p.Empty() || pen.Width <= 0 {
		return
	}
	r.dasher.Clear()
	r.dasher.SetStroke(
		fixed.Int26_6(pen.Width*64), fixed.Int26_6(4*64),
		rasterx.ButtCap, rasterx.ButtCap, rasterx.FlatGap, rasterx.Miter,
		pen.Dash, 0,
	)
	trace(p, r.dasher, false)
	r.dasher.SetColor(pen.Color)
	r.dasher.Draw()
}

func (r *Raster) FillRect(x, y, w, h float64, c color.Color) {
	r.Fill(Rect(x, y, w, h), c)
}

func (r *Raster) StrokeRect(x, y, w, h float64, pen Pen) {
	r.Stroke(Rect(x, y, w, h), pen)
}

func (r *Raster) face(f Face) font.Face {
	if face, ok := r.faces[f]; ok {
		return face
	}
	src := typefaces.regular
	if f.Bold {
		src = typefaces.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	r.faces[f] = face
	return face
}

func (r *Raster) Text(s string, x, y float64, f Face, a Align, c color.Color) {
	face := r.face(f)
	if face == nil || s == "" {
		return
	}
	adv := float64(font.MeasureString(face, s)) / 64
	switch a {
	case AlignCenter:
		x -= adv / 2
	case AlignRight:
		x -= adv
	}
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  toFixed([2]float64{x, y}),
	}
	d.DrawString(s)
}
