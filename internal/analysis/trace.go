package analysis

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"

	"github.com/guptarohit/asciigraph"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/metrics"
	"github.com/san-kum/paaviz/internal/scene"
)

// InkThreshold is the Lab distance from the background that counts a pixel
// as painted.
const InkThreshold = 0.05

// Coverage is the fraction of pixels in img farther than InkThreshold from bg.
func Coverage(img *image.RGBA, bg color.Color) float64 {
	b := img.Bounds()
	total := b.Dx() * b.Dy()
	if total == 0 {
		return 0
	}
	base, _ := colorful.MakeColor(bg)
	seen := make(map[color.RGBA]bool)
	painted := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := img.RGBAAt(x, y)
			ink, ok := seen[px]
			if !ok {
				c, valid := colorful.MakeColor(px)
				ink = valid && c.DistanceLab(base) > InkThreshold
				seen[px] = ink
			}
			if ink {
				painted++
			}
		}
	}
	return float64(painted) / float64(total)
}

// Digest hashes the pixels of img.
func Digest(img *image.RGBA) uint64 {
	h := fnv.New64a()
	h.Write(img.Pix)
	return h.Sum64()
}

type Options struct {
	From   anim.Step
	Steps  int // frames to render, default one full cycle
	Stride int // keep every n-th frame, default 1
	Size   int // square surface side, default anim.SurfaceSize
}

func (o Options) withDefaults() Options {
	if o.Steps <= 0 {
		o.Steps = scene.Cycle
	}
	if o.Stride <= 0 {
		o.Stride = 1
	}
	if o.Size <= 0 {
		o.Size = anim.SurfaceSize
	}
	return o
}

// Trace is the per-frame record of one run.
type Trace struct {
	Input    anim.Input
	Steps    []anim.Step
	Coverage []float64
	Digests  []uint64
	Metrics  map[string]float64
}

// Samples pairs each kept frame's step, coverage and digest.
func (tr *Trace) Samples() []metrics.Sample {
	out := make([]metrics.Sample, len(tr.Steps))
	for i := range tr.Steps {
		out[i] = metrics.Sample{Step: int(tr.Steps[i]), Coverage: tr.Coverage[i], Digest: tr.Digests[i]}
	}
	return out
}

// Run renders the requested frames offline and records each kept one.
func Run(in anim.Input, opts Options) (*Trace, error) {
	opts = opts.withDefaults()
	r, err := canvas.NewRaster(opts.Size, opts.Size)
	if err != nil {
		return nil, fmt.Errorf("analysis: %w", err)
	}
	tr := &Trace{Input: in}
	i := 0
	err = anim.Frames(r, in, opts.From, opts.Steps, func(f anim.Frame) error {
		defer func() { i++ }()
		if i%opts.Stride != 0 {
			return nil
		}
		tr.Steps = append(tr.Steps, f.Step)
		tr.Coverage = append(tr.Coverage, Coverage(f.Image, r.Background()))
		tr.Digests = append(tr.Digests, Digest(f.Image))
		return nil
	})
	if err != nil {
		return nil, err
	}
	tr.Metrics = metrics.Collect(metrics.Default(), tr.Samples())
	return tr, nil
}

// Period is the smallest p such that the sequence repeats with period p
// across its whole length. A sequence without repetition returns its length.
func Period[T comparable](seq []T) int {
	n := len(seq)
	for p := 1; p < n; p++ {
		ok := true
		for i := p; i < n; i++ {
			if seq[i] != seq[i-p] {
				ok = false
				break
			}
		}
		if ok {
			return p
		}
	}
	return n
}

// SettlesAt is the index from which every later element equals the last,
// or -1 for an empty sequence.
func SettlesAt[T comparable](seq []T) int {
	if len(seq) == 0 {
		return -1
	}
	last := seq[len(seq)-1]
	i := len(seq) - 1
	for i > 0 && seq[i-1] == last {
		i--
	}
	return i
}

// Distinct counts different values in seq.
func Distinct[T comparable](seq []T) int {
	seen := make(map[T]struct{}, len(seq))
	for _, v := range seq {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Plot charts a coverage trace as percentages.
func Plot(tr *Trace, width, height int) string {
	if tr == nil || len(tr.Coverage) == 0 {
		return ""
	}
	pct := make([]float64, len(tr.Coverage))
	for i, v := range tr.Coverage {
		pct[i] = v * 100
	}
	caption := fmt.Sprintf("%s reveal=%t coverage %%", tr.Input.Category, tr.Input.Reveal)
	return asciigraph.Plot(pct,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}
