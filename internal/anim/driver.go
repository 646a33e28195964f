package anim

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/scene"
)

const (
	// DefaultInterval is the tick period of a driver built without
	// WithInterval.
	DefaultInterval = 50 * time.Millisecond

	// SurfaceSize is the side of the default square raster.
	SurfaceSize = 400
)

// Input is what the hosting view supplies: the visualization tag of the
// selected problem, its identity and whether the solution is shown.
type Input struct {
	Category  string
	ProblemID int
	Reveal    bool
}

// Frame is one painted tick. Image is a copy of the surface pixels when the
// surface is a raster and nil otherwise.
type Frame struct {
	Step    Step
	Input   Input
	Opacity float64
	Image   *image.RGBA
}

type Option func(*Driver)

func WithInterval(d time.Duration) Option {
	return func(dr *Driver) {
		if d > 0 {
			dr.interval = d
		}
	}
}

// WithSurface replaces the default 400×400 raster factory.
func WithSurface(fn func() (canvas.Surface, error)) Option {
	return func(dr *Driver) { dr.newSurface = fn }
}

func WithTicker(fn func(time.Duration) Ticker) Option {
	return func(dr *Driver) { dr.newTicker = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(dr *Driver) {
		if l != nil {
			dr.logger = l
		}
	}
}

// WithFrameHook registers fn to receive every painted frame. It runs on the
// loop goroutine and must not call Stop or Update.
func WithFrameHook(fn func(Frame)) Option {
	return func(dr *Driver) { dr.hook = fn }
}

// Driver runs the repaint loop for one mounted view.
type Driver struct {
	interval   time.Duration
	newSurface func() (canvas.Surface, error)
	newTicker  func(time.Duration) Ticker
	logger     *log.Logger
	hook       func(Frame)

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	updates chan Input
}

func New(opts ...Option) *Driver {
	d := &Driver{
		interval:   DefaultInterval,
		newSurface: defaultSurface,
		newTicker:  NewTimeTicker,
		logger:     log.Default().WithPrefix("anim"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func defaultSurface() (canvas.Surface, error) {
	return canvas.NewRaster(SurfaceSize, SurfaceSize)
}

// Interval reports the tick period.
func (d *Driver) Interval() time.Duration { return d.interval }

// Start acquires the surface and launches the loop. If the surface cannot
// be obtained nothing is started and the returned error wraps
// canvas.ErrNoSurface. The loop also ends when ctx is canceled.
func (d *Driver) Start(ctx context.Context, in Input) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.done != nil {
		select {
		case <-d.done:
		default:
			return ErrRunning
		}
	}

	s, err := d.newSurface()
	if err == nil && s == nil {
		err = errors.New("nil surface")
	}
	if err != nil {
		if !errors.Is(err, canvas.ErrNoSurface) {
			err = fmt.Errorf("%w: %v", canvas.ErrNoSurface, err)
		}
		d.logger.Error("animation not started", "category", in.Category, "problem", in.ProblemID, "err", err)
		return fmt.Errorf("anim: start: %w", err)
	}

	loopCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	d.updates = make(chan Input, 1)

	d.logger.Debug("animation started", "category", in.Category, "problem", in.ProblemID, "reveal", in.Reveal)
	go d.loop(loopCtx, newRunner(s, in, d.fps()), d.updates, d.done)
	return nil
}

// Update hands a new input to the loop. Only the latest pending input is
// kept. It is a no-op when the driver is not running.
func (d *Driver) Update(in Input) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.updates == nil {
		return
	}
	select {
	case d.updates <- in:
	default:
		select {
		case <-d.updates:
		default:
		}
		d.updates <- in
	}
}

// Stop cancels the loop and waits for it to exit. It is safe to call more
// than once and on a driver that never started.
func (d *Driver) Stop() {
	d.mu.Lock()
	cancel, done := d.cancel, d.done
	d.cancel, d.done, d.updates = nil, nil, nil
	d.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	d.logger.Debug("animation stopped")
}

// Running reports whether a loop is live.
func (d *Driver) Running() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done == nil {
		return false
	}
	select {
	case <-d.done:
		return false
	default:
		return true
	}
}

func (d *Driver) fps() int {
	return int(time.Second / d.interval)
}

func (d *Driver) loop(ctx context.Context, r *runner, updates <-chan Input, done chan<- struct{}) {
	defer close(done)

	t := d.newTicker(d.interval)
	defer func() { t.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return
		case in := <-updates:
			if in == r.input {
				continue
			}
			t.Stop()
			t = d.newTicker(d.interval)
			r.retarget(in)
			d.logger.Debug("animation restarted", "category", in.Category, "problem", in.ProblemID, "reveal", in.Reveal)
		case <-t.C():
			f := r.tick()
			if ctx.Err() != nil {
				return
			}
			if d.hook != nil {
				d.hook(f)
			}
		}
	}
}

type snapshotter interface {
	Snapshot() *image.RGBA
}

// runner is the state a loop owns: the surface, the counter, the current
// input and the caption fade.
type runner struct {
	surface canvas.Surface
	step    Step
	input   Input
	overlay overlay
}

func newRunner(s canvas.Surface, in Input, fps int) *runner {
	return &runner{surface: s, input: in, overlay: newOverlay(fps)}
}

func (r *runner) retarget(in Input) {
	if (in.Reveal && !r.input.Reveal) || in.ProblemID != r.input.ProblemID {
		r.overlay.reset()
	}
	r.input = in
}

func (r *runner) tick() Frame {
	r.step = r.step.Next()
	return paint(r.surface, r.input, r.step, r.overlay.advance(r.input.Reveal))
}

func paint(s canvas.Surface, in Input, step Step, opacity float64) Frame {
	s.Clear()
	scene.RenderTag(s, in.Category, int(step), in.Reveal)
	drawCaption(s, opacity)

	f := Frame{Step: step, Input: in, Opacity: opacity}
	if snap, ok := s.(snapshotter); ok {
		f.Image = snap.Snapshot()
	}
	return f
}

// Still paints the single frame at step with the caption, when revealed,
// fully faded in.
func Still(s canvas.Surface, in Input, step Step) Frame {
	opacity := 0.0
	if in.Reveal {
		opacity = 1
	}
	return paint(s, in, step, opacity)
}

// Frames paints n consecutive ticks onto s without a timer, starting at
// step from, and passes each frame to fn. It stops at the first error fn
// returns. The overlay fades at the rate of the default interval.
func Frames(s canvas.Surface, in Input, from Step, n int, fn func(Frame) error) error {
	r := newRunner(s, in, int(time.Second/DefaultInterval))
	r.step = from.prev()
	for i := 0; i < n; i++ {
		if err := fn(r.tick()); err != nil {
			return err
		}
	}
	return nil
}
