package anim_test

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/scene"
)

type manualTicker struct {
	c       chan time.Time
	stopped chan struct{}
	once    sync.Once
}

func newManualTicker() *manualTicker {
	return &manualTicker{c: make(chan time.Time), stopped: make(chan struct{})}
}

func (m *manualTicker) C() <-chan time.Time { return m.c }

func (m *manualTicker) Stop() { m.once.Do(func() { close(m.stopped) }) }

// fire blocks until the loop takes the tick.
func (m *manualTicker) fire() {
	select {
	case m.c <- time.Now():
	case <-m.stopped:
		Fail("fired a stopped ticker")
	case <-time.After(time.Second):
		Fail("loop did not take the tick")
	}
}

type harness struct {
	driver  *anim.Driver
	tickers chan *manualTicker
	frames  chan anim.Frame
	surface *canvas.Recorder
}

func newHarness(opts ...anim.Option) *harness {
	h := &harness{
		tickers: make(chan *manualTicker, 8),
		frames:  make(chan anim.Frame, 64),
		surface: canvas.NewRecorder(400, 400),
	}
	base := []anim.Option{
		anim.WithLogger(log.New(io.Discard)),
		anim.WithSurface(func() (canvas.Surface, error) { return h.surface, nil }),
		anim.WithTicker(func(time.Duration) anim.Ticker {
			t := newManualTicker()
			h.tickers <- t
			return t
		}),
		anim.WithFrameHook(func(f anim.Frame) { h.frames <- f }),
	}
	h.driver = anim.New(append(base, opts...)...)
	return h
}

func (h *harness) ticker() *manualTicker {
	var t *manualTicker
	Eventually(h.tickers).Should(Receive(&t))
	return t
}

func (h *harness) frame() anim.Frame {
	var f anim.Frame
	Eventually(h.frames).Should(Receive(&f))
	return f
}

var _ = Describe("Driver", func() {
	var (
		h   *harness
		in  anim.Input
		ctx context.Context
	)

	BeforeEach(func() {
		h = newHarness()
		in = anim.Input{Category: "percentage", ProblemID: 1}
		ctx = context.Background()
	})

	AfterEach(func() {
		h.driver.Stop()
	})

	It("advances the step once per tick and paints the category", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()

		for want := 1; want <= 3; want++ {
			t.fire()
			f := h.frame()
			Expect(f.Step).To(Equal(anim.Step(want)))
			Expect(f.Input).To(Equal(in))
		}
		Expect(h.surface.HasText("40%")).To(BeTrue())
		Expect(h.surface.Ops()[0].Kind).To(Equal(canvas.OpClear))
	})

	It("clears the surface before every frame", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()
		t.fire()
		h.frame()
		first := len(h.surface.Ops())
		t.fire()
		h.frame()
		Expect(h.surface.Ops()).To(HaveLen(first))
		Expect(h.surface.Kind(canvas.OpClear)).To(HaveLen(1))
	})

	It("wraps from 359 back to 0", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()
		var last anim.Frame
		for i := 0; i < scene.Cycle; i++ {
			t.fire()
			last = h.frame()
		}
		Expect(last.Step).To(Equal(anim.Step(0)))
	})

	It("refuses a second start while running", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		Expect(h.driver.Start(ctx, in)).To(MatchError(anim.ErrRunning))
		Expect(h.driver.Running()).To(BeTrue())
	})

	It("starts nothing when the surface is unavailable", func() {
		h = newHarness(anim.WithSurface(func() (canvas.Surface, error) {
			return nil, errors.New("no context")
		}))
		err := h.driver.Start(ctx, in)
		Expect(err).To(MatchError(canvas.ErrNoSurface))
		Expect(err).To(MatchError(ContainSubstring("no context")))
		Consistently(h.tickers, "50ms").ShouldNot(Receive())
		Expect(h.driver.Running()).To(BeFalse())
	})

	It("replaces the ticker when the input changes and keeps counting", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		first := h.ticker()
		first.fire()
		Expect(h.frame().Step).To(Equal(anim.Step(1)))

		next := anim.Input{Category: "dice", ProblemID: 7, Reveal: true}
		h.driver.Update(next)
		second := h.ticker()
		Eventually(first.stopped).Should(BeClosed())

		second.fire()
		f := h.frame()
		Expect(f.Input).To(Equal(next))
		Expect(f.Step).To(Equal(anim.Step(2)))
		Expect(h.surface.HasText("Suma = 7")).To(BeTrue())
	})

	It("keeps the ticker when the same input is supplied", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()
		h.driver.Update(in)
		Consistently(h.tickers, "50ms").ShouldNot(Receive())
		Expect(t.stopped).NotTo(BeClosed())
	})

	It("fades the caption in once the solution is revealed", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()
		t.fire()
		Expect(h.frame().Opacity).To(BeZero())
		Expect(h.surface.HasText(anim.Caption)).To(BeFalse())

		h.driver.Update(anim.Input{Category: "percentage", ProblemID: 1, Reveal: true})
		t = h.ticker()

		prev := 0.0
		for i := 0; i < 40; i++ {
			t.fire()
			f := h.frame()
			Expect(f.Opacity).To(BeNumerically(">=", prev))
			prev = f.Opacity
		}
		Expect(prev).To(BeNumerically(">", 0.9))
		Expect(h.surface.HasText(anim.Caption)).To(BeTrue())
	})

	It("delivers nothing after Stop returns", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()
		t.fire()
		h.frame()

		h.driver.Stop()
		Expect(t.stopped).To(BeClosed())
		Expect(h.driver.Running()).To(BeFalse())
		Consistently(h.frames, "50ms").ShouldNot(Receive())

		h.driver.Stop()
		h.driver.Update(in)
		Consistently(h.tickers, "50ms").ShouldNot(Receive())
	})

	It("ends the loop when the parent context is canceled", func() {
		cctx, cancel := context.WithCancel(ctx)
		Expect(h.driver.Start(cctx, in)).To(Succeed())
		t := h.ticker()
		cancel()
		Eventually(t.stopped).Should(BeClosed())
		Eventually(h.driver.Running).Should(BeFalse())

		Expect(h.driver.Start(ctx, in)).To(Succeed())
		h.ticker()
	})

	It("can start again after Stop", func() {
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		h.ticker()
		h.driver.Stop()
		Expect(h.driver.Start(ctx, in)).To(Succeed())
		t := h.ticker()
		t.fire()
		Expect(h.frame().Step).To(Equal(anim.Step(1)))
	})
})

var _ = Describe("Default surface", func() {
	It("snapshots a 400×400 raster per frame", func() {
		tickers := make(chan *manualTicker, 1)
		frames := make(chan anim.Frame, 4)
		d := anim.New(
			anim.WithLogger(log.New(io.Discard)),
			anim.WithTicker(func(time.Duration) anim.Ticker {
				t := newManualTicker()
				tickers <- t
				return t
			}),
			anim.WithFrameHook(func(f anim.Frame) { frames <- f }),
		)
		defer d.Stop()

		Expect(d.Interval()).To(Equal(50 * time.Millisecond))
		Expect(d.Start(context.Background(), anim.Input{Category: "triangle", Reveal: true})).To(Succeed())

		var t *manualTicker
		Eventually(tickers).Should(Receive(&t))
		t.fire()

		var f anim.Frame
		Eventually(frames).Should(Receive(&f))
		Expect(f.Image).NotTo(BeNil())
		Expect(f.Image.Bounds().Dx()).To(Equal(400))
		Expect(f.Image.Bounds().Dy()).To(Equal(400))
	})
})

var _ = Describe("Frames", func() {
	It("paints consecutive steps from the given start", func() {
		r := canvas.NewRecorder(400, 400)
		var steps []anim.Step
		err := anim.Frames(r, anim.Input{Category: "polygon", Reveal: true}, 358, 4, func(f anim.Frame) error {
			steps = append(steps, f.Step)
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(steps).To(Equal([]anim.Step{358, 359, 0, 1}))
		Expect(r.HasText("9 diagonales")).To(BeTrue())
	})

	It("stops at the first callback error", func() {
		boom := errors.New("boom")
		calls := 0
		err := anim.Frames(canvas.NewRecorder(400, 400), anim.Input{}, 0, 10, func(anim.Frame) error {
			calls++
			if calls == 3 {
				return boom
			}
			return nil
		})
		Expect(err).To(MatchError(boom))
		Expect(calls).To(Equal(3))
	})
})

var _ = Describe("Still", func() {
	It("draws the caption at full strength when revealed", func() {
		r := canvas.NewRecorder(400, 400)
		f := anim.Still(r, anim.Input{Category: "cube", Reveal: true}, 90)
		Expect(f.Step).To(Equal(anim.Step(90)))
		Expect(f.Opacity).To(Equal(1.0))
		op, ok := r.FindText(anim.Caption)
		Expect(ok).To(BeTrue())
		Expect(canvas.SameColor(op.Color, canvas.Solved)).To(BeTrue())
	})

	It("omits the caption for the statement", func() {
		r := canvas.NewRecorder(400, 400)
		anim.Still(r, anim.Input{Category: "cube"}, 90)
		Expect(r.HasText(anim.Caption)).To(BeFalse())
		Expect(r.HasText("a = 5 cm")).To(BeTrue())
	})
})
