package tui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	. "github.com/onsi/gomega"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/catalog"
	"github.com/san-kum/paaviz/internal/config"
)

type manualTicker struct {
	c    chan time.Time
	once sync.Once
	stop chan struct{}
}

func newManualTicker() *manualTicker {
	return &manualTicker{c: make(chan time.Time), stop: make(chan struct{})}
}

func (t *manualTicker) C() <-chan time.Time { return t.c }
func (t *manualTicker) Stop()               { t.once.Do(func() { close(t.stop) }) }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

type fixture struct {
	tickers chan *manualTicker
	opts    []Option
}

func newFixture(surface func() (canvas.Surface, error)) *fixture {
	f := &fixture{tickers: make(chan *manualTicker, 8)}
	dopts := []anim.Option{
		anim.WithTicker(func(time.Duration) anim.Ticker {
			t := newManualTicker()
			f.tickers <- t
			return t
		}),
	}
	if surface != nil {
		dopts = append(dopts, anim.WithSurface(surface))
	}
	f.opts = []Option{WithDriverOptions(dopts...)}
	return f
}

func newModel(t *testing.T, f *fixture, mutate func(*config.Config)) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Reveal = 0
	if mutate != nil {
		mutate(cfg)
	}
	m := New(context.Background(), cfg, log.New(io.Discard), f.opts...)
	t.Cleanup(func() { m.Close() })
	return m
}

func send(m Model, msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func recorderSurface() (canvas.Surface, error) { return canvas.NewRecorder(400, 400), nil }

func TestHomeToList(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t, newFixture(recorderSurface), nil)

	g.Expect(m.View()).To(ContainSubstring("Guía de Estudio PAA"))
	g.Expect(m.View()).To(ContainSubstring("problemas"))

	m, _ = send(m, enter)
	g.Expect(m.view).To(Equal(viewList))
	g.Expect(m.View()).To(ContainSubstring("Problemas de Matemáticas PAA"))
	g.Expect(m.View()).To(ContainSubstring("0 de 20 problemas completados"))

	m, _ = send(m, esc)
	g.Expect(m.view).To(Equal(viewHome))
}

func TestListFilterAndCursor(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t, newFixture(recorderSurface), nil)
	m, _ = send(m, enter)

	m, _ = send(m, runes("4"))
	g.Expect(m.subject).To(Equal(catalog.Probability))
	g.Expect(m.problems).To(HaveLen(2))

	m, _ = send(m, runes("j"))
	m, _ = send(m, runes("j"))
	g.Expect(m.cursor).To(Equal(1))

	m, _ = send(m, runes("0"))
	g.Expect(m.problems).To(HaveLen(catalog.Len()))
	g.Expect(m.cursor).To(Equal(0))
}

func TestConfigSubjectFilters(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t, newFixture(recorderSurface), func(c *config.Config) { c.Subject = "geometry" })
	g.Expect(m.problems).To(HaveLen(6))

	m = newModel(t, newFixture(recorderSurface), func(c *config.Config) { c.Subject = "chemistry" })
	g.Expect(m.subject).To(Equal(catalog.AnySubject))
}

func openFirst(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = send(m, enter)
	m, _ = send(m, enter)
	t.Cleanup(m.Close)
	return m
}

func TestAnswerRevealsSolution(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))

	g.Expect(m.view).To(Equal(viewDetail))
	g.Expect(m.problem.ID).To(Equal(1))
	g.Expect(m.driver.Running()).To(BeTrue())
	g.Expect(m.View()).NotTo(ContainSubstring("Explicación"))

	m, cmd := send(m, runes("b"))
	g.Expect(m.answer).To(Equal(1))
	g.Expect(m.Completed()).To(Equal(1))
	g.Expect(cmd).NotTo(BeNil())

	m, _ = send(m, cmd())
	g.Expect(m.revealed).To(BeTrue())
	view := m.View()
	g.Expect(view).To(ContainSubstring("¡Correcto!"))
	g.Expect(view).To(ContainSubstring("Explicación:"))
	g.Expect(view).To(ContainSubstring("Respuesta correcta:"))
}

func TestWrongAnswerAndSingleChoice(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))

	m, cmd := send(m, runes("a"))
	m, _ = send(m, cmd())
	g.Expect(m.View()).To(ContainSubstring("Incorrecto"))

	m, cmd = send(m, runes("c"))
	g.Expect(cmd).To(BeNil())
	g.Expect(m.answer).To(Equal(0))
}

func TestAnswerOutOfRangeIgnored(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))

	m, cmd := send(m, runes("e"))
	g.Expect(cmd).To(BeNil())
	g.Expect(m.answer).To(Equal(-1))
}

func TestRevealDelayUsesTick(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), func(c *config.Config) { c.Reveal = 1500 }))

	m, cmd := send(m, runes("b"))
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(m.revealed).To(BeFalse())
	g.Expect(m.View()).To(ContainSubstring("revisando"))
}

func TestStaleRevealIgnored(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))

	m, cmd := send(m, runes("b"))
	stale := cmd()
	m, _ = send(m, runes("n"))
	g.Expect(m.problem.ID).To(Equal(2))

	m, _ = send(m, stale)
	g.Expect(m.revealed).To(BeFalse())
	g.Expect(m.answer).To(Equal(-1))
}

func TestNavigationReusesDriver(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(recorderSurface)
	m := openFirst(t, newModel(t, f, nil))
	d := m.driver

	m, _ = send(m, runes("p"))
	g.Expect(m.problem.ID).To(Equal(catalog.Len()))
	g.Expect(m.driver).To(BeIdenticalTo(d))

	m, _ = send(m, runes("n"))
	m, _ = send(m, runes("n"))
	g.Expect(m.problem.ID).To(Equal(2))
}

func TestRetryClearsAnswer(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))

	m, cmd := send(m, runes("a"))
	m, _ = send(m, cmd())
	m, _ = send(m, runes("r"))
	g.Expect(m.answer).To(Equal(-1))
	g.Expect(m.revealed).To(BeFalse())
	g.Expect(m.problem.ID).To(Equal(1))
	g.Expect(m.Completed()).To(Equal(1))
}

func TestOptionBPicksInsteadOfLeaving(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))

	m, _ = send(m, runes("b"))
	g.Expect(m.view).To(Equal(viewDetail))
	g.Expect(m.answer).To(Equal(1))
	g.Expect(m.driver).NotTo(BeNil())

	m, _ = send(m, runes("B"))
	g.Expect(m.view).To(Equal(viewDetail))
	g.Expect(m.answer).To(Equal(1))
}

func TestBackspaceLeavesDetail(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))
	d := m.driver

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyBackspace})
	g.Expect(m.view).To(Equal(viewList))
	g.Expect(d.Running()).To(BeFalse())
	g.Expect(m.answer).To(Equal(-1))
}

func TestLeavingDetailStopsDriver(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))
	d := m.driver

	m, _ = send(m, esc)
	g.Expect(m.view).To(Equal(viewList))
	g.Expect(d.Running()).To(BeFalse())
	g.Expect(m.driver).To(BeNil())
}

func TestMissingSurface(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(func() (canvas.Surface, error) { return nil, errors.New("no context") })
	m := openFirst(t, newModel(t, f, nil))

	g.Expect(m.err).To(MatchError(canvas.ErrNoSurface))
	g.Expect(m.driver).To(BeNil())
	g.Expect(m.View()).To(ContainSubstring("sin superficie de dibujo"))

	m, cmd := send(m, runes("b"))
	m, _ = send(m, cmd())
	g.Expect(m.revealed).To(BeTrue())
}

func TestFrameUpdatesPreview(t *testing.T) {
	g := NewWithT(t)
	f := newFixture(nil)
	m := newModel(t, f, nil)
	m, _ = send(m, enter)
	m, cmd := send(m, enter)
	g.Expect(cmd).NotTo(BeNil())
	t.Cleanup(m.Close)

	var tk *manualTicker
	g.Eventually(f.tickers).Should(Receive(&tk))
	go func() {
		select {
		case tk.c <- time.Now():
		case <-time.After(time.Second):
		}
	}()

	msg := cmd()
	fm, ok := msg.(frameMsg)
	g.Expect(ok).To(BeTrue())
	g.Expect(fm.step).To(Equal(anim.Step(1)))
	g.Expect(fm.preview).NotTo(BeEmpty())

	m, next := send(m, msg)
	g.Expect(m.step).To(Equal(anim.Step(1)))
	g.Expect(m.View()).To(ContainSubstring("paso   1"))
	g.Expect(next).NotTo(BeNil())
}

func TestThemeCycle(t *testing.T) {
	g := NewWithT(t)
	m := newModel(t, newFixture(recorderSurface), nil)
	before := m.theme.Name

	m, _ = send(m, runes("t"))
	g.Expect(m.theme.Name).NotTo(Equal(before))
}

func TestCtrlCQuits(t *testing.T) {
	g := NewWithT(t)
	m := openFirst(t, newModel(t, newFixture(recorderSurface), nil))
	d := m.driver

	_, cmd := send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	g.Expect(cmd).NotTo(BeNil())
	g.Expect(cmd()).To(Equal(tea.Quit()))
	g.Expect(d.Running()).To(BeFalse())
}

func TestLiveRenderer(t *testing.T) {
	g := NewWithT(t)
	r, err := canvas.NewRaster(400, 400)
	g.Expect(err).NotTo(HaveOccurred())

	var out bytes.Buffer
	lr := NewLiveRenderer(&out, "Problema #7", 30, 15, false)
	lr.Start()
	lr.OnFrame(anim.Still(r, anim.Input{Category: "dice", ProblemID: 7, Reveal: true}, 5))
	lr.OnFrame(anim.Frame{})
	lr.Stop()

	g.Expect(lr.Frames()).To(Equal(1))
	s := out.String()
	g.Expect(s).To(HavePrefix(hideCursor))
	g.Expect(s).To(HaveSuffix(showCursor))
	g.Expect(s).To(ContainSubstring("Problema #7  paso=5"))
	g.Expect(s).To(ContainSubstring(anim.Caption + " 100%"))
	g.Expect(strings.Count(s, "\n")).To(BeNumerically(">=", 15))
}
