package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/catalog"
	"github.com/san-kum/paaviz/internal/config"
	"github.com/san-kum/paaviz/internal/viz"
)

const (
	previewCols = 40
	previewRows = 20
)

type view int

const (
	viewHome view = iota
	viewList
	viewDetail
)

type frameMsg struct {
	step    anim.Step
	reveal  bool
	preview string
}

type revealMsg struct{ gen int }

// Option adjusts a Model before it runs.
type Option func(*Model)

// WithDriverOptions passes extra options to the animation driver, after
// the ones derived from config.
func WithDriverOptions(opts ...anim.Option) Option {
	return func(m *Model) { m.driverOpts = append(m.driverOpts, opts...) }
}

// Model is the bubbletea model for the study tool: a home screen, the
// problem list and a problem detail view with its animated diagram.
type Model struct {
	ctx        context.Context
	cfg        *config.Config
	logger     *log.Logger
	driverOpts []anim.Option

	theme  viz.Theme
	styles viz.Styles

	view     view
	subject  catalog.Subject
	problems []catalog.Problem
	cursor   int

	problem   catalog.Problem
	answer    int
	revealed  bool
	gen       int
	completed map[int]bool

	driver  *anim.Driver
	frames  chan anim.Frame
	done    chan struct{}
	preview string
	step    anim.Step
	err     error

	width  int
	height int
}

func New(ctx context.Context, cfg *config.Config, logger *log.Logger, opts ...Option) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	theme := viz.GetTheme(cfg.Theme)
	subject, err := catalog.ParseSubject(cfg.Subject)
	if err != nil {
		logger.Warn("ignoring subject filter", "subject", cfg.Subject, "err", err)
	}
	m := Model{
		ctx:       ctx,
		cfg:       cfg,
		logger:    logger,
		theme:     theme,
		styles:    viz.NewStyles(theme),
		subject:   subject,
		problems:  catalog.BySubject(subject),
		answer:    -1,
		completed: make(map[int]bool),
		width:     100,
		height:    40,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close stops the animation driver if one is running.
func (m Model) Close() {
	m.stopDriver()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case frameMsg:
		if m.view != viewDetail || m.done == nil {
			return m, nil
		}
		m.step = msg.step
		m.preview = msg.preview
		return m, m.waitFrame()
	case revealMsg:
		if msg.gen != m.gen || m.view != viewDetail || m.answer < 0 {
			return m, nil
		}
		m.revealed = true
		if m.driver != nil {
			m.driver.Update(m.input())
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.stopDriver()
		return m, tea.Quit
	}
	switch m.view {
	case viewHome:
		return m.homeKey(msg)
	case viewList:
		return m.listKey(msg)
	case viewDetail:
		return m.detailKey(msg)
	}
	return m, nil
}

func (m Model) homeKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter", " ":
		m.view = viewList
	case "t":
		m = m.cycleTheme()
	}
	return m, nil
}

func (m Model) listKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit
	case "esc", "b":
		m.view = viewHome
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.problems)-1 {
			m.cursor++
		}
	case "0", "1", "2", "3", "4":
		m.subject = catalog.Subject(key[0] - '0')
		m.problems = catalog.BySubject(m.subject)
		m.cursor = 0
	case "t":
		m = m.cycleTheme()
	case "enter", " ":
		if len(m.problems) == 0 {
			return m, nil
		}
		return m.open(m.problems[m.cursor].ID)
	}
	return m, nil
}

func (m Model) detailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q":
		m.stopDriver()
		return m, tea.Quit
	case "esc", "backspace":
		m.stopDriver()
		m.driver, m.frames, m.done = nil, nil, nil
		m.view = viewList
		return m, nil
	case "n", "right":
		return m.open(catalog.Next(m.problem.ID))
	case "p", "left":
		return m.open(catalog.Prev(m.problem.ID))
	case "r":
		return m.open(m.problem.ID)
	case "t":
		m = m.cycleTheme()
	default:
		if i, ok := optionIndex(key, len(m.problem.Options)); ok && m.answer < 0 {
			return m.pick(i)
		}
	}
	return m, nil
}

func optionIndex(key string, n int) (int, bool) {
	if len(key) != 1 {
		return 0, false
	}
	i := int(strings.ToLower(key)[0]) - 'a'
	return i, i >= 0 && i < n
}

func (m Model) cycleTheme() Model {
	m.theme = viz.NextTheme(m.theme)
	m.styles = viz.NewStyles(m.theme)
	return m
}

func (m Model) input() anim.Input {
	return anim.Input{
		Category:  m.problem.Visualization,
		ProblemID: m.problem.ID,
		Reveal:    m.revealed,
	}
}

// open shows problem id with a fresh answer state. A running driver is
// retargeted; otherwise a new one is started.
func (m Model) open(id int) (Model, tea.Cmd) {
	p, err := catalog.Get(id)
	if err != nil {
		m.err = err
		return m, nil
	}
	m.view = viewDetail
	m.problem = p
	m.answer = -1
	m.revealed = false
	m.gen++
	m.err = nil
	m.logger.Debug("problem opened", "id", p.ID, "visualization", p.Visualization)

	if m.driver != nil && m.driver.Running() {
		m.driver.Update(m.input())
		return m, nil
	}
	return m.startDriver()
}

func (m Model) startDriver() (Model, tea.Cmd) {
	frames := make(chan anim.Frame, 1)
	opts := []anim.Option{
		anim.WithInterval(m.cfg.Interval()),
		anim.WithLogger(m.logger.WithPrefix("anim")),
		anim.WithFrameHook(func(f anim.Frame) {
			select {
			case frames <- f:
			default:
			}
		}),
	}
	d := anim.New(append(opts, m.driverOpts...)...)
	if err := d.Start(m.ctx, m.input()); err != nil {
		m.logger.Warn("visualization unavailable", "id", m.problem.ID, "err", err)
		m.err = err
		m.driver, m.frames, m.done = nil, nil, nil
		m.preview = ""
		return m, nil
	}
	m.driver = d
	m.frames = frames
	m.done = make(chan struct{})
	m.preview = ""
	return m, m.waitFrame()
}

func (m Model) stopDriver() {
	if m.driver == nil {
		return
	}
	m.driver.Stop()
	if m.done != nil {
		select {
		case <-m.done:
		default:
			close(m.done)
		}
	}
}

// waitFrame blocks until the driver delivers a frame and converts it to a
// braille preview off the update loop.
func (m Model) waitFrame() tea.Cmd {
	frames, done := m.frames, m.done
	if frames == nil || done == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case f := <-frames:
			msg := frameMsg{step: f.Step, reveal: f.Input.Reveal}
			if f.Image != nil {
				msg.preview = viz.FromImage(f.Image, previewCols, previewRows, canvas.White, viz.DefaultThreshold).Render()
			}
			return msg
		case <-done:
			return nil
		}
	}
}

func (m Model) pick(i int) (Model, tea.Cmd) {
	m.answer = i
	m.completed[m.problem.ID] = true
	choice := m.problem.Options[i]
	m.logger.Info("answer", "id", m.problem.ID, "choice", choice, "correct", m.problem.Check(choice))

	gen := m.gen
	delay := m.cfg.RevealDelay()
	if delay <= 0 {
		return m, func() tea.Msg { return revealMsg{gen: gen} }
	}
	return m, tea.Tick(delay, func(time.Time) tea.Msg { return revealMsg{gen: gen} })
}

// Completed is the number of problems answered this session.
func (m Model) Completed() int { return len(m.completed) }

func (m Model) View() string {
	switch m.view {
	case viewList:
		return m.viewList()
	case viewDetail:
		return m.viewDetail()
	}
	return m.viewHome()
}

func (m Model) viewHome() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + viz.GradientText("Guía de Estudio PAA", m.theme.Primary, m.theme.Secondary) + "\n")
	b.WriteString("   " + viz.Separator(40, s.Subtle) + "\n\n")
	b.WriteString("   " + s.Text.Render("Prueba de Aptitud Académica: problemas con visualizaciones animadas.") + "\n\n")

	for _, subj := range catalog.Subjects() {
		b.WriteString(fmt.Sprintf("     %s %s  %s\n",
			subj.Icon(),
			lipgloss.NewStyle().Foreground(lipgloss.Color(subj.Color())).Render(fmt.Sprintf("%-12s", subj.Title())),
			s.Subtle.Render(fmt.Sprintf("%d problemas", len(catalog.BySubject(subj))))))
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("   %s %s   %s %s\n",
		s.Selected.Render(fmt.Sprint(catalog.Len())), s.Subtle.Render("problemas"),
		s.Selected.Render(fmt.Sprint(len(catalog.Subjects()))), s.Subtle.Render("categorías")))
	b.WriteString("\n")
	b.WriteString(s.KeyHint.Render("   enter comenzar a practicar   t tema   q salir") + "\n")
	return b.String()
}

func (m Model) viewList() string {
	s := m.styles
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString("   " + s.Title.Render("Problemas de Matemáticas PAA") + "\n")
	b.WriteString("   " + s.Subtle.Render("Selecciona un problema para ver su solución animada") + "\n\n")

	b.WriteString("   ")
	filters := append([]catalog.Subject{catalog.AnySubject}, catalog.Subjects()...)
	for i, subj := range filters {
		label := fmt.Sprintf("%d %s", i, subj.Title())
		if subj == m.subject {
			b.WriteString(viz.Badge(label, subj.Color()) + " ")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(subj.Color())).Render(label) + "  ")
		}
	}
	b.WriteString("\n\n")

	for i, p := range m.problems {
		mark := "  "
		if m.completed[p.ID] {
			mark = s.Correct.Render("✓ ")
		}
		border := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Subject.Color())).Render("▍")
		line := fmt.Sprintf("%-14s %s", p.String(), p.Teaser(60))
		if i == m.cursor {
			b.WriteString("  " + s.Selected.Render("▸") + border + mark + s.Text.Render(line) + "\n")
		} else {
			b.WriteString("   " + border + mark + s.Subtle.Render(line) + "\n")
		}
	}

	done := m.Completed()
	b.WriteString("\n   " + viz.ProgressBar(float64(done)/float64(catalog.Len()), 30, m.theme.Success) + "\n")
	b.WriteString("   " + s.Subtle.Render(fmt.Sprintf("%d de %d problemas completados", done, catalog.Len())) + "\n\n")
	b.WriteString(s.KeyHint.Render("   ↑↓ elegir   enter abrir   0-4 filtrar   esc inicio   q salir") + "\n")
	return b.String()
}

func (m Model) viewDetail() string {
	s := m.styles
	p := m.problem
	var left strings.Builder

	left.WriteString(s.Subtle.Render(fmt.Sprintf("Problema %d de %d", p.ID, catalog.Len())) + "\n\n")
	left.WriteString(viz.Badge(strings.ToUpper(p.Subject.String()), p.Subject.Color()) + "\n\n")
	left.WriteString(s.Text.Render(viz.Wrap(p.Question, 48)) + "\n\n")

	for i, opt := range p.Options {
		line := fmt.Sprintf(" %s  %s", catalog.Letter(i), opt)
		switch {
		case i == m.answer && p.Check(opt):
			left.WriteString(s.Correct.Render(line+"  ✓") + "\n")
		case i == m.answer:
			left.WriteString(s.Wrong.Render(line+"  ✗") + "\n")
		case m.revealed && p.Check(opt):
			left.WriteString(s.Correct.Render(line) + "\n")
		case m.answer >= 0:
			left.WriteString(s.Subtle.Render(line) + "\n")
		default:
			left.WriteString(s.Text.Render(line) + "\n")
		}
	}

	if m.revealed {
		left.WriteString("\n")
		if p.Check(p.Options[m.answer]) {
			left.WriteString(s.Correct.Render("¡Correcto! 🎉") + "\n\n")
		} else {
			left.WriteString(s.Wrong.Render("Incorrecto 😔") + "\n\n")
		}
		left.WriteString(s.Title.Render("Explicación:") + "\n")
		left.WriteString(s.Text.Render(viz.Wrap(p.Explanation, 48)) + "\n\n")
		left.WriteString(s.Text.Render("Respuesta correcta: ") + s.Correct.Render(p.Correct) + "\n")
	}

	right := m.viewPreview()
	body := lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(52).Render(left.String()), "  ", right)

	hint := "   a-d responder   n/p siguiente/anterior   r reintentar   esc/⌫ lista   q salir"
	if m.answer >= 0 && !m.revealed {
		hint = "   " + viz.AnimatedSpinner(int(m.step)) + " revisando..."
	}
	return "\n" + lipgloss.NewStyle().PaddingLeft(3).Render(body) + "\n\n" + s.KeyHint.Render(hint) + "\n"
}

func (m Model) viewPreview() string {
	s := m.styles
	title := s.Title.Render("Visualización Interactiva")
	var content string
	switch {
	case m.err != nil:
		content = s.Wrong.Render("sin superficie de dibujo")
	case m.preview == "":
		content = s.Subtle.Render(strings.Repeat("\n", previewRows/2) + "cargando...")
	default:
		content = m.preview
	}
	footer := s.Subtle.Render(fmt.Sprintf("paso %3d", m.step))
	return s.Panel.Render(title + "\n" + content + "\n" + footer)
}
