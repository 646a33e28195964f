package tui

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/canvas"
	"github.com/san-kum/paaviz/internal/viz"
)

const (
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer prints driver frames straight to a terminal as braille,
// without the full-screen app. Hook it up with anim.WithFrameHook(r.OnFrame).
type LiveRenderer struct {
	out   io.Writer
	title string
	cols  int
	rows  int
	color bool

	mu     sync.Mutex
	frames int
}

func NewLiveRenderer(out io.Writer, title string, cols, rows int, color bool) *LiveRenderer {
	if cols <= 0 {
		cols = previewCols
	}
	if rows <= 0 {
		rows = previewRows
	}
	return &LiveRenderer{out: out, title: title, cols: cols, rows: rows, color: color}
}

func (r *LiveRenderer) OnFrame(f anim.Frame) {
	if f.Image == nil {
		return
	}
	c := viz.FromImage(f.Image, r.cols, r.rows, canvas.White, viz.DefaultThreshold)
	body := c.String()
	if r.color {
		body = c.Render()
	}

	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  paso=%d\n", r.title, f.Step))
	b.WriteString("  " + strings.Repeat("-", r.cols) + "\n")
	for _, row := range strings.Split(strings.TrimRight(body, "\n"), "\n") {
		b.WriteString("  " + row + "\n")
	}
	b.WriteString("  " + strings.Repeat("-", r.cols) + "\n")
	if f.Input.Reveal {
		b.WriteString(fmt.Sprintf("  %s %3.0f%%\n", anim.Caption, f.Opacity*100))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames++
	fmt.Fprint(r.out, b.String())
}

// Frames is the number of frames printed so far.
func (r *LiveRenderer) Frames() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }
func (r *LiveRenderer) Stop()  { fmt.Fprint(r.out, showCursor) }
