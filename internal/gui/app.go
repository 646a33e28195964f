package gui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/catalog"
	"github.com/san-kum/paaviz/internal/config"
	"github.com/san-kum/paaviz/internal/viz"
)

const (
	winWidth  = 900
	winHeight = 440
	margin    = 20
	panelX    = margin*2 + anim.SurfaceSize
)

var (
	ColBg      = rl.NewColor(250, 250, 252, 255)
	ColText    = rl.NewColor(51, 51, 51, 255)
	ColTextDim = rl.NewColor(136, 136, 170, 255)
	ColAccent  = rl.NewColor(102, 126, 234, 255)
	ColCorrect = rl.NewColor(76, 175, 80, 255)
	ColWrong   = rl.NewColor(244, 67, 54, 255)
)

// fontPaths are tried in order; the raylib default font is the fallback.
var fontPaths = []string{
	"/usr/share/fonts/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

type App struct {
	cfg    *config.Config
	logger *log.Logger
	driver *anim.Driver
	frames chan anim.Frame
	sess   *session

	font   rl.Font
	tex    rl.Texture2D
	hasTex bool
}

func initWindow() {
	rl.InitWindow(winWidth, winHeight, "paaviz")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	var runes []rune
	for r := rune(32); r < 256; r++ {
		runes = append(runes, r)
	}
	runes = append(runes, []rune("πθ√²³⁴₂×÷−≤≥…")...)
	for _, p := range fontPaths {
		f := rl.LoadFontEx(p, 32, runes)
		if f.Texture.ID != 0 {
			rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
			return f
		}
	}
	return rl.GetFontDefault()
}

// Run opens a window showing problem id and blocks until it is closed or
// ctx ends. The animation runs on its own driver; frames are uploaded to a
// texture on the window thread.
func Run(ctx context.Context, cfg *config.Config, logger *log.Logger, id int) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = log.Default()
	}
	sess := newSession(cfg.RevealDelay())
	if err := sess.open(id); err != nil {
		return fmt.Errorf("gui: %w", err)
	}

	initWindow()
	defer rl.CloseWindow()

	a := &App{cfg: cfg, logger: logger, sess: sess, frames: make(chan anim.Frame, 1), font: loadFont()}
	a.driver = anim.New(
		anim.WithInterval(cfg.Interval()),
		anim.WithLogger(logger.WithPrefix("anim")),
		anim.WithFrameHook(a.offer),
	)
	if err := a.driver.Start(ctx, sess.input()); err != nil {
		return fmt.Errorf("gui: %w", err)
	}
	defer a.driver.Stop()
	defer a.unload()

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		if !a.Update(time.Now()) {
			break
		}
		a.Draw()
	}
	logger.Info("window closed", "completed", len(sess.completed))
	return nil
}

// offer keeps only the newest frame for the window thread.
func (a *App) offer(f anim.Frame) {
	select {
	case a.frames <- f:
	default:
		select {
		case <-a.frames:
		default:
		}
		select {
		case a.frames <- f:
		default:
		}
	}
}

func (a *App) unload() {
	if a.hasTex {
		rl.UnloadTexture(a.tex)
	}
}

// Update handles input and uploads a pending frame. It returns false when
// the user asked to quit.
func (a *App) Update(now time.Time) bool {
	if rl.IsKeyPressed(rl.KeyQ) || rl.IsKeyPressed(rl.KeyEscape) {
		return false
	}
	for i, key := range []int32{rl.KeyA, rl.KeyB, rl.KeyC, rl.KeyD} {
		if rl.IsKeyPressed(key) && a.sess.pick(i, now) {
			choice := a.sess.problem.Options[i]
			a.logger.Info("answer", "id", a.sess.problem.ID, "choice", choice, "correct", a.sess.correct())
		}
	}
	switch {
	case rl.IsKeyPressed(rl.KeyN) || rl.IsKeyPressed(rl.KeyRight):
		a.show(catalog.Next(a.sess.problem.ID))
	case rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyLeft):
		a.show(catalog.Prev(a.sess.problem.ID))
	case rl.IsKeyPressed(rl.KeyR):
		a.show(a.sess.problem.ID)
	}
	if a.sess.poll(now) {
		a.driver.Update(a.sess.input())
	}

	select {
	case f := <-a.frames:
		a.upload(f)
	default:
	}
	return true
}

func (a *App) show(id int) {
	if err := a.sess.open(id); err != nil {
		a.logger.Warn("problem unavailable", "id", id, "err", err)
		return
	}
	a.driver.Update(a.sess.input())
}

func (a *App) upload(f anim.Frame) {
	if f.Image == nil {
		return
	}
	if !a.hasTex {
		img := rl.NewImageFromImage(f.Image)
		a.tex = rl.LoadTextureFromImage(img)
		rl.UnloadImage(img)
		a.hasTex = true
		return
	}
	rl.UpdateTexture(a.tex, pixels(f.Image))
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.hasTex {
		rl.DrawTexture(a.tex, margin, margin, rl.White)
	}
	rl.DrawRectangleLines(margin, margin, anim.SurfaceSize, anim.SurfaceSize, ColTextDim)
	a.drawPanel()

	rl.EndDrawing()
}

func (a *App) drawPanel() {
	s := a.sess
	p := s.problem
	y := margin

	a.drawText(fmt.Sprintf("Problema %d de %d", p.ID, catalog.Len()), panelX, y, 14, ColTextDim)
	a.drawText(strings.ToUpper(p.Subject.String()), winWidth-margin-110, y, 14, hexColor(p.Subject.Color()))
	y += 28

	for _, line := range strings.Split(viz.Wrap(p.Question, 52), "\n") {
		a.drawText(line, panelX, y, 16, ColText)
		y += 20
	}
	y += 10

	for i, opt := range p.Options {
		col := ColText
		switch {
		case i == s.answer && s.correct():
			col = ColCorrect
		case i == s.answer:
			col = ColWrong
		case s.revealed && p.Check(opt):
			col = ColCorrect
		}
		a.drawText(fmt.Sprintf("%s)  %s", catalog.Letter(i), opt), panelX+10, y, 18, col)
		y += 26
	}
	y += 10

	if s.revealed {
		if s.correct() {
			a.drawText("¡Correcto!", panelX, y, 18, ColCorrect)
		} else {
			a.drawText("Incorrecto", panelX, y, 18, ColWrong)
		}
		y += 26
		for _, line := range strings.Split(viz.Wrap(p.Explanation, 58), "\n") {
			a.drawText(line, panelX, y, 14, ColText)
			y += 18
		}
	}

	a.drawText(fmt.Sprintf("%d de %d completados", len(s.completed), catalog.Len()), panelX, winHeight-margin-36, 14, ColTextDim)
	a.drawText("A-D RESPONDER  N/P NAVEGAR  R REINTENTAR  Q SALIR", panelX, winHeight-margin-14, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func hexColor(hex string) rl.Color {
	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.TrimPrefix(hex, "#"), "%02x%02x%02x", &r, &g, &b); err != nil {
		return ColAccent
	}
	return rl.NewColor(r, g, b, 255)
}
