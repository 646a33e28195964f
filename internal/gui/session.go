package gui

import (
	"image"
	"image/color"
	"time"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/catalog"
)

// session is the answer state of the window, kept apart from raylib so it
// can be driven by plain clock values.
type session struct {
	problem    catalog.Problem
	answer     int
	answeredAt time.Time
	revealed   bool
	delay      time.Duration
	completed  map[int]bool
}

func newSession(delay time.Duration) *session {
	return &session{answer: -1, delay: delay, completed: make(map[int]bool)}
}

func (s *session) open(id int) error {
	p, err := catalog.Get(id)
	if err != nil {
		return err
	}
	s.problem = p
	s.answer = -1
	s.revealed = false
	s.answeredAt = time.Time{}
	return nil
}

// pick records option i. Only the first pick per problem counts.
func (s *session) pick(i int, now time.Time) bool {
	if s.answer >= 0 || i < 0 || i >= len(s.problem.Options) {
		return false
	}
	s.answer = i
	s.answeredAt = now
	s.completed[s.problem.ID] = true
	return true
}

// poll reveals the solution once the delay since the pick has passed and
// reports whether that happened on this call.
func (s *session) poll(now time.Time) bool {
	if s.revealed || s.answer < 0 || now.Sub(s.answeredAt) < s.delay {
		return false
	}
	s.revealed = true
	return true
}

func (s *session) correct() bool {
	return s.answer >= 0 && s.problem.Check(s.problem.Options[s.answer])
}

func (s *session) input() anim.Input {
	return anim.Input{
		Category:  s.problem.Visualization,
		ProblemID: s.problem.ID,
		Reveal:    s.revealed,
	}
}

// pixels flattens img row by row for rl.UpdateTexture.
func pixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	out := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, img.RGBAAt(x, y))
		}
	}
	return out
}
