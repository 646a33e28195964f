package anim

import "github.com/san-kum/paaviz/internal/scene"

// Step is the animation counter. It always lies in [0, scene.Cycle).
type Step int

// Next returns the step after s, wrapping from 359 to 0.
func (s Step) Next() Step {
	return Step((int(s)%scene.Cycle + 1 + scene.Cycle) % scene.Cycle)
}

func (s Step) prev() Step {
	return Step((int(s)%scene.Cycle - 1 + scene.Cycle) % scene.Cycle)
}
