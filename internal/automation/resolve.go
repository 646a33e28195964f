package automation

import (
	"fmt"
	"strconv"

	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/catalog"
	"github.com/san-kum/paaviz/internal/scene"
)

// Resolve turns a problem id or a visualization tag into a driver input.
// Tags carry no problem id.
func Resolve(target string, reveal bool) (anim.Input, error) {
	if id, err := strconv.Atoi(target); err == nil {
		p, err := catalog.Get(id)
		if err != nil {
			return anim.Input{}, err
		}
		return anim.Input{Category: p.Visualization, ProblemID: p.ID, Reveal: reveal}, nil
	}
	if target != scene.Default.String() && scene.ParseCategory(target) == scene.Default {
		return anim.Input{}, fmt.Errorf("unknown visualization %q (available: %v)", target, scene.Categories())
	}
	return anim.Input{Category: target, Reveal: reveal}, nil
}
