package config

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned by Apply for names not in Presets.
var ErrUnknownPreset = errors.New("config: unknown preset")

// Preset overrides part of a Config. Zero fields leave the base untouched.
type Preset struct {
	IntervalMS   int
	RevealMS     int
	Theme        string
	FrameDelayCS int
	Stride       int
}

var Presets = map[string]Preset{
	"default": {},
	"slow": {
		IntervalMS: 100, RevealMS: 1000, FrameDelayCS: 10,
	},
	"fast": {
		IntervalMS: 25, RevealMS: 250, FrameDelayCS: 3, Stride: 6,
	},
	"classroom": {
		IntervalMS: 60, RevealMS: 1500, Theme: "chalkboard", FrameDelayCS: 6, Stride: 2,
	},
}

func GetPreset(name string) (Preset, bool) {
	p, ok := Presets[name]
	return p, ok
}

// Apply overlays the named preset onto cfg.
func (c *Config) Apply(name string) error {
	p, ok := GetPreset(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	if p.IntervalMS > 0 {
		c.Render.IntervalMS = p.IntervalMS
	}
	if p.RevealMS > 0 {
		c.Reveal = p.RevealMS
	}
	if p.Theme != "" {
		c.Theme = p.Theme
	}
	if p.FrameDelayCS > 0 {
		c.Export.FrameDelayCS = p.FrameDelayCS
	}
	if p.Stride > 0 {
		c.Export.Stride = p.Stride
	}
	return nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
