package metrics

import "math"

type MeanCoverage struct {
	name    string
	sum     float64
	samples int
}

func NewMeanCoverage() *MeanCoverage {
	return &MeanCoverage{name: "coverage_mean"}
}

func (c *MeanCoverage) Name() string { return c.name }

func (c *MeanCoverage) Observe(s Sample) {
	c.sum += s.Coverage
	c.samples++
}

func (c *MeanCoverage) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return c.sum / float64(c.samples)
}

func (c *MeanCoverage) Reset() {
	c.sum = 0
	c.samples = 0
}

type PeakCoverage struct {
	name string
	peak float64
}

func NewPeakCoverage() *PeakCoverage {
	return &PeakCoverage{name: "coverage_peak"}
}

func (c *PeakCoverage) Name() string { return c.name }

func (c *PeakCoverage) Observe(s Sample) {
	c.peak = math.Max(c.peak, s.Coverage)
}

func (c *PeakCoverage) Value() float64 { return c.peak }

func (c *PeakCoverage) Reset() { c.peak = 0 }
