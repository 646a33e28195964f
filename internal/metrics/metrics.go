package metrics

// Sample is what a trace records for one rendered frame.
type Sample struct {
	Step     int
	Coverage float64
	Digest   uint64
}

// Metric accumulates a scalar over a stream of samples.
type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

// Default is the set every trace reports.
func Default() []Metric {
	return []Metric{
		NewMeanCoverage(),
		NewPeakCoverage(),
		NewMotion(),
		NewSettle(),
	}
}

// Collect feeds samples through ms and returns their values by name.
func Collect(ms []Metric, samples []Sample) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		for _, s := range samples {
			m.Observe(s)
		}
		out[m.Name()] = m.Value()
	}
	return out
}
