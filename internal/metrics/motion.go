package metrics

// Motion is the fraction of frames whose pixels differ from the frame
// before. A static diagram scores 0, one that changes every tick scores 1.
type Motion struct {
	name     string
	last     uint64
	changes  int
	samples  int
	hasFirst bool
}

func NewMotion() *Motion {
	return &Motion{name: "motion"}
}

func (m *Motion) Name() string { return m.name }

func (m *Motion) Observe(s Sample) {
	if m.hasFirst {
		m.samples++
		if s.Digest != m.last {
			m.changes++
		}
	}
	m.last = s.Digest
	m.hasFirst = true
}

func (m *Motion) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return float64(m.changes) / float64(m.samples)
}

func (m *Motion) Reset() {
	*m = Motion{name: m.name}
}

// Settle is the step of the last frame that differed from its predecessor,
// or the first step when nothing ever changes. One-shot animations settle
// early; looping ones settle near the end of the trace.
type Settle struct {
	name     string
	last     uint64
	step     int
	hasFirst bool
}

func NewSettle() *Settle {
	return &Settle{name: "settle_step"}
}

func (m *Settle) Name() string { return m.name }

func (m *Settle) Observe(s Sample) {
	if !m.hasFirst || s.Digest != m.last {
		m.step = s.Step
	}
	m.last = s.Digest
	m.hasFirst = true
}

func (m *Settle) Value() float64 { return float64(m.step) }

func (m *Settle) Reset() {
	*m = Settle{name: m.name}
}
