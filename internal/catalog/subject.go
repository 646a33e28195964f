package catalog

import (
	"fmt"
	"strings"
)

// Subject is the mathematical area a problem belongs to. AnySubject is the
// list filter that matches every problem.
type Subject int

const (
	AnySubject Subject = iota
	Arithmetic
	Algebra
	Geometry
	Probability
)

var subjectNames = [...]string{"all", "arithmetic", "algebra", "geometry", "probability"}

var subjectColors = [...]string{"#667eea", "#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4"}

var subjectIcons = [...]string{"📚", "🔢", "📈", "📐", "🎲"}

func (s Subject) valid() bool { return s >= AnySubject && s <= Probability }

func (s Subject) String() string {
	if !s.valid() {
		return fmt.Sprintf("Subject(%d)", int(s))
	}
	return subjectNames[s]
}

// Title is the capitalized label shown on filter buttons.
func (s Subject) Title() string {
	if s == AnySubject {
		return "Todos"
	}
	name := s.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

// Color is the hex accent used for the subject's badge and card border.
func (s Subject) Color() string {
	if !s.valid() {
		return subjectColors[AnySubject]
	}
	return subjectColors[s]
}

func (s Subject) Icon() string {
	if !s.valid() {
		return subjectIcons[AnySubject]
	}
	return subjectIcons[s]
}

// Subjects lists the concrete subjects in display order.
func Subjects() []Subject {
	return []Subject{Arithmetic, Algebra, Geometry, Probability}
}

// ParseSubject maps a name such as "algebra" to its Subject. "all" and the
// empty string select AnySubject.
func ParseSubject(name string) (Subject, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return AnySubject, nil
	}
	for i, n := range subjectNames {
		if n == name {
			return Subject(i), nil
		}
	}
	return AnySubject, fmt.Errorf("catalog: unknown subject %q", name)
}
