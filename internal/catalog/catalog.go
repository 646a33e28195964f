package catalog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Problem is one multiple-choice question.
type Problem struct {
	ID            int
	Question      string
	Options       []string
	Correct       string
	Explanation   string
	Subject       Subject
	Visualization string
}

// Check reports whether answer is the correct option.
func (p Problem) Check(answer string) bool {
	return answer == p.Correct
}

// CorrectIndex is the position of the correct option, or -1.
func (p Problem) CorrectIndex() int {
	for i, o := range p.Options {
		if o == p.Correct {
			return i
		}
	}
	return -1
}

// Letter is the option label for index i: A, B, C, ...
func Letter(i int) string {
	return string(rune('A' + i))
}

// Teaser shortens the question to at most n runes for list cards.
func (p Problem) Teaser(n int) string {
	if utf8.RuneCountInString(p.Question) <= n {
		return p.Question
	}
	runes := []rune(p.Question)
	return strings.TrimSpace(string(runes[:n])) + "..."
}

func (p Problem) String() string {
	return fmt.Sprintf("Problema #%d", p.ID)
}

// Len is the number of problems.
func Len() int { return len(problems) }

// All returns every problem in id order. The slice is a copy.
func All() []Problem {
	out := make([]Problem, len(problems))
	copy(out, problems)
	return out
}

// Get returns the problem with the given id.
func Get(id int) (Problem, error) {
	if id < 1 || id > len(problems) {
		return Problem{}, fmt.Errorf("problem %d: %w", id, ErrNotFound)
	}
	return problems[id-1], nil
}

// BySubject filters the catalog. AnySubject returns everything.
func BySubject(s Subject) []Problem {
	if s == AnySubject {
		return All()
	}
	var out []Problem
	for _, p := range problems {
		if p.Subject == s {
			out = append(out, p)
		}
	}
	return out
}

// Next is the id after id, wrapping from the last problem to the first.
func Next(id int) int {
	if id >= len(problems) || id < 1 {
		return 1
	}
	return id + 1
}

// Prev is the id before id, wrapping from the first problem to the last.
func Prev(id int) int {
	if id <= 1 || id > len(problems) {
		return len(problems)
	}
	return id - 1
}
