package scene

// Category selects the renderer for a problem's diagram.
type Category int

const (
	Default Category = iota
	Percentage
	Workers
	Equation
	Parabola
	Triangle
	Circle
	Dice
	Function
	Rectangle
	Exponential
	Average
	Polygon
	Tank
	Cube
	Balls
	Trigonometry
	Sequence
)

var categoryNames = [...]string{
	Default:      "default",
	Percentage:   "percentage",
	Workers:      "workers",
	Equation:     "equation",
	Parabola:     "parabola",
	Triangle:     "triangle",
	Circle:       "circle",
	Dice:         "dice",
	Function:     "function",
	Rectangle:    "rectangle",
	Exponential:  "exponential",
	Average:      "average",
	Polygon:      "polygon",
	Tank:         "tank",
	Cube:         "cube",
	Balls:        "balls",
	Trigonometry: "trigonometry",
	Sequence:     "sequence",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[Default]
	}
	return categoryNames[c]
}

// ParseCategory maps a visualization tag to its category. Unknown tags,
// including "default" and the empty string, map to Default.
func ParseCategory(tag string) Category {
	for i, name := range categoryNames {
		if Category(i) != Default && name == tag {
			return Category(i)
		}
	}
	return Default
}

// Categories returns every named category in declaration order, without
// Default.
func Categories() []Category {
	out := make([]Category, 0, len(categoryNames)-1)
	for i := range categoryNames {
		if Category(i) != Default {
			out = append(out, Category(i))
		}
	}
	return out
}
