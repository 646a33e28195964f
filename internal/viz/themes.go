package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// Available themes
var (
	ThemeClassroom = Theme{
		Name:       "classroom",
		Primary:    lipgloss.Color("#667eea"), // Indigo
		Secondary:  lipgloss.Color("#764ba2"),
		Accent:     lipgloss.Color("#4ecdc4"),
		Background: lipgloss.Color("#1a1a2e"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#8888aa"),
		Success:    lipgloss.Color("#4caf50"),
		Warning:    lipgloss.Color("#ffc107"),
		Error:      lipgloss.Color("#f44336"),
	}

	ThemeChalkboard = Theme{
		Name:       "chalkboard",
		Primary:    lipgloss.Color("#f5f5dc"), // Chalk
		Secondary:  lipgloss.Color("#cfd8dc"),
		Accent:     lipgloss.Color("#ffeb3b"),
		Background: lipgloss.Color("#1b3a2d"),
		Text:       lipgloss.Color("#f5f5dc"),
		Muted:      lipgloss.Color("#7f9c8a"),
		Success:    lipgloss.Color("#a5d6a7"),
		Warning:    lipgloss.Color("#ffcc80"),
		Error:      lipgloss.Color("#ef9a9a"),
	}

	ThemeMinimal = Theme{
		Name:       "minimal",
		Primary:    lipgloss.Color("#ffffff"),
		Secondary:  lipgloss.Color("#cccccc"),
		Accent:     lipgloss.Color("#0088ff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Success:    lipgloss.Color("#00ff00"),
		Warning:    lipgloss.Color("#ffaa00"),
		Error:      lipgloss.Color("#ff0000"),
	}

	// ThemePaper matches the white drawing surface, for light terminals.
	ThemePaper = Theme{
		Name:       "paper",
		Primary:    lipgloss.Color("#333333"),
		Secondary:  lipgloss.Color("#667eea"),
		Accent:     lipgloss.Color("#667eea"),
		Background: lipgloss.Color("#ffffff"),
		Text:       lipgloss.Color("#333333"),
		Muted:      lipgloss.Color("#999999"),
		Success:    lipgloss.Color("#4caf50"),
		Warning:    lipgloss.Color("#ff9800"),
		Error:      lipgloss.Color("#f44336"),
	}

	// ThemeSubjects takes its accents from the subject badges.
	ThemeSubjects = Theme{
		Name:       "subjects",
		Primary:    lipgloss.Color("#4ECDC4"),
		Secondary:  lipgloss.Color("#FF6B6B"),
		Accent:     lipgloss.Color("#45B7D1"),
		Background: lipgloss.Color("#202124"),
		Text:       lipgloss.Color("#f1f3f4"),
		Muted:      lipgloss.Color("#96CEB4"),
		Success:    lipgloss.Color("#96CEB4"),
		Warning:    lipgloss.Color("#feca57"),
		Error:      lipgloss.Color("#FF6B6B"),
	}

	// All available themes
	Themes = []Theme{
		ThemeClassroom,
		ThemeChalkboard,
		ThemeMinimal,
		ThemePaper,
		ThemeSubjects,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassroom
}

// NextTheme returns the theme after t in Themes, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
