package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header and command bar
	SurfaceAlt string // Unfocused panes
	FocusBg    string // Focused pane

	// Row selection
	SelectionBg   string
	SelectionText string

	// Borders
	Border      string
	BorderMuted string
	BorderFocus string

	// Text
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		SurfaceAlt: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style
	SurfaceAlt lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	Header   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
}

// WithBackground returns a copy of Styles with every style given bgColor.
// Styled segments otherwise fall back to the terminal background.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	return Styles{
		Background: s.Background.Background(bg),
		Surface:    s.Surface.Background(bg),
		SurfaceAlt: s.SurfaceAlt.Background(bg),

		Text:        s.Text.Background(bg),
		MutedText:   s.MutedText.Background(bg),
		FaintText:   s.FaintText.Background(bg),
		AccentText:  s.AccentText.Background(bg),
		SuccessText: s.SuccessText.Background(bg),
		WarningText: s.WarningText.Background(bg),
		DangerText:  s.DangerText.Background(bg),
		InfoText:    s.InfoText.Background(bg),

		Header:   s.Header.Background(bg),
		Logo:     s.Logo.Background(bg),
		Selected: s.Selected.Background(bg),
	}
}

// LevelStyle returns the style for a diagnostic log level.
func (s Styles) LevelStyle(level string) lipgloss.Style {
	switch level {
	case "debug":
		return s.InfoText
	case "info":
		return s.SuccessText
	case "warn":
		return s.WarningText
	case "error", "dpanic", "panic", "fatal":
		return s.DangerText
	default:
		return s.Text
	}
}

// Theme definitions

var themes = map[string]Theme{
	"Iron":  ironTheme(),
	"Chalk": chalkTheme(),
	"Turf":  turfTheme(),
}

var themeOrder = []string{"Iron", "Chalk", "Turf"}

// GetTheme returns a theme by name, falling back to Iron.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return ironTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func ironTheme() Theme {
	// Gunmetal surfaces with a plate-orange accent.
	return Theme{
		Name: "Iron",

		Background: "#111418",
		Surface:    "#1a1f25",
		SurfaceAlt: "#22282f",
		FocusBg:    "#2a313a",

		SelectionBg:   "#3a4452",
		SelectionText: "#eef1f4",

		Border:      "#3d4652",
		BorderMuted: "#22282f",
		BorderFocus: "#f28c28",

		Text:    "#dfe3e8",
		Muted:   "#8b95a1",
		Faint:   "#667080",
		Accent:  "#f28c28",
		Success: "#7fbf6a",
		Warning: "#e8c547",
		Danger:  "#e5534b",
		Info:    "#5cb3cc",
	}
}

func chalkTheme() Theme {
	// Light theme for bright gyms and washed-out terminals.
	return Theme{
		Name: "Chalk",

		Background: "#f4f4f0",
		Surface:    "#e8e8e2",
		SurfaceAlt: "#fbfbf8",
		FocusBg:    "#ffffff",

		SelectionBg:   "#2f5d8a",
		SelectionText: "#ffffff",

		Border:      "#b9b9b0",
		BorderMuted: "#dcdcd4",
		BorderFocus: "#2f5d8a",

		Text:    "#25282b",
		Muted:   "#5d6166",
		Faint:   "#8a8e93",
		Accent:  "#2f5d8a",
		Success: "#2e7d32",
		Warning: "#a86b00",
		Danger:  "#c62828",
		Info:    "#00838f",
	}
}

func turfTheme() Theme {
	// Dark green inspired by training turf.
	return Theme{
		Name: "Turf",

		Background: "#0c1510",
		Surface:    "#132018",
		SurfaceAlt: "#1a2a20",
		FocusBg:    "#213428",

		SelectionBg:   "#2f6b45",
		SelectionText: "#f0f7f2",

		Border:      "#2f4a39",
		BorderMuted: "#1a2a20",
		BorderFocus: "#8fd694",

		Text:    "#e3efe6",
		Muted:   "#93a89a",
		Faint:   "#6a7f71",
		Accent:  "#8fd694",
		Success: "#8fd694",
		Warning: "#f0c75e",
		Danger:  "#ef6f6c",
		Info:    "#6cc3d5",
	}
}
