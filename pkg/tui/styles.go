package tui

import "github.com/charmbracelet/lipgloss"

// Theme holds the palette for one color scheme. Both panes and chrome draw
// exclusively through the active theme so toggling restyles everything.
type Theme struct {
	Name string

	Border       lipgloss.Style
	BorderActive lipgloss.Style
	Title        lipgloss.Style
	StatusBar    lipgloss.Style

	TreeFolder   lipgloss.Style
	TreeFile     lipgloss.Style
	TreeSelected lipgloss.Style
	TreeLanguage lipgloss.Style

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	ConsoleLog   lipgloss.Style
	ConsoleError lipgloss.Style

	PromptLabel lipgloss.Style
	Help        lipgloss.Style
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Name:         "dark",
		Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")),
		BorderActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		StatusBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Background(lipgloss.Color("236")),
		TreeFolder:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		TreeFile:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		TreeSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		TreeLanguage: lipgloss.NewStyle().Faint(true),
		TabActive:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
		TabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
		ConsoleLog:   lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ConsoleError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		PromptLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Help:         lipgloss.NewStyle().Faint(true),
	}
}

// LightTheme is the alternate palette.
func LightTheme() Theme {
	return Theme{
		Name:         "light",
		Border:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("250")),
		BorderActive: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("27")),
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		StatusBar:    lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Background(lipgloss.Color("253")),
		TreeFolder:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		TreeFile:     lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		TreeSelected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")),
		TreeLanguage: lipgloss.NewStyle().Faint(true),
		TabActive:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("27")).Padding(0, 1),
		TabInactive:  lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Padding(0, 1),
		ConsoleLog:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		ConsoleError: lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		PromptLabel:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("27")),
		Help:         lipgloss.NewStyle().Faint(true),
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}
