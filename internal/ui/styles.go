package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/AndreiNanescu/FinanceWatcher/internal/config"
)

// StyleManager encapsulates all TUI styles and provides methods for style operations
type StyleManager struct {
	// Transcript styles
	Header      lipgloss.Style // block section headers
	InlineHead  lipgloss.Style // numbered headers rendered in-line
	ListNumber  lipgloss.Style
	ListTitle   lipgloss.Style
	Link        lipgloss.Style
	LinkURL     lipgloss.Style
	User        lipgloss.Style
	Interrupted lipgloss.Style
	Error       lipgloss.Style

	// Chrome styles
	Status lipgloss.Style
	Dim    lipgloss.Style
	Prompt lipgloss.Style
}

// DefaultStyles returns a StyleManager with default styles
func DefaultStyles() *StyleManager {
	return &StyleManager{
		Header:      lipgloss.NewStyle().Bold(true),
		InlineHead:  lipgloss.NewStyle().Bold(true),
		ListNumber:  lipgloss.NewStyle().Bold(true),
		ListTitle:   lipgloss.NewStyle().Bold(true),
		Link:        lipgloss.NewStyle().Underline(true),
		LinkURL:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		User:        lipgloss.NewStyle().Bold(true),
		Interrupted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Prompt:      lipgloss.NewStyle().Bold(true),
	}
}

// LoadFromConfig updates styles based on configuration
func (s *StyleManager) LoadFromConfig() {
	headerColor := parseANSIColor(config.GetColorHeader())
	linkColor := parseANSIColor(config.GetColorLink())
	userColor := parseANSIColor(config.GetColorUser())
	dimColor := parseANSIColor(config.GetColorDim())
	errorColor := parseANSIColor(config.GetColorError())

	s.Header = lipgloss.NewStyle().Bold(true).Foreground(headerColor)
	s.InlineHead = lipgloss.NewStyle().Bold(true).Foreground(headerColor)
	s.ListNumber = lipgloss.NewStyle().Bold(true)
	s.ListTitle = lipgloss.NewStyle().Bold(true)
	s.Link = lipgloss.NewStyle().Underline(true).Foreground(linkColor)
	s.LinkURL = lipgloss.NewStyle().Foreground(dimColor)
	s.User = lipgloss.NewStyle().Bold(true).Foreground(userColor)
	s.Interrupted = lipgloss.NewStyle().Foreground(dimColor).Italic(true)
	s.Error = lipgloss.NewStyle().Foreground(errorColor)
	s.Status = lipgloss.NewStyle().Foreground(dimColor)
	s.Dim = lipgloss.NewStyle().Foreground(dimColor)
	s.Prompt = lipgloss.NewStyle().Bold(true).Foreground(userColor)
}

// parseANSIColor converts ANSI color codes to lipgloss colors
func parseANSIColor(code string) lipgloss.Color {
	ansiToLipgloss := map[string]string{
		"30": "0", "31": "1", "32": "2", "33": "3",
		"34": "4", "35": "5", "36": "6", "37": "7",
		"90": "8", "91": "9", "92": "10", "93": "11",
		"94": "12", "95": "13", "96": "14", "97": "15",
	}
	if mapped, ok := ansiToLipgloss[code]; ok {
		return lipgloss.Color(mapped)
	}
	return lipgloss.Color(code)
}

// Global style manager instance
var styles = DefaultStyles()

// RefreshStyles updates the global styles from config
func RefreshStyles() {
	styles.LoadFromConfig()
}
