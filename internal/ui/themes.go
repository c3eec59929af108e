package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for CLI output. Each field contains an
// ANSI escape code for the corresponding color category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures or critical issues.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Warning:   "\033[38;5;220m", // Yellow
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output. Used when NO_COLOR is
	// set or --no-color is provided.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme, honoring the NO_COLOR convention
// and the explicit noColor flag.
func InitTheme(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
		return
	}
	SetTheme(DarkTheme)
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

func active() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// ColorPrimary returns the primary accent escape code of the active theme.
func ColorPrimary() string { return active().Primary }

// ColorSecondary returns the secondary escape code of the active theme.
func ColorSecondary() string { return active().Secondary }

// ColorGreen returns the success escape code of the active theme.
func ColorGreen() string { return active().Success }

// ColorYellow returns the warning escape code of the active theme.
func ColorYellow() string { return active().Warning }

// ColorRed returns the error escape code of the active theme.
func ColorRed() string { return active().Error }

// ColorBold returns the bold escape code of the active theme.
func ColorBold() string { return active().Bold }

// ColorUnderline returns the underline escape code of the active theme.
func ColorUnderline() string { return active().Underline }

// ColorReset returns the reset escape code of the active theme.
func ColorReset() string { return active().Reset }

// TUITheme defines lipgloss-compatible colors for the TUI explorer.
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// DarkTUITheme is the default explorer palette.
var DarkTUITheme = TUITheme{
	Text:    lipgloss.Color("#D0D0D0"),
	Border:  lipgloss.Color("#5F87AF"),
	Accent:  lipgloss.Color("#5FAFFF"),
	Success: lipgloss.Color("#5FFF5F"),
	Error:   lipgloss.Color("#FF5F5F"),
	Dim:     lipgloss.Color("#808080"),
}
