// Package styles holds the terminal palette and composed lipgloss styles of
// the host manager.
package styles

import "github.com/charmbracelet/lipgloss"

// ANSI palette indexes.
var (
	Yellow      = lipgloss.Color("3")
	Green       = lipgloss.Color("2")
	GreenBright = lipgloss.Color("10")
	Red         = lipgloss.Color("9")
	Cyan        = lipgloss.Color("6")
	Gray        = lipgloss.Color("8")

	ColorPrimary = Yellow
	ColorSuccess = GreenBright
	ColorWarning = Yellow
	ColorError   = Red
	ColorInfo    = Cyan
	ColorMuted   = Gray
	ColorBorder  = Gray
)
