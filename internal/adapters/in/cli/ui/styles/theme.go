package styles

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used by the menu and the subcommands.
var Theme = struct {
	Banner  lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	Enabled lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	BadgeRunning       lipgloss.Style
	BadgeMisconfigured lipgloss.Style
	BadgeStopped       lipgloss.Style
	BadgeNotBuilt      lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}{
	Banner: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary),
	Label: lipgloss.NewStyle().
		Foreground(ColorPrimary),
	Muted: lipgloss.NewStyle().
		Foreground(ColorMuted),
	Bold: lipgloss.NewStyle().
		Bold(true),
	Enabled: lipgloss.NewStyle().
		Foreground(GreenBright),

	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Warning: lipgloss.NewStyle().Foreground(ColorWarning),
	Info:    lipgloss.NewStyle().Foreground(ColorInfo),

	BadgeRunning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(Green).
		Padding(0, 1),
	BadgeMisconfigured: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(Yellow).
		Padding(0, 1),
	BadgeStopped: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(Red).
		Padding(0, 1),
	BadgeNotBuilt: lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(Gray).
		Padding(0, 1),

	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1),
	TableCell: lipgloss.NewStyle().
		Padding(0, 1),
	TableBorder: lipgloss.NewStyle().
		Foreground(ColorBorder),
}

// RenderSuccess returns a styled success message.
func RenderSuccess(msg string) string {
	return Theme.Success.Render(IconSuccess + " " + msg)
}

// RenderError returns a styled error message.
func RenderError(msg string) string {
	return Theme.Error.Render(IconError + " " + msg)
}

// RenderWarning returns a styled warning message.
func RenderWarning(msg string) string {
	return Theme.Warning.Render(IconWarning + " " + msg)
}

// RenderInfo returns a styled info message.
func RenderInfo(msg string) string {
	return Theme.Info.Render(IconInfo + " " + msg)
}

// RenderSeparator returns the gray rule shown between menu groups.
func RenderSeparator() string {
	return Theme.Muted.Render(Separator)
}
