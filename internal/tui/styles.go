package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#3B82F6") // blue-500
	colorMuted  = lipgloss.Color("#71717A")
	colorDanger = lipgloss.Color("#EF4444")
	colorOK     = lipgloss.Color("#22C55E")
	colorText   = lipgloss.Color("#27272A")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(colorMuted).
			Padding(0, 1)

	backStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginTop(1)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginBottom(1)

	labelStyle        = lipgloss.NewStyle().Foreground(colorText)
	focusedLabelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	fieldErrorStyle   = lipgloss.NewStyle().Foreground(colorDanger)

	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorAccent).
			Padding(0, 3).
			MarginTop(1)
	buttonFocusedStyle = buttonStyle.Background(lipgloss.Color("#2563EB")).Underline(true)
	buttonBusyStyle    = buttonStyle.Background(colorMuted)

	toastStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOK).
			Padding(0, 1).
			MarginTop(1)
	toastDestructiveStyle = toastStyle.BorderForeground(colorDanger).Foreground(colorDanger)

	helpStyle = lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1)
)
