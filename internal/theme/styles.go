package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	HelpLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpShortcutStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Set row styles
var (
	CompletedSetStyle = lipgloss.NewStyle().
				Foreground(ColorCompleted)

	DropSetStyle = lipgloss.NewStyle().
			Foreground(ColorDropSet)

	PendingSetStyle = lipgloss.NewStyle().
			Foreground(ColorPending)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Italic(true)

	SelectedFieldStyle = lipgloss.NewStyle().
				Foreground(ColorHighlight).
				Bold(true).
				Underline(true)

	SupersetMarkStyle = lipgloss.NewStyle().
				Foreground(ColorSuperset).
				Bold(true)
)

// Timer panel styles
var (
	TimerDoneStyle = lipgloss.NewStyle().
			Foreground(ColorTimerDone).
			Bold(true)

	TimerPausedStyle = lipgloss.NewStyle().
				Foreground(ColorTimerPaused)

	TimerQuickStyle = lipgloss.NewStyle().
			Foreground(ColorTimerQuick).
			Bold(true)

	TimerRunningStyle = lipgloss.NewStyle().
				Foreground(ColorTimerRunning).
				Bold(true)

	TimerBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorMuted).
				Padding(0, 1)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(25)
)

// Start reminder styles
var (
	HintKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHintKey).
			Bold(true)

	HintLabelStyle = lipgloss.NewStyle().
			Foreground(ColorHintLabel)
)

// Stats summary styles
var (
	StatsLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	StatsValueStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true)

	VolumeStyle = lipgloss.NewStyle().
			Foreground(ColorVolume).
			Bold(true)

	DurationStyle = lipgloss.NewStyle().
			Foreground(ColorDuration)
)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)

// NoteStyle renders the per-exercise note line
var NoteStyle = lipgloss.NewStyle().
	Foreground(ColorMuted).
	Italic(true)
