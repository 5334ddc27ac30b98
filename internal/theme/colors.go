package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Set state colors
const (
	ColorCompleted Color = "2"   // Green - completed sets
	ColorDropSet   Color = "208" // Orange - drop set rows
	ColorPending   Color = "250" // Default - unlogged sets
	ColorSuperset  Color = "141" // Purple - superset link marker
)

// Timer colors
const (
	ColorTimerDone    Color = "46"  // Bright green - countdown finished
	ColorTimerPaused  Color = "3"   // Yellow - paused
	ColorTimerRunning Color = "205" // Pink - ticking
	ColorTimerQuick   Color = "214" // Amber - quick rest mode
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorHintKey   Color = "226" // Yellow - reminder hint keys
	ColorHintLabel Color = "178" // Gold - reminder hint labels
	ColorSpinner   Color = "205" // Pink
)

// Stats colors
const (
	ColorVolume   Color = "2" // Green
	ColorDuration Color = "6" // Cyan
)
