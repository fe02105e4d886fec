// Package style provides the colors and icons shared by the logger and the terminal UIs.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Accent = lipgloss.Color("#2E7D32")
	Muted  = lipgloss.Color("#667085")
	Text   = lipgloss.Color("#F6F7FB")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Pointer = "›"
	Dot     = "●"
)

// Composite styles used by the interactive endorsement view.
var (
	Title     = lipgloss.NewStyle().Bold(true).Foreground(Accent)
	Target    = lipgloss.NewStyle().Bold(true).Foreground(Text)
	Hint      = lipgloss.NewStyle().Foreground(Muted)
	Success   = lipgloss.NewStyle().Foreground(Green)
	Failure   = lipgloss.NewStyle().Foreground(Red)
	Attention = lipgloss.NewStyle().Foreground(Yellow)
)
