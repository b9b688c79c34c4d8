package common

import (
	"strings"

	"ringspin/pkg/gui/theme"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/ansi"
)

// Footer renders the help line on the left and a status message on the right
type Footer struct {
	width    int
	help     help.Model
	keys     *GlobalKeyMap
	status   string
	isError  bool
	showFull bool
}

// Styling for footer elements
var (
	footerStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.SuccessStatus))
	footerErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ErrorStatus))
	footerStyle       = lipgloss.NewStyle().Padding(0, 1)
)

// NewFooter creates a new footer component
func NewFooter(keys *GlobalKeyMap) *Footer {
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(lipgloss.Color(theme.TextDescription)).Bold(true)
	h.Styles.ShortDesc = h.Styles.ShortDesc.Foreground(lipgloss.Color(theme.TextMuted))
	h.Styles.ShortSeparator = h.Styles.ShortSeparator.Foreground(lipgloss.Color(theme.SeparatorColor))
	return &Footer{
		help: h,
		keys: keys,
	}
}

// SetWidth updates the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
	f.help.Width = width
}

// ToggleFullHelp switches between the one-line and full help views
func (f *Footer) ToggleFullHelp() {
	f.showFull = !f.showFull
	f.help.ShowAll = f.showFull
}

// ShowingFullHelp reports whether full help is shown
func (f *Footer) ShowingFullHelp() bool {
	return f.showFull
}

// SetStatus sets the status message shown on the right
func (f *Footer) SetStatus(status string, isError bool) {
	f.status = status
	f.isError = isError
}

// Height returns the number of rows the footer currently needs
func (f *Footer) Height() int {
	return lipgloss.Height(f.View())
}

// View renders the footer
func (f *Footer) View() string {
	if f.width == 0 || f.keys == nil {
		return ""
	}

	left := f.help.View(f.keys)
	if f.status == "" {
		return footerStyle.Render(left)
	}

	style := footerStatusStyle
	if f.isError {
		style = footerErrorStyle
	}
	right := style.Render(f.status)

	// Pad between the first help line and the status using printable widths
	lines := strings.Split(left, "\n")
	inner := f.width - footerStyle.GetHorizontalPadding()
	gap := inner - ansi.PrintableRuneWidth(lines[0]) - ansi.PrintableRuneWidth(right)
	if gap < 1 {
		gap = 1
	}
	lines[0] = lines[0] + strings.Repeat(" ", gap) + right
	return footerStyle.Render(strings.Join(lines, "\n"))
}
