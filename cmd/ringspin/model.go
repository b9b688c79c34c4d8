package main

import (
	"fmt"

	"ringspin/internal/debug"
	"ringspin/pkg/common"
	"ringspin/pkg/config"
	"ringspin/pkg/gui/components"
	"ringspin/pkg/gui/layout"
	"ringspin/pkg/gui/theme"
	"ringspin/pkg/spinner"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	minDotSize      = 1.0
	minRingDiameter = 1.0
	loadingLabel    = "Loading…"
)

var hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TextMuted))

type model struct {
	layout  *layout.Layout
	spinner *components.RingSpinner
	keys    *common.GlobalKeyMap
	footer  *common.Footer
	message string
	failed  bool
}

func newModel(prefs config.SpinnerState, cur spinner.Cursor) model {
	opts := append(prefs.Options(), spinner.WithLogger(debug.DebugLog))
	s := components.NewRingSpinner(cur, opts...)
	s.SetLabel(loadingLabel)

	keys := common.NewGlobalKeyMap()
	return model{
		layout:  layout.NewLayout(0, 0),
		spinner: s,
		keys:    keys,
		footer:  common.NewFooter(keys),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.SetVisible(true)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout.Resize(msg.Width, msg.Height)
		m.footer.SetWidth(msg.Width)
		m.resizeSpinner()
		return m, nil

	case components.TickMsg:
		return m, m.spinner.Update(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w := m.spinner.Widget()
	m.message = ""
	m.failed = false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.spinner.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.ToggleVisible):
		return m, m.spinner.SetVisible(!m.spinner.Visible())

	case key.Matches(msg, m.keys.DotSizeUp):
		m.spinner.SetDotSize(w.DotSize() + 1)

	case key.Matches(msg, m.keys.DotSizeDown):
		if next := w.DotSize() - 1; next >= minDotSize {
			m.spinner.SetDotSize(next)
		}

	case key.Matches(msg, m.keys.RingDiameterUp):
		m.spinner.SetRingDiameter(w.RingDiameter() + 1)

	case key.Matches(msg, m.keys.RingDiameterDown):
		if next := w.RingDiameter() - 1; next >= minRingDiameter {
			m.spinner.SetRingDiameter(next)
		}

	case key.Matches(msg, m.keys.CycleColor):
		m.spinner.SetColor(spinner.Color(theme.NextColor(string(w.Color()))))

	case key.Matches(msg, m.keys.Save):
		if err := config.SetSpinnerState(m.currentPrefs()); err != nil {
			debug.DebugLog("Failed to save spinner preferences: %v", err)
			m.message = "save failed: " + err.Error()
			m.failed = true
		} else {
			m.message = "preferences saved"
		}

	case key.Matches(msg, m.keys.Keybindings):
		m.footer.ToggleFullHelp()
		m.resizeSpinner()
	}
	return m, nil
}

func (m model) currentPrefs() config.SpinnerState {
	w := m.spinner.Widget()
	return config.SpinnerState{
		DotSize:      w.DotSize(),
		RingDiameter: w.RingDiameter(),
		Color:        string(w.Color()),
	}
}

func (m model) resizeSpinner() {
	m.layout.SetFooterRows(m.footer.Height())
	m.spinner.SetSize(m.layout.GetWidth(), m.layout.BodyRows())
}

func (m model) status() string {
	if m.message != "" {
		return m.message
	}
	w := m.spinner.Widget()
	return fmt.Sprintf("dot %.0f ring %.1f %3.0f°", w.DotSize(), w.RingDiameter(), w.Angle())
}

func (m model) View() string {
	if m.layout.GetWidth() == 0 {
		return ""
	}
	m.footer.SetStatus(m.status(), m.failed)
	footer := m.footer.View()

	body := m.spinner.View()
	if !m.spinner.Visible() {
		body = lipgloss.Place(m.layout.GetWidth(), m.layout.BodyRows(), lipgloss.Center, lipgloss.Center,
			hiddenStyle.Render("hidden · press space to show"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
