package common

import (
	"github.com/charmbracelet/bubbles/key"
)

// GlobalKeyMap defines the keybindings of the spinner demo
type GlobalKeyMap struct {
	// Global keys
	Quit        key.Binding // q, Ctrl+C - quit application
	Keybindings key.Binding // ? - toggle full help

	// Widget lifecycle
	ToggleVisible key.Binding // space - show/hide the spinner

	// Widget properties
	DotSizeUp        key.Binding // + - larger dots
	DotSizeDown      key.Binding // - - smaller dots
	RingDiameterUp   key.Binding // ] - wider ring
	RingDiameterDown key.Binding // [ - narrower ring
	CycleColor       key.Binding // c - next palette color

	// Preferences
	Save key.Binding // s - persist current properties
}

// NewGlobalKeyMap creates a new GlobalKeyMap with default keybindings
func NewGlobalKeyMap() *GlobalKeyMap {
	return &GlobalKeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Keybindings: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		ToggleVisible: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "show/hide"),
		),

		DotSizeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "bigger dots"),
		),
		DotSizeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "smaller dots"),
		),
		RingDiameterUp: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "wider ring"),
		),
		RingDiameterDown: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "narrower ring"),
		),
		CycleColor: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "next color"),
		),

		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
	}
}

// ShortHelp returns a slice of key bindings to show in the short help view
func (k *GlobalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.ToggleVisible,
		k.Keybindings,
		k.Quit,
	}
}

// FullHelp returns a slice of key bindings to show in the full help view
func (k *GlobalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleVisible, k.CycleColor},
		{k.DotSizeUp, k.DotSizeDown},
		{k.RingDiameterUp, k.RingDiameterDown},
		{k.Save, k.Keybindings, k.Quit},
	}
}
