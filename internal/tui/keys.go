package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Run     key.Binding
	DryRun  key.Binding
	Save    key.Binding
	Unlock  key.Binding
	Reload  key.Binding
	GoBack  key.Binding
	Format  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Run: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "run script"),
		),
		DryRun: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle dry run"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save to file"),
		),
		Unlock: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "unlock privileges"),
		),
		Reload: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reload script"),
		),
		GoBack: key.NewBinding(
			key.WithKeys("b", "enter"),
			key.WithHelp("b", "go back to script"),
		),
		Format: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle format"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.DryRun, k.Save, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Run, k.DryRun, k.Save, k.Unlock},
		{k.Reload, k.Format, k.GoBack},
		{k.Help, k.Quit},
	}
}
