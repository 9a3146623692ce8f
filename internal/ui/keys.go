package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the global keybindings for the admin shell
type KeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Actions
	Add     key.Binding
	Edit    key.Binding
	Delete  key.Binding
	Open    key.Binding
	Preview key.Binding

	// Sections
	PersonalSection key.Binding
	AboutSection    key.Binding
	SkillsSection   key.Binding
	ProjectsSection key.Binding
	SocialSection   key.Binding
	ThemeSection    key.Binding
	NextSection     key.Binding
	PrevSection     key.Binding

	// General
	Help       key.Binding
	ThemeCycle key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "bottom"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "preview"),
		),

		PersonalSection: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "personal"),
		),
		AboutSection: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "about"),
		),
		SkillsSection: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "skills"),
		),
		ProjectsSection: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "projects"),
		),
		SocialSection: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "social"),
		),
		ThemeSection: key.NewBinding(
			key.WithKeys("6"),
			key.WithHelp("6", "theme"),
		),
		NextSection: key.NewBinding(
			key.WithKeys("]", "ctrl+n"),
			key.WithHelp("]", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("[", "ctrl+p"),
			key.WithHelp("[", "prev section"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "theme"),
		),
		Back: key.NewBinding(
			key.WithKeys("escape"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
