package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextTab    key.Binding
	PrevTab    key.Binding
	UpDown     key.Binding
	Add        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Search     key.Binding
	Category   key.Binding
	Timeframe  key.Binding
	ClearFilt  key.Binding
	SaveSearch key.Binding
	Searches   key.Binding
	Enter      key.Binding
	Close      key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		NextTab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		PrevTab:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev tab")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		Add:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add expense")),
		Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
		Timeframe:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "timeframe")),
		ClearFilt:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		SaveSearch: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save search")),
		Searches:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "saved searches")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Add, k.UpDown, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.UpDown, k.Quit},
		{k.Add, k.Edit, k.Delete},
		{k.Search, k.Category, k.Timeframe, k.ClearFilt},
		{k.SaveSearch, k.Searches},
	}
}
