package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading              *lipgloss.Style
	Item                 *lipgloss.Style
	ItemIndicator        *lipgloss.Style
	FocusedItemIndicator *lipgloss.Style
	FocusedItem          *lipgloss.Style
	SelectedMark         *lipgloss.Style
	DisabledItem         *lipgloss.Style
	Description          *lipgloss.Style
	NoResults            *lipgloss.Style
	CreateHint           *lipgloss.Style
	Tag                  *lipgloss.Style
	TagRemove            *lipgloss.Style
	Affordance           *lipgloss.Style
	Value                *lipgloss.Style
	Error                *lipgloss.Style
	Info                 *lipgloss.Style
	Footer               *lipgloss.Style
	Filter               *lipgloss.Style
	FilterPrompt         *lipgloss.Style
	FilterPlaceholder    *lipgloss.Style
	Cursor               *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	FocusedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	FocusedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedMark: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	DisabledItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true),
	),
	Description: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	NoResults: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
	),
	CreateHint: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	),
	Tag: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("24")),
	),
	TagRemove: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Background(lipgloss.Color("24")),
	),
	Affordance: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// Plain returns a style set without colours, used when NO_COLOR is set.
func Plain() *Styles {
	plain := ptr(lipgloss.NewStyle())
	return &Styles{
		Loading:              plain,
		Item:                 plain,
		ItemIndicator:        plain,
		FocusedItemIndicator: ptr(lipgloss.NewStyle().Reverse(true)),
		FocusedItem:          ptr(lipgloss.NewStyle().Reverse(true)),
		SelectedMark:         plain,
		DisabledItem:         plain,
		Description:          plain,
		NoResults:            plain,
		CreateHint:           plain,
		Tag:                  plain,
		TagRemove:            plain,
		Affordance:           plain,
		Value:                plain,
		Error:                plain,
		Info:                 plain,
		Footer:               plain,
		Filter:               plain,
		FilterPrompt:         plain,
		FilterPlaceholder:    plain,
		Cursor:               ptr(lipgloss.NewStyle().Reverse(true)),
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
