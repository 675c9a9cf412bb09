// Package style defines the visual theme consumed by the presentation layer.
// Stylesheets carry no navigation semantics; swapping one never changes which
// entries are selectable or how events route.
package style

import "github.com/charmbracelet/lipgloss"

// Stylesheet describes reusable Lip Gloss styles for rendering a menu.
type Stylesheet struct {
	Headline              *lipgloss.Style
	RichText              *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItem          *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	Icon                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Info                  *lipgloss.Style

	// Named styles referenced by RichTextEntry.Style values.
	Named map[string]*lipgloss.Style
}

var defaultStyles = Stylesheet{
	Headline: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	RichText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	Icon: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
}

// Default exposes the standard style set.
func Default() *Stylesheet {
	return &defaultStyles
}

// Resolve returns the named style, falling back to the RichText default.
func (s *Stylesheet) Resolve(name string) *lipgloss.Style {
	if s.Named != nil {
		if st, ok := s.Named[name]; ok && st != nil {
			return st
		}
	}
	return s.RichText
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
