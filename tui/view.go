package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/quickmenu"
)

const selectionIndicator = "▸"

var iconGlyphs = map[quickmenu.Icon]string{
	quickmenu.IconBack:     "←",
	quickmenu.IconControls: "⌨",
	quickmenu.IconSound:    "♪",
	quickmenu.IconPlayers:  "★",
	quickmenu.IconSettings: "⚙",
}

// View implements tea.Model. It re-reads the top of the navigation stack on
// every render, consuming the engine's coalesced redraw signal.
func (m *Model[St, A, S, E]) View() string {
	menu, selection, ok := m.engine.Top()
	if !ok {
		return ""
	}
	defer m.engine.TakeRedraw()

	styles := m.engine.Stylesheet()
	selectedItem := menu.ItemIndex(selection)

	lines := make([]string, 0, len(menu.Items)+3)
	for i, item := range menu.Items {
		lines = append(lines, m.renderItem(item, i == selectedItem))
	}
	if len(menu.Items) == 0 {
		lines = append(lines, render(styles.Info, "(no entries)"))
	}
	if m.typeahead != "" {
		lines = append(lines, render(styles.Info, fmt.Sprintf("/%s", m.typeahead)))
	}
	if m.showFooter {
		lines = append(lines, render(styles.Footer, m.footerHints()))
	}

	out := strings.Join(lines, "\n")
	if m.height > 0 {
		rendered := strings.Split(out, "\n")
		if len(rendered) > m.height {
			rendered = rendered[:m.height]
			out = strings.Join(rendered, "\n")
		}
	}
	return out
}

func (m *Model[St, A, S, E]) renderItem(item quickmenu.Item[A, S], selected bool) string {
	styles := m.engine.Stylesheet()
	switch item.Kind() {
	case quickmenu.ItemHeadline:
		return render(styles.Headline, m.fit(item.Label))
	case quickmenu.ItemRichText:
		return render(styles.Resolve(item.Rich.Style), m.fit(item.Rich.Text))
	}

	label := item.Label
	if glyph := iconGlyphs[item.Icon]; glyph != "" {
		label = glyph + " " + label
	} else if item.Icon != quickmenu.IconNone {
		label = string(item.Icon) + " " + label
	}
	if selected {
		return render(styles.SelectedItemIndicator, selectionIndicator) + " " + render(styles.SelectedItem, m.fit(label))
	}
	return render(styles.ItemIndicator, " ") + " " + render(styles.Item, m.fit(label))
}

func (m *Model[St, A, S, E]) footerHints() string {
	hints := []string{}
	for _, b := range []struct{ key, desc string }{
		{m.keys.Up.Help().Key, m.keys.Up.Help().Desc},
		{m.keys.Down.Help().Key, m.keys.Down.Help().Desc},
		{m.keys.Confirm.Help().Key, m.keys.Confirm.Help().Desc},
		{m.keys.Back.Help().Key, m.keys.Back.Help().Desc},
		{m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc},
	} {
		hints = append(hints, fmt.Sprintf("%s %s", b.key, b.desc))
	}
	return strings.Join(hints, "  ")
}

// fit truncates a label to the viewport width, leaving room for the
// indicator column.
func (m *Model[St, A, S, E]) fit(label string) string {
	if m.width <= 2 {
		return label
	}
	return truncate.StringWithTail(label, uint(m.width-2), "…")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
