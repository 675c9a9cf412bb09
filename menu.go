package quickmenu

// Icon is a presentation hint attached to a selectable item. The engine never
// interprets icons; the presentation layer maps them to glyphs or images.
// Custom values are allowed, e.g. Icon("assets/foo.png").
type Icon string

// Built-in icons recognised by the bundled presentation layer.
const (
	IconNone     Icon = ""
	IconBack     Icon = "back"
	IconControls Icon = "controls"
	IconSound    Icon = "sound"
	IconPlayers  Icon = "players"
	IconSettings Icon = "settings"
)

// RichTextEntry is a non-selectable, presentation-only payload. Style names a
// stylesheet entry; the engine treats the whole value as opaque.
type RichTextEntry struct {
	Text  string
	Style string
}

// ItemKind discriminates the menu item variants.
type ItemKind int

const (
	ItemHeadline ItemKind = iota
	ItemRichText
	ItemAction
	ItemScreen
)

// Item is a single menu entry. Action and Screen items are selectable;
// Headline and RichText items are informational and skipped by the selection
// tracker.
type Item[A, S comparable] struct {
	kind   ItemKind
	Label  string
	Icon   Icon
	Rich   RichTextEntry
	action A
	screen S
}

// Kind returns the item variant.
func (it Item[A, S]) Kind() ItemKind { return it.kind }

// Selectable reports whether the item can be highlighted and confirmed.
func (it Item[A, S]) Selectable() bool {
	return it.kind == ItemAction || it.kind == ItemScreen
}

// Action returns the action payload when the item is an Action entry.
func (it Item[A, S]) Action() (A, bool) {
	return it.action, it.kind == ItemAction
}

// Screen returns the screen payload when the item is a Screen entry.
func (it Item[A, S]) Screen() (S, bool) {
	return it.screen, it.kind == ItemScreen
}

// Menu is an immutable description of one screen's content. Menus are values:
// resolvers produce a fresh Menu on every call and the engine never mutates
// one in place. ID keys the selection tracker, so two menus with the same ID
// share a remembered cursor position.
type Menu[A, S comparable] struct {
	ID    string
	Items []Item[A, S]
}

// NewMenu starts a menu for the given identifier. Entries are appended with
// the chaining helpers:
//
//	menu := quickmenu.NewMenu[Action, Screen]("root").
//		Headline("Settings").
//		Action("Sound on", SoundOn).
//		Screen("Controls", Controls)
func NewMenu[A, S comparable](id string) Menu[A, S] {
	return Menu[A, S]{ID: id}
}

// Headline appends a non-selectable headline entry.
func (m Menu[A, S]) Headline(text string) Menu[A, S] {
	m.Items = append(m.Items, Item[A, S]{kind: ItemHeadline, Label: text})
	return m
}

// RichText appends a non-selectable rich text entry.
func (m Menu[A, S]) RichText(entry RichTextEntry) Menu[A, S] {
	m.Items = append(m.Items, Item[A, S]{kind: ItemRichText, Label: entry.Text, Rich: entry})
	return m
}

// Action appends a selectable entry that invokes the action handler.
func (m Menu[A, S]) Action(label string, action A) Menu[A, S] {
	m.Items = append(m.Items, Item[A, S]{kind: ItemAction, Label: label, action: action})
	return m
}

// Screen appends a selectable entry that pushes a new navigation frame.
func (m Menu[A, S]) Screen(label string, screen S) Menu[A, S] {
	m.Items = append(m.Items, Item[A, S]{kind: ItemScreen, Label: label, screen: screen})
	return m
}

// WithIcon sets the icon on the most recently appended entry.
func (m Menu[A, S]) WithIcon(icon Icon) Menu[A, S] {
	if len(m.Items) > 0 {
		m.Items[len(m.Items)-1].Icon = icon
	}
	return m
}

// SelectableCount returns the number of selectable entries.
func (m Menu[A, S]) SelectableCount() int {
	count := 0
	for _, it := range m.Items {
		if it.Selectable() {
			count++
		}
	}
	return count
}

// SelectableAt returns the index-th selectable entry. The index counts
// selectable entries only, matching the selection tracker's coordinates.
func (m Menu[A, S]) SelectableAt(index int) (Item[A, S], bool) {
	if index < 0 {
		return Item[A, S]{}, false
	}
	n := 0
	for _, it := range m.Items {
		if !it.Selectable() {
			continue
		}
		if n == index {
			return it, true
		}
		n++
	}
	return Item[A, S]{}, false
}

// ItemIndex translates a selectable index into an absolute position within
// Items, for renderers that walk the full entry list. Returns -1 when the
// index is out of range.
func (m Menu[A, S]) ItemIndex(selectable int) int {
	if selectable < 0 {
		return -1
	}
	n := 0
	for i, it := range m.Items {
		if !it.Selectable() {
			continue
		}
		if n == selectable {
			return i
		}
		n++
	}
	return -1
}
