package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/quickmenu"
)

// Model adapts a quickmenu engine to the Bubble Tea runtime. It owns no
// navigation state beyond a typeahead buffer and the viewport dimensions.
type Model[St any, A, S comparable, E any] struct {
	engine *quickmenu.Engine[St, A, S, E]
	keys   KeyMap

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	typeahead string
	onEvent   func(E) tea.Cmd
}

// NewModel wraps the engine for rendering. Non-zero width/height pin the
// viewport; zero values track the terminal size.
func NewModel[St any, A, S comparable, E any](engine *quickmenu.Engine[St, A, S, E], width, height int, showFooter bool) *Model[St, A, S, E] {
	m := &Model[St, A, S, E]{
		engine:     engine,
		keys:       DefaultKeyMap(),
		showFooter: showFooter,
	}
	if width > 0 {
		m.width = width
		m.fixedWidth = true
	}
	if height > 0 {
		m.height = height
		m.fixedHeight = true
	}
	return m
}

// OnEvent registers a hook invoked for every application event drained from
// the engine after a tick. The returned command is batched into the update.
func (m *Model[St, A, S, E]) OnEvent(fn func(E) tea.Cmd) {
	m.onEvent = fn
}

// Engine exposes the underlying engine, mainly for tests.
func (m *Model[St, A, S, E]) Engine() *quickmenu.Engine[St, A, S, E] {
	return m.engine
}

// Init is part of the tea.Model interface.
func (m *Model[St, A, S, E]) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model[St, A, S, E]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.fixedWidth {
			m.width = msg.Width
		}
		if !m.fixedHeight {
			m.height = msg.Height
		}
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model[St, A, S, E]) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Up):
		return m.tick(quickmenu.MoveUp)
	case key.Matches(msg, m.keys.Down):
		return m.tick(quickmenu.MoveDown)
	case key.Matches(msg, m.keys.Confirm):
		return m.tick(quickmenu.Confirm)
	case key.Matches(msg, m.keys.Back):
		if m.typeahead != "" {
			m.typeahead = ""
			return nil
		}
		return m.tick(quickmenu.Back)
	}
	switch msg.Type {
	case tea.KeyRunes:
		m.typeahead += string(msg.Runes)
		m.applyTypeahead()
	case tea.KeyBackspace:
		if m.typeahead != "" {
			runes := []rune(m.typeahead)
			m.typeahead = string(runes[:len(runes)-1])
			m.applyTypeahead()
		}
	}
	return nil
}

// tick forwards one navigation event and drains any application events the
// handlers emitted. Quits once the engine reports inactive.
func (m *Model[St, A, S, E]) tick(ev quickmenu.Event) tea.Cmd {
	m.typeahead = ""
	m.engine.Tick([]quickmenu.Event{ev})

	cmds := make([]tea.Cmd, 0, 2)
	for _, event := range m.engine.Events().Drain() {
		if m.onEvent != nil {
			if cmd := m.onEvent(event); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if !m.engine.Active() {
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model[St, A, S, E]) applyTypeahead() {
	menu, _, ok := m.engine.Top()
	if !ok {
		return
	}
	if idx := BestMatchIndex(menu, m.typeahead); idx >= 0 {
		m.engine.SetSelection(idx)
	}
}
