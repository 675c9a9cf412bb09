package tui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives a model programmatically for tests, executing any commands
// a message produces until the chain settles.
type Harness[St any, A, S comparable, E any] struct {
	model *Model[St, A, S, E]
	quit  bool
}

// NewHarness creates a harness for the provided model.
func NewHarness[St any, A, S comparable, E any](model *Model[St, A, S, E]) *Harness[St, A, S, E] {
	return &Harness[St, A, S, E]{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness[St, A, S, E]) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	if updated, ok := mdl.(*Model[St, A, S, E]); ok {
		h.model = updated
	}
	h.processCmd(cmd)
}

func (h *Harness[St, A, S, E]) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				h.processCmd(c)
			}
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			h.quit = true
			return
		}
		mdl, next := h.model.Update(msg)
		if updated, ok := mdl.(*Model[St, A, S, E]); ok {
			h.model = updated
		}
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness[St, A, S, E]) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness[St, A, S, E]) Model() *Model[St, A, S, E] {
	return h.model
}

// Quit reports whether a processed command requested program exit.
func (h *Harness[St, A, S, E]) Quit() bool {
	return h.quit
}
