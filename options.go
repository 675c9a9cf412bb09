package quickmenu

import "github.com/atomicstack/quickmenu/style"

// Options captures the configuration recognised when an engine is created.
// The stylesheet has no effect on navigation; it is stored for the
// presentation layer to query.
type Options struct {
	// Wrap enables wrap-around cursor movement at both ends of a menu.
	Wrap bool
	// RetainSelections preserves tracked cursor positions across Teardown,
	// so a future engine sharing the same tracker semantics starts where the
	// user left off. Off by default: Teardown clears the tracker.
	RetainSelections bool
	// Stylesheet overrides the default visual theme.
	Stylesheet *style.Stylesheet
}

// DefaultOptions returns the options used when nil is passed to NewEngine.
func DefaultOptions() Options {
	return Options{Wrap: true}
}

// EventWriter buffers application events emitted by action handlers. The
// host drains the buffer once per tick; the engine itself never reads it.
type EventWriter[E any] struct {
	queued []E
}

// Send appends an event to the buffer.
func (w *EventWriter[E]) Send(event E) {
	w.queued = append(w.queued, event)
}

// Drain returns the buffered events in emission order and empties the buffer.
func (w *EventWriter[E]) Drain() []E {
	out := w.queued
	w.queued = nil
	return out
}

// Len returns the number of buffered events.
func (w *EventWriter[E]) Len() int {
	return len(w.queued)
}
