package quickmenu

import (
	"github.com/atomicstack/quickmenu/internal/logging/events"
	"github.com/atomicstack/quickmenu/style"
)

// Event is a navigation input delivered to the engine.
type Event int

const (
	MoveUp Event = iota
	MoveDown
	Confirm
	Back
)

// String names the event for trace logging.
func (e Event) String() string {
	switch e {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case Confirm:
		return "confirm"
	case Back:
		return "back"
	}
	return "unknown"
}

// ResolveFunc maps a screen to its menu given the current application state.
// It must be deterministic for a given (screen, state) pair and may not
// mutate state: the engine calls it on every redraw and relies on the
// selectable entry order staying stable while state is unchanged.
type ResolveFunc[St any, A, S comparable] func(screen S, state *St) Menu[A, S]

// HandleFunc reacts to a confirmed action. It may mutate state and may emit
// application events through the writer. It must not retain either reference
// beyond the call.
type HandleFunc[St any, A comparable, E any] func(action A, state *St, events *EventWriter[E])

type frame[A, S comparable] struct {
	screen S
	menu   Menu[A, S]
	count  int
}

// Engine is the navigation state machine: a stack of (screen, menu) frames
// with per-menu selection memory. The bottom frame is the root screen; the
// top frame is what the presentation layer renders. The engine is
// single-threaded and must be driven from one goroutine, typically once per
// host frame.
type Engine[St any, A, S comparable, E any] struct {
	stack      []frame[A, S]
	state      St
	resolve    ResolveFunc[St, A, S]
	handle     HandleFunc[St, A, E]
	events     *EventWriter[E]
	selections *Selections
	opts       Options

	redraw bool
	// stale marks that the top frame's menu must be re-resolved before the
	// next read: set after action invocations and StateMut.
	stale bool
}

// NewEngine attaches the menu to an application state and root screen. The
// root menu is resolved immediately and its remembered selection restored.
// A nil opts uses DefaultOptions.
func NewEngine[St any, A, S comparable, E any](state St, root S, resolve ResolveFunc[St, A, S], handle HandleFunc[St, A, E], opts *Options) *Engine[St, A, S, E] {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	e := &Engine[St, A, S, E]{
		state:      state,
		resolve:    resolve,
		handle:     handle,
		events:     &EventWriter[E]{},
		selections: NewSelections(o.Wrap),
		opts:       o,
	}
	e.push(root)
	return e
}

// Active reports whether the menu is live. It is false only after teardown
// (explicit, or Back on the root frame).
func (e *Engine[St, A, S, E]) Active() bool {
	return len(e.stack) > 0
}

// Depth returns the number of stack frames.
func (e *Engine[St, A, S, E]) Depth() int {
	return len(e.stack)
}

// Top returns the menu to render and its current selection index. The second
// return counts selectable entries only. ok is false once the menu is torn
// down. Top re-resolves the menu first when state has been touched since the
// last read, reconciling the stored selection against the fresh entry count.
func (e *Engine[St, A, S, E]) Top() (menu Menu[A, S], selection int, ok bool) {
	if len(e.stack) == 0 {
		return Menu[A, S]{}, 0, false
	}
	e.reconcile()
	top := e.stack[len(e.stack)-1]
	return top.menu, e.selections.Current(top.menu.ID), true
}

// State returns a copy of the application state for read-only inspection.
func (e *Engine[St, A, S, E]) State() St {
	return e.state
}

// StateMut grants mutable access to the application state. Taking the
// reference is itself the signal that selectable entries may change: the top
// menu is re-resolved before the next read and a redraw is raised, whether or
// not the caller writes anything.
func (e *Engine[St, A, S, E]) StateMut() *St {
	e.stale = true
	e.redraw = true
	return &e.state
}

// Events returns the writer handed to action handlers. The host drains it
// once per tick.
func (e *Engine[St, A, S, E]) Events() *EventWriter[E] {
	return e.events
}

// Selections exposes the selection tracker, mainly for tests and for hosts
// that persist cursor positions externally.
func (e *Engine[St, A, S, E]) Selections() *Selections {
	return e.selections
}

// Stylesheet returns the visual theme configured at attach time.
func (e *Engine[St, A, S, E]) Stylesheet() *style.Stylesheet {
	if e.opts.Stylesheet != nil {
		return e.opts.Stylesheet
	}
	return style.Default()
}

// Tick drains a batch of navigation events in arrival order. Stack mutations
// from earlier events are visible to later ones; a push followed by a move in
// the same batch operates on the post-push stack.
func (e *Engine[St, A, S, E]) Tick(evs []Event) {
	for _, ev := range evs {
		e.HandleEvent(ev)
	}
	e.reconcile()
}

// HandleEvent applies a single navigation event. Events on a torn-down menu
// are ignored.
func (e *Engine[St, A, S, E]) HandleEvent(ev Event) {
	if len(e.stack) == 0 {
		return
	}
	switch ev {
	case MoveUp:
		e.move(-1)
	case MoveDown:
		e.move(1)
	case Confirm:
		e.confirm()
	case Back:
		e.back()
	}
}

// SetSelection sets the top menu's selection directly, e.g. from pointer
// hover. Out-of-range values clamp; menus without selectable entries ignore
// the call.
func (e *Engine[St, A, S, E]) SetSelection(index int) {
	if len(e.stack) == 0 {
		return
	}
	top := e.stack[len(e.stack)-1]
	if e.selections.Set(top.menu.ID, index, top.count) {
		events.Menu.Cursor(top.menu.ID, e.selections.Current(top.menu.ID))
		e.redraw = true
	}
}

// Teardown removes the menu unconditionally, regardless of stack depth.
// Idempotent. Tracked selections are cleared unless RetainSelections is set.
func (e *Engine[St, A, S, E]) Teardown() {
	if len(e.stack) == 0 {
		return
	}
	e.stack = nil
	e.stale = false
	if !e.opts.RetainSelections {
		e.selections.Reset()
	}
	e.redraw = true
	events.Menu.Teardown()
}

// TakeRedraw reports whether any mutation occurred since the last call and
// clears the flag. Multiple mutations within one tick coalesce into a single
// redraw.
func (e *Engine[St, A, S, E]) TakeRedraw() bool {
	r := e.redraw
	e.redraw = false
	return r
}

func (e *Engine[St, A, S, E]) move(delta int) {
	top := e.stack[len(e.stack)-1]
	if e.selections.Move(top.menu.ID, delta, top.count) {
		events.Menu.Cursor(top.menu.ID, e.selections.Current(top.menu.ID))
		e.redraw = true
	}
}

func (e *Engine[St, A, S, E]) confirm() {
	e.reconcile()
	top := e.stack[len(e.stack)-1]
	item, ok := top.menu.SelectableAt(e.selections.Current(top.menu.ID))
	if !ok {
		// Nothing selectable on this menu.
		return
	}
	if action, ok := item.Action(); ok {
		events.Action.Invoke(top.menu.ID, item.Label)
		e.handle(action, &e.state, e.events)
		e.stale = true
		e.redraw = true
		return
	}
	if screen, ok := item.Screen(); ok {
		events.Menu.Enter(top.menu.ID, item.Label)
		e.push(screen)
	}
}

func (e *Engine[St, A, S, E]) back() {
	if len(e.stack) == 1 {
		e.Teardown()
		return
	}
	popped := e.stack[len(e.stack)-1]
	e.stack = e.stack[:len(e.stack)-1]
	events.Menu.Pop(popped.menu.ID, e.stack[len(e.stack)-1].menu.ID)
	// The frame below may render stale content if state changed while the
	// popped menu was on top.
	e.stale = true
	e.redraw = true
}

func (e *Engine[St, A, S, E]) push(screen S) {
	menu := e.resolve(screen, &e.state)
	count := menu.SelectableCount()
	e.selections.Clamp(menu.ID, count)
	e.stack = append(e.stack, frame[A, S]{screen: screen, menu: menu, count: count})
	e.redraw = true
	events.Menu.Push(menu.ID, count, len(e.stack))
}

// reconcile re-resolves the top frame's menu after the application state was
// touched, clamping the stored selection when the selectable count shrank.
func (e *Engine[St, A, S, E]) reconcile() {
	if !e.stale || len(e.stack) == 0 {
		return
	}
	e.stale = false
	top := &e.stack[len(e.stack)-1]
	top.menu = e.resolve(top.screen, &e.state)
	top.count = top.menu.SelectableCount()
	e.selections.Clamp(top.menu.ID, top.count)
}
