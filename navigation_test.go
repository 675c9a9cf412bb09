package quickmenu

import "testing"

type testState struct {
	SoundOn bool
	// Trimmed drops the extra action from the sound menu when set.
	Trimmed bool
}

type testAction int

const (
	actToggle testAction = iota
	actVolumeUp
	actExtra
)

type testScreen int

const (
	screenRoot testScreen = iota
	screenSound
	screenEmpty
)

type testEvent string

type fixture struct {
	engine       *Engine[testState, testAction, testScreen, testEvent]
	handled      []testAction
	resolveCalls int
}

func newFixture(t *testing.T, opts *Options) *fixture {
	t.Helper()
	f := &fixture{}
	resolve := func(s testScreen, st *testState) Menu[testAction, testScreen] {
		f.resolveCalls++
		switch s {
		case screenSound:
			m := NewMenu[testAction, testScreen]("sound").
				Headline("Sound").
				Action("Toggle", actToggle).
				Action("Volume up", actVolumeUp)
			if !st.Trimmed {
				m = m.Action("Extra", actExtra)
			}
			return m
		case screenEmpty:
			return NewMenu[testAction, testScreen]("empty").Headline("Nothing here")
		default:
			return NewMenu[testAction, testScreen]("root").
				Headline("Title").
				Action("Toggle", actToggle).
				Screen("Sound", screenSound).
				Screen("Empty", screenEmpty)
		}
	}
	handle := func(a testAction, st *testState, events *EventWriter[testEvent]) {
		f.handled = append(f.handled, a)
		if a == actToggle {
			st.SoundOn = !st.SoundOn
			events.Send("sound-changed")
		}
	}
	f.engine = NewEngine(testState{}, screenRoot, resolve, handle, opts)
	return f
}

func TestAttachResolvesRootAndRaisesRedraw(t *testing.T) {
	f := newFixture(t, nil)
	if !f.engine.Active() {
		t.Fatalf("expected engine active after attach")
	}
	if f.engine.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", f.engine.Depth())
	}
	if !f.engine.TakeRedraw() {
		t.Fatalf("expected initial redraw signal")
	}
	if f.engine.TakeRedraw() {
		t.Fatalf("expected redraw flag cleared after take")
	}
	menu, selection, ok := f.engine.Top()
	if !ok {
		t.Fatalf("expected top menu")
	}
	if menu.ID != "root" {
		t.Fatalf("expected root menu, got %q", menu.ID)
	}
	if selection != 0 {
		t.Fatalf("expected initial selection 0, got %d", selection)
	}
}

func TestConfirmOnActionInvokesHandler(t *testing.T) {
	f := newFixture(t, nil)
	// Initial selection 0 is the Toggle action: the headline above it is not
	// selectable.
	f.engine.Tick([]Event{Confirm})
	if len(f.handled) != 1 || f.handled[0] != actToggle {
		t.Fatalf("expected toggle handled once, got %v", f.handled)
	}
	if f.engine.Depth() != 1 {
		t.Fatalf("expected no stack change on action, got depth %d", f.engine.Depth())
	}
	if !f.engine.State().SoundOn {
		t.Fatalf("expected handler to mutate state")
	}
	if !f.engine.TakeRedraw() {
		t.Fatalf("expected redraw after action")
	}
	events := f.engine.Events().Drain()
	if len(events) != 1 || events[0] != "sound-changed" {
		t.Fatalf("expected emitted event, got %v", events)
	}
	if f.engine.Events().Len() != 0 {
		t.Fatalf("expected writer drained")
	}
}

func TestConfirmOnScreenPushesAndBackPops(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Tick([]Event{MoveDown, Confirm})
	if f.engine.Depth() != 2 {
		t.Fatalf("expected depth 2 after entering screen, got %d", f.engine.Depth())
	}
	menu, _, _ := f.engine.Top()
	if menu.ID != "sound" {
		t.Fatalf("expected sound menu on top, got %q", menu.ID)
	}
	f.engine.Tick([]Event{Back})
	if f.engine.Depth() != 1 {
		t.Fatalf("expected depth 1 after back, got %d", f.engine.Depth())
	}
	menu, _, _ = f.engine.Top()
	if menu.ID != "root" {
		t.Fatalf("expected root menu after back, got %q", menu.ID)
	}
}

func TestBackAtRootTearsDown(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Tick([]Event{Back})
	if f.engine.Active() {
		t.Fatalf("expected teardown on back at root")
	}
	if f.engine.Depth() != 0 {
		t.Fatalf("expected empty stack, got depth %d", f.engine.Depth())
	}
	// Subsequent events are no-ops.
	f.engine.Tick([]Event{Back, Confirm, MoveDown})
	if f.engine.Depth() != 0 {
		t.Fatalf("expected events after teardown ignored")
	}
	if _, _, ok := f.engine.Top(); ok {
		t.Fatalf("expected no top menu after teardown")
	}
}

func TestWrapAroundMovement(t *testing.T) {
	f := newFixture(t, nil)
	// Root has three selectable entries. Move to the last, then down once
	// more: wrap to the first.
	f.engine.Tick([]Event{MoveDown, MoveDown})
	if _, sel, _ := f.engine.Top(); sel != 2 {
		t.Fatalf("expected selection 2, got %d", sel)
	}
	f.engine.Tick([]Event{MoveDown})
	if _, sel, _ := f.engine.Top(); sel != 0 {
		t.Fatalf("expected wrap to 0, got %d", sel)
	}
	f.engine.Tick([]Event{MoveUp})
	if _, sel, _ := f.engine.Top(); sel != 2 {
		t.Fatalf("expected wrap to 2 on move up, got %d", sel)
	}
}

func TestWrapRoundTrip(t *testing.T) {
	f := newFixture(t, nil)
	menu, start, _ := f.engine.Top()
	n := menu.SelectableCount()
	for i := 0; i < n; i++ {
		f.engine.Tick([]Event{MoveDown})
	}
	if _, sel, _ := f.engine.Top(); sel != start {
		t.Fatalf("expected %d moves to return to start %d, got %d", n, start, sel)
	}
}

func TestClampedMovementWithoutWrap(t *testing.T) {
	opts := DefaultOptions()
	opts.Wrap = false
	f := newFixture(t, &opts)
	f.engine.Tick([]Event{MoveUp})
	if _, sel, _ := f.engine.Top(); sel != 0 {
		t.Fatalf("expected clamp at 0, got %d", sel)
	}
	f.engine.Tick([]Event{MoveDown, MoveDown, MoveDown, MoveDown})
	if _, sel, _ := f.engine.Top(); sel != 2 {
		t.Fatalf("expected clamp at last entry, got %d", sel)
	}
}

func TestSelectionMemoryAcrossPushAndPop(t *testing.T) {
	f := newFixture(t, nil)
	// Highlight the third selectable entry on root, enter a sub-screen via
	// SetSelection + Confirm, then come back.
	f.engine.SetSelection(2)
	f.engine.Tick([]Event{Confirm})
	if f.engine.Depth() != 2 {
		t.Fatalf("expected sub-screen pushed, got depth %d", f.engine.Depth())
	}
	f.engine.Tick([]Event{Back})
	if _, sel, _ := f.engine.Top(); sel != 2 {
		t.Fatalf("expected selection 2 restored after pop, got %d", sel)
	}
}

func TestSelectionMemoryPerMenuIdentifier(t *testing.T) {
	f := newFixture(t, nil)
	// Enter the sound menu, move its cursor, leave, re-enter: the cursor is
	// keyed by menu ID and survives the round trip.
	f.engine.Tick([]Event{MoveDown, Confirm, MoveDown, Back})
	f.engine.Tick([]Event{Confirm})
	menu, sel, _ := f.engine.Top()
	if menu.ID != "sound" {
		t.Fatalf("expected sound menu, got %q", menu.ID)
	}
	if sel != 1 {
		t.Fatalf("expected remembered selection 1, got %d", sel)
	}
}

func TestConfirmOnEmptyMenuIsIgnored(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.SetSelection(2) // Empty screen link
	f.engine.Tick([]Event{Confirm})
	menu, _, _ := f.engine.Top()
	if menu.ID != "empty" {
		t.Fatalf("expected empty menu on top, got %q", menu.ID)
	}
	before := len(f.handled)
	f.engine.Tick([]Event{Confirm, MoveDown, MoveUp})
	if len(f.handled) != before {
		t.Fatalf("expected no handler calls on empty menu")
	}
	if f.engine.Depth() != 2 {
		t.Fatalf("expected stack unchanged, got depth %d", f.engine.Depth())
	}
}

func TestEventOrderingWithinOneTick(t *testing.T) {
	f := newFixture(t, nil)
	// Push then move in one batch: the move must apply to the post-push top.
	f.engine.Tick([]Event{MoveDown, Confirm, MoveDown})
	menu, sel, _ := f.engine.Top()
	if menu.ID != "sound" {
		t.Fatalf("expected sound menu, got %q", menu.ID)
	}
	if sel != 1 {
		t.Fatalf("expected move applied after push, got selection %d", sel)
	}
}

func TestStateMutForcesReResolutionAndClampsSelection(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Tick([]Event{MoveDown, Confirm}) // enter sound (3 selectable)
	f.engine.Tick([]Event{MoveDown, MoveDown})
	if _, sel, _ := f.engine.Top(); sel != 2 {
		t.Fatalf("expected selection 2, got %d", sel)
	}
	f.engine.StateMut().Trimmed = true
	if !f.engine.TakeRedraw() {
		t.Fatalf("expected redraw after StateMut")
	}
	menu, sel, _ := f.engine.Top()
	if menu.SelectableCount() != 2 {
		t.Fatalf("expected re-resolved menu with 2 selectable entries, got %d", menu.SelectableCount())
	}
	if sel != 1 {
		t.Fatalf("expected selection clamped to 1, got %d", sel)
	}
}

func TestStateMutWithoutWriteStillReResolves(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Top()
	calls := f.resolveCalls
	_ = f.engine.StateMut()
	f.engine.Top()
	if f.resolveCalls != calls+1 {
		t.Fatalf("expected one re-resolution after StateMut, got %d extra", f.resolveCalls-calls)
	}
}

func TestTopDoesNotReResolveWhenStateUntouched(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Top()
	calls := f.resolveCalls
	f.engine.Top()
	f.engine.Top()
	if f.resolveCalls != calls {
		t.Fatalf("expected no resolution on repeated reads, got %d extra", f.resolveCalls-calls)
	}
}

func TestRedrawCoalescesAcrossOneTick(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.TakeRedraw()
	f.engine.Tick([]Event{MoveDown, MoveUp, MoveDown, Confirm, Back})
	if !f.engine.TakeRedraw() {
		t.Fatalf("expected a single coalesced redraw")
	}
	if f.engine.TakeRedraw() {
		t.Fatalf("expected flag cleared after take")
	}
}

func TestTeardownClearsSelectionsByDefault(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Tick([]Event{MoveDown})
	f.engine.Teardown()
	if f.engine.Active() {
		t.Fatalf("expected inactive after teardown")
	}
	if got := f.engine.Selections().Current("root"); got != 0 {
		t.Fatalf("expected selections cleared, got %d", got)
	}
	// Idempotent.
	f.engine.Teardown()
	if f.engine.Depth() != 0 {
		t.Fatalf("expected teardown idempotent")
	}
}

func TestTeardownRetainsSelectionsWhenConfigured(t *testing.T) {
	opts := DefaultOptions()
	opts.RetainSelections = true
	f := newFixture(t, &opts)
	f.engine.Tick([]Event{MoveDown})
	f.engine.Teardown()
	if got := f.engine.Selections().Current("root"); got != 1 {
		t.Fatalf("expected selection retained, got %d", got)
	}
}

func TestSetSelectionClampsOutOfRange(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.SetSelection(99)
	if _, sel, _ := f.engine.Top(); sel != 2 {
		t.Fatalf("expected clamp to last selectable, got %d", sel)
	}
	f.engine.SetSelection(-5)
	if _, sel, _ := f.engine.Top(); sel != 0 {
		t.Fatalf("expected clamp to first selectable, got %d", sel)
	}
}

func TestBackReconcilesParentAgainstChangedState(t *testing.T) {
	f := newFixture(t, nil)
	f.engine.Tick([]Event{MoveDown, Confirm})
	// Toggle mutates state while the sound menu is on top; popping must
	// re-resolve the parent rather than render a stale copy.
	calls := f.resolveCalls
	f.engine.Tick([]Event{Confirm, Back})
	if f.resolveCalls <= calls {
		t.Fatalf("expected resolution after state-changing pop")
	}
	menu, _, _ := f.engine.Top()
	if menu.ID != "root" {
		t.Fatalf("expected root after back, got %q", menu.ID)
	}
}
