// Package tui is a Bubble Tea presentation layer for the quickmenu engine.
// It observes navigation state and contributes no logic of its own: every
// key press is translated into an engine event, and View renders whatever
// Engine.Top reports afterwards.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages.
//   - Key messages are matched against the KeyMap and forwarded to the
//     engine through Tick, one event per press, preserving arrival order.
//   - Printable runes feed a typeahead buffer; the best fuzzy match among
//     the current menu's selectable labels is applied with SetSelection,
//     the same entry point a pointer-hover input would use.
//   - Application events emitted by action handlers are drained after each
//     tick and handed to the host's OnEvent hook as Bubble Tea commands.
//
// The program quits once the engine reports inactive, which happens on Back
// at the root frame or an explicit Teardown.
package tui
