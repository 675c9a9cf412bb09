// Package quickmenu is a data-driven menu-navigation engine. Applications
// describe their menus as screens resolved on demand, and the engine owns the
// navigation stack, per-menu selection memory, and the routing of input
// events into screen transitions or action invocations.
//
// The engine is generic over four application types: the state it threads
// through resolution and action calls, the action and screen identifiers
// (both comparable), and the event type emitted by action handlers.
//
// Event flow:
//   - The input layer queues navigation events (MoveUp, MoveDown, Confirm,
//     Back) and delivers them through Engine.Tick once per host frame.
//     Events apply strictly in arrival order; a push followed by a move in
//     the same batch sees the post-push stack.
//   - Confirm on an Action entry invokes the application's HandleFunc with
//     mutable state and an event writer. Confirm on a Screen entry resolves
//     the screen and pushes a new frame. Confirm with nothing selectable is
//     ignored.
//   - Back pops a frame; Back on the root frame tears the whole menu down.
//
// State ownership:
//   - The application state lives inside the engine between ticks. Handlers
//     and resolvers receive it by reference only for the duration of a call.
//   - Calling StateMut marks the state as touched: the top menu is
//     re-resolved before the next read so selectable entries stay in sync,
//     even if the caller never writes through the pointer.
//
// Rendering:
//   - The engine performs no rendering. A presentation layer polls Active,
//     reads Top for the current menu and selection, and consumes the
//     coalesced TakeRedraw signal. The tui package provides a Bubble Tea
//     implementation of such a layer.
//
// The core surfaces no errors: invalid inputs (movement on an empty menu,
// Confirm on nothing, Back after teardown) degrade to no-ops.
package quickmenu
