// Package events groups the structured trace entries emitted by the engine
// and the presentation layer, keyed by concern.
package events

import "github.com/atomicstack/quickmenu/internal/logging"

type MenuTracer struct{}

type ActionTracer struct{}

type AppTracer struct{}

var (
	Menu   = MenuTracer{}
	Action = ActionTracer{}
	App    = AppTracer{}
)

func (MenuTracer) Push(menuID string, selectable, depth int) {
	logging.Trace("menu.push", map[string]interface{}{
		"menu":       menuID,
		"selectable": selectable,
		"depth":      depth,
	})
}

func (MenuTracer) Pop(menuID, parentID string) {
	logging.Trace("menu.pop", map[string]interface{}{"menu": menuID, "parent": parentID})
}

func (MenuTracer) Enter(menuID, label string) {
	logging.Trace("menu.enter", map[string]interface{}{"menu": menuID, "label": label})
}

func (MenuTracer) Cursor(menuID string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"menu": menuID, "cursor": cursor})
}

func (MenuTracer) Teardown() {
	logging.Trace("menu.teardown", nil)
}

func (ActionTracer) Invoke(menuID, label string) {
	logging.Trace("action.invoke", map[string]interface{}{"menu": menuID, "label": label})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
