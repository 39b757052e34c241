package events

import "github.com/atomicstack/popup-select/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Finish(aborted bool, selected int) {
	logging.Trace("app.finish", map[string]interface{}{"aborted": aborted, "selected": selected})
}
