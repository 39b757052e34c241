package events

import "github.com/atomicstack/popup-select/internal/logging"

type SelectTracer struct{}

type SourceTracer struct{}

var (
	Select = SelectTracer{}
	Source = SourceTracer{}
)

func (SelectTracer) Selected(uid, label string) {
	logging.Trace("select.option", map[string]interface{}{"uid": uid, "label": label})
}

func (SelectTracer) Deselected(uid, label string) {
	logging.Trace("select.deselect", map[string]interface{}{"uid": uid, "label": label})
}

func (SelectTracer) Created(uid, label string) {
	logging.Trace("select.create", map[string]interface{}{"uid": uid, "label": label})
}

func (SelectTracer) Cleared(uid string) {
	logging.Trace("select.clear", map[string]interface{}{"uid": uid})
}

func (SelectTracer) Warning(uid, msg string) {
	logging.Trace("select.warning", map[string]interface{}{"uid": uid, "message": msg})
}

func (SourceTracer) Reload(path string, count int) {
	logging.Trace("source.reload", map[string]interface{}{"path": path, "options": count})
}

func (SourceTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("source.error", map[string]interface{}{"path": path, "error": err.Error()})
}
