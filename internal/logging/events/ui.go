package events

import "github.com/atomicstack/popup-select/internal/logging"

type MenuTracer struct{}

type FilterTracer struct{}

type CommandTracer struct{}

var (
	Menu    = MenuTracer{}
	Filter  = FilterTracer{}
	Command = CommandTracer{}
)

func (MenuTracer) Opened(uid string, visible int) {
	logging.Trace("menu.open", map[string]interface{}{"uid": uid, "visible": visible})
}

func (MenuTracer) Closed(uid string) {
	logging.Trace("menu.close", map[string]interface{}{"uid": uid})
}

func (MenuTracer) Focus(uid string, index int) {
	logging.Trace("menu.focus", map[string]interface{}{"uid": uid, "index": index})
}

func (FilterTracer) Search(uid, search string) {
	logging.Trace("filter.search", map[string]interface{}{"uid": uid, "search": search})
}

func (FilterTracer) Cleared(uid string) {
	logging.Trace("filter.clear", map[string]interface{}{"uid": uid})
}

func (FilterTracer) WordBackspace(uid, filter string) {
	logging.Trace("filter.word-backspace", map[string]interface{}{"uid": uid, "filter": filter})
}

func (FilterTracer) Cursor(uid string, pos int) {
	logging.Trace("filter.cursor", map[string]interface{}{"uid": uid, "cursor": pos})
}

func (FilterTracer) CursorWord(uid string, pos int) {
	logging.Trace("filter.cursor-word", map[string]interface{}{"uid": uid, "cursor": pos})
}

func (FilterTracer) Append(uid, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"uid": uid, "filter": filter})
}

func (FilterTracer) Backspace(uid, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"uid": uid, "filter": filter})
}

func (CommandTracer) Queue(kind string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind})
}

func (CommandTracer) Result(kind, msgType string) {
	logging.Trace("command.result", map[string]interface{}{"kind": kind, "msg": msgType})
}
