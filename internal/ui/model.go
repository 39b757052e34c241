package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/atomicstack/popup-select/internal/data/dispatcher"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/state"
	"github.com/atomicstack/popup-select/internal/theme"
	"github.com/atomicstack/popup-select/internal/ui/command"
	uistate "github.com/atomicstack/popup-select/internal/ui/state"
	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultPlaceholder = "Select option"

var styles = theme.Default()

// UseStyles swaps the style set, e.g. for NO_COLOR terminals.
func UseStyles(s *theme.Styles) {
	if s != nil {
		styles = s
	}
}

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Combobox    combobox.Config[string]
	Options     []option.Option[string]
	Initial     combobox.Value[string]
	Placeholder string
	Width       int
	Height      int
	MaxVisible  int
	ShowFooter  bool
	Watcher     *backend.Watcher
	Slots       Slots
}

// Row is what a custom option renderer receives.
type Row struct {
	Option   option.Option[string]
	Label    string
	Focused  bool
	Selected bool
}

// Slots replaces parts of the default rendering. Nil entries keep the
// built-in output.
type Slots struct {
	Option func(Row) string
	Tag    func(option.Option[string]) string
}

// Result is what the user confirmed when the program exits.
type Result struct {
	Aborted  bool
	Value    combobox.Value[string]
	Selected []option.Option[string]
}

// Model implements the Bubble Tea model hosting a single combobox.
type Model struct {
	machine *combobox.Machine[string]
	doc     *combobox.Document
	cfg     combobox.Config[string]
	keys    keyMap

	value   combobox.Value[string]
	pending []combobox.Notification

	inputFocused bool

	search   uistate.SearchField
	viewport uistate.Viewport
	layout   layout

	placeholder string
	slots       Slots
	maxVisible  int
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	errMsg     string
	infoMsg    string
	infoExpire time.Time

	filterCursor      cursor.Model
	filterCursorDirty bool

	handlers map[reflect.Type]msgHandler

	bus        *command.Bus
	backend    *backend.Watcher
	store      state.OptionStore
	dispatcher *dispatcher.Dispatcher

	done   bool
	result Result
}

// NewModel initialises the UI state and mounts the combobox.
func NewModel(opts Options) *Model {
	store := state.NewOptionStore()
	store.SetOptions(opts.Options)
	m := &Model{
		doc:         combobox.NewDocument(),
		keys:        defaultKeyMap(),
		placeholder: opts.Placeholder,
		slots:       opts.Slots,
		maxVisible:  opts.MaxVisible,
		showFooter:  opts.ShowFooter,
		bus:         command.New(),
		backend:     opts.Watcher,
		store:       store,
		dispatcher:  dispatcher.New(store),
	}
	if m.placeholder == "" {
		m.placeholder = defaultPlaceholder
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}

	cfg := opts.Combobox
	if opts.Watcher != nil {
		cfg.IsLoading = true
		store.SetLoading(true)
	}
	cfg.Notify = m.enqueue
	cfg.ScrollIntoView = m.scrollIntoView
	m.cfg = cfg
	m.machine = combobox.New(cfg)
	m.machine.SetOptions(store.Options())
	if !opts.Initial.IsEmpty() {
		m.machine.SetValue(opts.Initial)
	}
	m.value = m.machine.Value()
	m.machine.Mount(m.doc, combobox.RegionFunc(m.layout.contains))
	m.machine.Focus()
	m.inputFocused = true

	c := cursor.New()
	if styles.Cursor != nil {
		c.Style = styles.Cursor.Copy()
	}
	if styles.Filter != nil {
		c.TextStyle = styles.Filter.Copy()
	}
	c.SetChar(" ")
	m.filterCursor = c

	m.registerHandlers()
	m.registerNotifications()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	if cmd := m.filterCursor.Focus(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if cmd := m.updateFilterCursorModel(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tea.FocusMsg{}):      m.handleFocusMsg,
		reflect.TypeOf(tea.BlurMsg{}):       m.handleBlurMsg,
		reflect.TypeOf(backendEventMsg{}):   m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):    m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if cmd := m.flushNotifications(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	m.syncSearch()
	if m.filterCursorDirty {
		m.filterCursorDirty = false
		m.filterCursor.Blink = false
		if cmd := m.filterCursor.BlinkCmd(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if m.done {
		cmds = append(cmds, tea.Quit)
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

// Result reports the outcome once the program has quit.
func (m *Model) Result() Result {
	return m.result
}

// Machine exposes the hosted state machine for tests and embedding.
func (m *Model) Machine() *combobox.Machine[string] {
	return m.machine
}

// Done reports whether the user submitted or aborted.
func (m *Model) Done() bool {
	return m.done
}

func (m *Model) submit() {
	m.done = true
	m.result = Result{
		Value:    m.value,
		Selected: m.machine.SelectedOptions(),
	}
	m.machine.Unmount()
}

func (m *Model) abort() {
	m.done = true
	m.result = Result{Aborted: true, Value: m.value}
	m.machine.Unmount()
}

// scrollIntoView keeps the focused row inside the visible menu window.
func (m *Model) scrollIntoView(index int) {
	m.viewport.EnsureVisible(index, len(m.machine.Filtered()), m.maxVisibleItems())
}

// syncSearch mirrors search changes made by the machine (clearing on close
// or after a tag is created) into the editable field.
func (m *Model) syncSearch() {
	if text := m.machine.Search(); text != m.search.Text {
		before := m.search.CursorPos()
		m.search.Set(text, len([]rune(text)))
		m.noteFilterCursorChange(before)
	}
}
