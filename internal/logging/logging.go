package logging

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const defaultLogFile = "popup-select.log"

// sink holds the shared log destination. Error and Warn lines always go to
// it; trace entries only while tracing is switched on.
type sink struct {
	mu    sync.Mutex
	path  string
	trace bool
}

var shared = &sink{path: defaultLogFile}

func (s *sink) snapshot() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path, s.trace
}

// appendTo opens path for appending and hands it to write. Failures are
// reported on stderr since there is nowhere else to put them.
func appendTo(path, what string, write func(io.Writer) error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
		return
	}
	defer f.Close()
	if err := write(f); err != nil {
		fmt.Fprintf(os.Stderr, "%s failed: %v\n", what, err)
	}
}

func writeLine(prefix, msg string) {
	path, _ := shared.snapshot()
	appendTo(path, "logging", func(w io.Writer) error {
		log.New(w, "", log.LstdFlags).Println(prefix + msg)
		return nil
	})
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	writeLine("error: ", err.Error())
}

// Warn records a developer-facing warning, such as a misconfigured value
// binding, in the shared log file.
func Warn(msg string) {
	if strings.TrimSpace(msg) == "" {
		return
	}
	writeLine("warning: ", msg)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	shared.mu.Lock()
	shared.trace = enabled
	shared.mu.Unlock()
}

func TraceEnabled() bool {
	_, on := shared.snapshot()
	return on
}

type traceEntry struct {
	Time    time.Time   `json:"time"`
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// Trace appends a JSON line to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	path, on := shared.snapshot()
	if !on {
		return
	}
	entry := traceEntry{Time: time.Now().UTC(), Event: event, Payload: payload}
	appendTo(path, "trace logging", func(w io.Writer) error {
		return json.NewEncoder(w).Encode(entry)
	})
}

// Configure sets the log destination. Empty values fall back to the default
// path. Missing directories are created.
func Configure(path string) {
	shared.mu.Lock()
	defer shared.mu.Unlock()
	shared.path = defaultLogFile
	if strings.TrimSpace(path) == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		return
	}
	shared.path = path
}

// Path returns the active log destination.
func Path() string {
	path, _ := shared.snapshot()
	return path
}
