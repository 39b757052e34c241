package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/popup-select/internal/backend"
	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/atomicstack/popup-select/internal/logging/events"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/source"
	"github.com/atomicstack/popup-select/internal/theme"
	"github.com/atomicstack/popup-select/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	OutputLines = "lines"
	OutputJSON  = "json"
)

// ErrAborted is returned by Run when the user cancelled the selection.
var ErrAborted = errors.New("selection aborted")

// ErrNoOptions is returned when neither a file nor piped input is available.
var ErrNoOptions = errors.New("no options: pass --options or pipe them on stdin")

// Config describes user-provided application options.
type Config struct {
	OptionsPath string
	Format      string
	Output      string

	Multi              bool
	Clearable          bool
	Searchable         bool
	Taggable           bool
	Disabled           bool
	HideSelected       bool
	CloseOnSelect      bool
	SelectOnBlur       bool
	ClearSearchOnClose bool
	Autofocus          bool
	Fuzzy              bool

	Placeholder string
	Initial     []string

	Width      int
	Height     int
	MaxVisible int
	ShowFooter bool
	AltScreen  bool
	NoColor    bool

	Watch time.Duration
}

// Run loads the options, runs the Bubble Tea program and prints the
// confirmed value to stdout.
func Run(cfg Config) error {
	return run(cfg, os.Stdin, ProbeTerminals().IsTerminal("stdin"), os.Stdout)
}

func run(cfg Config, stdin io.Reader, stdinTTY bool, stdout io.Writer) error {
	format, err := source.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	opts, err := loadOptions(cfg.OptionsPath, format, stdin, stdinTTY)
	if err != nil {
		return err
	}

	var watcher *backend.Watcher
	if cfg.Watch > 0 && fromFile(cfg.OptionsPath) {
		watcher = backend.NewWatcher(cfg.OptionsPath, format, cfg.Watch)
		defer watcher.Stop()
	}
	if cfg.NoColor {
		ui.UseStyles(theme.Plain())
	}

	model := ui.NewModel(ui.Options{
		Combobox:    ComboboxConfig(cfg),
		Options:     opts,
		Initial:     InitialValue(cfg),
		Placeholder: cfg.Placeholder,
		Width:       cfg.Width,
		Height:      cfg.Height,
		MaxVisible:  cfg.MaxVisible,
		ShowFooter:  cfg.ShowFooter,
		Watcher:     watcher,
	})

	programOpts := []tea.ProgramOption{
		tea.WithOutput(os.Stderr),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if !stdinTTY {
		// stdin carried the options; keys come from the controlling terminal.
		programOpts = append(programOpts, tea.WithInputTTY())
	}
	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return ErrAborted
		}
		return fmt.Errorf("run program: %w", err)
	}

	res := model.Result()
	events.App.Finish(res.Aborted, len(res.Selected))
	if res.Aborted || !model.Done() {
		return ErrAborted
	}
	return WriteResult(stdout, cfg.Output, res.Selected)
}

func fromFile(path string) bool {
	return path != "" && path != "-"
}

func loadOptions(path string, format source.Format, stdin io.Reader, stdinTTY bool) ([]option.Option[string], error) {
	if fromFile(path) {
		return source.Load(path, format)
	}
	if stdinTTY {
		return nil, ErrNoOptions
	}
	opts, err := source.Read(stdin, format)
	if err != nil {
		return nil, fmt.Errorf("stdin: %w", err)
	}
	return opts, nil
}

// ComboboxConfig maps CLI flags onto the state machine configuration.
func ComboboxConfig(cfg Config) combobox.Config[string] {
	cc := combobox.DefaultConfig[string]()
	cc.IsMulti = cfg.Multi
	cc.IsClearable = cfg.Clearable
	cc.IsSearchable = cfg.Searchable
	cc.IsTaggable = cfg.Taggable
	cc.IsDisabled = cfg.Disabled
	cc.HideSelectedOptions = cfg.HideSelected
	cc.CloseOnSelect = cfg.CloseOnSelect
	cc.SelectOnBlur = cfg.SelectOnBlur
	cc.ClearSearchOnClose = cfg.ClearSearchOnClose
	cc.ShouldAutofocusOption = cfg.Autofocus
	if cfg.Fuzzy {
		cc.FilterBy = combobox.FuzzyFilter[string]()
	}
	return cc
}

// InitialValue builds the preselected value. Single mode uses the first
// entry only.
func InitialValue(cfg Config) combobox.Value[string] {
	if cfg.Multi {
		return combobox.List(cfg.Initial...)
	}
	if len(cfg.Initial) == 0 {
		return combobox.None[string]()
	}
	return combobox.Single(cfg.Initial[0])
}

type selection struct {
	Label       string `json:"label"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
}

// WriteResult prints the selected options: one value per line, or a JSON
// array of label/value objects.
func WriteResult(w io.Writer, output string, selected []option.Option[string]) error {
	switch output {
	case OutputJSON:
		out := make([]selection, 0, len(selected))
		for _, o := range selected {
			out = append(out, selection{
				Label:       o.Label,
				Value:       o.Value,
				Description: o.String(source.KeyDescription),
			})
		}
		enc := json.NewEncoder(w)
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
		return nil
	case OutputLines, "":
		for _, o := range selected {
			if _, err := fmt.Fprintln(w, o.Value); err != nil {
				return fmt.Errorf("write result: %w", err)
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output %q", output)
	}
}
