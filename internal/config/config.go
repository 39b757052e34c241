package config

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/popup-select/internal/app"
	"github.com/atomicstack/popup-select/internal/source"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ConfigFile string
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfig             = "POPUP_SELECT_CONFIG"
	envOptions            = "POPUP_SELECT_OPTIONS"
	envFormat             = "POPUP_SELECT_FORMAT"
	envOutput             = "POPUP_SELECT_OUTPUT"
	envMulti              = "POPUP_SELECT_MULTI"
	envClearable          = "POPUP_SELECT_CLEARABLE"
	envSearchable         = "POPUP_SELECT_SEARCHABLE"
	envTaggable           = "POPUP_SELECT_TAGGABLE"
	envDisabled           = "POPUP_SELECT_DISABLED"
	envHideSelected       = "POPUP_SELECT_HIDE_SELECTED"
	envCloseOnSelect      = "POPUP_SELECT_CLOSE_ON_SELECT"
	envSelectOnBlur       = "POPUP_SELECT_SELECT_ON_BLUR"
	envClearSearchOnClose = "POPUP_SELECT_CLEAR_SEARCH_ON_CLOSE"
	envAutofocus          = "POPUP_SELECT_AUTOFOCUS"
	envFuzzy              = "POPUP_SELECT_FUZZY"
	envPlaceholder        = "POPUP_SELECT_PLACEHOLDER"
	envValue              = "POPUP_SELECT_VALUE"
	envWidth              = "POPUP_SELECT_WIDTH"
	envHeight             = "POPUP_SELECT_HEIGHT"
	envMaxVisible         = "POPUP_SELECT_MAX_VISIBLE"
	envShowFooter         = "POPUP_SELECT_FOOTER"
	envAltScreen          = "POPUP_SELECT_ALT_SCREEN"
	envWatch              = "POPUP_SELECT_WATCH"
	envTrace              = "POPUP_SELECT_TRACE"
	envLogFile            = "POPUP_SELECT_LOG_FILE"
	envNoColor            = "NO_COLOR"
)

// Keys shared by the config file and the flag set.
const (
	KeyOptions            = "options"
	KeyFormat             = "format"
	KeyOutput             = "output"
	KeyMulti              = "multi"
	KeyClearable          = "clearable"
	KeySearchable         = "searchable"
	KeyTaggable           = "taggable"
	KeyDisabled           = "disabled"
	KeyHideSelected       = "hide-selected"
	KeyCloseOnSelect      = "close-on-select"
	KeySelectOnBlur       = "select-on-blur"
	KeyClearSearchOnClose = "clear-search-on-close"
	KeyAutofocus          = "autofocus"
	KeyFuzzy              = "fuzzy"
	KeyPlaceholder        = "placeholder"
	KeyValue              = "value"
	KeyWidth              = "width"
	KeyHeight             = "height"
	KeyMaxVisible         = "max-visible"
	KeyFooter             = "footer"
	KeyAltScreen          = "alt-screen"
	KeyWatch              = "watch"
	KeyTrace              = "trace"
	KeyLogFile            = "log-file"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Precedence is
// defaults < config file < environment < flags.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	configPath := configFlag(args)
	if configPath == "" {
		configPath = envOrDefault(env, envConfig, defaultConfigPath(env))
	}
	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)
	if err := mergeConfigFile(v, configPath); err != nil {
		return Config{}, fmt.Errorf("load config file: %w", err)
	}

	fs := flag.NewFlagSet("popup-select", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", configPath, "path to a TOML file with default settings")
	optionsPath := fs.String(KeyOptions, envOrDefault(env, envOptions, v.GetString(KeyOptions)), "path to the options file (- or empty reads stdin)")
	format := fs.String(KeyFormat, envOrDefault(env, envFormat, v.GetString(KeyFormat)), "options format: auto, lines, json or toml")
	output := fs.String(KeyOutput, envOrDefault(env, envOutput, v.GetString(KeyOutput)), "result format: lines or json")
	multi := fs.Bool(KeyMulti, envOrBool(env, envMulti, v.GetBool(KeyMulti)), "allow selecting several options")
	clearable := fs.Bool(KeyClearable, envOrBool(env, envClearable, v.GetBool(KeyClearable)), "show the clear affordance")
	searchable := fs.Bool(KeySearchable, envOrBool(env, envSearchable, v.GetBool(KeySearchable)), "filter options while typing")
	taggable := fs.Bool(KeyTaggable, envOrBool(env, envTaggable, v.GetBool(KeyTaggable)), "allow creating options from the search text")
	disabled := fs.Bool(KeyDisabled, envOrBool(env, envDisabled, v.GetBool(KeyDisabled)), "render the widget read-only")
	hideSelected := fs.Bool(KeyHideSelected, envOrBool(env, envHideSelected, v.GetBool(KeyHideSelected)), "hide selected options in multi mode")
	closeOnSelect := fs.Bool(KeyCloseOnSelect, envOrBool(env, envCloseOnSelect, v.GetBool(KeyCloseOnSelect)), "close the menu after a selection")
	selectOnBlur := fs.Bool(KeySelectOnBlur, envOrBool(env, envSelectOnBlur, v.GetBool(KeySelectOnBlur)), "select the focused option when the terminal loses focus")
	clearSearch := fs.Bool(KeyClearSearchOnClose, envOrBool(env, envClearSearchOnClose, v.GetBool(KeyClearSearchOnClose)), "clear the search when the menu closes")
	autofocus := fs.Bool(KeyAutofocus, envOrBool(env, envAutofocus, v.GetBool(KeyAutofocus)), "focus the first option when the list changes")
	fuzzy := fs.Bool(KeyFuzzy, envOrBool(env, envFuzzy, v.GetBool(KeyFuzzy)), "use fuzzy matching instead of substring matching")
	placeholder := fs.String(KeyPlaceholder, envOrDefault(env, envPlaceholder, v.GetString(KeyPlaceholder)), "text shown while nothing is selected")
	width := fs.Int(KeyWidth, envOrInt(env, envWidth, v.GetInt(KeyWidth)), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int(KeyHeight, envOrInt(env, envHeight, v.GetInt(KeyHeight)), "desired viewport height in rows (0 uses terminal height)")
	maxVisible := fs.Int(KeyMaxVisible, envOrInt(env, envMaxVisible, v.GetInt(KeyMaxVisible)), "maximum menu rows (0 fits the height)")
	footer := fs.Bool(KeyFooter, envOrBool(env, envShowFooter, v.GetBool(KeyFooter)), "enable footer hint row")
	altScreen := fs.Bool(KeyAltScreen, envOrBool(env, envAltScreen, v.GetBool(KeyAltScreen)), "render in the alternate screen")
	watch := fs.Duration(KeyWatch, envOrDuration(env, envWatch, v.GetDuration(KeyWatch)), "reload the options file at this interval (0 disables)")
	trace := fs.Bool(KeyTrace, envOrBool(env, envTrace, v.GetBool(KeyTrace)), "enable verbose JSON trace logging")
	logFile := fs.String(KeyLogFile, envOrDefault(env, envLogFile, v.GetString(KeyLogFile)), "path to the log file")

	values := stringList{items: envOrList(env, envValue, v.GetStringSlice(KeyValue))}
	fs.Var(&values, KeyValue, "preselected value (repeatable)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if fs.NArg() > 0 && *optionsPath == "" {
		*optionsPath = fs.Arg(0)
	}

	cfg := Config{
		App: app.Config{
			OptionsPath:        *optionsPath,
			Format:             *format,
			Output:             *output,
			Multi:              *multi,
			Clearable:          *clearable,
			Searchable:         *searchable,
			Taggable:           *taggable,
			Disabled:           *disabled,
			HideSelected:       *hideSelected,
			CloseOnSelect:      *closeOnSelect,
			SelectOnBlur:       *selectOnBlur,
			ClearSearchOnClose: *clearSearch,
			Autofocus:          *autofocus,
			Fuzzy:              *fuzzy,
			Placeholder:        *placeholder,
			Initial:            values.values(),
			Width:              *width,
			Height:             *height,
			MaxVisible:         *maxVisible,
			ShowFooter:         *footer,
			AltScreen:          *altScreen,
			NoColor:            env[envNoColor] != "",
			Watch:              *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ConfigFile: configPath,
		Flags: map[string]string{
			KeyOptions:   *optionsPath,
			KeyFormat:    *format,
			KeyOutput:    *output,
			KeyMulti:     strconv.FormatBool(*multi),
			KeyTaggable:  strconv.FormatBool(*taggable),
			KeyWidth:     strconv.Itoa(*width),
			KeyHeight:    strconv.Itoa(*height),
			KeyFooter:    strconv.FormatBool(*footer),
			KeyWatch:     watch.String(),
			KeyTrace:     strconv.FormatBool(*trace),
			KeyLogFile:   *logFile,
			KeyValue:     strings.Join(values.values(), ","),
			"configFile": configPath,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFormat, string(source.FormatAuto))
	v.SetDefault(KeyOutput, app.OutputLines)
	v.SetDefault(KeyClearable, true)
	v.SetDefault(KeySearchable, true)
	v.SetDefault(KeyCloseOnSelect, true)
	v.SetDefault(KeyClearSearchOnClose, true)
	v.SetDefault(KeyAutofocus, true)
	v.SetDefault(KeyPlaceholder, "Select option")
	v.SetDefault(KeyAltScreen, false)
	v.SetDefault(KeyWatch, time.Duration(0))
}

// configFlag finds --config ahead of the real parse so the file can seed
// the flag defaults.
func configFlag(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return ""
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func defaultConfigPath(env map[string]string) string {
	dir := env["XDG_CONFIG_HOME"]
	if dir == "" {
		home := env["HOME"]
		if home == "" {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "popup-select", "config.toml")
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

// stringList collects repeated flag values. Values seeded from the
// environment or config file are replaced by the first explicit flag.
type stringList struct {
	items []string
	set   bool
}

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(s.items, ",")
}

func (s *stringList) Set(value string) error {
	if !s.set {
		s.items = nil
		s.set = true
	}
	s.items = append(s.items, value)
	return nil
}

func (s *stringList) values() []string {
	return append([]string(nil), s.items...)
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// envOrList splits a comma separated variable.
func envOrList(env map[string]string, key string, fallback []string) []string {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks ranges and enumerated flags.
func Validate(cfg Config) error {
	if _, err := source.ParseFormat(cfg.App.Format); err != nil {
		return err
	}
	switch cfg.App.Output {
	case app.OutputLines, app.OutputJSON:
	default:
		return fmt.Errorf("output must be %q or %q (got %q)", app.OutputLines, app.OutputJSON, cfg.App.Output)
	}
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if cfg.App.MaxVisible < 0 {
		return fmt.Errorf("max-visible must be >= 0 (got %d)", cfg.App.MaxVisible)
	}
	if cfg.App.Watch < 0 {
		return fmt.Errorf("watch must be >= 0 (got %s)", cfg.App.Watch)
	}
	if cfg.App.Watch > 0 && (cfg.App.OptionsPath == "" || cfg.App.OptionsPath == "-") {
		return errors.New("watch needs an options file")
	}
	if !cfg.App.Multi && len(cfg.App.Initial) > 1 {
		return fmt.Errorf("single select accepts one value (got %d)", len(cfg.App.Initial))
	}
	return nil
}
