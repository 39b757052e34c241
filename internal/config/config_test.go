package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/atomicstack/popup-select/internal/app"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := cfg.App
	if got.Format != "auto" || got.Output != app.OutputLines {
		t.Fatalf("unexpected format/output %q/%q", got.Format, got.Output)
	}
	if !got.Clearable || !got.Searchable || !got.CloseOnSelect || !got.ClearSearchOnClose || !got.Autofocus {
		t.Fatalf("expected combobox defaults on, got %+v", got)
	}
	if got.Multi || got.Taggable || got.Fuzzy || got.AltScreen {
		t.Fatalf("expected optional features off, got %+v", got)
	}
	if got.Placeholder != "Select option" {
		t.Fatalf("unexpected placeholder %q", got.Placeholder)
	}
	if cfg.ConfigFile != "" {
		t.Fatalf("expected no config file without HOME, got %q", cfg.ConfigFile)
	}
	if err := Validate(cfg); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"POPUP_SELECT_WIDTH=40",
		"POPUP_SELECT_MULTI=true",
		"POPUP_SELECT_OUTPUT=json",
		"POPUP_SELECT_VALUE=FR, DE",
	}
	cfg, err := LoadArgs([]string{"--width", "72", "--value", "UK"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 72 {
		t.Fatalf("expected flag width 72, got %d", cfg.App.Width)
	}
	if !cfg.App.Multi || cfg.App.Output != app.OutputJSON {
		t.Fatalf("expected env values kept, got %+v", cfg.App)
	}
	if !reflect.DeepEqual(cfg.App.Initial, []string{"UK"}) {
		t.Fatalf("expected flag values to replace env values, got %v", cfg.App.Initial)
	}

	cfg, err = LoadArgs(nil, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.Initial, []string{"FR", "DE"}) {
		t.Fatalf("expected env values, got %v", cfg.App.Initial)
	}
}

func TestRepeatedValueFlag(t *testing.T) {
	cfg, err := LoadArgs([]string{"--multi", "--value", "a", "--value", "b"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(cfg.App.Initial, []string{"a", "b"}) {
		t.Fatalf("unexpected values %v", cfg.App.Initial)
	}
	if cfg.Flags[KeyValue] != "a,b" {
		t.Fatalf("unexpected flag echo %q", cfg.Flags[KeyValue])
	}
}

func TestConfigFileSeedsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "multi = true\nfuzzy = true\nplaceholder = \"Pick\"\nwatch = \"2s\"\nwidth = 50\nvalue = [\"x\", \"y\"]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadArgs([]string{"--config=" + path}, []string{"POPUP_SELECT_WIDTH=60"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	got := cfg.App
	if !got.Multi || !got.Fuzzy || got.Placeholder != "Pick" {
		t.Fatalf("expected file values, got %+v", got)
	}
	if got.Watch != 2*time.Second {
		t.Fatalf("expected 2s watch, got %s", got.Watch)
	}
	if got.Width != 60 {
		t.Fatalf("expected env to beat the file, got %d", got.Width)
	}
	if !reflect.DeepEqual(got.Initial, []string{"x", "y"}) {
		t.Fatalf("expected file values, got %v", got.Initial)
	}
	if cfg.ConfigFile != path {
		t.Fatalf("expected config path recorded, got %q", cfg.ConfigFile)
	}
}

func TestConfigFileFromXDG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "popup-select", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("taggable = true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadArgs(nil, []string{"XDG_CONFIG_HOME=" + dir})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.Taggable {
		t.Fatalf("expected taggable from XDG config")
	}
}

func TestMalformedConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("multi = = true"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadArgs([]string{"--config", path}, nil); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestPositionalOptionsPath(t *testing.T) {
	cfg, err := LoadArgs([]string{"--multi", "options.json"}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.OptionsPath != "options.json" {
		t.Fatalf("expected positional path, got %q", cfg.App.OptionsPath)
	}
}

func TestNoColorEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"NO_COLOR=1"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.NoColor {
		t.Fatalf("expected NO_COLOR honoured")
	}
}

func TestUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus", "x"}, nil); err == nil {
		t.Fatalf("expected unknown flag error")
	}
}

func TestValidate(t *testing.T) {
	base, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cases := map[string]func(*Config){
		"format":     func(c *Config) { c.App.Format = "xml" },
		"output":     func(c *Config) { c.App.Output = "yaml" },
		"width":      func(c *Config) { c.App.Width = -1 },
		"height":     func(c *Config) { c.App.Height = -1 },
		"maxVisible": func(c *Config) { c.App.MaxVisible = -2 },
		"watchStdin": func(c *Config) { c.App.Watch = time.Second },
		"values":     func(c *Config) { c.App.Initial = []string{"a", "b"} },
	}
	for name, mutate := range cases {
		cfg := base
		cfg.App.Initial = nil
		mutate(&cfg)
		if err := Validate(cfg); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}

	ok := base
	ok.App.OptionsPath = "options.txt"
	ok.App.Watch = time.Second
	ok.App.Multi = true
	ok.App.Initial = []string{"a", "b"}
	if err := Validate(ok); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
}

func TestConfigFlagForms(t *testing.T) {
	cases := map[string][]string{
		"a.toml": {"--config", "a.toml"},
		"b.toml": {"-config=b.toml"},
		"":       {"--", "--config", "c.toml"},
	}
	for want, args := range cases {
		if got := configFlag(args); got != want {
			t.Fatalf("configFlag(%v) = %q, want %q", args, got, want)
		}
	}
}
