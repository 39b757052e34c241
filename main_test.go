package main

import (
	"testing"

	"github.com/atomicstack/popup-select/internal/app"
	"github.com/atomicstack/popup-select/internal/config"
)

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			OptionsPath: "options.json",
			Output:      app.OutputJSON,
			Multi:       true,
			Width:       80,
			Height:      24,
			ShowFooter:  true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		ConfigFile: "config.toml",
		Flags: map[string]string{
			"options": "options.json",
			"width":   "80",
			"height":  "24",
			"footer":  "true",
			"multi":   "true",
		},
		Args: []string{"--options", "options.json"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["options"] != "options.json" {
		t.Fatalf("expected options flag %q, got %v", "options.json", flagsValue["options"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["height"] != "24" {
		t.Fatalf("expected height 24, got %v", flagsValue["height"])
	}
	if flagsValue["footer"] != "true" {
		t.Fatalf("expected footer flag true, got %v", flagsValue["footer"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["multi"] != "true" {
		t.Fatalf("expected multi flag true, got %v", flagsValue["multi"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["configFile"] != "config.toml" {
		t.Fatalf("expected config file in payload, got %v", payload["configFile"])
	}

	if _, ok := payload["tty"].(app.Terminals); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App.OptionsPath != cfg.App.OptionsPath || cfgValue.App.Width != 80 || !cfgValue.App.Multi {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}
