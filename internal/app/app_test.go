package app

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/source"
	"github.com/atomicstack/popup-select/internal/testutil"
)

func TestWriteResultLines(t *testing.T) {
	var buf bytes.Buffer
	selected := []option.Option[string]{
		{Label: "France", Value: "FR"},
		{Label: "Germany", Value: "DE"},
	}
	if err := WriteResult(&buf, OutputLines, selected); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := buf.String(); got != "FR\nDE\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWriteResultJSON(t *testing.T) {
	var buf bytes.Buffer
	selected := []option.Option[string]{
		{Label: "France", Value: "FR", Extra: map[string]any{source.KeyDescription: "république"}},
	}
	if err := WriteResult(&buf, OutputJSON, selected); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := `[{"label":"France","value":"FR","description":"république"}]` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output %q", got)
	}

	buf.Reset()
	if err := WriteResult(&buf, OutputJSON, nil); err != nil {
		t.Fatalf("write empty: %v", err)
	}
	if got := buf.String(); got != "[]\n" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestWriteResultRejectsUnknownOutput(t *testing.T) {
	if err := WriteResult(&bytes.Buffer{}, "yaml", nil); err == nil {
		t.Fatalf("expected error for unknown output")
	}
}

func TestComboboxConfigMapsFlags(t *testing.T) {
	cc := ComboboxConfig(Config{
		Multi:        true,
		Taggable:     true,
		HideSelected: true,
		Searchable:   true,
		Fuzzy:        true,
	})
	if !cc.IsMulti || !cc.IsTaggable || !cc.HideSelectedOptions || !cc.IsSearchable {
		t.Fatalf("flags not mapped: %+v", cc)
	}
	if cc.IsClearable || cc.CloseOnSelect || cc.ShouldAutofocusOption {
		t.Fatalf("expected unset flags to stay off: %+v", cc)
	}
	if cc.FilterBy == nil {
		t.Fatalf("expected fuzzy filter installed")
	}
	if !cc.FilterBy(option.Option[string]{}, "United Kingdom", "unkg") {
		t.Fatalf("expected fuzzy match")
	}
}

func TestInitialValue(t *testing.T) {
	if v := InitialValue(Config{}); !v.IsEmpty() || v.IsList() {
		t.Fatalf("expected empty single value, got %v", v.Values())
	}
	if v := InitialValue(Config{Initial: []string{"FR", "DE"}}); !v.Equal(combobox.Single("FR")) {
		t.Fatalf("expected first entry in single mode, got %v", v.Values())
	}
	if v := InitialValue(Config{Multi: true, Initial: []string{"FR", "DE"}}); !v.Equal(combobox.List("FR", "DE")) {
		t.Fatalf("expected list value, got %v", v.Values())
	}
}

func TestLoadOptionsFromStdin(t *testing.T) {
	opts, err := loadOptions("-", source.FormatAuto, strings.NewReader("France\tFR\nGermany\tDE\n"), false)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(opts) != 2 || opts[1].Value != "DE" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestLoadOptionsNeedsInput(t *testing.T) {
	_, err := loadOptions("", source.FormatAuto, strings.NewReader(""), true)
	if !errors.Is(err, ErrNoOptions) {
		t.Fatalf("expected ErrNoOptions, got %v", err)
	}
}

func TestLoadOptionsFromFile(t *testing.T) {
	path := testutil.WriteOptions(t, "options.json", `["a","b","c"]`)
	opts, err := loadOptions(path, source.FormatAuto, nil, true)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(opts) != 3 || opts[2].Label != "c" {
		t.Fatalf("unexpected options %+v", opts)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	err := run(Config{Format: "xml"}, strings.NewReader(""), false, &bytes.Buffer{})
	if !errors.Is(err, source.ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}
