// Package source reads option lists from plain lines, JSON or TOML.
package source

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/atomicstack/popup-select/internal/option"
	"github.com/pelletier/go-toml/v2"
)

// Format names an input encoding.
type Format string

const (
	FormatAuto  Format = "auto"
	FormatLines Format = "lines"
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
)

// Extra keys populated by the parsers.
const (
	KeyDescription = "description"
)

// ErrUnknownFormat is returned for format names Parse does not understand.
var ErrUnknownFormat = errors.New("unknown option format")

// ParseFormat validates a format name. The empty string means auto.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatLines, FormatJSON, FormatTOML:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Detect picks a format from the file extension, falling back to sniffing
// the first non-blank byte of data.
func Detect(path string, data []byte) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".toml":
		return FormatTOML
	case ".txt", ".lines":
		return FormatLines
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' && json.Valid(trimmed) {
		return FormatJSON
	}
	if bytes.HasPrefix(trimmed, []byte("[[options]]")) {
		return FormatTOML
	}
	return FormatLines
}

// Load reads and parses the options file at path.
func Load(path string, format Format) ([]option.Option[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read options %s: %w", path, err)
	}
	if format == FormatAuto || format == "" {
		format = Detect(path, data)
	}
	opts, err := Parse(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("parse options %s: %w", path, err)
	}
	return opts, nil
}

// Read parses options from r. FormatAuto sniffs the content.
func Read(r io.Reader, format Format) ([]option.Option[string], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}
	if format == FormatAuto || format == "" {
		format = Detect("", data)
	}
	return Parse(bytes.NewReader(data), format)
}

// Parse decodes options from r in the given format.
func Parse(r io.Reader, format Format) ([]option.Option[string], error) {
	switch format {
	case FormatLines:
		return parseLines(r)
	case FormatJSON:
		return parseJSON(r)
	case FormatTOML:
		return parseTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
	}
}

// parseLines reads one option per line as "label[\tvalue[\tdescription]]".
// Blank lines are skipped.
func parseLines(r io.Reader) ([]option.Option[string], error) {
	var opts []option.Option[string]
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 3)
		o := option.Option[string]{Label: fields[0], Value: fields[0]}
		if len(fields) > 1 && fields[1] != "" {
			o.Value = fields[1]
		}
		if len(fields) > 2 && fields[2] != "" {
			o.Extra = map[string]any{KeyDescription: fields[2]}
		}
		opts = append(opts, o)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan lines: %w", err)
	}
	return opts, nil
}

type record struct {
	Label    string
	Value    any
	Disabled bool
	Extra    map[string]any
}

// parseJSON accepts an array whose entries are either strings or objects
// with label, value and disabled fields. Other object fields land in Extra.
func parseJSON(r io.Reader) ([]option.Option[string], error) {
	var raw []json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	opts := make([]option.Option[string], 0, len(raw))
	for i, entry := range raw {
		var label string
		if err := json.Unmarshal(entry, &label); err == nil {
			opts = append(opts, option.Option[string]{Label: label, Value: label})
			continue
		}
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, fmt.Errorf("entry %d: expected string or object", i)
		}
		o, err := fromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		opts = append(opts, o)
	}
	return opts, nil
}

// parseTOML reads an array of [[options]] tables.
func parseTOML(r io.Reader) ([]option.Option[string], error) {
	var doc struct {
		Options []map[string]any `toml:"options"`
	}
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode toml: %w", err)
	}
	opts := make([]option.Option[string], 0, len(doc.Options))
	for i, fields := range doc.Options {
		o, err := fromFields(fields)
		if err != nil {
			return nil, fmt.Errorf("options[%d]: %w", i, err)
		}
		opts = append(opts, o)
	}
	return opts, nil
}

func fromFields(fields map[string]any) (option.Option[string], error) {
	rec := record{Extra: map[string]any{}}
	for key, v := range fields {
		switch key {
		case "label":
			s, ok := v.(string)
			if !ok {
				return option.Option[string]{}, fmt.Errorf("label must be a string, got %T", v)
			}
			rec.Label = s
		case "value":
			rec.Value = v
		case "disabled":
			b, ok := v.(bool)
			if !ok {
				return option.Option[string]{}, fmt.Errorf("disabled must be a boolean, got %T", v)
			}
			rec.Disabled = b
		default:
			rec.Extra[key] = v
		}
	}
	if rec.Label == "" && rec.Value == nil {
		return option.Option[string]{}, errors.New("option needs a label or a value")
	}
	o := option.Option[string]{Label: rec.Label, Disabled: rec.Disabled}
	switch v := rec.Value.(type) {
	case nil:
		o.Value = rec.Label
	case string:
		o.Value = v
	default:
		o.Value = fmt.Sprint(v)
	}
	if o.Label == "" {
		o.Label = o.Value
	}
	if len(rec.Extra) > 0 {
		o.Extra = rec.Extra
	}
	return o, nil
}
