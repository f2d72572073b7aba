package script

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"github.com/shinji-kodama/typetour/internal/model"
)

// Format identifies an event script encoding.
type Format string

const (
	// FormatYAML is a YAML document decoded with yaml.v3.
	FormatYAML Format = "yaml"

	// FormatJSON is a JSON document. Comments and trailing commas are
	// tolerated on input (JSONC).
	FormatJSON Format = "json"
)

// ParseFormat converts a --format flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json", "jsonc":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("invalid format: %q (valid: yaml, json)", s)
	}
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %s: no file extension", path)
	}
	format, err := ParseFormat(ext)
	if err != nil {
		return "", fmt.Errorf("cannot detect format of %s: %w", path, err)
	}
	return format, nil
}

// Load reads an event script from path and returns its events in file order.
//
// Returns a CLIError with ExitScriptNotFound if the file does not exist,
// whatever its extension. The format is detected only once the file has
// been read.
func Load(path string) ([]model.WebEvent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(
				model.ExitScriptNotFound,
				fmt.Sprintf("event script not found: %s", path),
				err,
			)
		}
		return nil, fmt.Errorf("failed to read event script: %w", err)
	}

	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}

	events, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse event script at %s: %w", path, err)
	}
	return events, nil
}

// Decode parses an event script held in memory.
func Decode(data []byte, format Format) ([]model.WebEvent, error) {
	var doc Document

	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case FormatJSON:
		// Strip comments (// and /* */) and trailing commas first;
		// encoding/json rejects both.
		if err := json.Unmarshal(jsonc.ToJSON(data), &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	events := make([]model.WebEvent, 0, len(doc.Events))
	for i, rec := range doc.Events {
		event, err := rec.ToEvent()
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i+1, err)
		}
		events = append(events, event)
	}
	return events, nil
}

// Marshal writes events to w as a script in the given format. The output
// can be read back with Decode.
func Marshal(w io.Writer, events []model.WebEvent, format Format) error {
	doc := Document{Events: make([]Record, 0, len(events))}
	for _, event := range events {
		doc.Events = append(doc.Events, FromEvent(event))
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&doc); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}
