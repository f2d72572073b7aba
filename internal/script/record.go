package script

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shinji-kodama/typetour/internal/model"
)

// Record is the serialized form of a single web event. Only the fields
// relevant to Type are read; the rest are ignored.
type Record struct {
	// Type is the event kind, e.g. "key-press" or "click".
	// Matching ignores case, hyphens and underscores.
	Type string `json:"type" yaml:"type"`

	// Key is the pressed character for key-press events.
	Key string `json:"key,omitempty" yaml:"key,omitempty"`

	// Text is the pasted text for paste events.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`

	// X and Y are the coordinates of click events.
	X int64 `json:"x,omitempty" yaml:"x,omitempty"`
	Y int64 `json:"y,omitempty" yaml:"y,omitempty"`
}

// Document is the top-level shape of an event script.
type Document struct {
	Events []Record `json:"events" yaml:"events"`
}

// normalizeKind folds "Key_Press", "key-press" and "keypress" together.
func normalizeKind(kind string) string {
	kind = strings.ToLower(strings.TrimSpace(kind))
	kind = strings.ReplaceAll(kind, "-", "")
	return strings.ReplaceAll(kind, "_", "")
}

// ToEvent converts the record into its WebEvent variant.
func (r Record) ToEvent() (model.WebEvent, error) {
	switch normalizeKind(r.Type) {
	case "pageload":
		return model.PageLoad{}, nil
	case "pageunload":
		return model.PageUnload{}, nil
	case "keypress":
		if utf8.RuneCountInString(r.Key) != 1 {
			return nil, fmt.Errorf("key-press event needs exactly one character, got %q", r.Key)
		}
		c, _ := utf8.DecodeRuneInString(r.Key)
		return model.KeyPress(c), nil
	case "paste":
		return model.Paste(r.Text), nil
	case "click":
		return model.Click{X: r.X, Y: r.Y}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q (valid: page-load, page-unload, key-press, paste, click)", r.Type)
	}
}

// FromEvent converts an event back into its serialized record.
func FromEvent(event model.WebEvent) Record {
	rec := Record{Type: event.Kind()}
	switch e := event.(type) {
	case model.KeyPress:
		rec.Key = string(rune(e))
	case model.Paste:
		rec.Text = string(e)
	case model.Click:
		rec.X, rec.Y = e.X, e.Y
	}
	return rec
}

// ParseEvent builds an event from command-line words: a kind followed by
// its payload. Examples:
//
//	page-load
//	key-press x
//	paste "my text"
//	click 20 80
func ParseEvent(kind string, args []string) (model.WebEvent, error) {
	rec := Record{Type: kind}

	switch normalizeKind(kind) {
	case "pageload", "pageunload":
		if len(args) != 0 {
			return nil, fmt.Errorf("%s takes no arguments", kind)
		}
	case "keypress":
		if len(args) != 1 {
			return nil, fmt.Errorf("%s takes exactly one character", kind)
		}
		rec.Key = args[0]
	case "paste":
		// Unquoted multi-word text arrives split; rejoin it.
		rec.Text = strings.Join(args, " ")
	case "click":
		if len(args) != 2 {
			return nil, fmt.Errorf("%s takes two coordinates (x y)", kind)
		}
		x, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x coordinate %q: %w", args[0], err)
		}
		y, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y coordinate %q: %w", args[1], err)
		}
		rec.X, rec.Y = x, y
	}

	return rec.ToEvent()
}

// DefaultEvents returns the events inspected when no script is given,
// in the order they are printed.
func DefaultEvents() []model.WebEvent {
	return []model.WebEvent{
		model.KeyPress('x'),
		model.Paste("my text"),
		model.Click{X: 20, Y: 80},
		model.PageLoad{},
		model.PageUnload{},
	}
}
