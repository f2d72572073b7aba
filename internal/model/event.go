package model

import "fmt"

// WebEvent is a closed set of browser events. Each variant is its own type;
// the unexported marker method keeps the set closed to this package.
//
// Variants carry different payloads: PageLoad and PageUnload carry nothing,
// KeyPress carries a character, Paste carries text, and Click carries a
// pair of integer coordinates. Two variants are never equal to each other,
// even when their payloads look alike.
type WebEvent interface {
	// Kind returns the stable kebab-case name of the variant.
	// It is used by event scripts and JSON output.
	Kind() string

	webEvent()
}

// Event kind names returned by WebEvent.Kind.
const (
	KindPageLoad   = "page-load"
	KindPageUnload = "page-unload"
	KindKeyPress   = "key-press"
	KindPaste      = "paste"
	KindClick      = "click"
)

// PageLoad is emitted when a page has finished loading.
type PageLoad struct{}

// PageUnload is emitted when a page is unloaded.
type PageUnload struct{}

// KeyPress records a single pressed character.
type KeyPress rune

// Paste records pasted text.
type Paste string

// Click records the coordinates of a mouse click.
type Click struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

func (PageLoad) Kind() string   { return KindPageLoad }
func (PageUnload) Kind() string { return KindPageUnload }
func (KeyPress) Kind() string   { return KindKeyPress }
func (Paste) Kind() string      { return KindPaste }
func (Click) Kind() string      { return KindClick }

func (PageLoad) webEvent()   {}
func (PageUnload) webEvent() {}
func (KeyPress) webEvent()   {}
func (Paste) webEvent()      {}
func (Click) webEvent()      {}

// Inspect returns the one-line description of an event.
//
// The output is fixed per variant:
//
//	PageLoad          → page loaded
//	PageUnload        → page unloaded
//	KeyPress('x')     → pressed 'x'.
//	Paste("my text")  → pasted "my text".
//	Click{20, 80}     → clicked at x=20, y=80.
func Inspect(event WebEvent) string {
	switch e := event.(type) {
	case PageLoad:
		return "page loaded"
	case PageUnload:
		return "page unloaded"
	case KeyPress:
		return fmt.Sprintf("pressed '%c'.", rune(e))
	case Paste:
		return fmt.Sprintf("pasted \"%s\".", string(e))
	case Click:
		return fmt.Sprintf("clicked at x=%d, y=%d.", e.X, e.Y)
	default:
		// Unreachable while the interface stays sealed; nil lands here.
		return fmt.Sprintf("unknown event %v", event)
	}
}
