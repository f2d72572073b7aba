package model

import "fmt"

// Number is an enumeration whose discriminants are implicit and
// positional, starting at zero.
type Number int

const (
	Zero Number = iota
	One
	Two
)

// Numbers lists every Number in declaration order.
var Numbers = []Number{Zero, One, Two}

// String returns the lowercase variant name.
func (n Number) String() string {
	switch n {
	case Zero:
		return "zero"
	case One:
		return "one"
	case Two:
		return "two"
	default:
		return fmt.Sprintf("number(%d)", int(n))
	}
}

// Color is an enumeration whose discriminants are explicit RGB values.
type Color uint32

const (
	Red   Color = 0xff0000
	Green Color = 0x00ff00
	Blue  Color = 0x0000ff
)

// Colors lists every Color in declaration order.
var Colors = []Color{Red, Green, Blue}

// String returns the lowercase variant name.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("color(%#06x)", uint32(c))
	}
}

// Hex formats the discriminant as a CSS-style code, e.g. "#ff0000".
func (c Color) Hex() string {
	return fmt.Sprintf("#%06x", uint32(c))
}
