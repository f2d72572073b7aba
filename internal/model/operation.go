package model

import (
	"fmt"
	"strings"
)

// Operation is a closed set of arithmetic operations on two integers.
type Operation int

const (
	// Add sums its operands.
	Add Operation = iota

	// Subtract takes the second operand from the first.
	Subtract
)

// String returns the lowercase name of the operation.
func (o Operation) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Symbol returns the infix operator used when printing an expression.
func (o Operation) Symbol() string {
	if o == Subtract {
		return "-"
	}
	return "+"
}

// IsValid checks whether the Operation value is one of the defined variants.
func (o Operation) IsValid() bool {
	return o == Add || o == Subtract
}

// Run applies the operation to x and y. Overflow wraps silently,
// following int32 arithmetic.
func (o Operation) Run(x, y int32) int32 {
	switch o {
	case Subtract:
		return x - y
	default:
		return x + y
	}
}

// RunPlusOne returns Run(x, y) offset by one.
func (o Operation) RunPlusOne(x, y int32) int32 {
	return 1 + o.Run(x, y)
}

// ParseOperation converts a name or operator symbol to an Operation.
// Matching is case-insensitive; "+" and "-" are accepted as well.
func ParseOperation(s string) (Operation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "add", "+":
		return Add, nil
	case "subtract", "sub", "-":
		return Subtract, nil
	default:
		return 0, fmt.Errorf("invalid operation: %q (valid: add, subtract)", s)
	}
}
