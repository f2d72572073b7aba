package model

import "math"

// Person is a labeled record. It is only ever printed in debug form.
type Person struct {
	Name string `json:"name"`
	Age  uint8  `json:"age"`
}

// Unit is a record with no fields. All Unit values are equal.
type Unit struct{}

// Pair is a positional record holding an integer and a decimal.
type Pair struct {
	Int   int32   `json:"int"`
	Float float64 `json:"float"`
}

// Point is a coordinate pair in the plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rectangle is specified by the positions of its top-left and
// bottom-right corners.
type Rectangle struct {
	TopLeft     Point `json:"topLeft"`
	BottomRight Point `json:"bottomRight"`
}

// RectArea returns the area of r computed from the absolute differences
// of its corner coordinates.
//
// Corner ordering is not validated: swapping the corners along either axis
// yields the same area, and degenerate rectangles simply have zero area.
func RectArea(r Rectangle) float64 {
	x1, y1 := r.TopLeft.X, r.TopLeft.Y
	x2, y2 := r.BottomRight.X, r.BottomRight.Y

	return math.Abs(y2-y1) * math.Abs(x2-x1)
}

// Square returns the rectangle whose top-left corner is origin and which
// extends length units right and length units down. A negative length
// is accepted and flips the extension.
func Square(origin Point, length float64) Rectangle {
	return Rectangle{
		TopLeft: origin,
		BottomRight: Point{
			X: origin.X + length,
			Y: origin.Y - length,
		},
	}
}
