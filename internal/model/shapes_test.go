package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRectArea verifies the area formula across ordinary, degenerate and
// inverted rectangles.
func TestRectArea(t *testing.T) {
	tests := []struct {
		name string
		rect Rectangle
		want float64
	}{
		{
			name: "unit square",
			rect: Rectangle{TopLeft: Point{0, 1}, BottomRight: Point{1, 0}},
			want: 1,
		},
		{
			name: "zero width",
			rect: Rectangle{TopLeft: Point{2, 5}, BottomRight: Point{2, 0}},
			want: 0,
		},
		{
			name: "negative offsets",
			rect: Rectangle{TopLeft: Point{-3, -1}, BottomRight: Point{-1, -4}},
			want: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RectArea(tt.rect), 1e-9)
		})
	}
}

// TestRectArea_CornerSwapInvariant checks that the area depends only on
// absolute coordinate differences, so swapping corner roles along either
// axis does not change it.
func TestRectArea_CornerSwapInvariant(t *testing.T) {
	tl := Point{X: 1.5, Y: 7}
	br := Point{X: 4, Y: 2.25}
	base := RectArea(Rectangle{TopLeft: tl, BottomRight: br})

	swappedX := Rectangle{
		TopLeft:     Point{X: br.X, Y: tl.Y},
		BottomRight: Point{X: tl.X, Y: br.Y},
	}
	swappedY := Rectangle{
		TopLeft:     Point{X: tl.X, Y: br.Y},
		BottomRight: Point{X: br.X, Y: tl.Y},
	}
	swappedBoth := Rectangle{TopLeft: br, BottomRight: tl}

	assert.Equal(t, base, RectArea(swappedX))
	assert.Equal(t, base, RectArea(swappedY))
	assert.Equal(t, base, RectArea(swappedBoth))
}

func TestSquare(t *testing.T) {
	rect := Square(Point{X: 0, Y: 0}, 5)

	assert.Equal(t, Point{X: 0, Y: 0}, rect.TopLeft)
	assert.Equal(t, Point{X: 5, Y: -5}, rect.BottomRight)
	assert.Equal(t, 25.0, RectArea(rect))
}

// TestSquare_NegativeLength documents that a negative side length is not
// rejected; the square extends up and left instead.
func TestSquare_NegativeLength(t *testing.T) {
	rect := Square(Point{X: 1, Y: 1}, -2)

	assert.Equal(t, Point{X: -1, Y: 3}, rect.BottomRight)
	assert.Equal(t, 4.0, RectArea(rect))
}
