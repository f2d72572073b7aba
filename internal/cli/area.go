// Package cli — area.go implements the "area" and "square" commands, which
// expose the rectangle helpers from the model package.
//
// Negative numbers must follow "--" so they are not parsed as flags:
//
//	typetour area -- -1 2 3 -4
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/typetour/internal/model"
)

// rectJSON is the JSON output structure for the area and square commands.
type rectJSON struct {
	TopLeft     model.Point `json:"topLeft"`
	BottomRight model.Point `json:"bottomRight"`
	Area        float64     `json:"area"`
}

// NewAreaCommand creates the "area" cobra command.
func NewAreaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "area X1 Y1 X2 Y2",
		Short: "Compute the area of a rectangle from two corners",
		Long: `Compute the area of the rectangle with top-left corner (X1, Y1) and
bottom-right corner (X2, Y2). Corner order is not checked: the area only
depends on the absolute coordinate differences.

Examples:
  typetour area 0 5 5 0
  typetour area --json 1.5 2 4 -1`,

		Args: cobra.ExactArgs(4),

		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"x1", "y1", "x2", "y2"}
			coords := make([]float64, 4)
			for i, arg := range args {
				v, err := parseFloatArg(names[i], arg)
				if err != nil {
					return err
				}
				coords[i] = v
			}

			rect := model.Rectangle{
				TopLeft:     model.Point{X: coords[0], Y: coords[1]},
				BottomRight: model.Point{X: coords[2], Y: coords[3]},
			}
			return printRect(cmd.OutOrStdout(), rect, false)
		},
	}
}

// NewSquareCommand creates the "square" cobra command.
func NewSquareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "square X Y LENGTH",
		Short: "Build a square from an origin and a side length",
		Long: `Build the square whose top-left corner is (X, Y) and which extends
LENGTH units right and LENGTH units down, then print its corners and area.

Examples:
  typetour square 0 0 5`,

		Args: cobra.ExactArgs(3),

		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseFloatArg("x", args[0])
			if err != nil {
				return err
			}
			y, err := parseFloatArg("y", args[1])
			if err != nil {
				return err
			}
			length, err := parseFloatArg("length", args[2])
			if err != nil {
				return err
			}

			rect := model.Square(model.Point{X: x, Y: y}, length)
			VerboseLog("Square from (%v, %v) with length %v", x, y, length)
			return printRect(cmd.OutOrStdout(), rect, true)
		},
	}
}

// printRect outputs the rectangle's area, and its corners when withCorners
// is set, in text or JSON format.
func printRect(w io.Writer, rect model.Rectangle, withCorners bool) error {
	area := model.RectArea(rect)

	if IsJSONOutput() {
		return writeJSON(w, rectJSON{
			TopLeft:     rect.TopLeft,
			BottomRight: rect.BottomRight,
			Area:        area,
		})
	}

	if withCorners {
		fmt.Fprintf(w, "top left: (%s, %s)\n", formatFloat(rect.TopLeft.X), formatFloat(rect.TopLeft.Y))
		fmt.Fprintf(w, "bottom right: (%s, %s)\n", formatFloat(rect.BottomRight.X), formatFloat(rect.BottomRight.Y))
	}
	_, err := fmt.Fprintf(w, "rect_area: %s\n", formatFloat(area))
	return err
}
