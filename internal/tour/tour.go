// Package tour assembles the sequence of descriptions printed by typetour.
//
// A tour is built once into a Report made of named sections, then printed
// either as plain text (one description per line) or as JSON. Building is
// pure; printing is the only step that touches an output stream.
package tour

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shinji-kodama/typetour/internal/model"
)

// Section names, in the order they appear in a report.
const (
	SectionShapes        = "shapes"
	SectionEvents        = "events"
	SectionOperations    = "operations"
	SectionCategories    = "categories"
	SectionDiscriminants = "discriminants"
)

// Options controls which parts of the tour are built.
type Options struct {
	// IncludeShapes adds the record walk-through (person, point, pair,
	// rectangle) ahead of the default sections.
	IncludeShapes bool

	// Events are inspected in the events section, in order.
	Events []model.WebEvent
}

// Section is one named group of output lines.
type Section struct {
	Name  string   `json:"name"`
	Lines []string `json:"lines"`
}

// Report is the fully built tour.
type Report struct {
	Sections []Section `json:"sections"`
}

// Build constructs every value the tour describes and returns the report.
func Build(opts Options) *Report {
	report := &Report{}

	if opts.IncludeShapes {
		report.add(SectionShapes, shapeLines())
	}
	report.add(SectionEvents, EventLines(opts.Events))
	report.add(SectionOperations, operationLines())
	report.add(SectionCategories, categoryLines())
	report.add(SectionDiscriminants, discriminantLines())

	return report
}

func (r *Report) add(name string, lines []string) {
	if lines == nil {
		lines = []string{}
	}
	r.Sections = append(r.Sections, Section{Name: name, Lines: lines})
}

// Lines returns every line of the report in print order.
func (r *Report) Lines() []string {
	var lines []string
	for _, s := range r.Sections {
		lines = append(lines, s.Lines...)
	}
	return lines
}

// WriteText prints each line of the report followed by a newline.
func (r *Report) WriteText(w io.Writer) error {
	for _, line := range r.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON prints the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// shapeLines walks through construction, field access, struct update and
// destructuring of the plain records.
func shapeLines() []string {
	var lines []string

	peter := model.Person{Name: "Peter", Age: 27}
	lines = append(lines, fmt.Sprintf("%+v", peter))

	point := model.Point{X: 10.3, Y: 0.4}
	lines = append(lines, fmt.Sprintf("point coordinates: (%s, %s)", formatFloat(point.X), formatFloat(point.Y)))

	// Copy point, then override X: Y is carried over from point.
	bottomRight := point
	bottomRight.X = 5.2
	lines = append(lines, fmt.Sprintf("second point: (%s, %s)", formatFloat(bottomRight.X), formatFloat(bottomRight.Y)))

	leftEdge, topEdge := point.X, point.Y
	rect := model.Rectangle{
		TopLeft:     model.Point{X: leftEdge, Y: topEdge},
		BottomRight: bottomRight,
	}
	lines = append(lines, fmt.Sprintf("rectangle: (%s, %s) to (%s, %s)",
		formatFloat(rect.TopLeft.X), formatFloat(rect.TopLeft.Y),
		formatFloat(rect.BottomRight.X), formatFloat(rect.BottomRight.Y)))

	pair := model.Pair{Int: 1, Float: 0.1}
	lines = append(lines, fmt.Sprintf("pair contains %d and %s", pair.Int, formatFloat(pair.Float)))

	integer, decimal := pair.Int, pair.Float
	lines = append(lines, fmt.Sprintf("pair contains %d and %s", integer, formatFloat(decimal)))

	lines = append(lines, fmt.Sprintf("rect_area: %s", formatFloat(model.RectArea(model.Square(point, 5)))))

	return lines
}

// formatFloat prints f at single precision, so accumulated float64 noise
// (25.000000000000004) prints as the value it approximates (25).
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 32)
}

// EventLines returns the Inspect description of each event.
func EventLines(events []model.WebEvent) []string {
	lines := make([]string, 0, len(events))
	for _, event := range events {
		lines = append(lines, model.Inspect(event))
	}
	return lines
}

// OperationLine formats an arithmetic result, e.g. "1+2=3" or, with
// plusOne, "1+2 + 1=4".
func OperationLine(op model.Operation, x, y int32, plusOne bool) string {
	if plusOne {
		return fmt.Sprintf("%d%s%d + 1=%d", x, op.Symbol(), y, op.RunPlusOne(x, y))
	}
	return fmt.Sprintf("%d%s%d=%d", x, op.Symbol(), y, op.Run(x, y))
}

func operationLines() []string {
	return []string{
		OperationLine(model.Add, 1, 2, false),
		OperationLine(model.Add, 1, 2, true),
	}
}

func categoryLines() []string {
	status := model.Poor
	work := model.Civilian

	return []string{status.Describe(), work.Describe()}
}

// NumberLine formats a Number with its discriminant, e.g. "zero is 0".
func NumberLine(n model.Number) string {
	return fmt.Sprintf("%s is %d", n, int(n))
}

func discriminantLines() []string {
	return []string{
		NumberLine(model.Zero),
		NumberLine(model.One),
		fmt.Sprintf("roses are %s", model.Red.Hex()),
		fmt.Sprintf("violets are %s", model.Blue.Hex()),
	}
}
