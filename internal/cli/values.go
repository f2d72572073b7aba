// Package cli — values.go implements the "values" command, which lists the
// discriminant of every Number and Color variant.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/typetour/internal/model"
	"github.com/shinji-kodama/typetour/internal/tour"
)

type numberJSON struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type colorJSON struct {
	Name  string `json:"name"`
	Value uint32 `json:"value"`
	Hex   string `json:"hex"`
}

// NewValuesCommand creates the "values" cobra command.
func NewValuesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "values",
		Short: "List enumeration discriminants",
		Long: `List every Number variant with its implicit positional value and
every Color variant with its explicit RGB value.

The text table format is:

  zero is 0
  one is 1
  two is 2
  red is #ff0000 (16711680)
  ...`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return printValues(cmd.OutOrStdout())
		},
	}
}

func printValues(w io.Writer) error {
	if IsJSONOutput() {
		type resultJSON struct {
			Numbers []numberJSON `json:"numbers"`
			Colors  []colorJSON  `json:"colors"`
		}
		result := resultJSON{
			Numbers: make([]numberJSON, 0, len(model.Numbers)),
			Colors:  make([]colorJSON, 0, len(model.Colors)),
		}
		for _, n := range model.Numbers {
			result.Numbers = append(result.Numbers, numberJSON{Name: n.String(), Value: int(n)})
		}
		for _, c := range model.Colors {
			result.Colors = append(result.Colors, colorJSON{Name: c.String(), Value: uint32(c), Hex: c.Hex()})
		}
		return writeJSON(w, result)
	}

	for _, n := range model.Numbers {
		if _, err := fmt.Fprintln(w, tour.NumberLine(n)); err != nil {
			return err
		}
	}
	for _, c := range model.Colors {
		if _, err := fmt.Fprintf(w, "%s is %s (%d)\n", c, c.Hex(), uint32(c)); err != nil {
			return err
		}
	}
	return nil
}
