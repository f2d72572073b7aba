// Package cli — describe.go implements the "describe" command, which prints
// the fixed sentence for a Status or Work category.
package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/typetour/internal/model"
)

// describeJSON is the JSON output structure for the describe command.
type describeJSON struct {
	Category    string `json:"category"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// NewDescribeCommand creates the "describe" cobra command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe CATEGORY VALUE",
		Short: "Describe a wealth status or an occupation",
		Long: `Print the sentence associated with a category value.

Categories and values:
  status  rich, poor
  work    civilian, soldier

Examples:
  typetour describe status poor
  typetour describe work soldier`,

		Args: cobra.ExactArgs(2),

		RunE: func(cmd *cobra.Command, args []string) error {
			category := strings.ToLower(args[0])

			var value, description string
			switch category {
			case "status":
				status, err := model.ParseStatus(args[1])
				if err != nil {
					return invalidArgument(err)
				}
				value, description = status.String(), status.Describe()
			case "work":
				work, err := model.ParseWork(args[1])
				if err != nil {
					return invalidArgument(err)
				}
				value, description = work.String(), work.Describe()
			default:
				return model.NewCLIError(model.ExitInvalidArgument,
					fmt.Sprintf("invalid category %q: valid values are status, work", args[0]))
			}

			out := cmd.OutOrStdout()
			if IsJSONOutput() {
				return writeJSON(out, describeJSON{
					Category:    category,
					Value:       value,
					Description: description,
				})
			}
			_, err := fmt.Fprintln(out, description)
			return err
		},
	}
}
