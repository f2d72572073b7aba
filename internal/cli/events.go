// Package cli — events.go implements the "events" command, which writes
// the default event list as a script that can be edited and passed back
// with --events or inspect --file.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/typetour/internal/script"
)

// eventsFlags holds the flag values for the events command.
type eventsFlags struct {
	// format is the script encoding: yaml or json.
	format string
}

// NewEventsCommand creates the "events" cobra command.
func NewEventsCommand() *cobra.Command {
	flags := &eventsFlags{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Print the default event script",
		Long: `Print the default web events as an event script.

Examples:
  typetour events > events.yaml
  typetour events --format json > events.jsonc`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			name := flags.format
			if IsJSONOutput() {
				name = string(script.FormatJSON)
			}
			format, err := script.ParseFormat(name)
			if err != nil {
				return invalidArgument(err)
			}
			return script.Marshal(cmd.OutOrStdout(), script.DefaultEvents(), format)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(script.FormatYAML), "Script format: yaml or json")
	return cmd
}
