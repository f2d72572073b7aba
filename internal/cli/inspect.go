// Package cli — inspect.go implements the "inspect" command.
//
// Events are given either on the command line (one event per invocation)
// or through an event script with --file.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/typetour/internal/model"
	"github.com/shinji-kodama/typetour/internal/script"
)

// inspectFlags holds the flag values for the inspect command.
type inspectFlags struct {
	// file is an event script to inspect instead of positional arguments.
	file string
}

// inspectEventJSON is the JSON output structure for one inspected event.
type inspectEventJSON struct {
	Kind        string `json:"kind"`
	Description string `json:"description"`
}

// NewInspectCommand creates the "inspect" cobra command.
func NewInspectCommand() *cobra.Command {
	flags := &inspectFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [KIND [ARGS...]]",
		Short: "Describe web events",
		Long: `Describe a single web event given on the command line, or every
event in a script file.

Kinds: page-load, page-unload, key-press CHAR, paste TEXT, click X Y

Examples:
  typetour inspect key-press x
  typetour inspect paste "my text"
  typetour inspect click 20 80
  typetour inspect --file events.yaml`,

		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := collectEvents(flags, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if IsJSONOutput() {
				type resultJSON struct {
					Events []inspectEventJSON `json:"events"`
				}
				result := resultJSON{Events: make([]inspectEventJSON, 0, len(events))}
				for _, event := range events {
					result.Events = append(result.Events, inspectEventJSON{
						Kind:        event.Kind(),
						Description: model.Inspect(event),
					})
				}
				return writeJSON(out, result)
			}

			for _, event := range events {
				if _, err := fmt.Fprintln(out, model.Inspect(event)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "Event script (.yaml, .yml, .json, .jsonc)")
	return cmd
}

// collectEvents resolves the events to inspect from either --file or the
// positional arguments. Exactly one of the two must be given.
func collectEvents(flags *inspectFlags, args []string) ([]model.WebEvent, error) {
	switch {
	case flags.file != "" && len(args) > 0:
		return nil, model.NewCLIError(model.ExitInvalidArgument,
			"give either --file or an event on the command line, not both")
	case flags.file != "":
		events, err := script.Load(flags.file)
		if err != nil {
			return nil, err
		}
		VerboseLog("Loaded %d events from %s", len(events), flags.file)
		return events, nil
	case len(args) == 0:
		return nil, model.NewCLIError(model.ExitInvalidArgument,
			"no event given: pass KIND [ARGS...] or --file")
	}

	event, err := script.ParseEvent(args[0], args[1:])
	if err != nil {
		return nil, invalidArgument(err)
	}
	return []model.WebEvent{event}, nil
}
