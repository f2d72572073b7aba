// Package cli — run.go implements the "typetour run" command and the
// default action of the root command.
//
// The tour prints the banner bubble (skipped for JSON output or with
// --no-banner), then every section built by the tour package.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/shinji-kodama/typetour/internal/banner"
	"github.com/shinji-kodama/typetour/internal/model"
	"github.com/shinji-kodama/typetour/internal/script"
	"github.com/shinji-kodama/typetour/internal/tour"
)

// runFlags holds the flag values shared by the root and run commands.
type runFlags struct {
	// shapes adds the record walk-through section.
	shapes bool

	// eventsPath is an optional event script replacing the default events.
	eventsPath string

	// noBanner suppresses the banner bubble.
	noBanner bool

	// message is the banner text.
	message string

	// width is the banner wrap column; 0 fits the message on one line.
	width int
}

func defaultRunFlags() *runFlags {
	return &runFlags{message: banner.DefaultMessage}
}

// bindRunFlags registers the tour flags on cmd.
func bindRunFlags(cmd *cobra.Command, flags *runFlags) {
	cmd.Flags().BoolVar(&flags.shapes, "shapes", false, "Include the record walk-through section")
	cmd.Flags().StringVar(&flags.eventsPath, "events", "", "Event script (.yaml, .yml, .json, .jsonc) to inspect instead of the defaults")
	cmd.Flags().BoolVar(&flags.noBanner, "no-banner", false, "Do not print the banner")
	cmd.Flags().StringVar(&flags.message, "message", flags.message, "Banner message")
	cmd.Flags().IntVar(&flags.width, "width", 0, "Banner wrap width (0 = message length)")
}

// NewRunCommand creates the "run" cobra command.
func NewRunCommand() *cobra.Command {
	flags := defaultRunFlags()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full tour",
		Long: `Print the banner, then describe every web event, arithmetic result,
category and discriminant in order.

Examples:
  typetour run
  typetour run --shapes
  typetour run --events events.yaml --no-banner
  typetour run --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runTour(cmd.OutOrStdout(), flags)
		},
	}

	bindRunFlags(cmd, flags)
	return cmd
}

// runTour is the main logic function for the run command.
func runTour(out io.Writer, flags *runFlags) error {
	events := script.DefaultEvents()
	if flags.eventsPath != "" {
		loaded, err := script.Load(flags.eventsPath)
		if err != nil {
			return err
		}
		VerboseLog("Loaded %d events from %s", len(loaded), flags.eventsPath)
		events = loaded
	}

	// The banner would corrupt JSON output, so it is only printed in text mode.
	if !flags.noBanner && !IsJSONOutput() {
		if err := banner.Say(out, []byte(flags.message), flags.width); err != nil {
			return model.WrapCLIError(model.ExitBannerFailed, "failed to print banner", err)
		}
	}

	report := tour.Build(tour.Options{
		IncludeShapes: flags.shapes,
		Events:        events,
	})
	VerboseLog("Built tour with %d sections", len(report.Sections))

	var err error
	if IsJSONOutput() {
		err = report.WriteJSON(out)
	} else {
		err = report.WriteText(out)
	}
	if err != nil {
		return fmt.Errorf("failed to write tour: %w", err)
	}
	return nil
}
