package cli

import (
	"fmt"
	"strconv"

	"github.com/shinji-kodama/typetour/internal/model"
)

// parseFloatArg parses a positional float argument. Failures are reported
// as ExitInvalidArgument.
func parseFloatArg(name, value string) (float64, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("invalid %s %q: expected a number", name, value), err)
	}
	return f, nil
}

// parseInt32Arg parses a positional 32-bit integer argument.
func parseInt32Arg(name, value string) (int32, error) {
	n, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, model.WrapCLIError(model.ExitInvalidArgument,
			fmt.Sprintf("invalid %s %q: expected a 32-bit integer", name, value), err)
	}
	return int32(n), nil
}

// invalidArgument wraps err as an ExitInvalidArgument CLIError.
func invalidArgument(err error) error {
	return model.WrapCLIError(model.ExitInvalidArgument, "invalid argument", err)
}

// formatFloat prints f at single precision, matching the tour output.
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 32)
}
