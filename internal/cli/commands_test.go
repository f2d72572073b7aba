package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/typetour/internal/model"
	"github.com/shinji-kodama/typetour/internal/script"
)

func TestAreaCommand(t *testing.T) {
	out, err := executeCommand(t, "area", "0", "5", "5", "0")
	require.NoError(t, err)
	assert.Equal(t, "rect_area: 25\n", out)
}

// TestAreaCommand_NegativeAfterDashes verifies that negative coordinates
// are accepted once flag parsing is terminated.
func TestAreaCommand_NegativeAfterDashes(t *testing.T) {
	out, err := executeCommand(t, "area", "--", "-1", "2", "3", "-4")
	require.NoError(t, err)
	assert.Equal(t, "rect_area: 24\n", out)
}

// TestAreaCommand_InvalidNumber verifies that the parse failure is kept as
// the underlying error, so it shows up as the error detail.
func TestAreaCommand_InvalidNumber(t *testing.T) {
	_, err := executeCommand(t, "area", "0", "five", "5", "0")
	requireExitCode(t, err, model.ExitInvalidArgument)

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
	assert.Equal(t, "five", numErr.Num)
}

func TestSquareCommand(t *testing.T) {
	out, err := executeCommand(t, "square", "0", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "top left: (0, 0)\nbottom right: (5, -5)\nrect_area: 25\n", out)
}

func TestSquareCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "--json", "square", "0", "0", "5")
	require.NoError(t, err)

	var decoded rectJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, model.Point{X: 5, Y: -5}, decoded.BottomRight)
	assert.Equal(t, 25.0, decoded.Area)
}

func TestCalcCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"add", []string{"calc", "add", "1", "2"}, "1+2=3\n"},
		{"add plus one", []string{"calc", "add", "1", "2", "--plus-one"}, "1+2 + 1=4\n"},
		{"subtract", []string{"calc", "subtract", "1", "2"}, "1-2=-1\n"},
		{"subtract plus one", []string{"calc", "subtract", "1", "2", "--plus-one"}, "1-2 + 1=0\n"},
		{"symbol", []string{"calc", "+", "40", "2"}, "40+2=42\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCalcCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "--json", "calc", "subtract", "1", "2", "--plus-one")
	require.NoError(t, err)

	var decoded calcJSON
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, calcJSON{Operation: "subtract", X: 1, Y: 2, PlusOne: true, Result: 0}, decoded)
}

func TestCalcCommand_InvalidArguments(t *testing.T) {
	_, err := executeCommand(t, "calc", "multiply", "1", "2")
	requireExitCode(t, err, model.ExitInvalidArgument)

	_, err = executeCommand(t, "calc", "add", "1", "9999999999")
	requireExitCode(t, err, model.ExitInvalidArgument)
	assert.ErrorIs(t, err, strconv.ErrRange)
}

func TestInspectCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"key press", []string{"inspect", "key-press", "x"}, "pressed 'x'.\n"},
		{"paste", []string{"inspect", "paste", "my text"}, "pasted \"my text\".\n"},
		{"click", []string{"inspect", "click", "20", "80"}, "clicked at x=20, y=80.\n"},
		{"page load", []string{"inspect", "page-load"}, "page loaded\n"},
		{"page unload", []string{"inspect", "page-unload"}, "page unloaded\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestInspectCommand_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonc")
	content := `{"events": [{"type": "page-load"}, {"type": "key-press", "key": "z"}]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	out, err := executeCommand(t, "inspect", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, "page loaded\npressed 'z'.\n", out)
}

func TestInspectCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "--json", "inspect", "click", "1", "2")
	require.NoError(t, err)

	var decoded struct {
		Events []inspectEventJSON `json:"events"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, []inspectEventJSON{{Kind: "click", Description: "clicked at x=1, y=2."}}, decoded.Events)
}

func TestInspectCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, "inspect")
	requireExitCode(t, err, model.ExitInvalidArgument)

	_, err = executeCommand(t, "inspect", "hover")
	requireExitCode(t, err, model.ExitInvalidArgument)

	_, err = executeCommand(t, "inspect", "--file", "events.yaml", "page-load")
	requireExitCode(t, err, model.ExitInvalidArgument)
}

func TestDescribeCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"describe", "status", "rich"}, "The rich have lots of money!\n"},
		{[]string{"describe", "status", "poor"}, "The poor have no money...\n"},
		{[]string{"describe", "work", "civilian"}, "Civilians work!\n"},
		{[]string{"describe", "Work", "SOLDIER"}, "Soldiers fight!\n"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestDescribeCommand_Errors(t *testing.T) {
	_, err := executeCommand(t, "describe", "color", "red")
	requireExitCode(t, err, model.ExitInvalidArgument)

	_, err = executeCommand(t, "describe", "status", "middle")
	requireExitCode(t, err, model.ExitInvalidArgument)
}

func TestValuesCommand(t *testing.T) {
	out, err := executeCommand(t, "values")
	require.NoError(t, err)
	assert.Equal(t, `zero is 0
one is 1
two is 2
red is #ff0000 (16711680)
green is #00ff00 (65280)
blue is #0000ff (255)
`, out)
}

func TestValuesCommand_JSON(t *testing.T) {
	out, err := executeCommand(t, "--json", "values")
	require.NoError(t, err)

	var decoded struct {
		Numbers []numberJSON `json:"numbers"`
		Colors  []colorJSON  `json:"colors"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.Numbers, 3)
	require.Len(t, decoded.Colors, 3)
	assert.Equal(t, colorJSON{Name: "red", Value: 16711680, Hex: "#ff0000"}, decoded.Colors[0])
}

// TestEventsCommand verifies that the printed script decodes back into
// the default events in both formats.
func TestEventsCommand(t *testing.T) {
	tests := []struct {
		args   []string
		format script.Format
	}{
		{[]string{"events"}, script.FormatYAML},
		{[]string{"events", "--format", "json"}, script.FormatJSON},
		{[]string{"--json", "events"}, script.FormatJSON},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			out, err := executeCommand(t, tt.args...)
			require.NoError(t, err)

			events, err := script.Decode([]byte(out), tt.format)
			require.NoError(t, err)
			assert.Equal(t, script.DefaultEvents(), events)
		})
	}
}

// TestValuesCommand_WriteError checks that a failing writer is reported
// from the first line on.
func TestValuesCommand_WriteError(t *testing.T) {
	jsonOutput = false
	w := &closedWriter{}

	err := printValues(w)

	assert.ErrorIs(t, err, errWriterClosed)
	assert.Equal(t, 1, w.writes)
}

func TestEventsCommand_InvalidFormat(t *testing.T) {
	_, err := executeCommand(t, "events", "--format", "toml")
	requireExitCode(t, err, model.ExitInvalidArgument)
}
