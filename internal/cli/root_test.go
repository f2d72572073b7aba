// Package cli — root_test.go exercises the commands end to end through the
// root command, capturing stdout in a buffer.
package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/typetour/internal/model"
)

// executeCommand runs a fresh root command with args and returns what it
// wrote to stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := executeCommandWithStderr(t, args...)
	return out, err
}

// executeCommandWithStderr is executeCommand that also returns what was
// written to stderr, including log output.
func executeCommandWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// requireExitCode asserts that err is a CLIError with the given code.
func requireExitCode(t *testing.T, err error, code model.ExitCode) {
	t.Helper()

	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %T: %v", err, err)
	assert.Equal(t, code, cliErr.Code)
}

func TestPrintError_Text(t *testing.T) {
	jsonOutput = false
	var buf bytes.Buffer

	printError(&buf, "event script not found", errors.New("no such file"))
	assert.Equal(t, "Error: event script not found: no such file\n", buf.String())

	buf.Reset()
	printError(&buf, "bad input", nil)
	assert.Equal(t, "Error: bad input\n", buf.String())
}

func TestPrintError_JSON(t *testing.T) {
	jsonOutput = true
	t.Cleanup(func() { jsonOutput = false })
	var buf bytes.Buffer

	printError(&buf, "failed to print banner", errors.New("broken pipe"))

	var decoded map[string]map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "failed to print banner", decoded["error"]["message"])
	assert.Equal(t, "broken pipe", decoded["error"]["detail"])
}

func TestRootCommand_UnknownArgument(t *testing.T) {
	_, err := executeCommand(t, "nonsense")
	assert.Error(t, err)
}

// TestRootCommand_Verbose verifies that debug logs go to the command's
// stderr only when --verbose is set, and never to stdout.
func TestRootCommand_Verbose(t *testing.T) {
	out, errOut, err := executeCommandWithStderr(t, "-v", "square", "0", "0", "5")
	require.NoError(t, err)
	assert.Equal(t, "top left: (0, 0)\nbottom right: (5, -5)\nrect_area: 25\n", out)
	assert.Contains(t, errOut, "Square from (0, 0) with length 5")
	assert.Contains(t, errOut, "DEBUG")

	out, errOut, err = executeCommandWithStderr(t, "square", "0", "0", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "rect_area: 25")
	assert.Empty(t, errOut)
}
