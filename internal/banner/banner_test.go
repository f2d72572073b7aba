package banner

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter rejects every write, standing in for a closed stdout.
type failingWriter struct{}

var errClosed = errors.New("stream closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errClosed }

func TestSay_DefaultWidthKeepsMessageOnOneLine(t *testing.T) {
	var buf bytes.Buffer

	err := Say(&buf, []byte(DefaultMessage), 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, DefaultMessage)
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "╯")
	assert.Contains(t, out, "ʕ◔ϖ◔ʔ")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

// TestSay_DefaultWidthCountsWideCharacters verifies that double-width
// characters do not cause the default width to wrap the message.
func TestSay_DefaultWidthCountsWideCharacters(t *testing.T) {
	var buf bytes.Buffer
	message := "你好，地鼠们"

	require.NoError(t, Say(&buf, []byte(message), 0))
	assert.Contains(t, buf.String(), message)
}

// TestSay_NarrowWidthWraps verifies that the message is wrapped at width.
func TestSay_NarrowWidthWraps(t *testing.T) {
	var buf bytes.Buffer

	err := Say(&buf, []byte("hello there world"), 5)
	require.NoError(t, err)

	out := buf.String()
	assert.NotContains(t, out, "hello there world")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "world")
}

func TestSay_EmptyMessage(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Say(&buf, nil, 0))
	assert.Contains(t, buf.String(), "╭")
}

func TestSay_WriteErrorIsReturned(t *testing.T) {
	err := Say(failingWriter{}, []byte("hi"), 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, errClosed)
}
