// Package banner renders the decorative speech bubble printed before the tour.
//
// The bubble is drawn with github.com/charmbracelet/lipgloss using a rounded
// border, followed by a small gopher mascot. No colors are applied, so the
// output is identical on terminals and in pipes.
package banner

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultMessage is the greeting shown when no --message flag is given.
const DefaultMessage = "Hello fellow Gophers!"

// mascot is drawn beneath the bubble, with its tail pointing up at it.
var mascot = []string{
	`    \`,
	`     \`,
	`       ʕ◔ϖ◔ʔ`,
}

// bubbleStyle pads the message by one column on each side inside the border.
var bubbleStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// Say renders message inside a bubble and writes it to w.
//
// width is the column at which the message wraps. A width of zero or less
// uses the display width of the message (wide characters count as two
// columns), so the message fits on one line.
// The only failure mode is a write error, which is returned unchanged
// so the caller can decide to abort.
func Say(w io.Writer, message []byte, width int) error {
	if width <= 0 {
		width = lipgloss.Width(string(message))
	}
	if width <= 0 {
		width = 1
	}

	// lipgloss widths include horizontal padding but not the border.
	bubble := bubbleStyle.Width(width + 2).Render(string(message))

	var b strings.Builder
	b.WriteString(bubble)
	b.WriteString("\n")
	for _, line := range mascot {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write banner: %w", err)
	}
	return nil
}
