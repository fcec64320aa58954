package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"feedbrief/internal/feed"
)

const (
	displayWidth  = 80
	summaryIndent = 3
)

//nolint:gochecknoglobals // Pure layout style, no mutable state.
var summaryStyle = lipgloss.NewStyle().
	Width(displayWidth).
	PaddingLeft(summaryIndent)

type Display struct {
	out io.Writer
}

func NewDisplay(out io.Writer) *Display {
	return &Display{out: out}
}

// Render prints the digest: 1-based index and title, links one per indented
// line, then the summary word-wrapped and indented.
func (d *Display) Render(entries []feed.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(d.out, "No entries found for this feed.")
		return
	}

	for i, entry := range entries {
		fmt.Fprintf(d.out, "\n%d. %s\n", i+1, entry.Title)

		if len(entry.Links) > 0 {
			fmt.Fprintln(d.out, "   Links:")
			for _, url := range entry.Links {
				fmt.Fprintf(d.out, "    - %s\n", url)
			}
		}

		if entry.Summary != "" {
			// lipgloss pads every line to the full block width.
			for _, line := range strings.Split(summaryStyle.Render(entry.Summary), "\n") {
				fmt.Fprintln(d.out, strings.TrimRight(line, " "))
			}
		}
	}
}
