// Package console implements the interactive prompts and the digest output.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"mvdan.cc/xurls/v2"

	"feedbrief/internal/catalog"
)

var (
	// ErrNoSelection means the input stream ended before a feed was chosen.
	ErrNoSelection = errors.New("no selection made")

	// ErrNoURL means the custom-URL prompt received an empty line.
	ErrNoURL = errors.New("no URL given")

	urlRe = xurls.Strict()
)

type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// PrintMenu renders the feed table plus the custom-URL option.
func (p *Prompter) PrintMenu(cat catalog.Catalog) {
	fmt.Fprintln(p.out, "Available feeds:")

	for _, src := range cat.Sources() {
		fmt.Fprintf(p.out, " %d: %s\n", src.ID, src.Name)
	}

	fmt.Fprintf(p.out, " %d: Custom feed URL\n", catalog.CustomOption)
}

// ChooseFeed re-prompts until the user picks a known feed number or the
// custom option. End of input returns ErrNoSelection.
func (p *Prompter) ChooseFeed(cat catalog.Catalog) (int, error) {
	for {
		fmt.Fprint(p.out, "Choose a feed by number: ")

		line, ok := p.readLine()
		if !ok {
			return 0, ErrNoSelection
		}
		if line == "" {
			fmt.Fprintln(p.out, "Please enter a number from the list.")
			continue
		}

		choice, err := strconv.Atoi(line)
		if err == nil {
			if _, found := cat.Source(choice); found || choice == catalog.CustomOption {
				return choice, nil
			}
		}

		fmt.Fprintln(p.out, "Invalid selection, please try again.")
	}
}

// CustomURL reads the ad-hoc feed URL. The URL is picked out of the line so
// pasted text around it is tolerated; a blank line returns ErrNoURL.
func (p *Prompter) CustomURL() (string, error) {
	fmt.Fprint(p.out, "Enter the RSS/Atom URL: ")

	line, ok := p.readLine()
	if !ok {
		return "", ErrNoURL
	}

	if url := urlRe.FindString(line); url != "" {
		return url, nil
	}

	if line == "" {
		return "", ErrNoURL
	}

	return line, nil
}

// ItemCount re-prompts until the user enters a count within 1..MaxItems.
// A blank line or end of input falls back to def.
func (p *Prompter) ItemCount(def int) int {
	if def < 1 || def > catalog.MaxItems {
		def = catalog.DefaultItems
	}

	for {
		fmt.Fprintf(p.out, "How many entries to show (1-%d, Enter for %d): ", catalog.MaxItems, def)

		line, ok := p.readLine()
		if !ok || line == "" {
			return def
		}

		count, err := strconv.Atoi(line)
		if err == nil && count >= 1 && count <= catalog.MaxItems {
			return count
		}

		fmt.Fprintln(p.out, "Please enter a number in the valid range.")
	}
}

func (p *Prompter) readLine() (string, bool) {
	if !p.scanner.Scan() {
		return "", false
	}

	return strings.TrimSpace(p.scanner.Text()), true
}
