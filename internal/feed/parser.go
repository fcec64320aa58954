package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"
)

const defaultLimit = 5

// Entry is one normalized feed item. Links preserves first-seen document
// order with duplicates removed; Summary is plain text, possibly empty.
type Entry struct {
	Title   string
	Summary string
	Links   []string
}

type Parser struct {
	libParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{libParser: gofeed.NewParser()}
}

// Parse decodes raw feed bytes. gofeed detects the shape from the root
// element, so a document carrying a channel is always treated as RSS.
func (p *Parser) Parse(url string, data []byte) (*gofeed.Feed, error) {
	parsed, err := p.libParser.ParseString(string(data))
	if err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	return parsed, nil
}

// Extract normalizes up to limit items in document order. Items whose
// trimmed title is empty are dropped. A limit below 1 falls back to the
// default.
func Extract(parsed *gofeed.Feed, limit int) []Entry {
	if limit < 1 {
		limit = defaultLimit
	}

	entries := make([]Entry, 0, limit)

	for _, item := range parsed.Items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		summary := strings.TrimSpace(item.Description)
		if summary == "" {
			summary = strings.TrimSpace(item.Content)
		}

		links := CollectLinks(item.Links)
		if len(links) == 0 {
			links = CollectLinks([]string{item.Link})
		}

		entries = append(entries, Entry{
			Title:   title,
			Summary: cleanSummary(summary),
			Links:   links,
		})

		if len(entries) >= limit {
			break
		}
	}

	return entries
}

// CollectLinks trims the candidate URLs, drops empty ones and exact
// duplicates, and preserves first-seen order.
func CollectLinks(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	var links []string

	for _, candidate := range candidates {
		url := strings.TrimSpace(candidate)
		if url == "" {
			continue
		}

		if _, ok := seen[url]; ok {
			continue
		}

		seen[url] = struct{}{}
		links = append(links, url)
	}

	return links
}

// cleanSummary strips markup from a summary, which feeds routinely ship as
// HTML, and collapses runs of whitespace.
func cleanSummary(raw string) string {
	if raw == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return strings.Join(strings.Fields(raw), " ")
	}

	return strings.Join(strings.Fields(doc.Text()), " ")
}
