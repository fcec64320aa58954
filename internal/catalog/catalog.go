package catalog

import (
	"fmt"
	"sort"
)

const (
	// CustomOption is the menu number reserved for an ad-hoc feed URL.
	CustomOption = 9

	MaxItems     = 10
	DefaultItems = 5
)

// Source is one preconfigured feed, identified by its menu number.
type Source struct {
	ID   int
	Name string
	URL  string
}

// Catalog is the immutable feed table shared by the reader and the cacher.
type Catalog struct {
	sources     map[int]Source
	order       []int
	outputFiles map[int]string
}

func New(sources []Source, outputFiles map[int]string) Catalog {
	byID := make(map[int]Source, len(sources))
	order := make([]int, 0, len(sources))

	for _, src := range sources {
		if _, ok := byID[src.ID]; ok {
			continue
		}

		byID[src.ID] = src
		order = append(order, src.ID)
	}

	sort.Ints(order)

	files := make(map[int]string, len(outputFiles))
	for id, path := range outputFiles {
		files[id] = path
	}

	return Catalog{
		sources:     byID,
		order:       order,
		outputFiles: files,
	}
}

// Default returns the built-in feed table.
func Default() Catalog {
	return New(
		[]Source{
			{ID: 1, Name: "Haufe Nachrichten", URL: "https://www.haufe.de/xml/rss_129128.xml"},
			{ID: 2, Name: "Bundesregierung", URL: "https://www.bundesregierung.de/service/rss/breg-de/1151244/feed.xml"},
			{ID: 3, Name: "Handelsblatt Politik", URL: "http://www.handelsblatt.com/contentexport/feed/politik"},
			{ID: 4, Name: "Springer IT", URL: "https://www.springerprofessional.de/rss/rss-feeds/7097080"},
		},
		map[int]string{
			1: "feeds/haufe.xml",
			2: "feeds/bundesregierung.xml",
			3: "feeds/handelsblatt.xml",
		},
	)
}

// Source looks up a preconfigured feed by its menu number.
func (c Catalog) Source(id int) (Source, bool) {
	src, ok := c.sources[id]
	return src, ok
}

// Sources returns all preconfigured feeds in menu-number order.
func (c Catalog) Sources() []Source {
	sources := make([]Source, 0, len(c.order))
	for _, id := range c.order {
		sources = append(sources, c.sources[id])
	}

	return sources
}

// OutputPath resolves the cacher's relative output path for a feed,
// falling back to a generated name when no explicit mapping exists.
func (c Catalog) OutputPath(id int) string {
	if path, ok := c.outputFiles[id]; ok {
		return path
	}

	return fmt.Sprintf("feeds/feed_%d.xml", id)
}
