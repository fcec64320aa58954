// Package cache downloads every configured feed and writes the raw XML to
// local files for static hosting.
package cache

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"feedbrief/internal/catalog"
)

type Writer struct {
	catalog catalog.Catalog
	fetcher Fetcher
	baseDir string
	out     io.Writer
	log     *slog.Logger
}

// Fetcher is the single-URL download the writer depends on.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

func NewWriter(cat catalog.Catalog, fetcher Fetcher, baseDir string, out io.Writer, log *slog.Logger) *Writer {
	return &Writer{
		catalog: cat,
		fetcher: fetcher,
		baseDir: baseDir,
		out:     out,
		log:     log,
	}
}

// Run fetches each feed in menu-number order and writes the response bytes
// verbatim. The first failure aborts the remaining feeds.
func (w *Writer) Run(ctx context.Context) error {
	for _, src := range w.catalog.Sources() {
		relPath := w.catalog.OutputPath(src.ID)
		target := filepath.Join(w.baseDir, relPath)

		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}

		fmt.Fprintf(w.out, "Fetching %s (%s) ...\n", src.Name, src.URL)

		data, err := w.fetcher.Fetch(ctx, src.URL)
		if err != nil {
			return fmt.Errorf("fetch feed %d: %w", src.ID, err)
		}

		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", relPath, err)
		}

		fmt.Fprintf(w.out, " -> saved to %s (%d bytes)\n", relPath, len(data))

		w.log.DebugContext(ctx, "Feed is cached",
			"feedID", src.ID,
			"path", relPath,
			"bytes", len(data))
	}

	return nil
}
