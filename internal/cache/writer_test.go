package cache

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"feedbrief/internal/catalog"
)

type stubFetcher struct {
	responses map[string][]byte
}

func (s *stubFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	data, ok := s.responses[url]
	if !ok {
		return nil, fmt.Errorf("fetch %s: connection refused", url)
	}

	return data, nil
}

func testCatalog() catalog.Catalog {
	return catalog.New([]catalog.Source{
		{ID: 1, Name: "First", URL: "http://first.example/feed"},
		{ID: 2, Name: "Second", URL: "http://second.example/feed"},
	}, map[int]string{
		1: "feeds/first.xml",
	})
}

func TestRunWritesMappedAndGeneratedPaths(t *testing.T) {
	dir := t.TempDir()
	fetcher := &stubFetcher{responses: map[string][]byte{
		"http://first.example/feed":  []byte("<rss>1</rss>"),
		"http://second.example/feed": []byte("<rss>2</rss>"),
	}}

	var out strings.Builder
	w := NewWriter(testCatalog(), fetcher, dir, &out, slog.Default())

	if err := w.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first, err := os.ReadFile(filepath.Join(dir, "feeds", "first.xml"))
	if err != nil {
		t.Fatalf("expected mapped output file: %v", err)
	}
	if string(first) != "<rss>1</rss>" {
		t.Fatalf("unexpected first payload: %q", first)
	}

	second, err := os.ReadFile(filepath.Join(dir, "feeds", "feed_2.xml"))
	if err != nil {
		t.Fatalf("expected generated output file: %v", err)
	}
	if string(second) != "<rss>2</rss>" {
		t.Fatalf("unexpected second payload: %q", second)
	}

	progress := out.String()
	if !strings.Contains(progress, "Fetching First (http://first.example/feed) ...") {
		t.Fatalf("missing progress line:\n%s", progress)
	}
	if !strings.Contains(progress, "saved to feeds/first.xml (12 bytes)") {
		t.Fatalf("missing byte count:\n%s", progress)
	}
}

func TestRunAbortsOnFirstFailure(t *testing.T) {
	dir := t.TempDir()
	fetcher := &stubFetcher{responses: map[string][]byte{
		"http://first.example/feed": []byte("<rss>1</rss>"),
	}}

	var out strings.Builder
	w := NewWriter(testCatalog(), fetcher, dir, &out, slog.Default())

	if err := w.Run(context.Background()); err == nil {
		t.Fatalf("expected error when the second feed fails")
	}

	if _, err := os.Stat(filepath.Join(dir, "feeds", "first.xml")); err != nil {
		t.Fatalf("expected first feed written before the failure: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "feeds", "feed_2.xml")); !os.IsNotExist(err) {
		t.Fatalf("expected no output for the failed feed")
	}
}
