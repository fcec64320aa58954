package feed

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

const warningMessage = "Certificate verification failed"

func newTestFetcher(buf *bytes.Buffer) *Fetcher {
	log := slog.New(slog.NewTextHandler(buf, nil))
	return NewFetcher(5*time.Second, log)
}

func TestFetchReturnsRawBytes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<rss/>"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	fetcher := newTestFetcher(&buf)

	data, err := fetcher.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != "<rss/>" {
		t.Fatalf("unexpected body: %q", data)
	}

	if strings.Contains(buf.String(), warningMessage) {
		t.Fatalf("unexpected certificate warning: %s", buf.String())
	}
}

func TestFetchRetriesInsecurelyOnCertificateFailure(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<rss/>"))
	}))
	defer ts.Close()

	var buf bytes.Buffer
	fetcher := newTestFetcher(&buf)

	// The test server's certificate is self-signed, so the verifying
	// client must fail and the insecure retry must succeed.
	data, err := fetcher.Fetch(context.Background(), ts.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(data) != "<rss/>" {
		t.Fatalf("unexpected body: %q", data)
	}

	if got := strings.Count(buf.String(), warningMessage); got != 1 {
		t.Fatalf("expected exactly 1 certificate warning, got %d: %s", got, buf.String())
	}
}

func TestFetchTransportErrorIsNotRetried(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := ts.URL
	ts.Close()

	var buf bytes.Buffer
	fetcher := newTestFetcher(&buf)

	_, err := fetcher.Fetch(context.Background(), url)
	if err == nil {
		t.Fatalf("expected error for closed server")
	}

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T", err)
	}

	if fetchErr.URL != url {
		t.Fatalf("unexpected URL in error: %q", fetchErr.URL)
	}

	if strings.Contains(buf.String(), warningMessage) {
		t.Fatalf("unexpected certificate warning: %s", buf.String())
	}
}

func TestFetchNonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	var buf bytes.Buffer
	fetcher := newTestFetcher(&buf)

	_, err := fetcher.Fetch(context.Background(), ts.URL)

	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T", err)
	}
}

func TestIsCertificateError(t *testing.T) {
	if isCertificateError(errors.New("connection refused")) {
		t.Fatalf("expected plain transport error to not count as certificate error")
	}
}
