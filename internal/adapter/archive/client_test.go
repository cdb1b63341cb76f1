package archive_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stormscope/warning-overlay/internal/adapter/archive"
	"github.com/stormscope/warning-overlay/internal/config"
	"github.com/stormscope/warning-overlay/internal/domain"
	"github.com/stormscope/warning-overlay/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string, concurrency int) *archive.Client {
	cfg := &config.Config{
		ArchiveBaseURL:   baseURL,
		FetchConcurrency: concurrency,
		FetchTimeout:     5 * time.Second,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return archive.NewClient(cfg, logger, observability.NewMetricsForTesting())
}

func days(start time.Time, n int) []time.Time {
	out := make([]time.Time, n)
	for i := range out {
		out[i] = start.AddDate(0, 0, i)
	}
	return out
}

func TestClient_URLFor(t *testing.T) {
	c := testClient("https://mesonet.agron.iastate.edu/archive/data", 8)
	day := time.Date(2021, time.December, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t,
		"https://mesonet.agron.iastate.edu/archive/data/2021/12/10/text/noaaport/TOR_20211210.txt",
		c.URLFor(day))
}

func TestClient_FetchAll_Success(t *testing.T) {
	var mu sync.Mutex
	seen := map[string]bool{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen[r.URL.Path] = true
		mu.Unlock()
		_, _ = w.Write([]byte("document for " + r.URL.Path))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 8)
	docs, err := c.FetchAll(context.Background(),
		days(time.Date(2021, time.December, 10, 0, 0, 0, 0, time.UTC), 3))
	require.NoError(t, err)

	assert.Len(t, docs, 3)
	assert.True(t, seen["/2021/12/10/text/noaaport/TOR_20211210.txt"])
	assert.True(t, seen["/2021/12/11/text/noaaport/TOR_20211211.txt"])
	assert.True(t, seen["/2021/12/12/text/noaaport/TOR_20211212.txt"])
	for _, doc := range docs {
		assert.True(t, strings.HasPrefix(doc, "document for "))
	}
}

func TestClient_FetchAll_BoundsConcurrency(t *testing.T) {
	var inFlight, peak atomic.Int64

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := inFlight.Add(1)
		defer inFlight.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 3)
	_, err := c.FetchAll(context.Background(),
		days(time.Date(2021, time.December, 1, 0, 0, 0, 0, time.UTC), 12))
	require.NoError(t, err)

	assert.LessOrEqual(t, peak.Load(), int64(3))
}

func TestClient_FetchAll_FirstFailureAborts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "20211211") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("fine"))
	}))
	defer srv.Close()

	c := testClient(srv.URL, 8)
	docs, err := c.FetchAll(context.Background(),
		days(time.Date(2021, time.December, 10, 0, 0, 0, 0, time.UTC), 3))
	require.Error(t, err)
	assert.Nil(t, docs)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.URL, "TOR_20211211.txt")
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_FetchAll_InvalidUTF8(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte{0xff, 0xfe, 0xfd})
	}))
	defer srv.Close()

	c := testClient(srv.URL, 8)
	_, err := c.FetchAll(context.Background(),
		days(time.Date(2021, time.December, 10, 0, 0, 0, 0, time.UTC), 1))
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestClient_FetchAll_ConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // refuse connections

	c := testClient(srv.URL, 8)
	_, err := c.FetchAll(context.Background(),
		days(time.Date(2021, time.December, 10, 0, 0, 0, 0, time.UTC), 1))
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.True(t, errors.As(err, &fetchErr))
}

func TestClient_FetchAll_EmptyDays(t *testing.T) {
	c := testClient("http://127.0.0.1:1", 8)
	docs, err := c.FetchAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, docs)
}
