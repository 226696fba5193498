package reportfeed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "reports": [
    {"date": "2025-04-10", "location": "Dana Point", "species": "Yellowtail, Rockfish", "source": "976-TUNA"},
    {"date": "2025-04-09", "location": "", "species": "Calico Bass"}
  ],
  "last_updated": "2025-04-10 06:00:00"
}`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_SelectsImplementation(t *testing.T) {
	tests := []struct {
		source string
		want   any
	}{
		{"https://example.com/data/fishing_reports.json", &HTTPFeed{}},
		{"http://localhost:8000/data/fishing_reports.json", &HTTPFeed{}},
		{"data/fishing_reports.json", &FileFeed{}},
		{"/var/lib/reports.json", &FileFeed{}},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			feed := New(tt.source, time.Second, testLogger())
			assert.IsType(t, tt.want, feed)
			assert.Equal(t, tt.source, feed.Source())
		})
	}
}

func TestHTTPFeed_Fetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/data/fishing_reports.json", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	feed := NewHTTPFeed(srv.URL+"/data/fishing_reports.json", time.Second, testLogger())
	doc, err := feed.Fetch(context.Background())
	require.NoError(t, err)

	require.Len(t, doc.Reports, 2)
	assert.Equal(t, "2025-04-10 06:00:00", doc.LastUpdated)
	assert.Equal(t, "Dana Point", doc.Reports[0].Location)
	assert.Equal(t, []string{"Yellowtail", "Rockfish"}, doc.Reports[0].SpeciesNames())
	assert.Equal(t, "Unknown", doc.Reports[1].DisplayLocation())
}

func TestHTTPFeed_Fetch_NonSuccessStatus(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusInternalServerError, http.StatusNotModified} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			}))
			defer srv.Close()

			_, err := NewHTTPFeed(srv.URL, time.Second, testLogger()).Fetch(context.Background())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnexpectedStatus)
		})
	}
}

func TestHTTPFeed_Fetch_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	_, err := NewHTTPFeed(srv.URL, time.Second, testLogger()).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode reports")
	assert.False(t, errors.Is(err, ErrUnexpectedStatus))
}

func TestHTTPFeed_Fetch_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFeed(url, time.Second, testLogger()).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch reports")
}

func TestHTTPFeed_Fetch_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	_, err := NewHTTPFeed(srv.URL, 50*time.Millisecond, testLogger()).Fetch(context.Background())
	require.Error(t, err)
}

func TestHTTPFeed_Fetch_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleDocument))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewHTTPFeed(srv.URL, time.Second, testLogger()).Fetch(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileFeed_Fetch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fishing_reports.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	doc, err := NewFileFeed(path, testLogger()).Fetch(context.Background())
	require.NoError(t, err)
	assert.Len(t, doc.Reports, 2)
	assert.Equal(t, "976-TUNA", doc.Reports[0].Source)
}

func TestFileFeed_Fetch_LenientEnvelope(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fishing_reports.json")
	body := `{"reports":[{"date":"2025-04-10","location":"Dana Point"}],"last_updated":20250410,"sources":["976-TUNA",7]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	doc, err := NewFileFeed(path, testLogger()).Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, doc.Reports, 1)
	assert.Equal(t, "Dana Point", doc.Reports[0].Location)
	assert.Equal(t, "20250410", doc.LastUpdated)
	assert.Equal(t, []string{"976-TUNA"}, doc.Sources)
}

func TestFileFeed_Fetch_Missing(t *testing.T) {
	_, err := NewFileFeed(filepath.Join(t.TempDir(), "absent.json"), testLogger()).Fetch(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileFeed_Fetch_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"reports": [`), 0o600))

	_, err := NewFileFeed(path, testLogger()).Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode reports")
}
