package proxy

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestStatusForError(t *testing.T) {
	assert.Equal(t, http.StatusServiceUnavailable, StatusForError(syscall.ECONNREFUSED))
	assert.Equal(t, http.StatusServiceUnavailable, StatusForError(&url.Error{Op: "Post", Err: syscall.ECONNREFUSED}))
	assert.Equal(t, http.StatusGatewayTimeout, StatusForError(timeoutErr{}))
	assert.Equal(t, http.StatusGatewayTimeout, StatusForError(context.DeadlineExceeded))
	assert.Equal(t, http.StatusBadGateway, StatusForError(errors.New("connection reset")))
}

func TestClientForward(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"q": "mango"}`, string(body))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer upstream.Close()

	client := New("mock", upstream.URL, time.Second)
	header := http.Header{}
	header.Set("Authorization", "Bearer tok")
	query := url.Values{"page": []string{"1"}}

	resp, err := client.Forward(context.Background(), http.MethodPost, "search", query, strings.NewReader(`{"q": "mango"}`), header)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok": true}`, string(body))
}

func TestForwardHandlerRelaysUpstreamResponse(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/on_search", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"message": {"ack": {"status": "ACK"}}}`))
	}))
	defer upstream.Close()

	router := mux.NewRouter()
	RegisterRoutes(router, New("mock", upstream.URL, time.Second), New("registry", upstream.URL, time.Second))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/proxy/mock/on_search", strings.NewReader("{}")))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "ACK")
}

func TestForwardHandlerRegistrySubpaths(t *testing.T) {
	var seenPath string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer upstream.Close()

	router := mux.NewRouter()
	RegisterRoutes(router, New("mock", upstream.URL, time.Second), New("registry", upstream.URL, time.Second))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/proxy/registry/subscribers/lookup", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/subscribers/lookup", seenPath)
}

func TestForwardHandlerUpstreamDown(t *testing.T) {
	// Closed immediately so the port refuses connections.
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := upstream.URL
	upstream.Close()

	router := mux.NewRouter()
	RegisterRoutes(router, New("mock", addr, time.Second), New("registry", addr, time.Second))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/proxy/mock/search", strings.NewReader("{}")))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
