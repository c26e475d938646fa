package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"reelhub/services"

	"github.com/gin-gonic/gin"
)

func newMovieRouter(upstreamURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	mc := NewMovieController(services.NewTMDBService("key-123", upstreamURL))
	router.GET("/movies/popular", mc.Popular)
	router.GET("/movies/search", mc.Search)
	router.GET("/movies/:id", mc.MovieByID)
	return router
}

func TestPopularProxiesUpstream(t *testing.T) {
	const page = `{"page":1,"results":[{"id":603,"title":"The Matrix","poster_path":"/p.jpg"}]}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer upstream.Close()

	router := newMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/popular", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != page {
		t.Errorf("body not relayed verbatim: %s", w.Body.String())
	}
}

func TestPopularUpstreamFailureHidesDetail(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "secret infrastructure detail", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	router := newMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/popular", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "TMDB failed") {
		t.Errorf("expected uniform error envelope, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret infrastructure detail") {
		t.Error("upstream error text must not reach the client")
	}
}

func TestSearchEmptyQueryRejectedWithoutUpstreamCall(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer upstream.Close()

	router := newMovieRouter(upstream.URL)
	for _, target := range []string{"/movies/search", "/movies/search?query=", "/movies/search?query=%20%20"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", target, w.Code)
		}
		if !strings.Contains(w.Body.String(), "Query required") {
			t.Errorf("%s: unexpected body %s", target, w.Body.String())
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("empty search must not call upstream, got %d calls", hits)
	}
}

func TestSearchProxiesUpstream(t *testing.T) {
	const page = `{"results":[{"id":238,"title":"The Godfather"}]}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "godfather" {
			t.Errorf("unexpected forwarded query: %q", got)
		}
		w.Write([]byte(page))
	}))
	defer upstream.Close()

	router := newMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/search?query=godfather", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if w.Body.String() != page {
		t.Errorf("body not relayed verbatim: %s", w.Body.String())
	}
}

func TestMovieByIDUpstreamErrorIs404(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"not found"}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	router := newMovieRouter(upstream.URL)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/movies/99999999", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Movie not found") {
		t.Errorf("expected generic not-found message, got %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), "status_message") {
		t.Error("upstream error body must not be relayed")
	}
}
