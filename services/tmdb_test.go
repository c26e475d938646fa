package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

func TestPopularRelaysUpstreamBody(t *testing.T) {
	const page = `{"page":1,"results":[{"id":603,"title":"The Matrix"}]}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/popular" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("api_key") != "key-123" {
			t.Errorf("missing api_key param, got query %q", r.URL.RawQuery)
		}
		w.Write([]byte(page))
	}))
	defer upstream.Close()

	svc := NewTMDBService("key-123", upstream.URL)
	body, err := svc.Popular(context.Background())
	if err != nil {
		t.Fatalf("Popular failed: %v", err)
	}
	if string(body) != page {
		t.Errorf("body not relayed verbatim: %s", body)
	}
}

func TestPopularUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal tmdb meltdown", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	svc := NewTMDBService("key-123", upstream.URL)
	if _, err := svc.Popular(context.Background()); err == nil {
		t.Fatal("expected error on upstream 500")
	}
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	var hits int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer upstream.Close()

	svc := NewTMDBService("key-123", upstream.URL)
	for _, query := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Search(context.Background(), query); !errors.Is(err, ErrEmptyQuery) {
			t.Errorf("Search(%q): expected ErrEmptyQuery, got %v", query, err)
		}
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Errorf("empty queries must not reach upstream, got %d calls", hits)
	}
}

func TestSearchEncodesQuery(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "the godfather part ii" {
			t.Errorf("query param not decoded correctly: %q", got)
		}
		w.Write([]byte(`{"results":[]}`))
	}))
	defer upstream.Close()

	svc := NewTMDBService("key-123", upstream.URL)
	if _, err := svc.Search(context.Background(), "the godfather part ii"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
}

func TestMovieByIDNotFound(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"status_message":"The resource you requested could not be found."}`, http.StatusNotFound)
	}))
	defer upstream.Close()

	svc := NewTMDBService("key-123", upstream.URL)
	_, err := svc.MovieByID(context.Background(), "99999999")
	if !errors.Is(err, ErrMovieNotFound) {
		t.Fatalf("expected ErrMovieNotFound, got %v", err)
	}
}

func TestMovieByIDRelaysDetail(t *testing.T) {
	const detail = `{"id":603,"title":"The Matrix","overview":"..."}`

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/603" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Write([]byte(detail))
	}))
	defer upstream.Close()

	svc := NewTMDBService("key-123", upstream.URL)
	body, err := svc.MovieByID(context.Background(), "603")
	if err != nil {
		t.Fatalf("MovieByID failed: %v", err)
	}
	if string(body) != detail {
		t.Errorf("body not relayed verbatim: %s", body)
	}
}
