package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestListDecodesPage(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"movies": [{"id": 7, "title": "Heat", "director": "Michael Mann", "year": 1995, "rating": 8.3}],
			"page": 2, "pageSize": 10, "totalPages": 3, "totalFiltered": 21
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	res, err := c.List(context.Background(), ListQuery{Page: 2, PageSize: 10, Q: "heat", Sort: "title", Dir: "asc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantPath := "/api/movies?page=2&pageSize=10&q=heat&sort=title&dir=asc"
	if gotPath != wantPath {
		t.Fatalf("expected request path %q, got=%q", wantPath, gotPath)
	}
	if len(res.Movies) != 1 || res.Movies[0].Title != "Heat" {
		t.Fatalf("unexpected movies: %+v", res.Movies)
	}
	if res.Page != 2 || res.TotalPages != 3 || res.TotalFiltered != 21 {
		t.Fatalf("unexpected page meta: %+v", res)
	}
}

func TestStructuredValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"errors": {"title": "Title is required", "year": "Year must be a number"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Create(context.Background(), MoviePayload{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if !apiErr.HasFieldErrors() {
		t.Fatal("expected field errors")
	}
	if apiErr.Fields["title"] != "Title is required" {
		t.Fatalf("unexpected title error: %q", apiErr.Fields["title"])
	}
	if apiErr.Message != "Please fix the form errors." {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}

	want := "title: Title is required\nyear: Year must be a number"
	if got := apiErr.FieldSummary(); got != want {
		t.Fatalf("expected summary %q, got=%q", want, got)
	}
}

func TestServerMessagePreferred(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message": "Movie not found"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Get(context.Background(), 99)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Message != "Movie not found" {
		t.Fatalf("unexpected error: %+v", apiErr)
	}
}

func TestNonJSONErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("<html>oops</html>"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	_, err := c.Get(context.Background(), 1)

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if apiErr.Message != "request failed (500)" {
		t.Fatalf("unexpected message: %q", apiErr.Message)
	}
	if apiErr.HasFieldErrors() {
		t.Fatal("expected no field errors")
	}
}

func TestDeleteNoContent(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	if err := c.Delete(context.Background(), 42); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/movies/42" {
		t.Fatalf("unexpected request: %s %s", gotMethod, gotPath)
	}
}

func TestGetStatsNormalizesPageSize(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"totalRecords": 12, "currentPageSize": 10, "averageRating": 7.25, "topDirector": "Denis Villeneuve", "topDirectorCount": 3}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	res, err := c.GetStats(context.Background(), 17)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "pageSize=10" {
		t.Fatalf("expected normalized page size, got=%q", gotQuery)
	}
	if res.TotalRecords != 12 || res.TopDirector != "Denis Villeneuve" {
		t.Fatalf("unexpected stats: %+v", res)
	}
}

func TestBaseURLTrailingSlashTrimmed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/movies/1" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		w.Write([]byte(`{"id": 1, "title": "Alien", "director": "Ridley Scott", "year": 1979, "rating": 8.5}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	mv, err := c.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mv.Title != "Alien" {
		t.Fatalf("expected Alien, got=%q", mv.Title)
	}
}
