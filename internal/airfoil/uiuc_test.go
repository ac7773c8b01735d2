package airfoil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func newTestServer(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/naca0012.dat":
			w.Write([]byte(naca0012Dat))
		case "/junk.dat":
			w.Write([]byte("<html>moved</html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUIUCFetchCaches(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	u := NewUIUC(srv.URL+"/", t.TempDir(), nil)
	u.SetRateLimit(time.Millisecond, 10)

	path, err := u.Fetch(context.Background(), "naca0012")
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("cached file missing: %v", err)
	}
	if _, err := u.Fetch(context.Background(), "naca0012"); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if got := atomic.LoadInt32(&hits); got != 1 {
		t.Errorf("server hit %d times, want 1", got)
	}

	af, err := u.Coordinates(context.Background(), "naca0012")
	if err != nil {
		t.Fatalf("Coordinates: %v", err)
	}
	if len(af.Points) != 5 {
		t.Errorf("got %d points", len(af.Points))
	}
}

func TestUIUCNotFound(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	u := NewUIUC(srv.URL+"/", t.TempDir(), nil)

	_, err := u.Fetch(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUIUCRejectsJunkWithoutCaching(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	u := NewUIUC(srv.URL+"/", t.TempDir(), nil)

	if _, err := u.Fetch(context.Background(), "junk"); err == nil {
		t.Fatal("expected error for a page without coordinates")
	}
	if _, err := os.Stat(u.Path("junk")); !os.IsNotExist(err) {
		t.Errorf("junk page was cached: %v", err)
	}
}

func TestUIUCFetchAllSkipsFailures(t *testing.T) {
	var hits int32
	srv := newTestServer(t, &hits)
	u := NewUIUC(srv.URL+"/", t.TempDir(), nil)
	u.SetRateLimit(time.Millisecond, 10)

	got, err := u.FetchAll(context.Background(), []string{"naca0012", "nope"})
	if err != nil {
		t.Fatalf("FetchAll: %v", err)
	}
	if len(got) != 1 || got[0] != "naca0012" {
		t.Errorf("FetchAll = %v, want [naca0012]", got)
	}
}
