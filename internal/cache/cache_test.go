package cache

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newCachedRouter(pc *PageCache, hits *atomic.Int64) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/page", pc.Middleware(), func(c *gin.Context) {
		hits.Add(1)
		c.String(http.StatusOK, "render %d", hits.Load())
	})
	r.GET("/missing", pc.Middleware(), func(c *gin.Context) {
		hits.Add(1)
		c.String(http.StatusNotFound, "nope")
	})
	return r
}

func get(t *testing.T, r *gin.Engine, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestMiddlewareServesCachedBody(t *testing.T) {
	var hits atomic.Int64
	pc := NewPageCache(time.Minute)
	r := newCachedRouter(pc, &hits)

	first := get(t, r, "/page")
	second := get(t, r, "/page")

	if hits.Load() != 1 {
		t.Fatalf("expected one render, handler ran %d times", hits.Load())
	}
	if first.Body.String() != second.Body.String() {
		t.Errorf("cached body differs: %q vs %q", first.Body.String(), second.Body.String())
	}
}

func TestMiddlewareKeysOnQueryString(t *testing.T) {
	var hits atomic.Int64
	pc := NewPageCache(time.Minute)
	r := newCachedRouter(pc, &hits)

	get(t, r, "/page?q=beam")
	get(t, r, "/page?q=wash")
	get(t, r, "/page?q=beam")

	if hits.Load() != 2 {
		t.Fatalf("expected 2 renders for 2 distinct URIs, got %d", hits.Load())
	}
}

func TestMiddlewareSkipsNonOK(t *testing.T) {
	var hits atomic.Int64
	pc := NewPageCache(time.Minute)
	r := newCachedRouter(pc, &hits)

	get(t, r, "/missing")
	get(t, r, "/missing")

	if hits.Load() != 2 {
		t.Fatalf("non-200 responses must not be cached, renders: %d", hits.Load())
	}
	if pc.Len() != 0 {
		t.Errorf("cache should stay empty, has %d entries", pc.Len())
	}
}

func TestInvalidateCoversQueryVariants(t *testing.T) {
	pc := NewPageCache(time.Minute)
	pc.put("/search", http.StatusOK, "text/html", []byte("a"))
	pc.put("/search?q=beam", http.StatusOK, "text/html", []byte("b"))
	pc.put("/searcher", http.StatusOK, "text/html", []byte("c"))
	pc.put("/catalog", http.StatusOK, "text/html", []byte("d"))

	pc.Invalidate("/search")

	if _, ok := pc.get("/search"); ok {
		t.Errorf("exact route not invalidated")
	}
	if _, ok := pc.get("/search?q=beam"); ok {
		t.Errorf("query variant not invalidated")
	}
	if _, ok := pc.get("/searcher"); !ok {
		t.Errorf("prefix-similar route must survive")
	}
	if _, ok := pc.get("/catalog"); !ok {
		t.Errorf("unrelated route must survive")
	}
}

func TestTTLExpiry(t *testing.T) {
	pc := NewPageCache(10 * time.Millisecond)
	pc.put("/", http.StatusOK, "text/html", []byte("home"))

	if _, ok := pc.get("/"); !ok {
		t.Fatalf("fresh entry should be served")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := pc.get("/"); ok {
		t.Errorf("entry past its TTL should be a miss")
	}
}

func TestFlush(t *testing.T) {
	pc := NewPageCache(time.Minute)
	pc.put("/", http.StatusOK, "text/html", []byte("a"))
	pc.put("/catalog", http.StatusOK, "text/html", []byte("b"))

	pc.Flush()
	if pc.Len() != 0 {
		t.Errorf("flush should empty the cache, %d entries left", pc.Len())
	}
}

func TestRouteSets(t *testing.T) {
	routes := ForProduct("beam-260", "moving-heads")
	want := map[string]bool{"/": true, "/catalog": true, "/product/beam-260": true, "/search": true, "/catalog/moving-heads": true}
	if len(routes) != len(want) {
		t.Fatalf("unexpected route set %v", routes)
	}
	for _, r := range routes {
		if !want[r] {
			t.Errorf("unexpected route %q", r)
		}
	}

	if got := ForPage("about"); len(got) != 2 || got[1] != "/about" {
		t.Errorf("unexpected page routes %v", got)
	}
}
