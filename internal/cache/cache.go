package cache

import (
	"bytes"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type entry struct {
	status      int
	contentType string
	body        []byte
	stored      time.Time
}

// PageCache is an in-memory cache of rendered public GET responses with
// TTL and explicit invalidation. Admin mutation handlers invalidate the
// affected routes so the next public request re-renders fresh data.
type PageCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
}

// NewPageCache creates a PageCache with the given TTL.
func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{ttl: ttl, entries: make(map[string]entry)}
}

func (c *PageCache) get(uri string) (entry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[uri]
	if !ok || time.Since(e.stored) >= c.ttl {
		return entry{}, false
	}
	return e, true
}

func (c *PageCache) put(uri string, status int, contentType string, body []byte) {
	c.mu.Lock()
	c.entries[uri] = entry{status: status, contentType: contentType, body: body, stored: time.Now()}
	c.mu.Unlock()
}

// Invalidate drops cached renders of the given route paths, including
// query-string variants (so "/search" covers every "/search?q=…").
func (c *PageCache) Invalidate(routes ...string) {
	if len(routes) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		for _, route := range routes {
			if key == route || strings.HasPrefix(key, route+"?") {
				delete(c.entries, key)
				break
			}
		}
	}
}

// Flush clears the whole cache. Used when shared chrome changes,
// e.g. the header menu that is rendered on every page.
func (c *PageCache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]entry)
	c.mu.Unlock()
}

// Len reports the number of cached pages.
func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Middleware serves cached renders of successful GET responses and
// records fresh ones. Attach it only to public, read-only routes.
func (c *PageCache) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method != http.MethodGet {
			ctx.Next()
			return
		}

		uri := ctx.Request.URL.RequestURI()
		if e, ok := c.get(uri); ok {
			ctx.Data(e.status, e.contentType, e.body)
			ctx.Abort()
			return
		}

		cw := &captureWriter{ResponseWriter: ctx.Writer, body: &bytes.Buffer{}}
		ctx.Writer = cw
		ctx.Next()

		if cw.Status() == http.StatusOK {
			c.put(uri, cw.Status(), cw.Header().Get("Content-Type"), cw.body.Bytes())
		}
	}
}
