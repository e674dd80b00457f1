package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/blacktechlight/internal/cache"
	"github.com/blacktechlight/internal/db"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestAPI(t *testing.T, adminPassword string) *API {
	t.Helper()

	dir := t.TempDir()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(dir, "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := gdb.AutoMigrate(
		&db.Category{},
		&db.Product{},
		&db.SitePage{},
		&db.MenuItem{},
		&db.HomeBlock{},
		&db.PortfolioProject{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	pc := cache.NewPageCache(time.Minute)
	return NewAPI(gdb, pc, adminPassword, filepath.Join(dir, "leads.jsonl"))
}

// newAuthRouter wires only the auth endpoints plus a protected probe,
// so these tests run without templates.
func newAuthRouter(api *API) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", api.Login)
	r.GET("/api/admin/logout", api.Logout)
	r.POST("/api/admin/logout", api.LogoutAPI)
	r.GET("/admin/probe", api.AuthRequired(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return r
}

func postLogin(r *gin.Engine, password string) *httptest.ResponseRecorder {
	form := url.Values{"password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "admin" {
			return c
		}
	}
	return nil
}

func TestLoginSetsAdminCookie(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, "s3cret"))

	w := postLogin(r, "s3cret")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	cookie := adminCookie(w)
	if cookie == nil {
		t.Fatalf("admin cookie not set")
	}
	if cookie.Value != "1" {
		t.Errorf("cookie value = %q, want \"1\"", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Errorf("admin cookie must be http-only")
	}
	if cookie.Path != "/" {
		t.Errorf("cookie path = %q, want \"/\"", cookie.Path)
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie same-site = %v, want lax", cookie.SameSite)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, "s3cret"))

	w := postLogin(r, "wrong")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if adminCookie(w) != nil {
		t.Errorf("failed login must not set a cookie")
	}
}

func TestLoginWithoutConfiguredSecret(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, ""))

	// Empty submitted password must not slip past an empty secret.
	w := postLogin(r, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unset secret, got %d", w.Code)
	}
	if adminCookie(w) != nil {
		t.Errorf("no cookie may be set when the secret is unconfigured")
	}
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, "s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/admin/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect target = %q, want /admin/login", loc)
	}
}

func TestAuthRequiredAcceptsCookie(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, "s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/admin/probe", nil)
	req.AddCookie(&http.Cookie{Name: "admin", Value: "1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with cookie, got %d", w.Code)
	}
}

func TestAuthRequiredRejectsWrongCookieValue(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, "s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/admin/probe", nil)
	req.AddCookie(&http.Cookie{Name: "admin", Value: "2"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("a forged cookie value must still redirect, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newAuthRouter(newTestAPI(t, "s3cret"))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/logout", nil)
	req.AddCookie(&http.Cookie{Name: "admin", Value: "1"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/login" {
		t.Errorf("redirect target = %q", loc)
	}
	cookie := adminCookie(w)
	if cookie == nil || cookie.MaxAge >= 0 {
		t.Errorf("logout must expire the admin cookie")
	}
}
