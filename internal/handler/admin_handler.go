package handler

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// adminCookieName 是后台会话 cookie 的名称，值固定为 "1"。
const adminCookieName = "admin"

// ShowLoginPage 渲染后台登录页面。登录页自身永远不做跳转。
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "admin_login.html", gin.H{
		"title": "Админка",
	})
}

// Login checks the submitted password against the configured secret.
// An unset secret is a hard configuration error; a mismatch is a bare
// 401 with no further detail. The comparison is constant-time.
func (a *API) Login(c *gin.Context) {
	if a.adminPassword == "" {
		respondError(c, http.StatusInternalServerError, "ADMIN_PASSWORD not set")
		return
	}

	password := c.PostForm("password")
	if subtle.ConstantTimeCompare([]byte(password), []byte(a.adminPassword)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{"ok": false})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminCookieName, "1", 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func clearAdminCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(adminCookieName, "", -1, "/", "", false, true)
}

// Logout clears the admin cookie and sends the browser back to the
// login page.
func (a *API) Logout(c *gin.Context) {
	clearAdminCookie(c)
	c.Redirect(http.StatusFound, "/admin/login")
}

// LogoutAPI clears the admin cookie for non-navigating clients.
func (a *API) LogoutAPI(c *gin.Context) {
	clearAdminCookie(c)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// AuthRequired 拦截未认证的后台请求并跳转到登录页。
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, err := c.Cookie(adminCookieName)
		if err != nil || value != "1" {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
