package handler

import (
	"errors"
	"net/http"

	"github.com/blacktechlight/internal/cache"
	"github.com/blacktechlight/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowPageList renders the CMS page list with publish toggles.
func (a *API) ShowPageList(c *gin.Context) {
	pages, err := a.pages.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_pages.html", gin.H{
			"title": "Страницы",
			"error": "Не удалось загрузить страницы",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_pages.html", gin.H{
		"title": "Страницы",
		"pages": pages,
		"saved": c.Query("saved"),
	})
}

// TogglePagePublished flips a page's publish gate and refreshes its
// public render.
func (a *API) TogglePagePublished(c *gin.Context) {
	slug := c.Param("slug")

	if _, err := a.pages.TogglePublished(slug); err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.Redirect(http.StatusFound, "/admin/pages")
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "admin_pages.html", gin.H{
			"title": "Страницы",
			"error": "Не удалось сохранить изменения",
		})
		return
	}

	a.pageCache.Invalidate(cache.ForPage(slug)...)
	redirectSaved(c, "/admin/pages")
}

// ShowPageEdit renders the editor for one CMS page.
func (a *API) ShowPageEdit(c *gin.Context) {
	slug := c.Param("slug")

	page, err := a.pages.GetBySlug(slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrPageNotFound) {
			status = http.StatusNotFound
		}
		a.renderHTML(c, status, "admin_page_edit.html", gin.H{
			"title":    "Редактирование страницы",
			"notFound": true,
			"slug":     slug,
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_page_edit.html", gin.H{
		"title": "Редактирование страницы",
		"page":  page,
		"saved": c.Query("saved"),
	})
}

// UpdatePage overwrites a page's title, content and publish state.
func (a *API) UpdatePage(c *gin.Context) {
	slug := c.Param("slug")

	_, err := a.pages.Update(slug, c.PostForm("title"), c.PostForm("contentMd"), formChecked(c, "isPublished"))
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			c.Redirect(http.StatusFound, "/admin/pages")
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "admin_page_edit.html", gin.H{
			"title": "Редактирование страницы",
			"error": "Не удалось сохранить страницу",
			"slug":  slug,
		})
		return
	}

	a.pageCache.Invalidate(cache.ForPage(slug)...)
	redirectSaved(c, "/admin/pages/"+slug)
}
