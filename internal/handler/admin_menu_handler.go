package handler

import (
	"errors"
	"net/http"

	"github.com/blacktechlight/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowMenu renders the header navigation editor.
func (a *API) ShowMenu(c *gin.Context) {
	items, err := a.menu.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_menu.html", gin.H{
			"title": "Хедер — меню",
			"error": "Не удалось загрузить меню",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_menu.html", gin.H{
		"title": "Хедер — меню",
		"items": items,
		"saved": c.Query("saved"),
	})
}

// UpdateMenuItem overwrites one menu row. The header is rendered on
// every page, so the whole render cache is flushed.
func (a *API) UpdateMenuItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/admin/menu")
		return
	}

	err = a.menu.Update(id,
		c.PostForm("label"),
		c.PostForm("href"),
		parseIntForm(c, "sortOrder"),
		formChecked(c, "isEnabled"),
	)
	if err != nil {
		if errors.Is(err, service.ErrMenuItemNotFound) {
			c.Redirect(http.StatusFound, "/admin/menu")
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "admin_menu.html", gin.H{
			"title": "Хедер — меню",
			"error": "Не удалось сохранить пункт меню",
		})
		return
	}

	a.pageCache.Flush()
	redirectSaved(c, "/admin/menu")
}
