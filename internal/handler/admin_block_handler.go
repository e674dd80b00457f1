package handler

import (
	"errors"
	"net/http"

	"github.com/blacktechlight/internal/cache"
	"github.com/blacktechlight/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowBlocks renders the home block editor, the admin landing page.
func (a *API) ShowBlocks(c *gin.Context) {
	blocks, err := a.blocks.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_blocks.html", gin.H{
			"title": "Главная — блоки",
			"error": "Не удалось загрузить блоки",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_blocks.html", gin.H{
		"title":  "Главная — блоки",
		"blocks": blocks,
		"saved":  c.Query("saved"),
	})
}

// blockMutation applies one block operation and finishes with the
// uniform invalidate-and-redirect tail. A missing block is a silent
// no-op back to the list.
func (a *API) blockMutation(c *gin.Context, op func(id uint) error) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	if err := op(id); err != nil {
		if errors.Is(err, service.ErrBlockNotFound) {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		a.renderHTML(c, http.StatusInternalServerError, "admin_blocks.html", gin.H{
			"title": "Главная — блоки",
			"error": "Не удалось сохранить изменения",
		})
		return
	}

	a.pageCache.Invalidate(cache.ForBlocks()...)
	redirectSaved(c, "/admin")
}

// UpdateBlock overwrites a block's title and subtitle.
func (a *API) UpdateBlock(c *gin.Context) {
	a.blockMutation(c, func(id uint) error {
		return a.blocks.Update(id, c.PostForm("title"), c.PostForm("subtitle"))
	})
}

// ToggleBlock flips a block's enabled flag.
func (a *API) ToggleBlock(c *gin.Context) {
	a.blockMutation(c, func(id uint) error {
		return a.blocks.Toggle(id)
	})
}

// MoveBlock swaps a block with its neighbour; direction comes from the
// form. Edge positions no-op inside the service.
func (a *API) MoveBlock(c *gin.Context) {
	dir := service.MoveUp
	if c.PostForm("dir") == string(service.MoveDown) {
		dir = service.MoveDown
	}
	a.blockMutation(c, func(id uint) error {
		return a.blocks.Move(id, dir)
	})
}
