package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreateLead captures a request form and appends it to the local lead
// log, then sends the visitor to the confirmation page. The log is a
// placeholder for a future mail/Telegram notification integration.
func (a *API) CreateLead(c *gin.Context) {
	err := a.leads.Append(
		c.PostForm("product"),
		c.PostForm("name"),
		c.PostForm("contact"),
		c.PostForm("message"),
	)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Не удалось отправить заявку")
		return
	}

	c.Redirect(http.StatusFound, "/thanks")
}
