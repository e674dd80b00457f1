package handler

import (
	"net/http"

	"github.com/blacktechlight/internal/db"
	"github.com/blacktechlight/internal/search"
	"github.com/gin-gonic/gin"
)

// suggestionView is the wire shape consumed by the header overlay.
type suggestionView struct {
	Slug     string `json:"slug"`
	Brand    string `json:"brand"`
	Title    string `json:"title"`
	Short    string `json:"short"`
	Featured bool   `json:"featured"`
}

func toSuggestionViews(products []db.Product) []suggestionView {
	out := make([]suggestionView, 0, len(products))
	for _, p := range products {
		out = append(out, suggestionView{
			Slug:     p.Slug,
			Brand:    p.Brand,
			Title:    p.Title,
			Short:    p.Short,
			Featured: p.FeaturedInSearch,
		})
	}
	return out
}

// SuggestProducts serves the overlay's live suggestion list: up to
// eight normalized substring matches, featured products first.
func (a *API) SuggestProducts(c *gin.Context) {
	query := c.Query("q")
	if search.Normalize(query) == "" {
		c.JSON(http.StatusOK, gin.H{"items": []suggestionView{}})
		return
	}

	products, err := a.products.List()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "suggest failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": toSuggestionViews(search.Suggest(products, query)),
	})
}

// PromoProducts serves the featured pool the overlay rotates through
// every two seconds while the query is empty.
func (a *API) PromoProducts(c *gin.Context) {
	featured, err := a.products.Featured()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "promo failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": toSuggestionViews(featured)})
}
