package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/blacktechlight/internal/cache"
	"github.com/blacktechlight/internal/service"
	"github.com/gin-gonic/gin"
)

// ShowProductList renders the admin product table, newest first.
func (a *API) ShowProductList(c *gin.Context) {
	products, err := a.products.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_products.html", gin.H{
			"title": "Товары",
			"error": "Не удалось загрузить товары",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_products.html", gin.H{
		"title":    "Товары",
		"products": products,
		"saved":    c.Query("saved"),
	})
}

// ShowProductNew renders the creation form.
func (a *API) ShowProductNew(c *gin.Context) {
	categories, err := a.categories.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_product_new.html", gin.H{
			"title": "Добавить товар",
			"error": "Не удалось загрузить категории",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_product_new.html", gin.H{
		"title":      "Добавить товар",
		"categories": categories,
	})
}

func (a *API) productInput(c *gin.Context) service.ProductInput {
	categoryID, _ := strconv.ParseUint(c.PostForm("categoryId"), 10, 32)
	return service.ProductInput{
		Slug:           c.PostForm("slug"),
		Title:          c.PostForm("title"),
		Brand:          c.PostForm("brand"),
		PriceRaw:       c.PostForm("price"),
		Availability:   c.PostForm("availability"),
		Short:          c.PostForm("short"),
		DescriptionMd:  c.PostForm("descriptionMd"),
		SearchKeywords: c.PostForm("searchKeywords"),
		Featured:       formChecked(c, "featuredInSearch"),
		CategoryID:     uint(categoryID),
	}
}

// CreateProduct persists a new product and jumps to its edit form.
func (a *API) CreateProduct(c *gin.Context) {
	product, err := a.products.Create(a.productInput(c))
	if err != nil {
		status := http.StatusInternalServerError
		message := "Не удалось создать товар"
		if errors.Is(err, service.ErrProductFieldsMissing) {
			status = http.StatusBadRequest
			message = "Укажите slug, название и категорию"
		}
		categories, _ := a.categories.List()
		a.renderHTML(c, status, "admin_product_new.html", gin.H{
			"title":      "Добавить товар",
			"error":      message,
			"categories": categories,
		})
		return
	}

	a.pageCache.Invalidate(cache.ForProduct(product.Slug, categorySlugOf(a, product.CategoryID))...)
	redirectSaved(c, "/admin/products/"+product.Slug)
}

// ShowProductEdit renders the edit form, resolving slug first, then id.
func (a *API) ShowProductEdit(c *gin.Context) {
	key := c.Param("key")

	product, err := a.products.GetBySlugOrID(key)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, service.ErrProductNotFound) {
			status = http.StatusNotFound
		}
		a.renderHTML(c, status, "admin_product_edit.html", gin.H{
			"title":    "Товар",
			"notFound": true,
			"key":      key,
		})
		return
	}

	categories, err := a.categories.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "admin_product_edit.html", gin.H{
			"title": "Товар",
			"error": "Не удалось загрузить категории",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "admin_product_edit.html", gin.H{
		"title":      "Товар",
		"product":    product,
		"categories": categories,
		"saved":      c.Query("saved"),
	})
}

// UpdateProduct overwrites a product's editable fields.
func (a *API) UpdateProduct(c *gin.Context) {
	key := c.Param("key")

	product, err := a.products.GetBySlugOrID(key)
	if err != nil {
		// 统一策略：目标不存在时静默跳回列表。
		c.Redirect(http.StatusFound, "/admin/products")
		return
	}

	updated, err := a.products.Update(product.ID, a.productInput(c))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			c.Redirect(http.StatusFound, "/admin/products")
			return
		}
		categories, _ := a.categories.List()
		a.renderHTML(c, http.StatusInternalServerError, "admin_product_edit.html", gin.H{
			"title":      "Товар",
			"error":      "Не удалось сохранить товар",
			"product":    product,
			"categories": categories,
		})
		return
	}

	a.pageCache.Invalidate(cache.ForProduct(updated.Slug, updated.Category.Slug)...)
	redirectSaved(c, "/admin/products/"+updated.Slug)
}

func categorySlugOf(a *API, categoryID uint) string {
	categories, err := a.categories.List()
	if err != nil {
		return ""
	}
	for _, c := range categories {
		if c.ID == categoryID {
			return c.Slug
		}
	}
	return ""
}
