package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strings"

	"github.com/blacktechlight/internal/db"
	"github.com/blacktechlight/internal/search"
	"github.com/blacktechlight/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将商品长描述渲染为经过净化的 HTML。
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes()))
}

// ShowHome renders the enabled home blocks in their configured order.
func (a *API) ShowHome(c *gin.Context) {
	blocks, err := a.blocks.Enabled()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "home.html", gin.H{
			"title": "BlackTechLight",
			"error": "Не удалось загрузить страницу",
		})
		return
	}

	// Блок каталога и портфолио подтягивают собственные данные.
	categories, err := a.categories.List()
	if err != nil {
		c.Error(err)
	}
	projects, err := a.portfolio.Published(6)
	if err != nil {
		c.Error(err)
	}

	a.renderHTML(c, http.StatusOK, "home.html", gin.H{
		"title":      "BlackTechLight",
		"blocks":     blocks,
		"categories": categories,
		"projects":   projects,
	})
}

// ShowCatalog renders the category grid with product counts.
func (a *API) ShowCatalog(c *gin.Context) {
	categories, err := a.categories.ListWithCounts()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "catalog.html", gin.H{
			"title": "Каталог",
			"error": "Не удалось загрузить каталог",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "catalog.html", gin.H{
		"title":      "Каталог",
		"categories": categories,
	})
}

// ShowCategory renders one category's products, newest first, with an
// optional price sort. An unknown slug renders a friendly in-page
// not-found state rather than an error page.
func (a *API) ShowCategory(c *gin.Context) {
	slug := c.Param("category")
	sortMode := search.ParseSortMode(c.Query("sort"))

	category, err := a.categories.GetBySlug(slug)
	if err != nil {
		a.renderHTML(c, http.StatusOK, "category.html", gin.H{
			"title":    "Категория не найдена",
			"notFound": true,
		})
		return
	}

	products, err := a.products.ListByCategory(category.ID)
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "category.html", gin.H{
			"title": category.Title,
			"error": "Не удалось загрузить товары",
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "category.html", gin.H{
		"title":    category.Title,
		"category": category,
		"products": search.SortProducts(products, sortMode),
		"sort":     string(sortMode),
	})
}

// ShowProduct renders a product detail page with the inline lead form.
func (a *API) ShowProduct(c *gin.Context) {
	slug := c.Param("slug")

	product, err := a.products.GetBySlug(slug)
	if err != nil {
		a.renderHTML(c, http.StatusOK, "product.html", gin.H{
			"title":    "Товар не найден",
			"notFound": true,
		})
		return
	}

	a.renderHTML(c, http.StatusOK, "product.html", gin.H{
		"title":       product.Brand + " " + product.Title,
		"product":     product,
		"description": renderMarkdown(product.DescriptionMd),
	})
}

// ShowSearch runs the full-catalog search: substring match over brand,
// title, descriptions and keywords combined with category and stock
// filters, then one of the three sort modes.
func (a *API) ShowSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	categorySlug := c.DefaultQuery("category", "all")
	stock := search.ParseStockMode(c.Query("stock"))
	sortMode := search.ParseSortMode(c.Query("sort"))

	products, err := a.products.List()
	if err != nil {
		a.renderHTML(c, http.StatusInternalServerError, "search.html", gin.H{
			"title": "Поиск",
			"error": "Не удалось выполнить поиск",
		})
		return
	}
	categories, err := a.categories.List()
	if err != nil {
		c.Error(err)
	}

	items := search.SortProducts(search.Filter(products, query, categorySlug, stock), sortMode)

	a.renderHTML(c, http.StatusOK, "search.html", gin.H{
		"title":      "Поиск",
		"q":          query,
		"category":   categorySlug,
		"stock":      string(stock),
		"sort":       string(sortMode),
		"categories": categories,
		"items":      items,
	})
}

// ShowContacts renders the static contacts page.
func (a *API) ShowContacts(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "contacts.html", gin.H{
		"title": "Контакты",
	})
}

// ShowThanks renders the lead confirmation page.
func (a *API) ShowThanks(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "thanks.html", gin.H{
		"title": "Запрос отправлен",
	})
}

// ShowCMSPage is the fallback for unmatched paths: a single published
// CMS page slug. Reserved segments and unpublished pages render the
// not-found state. Content is shown verbatim with whitespace kept.
func (a *API) ShowCMSPage(c *gin.Context) {
	slug := strings.Trim(c.Request.URL.Path, "/")
	if slug == "" || strings.Contains(slug, "/") {
		a.renderPageNotFound(c)
		return
	}

	page, err := a.pages.GetPublished(slug)
	if err != nil {
		if !errors.Is(err, service.ErrPageNotFound) {
			c.Error(err)
		}
		a.renderPageNotFound(c)
		return
	}

	a.renderHTML(c, http.StatusOK, "page.html", gin.H{
		"title": page.Title,
		"page":  page,
	})
}

func (a *API) renderPageNotFound(c *gin.Context) {
	a.renderHTML(c, http.StatusNotFound, "page.html", gin.H{
		"title":    "Страница не найдена",
		"notFound": true,
	})
}

// ShowDebug dumps every table as indented JSON. Development aid only.
func (a *API) ShowDebug(c *gin.Context) {
	var (
		categories []db.Category
		products   []db.Product
		pages      []db.SitePage
		menu       []db.MenuItem
		blocks     []db.HomeBlock
		projects   []db.PortfolioProject
	)
	a.db.Order("sort_order asc").Find(&categories)
	a.db.Order("created_at desc").Find(&products)
	a.db.Order("slug asc").Find(&pages)
	a.db.Order("sort_order asc").Find(&menu)
	a.db.Order("sort_order asc").Find(&blocks)
	a.db.Order("sort_order asc").Find(&projects)

	dump := func(v interface{}) string {
		raw, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err.Error()
		}
		return string(raw)
	}

	a.renderHTML(c, http.StatusOK, "debug.html", gin.H{
		"title":      "DB Debug",
		"categories": dump(categories),
		"products":   dump(products),
		"pages":      dump(pages),
		"menuDump":   dump(menu),
		"blocks":     dump(blocks),
		"projects":   dump(projects),
	})
}
