package handler

import (
	"time"

	"github.com/blacktechlight/internal/cache"
	"github.com/blacktechlight/internal/db"
	"github.com/blacktechlight/internal/service"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db            *gorm.DB
	categories    *service.CategoryService
	products      *service.ProductService
	pages         *service.PageService
	menu          *service.MenuService
	blocks        *service.BlockService
	portfolio     *service.PortfolioService
	leads         *service.LeadService
	pageCache     *cache.PageCache
	adminPassword string
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, pc *cache.PageCache, adminPassword, leadsPath string) *API {
	return &API{
		db:            gdb,
		categories:    service.NewCategoryService(gdb),
		products:      service.NewProductService(gdb),
		pages:         service.NewPageService(gdb),
		menu:          service.NewMenuService(gdb),
		blocks:        service.NewBlockService(gdb),
		portfolio:     service.NewPortfolioService(gdb),
		leads:         service.NewLeadService(leadsPath),
		pageCache:     pc,
		adminPassword: adminPassword,
	}
}

// PageCache exposes the render cache for route wiring.
func (a *API) PageCache() *cache.PageCache {
	return a.pageCache
}

const headerMenuContextKey = "__header_menu"

func (a *API) headerMenu(c *gin.Context) []db.MenuItem {
	if cached, exists := c.Get(headerMenuContextKey); exists {
		if items, ok := cached.([]db.MenuItem); ok {
			return items
		}
	}

	items, err := a.menu.Enabled()
	if err != nil {
		c.Error(err)
		items = nil
	}

	c.Set(headerMenuContextKey, items)
	return items
}

// renderHTML 渲染模板时自动附加头部导航与当前年份。
func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}

	if _, exists := payload["menu"]; !exists {
		payload["menu"] = a.headerMenu(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}
