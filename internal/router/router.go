package router

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/blacktechlight/internal/handler"
	"github.com/blacktechlight/web"
	"github.com/gin-gonic/gin"
)

// priceSep 是千位分组与货币符号前使用的不换行空格（U+00A0）。
const priceSep = " "

// formatRub 按俄语习惯格式化价格：129900 → «129 900 ₽»。
func formatRub(value int) string {
	raw := strconv.Itoa(value)
	var groups []string
	for len(raw) > 3 {
		groups = append([]string{raw[len(raw)-3:]}, groups...)
		raw = raw[:len(raw)-3]
	}
	groups = append([]string{raw}, groups...)

	out := groups[0]
	for _, g := range groups[1:] {
		out += priceSep + g
	}
	return out + priceSep + "₽"
}

// Setup 配置 Gin 引擎和路由。
func Setup(api *handler.API) *gin.Engine {
	r := gin.Default()

	// 加载内嵌模板并添加自定义函数
	funcMap := template.FuncMap{
		"formatRub": formatRub,
		"deref": func(p *string) string {
			if p == nil {
				return ""
			}
			return *p
		},
		"deref_int": func(p *int) int {
			if p == nil {
				return 0
			}
			return *p
		},
		"priceLabel": func(p *int) string {
			if p == nil {
				return "По запросу"
			}
			return formatRub(*p)
		},
		"eq": func(a, b interface{}) bool {
			return fmt.Sprint(a) == fmt.Sprint(b)
		},
	}
	tmpl := template.Must(
		template.New("").Funcs(funcMap).ParseFS(web.Assets, "template/*.html"),
	)
	r.SetHTMLTemplate(tmpl)

	// 静态文件服务
	staticFS, err := fs.Sub(web.Assets, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(staticFS))

	pc := api.PageCache()

	// 公开页面，GET 响应进入渲染缓存
	r.GET("/", pc.Middleware(), api.ShowHome)
	r.GET("/catalog", pc.Middleware(), api.ShowCatalog)
	r.GET("/catalog/:category", pc.Middleware(), api.ShowCategory)
	r.GET("/product/:slug", pc.Middleware(), api.ShowProduct)
	r.GET("/search", pc.Middleware(), api.ShowSearch)
	r.GET("/contacts", api.ShowContacts)
	r.GET("/thanks", api.ShowThanks)
	r.GET("/debug", api.ShowDebug)

	// CMS 回退路由：未匹配的路径按已发布页面的 slug 解析
	r.NoRoute(pc.Middleware(), api.ShowCMSPage)

	// 公共 API
	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/lead", api.CreateLead)
		apiGroup.GET("/search/suggest", api.SuggestProducts)
		apiGroup.GET("/search/promo", api.PromoProducts)

		apiGroup.POST("/admin/login", api.Login)
		apiGroup.GET("/admin/logout", api.Logout)
		apiGroup.POST("/admin/logout", api.LogoutAPI)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.GET("/login", api.ShowLoginPage)

		// 需要认证的后台路由
		auth := admin.Group("")
		auth.Use(api.AuthRequired())
		{
			auth.GET("", api.ShowBlocks)
			auth.POST("/blocks/:id", api.UpdateBlock)
			auth.POST("/blocks/:id/toggle", api.ToggleBlock)
			auth.POST("/blocks/:id/move", api.MoveBlock)

			auth.GET("/pages", api.ShowPageList)
			auth.GET("/pages/:slug", api.ShowPageEdit)
			auth.POST("/pages/:slug", api.UpdatePage)
			auth.POST("/pages/:slug/toggle", api.TogglePagePublished)

			auth.GET("/products", api.ShowProductList)
			auth.GET("/products/new", api.ShowProductNew)
			auth.POST("/products", api.CreateProduct)
			auth.GET("/products/:key", api.ShowProductEdit)
			auth.POST("/products/:key", api.UpdateProduct)

			auth.GET("/menu", api.ShowMenu)
			auth.POST("/menu/:id", api.UpdateMenuItem)
		}
	}

	return r
}
