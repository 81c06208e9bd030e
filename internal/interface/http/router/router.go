package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/xiebiao/modelstore/docs" // swagger文档注册
	"github.com/xiebiao/modelstore/internal/interface/http/handler"
	"github.com/xiebiao/modelstore/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
	"github.com/xiebiao/modelstore/pkg/metrics"
	"github.com/xiebiao/modelstore/pkg/response"
)

// Handlers 路由依赖的处理器
type Handlers struct {
	Catalog *handler.CatalogHandler
	Cart    *handler.CartHandler
	Health  *handler.HealthHandler
	Session *middleware.SessionMiddleware
}

// Options 路由选项
type Options struct {
	// StaticDir 前端静态文件目录，为空则不提供
	StaticDir string
	// Swagger 是否开放/swagger文档
	Swagger bool
}

// New 创建Gin引擎并注册全部路由
//
// 教学要点：
// 中间件执行顺序：Recovery → Logger → Metrics → Tracing → 路由匹配 → Session（仅/api） → Handler
func New(h Handlers, opts Options) *gin.Engine {
	metrics.InitMetrics()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.Tracing())

	// 系统路由
	r.GET("/ping", h.Health.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.Swagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group("/api")
	api.Use(h.Session.Handle())
	{
		// 目录（只读）
		api.GET("/catalog", h.Catalog.ListCategories)
		api.GET("/vendors", h.Catalog.ListVendors)
		api.GET("/products", h.Catalog.ListProducts)
		api.GET("/products/:id", h.Catalog.GetProduct)
		api.GET("/products/category/:id", h.Catalog.ListProductsByCategory)
		api.GET("/searchDescription", h.Catalog.SearchDescription)

		// 购物车
		api.GET("/cart", h.Cart.GetCart)
		api.POST("/cart/update", h.Cart.UpdateCart)
	}

	r.NoRoute(staticFallback(opts.StaticDir))
	return r
}

// staticFallback 未匹配的GET请求从静态目录读取文件，其余返回404
func staticFallback(dir string) gin.HandlerFunc {
	var files http.Handler
	if dir != "" {
		files = http.FileServer(gin.Dir(dir, false))
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if files != nil && (method == http.MethodGet || method == http.MethodHead) {
			name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+c.Request.URL.Path)))
			if _, err := os.Stat(name); err == nil {
				files.ServeHTTP(c.Writer, c.Request)
				return
			}
		}
		response.Error(c, apperrors.ErrNotFound)
	}
}
