//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. main.go使用buildApp手动组装；本文件声明同一依赖图，供 `wire gen ./cmd/api` 生成wire_gen.go
// 2. Provider: 提供依赖的构造函数（如rdb.NewCatalogRepository）
// 3. Injector: 声明最终要构造的目标类型（*gin.Engine）
//
// 可选组件（分类缓存、消息队列）的Provider定义在app.go，两种组装方式共用

package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appcart "github.com/xiebiao/modelstore/internal/application/cart"
	appcatalog "github.com/xiebiao/modelstore/internal/application/catalog"
	"github.com/xiebiao/modelstore/internal/domain/cart"
	"github.com/xiebiao/modelstore/internal/domain/catalog"
	"github.com/xiebiao/modelstore/internal/infrastructure/config"
	"github.com/xiebiao/modelstore/internal/infrastructure/persistence/rdb"
	redisstore "github.com/xiebiao/modelstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/modelstore/internal/interface/http/handler"
	"github.com/xiebiao/modelstore/internal/interface/http/middleware"
	"github.com/xiebiao/modelstore/internal/interface/http/router"
	"github.com/xiebiao/modelstore/pkg/jwt"
)

// infrastructureSet 基础设施层依赖：配置、数据库、Redis
var infrastructureSet = wire.NewSet(
	config.Load,
	rdb.NewDB,
	redisstore.NewClient,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	rdb.NewCatalogRepository,
	provideSessionStore,
	redisstore.NewCartRepository,
	provideCategoryCache,
	provideCartEventPublisher,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	catalog.NewService,
	cart.NewService,
	appcart.NewProductChecker, // 购物车通过目录服务校验商品
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appcatalog.NewListCategoriesUseCase,
	appcatalog.NewListVendorsUseCase,
	appcatalog.NewListProductsUseCase,
	appcatalog.NewGetProductUseCase,
	appcatalog.NewListByCategoryUseCase,
	appcatalog.NewSearchDescriptionUseCase,
	appcart.NewGetCartUseCase,
	appcart.NewUpdateCartUseCase,
)

// interfaceSet 接口层依赖
var interfaceSet = wire.NewSet(
	handler.NewCatalogHandler,
	handler.NewCartHandler,
	provideHealthHandler,
	provideSessionMiddleware,
	wire.Struct(new(router.Handlers), "*"),
	provideRouterOptions,
	router.New,
)

// provideSessionStore 从配置提取会话TTL
func provideSessionStore(cfg *config.Config, client *goredis.Client) *redisstore.SessionStore {
	return redisstore.NewSessionStore(client, cfg.Session.TTL)
}

// provideSessionMiddleware 从配置创建会话中间件
// 教学要点：jwt.NewManager只需要Session相关的配置，Wire无法自动从Config提取
func provideSessionMiddleware(cfg *config.Config) *middleware.SessionMiddleware {
	return middleware.NewSessionMiddleware(
		jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL),
		middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.Secure,
			HTTPOnly:   cfg.Session.HTTPOnly,
		},
	)
}

// provideHealthHandler 健康检查依赖数据库和Redis
func provideHealthHandler(db *gorm.DB, sessions *redisstore.SessionStore) (*handler.HealthHandler, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return handler.NewHealthHandler(map[string]handler.HealthCheck{
		"database": sqlDB.PingContext,
		"redis":    sessions.Ping,
	}), nil
}

func provideRouterOptions(cfg *config.Config) router.Options {
	return router.Options{
		StaticDir: cfg.Server.StaticDir,
		Swagger:   cfg.Server.Mode != gin.ReleaseMode,
	}
}

// InitializeApp 初始化整个应用
// ctx用于启动阶段的Redis操作（清空分类缓存）
func InitializeApp(ctx context.Context) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		interfaceSet,
	)
	return nil, nil, nil
}
