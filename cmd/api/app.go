package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	appcart "github.com/xiebiao/modelstore/internal/application/cart"
	appcatalog "github.com/xiebiao/modelstore/internal/application/catalog"
	"github.com/xiebiao/modelstore/internal/domain/cart"
	"github.com/xiebiao/modelstore/internal/domain/catalog"
	"github.com/xiebiao/modelstore/internal/infrastructure/config"
	"github.com/xiebiao/modelstore/internal/infrastructure/messaging"
	"github.com/xiebiao/modelstore/internal/infrastructure/persistence/rdb"
	redisstore "github.com/xiebiao/modelstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/modelstore/internal/interface/http/handler"
	"github.com/xiebiao/modelstore/internal/interface/http/middleware"
	"github.com/xiebiao/modelstore/internal/interface/http/router"
	"github.com/xiebiao/modelstore/pkg/circuitbreaker"
	"github.com/xiebiao/modelstore/pkg/jwt"
	"github.com/xiebiao/modelstore/pkg/mq"
)

// buildApp 手动组装依赖
// 学习要点：依赖注入链
// Repository ← Service ← UseCase ← Handler ← Router
//
// 返回的cleanup负责关闭可选组件（消息队列连接）
func buildApp(ctx context.Context, cfg *config.Config, db *gorm.DB, redisClient *goredis.Client) (*gin.Engine, func(), error) {
	cleanup := func() {}

	// 1. 基础设施层
	catalogRepo := rdb.NewCatalogRepository(db)
	sessionStore := redisstore.NewSessionStore(redisClient, cfg.Session.TTL)
	cartRepo := redisstore.NewCartRepository(sessionStore)

	categoryCache, err := provideCategoryCache(ctx, cfg, redisClient)
	if err != nil {
		return nil, cleanup, err
	}

	publisher, closePublisher, err := provideCartEventPublisher(cfg)
	if err != nil {
		return nil, cleanup, err
	}
	cleanup = closePublisher

	// 2. 领域层
	catalogService := catalog.NewService(catalogRepo, categoryCache)
	cartService := cart.NewService(cartRepo, appcart.NewProductChecker(catalogService), publisher)

	// 3. 应用层 + 接口层
	catalogHandler := handler.NewCatalogHandler(
		appcatalog.NewListCategoriesUseCase(catalogService),
		appcatalog.NewListVendorsUseCase(catalogService),
		appcatalog.NewListProductsUseCase(catalogService),
		appcatalog.NewGetProductUseCase(catalogService),
		appcatalog.NewListByCategoryUseCase(catalogService),
		appcatalog.NewSearchDescriptionUseCase(catalogService),
	)
	cartHandler := handler.NewCartHandler(
		appcart.NewGetCartUseCase(cartService),
		appcart.NewUpdateCartUseCase(cartService),
	)

	sqlDB, err := db.DB()
	if err != nil {
		return nil, cleanup, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	healthHandler := handler.NewHealthHandler(map[string]handler.HealthCheck{
		"database": sqlDB.PingContext,
		"redis":    sessionStore.Ping,
	})

	sessionMiddleware := middleware.NewSessionMiddleware(
		jwt.NewManager(cfg.Session.Secret, cfg.Session.TTL),
		middleware.SessionOptions{
			CookieName: cfg.Session.CookieName,
			Secure:     cfg.Session.Secure,
			HTTPOnly:   cfg.Session.HTTPOnly,
		},
	)

	// 4. 路由
	engine := router.New(router.Handlers{
		Catalog: catalogHandler,
		Cart:    cartHandler,
		Health:  healthHandler,
		Session: sessionMiddleware,
	}, router.Options{
		StaticDir: cfg.Server.StaticDir,
		Swagger:   cfg.Server.Mode != gin.ReleaseMode,
	})

	return engine, cleanup, nil
}

// provideCategoryCache 创建分类缓存
// 启动时清空旧缓存：数据库文件可能在服务停止期间被替换
func provideCategoryCache(ctx context.Context, cfg *config.Config, client *goredis.Client) (catalog.CategoryCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	breaker := circuitbreaker.New("redis-category-cache", circuitbreaker.Settings{
		FailureThreshold: cfg.Cache.FailureThreshold,
		OpenTimeout:      cfg.Cache.Timeout,
		HalfOpenRequests: cfg.Cache.MaxRequests,
		Window:           cfg.Cache.Interval,
	})
	breaker.OnStateChange(func(name string, from, to circuitbreaker.State) {
		zap.L().Warn("熔断器状态变化",
			zap.String("name", name),
			zap.String("from", from.String()),
			zap.String("to", to.String()),
		)
	})

	cache := redisstore.NewCategoryCache(client, cfg.Cache.CategoryTTL, breaker)
	if err := cache.Invalidate(ctx); err != nil {
		return nil, fmt.Errorf("清空分类缓存失败: %w", err)
	}
	return cache, nil
}

// provideCartEventPublisher 创建购物车事件发布器；未启用时返回nil（不发布事件）
func provideCartEventPublisher(cfg *config.Config) (cart.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return nil, func() {}, nil
	}

	publisher, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		return nil, func() {}, fmt.Errorf("连接消息队列失败: %w", err)
	}

	closeFn := func() {
		if err := publisher.Close(); err != nil {
			zap.L().Warn("关闭消息队列连接失败", zap.Error(err))
		}
	}
	return messaging.NewCartEventPublisher(publisher), closeFn, nil
}
