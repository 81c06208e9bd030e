package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/modelstore/internal/infrastructure/config"
	"github.com/xiebiao/modelstore/internal/infrastructure/persistence/rdb"
	redisstore "github.com/xiebiao/modelstore/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/modelstore/pkg/logger"
	"github.com/xiebiao/modelstore/pkg/metrics"
	"github.com/xiebiao/modelstore/pkg/tracing"
)

// main 主程序入口
//
// @title        Models R Us API
// @version      1.0
// @description  模型商店：商品目录查询与会话购物车
// @BasePath     /
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志
	zl, err := logger.New(logger.Options{
		Level:        cfg.Log.Level,
		Format:       cfg.Log.Format,
		Output:       cfg.Log.Output,
		EnableCaller: cfg.Log.EnableCaller,
	})
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	zap.ReplaceGlobals(zl)
	defer zl.Sync() //nolint:errcheck

	zap.L().Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", cfg.Database.Driver),
		zap.String("redis", cfg.Redis.Addr()),
	)

	// 3. 指标和链路追踪
	metrics.InitMetrics()
	shutdownTracer, err := tracing.InitTracer(tracing.Options{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		zap.L().Fatal("初始化链路追踪失败", zap.Error(err))
	}

	// 4. 数据库和Redis
	db, err := rdb.NewDB(cfg)
	if err != nil {
		zap.L().Fatal("初始化数据库失败", zap.Error(err))
	}
	redisClient, err := redisstore.NewClient(cfg)
	if err != nil {
		zap.L().Fatal("初始化Redis失败", zap.Error(err))
	}

	// 5. 组装依赖
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine, cleanup, err := buildApp(context.Background(), cfg, db, redisClient)
	if err != nil {
		zap.L().Fatal("初始化应用失败", zap.Error(err))
	}

	// 6. 启动HTTP服务器
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		zap.L().Info("服务启动成功", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP服务器启动失败", zap.Error(err))
		}
	}()

	// 7. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("正在关闭服务...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zap.L().Error("HTTP服务器强制关闭", zap.Error(err))
	}

	cleanup()
	if err := redisClient.Close(); err != nil {
		zap.L().Warn("关闭Redis连接失败", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			zap.L().Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	if err := shutdownTracer(ctx); err != nil {
		zap.L().Warn("关闭链路追踪失败", zap.Error(err))
	}

	zap.L().Info("服务已关闭")
}
