package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appcollection "github.com/xiebiao/bookcollection/internal/application/collection"
	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/infrastructure/catalog"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookcollection/internal/interface/http/handler"
	"github.com/xiebiao/bookcollection/internal/interface/http/middleware"
	"github.com/xiebiao/bookcollection/pkg/logger"
	"github.com/xiebiao/bookcollection/pkg/metrics"
	"github.com/xiebiao/bookcollection/pkg/response"
)

// App 组装完成的应用
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Engine *gin.Engine
}

// provideLogger 按配置创建日志并设为默认Logger
func provideLogger(cfg *config.Config) (*slog.Logger, func(), error) {
	log, closer, err := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(log)

	return log, func() { _ = closer.Close() }, nil
}

// provideDefaultCapacity 从配置提取默认集合容量
func provideDefaultCapacity(cfg *config.Config) appcollection.DefaultCapacity {
	return appcollection.DefaultCapacity(cfg.Collection.DefaultCapacity)
}

// provideCatalogSource 创建图书目录数据源
// 未启用时返回DisabledSource,导入接口返回目录不可用
func provideCatalogSource(cfg *config.Config) (book.Source, func(), error) {
	if !cfg.Catalog.Enabled {
		return catalog.DisabledSource{}, func() {}, nil
	}

	db, err := mysql.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	source := catalog.NewGuardedSource(mysql.NewCatalogSource(db), catalog.Options{
		Name:          "catalog-mysql",
		RatePerSecond: cfg.Catalog.RatePerSecond,
		Burst:         cfg.Catalog.Burst,
		MaxFailures:   cfg.Catalog.BreakerMaxFailures,
		Timeout:       cfg.Catalog.BreakerTimeout,
	})
	return source, cleanup, nil
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	log *slog.Logger,
	collectionHandler *handler.CollectionHandler,
) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	}

	metrics.InitMetrics()

	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(log), middleware.Metrics())

	// 健康检查
	r.GET("/ping", func(c *gin.Context) {
		response.Success(c, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Prometheus指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger文档: http://localhost:8080/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	collectionHandler.RegisterRoutes(v1)

	return r
}
