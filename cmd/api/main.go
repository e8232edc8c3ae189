package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/xiebiao/bookcollection/docs"
	"github.com/xiebiao/bookcollection/pkg/metrics"
	"github.com/xiebiao/bookcollection/pkg/tracing"
)

// @title           图书集合服务 API
// @version         1.0
// @description     容量受限的图书集合:添加、查找、改价、库存调整、合并与目录导入
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. 指标需在数据源创建前注册
	metrics.InitMetrics()

	// 2. 依赖注入（Wire生成）
	app, cleanup, err := InitializeApp()
	if err != nil {
		log.Fatalf("初始化应用失败: %v", err)
	}
	defer cleanup()

	cfg := app.Config
	logger := app.Logger

	// 3. 链路追踪（可选）
	if cfg.Tracing.Enabled {
		shutdown, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.Endpoint)
		if err != nil {
			logger.Error("初始化链路追踪失败", "error", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = shutdown(ctx)
			}()
		}
	}

	// 4. 启动HTTP服务
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      app.Engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("服务启动成功",
			"addr", srv.Addr,
			"mode", cfg.Server.Mode,
			"default_capacity", cfg.Collection.DefaultCapacity,
			"catalog_enabled", cfg.Catalog.Enabled,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP服务异常退出", "error", err)
			os.Exit(1)
		}
	}()

	// 5. 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("收到关闭信号，开始优雅关闭...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("HTTP服务关闭失败", "error", err)
	}

	logger.Info("服务已安全关闭")
}
