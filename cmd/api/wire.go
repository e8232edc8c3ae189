//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go

package main

import (
	"github.com/google/wire"

	appcollection "github.com/xiebiao/bookcollection/internal/application/collection"
	"github.com/xiebiao/bookcollection/internal/infrastructure/config"
	"github.com/xiebiao/bookcollection/internal/interface/http/handler"
)

// infrastructureSet 基础设施层依赖
// 包含：配置加载、日志、图书目录数据源
var infrastructureSet = wire.NewSet(
	config.Load,
	provideLogger,
	provideCatalogSource,
)

// applicationSet 应用层依赖
// 包含：集合登记表与所有Use Case
var applicationSet = wire.NewSet(
	provideDefaultCapacity,
	appcollection.NewRegistry,
	appcollection.NewCreateCollectionUseCase,
	appcollection.NewGetCollectionUseCase,
	appcollection.NewListCollectionsUseCase,
	appcollection.NewDeleteCollectionUseCase,
	appcollection.NewAddBookUseCase,
	appcollection.NewFindBookUseCase,
	appcollection.NewChangePriceUseCase,
	appcollection.NewChangeStockUseCase,
	appcollection.NewMergeCollectionsUseCase,
	appcollection.NewImportBooksUseCase,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewCollectionHandler,
)

// InitializeApp 初始化整个应用
// 返回的cleanup按依赖逆序释放资源(目录库连接、日志文件)
func InitializeApp() (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		applicationSet,
		handlerSet,
		provideGinEngine,
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
