package book

import (
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrInvalidISBN ISBN为空
	ErrInvalidISBN = apperrors.New(apperrors.ErrCodeInvalidBook, "ISBN不能为空")

	// ErrInvalidPrice 无效的价格
	ErrInvalidPrice = apperrors.New(apperrors.ErrCodeInvalidPrice, "价格不能为负数")

	// ErrInvalidStock 无效的库存
	ErrInvalidStock = apperrors.New(apperrors.ErrCodeInvalidStock, "库存不能为负数")

	// ErrInsufficientStock 库存不足
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "库存不足")

	// ErrCatalogUnavailable 图书目录数据源不可用
	ErrCatalogUnavailable = apperrors.New(apperrors.ErrCodeCatalogUnavailable, "图书目录暂不可用")
)
