package collection

import (
	"strconv"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
	"github.com/xiebiao/bookcollection/pkg/metrics"
)

// BookItem 图书DTO
type BookItem struct {
	ISBN       string `json:"isbn"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	Price      int64  `json:"price"` // 价格(分)
	Stock      int    `json:"stock"`
	StockValue int64  `json:"stock_value"` // 库存价值(分)
}

// CollectionSummary 集合摘要DTO(不含图书列表)
type CollectionSummary struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Size            int    `json:"size"`
	Capacity        int    `json:"capacity"`
	TotalStockValue int64  `json:"total_stock_value"` // 分
	CreatedAt       string `json:"created_at"`
}

// CollectionDetail 集合详情DTO
type CollectionDetail struct {
	CollectionSummary
	Books []BookItem `json:"books"`
}

func toBookItem(b *book.Book) BookItem {
	return BookItem{
		ISBN:       b.ISBN,
		Title:      b.Title,
		Author:     b.Author,
		Price:      b.Price,
		Stock:      b.Stock,
		StockValue: b.StockValue(),
	}
}

// record 记录操作结果指标,失败时以错误码作为result
func record(op string, err error) {
	result := "success"
	if err != nil {
		result = strconv.Itoa(apperrors.GetAppError(err).Code)
	}
	metrics.RecordOperation(op, result)
}
