package collection

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookcollection/internal/domain/book"
)

// AddBookUseCase 向集合添加图书
type AddBookUseCase struct {
	registry *Registry
}

func NewAddBookUseCase(registry *Registry) *AddBookUseCase {
	return &AddBookUseCase{registry: registry}
}

// AddBookRequest 添加请求DTO
type AddBookRequest struct {
	CollectionID string
	ISBN         string
	Title        string
	Author       string
	Price        int64 // 价格(分)
	Stock        int
}

// Execute 执行添加
// 1. 图书字段校验(ISBN非空、价格与库存非负)
// 2. 重复与容量检查由Collection.Add负责
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (item *BookItem, err error) {
	defer func() { record("add_book", err) }()

	b := book.NewBook(req.ISBN, req.Title, req.Author, req.Price, req.Stock)
	if err := b.Validate(); err != nil {
		return nil, err
	}

	err = uc.registry.with(req.CollectionID, func(e *entry) error {
		if err := e.coll.Add(b); err != nil {
			return err
		}
		// b已归集合所有,在锁内生成DTO
		v := toBookItem(b)
		item = &v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "图书已加入集合", "collection_id", req.CollectionID, "isbn", req.ISBN)
	return item, nil
}
