package catalog

import (
	"context"

	"github.com/xiebiao/bookcollection/internal/domain/book"
)

// DisabledSource 未配置目录库时使用，所有导入请求返回ErrCatalogUnavailable
type DisabledSource struct{}

func (DisabledSource) FindByISBNs(context.Context, []string) ([]*book.Book, error) {
	return nil, book.ErrCatalogUnavailable.WithDetail("目录导入未启用")
}
