package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// catalogSource 从books表读取图书(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的Source接口
// 2. 负责GORM模型到domain实体的转换
// 3. 软删除的记录由GORM自动过滤
type catalogSource struct {
	db *gorm.DB
}

// NewCatalogSource 创建目录数据源
func NewCatalogSource(db *gorm.DB) book.Source {
	return &catalogSource{db: db}
}

// FindByISBNs 批量查询图书,结果按传入ISBN的顺序排列,不存在的ISBN被跳过
func (r *catalogSource) FindByISBNs(ctx context.Context, isbns []string) ([]*book.Book, error) {
	if len(isbns) == 0 {
		return nil, nil
	}

	var models []BookModel
	err := r.db.WithContext(ctx).
		Where("isbn IN ?", isbns).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeDatabaseError, "查询目录图书失败")
	}

	return orderByISBNs(models, isbns), nil
}

// orderByISBNs 按请求顺序重排查询结果
func orderByISBNs(models []BookModel, isbns []string) []*book.Book {
	byISBN := make(map[string]*BookModel, len(models))
	for i := range models {
		byISBN[models[i].ISBN] = &models[i]
	}

	books := make([]*book.Book, 0, len(models))
	seen := make(map[string]bool, len(isbns))
	for _, isbn := range isbns {
		if seen[isbn] {
			continue
		}
		seen[isbn] = true

		if m, ok := byISBN[isbn]; ok {
			books = append(books, toBookEntity(m))
		}
	}
	return books
}

// toBookEntity GORM模型 → 领域实体
func toBookEntity(m *BookModel) *book.Book {
	return &book.Book{
		ISBN:      m.ISBN,
		Title:     m.Title,
		Author:    m.Author,
		Price:     m.Price,
		Stock:     m.Stock,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
