package collection

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookcollection/internal/domain/book"
)

// GetCollectionUseCase 查询集合详情
type GetCollectionUseCase struct {
	registry *Registry
}

func NewGetCollectionUseCase(registry *Registry) *GetCollectionUseCase {
	return &GetCollectionUseCase{registry: registry}
}

// Execute 返回集合摘要与按加入顺序排列的图书
func (uc *GetCollectionUseCase) Execute(_ context.Context, id string) (*CollectionDetail, error) {
	var detail *CollectionDetail
	err := uc.registry.with(id, func(e *entry) error {
		detail = e.detail()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return detail, nil
}

// ListCollectionsUseCase 集合列表
type ListCollectionsUseCase struct {
	registry *Registry
}

func NewListCollectionsUseCase(registry *Registry) *ListCollectionsUseCase {
	return &ListCollectionsUseCase{registry: registry}
}

func (uc *ListCollectionsUseCase) Execute(_ context.Context) []CollectionSummary {
	return uc.registry.List()
}

// DeleteCollectionUseCase 注销集合
type DeleteCollectionUseCase struct {
	registry *Registry
}

func NewDeleteCollectionUseCase(registry *Registry) *DeleteCollectionUseCase {
	return &DeleteCollectionUseCase{registry: registry}
}

func (uc *DeleteCollectionUseCase) Execute(ctx context.Context, id string) (err error) {
	defer func() { record("delete", err) }()

	if err := uc.registry.Delete(id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "集合已注销", "collection_id", id)
	return nil
}

// FindBookUseCase 在集合中查找图书(按ISBN或按位置)
type FindBookUseCase struct {
	registry *Registry
}

func NewFindBookUseCase(registry *Registry) *FindBookUseCase {
	return &FindBookUseCase{registry: registry}
}

// ByISBN 按ISBN查找
func (uc *FindBookUseCase) ByISBN(_ context.Context, collectionID, isbn string) (*BookItem, error) {
	return uc.find(collectionID, func(e *entry) (*book.Book, error) {
		return e.coll.Get(isbn)
	})
}

// At 按加入顺序的下标查找(从0开始)
func (uc *FindBookUseCase) At(_ context.Context, collectionID string, index int) (*BookItem, error) {
	return uc.find(collectionID, func(e *entry) (*book.Book, error) {
		return e.coll.At(index)
	})
}

func (uc *FindBookUseCase) find(collectionID string, get func(e *entry) (*book.Book, error)) (*BookItem, error) {
	var item BookItem
	err := uc.registry.with(collectionID, func(e *entry) error {
		b, err := get(e)
		if err != nil {
			return err
		}
		item = toBookItem(b)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
