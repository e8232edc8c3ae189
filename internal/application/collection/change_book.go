package collection

import (
	"context"
)

// ChangePriceUseCase 修改集合中图书的价格
type ChangePriceUseCase struct {
	registry *Registry
}

func NewChangePriceUseCase(registry *Registry) *ChangePriceUseCase {
	return &ChangePriceUseCase{registry: registry}
}

type ChangePriceRequest struct {
	CollectionID string
	ISBN         string
	Price        int64 // 新价格(分)
}

func (uc *ChangePriceUseCase) Execute(_ context.Context, req ChangePriceRequest) (item *BookItem, err error) {
	defer func() { record("change_price", err) }()

	err = uc.registry.with(req.CollectionID, func(e *entry) error {
		if err := e.coll.ChangePrice(req.ISBN, req.Price); err != nil {
			return err
		}
		return snapshot(e, req.ISBN, &item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ChangeStockUseCase 按增量调整库存
// delta为正表示补货,为负表示售出;库存不足时返回ErrInsufficientStock,库存不变
type ChangeStockUseCase struct {
	registry *Registry
}

func NewChangeStockUseCase(registry *Registry) *ChangeStockUseCase {
	return &ChangeStockUseCase{registry: registry}
}

type ChangeStockRequest struct {
	CollectionID string
	ISBN         string
	Delta        int
}

func (uc *ChangeStockUseCase) Execute(_ context.Context, req ChangeStockRequest) (item *BookItem, err error) {
	defer func() { record("change_stock", err) }()

	err = uc.registry.with(req.CollectionID, func(e *entry) error {
		if err := e.coll.ChangeStock(req.ISBN, req.Delta); err != nil {
			return err
		}
		return snapshot(e, req.ISBN, &item)
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// snapshot 在锁内读取修改后的图书
func snapshot(e *entry, isbn string, out **BookItem) error {
	b, err := e.coll.Get(isbn)
	if err != nil {
		return err
	}
	v := toBookItem(b)
	*out = &v
	return nil
}
