package collection

import (
	"context"
	"log/slog"

	"github.com/xiebiao/bookcollection/internal/domain/collection"
)

// DefaultCapacity 创建集合时未指定容量使用的默认值(由配置注入)
type DefaultCapacity int

// CreateCollectionUseCase 创建集合用例
type CreateCollectionUseCase struct {
	registry        *Registry
	defaultCapacity int
}

// NewCreateCollectionUseCase 创建用例
func NewCreateCollectionUseCase(registry *Registry, defaultCapacity DefaultCapacity) *CreateCollectionUseCase {
	return &CreateCollectionUseCase{
		registry:        registry,
		defaultCapacity: int(defaultCapacity),
	}
}

// CreateCollectionRequest 创建请求DTO
type CreateCollectionRequest struct {
	Name     string
	Capacity *int // nil时使用默认容量,0是合法容量
}

// Execute 执行创建用例
// 容量校验由domain层collection.New负责
func (uc *CreateCollectionUseCase) Execute(ctx context.Context, req CreateCollectionRequest) (summary *CollectionSummary, err error) {
	defer func() { record("create", err) }()

	capacity := uc.defaultCapacity
	if req.Capacity != nil {
		capacity = *req.Capacity
	}

	c, err := collection.New(capacity)
	if err != nil {
		return nil, err
	}

	s := uc.registry.Put(req.Name, c)
	slog.InfoContext(ctx, "集合已创建", "collection_id", s.ID, "name", s.Name, "capacity", s.Capacity)

	return &s, nil
}
