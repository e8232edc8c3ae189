package collection

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/xiebiao/bookcollection/internal/domain/collection"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
	"github.com/xiebiao/bookcollection/pkg/metrics"
)

// ErrCollectionNotFound 集合未登记
var ErrCollectionNotFound = apperrors.New(apperrors.ErrCodeCollectionNotFound, "集合不存在")

// Registry 已登记的集合(进程内存)
// 设计说明:
// 1. domain层Collection不是并发安全的,HTTP请求并发到达,所有集合操作都在mu下执行
// 2. 集合只保存在内存中,进程退出即丢失
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	id        string
	name      string
	coll      *collection.Collection
	createdAt time.Time
}

// NewRegistry 创建空的集合登记表
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*entry)}
}

// Put 登记集合,返回其ID
func (r *Registry) Put(name string, c *collection.Collection) CollectionSummary {
	e := &entry{
		id:        uuid.NewString(),
		name:      name,
		coll:      c,
		createdAt: time.Now(),
	}

	// 登记后集合可能被并发修改,先取摘要
	s := e.summary()

	r.mu.Lock()
	r.entries[e.id] = e
	r.mu.Unlock()

	metrics.IncGauge(metrics.CollectionsActive)
	return s
}

// with 在锁内对单个集合执行fn
func (r *Registry) with(id string, fn func(e *entry) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return ErrCollectionNotFound.WithDetail("id=%s", id)
	}
	return fn(e)
}

// withPair 在同一次加锁内对两个集合执行fn,两个ID可以相同
func (r *Registry) withPair(a, b string, fn func(ea, eb *entry) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ea, ok := r.entries[a]
	if !ok {
		return ErrCollectionNotFound.WithDetail("id=%s", a)
	}
	eb, ok := r.entries[b]
	if !ok {
		return ErrCollectionNotFound.WithDetail("id=%s", b)
	}
	return fn(ea, eb)
}

// Delete 注销集合
func (r *Registry) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; !ok {
		return ErrCollectionNotFound.WithDetail("id=%s", id)
	}
	delete(r.entries, id)

	metrics.DecGauge(metrics.CollectionsActive)
	return nil
}

// List 按创建时间返回所有集合摘要
func (r *Registry) List() []CollectionSummary {
	r.mu.Lock()
	entries := make([]*entry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].createdAt.Equal(entries[j].createdAt) {
			return entries[i].id < entries[j].id
		}
		return entries[i].createdAt.Before(entries[j].createdAt)
	})

	list := make([]CollectionSummary, len(entries))
	for i, e := range entries {
		list[i] = e.summary()
	}
	r.mu.Unlock()

	return list
}

// Len 已登记集合数量
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (e *entry) summary() CollectionSummary {
	return CollectionSummary{
		ID:              e.id,
		Name:            e.name,
		Size:            e.coll.Size(),
		Capacity:        e.coll.Capacity(),
		TotalStockValue: e.coll.TotalStockValue(),
		CreatedAt:       e.createdAt.Format("2006-01-02 15:04:05"),
	}
}

func (e *entry) detail() *CollectionDetail {
	books := e.coll.Books()
	items := make([]BookItem, len(books))
	for i, b := range books {
		items[i] = toBookItem(b)
	}
	return &CollectionDetail{
		CollectionSummary: e.summary(),
		Books:             items,
	}
}
