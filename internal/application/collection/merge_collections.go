package collection

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcollection/internal/domain/collection"
	"github.com/xiebiao/bookcollection/pkg/metrics"
	"github.com/xiebiao/bookcollection/pkg/tracing"
)

// MergeCollectionsUseCase 合并两个已登记的集合,结果登记为新集合
// 设计说明:
// 1. 两个输入集合在同一次加锁内读取,合并过程中不会被其他请求修改
// 2. 合并结果与输入互不影响,输入集合保持不变
// 3. 合并失败(如超过容量上限)时不登记任何集合
type MergeCollectionsUseCase struct {
	registry *Registry
}

func NewMergeCollectionsUseCase(registry *Registry) *MergeCollectionsUseCase {
	return &MergeCollectionsUseCase{registry: registry}
}

// MergeCollectionsRequest 合并请求DTO
type MergeCollectionsRequest struct {
	LeftID  string
	RightID string
	Name    string // 新集合名称
}

func (uc *MergeCollectionsUseCase) Execute(ctx context.Context, req MergeCollectionsRequest) (detail *CollectionDetail, err error) {
	ctx, span := tracing.StartSpan(ctx, "collection", "MergeCollections")
	defer span.End()
	span.SetAttributes(
		attribute.String("collection.left_id", req.LeftID),
		attribute.String("collection.right_id", req.RightID),
	)

	start := time.Now()
	defer func() {
		metrics.ObserveHistogram(metrics.MergeDuration, time.Since(start).Seconds())
		record("merge", err)
		if err != nil {
			tracing.RecordError(span, err)
		}
	}()

	var merged *collection.Collection
	err = uc.registry.withPair(req.LeftID, req.RightID, func(left, right *entry) error {
		var err error
		merged, err = collection.Merge(left.coll, right.coll)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 登记前读取图书,登记后merged可能被并发修改
	books := merged.Books()
	s := uc.registry.Put(req.Name, merged)

	span.SetAttributes(attribute.Int("collection.merged_size", s.Size))
	slog.InfoContext(ctx, "集合已合并",
		"left_id", req.LeftID,
		"right_id", req.RightID,
		"collection_id", s.ID,
		"size", s.Size,
		"trace_id", tracing.ExtractTraceID(ctx),
	)

	items := make([]BookItem, len(books))
	for i, b := range books {
		items[i] = toBookItem(b)
	}
	return &CollectionDetail{CollectionSummary: s, Books: items}, nil
}
