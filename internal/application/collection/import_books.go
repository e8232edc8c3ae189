package collection

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/domain/collection"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
	"github.com/xiebiao/bookcollection/pkg/metrics"
	"github.com/xiebiao/bookcollection/pkg/tracing"
)

// ImportBooksUseCase 从图书目录按ISBN批量导入图书
// 设计说明:
// 1. 目录查询在锁外进行,避免外部调用阻塞其他集合操作
// 2. 导入是原子的:任一本重复或容量不足时整批拒绝,集合不变
// 3. 目录中不存在的ISBN不算错误,在响应的Missing中返回
type ImportBooksUseCase struct {
	registry *Registry
	source   book.Source
}

func NewImportBooksUseCase(registry *Registry, source book.Source) *ImportBooksUseCase {
	return &ImportBooksUseCase{
		registry: registry,
		source:   source,
	}
}

// ImportBooksRequest 导入请求DTO
type ImportBooksRequest struct {
	CollectionID string
	ISBNs        []string
}

// ImportBooksResponse 导入结果
type ImportBooksResponse struct {
	Imported   []BookItem        `json:"imported"`
	Missing    []string          `json:"missing"`
	Collection CollectionSummary `json:"collection"`
}

func (uc *ImportBooksUseCase) Execute(ctx context.Context, req ImportBooksRequest) (resp *ImportBooksResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, "collection", "ImportBooks")
	defer span.End()
	defer func() {
		record("import", err)
		if err != nil {
			tracing.RecordError(span, err)
		}
	}()

	isbns := dedupe(req.ISBNs)
	if len(isbns) == 0 {
		return nil, apperrors.ErrInvalidParams.WithDetail("isbns不能为空")
	}
	span.SetAttributes(
		attribute.String("collection.id", req.CollectionID),
		attribute.Int("import.requested", len(isbns)),
	)

	// 1. 先确认集合存在,不存在时不访问目录
	if err := uc.registry.with(req.CollectionID, func(*entry) error { return nil }); err != nil {
		return nil, err
	}

	// 2. 查询目录
	books, err := uc.source.FindByISBNs(ctx, isbns)
	if err != nil {
		slog.WarnContext(ctx, "目录查询失败",
			"collection_id", req.CollectionID,
			"trace_id", tracing.ExtractTraceID(ctx),
			"error", err,
		)
		return nil, err
	}
	for _, b := range books {
		if err := b.Validate(); err != nil {
			return nil, err
		}
	}

	// 3. 锁内预检查后整批加入
	resp = &ImportBooksResponse{
		Imported: make([]BookItem, 0, len(books)),
		Missing:  missing(isbns, books),
	}
	err = uc.registry.with(req.CollectionID, func(e *entry) error {
		batch := make(map[string]bool, len(books))
		for _, b := range books {
			if e.coll.Contains(b.Key()) || batch[b.Key()] {
				return collection.ErrDuplicateBook.WithDetail("《%s》(isbn=%s)", b.Title, b.Key())
			}
			batch[b.Key()] = true
		}
		if free := e.coll.Capacity() - e.coll.Size(); len(books) > free {
			return collection.ErrCollectionFull.WithDetail("capacity=%d free=%d importing=%d",
				e.coll.Capacity(), free, len(books))
		}

		for _, b := range books {
			if err := e.coll.Add(b); err != nil {
				return err
			}
			resp.Imported = append(resp.Imported, toBookItem(b))
		}
		resp.Collection = e.summary()
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.AddCounter(metrics.BooksImportedTotal, float64(len(resp.Imported)))
	span.SetAttributes(attribute.Int("import.imported", len(resp.Imported)))
	if len(resp.Missing) > 0 {
		slog.WarnContext(ctx, "部分ISBN在目录中不存在", "collection_id", req.CollectionID, "missing", resp.Missing)
	}

	return resp, nil
}

// dedupe 去除空串与重复ISBN,保持原顺序
func dedupe(isbns []string) []string {
	seen := make(map[string]bool, len(isbns))
	out := make([]string, 0, len(isbns))
	for _, isbn := range isbns {
		if isbn == "" || seen[isbn] {
			continue
		}
		seen[isbn] = true
		out = append(out, isbn)
	}
	return out
}

func missing(isbns []string, found []*book.Book) []string {
	got := make(map[string]bool, len(found))
	for _, b := range found {
		got[b.Key()] = true
	}
	out := []string{}
	for _, isbn := range isbns {
		if !got[isbn] {
			out = append(out, isbn)
		}
	}
	return out
}
