package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcollection "github.com/xiebiao/bookcollection/internal/application/collection"
	"github.com/xiebiao/bookcollection/internal/domain/book"
	"github.com/xiebiao/bookcollection/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

type catalogStub map[string]*book.Book

func (s catalogStub) FindByISBNs(_ context.Context, isbns []string) ([]*book.Book, error) {
	var out []*book.Book
	for _, isbn := range isbns {
		if b, ok := s[isbn]; ok {
			out = append(out, b.Clone())
		}
	}
	return out, nil
}

// envelope 统一响应结构
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	registry := appcollection.NewRegistry()
	source := catalogStub{
		"9787111544937": book.NewBook("9787111544937", "Go程序设计语言", "Donovan", 8900, 3),
	}

	h := NewCollectionHandler(
		appcollection.NewCreateCollectionUseCase(registry, 10),
		appcollection.NewGetCollectionUseCase(registry),
		appcollection.NewListCollectionsUseCase(registry),
		appcollection.NewDeleteCollectionUseCase(registry),
		appcollection.NewAddBookUseCase(registry),
		appcollection.NewFindBookUseCase(registry),
		appcollection.NewChangePriceUseCase(registry),
		appcollection.NewChangeStockUseCase(registry),
		appcollection.NewMergeCollectionsUseCase(registry),
		appcollection.NewImportBooksUseCase(registry, source),
	)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) envelope {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decode[T any](t *testing.T, resp envelope) T {
	t.Helper()
	require.Equal(t, 0, resp.Code, resp.Message)
	var v T
	require.NoError(t, json.Unmarshal(resp.Data, &v))
	return v
}

func createCollection(t *testing.T, r *gin.Engine, capacity int) string {
	t.Helper()
	resp := do(t, r, http.MethodPost, "/api/v1/collections", gin.H{"name": "书架", "capacity": capacity})
	return decode[dto.CollectionResponse](t, resp).ID
}

func addBook(t *testing.T, r *gin.Engine, id, isbn string, price int64, stock int) envelope {
	t.Helper()
	return do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/books", gin.H{
		"isbn": isbn, "title": "书名-" + isbn, "author": "作者", "price": price, "stock": stock,
	})
}

func TestCollectionHandler_Lifecycle(t *testing.T) {
	r := newTestRouter(t)

	id := createCollection(t, r, 2)

	book1 := decode[dto.BookResponse](t, addBook(t, r, id, "111", 1050, 2))
	assert.Equal(t, "10.50", book1.PriceYuan)
	assert.Equal(t, int64(2100), book1.StockValue)

	decode[dto.BookResponse](t, addBook(t, r, id, "222", 500, 1))

	// 重复优先于已满
	resp := addBook(t, r, id, "111", 1, 1)
	assert.Equal(t, apperrors.ErrCodeISBNDuplicate, resp.Code)
	assert.Contains(t, resp.Message, "书名-111")

	resp = addBook(t, r, id, "333", 1, 1)
	assert.Equal(t, apperrors.ErrCodeCollectionFull, resp.Code)

	detail := decode[dto.CollectionDetailResponse](t, do(t, r, http.MethodGet, "/api/v1/collections/"+id, nil))
	assert.Equal(t, 2, detail.Size)
	assert.Equal(t, int64(2600), detail.TotalStockValue)
	assert.Equal(t, "26.00", detail.TotalStockValueYuan)
	require.Len(t, detail.Books, 2)
	assert.Equal(t, "111", detail.Books[0].ISBN)

	at := decode[dto.BookResponse](t, do(t, r, http.MethodGet, "/api/v1/collections/"+id+"/positions/1", nil))
	assert.Equal(t, "222", at.ISBN)

	resp = do(t, r, http.MethodGet, "/api/v1/collections/"+id+"/positions/2", nil)
	assert.Equal(t, apperrors.ErrCodeIndexOutOfRange, resp.Code)

	resp = do(t, r, http.MethodGet, "/api/v1/collections/"+id+"/positions/abc", nil)
	assert.Equal(t, apperrors.ErrCodeInvalidParams, resp.Code)

	found := decode[dto.BookResponse](t, do(t, r, http.MethodGet, "/api/v1/collections/"+id+"/books/222", nil))
	assert.Equal(t, 1, found.Stock)

	resp = do(t, r, http.MethodGet, "/api/v1/collections/"+id+"/books/999", nil)
	assert.Equal(t, apperrors.ErrCodeBookNotFound, resp.Code)

	list := decode[dto.ListCollectionsResponse](t, do(t, r, http.MethodGet, "/api/v1/collections", nil))
	assert.Equal(t, 1, list.Total)

	resp = do(t, r, http.MethodDelete, "/api/v1/collections/"+id, nil)
	assert.Equal(t, 0, resp.Code)

	resp = do(t, r, http.MethodGet, "/api/v1/collections/"+id, nil)
	assert.Equal(t, apperrors.ErrCodeCollectionNotFound, resp.Code)
}

func TestCollectionHandler_PriceAndStock(t *testing.T) {
	r := newTestRouter(t)
	id := createCollection(t, r, 2)
	decode[dto.BookResponse](t, addBook(t, r, id, "111", 1000, 2))

	b := decode[dto.BookResponse](t, do(t, r, http.MethodPut, "/api/v1/collections/"+id+"/books/111/price", gin.H{"price": 0}))
	assert.Equal(t, int64(0), b.Price)

	resp := do(t, r, http.MethodPut, "/api/v1/collections/"+id+"/books/111/price", gin.H{"price": -5})
	assert.Equal(t, apperrors.ErrCodeInvalidPrice, resp.Code)

	resp = do(t, r, http.MethodPut, "/api/v1/collections/"+id+"/books/111/price", gin.H{})
	assert.Equal(t, apperrors.ErrCodeInvalidParams, resp.Code)

	b = decode[dto.BookResponse](t, do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/books/111/stock", gin.H{"delta": -2}))
	assert.Equal(t, 0, b.Stock)

	resp = do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/books/111/stock", gin.H{"delta": -1})
	assert.Equal(t, apperrors.ErrCodeInsufficientStock, resp.Code)

	resp = do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/books/999/stock", gin.H{"delta": 1})
	assert.Equal(t, apperrors.ErrCodeBookNotFound, resp.Code)
}

func TestCollectionHandler_CreateValidation(t *testing.T) {
	r := newTestRouter(t)

	resp := do(t, r, http.MethodPost, "/api/v1/collections", gin.H{"capacity": 201})
	assert.Equal(t, apperrors.ErrCodeInvalidParams, resp.Code)

	c := decode[dto.CollectionResponse](t, do(t, r, http.MethodPost, "/api/v1/collections", gin.H{}))
	assert.Equal(t, 10, c.Capacity)

	c = decode[dto.CollectionResponse](t, do(t, r, http.MethodPost, "/api/v1/collections", gin.H{"capacity": 0}))
	assert.Equal(t, 0, c.Capacity)
}

func TestCollectionHandler_Merge(t *testing.T) {
	r := newTestRouter(t)

	left := createCollection(t, r, 2)
	decode[dto.BookResponse](t, addBook(t, r, left, "X", 1000, 2))
	decode[dto.BookResponse](t, addBook(t, r, left, "Y", 500, 1))

	right := createCollection(t, r, 2)
	decode[dto.BookResponse](t, addBook(t, r, right, "X", 800, 3))
	decode[dto.BookResponse](t, addBook(t, r, right, "Z", 300, 4))

	merged := decode[dto.CollectionDetailResponse](t, do(t, r, http.MethodPost, "/api/v1/collections/merge", gin.H{
		"left_id": left, "right_id": right, "name": "合并",
	}))
	assert.Equal(t, 4, merged.Capacity)
	require.Len(t, merged.Books, 3)
	assert.Equal(t, "X", merged.Books[0].ISBN)
	assert.Equal(t, int64(800), merged.Books[0].Price)
	assert.Equal(t, 5, merged.Books[0].Stock)

	resp := do(t, r, http.MethodPost, "/api/v1/collections/merge", gin.H{"left_id": left, "right_id": "missing"})
	assert.Equal(t, apperrors.ErrCodeCollectionNotFound, resp.Code)
}

func TestCollectionHandler_Import(t *testing.T) {
	r := newTestRouter(t)
	id := createCollection(t, r, 5)

	result := decode[dto.ImportBooksResponse](t, do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/import", gin.H{
		"isbns": []string{"9787111544937", "0000000000000"},
	}))
	require.Len(t, result.Imported, 1)
	assert.Equal(t, "Go程序设计语言", result.Imported[0].Title)
	assert.Equal(t, []string{"0000000000000"}, result.Missing)
	assert.Equal(t, 1, result.Collection.Size)

	resp := do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/import", gin.H{"isbns": []string{"9787111544937"}})
	assert.Equal(t, apperrors.ErrCodeISBNDuplicate, resp.Code)

	resp = do(t, r, http.MethodPost, "/api/v1/collections/"+id+"/import", gin.H{"isbns": []string{}})
	assert.Equal(t, apperrors.ErrCodeInvalidParams, resp.Code)
}
