package collection

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcollection/internal/domain/book"
)

func newBook(isbn string, price int64, stock int) *book.Book {
	return book.NewBook(isbn, "书名-"+isbn, "作者", price, stock)
}

// mustCollection 创建集合并依次加入图书
func mustCollection(t *testing.T, capacity int, books ...*book.Book) *Collection {
	t.Helper()
	c, err := New(capacity)
	require.NoError(t, err)
	for _, b := range books {
		require.NoError(t, c.Add(b))
	}
	return c
}

func TestNew(t *testing.T) {
	for _, capacity := range []int{0, 1, 50, Limit} {
		t.Run(fmt.Sprintf("capacity=%d", capacity), func(t *testing.T) {
			c, err := New(capacity)
			require.NoError(t, err)
			assert.Equal(t, 0, c.Size())
			assert.Equal(t, capacity, c.Capacity())
			assert.Equal(t, int64(0), c.TotalStockValue())
		})
	}
}

func TestNew_InvalidCapacity(t *testing.T) {
	for _, capacity := range []int{Limit + 1, 1000, -1} {
		_, err := New(capacity)
		assert.ErrorIs(t, err, ErrInvalidCapacity, "capacity=%d", capacity)
	}
}

func TestCollection_Add(t *testing.T) {
	c := mustCollection(t, 3)

	b := newBook("111", 1000, 5)
	require.NoError(t, c.Add(b))

	assert.Equal(t, 1, c.Size())
	got, err := c.Get("111")
	require.NoError(t, err)
	assert.Equal(t, *b, *got)
	assert.True(t, c.Contains("111"))
	assert.False(t, c.Contains("222"))
}

func TestCollection_Add_Nil(t *testing.T) {
	c := mustCollection(t, 1)
	assert.ErrorIs(t, c.Add(nil), ErrInvalidBook)
	assert.Equal(t, 0, c.Size())
}

func TestCollection_Add_Duplicate(t *testing.T) {
	c := mustCollection(t, 3, newBook("111", 1000, 5))

	err := c.Add(newBook("111", 500, 1))

	assert.ErrorIs(t, err, ErrDuplicateBook)
	assert.Contains(t, err.Error(), "书名-111")
	assert.Equal(t, 1, c.Size())

	got, _ := c.Get("111")
	assert.Equal(t, int64(1000), got.Price, "原图书不受影响")
}

func TestCollection_Add_DuplicateWinsOverFull(t *testing.T) {
	c := mustCollection(t, 1, newBook("111", 1000, 5))

	err := c.Add(newBook("111", 1000, 5))

	assert.ErrorIs(t, err, ErrDuplicateBook)
	assert.NotErrorIs(t, err, ErrCollectionFull)
}

func TestCollection_Add_Full(t *testing.T) {
	// 容量为1的集合已有一本书,再添加另一本书应失败
	c := mustCollection(t, 1, newBook("111", 1000, 5))

	err := c.Add(newBook("222", 1000, 5))

	assert.ErrorIs(t, err, ErrCollectionFull)
	assert.Equal(t, 1, c.Size())
	assert.False(t, c.Contains("222"))
}

func TestCollection_Add_ZeroCapacity(t *testing.T) {
	c := mustCollection(t, 0)
	assert.ErrorIs(t, c.Add(newBook("111", 1, 1)), ErrCollectionFull)
}

func TestCollection_At(t *testing.T) {
	c := mustCollection(t, 3,
		newBook("111", 100, 1),
		newBook("222", 200, 2),
	)

	first, err := c.At(0)
	require.NoError(t, err)
	assert.Equal(t, "111", first.ISBN)

	second, err := c.At(1)
	require.NoError(t, err)
	assert.Equal(t, "222", second.ISBN)

	for _, i := range []int{-1, 2, 3, 100} {
		_, err := c.At(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index=%d", i)
	}
}

func TestCollection_TotalStockValue(t *testing.T) {
	c := mustCollection(t, 3,
		newBook("111", 1000, 5),
		newBook("222", 250, 4),
		newBook("333", 999, 0),
	)

	assert.Equal(t, int64(5000+1000), c.TotalStockValue())
}

func TestCollection_ChangePrice(t *testing.T) {
	c := mustCollection(t, 2, newBook("111", 1000, 5))

	require.NoError(t, c.ChangePrice("111", 800))
	got, _ := c.Get("111")
	assert.Equal(t, int64(800), got.Price)

	assert.ErrorIs(t, c.ChangePrice("111", -1), book.ErrInvalidPrice)
	assert.Equal(t, int64(800), got.Price)
}

func TestCollection_ChangeStock(t *testing.T) {
	c := mustCollection(t, 2, newBook("111", 1000, 5))

	require.NoError(t, c.ChangeStock("111", 3))
	got, _ := c.Get("111")
	assert.Equal(t, 8, got.Stock)

	require.NoError(t, c.ChangeStock("111", -8))
	assert.Equal(t, 0, got.Stock)
}

func TestCollection_ChangeStock_Insufficient(t *testing.T) {
	c := mustCollection(t, 2, newBook("111", 1000, 5))

	err := c.ChangeStock("111", -6)

	assert.ErrorIs(t, err, book.ErrInsufficientStock)
	got, _ := c.Get("111")
	assert.Equal(t, 5, got.Stock, "库存保持不变")
}

func TestCollection_UpdateMissingBook(t *testing.T) {
	c := mustCollection(t, 2, newBook("111", 1000, 5))

	err := c.ChangePrice("999", 1)
	assert.ErrorIs(t, err, ErrBookNotFound)
	assert.Contains(t, err.Error(), "999")

	assert.ErrorIs(t, c.ChangeStock("999", 1), ErrBookNotFound)

	_, err = c.Get("999")
	assert.ErrorIs(t, err, ErrBookNotFound)

	got, _ := c.Get("111")
	assert.Equal(t, int64(1000), got.Price)
	assert.Equal(t, 5, got.Stock)
}

func TestCollection_BooksReturnsCopiesInOrder(t *testing.T) {
	c := mustCollection(t, 3,
		newBook("333", 1, 1),
		newBook("111", 1, 1),
		newBook("222", 1, 1),
	)

	books := c.Books()
	require.Len(t, books, 3)
	assert.Equal(t, "333", books[0].ISBN)
	assert.Equal(t, "111", books[1].ISBN)
	assert.Equal(t, "222", books[2].ISBN)

	books[0].Stock = 100
	got, _ := c.Get("333")
	assert.Equal(t, 1, got.Stock)
}
