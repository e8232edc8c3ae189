// Package collection 容量受限的图书集合
//
// Collection按插入顺序保存ISBN互不重复的图书,容量在创建时确定且不超过Limit。
// 集合不是并发安全的:多个goroutine共享同一集合时由调用方串行化访问。
package collection

import (
	"github.com/xiebiao/bookcollection/internal/domain/book"
)

// Limit 集合容量上限
const Limit = 200

// Collection 图书集合(聚合根)
// 不变量:
// 1. len(books) <= capacity <= Limit
// 2. books中ISBN互不重复,index[isbn]是其在books中的位置
type Collection struct {
	books    []*book.Book
	index    map[string]int
	capacity int
}

// New 创建指定容量的空集合
func New(capacity int) (*Collection, error) {
	if capacity < 0 || capacity > Limit {
		return nil, ErrInvalidCapacity.WithDetail("capacity=%d limit=%d", capacity, Limit)
	}
	return &Collection{
		books:    make([]*book.Book, 0, capacity),
		index:    make(map[string]int, capacity),
		capacity: capacity,
	}, nil
}

// Size 当前图书数量
func (c *Collection) Size() int {
	return len(c.books)
}

// Capacity 集合容量
func (c *Collection) Capacity() int {
	return c.capacity
}

// TotalStockValue 所有图书库存价值之和(分)
func (c *Collection) TotalStockValue() int64 {
	var sum int64
	for _, b := range c.books {
		sum += b.StockValue()
	}
	return sum
}

// Add 添加图书
// 先检查ISBN重复,再检查容量:集合已满时添加重复图书仍返回ErrDuplicateBook。
// 添加成功后集合持有b,调用方不应再直接修改它。
func (c *Collection) Add(b *book.Book) error {
	if b == nil {
		return ErrInvalidBook
	}
	if _, ok := c.find(b.Key()); ok {
		return ErrDuplicateBook.WithDetail("《%s》(isbn=%s)", b.Title, b.Key())
	}
	if len(c.books) >= c.capacity {
		return ErrCollectionFull.WithDetail("capacity=%d", c.capacity)
	}

	c.index[b.Key()] = len(c.books)
	c.books = append(c.books, b)
	return nil
}

// At 返回第i本图书(按加入顺序)
func (c *Collection) At(i int) (*book.Book, error) {
	if i < 0 || i >= len(c.books) {
		return nil, ErrIndexOutOfRange.WithDetail("index=%d size=%d", i, len(c.books))
	}
	return c.books[i], nil
}

// Get 按ISBN查找图书
func (c *Collection) Get(isbn string) (*book.Book, error) {
	b, ok := c.find(isbn)
	if !ok {
		return nil, ErrBookNotFound.WithDetail("isbn=%s", isbn)
	}
	return b, nil
}

// Contains 集合中是否存在该ISBN
func (c *Collection) Contains(isbn string) bool {
	_, ok := c.find(isbn)
	return ok
}

// ChangePrice 修改图书价格
// 价格校验由图书自身负责
func (c *Collection) ChangePrice(isbn string, price int64) error {
	b, err := c.Get(isbn)
	if err != nil {
		return err
	}
	return b.SetPrice(price)
}

// ChangeStock 按增量调整图书库存
// 库存不足时返回book.ErrInsufficientStock,库存保持不变
func (c *Collection) ChangeStock(isbn string, delta int) error {
	b, err := c.Get(isbn)
	if err != nil {
		return err
	}
	return b.ChangeStock(delta)
}

// Books 按加入顺序返回所有图书的副本
func (c *Collection) Books() []*book.Book {
	out := make([]*book.Book, len(c.books))
	for i, b := range c.books {
		out[i] = b.Clone()
	}
	return out
}

func (c *Collection) find(isbn string) (*book.Book, bool) {
	i, ok := c.index[isbn]
	if !ok {
		return nil, false
	}
	return c.books[i], true
}
