package book

import (
	"time"
)

// Book 图书库存记录
// 设计说明:
// 1. ISBN是业务唯一标识,创建后不可修改
// 2. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 3. 库存与价格都不能为负数
type Book struct {
	ISBN      string // ISBN号(国际标准书号)
	Title     string // 书名
	Author    string // 作者
	Price     int64  // 价格(单位:分,1元=100分)
	Stock     int    // 库存数量
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBook 创建新图书(工厂方法)
// 价格与库存的合法性由Validate校验
func NewBook(isbn, title, author string, price int64, stock int) *Book {
	now := time.Now()
	return &Book{
		ISBN:      isbn,
		Title:     title,
		Author:    author,
		Price:     price,
		Stock:     stock,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Key 返回图书在集合中的唯一键(ISBN)
func (b *Book) Key() string {
	return b.ISBN
}

// Validate 校验图书字段
func (b *Book) Validate() error {
	if b.ISBN == "" {
		return ErrInvalidISBN
	}
	if b.Price < 0 {
		return ErrInvalidPrice
	}
	if b.Stock < 0 {
		return ErrInvalidStock
	}
	return nil
}

// SetPrice 设置价格
// 业务规则:价格不能为负数
func (b *Book) SetPrice(price int64) error {
	if price < 0 {
		return ErrInvalidPrice.WithDetail("isbn=%s price=%d", b.ISBN, price)
	}
	b.Price = price
	b.UpdatedAt = time.Now()
	return nil
}

// ChangeStock 按增量调整库存
// delta为正数表示补货,负数表示售出
// 业务规则:调整后库存不能为负数,失败时库存保持不变
func (b *Book) ChangeStock(delta int) error {
	if b.Stock+delta < 0 {
		return ErrInsufficientStock.WithDetail("isbn=%s stock=%d delta=%d", b.ISBN, b.Stock, delta)
	}
	b.Stock += delta
	b.UpdatedAt = time.Now()
	return nil
}

// StockValue 库存总价值(分) = 单价 * 库存
func (b *Book) StockValue() int64 {
	return b.Price * int64(b.Stock)
}

// Clone 复制出一本状态完全相同、互不影响的图书
func (b *Book) Clone() *Book {
	c := *b
	return &c
}
