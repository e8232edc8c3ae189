package book

import (
	"context"
)

// Source 图书目录数据源接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(MySQL目录表)
// 2. 只读:集合本身不做持久化,数据源仅用于批量导入
// 3. 便于在测试中用内存实现替换
type Source interface {
	// FindByISBNs 按ISBN批量查询图书
	// 返回顺序与isbns一致,不存在的ISBN被跳过
	FindByISBNs(ctx context.Context, isbns []string) ([]*Book, error)
}
