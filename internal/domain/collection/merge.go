package collection

// Merge 合并两个集合,返回新集合
// 规则:
// 1. 新集合容量 = min(a.Size()+b.Size(), Limit)
// 2. 先按顺序加入a中所有图书的副本
// 3. 再处理b中图书的副本:ISBN已存在时库存相加、价格取较低者;否则追加
// 4. 新集合中的图书与a、b互不影响
//
// 任一步失败(如超出Limit导致ErrCollectionFull)立即返回错误,不返回部分结果。
func Merge(a, b *Collection) (*Collection, error) {
	total := a.Size() + b.Size()
	merged, err := New(min(total, Limit))
	if err != nil {
		return nil, err
	}

	for _, src := range a.books {
		if err := merged.Add(src.Clone()); err != nil {
			return nil, err
		}
	}

	for _, src := range b.books {
		copied := src.Clone()

		existing, ok := merged.find(copied.Key())
		if !ok {
			if err := merged.Add(copied); err != nil {
				return nil, err
			}
			continue
		}

		if err := existing.ChangeStock(copied.Stock); err != nil {
			return nil, err
		}
		if err := existing.SetPrice(min(existing.Price, copied.Price)); err != nil {
			return nil, err
		}
	}

	return merged, nil
}
