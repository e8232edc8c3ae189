package collection

import (
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

// 集合领域错误定义
// 具体实例通过WithDetail附带ISBN、书名或下标,errors.Is按错误码匹配下列预定义错误
var (
	// ErrInvalidCapacity 容量超出[0, Limit]
	ErrInvalidCapacity = apperrors.New(apperrors.ErrCodeInvalidCapacity, "集合容量非法")

	// ErrInvalidBook 图书为空
	ErrInvalidBook = apperrors.New(apperrors.ErrCodeInvalidBook, "图书不能为空")

	// ErrDuplicateBook 集合中已有相同ISBN的图书
	ErrDuplicateBook = apperrors.New(apperrors.ErrCodeISBNDuplicate, "图书已在集合中")

	// ErrCollectionFull 集合已满
	ErrCollectionFull = apperrors.New(apperrors.ErrCodeCollectionFull, "集合已满,无法继续添加图书")

	// ErrBookNotFound 集合中不存在该ISBN
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrIndexOutOfRange 下标越界
	ErrIndexOutOfRange = apperrors.New(apperrors.ErrCodeIndexOutOfRange, "下标越界")
)
