package dto

import "fmt"

// CreateCollectionRequest HTTP创建集合请求
// capacity省略时使用配置的默认容量
type CreateCollectionRequest struct {
	Name     string `json:"name" binding:"max=100" example:"计算机书架"`
	Capacity *int   `json:"capacity" binding:"omitempty,min=0,max=200" example:"50"`
}

// AddBookRequest HTTP添加图书请求
type AddBookRequest struct {
	ISBN   string `json:"isbn" binding:"required,max=20" example:"9787115428028"`
	Title  string `json:"title" binding:"required,max=200" example:"Go语言实战"`
	Author string `json:"author" binding:"max=100" example:"威廉·肯尼迪"`
	Price  int64  `json:"price" binding:"min=0" example:"5900"` // 价格(分),59.00元
	Stock  int    `json:"stock" binding:"min=0" example:"100"`
}

// ChangePriceRequest HTTP改价请求
// 负价格交给领域层校验,返回价格非法错误码
type ChangePriceRequest struct {
	Price *int64 `json:"price" binding:"required" example:"4900"`
}

// ChangeStockRequest HTTP库存调整请求
// delta为正表示补货,为负表示售出
type ChangeStockRequest struct {
	Delta *int `json:"delta" binding:"required" example:"-2"`
}

// MergeCollectionsRequest HTTP合并请求
type MergeCollectionsRequest struct {
	LeftID  string `json:"left_id" binding:"required" example:"6f1c..."`
	RightID string `json:"right_id" binding:"required" example:"a9e2..."`
	Name    string `json:"name" binding:"max=100" example:"合并书架"`
}

// ImportBooksRequest HTTP导入请求
type ImportBooksRequest struct {
	ISBNs []string `json:"isbns" binding:"required,min=1,max=200" example:"9787115428028,9787111544937"`
}

// BookResponse HTTP图书响应
type BookResponse struct {
	ISBN           string `json:"isbn" example:"9787115428028"`
	Title          string `json:"title" example:"Go语言实战"`
	Author         string `json:"author" example:"威廉·肯尼迪"`
	Price          int64  `json:"price" example:"5900"`       // 价格(分)
	PriceYuan      string `json:"price_yuan" example:"59.00"` // 价格(元),方便前端显示
	Stock          int    `json:"stock" example:"100"`
	StockValue     int64  `json:"stock_value" example:"590000"` // 库存价值(分)
	StockValueYuan string `json:"stock_value_yuan" example:"5900.00"`
}

// CollectionResponse HTTP集合摘要
type CollectionResponse struct {
	ID                  string `json:"id" example:"6f1c2d0e-5a7b-4c1d-9e3f-0a1b2c3d4e5f"`
	Name                string `json:"name" example:"计算机书架"`
	Size                int    `json:"size" example:"2"`
	Capacity            int    `json:"capacity" example:"50"`
	TotalStockValue     int64  `json:"total_stock_value" example:"590000"`
	TotalStockValueYuan string `json:"total_stock_value_yuan" example:"5900.00"`
	CreatedAt           string `json:"created_at" example:"2024-01-15 10:30:00"`
}

// CollectionDetailResponse HTTP集合详情
type CollectionDetailResponse struct {
	CollectionResponse
	Books []BookResponse `json:"books"`
}

// ListCollectionsResponse HTTP集合列表
type ListCollectionsResponse struct {
	List  []CollectionResponse `json:"list"`
	Total int                  `json:"total" example:"1"`
}

// ImportBooksResponse HTTP导入结果
type ImportBooksResponse struct {
	Imported   []BookResponse     `json:"imported"`
	Missing    []string           `json:"missing"`
	Collection CollectionResponse `json:"collection"`
}

// FormatPriceYuan 格式化价格(分→元)
// 例如:5900分 → "59.00"
func FormatPriceYuan(priceFen int64) string {
	sign := ""
	if priceFen < 0 {
		sign = "-"
		priceFen = -priceFen
	}
	return fmt.Sprintf("%s%d.%02d", sign, priceFen/100, priceFen%100)
}
