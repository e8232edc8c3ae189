package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appcollection "github.com/xiebiao/bookcollection/internal/application/collection"
	"github.com/xiebiao/bookcollection/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
	"github.com/xiebiao/bookcollection/pkg/response"
)

// CollectionHandler 图书集合HTTP处理器
type CollectionHandler struct {
	createUseCase *appcollection.CreateCollectionUseCase
	getUseCase    *appcollection.GetCollectionUseCase
	listUseCase   *appcollection.ListCollectionsUseCase
	deleteUseCase *appcollection.DeleteCollectionUseCase
	addUseCase    *appcollection.AddBookUseCase
	findUseCase   *appcollection.FindBookUseCase
	priceUseCase  *appcollection.ChangePriceUseCase
	stockUseCase  *appcollection.ChangeStockUseCase
	mergeUseCase  *appcollection.MergeCollectionsUseCase
	importUseCase *appcollection.ImportBooksUseCase
}

// NewCollectionHandler 创建集合处理器
func NewCollectionHandler(
	createUseCase *appcollection.CreateCollectionUseCase,
	getUseCase *appcollection.GetCollectionUseCase,
	listUseCase *appcollection.ListCollectionsUseCase,
	deleteUseCase *appcollection.DeleteCollectionUseCase,
	addUseCase *appcollection.AddBookUseCase,
	findUseCase *appcollection.FindBookUseCase,
	priceUseCase *appcollection.ChangePriceUseCase,
	stockUseCase *appcollection.ChangeStockUseCase,
	mergeUseCase *appcollection.MergeCollectionsUseCase,
	importUseCase *appcollection.ImportBooksUseCase,
) *CollectionHandler {
	return &CollectionHandler{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		deleteUseCase: deleteUseCase,
		addUseCase:    addUseCase,
		findUseCase:   findUseCase,
		priceUseCase:  priceUseCase,
		stockUseCase:  stockUseCase,
		mergeUseCase:  mergeUseCase,
		importUseCase: importUseCase,
	}
}

// RegisterRoutes 注册集合路由
func (h *CollectionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	collections := rg.Group("/collections")
	{
		collections.POST("", h.Create)
		collections.GET("", h.List)
		collections.POST("/merge", h.Merge)
		collections.GET("/:id", h.Get)
		collections.DELETE("/:id", h.Delete)
		collections.POST("/:id/books", h.AddBook)
		collections.GET("/:id/books/:isbn", h.FindBook)
		collections.PUT("/:id/books/:isbn/price", h.ChangePrice)
		collections.POST("/:id/books/:isbn/stock", h.ChangeStock)
		collections.GET("/:id/positions/:index", h.BookAt)
		collections.POST("/:id/import", h.Import)
	}
}

// Create 创建集合
// @Summary      创建集合
// @Description  创建指定容量的空集合,容量范围[0,200],省略时使用默认容量
// @Tags         集合
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateCollectionRequest true "集合信息"
// @Success      200 {object} response.Response{data=dto.CollectionResponse}
// @Failure      200 {object} response.Response "40906 容量非法"
// @Router       /api/v1/collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	var req dto.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.createUseCase.Execute(c.Request.Context(), appcollection.CreateCollectionRequest{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toCollectionResponse(*result))
}

// List 集合列表
// @Summary      集合列表
// @Tags         集合
// @Produce      json
// @Success      200 {object} response.Response{data=dto.ListCollectionsResponse}
// @Router       /api/v1/collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	summaries := h.listUseCase.Execute(c.Request.Context())

	list := make([]dto.CollectionResponse, len(summaries))
	for i, s := range summaries {
		list[i] = toCollectionResponse(s)
	}
	response.Success(c, &dto.ListCollectionsResponse{List: list, Total: len(list)})
}

// Get 集合详情
// @Summary      集合详情
// @Description  返回集合摘要及按加入顺序排列的图书
// @Tags         集合
// @Produce      json
// @Param        id path string true "集合ID"
// @Success      200 {object} response.Response{data=dto.CollectionDetailResponse}
// @Failure      200 {object} response.Response "40404 集合不存在"
// @Router       /api/v1/collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	result, err := h.getUseCase.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toDetailResponse(result))
}

// Delete 注销集合
// @Summary      注销集合
// @Tags         集合
// @Produce      json
// @Param        id path string true "集合ID"
// @Success      200 {object} response.Response
// @Failure      200 {object} response.Response "40404 集合不存在"
// @Router       /api/v1/collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.deleteUseCase.Execute(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

// AddBook 添加图书
// @Summary      添加图书
// @Description  ISBN重复优先于集合已满返回
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id path string true "集合ID"
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40004 图书已在集合中 / 40006 集合已满"
// @Router       /api/v1/collections/{id}/books [post]
func (h *CollectionHandler) AddBook(c *gin.Context) {
	var req dto.AddBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.addUseCase.Execute(c.Request.Context(), appcollection.AddBookRequest{
		CollectionID: c.Param("id"),
		ISBN:         req.ISBN,
		Title:        req.Title,
		Author:       req.Author,
		Price:        req.Price,
		Stock:        req.Stock,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponse(*result))
}

// FindBook 按ISBN查找图书
// @Summary      按ISBN查找图书
// @Tags         图书
// @Produce      json
// @Param        id   path string true "集合ID"
// @Param        isbn path string true "ISBN"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/collections/{id}/books/{isbn} [get]
func (h *CollectionHandler) FindBook(c *gin.Context) {
	result, err := h.findUseCase.ByISBN(c.Request.Context(), c.Param("id"), c.Param("isbn"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponse(*result))
}

// BookAt 按位置查找图书
// @Summary      按位置查找图书
// @Description  位置从0开始,按加入顺序
// @Tags         图书
// @Produce      json
// @Param        id    path string true "集合ID"
// @Param        index path int    true "位置"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40904 下标越界"
// @Router       /api/v1/collections/{id}/positions/{index} [get]
func (h *CollectionHandler) BookAt(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithDetail("index=%s", c.Param("index")))
		return
	}

	result, err := h.findUseCase.At(c.Request.Context(), c.Param("id"), index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponse(*result))
}

// ChangePrice 修改价格
// @Summary      修改价格
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path string true "集合ID"
// @Param        isbn    path string true "ISBN"
// @Param        request body dto.ChangePriceRequest true "新价格(分)"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40402 图书不存在 / 40902 价格非法"
// @Router       /api/v1/collections/{id}/books/{isbn}/price [put]
func (h *CollectionHandler) ChangePrice(c *gin.Context) {
	var req dto.ChangePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.priceUseCase.Execute(c.Request.Context(), appcollection.ChangePriceRequest{
		CollectionID: c.Param("id"),
		ISBN:         c.Param("isbn"),
		Price:        *req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponse(*result))
}

// ChangeStock 调整库存
// @Summary      调整库存
// @Description  delta为正表示补货,为负表示售出;库存不足时库存不变
// @Tags         图书
// @Accept       json
// @Produce      json
// @Param        id      path string true "集合ID"
// @Param        isbn    path string true "ISBN"
// @Param        request body dto.ChangeStockRequest true "库存增量"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40402 图书不存在 / 40001 库存不足"
// @Router       /api/v1/collections/{id}/books/{isbn}/stock [post]
func (h *CollectionHandler) ChangeStock(c *gin.Context) {
	var req dto.ChangeStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.stockUseCase.Execute(c.Request.Context(), appcollection.ChangeStockRequest{
		CollectionID: c.Param("id"),
		ISBN:         c.Param("isbn"),
		Delta:        *req.Delta,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toBookResponse(*result))
}

// Merge 合并集合
// @Summary      合并集合
// @Description  相同ISBN库存相加、价格取较低者,结果登记为新集合,输入集合不变
// @Tags         集合
// @Accept       json
// @Produce      json
// @Param        request body dto.MergeCollectionsRequest true "待合并的集合"
// @Success      200 {object} response.Response{data=dto.CollectionDetailResponse}
// @Failure      200 {object} response.Response "40404 集合不存在 / 40006 集合已满"
// @Router       /api/v1/collections/merge [post]
func (h *CollectionHandler) Merge(c *gin.Context) {
	var req dto.MergeCollectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.mergeUseCase.Execute(c.Request.Context(), appcollection.MergeCollectionsRequest{
		LeftID:  req.LeftID,
		RightID: req.RightID,
		Name:    req.Name,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, toDetailResponse(result))
}

// Import 从目录导入图书
// @Summary      从目录导入图书
// @Description  按ISBN批量导入,整批原子生效;目录中不存在的ISBN在missing中返回
// @Tags         集合
// @Accept       json
// @Produce      json
// @Param        id      path string true "集合ID"
// @Param        request body dto.ImportBooksRequest true "ISBN列表"
// @Success      200 {object} response.Response{data=dto.ImportBooksResponse}
// @Failure      200 {object} response.Response "50003 目录不可用 / 42900 请求过于频繁"
// @Router       /api/v1/collections/{id}/import [post]
func (h *CollectionHandler) Import(c *gin.Context) {
	var req dto.ImportBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithCode(c, apperrors.ErrCodeInvalidParams, "参数错误: "+err.Error())
		return
	}

	result, err := h.importUseCase.Execute(c.Request.Context(), appcollection.ImportBooksRequest{
		CollectionID: c.Param("id"),
		ISBNs:        req.ISBNs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	imported := make([]dto.BookResponse, len(result.Imported))
	for i, b := range result.Imported {
		imported[i] = toBookResponse(b)
	}
	response.Success(c, &dto.ImportBooksResponse{
		Imported:   imported,
		Missing:    result.Missing,
		Collection: toCollectionResponse(result.Collection),
	})
}

func toBookResponse(b appcollection.BookItem) dto.BookResponse {
	return dto.BookResponse{
		ISBN:           b.ISBN,
		Title:          b.Title,
		Author:         b.Author,
		Price:          b.Price,
		PriceYuan:      dto.FormatPriceYuan(b.Price),
		Stock:          b.Stock,
		StockValue:     b.StockValue,
		StockValueYuan: dto.FormatPriceYuan(b.StockValue),
	}
}

func toCollectionResponse(s appcollection.CollectionSummary) dto.CollectionResponse {
	return dto.CollectionResponse{
		ID:                  s.ID,
		Name:                s.Name,
		Size:                s.Size,
		Capacity:            s.Capacity,
		TotalStockValue:     s.TotalStockValue,
		TotalStockValueYuan: dto.FormatPriceYuan(s.TotalStockValue),
		CreatedAt:           s.CreatedAt,
	}
}

func toDetailResponse(d *appcollection.CollectionDetail) *dto.CollectionDetailResponse {
	books := make([]dto.BookResponse, len(d.Books))
	for i, b := range d.Books {
		books[i] = toBookResponse(b)
	}
	return &dto.CollectionDetailResponse{
		CollectionResponse: toCollectionResponse(d.CollectionSummary),
		Books:              books,
	}
}
