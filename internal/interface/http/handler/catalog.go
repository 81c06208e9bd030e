package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/modelstore/internal/application/catalog"
	"github.com/xiebiao/modelstore/pkg/response"
)

// CatalogHandler 目录HTTP处理器（分类、供应商、商品）
type CatalogHandler struct {
	listCategories    *appcatalog.ListCategoriesUseCase
	listVendors       *appcatalog.ListVendorsUseCase
	listProducts      *appcatalog.ListProductsUseCase
	getProduct        *appcatalog.GetProductUseCase
	listByCategory    *appcatalog.ListByCategoryUseCase
	searchDescription *appcatalog.SearchDescriptionUseCase
}

// NewCatalogHandler 创建目录处理器
func NewCatalogHandler(
	listCategories *appcatalog.ListCategoriesUseCase,
	listVendors *appcatalog.ListVendorsUseCase,
	listProducts *appcatalog.ListProductsUseCase,
	getProduct *appcatalog.GetProductUseCase,
	listByCategory *appcatalog.ListByCategoryUseCase,
	searchDescription *appcatalog.SearchDescriptionUseCase,
) *CatalogHandler {
	return &CatalogHandler{
		listCategories:    listCategories,
		listVendors:       listVendors,
		listProducts:      listProducts,
		getProduct:        getProduct,
		listByCategory:    listByCategory,
		searchDescription: searchDescription,
	}
}

// ListCategories 分类列表
// @Summary      分类列表
// @Description  不带id返回全部分类；带id返回0或1个分类
// @Tags         目录
// @Produce      json
// @Param        id query int false "分类ID"
// @Success      200 {array} appcatalog.CategoryDTO
// @Failure      400 {object} response.ErrorBody "id不是整数"
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/catalog [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.listCategories.Execute(c.Request.Context(), c.Query("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListVendors 供应商列表
// @Summary      供应商列表
// @Description  不带id返回全部供应商；带id返回0或1个供应商
// @Tags         目录
// @Produce      json
// @Param        id query int false "供应商ID"
// @Success      200 {array} appcatalog.VendorDTO
// @Failure      400 {object} response.ErrorBody "id不是整数"
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/vendors [get]
func (h *CatalogHandler) ListVendors(c *gin.Context) {
	list, err := h.listVendors.Execute(c.Request.Context(), c.Query("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// ListProducts 商品过滤查询
// @Summary      商品列表
// @Description  所有查询参数按AND组合；name/description为大小写不敏感的子串匹配；同名参数可重复出现
// @Tags         目录
// @Produce      json
// @Param        id          query string false "商品ID（精确匹配）"
// @Param        name        query string false "名称包含"
// @Param        description query string false "描述包含"
// @Param        category    query string false "分类名称（精确匹配）"
// @Param        vendor      query string false "供应商名称（精确匹配）"
// @Param        min_cost    query number false "最低成本（含）"
// @Param        max_cost    query number false "最高成本（含）"
// @Param        min_msrp    query number false "最低建议零售价（含）"
// @Param        max_msrp    query number false "最高建议零售价（含）"
// @Param        min_qty     query int    false "最低库存（含）"
// @Param        max_qty     query int    false "最高库存（含）"
// @Success      200 {array} appcatalog.ProductDTO
// @Failure      400 {object} response.ErrorBody "未知参数或数值格式错误"
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	// 直接使用原始查询参数：未知参数要报错，不能靠结构体绑定静默忽略
	list, err := h.listProducts.Execute(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// GetProduct 商品详情
// @Summary      商品详情
// @Tags         目录
// @Produce      json
// @Param        id path string true "商品ID"
// @Success      200 {object} appcatalog.ProductDTO
// @Failure      404 {object} response.ErrorBody "商品不存在"
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.getProduct.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, product)
}

// ListProductsByCategory 分类下的商品
// @Summary      分类商品
// @Description  分类不存在或没有商品时返回空数组
// @Tags         目录
// @Produce      json
// @Param        id path int true "分类ID"
// @Success      200 {array} appcatalog.ProductDTO
// @Failure      400 {object} response.ErrorBody "id不是整数"
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/products/category/{id} [get]
func (h *CatalogHandler) ListProductsByCategory(c *gin.Context) {
	list, err := h.listByCategory.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

// SearchDescription 按描述搜索
// @Summary      描述搜索
// @Description  大小写不敏感的子串匹配；searchText为空时返回全部商品
// @Tags         目录
// @Produce      json
// @Param        searchText query string false "搜索文本"
// @Success      200 {array} appcatalog.ProductDTO
// @Failure      500 {object} response.ErrorBody "数据库错误"
// @Router       /api/searchDescription [get]
func (h *CatalogHandler) SearchDescription(c *gin.Context) {
	list, err := h.searchDescription.Execute(c.Request.Context(), c.Query("searchText"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
