package catalog

import (
	"context"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
)

// ListProductsUseCase 商品过滤查询用例（GET /api/products）
type ListProductsUseCase struct {
	catalogService catalog.Service
}

// NewListProductsUseCase 创建商品过滤查询用例
func NewListProductsUseCase(catalogService catalog.Service) *ListProductsUseCase {
	return &ListProductsUseCase{catalogService: catalogService}
}

// Execute filters直接来自URL查询参数（同名参数可出现多次）
func (uc *ListProductsUseCase) Execute(ctx context.Context, filters map[string][]string) ([]ProductDTO, error) {
	var products []*catalog.Product
	err := observe(ctx, "list_products", func(ctx context.Context) error {
		var err error
		products, err = uc.catalogService.ListProducts(ctx, filters)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// GetProductUseCase 商品详情用例（GET /api/products/:id）
type GetProductUseCase struct {
	catalogService catalog.Service
}

// NewGetProductUseCase 创建商品详情用例
func NewGetProductUseCase(catalogService catalog.Service) *GetProductUseCase {
	return &GetProductUseCase{catalogService: catalogService}
}

// Execute 商品不存在返回catalog.ErrProductNotFound（404）
func (uc *GetProductUseCase) Execute(ctx context.Context, id string) (*ProductDTO, error) {
	var product *catalog.Product
	err := observe(ctx, "get_product", func(ctx context.Context) error {
		var err error
		product, err = uc.catalogService.GetProductByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	dto := toProductDTO(product)
	return &dto, nil
}

// ListByCategoryUseCase 分类商品用例（GET /api/products/category/:id）
type ListByCategoryUseCase struct {
	catalogService catalog.Service
}

// NewListByCategoryUseCase 创建分类商品用例
func NewListByCategoryUseCase(catalogService catalog.Service) *ListByCategoryUseCase {
	return &ListByCategoryUseCase{catalogService: catalogService}
}

// Execute 分类下没有商品（包括分类不存在）返回空列表
func (uc *ListByCategoryUseCase) Execute(ctx context.Context, rawCategoryID string) ([]ProductDTO, error) {
	id, err := catalog.ParseID(rawCategoryID)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, catalog.ErrInvalidID
	}

	var products []*catalog.Product
	err = observe(ctx, "list_by_category", func(ctx context.Context) error {
		var err error
		products, err = uc.catalogService.ListProductsByCategory(ctx, *id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}

// SearchDescriptionUseCase 描述搜索用例（GET /api/searchDescription?searchText=）
type SearchDescriptionUseCase struct {
	catalogService catalog.Service
}

// NewSearchDescriptionUseCase 创建描述搜索用例
func NewSearchDescriptionUseCase(catalogService catalog.Service) *SearchDescriptionUseCase {
	return &SearchDescriptionUseCase{catalogService: catalogService}
}

// Execute searchText为空时返回全部商品
func (uc *SearchDescriptionUseCase) Execute(ctx context.Context, searchText string) ([]ProductDTO, error) {
	var products []*catalog.Product
	err := observe(ctx, "search_description", func(ctx context.Context) error {
		var err error
		products, err = uc.catalogService.SearchByDescription(ctx, searchText)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toProductDTOs(products), nil
}
