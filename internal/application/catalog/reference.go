package catalog

import (
	"context"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
)

// ListCategoriesUseCase 分类查询用例（GET /api/catalog?id=）
type ListCategoriesUseCase struct {
	catalogService catalog.Service
}

// NewListCategoriesUseCase 创建分类查询用例
func NewListCategoriesUseCase(catalogService catalog.Service) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{catalogService: catalogService}
}

// Execute rawID为空返回全部分类，否则返回0或1个；rawID不是整数返回ErrInvalidID
func (uc *ListCategoriesUseCase) Execute(ctx context.Context, rawID string) ([]CategoryDTO, error) {
	id, err := catalog.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	var categories []*catalog.Category
	err = observe(ctx, "list_categories", func(ctx context.Context) error {
		var err error
		categories, err = uc.catalogService.ListCategories(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	list := make([]CategoryDTO, len(categories))
	for i, c := range categories {
		list[i] = CategoryDTO{ID: c.ID, Name: c.Name}
	}
	return list, nil
}

// ListVendorsUseCase 供应商查询用例（GET /api/vendors?id=）
type ListVendorsUseCase struct {
	catalogService catalog.Service
}

// NewListVendorsUseCase 创建供应商查询用例
func NewListVendorsUseCase(catalogService catalog.Service) *ListVendorsUseCase {
	return &ListVendorsUseCase{catalogService: catalogService}
}

// Execute 与分类查询规则相同
func (uc *ListVendorsUseCase) Execute(ctx context.Context, rawID string) ([]VendorDTO, error) {
	id, err := catalog.ParseID(rawID)
	if err != nil {
		return nil, err
	}

	var vendors []*catalog.Vendor
	err = observe(ctx, "list_vendors", func(ctx context.Context) error {
		var err error
		vendors, err = uc.catalogService.ListVendors(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	list := make([]VendorDTO, len(vendors))
	for i, v := range vendors {
		list[i] = VendorDTO{ID: v.ID, Name: v.Name}
	}
	return list, nil
}
