package catalog

import (
	"context"
)

// Repository 目录仓储接口(依赖倒置原则)
// 设计说明:
// 1. domain层只描述"按ID查找"和"按谓词查找全部"两种能力
// 2. Predicate由Filter Builder生成，infrastructure层负责翻译成SQL
// 3. 返回的Product必须已经填充Category/Vendor名称
type Repository interface {
	// FindCategories 查询分类；id为nil时返回全部
	FindCategories(ctx context.Context, id *int64) ([]*Category, error)

	// FindVendors 查询供应商；id为nil时返回全部
	FindVendors(ctx context.Context, id *int64) ([]*Vendor, error)

	// FindProductByID 根据ID查找商品，不存在返回ErrProductNotFound
	FindProductByID(ctx context.Context, id string) (*Product, error)

	// FindProducts 查询满足谓词的全部商品（空谓词匹配全部）
	FindProducts(ctx context.Context, predicate Predicate) ([]*Product, error)

	// FindProductsByCategory 查询某分类下的商品
	FindProductsByCategory(ctx context.Context, categoryID int64) ([]*Product, error)
}

// CategoryCache 分类缓存(可选)
// 分类是不可变的参考数据，可以安全缓存；商品和它的派生名称不缓存
type CategoryCache interface {
	// GetCategories 命中返回(categories, true, nil)，未命中返回(nil, false, nil)
	GetCategories(ctx context.Context, id *int64) ([]*Category, bool, error)

	// SetCategories 写入缓存
	SetCategories(ctx context.Context, id *int64, categories []*Category) error
}
