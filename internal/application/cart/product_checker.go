package cart

import (
	"context"
	"errors"

	"github.com/xiebiao/modelstore/internal/domain/cart"
	"github.com/xiebiao/modelstore/internal/domain/catalog"
)

// catalogProductChecker 用目录服务判断商品是否存在
// 购物车领域不依赖目录领域，二者在应用层组装
type catalogProductChecker struct {
	catalogService catalog.Service
}

// NewProductChecker 创建商品存在性检查器
func NewProductChecker(catalogService catalog.Service) cart.ProductChecker {
	return &catalogProductChecker{catalogService: catalogService}
}

func (p *catalogProductChecker) ProductExists(ctx context.Context, productID string) (bool, error) {
	_, err := p.catalogService.GetProductByID(ctx, productID)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, catalog.ErrProductNotFound) {
		return false, nil
	}
	return false, err
}
