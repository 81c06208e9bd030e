package cart

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/modelstore/internal/domain/cart"
	"github.com/xiebiao/modelstore/pkg/tracing"
)

// UpdateCartRequest 更新购物车请求
type UpdateCartRequest struct {
	SessionID string
	ProductID string
	Qty       int
}

// UpdateCartUseCase 更新购物车用例（POST /api/cart/update）
type UpdateCartUseCase struct {
	cartService cart.Service
}

// NewUpdateCartUseCase 创建更新购物车用例
func NewUpdateCartUseCase(cartService cart.Service) *UpdateCartUseCase {
	return &UpdateCartUseCase{cartService: cartService}
}

// Execute 返回更新后的完整购物车
func (uc *UpdateCartUseCase) Execute(ctx context.Context, req UpdateCartRequest) (CartDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "cart.update")
	defer span.End()
	span.SetAttributes(
		attribute.String("product.id", req.ProductID),
		attribute.Int("cart.qty", req.Qty),
	)

	c, err := uc.cartService.UpdateCart(ctx, req.SessionID, req.ProductID, req.Qty)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return toCartDTO(c), nil
}
