package cart

import (
	"context"

	"github.com/xiebiao/modelstore/internal/domain/cart"
	"github.com/xiebiao/modelstore/pkg/tracing"
)

// GetCartUseCase 查看购物车用例（GET /api/cart）
type GetCartUseCase struct {
	cartService cart.Service
}

// NewGetCartUseCase 创建查看购物车用例
func NewGetCartUseCase(cartService cart.Service) *GetCartUseCase {
	return &GetCartUseCase{cartService: cartService}
}

// Execute 会话ID由会话中间件提供
func (uc *GetCartUseCase) Execute(ctx context.Context, sessionID string) (CartDTO, error) {
	ctx, span := tracing.StartSpan(ctx, "cart.get")
	defer span.End()

	c, err := uc.cartService.GetCart(ctx, sessionID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return toCartDTO(c), nil
}
