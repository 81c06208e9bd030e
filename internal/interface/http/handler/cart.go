package handler

import (
	"github.com/gin-gonic/gin"

	appcart "github.com/xiebiao/modelstore/internal/application/cart"
	"github.com/xiebiao/modelstore/internal/interface/http/dto"
	"github.com/xiebiao/modelstore/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
	"github.com/xiebiao/modelstore/pkg/response"
)

// CartHandler 购物车HTTP处理器
type CartHandler struct {
	getCartUseCase    *appcart.GetCartUseCase
	updateCartUseCase *appcart.UpdateCartUseCase
}

// NewCartHandler 创建购物车处理器
func NewCartHandler(getCartUseCase *appcart.GetCartUseCase, updateCartUseCase *appcart.UpdateCartUseCase) *CartHandler {
	return &CartHandler{
		getCartUseCase:    getCartUseCase,
		updateCartUseCase: updateCartUseCase,
	}
}

// GetCart 查看购物车
// @Summary      查看购物车
// @Description  返回当前会话的购物车条目（按加入顺序）；首次访问返回空数组
// @Tags         购物车
// @Produce      json
// @Success      200 {array} appcart.EntryDTO
// @Failure      500 {object} response.ErrorBody "会话存储错误"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	result, err := h.getCartUseCase.Execute(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// UpdateCart 更新购物车
// @Summary      更新购物车
// @Description  qty>0加入或修改数量，qty<=0移除；返回更新后的完整购物车
// @Tags         购物车
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateCartRequest true "商品ID和数量"
// @Success      200 {array} appcart.EntryDTO
// @Failure      400 {object} response.ErrorBody "参数错误或商品不存在"
// @Failure      500 {object} response.ErrorBody "会话存储错误"
// @Router       /api/cart/update [post]
func (h *CartHandler) UpdateCart(c *gin.Context) {
	// 1. 参数绑定与验证
	var req dto.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.WrapCode(err, apperrors.ErrCodeBindError, "参数错误: "+err.Error()))
		return
	}

	// 2. 调用应用层用例
	result, err := h.updateCartUseCase.Execute(c.Request.Context(), appcart.UpdateCartRequest{
		SessionID: middleware.GetSessionID(c),
		ProductID: req.ID,
		Qty:       req.Qty.Int(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 返回完整购物车
	response.Success(c, result)
}
