package cart

import (
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// 购物车领域错误定义
var (
	// ErrInvalidRequest 请求缺少商品ID
	ErrInvalidRequest = apperrors.New(apperrors.ErrCodeInvalidParams, "商品ID不能为空")

	// ErrProductNotFound 要加入购物车的商品不存在（400，区别于直接查询商品的404）
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeCartProductMissing, "商品不存在")

	// ErrNoSession 缺少会话
	ErrNoSession = apperrors.New(apperrors.ErrCodeUnauthorized, "会话不存在")
)
