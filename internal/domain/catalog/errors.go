package catalog

import (
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// 目录领域错误定义
var (
	// ErrProductNotFound 商品不存在
	ErrProductNotFound = apperrors.New(apperrors.ErrCodeProductNotFound, "商品不存在")

	// ErrUnknownFilterKey 不支持的过滤条件
	ErrUnknownFilterKey = apperrors.New(apperrors.ErrCodeUnknownFilterKey, "不支持的过滤条件")

	// ErrInvalidFilterValue 过滤条件的值不是合法数字
	ErrInvalidFilterValue = apperrors.New(apperrors.ErrCodeInvalidFilterValue, "过滤条件的值不合法")

	// ErrInvalidID 分类/供应商ID格式错误
	ErrInvalidID = apperrors.New(apperrors.ErrCodeInvalidParams, "ID必须是整数")
)
