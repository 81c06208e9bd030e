package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 设计说明：
// 1. 所有4xx/5xx响应都使用同一个JSON信封，前端只需判断error字段
// 2. Code是业务错误码（非HTTP状态码），方便客户端区分错误类型
// 3. 成功响应直接返回业务数据（数组或对象），不做额外包装
type ErrorBody struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// Success 成功响应（HTTP 200，直接输出数据）
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	products, err := catalogService.ListProducts(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 记录详细错误到日志（包含内部错误）
	if status >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
	} else {
		zap.L().Debug("request rejected",
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.String("reason", appErr.Message),
		)
	}

	// gin的错误列表供访问日志中间件输出
	_ = c.Error(err)

	// 返回用户友好的错误信息
	c.AbortWithStatusJSON(status, ErrorBody{
		Error: appErr.Message,
		Code:  appErr.Code,
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}
