package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/modelstore/pkg/jwt"
	"github.com/xiebiao/modelstore/pkg/response"
)

// SessionIDKey gin.Context中会话ID的键
const SessionIDKey = "session_id"

// SessionOptions 会话Cookie参数
type SessionOptions struct {
	CookieName string
	Secure     bool
	HTTPOnly   bool
}

// SessionMiddleware 会话中间件
// 设计说明：
// 1. Cookie保存签名后的Token，Token中携带会话ID
// 2. 没有Cookie、签名错误或已过期时分配新会话（匿名购物车不需要登录）
// 3. 会话数据本身（购物车）保存在Redis，这里只负责识别会话
type SessionMiddleware struct {
	tokens *jwt.Manager
	opts   SessionOptions
}

// NewSessionMiddleware 创建会话中间件
func NewSessionMiddleware(tokens *jwt.Manager, opts SessionOptions) *SessionMiddleware {
	return &SessionMiddleware{tokens: tokens, opts: opts}
}

// Handle 识别或创建会话，并把会话ID注入Context
// 使用方式：
//
//	api := r.Group("/api")
//	api.Use(sessionMiddleware.Handle())
func (m *SessionMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. 解析已有Cookie
		if raw, err := c.Cookie(m.opts.CookieName); err == nil && raw != "" {
			claims, err := m.tokens.ParseSessionToken(raw)
			if err == nil {
				c.Set(SessionIDKey, claims.SessionID)
				c.Next()
				return
			}
			zap.L().Debug("会话Cookie无效，分配新会话", zap.Error(err))
		}

		// 2. 分配新会话
		sessionID := uuid.New().String()
		token, err := m.tokens.IssueSessionToken(sessionID)
		if err != nil {
			response.Error(c, err)
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(m.opts.CookieName, token, int(m.tokens.TTL().Seconds()), "/", "", m.opts.Secure, m.opts.HTTPOnly)

		// 3. 注入Context
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID 从Context获取会话ID，未经过会话中间件时返回空字符串
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}
