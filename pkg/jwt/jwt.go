package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

const issuer = "modelstore"

// Manager 会话Token管理器
// 设计说明：
// 1. Cookie中不直接存放会话ID，而是存放HS256签名后的Token（防止伪造会话ID）
// 2. Token只携带会话ID，购物车等会话数据保存在Redis
// 3. Token有效期与会话TTL一致，过期后客户端会被分配新会话
type Manager struct {
	secret string        // 签名密钥
	ttl    time.Duration // Token有效期
}

// NewManager 创建Token管理器
func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{
		secret: secret,
		ttl:    ttl,
	}
}

// SessionClaims 会话Token的Claims
// 学习要点：嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
type SessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// TTL 返回Token有效期
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// IssueSessionToken 为会话ID签发Token
func (m *Manager) IssueSessionToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidParams, "会话ID不能为空")
	}

	now := time.Now()
	claims := SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
			Subject:   sessionID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "生成会话Token失败")
	}
	return signed, nil
}

// ParseSessionToken 解析并验证会话Token
// 学习要点：
// 1. 验证签名（防止伪造）
// 2. 验证过期时间（exp）
// 3. 验证签发者（iss）
func (m *Manager) ParseSessionToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(issuer))

	if err != nil {
		// v5的错误经过包装，必须用errors.Is判断
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
