package redis

import (
	"context"
	"encoding/json"

	"github.com/xiebiao/modelstore/internal/domain/cart"
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// cartField 购物车在会话Hash中的字段名
const cartField = "cart"

// cartRepository 购物车仓储实现
// 购物车序列化为条目数组存放在会话的cart字段：[{"id":"2002S2","qty":1}]
type cartRepository struct {
	sessions *SessionStore
}

// NewCartRepository 创建购物车仓储
func NewCartRepository(sessions *SessionStore) cart.Repository {
	return &cartRepository{sessions: sessions}
}

// Load 读取购物车；会话中没有购物车返回(nil, nil)
func (r *cartRepository) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, ok, err := r.sessions.Get(ctx, sessionID, cartField)
	if err != nil || !ok {
		return nil, err
	}

	entries := []cart.Entry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "购物车数据损坏")
	}
	return &cart.Cart{SessionID: sessionID, Entries: entries}, nil
}

// Save 整体覆盖保存
func (r *cartRepository) Save(ctx context.Context, c *cart.Cart) error {
	entries := c.Entries
	if entries == nil {
		entries = []cart.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return apperrors.Wrap(err, "购物车序列化失败")
	}
	return r.sessions.Set(ctx, c.SessionID, cartField, data)
}
