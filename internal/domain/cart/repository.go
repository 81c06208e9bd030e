package cart

import (
	"context"
	"time"
)

// Repository 购物车仓储（会话存储的访问器）
// 设计说明:
// 1. 购物车只存在于服务端会话中，按会话ID读写整个条目列表
// 2. domain层不感知Redis，测试时可以用内存实现
type Repository interface {
	// Load 读取购物车；会话中还没有购物车时返回(nil, nil)
	Load(ctx context.Context, sessionID string) (*Cart, error)

	// Save 保存购物车（整体覆盖）
	Save(ctx context.Context, cart *Cart) error
}

// ProductChecker 校验商品是否存在
type ProductChecker interface {
	ProductExists(ctx context.Context, productID string) (bool, error)
}

// EventType 购物车事件类型（即消息的routing key）
type EventType string

const (
	EventItemAdded   EventType = "cart.item_added"
	EventItemUpdated EventType = "cart.item_updated"
	EventItemRemoved EventType = "cart.item_removed"
)

// Event 购物车变更事件
type Event struct {
	Type       EventType `json:"type"`
	SessionID  string    `json:"session_id"`
	ProductID  string    `json:"product_id"`
	Qty        int       `json:"qty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher 事件发布（可选，尽力而为）
type EventPublisher interface {
	PublishCartEvent(ctx context.Context, event Event) error
}
