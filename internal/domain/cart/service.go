package cart

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/modelstore/pkg/metrics"
)

// Action UpdateCart对购物车做了什么（用于指标和事件）
type Action string

const (
	ActionAdded    Action = "added"
	ActionUpdated  Action = "updated"
	ActionRemoved  Action = "removed"
	ActionNoop     Action = "noop"
	ActionRejected Action = "rejected"
)

// Service 购物车领域服务
type Service interface {
	// GetCart 获取会话的购物车；首次访问时创建并保存空购物车
	GetCart(ctx context.Context, sessionID string) (*Cart, error)

	// UpdateCart 加入/修改/移除商品，返回更新后的完整购物车
	// 业务规则:
	// - productID为空 → ErrInvalidRequest
	// - 已存在: qty>0原位修改数量，qty<=0移除
	// - 不存在: qty<=0什么都不做；qty>0时商品存在则追加到末尾，否则ErrProductNotFound且购物车不变
	//
	// 同一会话的并发更新不做互斥，后写入者覆盖先写入者
	UpdateCart(ctx context.Context, sessionID, productID string, qty int) (*Cart, error)
}

type service struct {
	repo      Repository
	products  ProductChecker
	publisher EventPublisher // 可为nil
}

// NewService 创建购物车服务；publisher为nil时不发布事件
func NewService(repo Repository, products ProductChecker, publisher EventPublisher) Service {
	return &service{repo: repo, products: products, publisher: publisher}
}

func (s *service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart != nil {
		return cart, nil
	}

	cart = NewCart(sessionID)
	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *service) UpdateCart(ctx context.Context, sessionID, productID string, qty int) (*Cart, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}
	if productID == "" {
		metrics.IncCartUpdate(string(ActionRejected))
		return nil, ErrInvalidRequest
	}

	cart, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		cart = NewCart(sessionID)
	}

	var action Action
	if i := cart.IndexOf(productID); i >= 0 {
		if qty > 0 {
			cart.setQty(i, qty)
			action = ActionUpdated
		} else {
			cart.removeAt(i)
			action = ActionRemoved
		}
	} else {
		if qty <= 0 {
			metrics.IncCartUpdate(string(ActionNoop))
			return cart, nil
		}

		exists, err := s.products.ProductExists(ctx, productID)
		if err != nil {
			return nil, err
		}
		if !exists {
			metrics.IncCartUpdate(string(ActionRejected))
			return nil, ErrProductNotFound
		}
		cart.add(productID, qty)
		action = ActionAdded
	}

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, err
	}

	metrics.IncCartUpdate(string(action))
	s.publish(ctx, action, sessionID, productID, qty)
	return cart, nil
}

// publish 发布变更事件；失败只记日志
func (s *service) publish(ctx context.Context, action Action, sessionID, productID string, qty int) {
	if s.publisher == nil {
		return
	}

	var eventType EventType
	switch action {
	case ActionAdded:
		eventType = EventItemAdded
	case ActionUpdated:
		eventType = EventItemUpdated
	case ActionRemoved:
		eventType = EventItemRemoved
		qty = 0
	default:
		return
	}

	event := Event{
		Type:       eventType,
		SessionID:  sessionID,
		ProductID:  productID,
		Qty:        qty,
		OccurredAt: time.Now(),
	}
	if err := s.publisher.PublishCartEvent(ctx, event); err != nil {
		zap.L().Warn("发布购物车事件失败",
			zap.String("type", string(eventType)),
			zap.String("product_id", productID),
			zap.Error(err),
		)
	}
}
