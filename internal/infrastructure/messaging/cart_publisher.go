package messaging

import (
	"context"

	"github.com/xiebiao/modelstore/internal/domain/cart"
)

// Publisher 消息发布能力（pkg/mq.Publisher实现）
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// CartEventPublisher 把购物车领域事件发布到RabbitMQ
// routing key即事件类型（cart.item_added等），下游可以用 cart.# 订阅全部
type CartEventPublisher struct {
	publisher Publisher
}

// NewCartEventPublisher 创建购物车事件发布者
func NewCartEventPublisher(publisher Publisher) *CartEventPublisher {
	return &CartEventPublisher{publisher: publisher}
}

// PublishCartEvent 发布事件
func (p *CartEventPublisher) PublishCartEvent(ctx context.Context, event cart.Event) error {
	return p.publisher.Publish(ctx, string(event.Type), event)
}

var _ cart.EventPublisher = (*CartEventPublisher)(nil)
