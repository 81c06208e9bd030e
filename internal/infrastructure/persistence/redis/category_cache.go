package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
	"github.com/xiebiao/modelstore/pkg/circuitbreaker"
	"github.com/xiebiao/modelstore/pkg/metrics"
)

const categoryKeyPrefix = "catalog:categories:"

// CategoryCache 分类列表缓存(Cache-Aside)
//
// 教学要点：
// 1. 只缓存分类这种不可变参考数据；商品库存和派生名称每次都查库
// 2. 所有Redis操作经过熔断器：Redis故障时熔断打开，请求直接当作未命中，
//    不再等待Redis超时
// 3. 未命中用(nil, false, nil)表示，调用方查库后回填
type CategoryCache struct {
	client  *redis.Client
	ttl     time.Duration
	breaker *circuitbreaker.Breaker
}

// cachedCategory 缓存中的JSON结构
type cachedCategory struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NewCategoryCache 创建分类缓存
func NewCategoryCache(client *redis.Client, ttl time.Duration, breaker *circuitbreaker.Breaker) *CategoryCache {
	return &CategoryCache{client: client, ttl: ttl, breaker: breaker}
}

// GetCategories 读取缓存
func (c *CategoryCache) GetCategories(ctx context.Context, id *int64) ([]*catalog.Category, bool, error) {
	var val []byte
	err := c.breaker.Execute(func() error {
		var err error
		val, err = c.client.Get(ctx, categoryKey(id)).Bytes()
		if errors.Is(err, redis.Nil) {
			return nil // 未命中不算故障
		}
		return err
	})

	switch {
	case errors.Is(err, circuitbreaker.ErrOpenState):
		metrics.IncCacheRequest("bypass")
		return nil, false, nil
	case err != nil:
		metrics.IncCacheRequest("error")
		return nil, false, fmt.Errorf("获取缓存失败: %w", err)
	case val == nil:
		metrics.IncCacheRequest("miss")
		return nil, false, nil
	}

	var items []cachedCategory
	if err := json.Unmarshal(val, &items); err != nil {
		metrics.IncCacheRequest("error")
		return nil, false, fmt.Errorf("反序列化失败: %w", err)
	}

	metrics.IncCacheRequest("hit")
	categories := make([]*catalog.Category, len(items))
	for i, item := range items {
		categories[i] = &catalog.Category{ID: item.ID, Name: item.Name}
	}
	return categories, true, nil
}

// SetCategories 回填缓存
func (c *CategoryCache) SetCategories(ctx context.Context, id *int64, categories []*catalog.Category) error {
	items := make([]cachedCategory, len(categories))
	for i, category := range categories {
		items[i] = cachedCategory{ID: category.ID, Name: category.Name}
	}
	val, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	err = c.breaker.Execute(func() error {
		return c.client.Set(ctx, categoryKey(id), val, c.ttl).Err()
	})
	if errors.Is(err, circuitbreaker.ErrOpenState) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("设置缓存失败: %w", err)
	}
	return nil
}

// Invalidate 删除全部分类缓存（启动时调用，避免数据库被离线替换后读到旧数据）
//
// 学习要点：使用SCAN+UNLINK代替KEYS+DEL，不阻塞Redis
func (c *CategoryCache) Invalidate(ctx context.Context) error {
	var cursor uint64
	deleted := 0
	for {
		keys, next, err := c.client.Scan(ctx, cursor, categoryKeyPrefix+"*", 100).Result()
		if err != nil {
			return fmt.Errorf("扫描缓存失败: %w", err)
		}
		if len(keys) > 0 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("删除缓存失败: %w", err)
			}
			deleted += len(keys)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	zap.L().Debug("分类缓存已清空", zap.Int("keys", deleted))
	return nil
}

func categoryKey(id *int64) string {
	if id == nil {
		return categoryKeyPrefix + "all"
	}
	return categoryKeyPrefix + strconv.FormatInt(*id, 10)
}
