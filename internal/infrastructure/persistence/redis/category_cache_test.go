package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/modelstore/internal/domain/catalog"
	"github.com/xiebiao/modelstore/pkg/circuitbreaker"
)

func newTestCategoryCache(t *testing.T, threshold uint32) (*CategoryCache, *circuitbreaker.Breaker, func()) {
	client, mr := setupTestRedis(t)
	breaker := circuitbreaker.New("category-cache", circuitbreaker.Settings{
		FailureThreshold: threshold,
		OpenTimeout:      time.Minute,
	})
	cache := NewCategoryCache(client, 10*time.Minute, breaker)
	return cache, breaker, mr.Close
}

func TestCategoryCache_MissThenHit(t *testing.T) {
	cache, _, _ := newTestCategoryCache(t, 5)
	ctx := context.Background()

	categories, hit, err := cache.GetCategories(ctx, nil)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Nil(t, categories)

	want := []*catalog.Category{{ID: 1, Name: "Toys"}, {ID: 2, Name: "Books"}}
	require.NoError(t, cache.SetCategories(ctx, nil, want))

	got, hit, err := cache.GetCategories(ctx, nil)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)

	// 按ID缓存与全部列表互不干扰
	id := int64(2)
	_, hit, err = cache.GetCategories(ctx, &id)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCategoryCache_EmptyResultIsCached(t *testing.T) {
	cache, _, _ := newTestCategoryCache(t, 5)
	ctx := context.Background()
	id := int64(404)

	require.NoError(t, cache.SetCategories(ctx, &id, []*catalog.Category{}))
	got, hit, err := cache.GetCategories(ctx, &id)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Empty(t, got)
}

func TestCategoryCache_Invalidate(t *testing.T) {
	cache, _, _ := newTestCategoryCache(t, 5)
	ctx := context.Background()
	id := int64(1)

	require.NoError(t, cache.SetCategories(ctx, nil, []*catalog.Category{{ID: 1, Name: "Toys"}}))
	require.NoError(t, cache.SetCategories(ctx, &id, []*catalog.Category{{ID: 1, Name: "Toys"}}))
	require.NoError(t, cache.Invalidate(ctx))

	_, hit, err := cache.GetCategories(ctx, nil)
	require.NoError(t, err)
	assert.False(t, hit)
	_, hit, err = cache.GetCategories(ctx, &id)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestCategoryCache_BreakerOpensOnRedisFailure(t *testing.T) {
	cache, breaker, stopRedis := newTestCategoryCache(t, 2)
	ctx := context.Background()
	stopRedis()

	// 前两次失败返回错误，熔断器随后打开
	for i := 0; i < 2; i++ {
		_, hit, err := cache.GetCategories(ctx, nil)
		assert.Error(t, err)
		assert.False(t, hit)
	}
	assert.Equal(t, circuitbreaker.StateOpen, breaker.State())

	// 熔断打开后直接当作未命中，不再访问Redis
	_, hit, err := cache.GetCategories(ctx, nil)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.SetCategories(ctx, nil, []*catalog.Category{}))
}
