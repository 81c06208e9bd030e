package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/modelstore/internal/domain/cart"
	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

func TestCartRepository(t *testing.T) {
	client, mr := setupTestRedis(t)
	repo := NewCartRepository(NewSessionStore(client, time.Hour))
	ctx := context.Background()

	t.Run("新会话没有购物车", func(t *testing.T) {
		c, err := repo.Load(ctx, "fresh")
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("保存后按顺序读回", func(t *testing.T) {
		c := &cart.Cart{SessionID: "s1", Entries: []cart.Entry{
			{ProductID: "2002S2", Qty: 3},
			{ProductID: "1999A1", Qty: 1},
		}}
		require.NoError(t, repo.Save(ctx, c))

		assert.JSONEq(t, `[{"id":"2002S2","qty":3},{"id":"1999A1","qty":1}]`, mr.HGet("session:s1", "cart"))

		loaded, err := repo.Load(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, c.Entries, loaded.Entries)
		assert.Equal(t, "s1", loaded.SessionID)
	})

	t.Run("空购物车保存为空数组", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, &cart.Cart{SessionID: "s2"}))
		assert.Equal(t, `[]`, mr.HGet("session:s2", "cart"))

		loaded, err := repo.Load(ctx, "s2")
		require.NoError(t, err)
		require.NotNil(t, loaded)
		assert.Empty(t, loaded.Entries)
	})

	t.Run("损坏的数据", func(t *testing.T) {
		mr.HSet("session:s3", "cart", "{not json")
		_, err := repo.Load(ctx, "s3")
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRedisError))
	})
}

// 购物车服务和Redis仓储组合使用
func TestCartRepository_WithService(t *testing.T) {
	client, _ := setupTestRedis(t)
	repo := NewCartRepository(NewSessionStore(client, time.Hour))
	svc := cart.NewService(repo, staticProducts{"p1": true, "p2": true}, nil)
	ctx := context.Background()

	_, err := svc.UpdateCart(ctx, "s", "p1", 2)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, "s", "p2", 1)
	require.NoError(t, err)
	_, err = svc.UpdateCart(ctx, "s", "p1", 0)
	require.NoError(t, err)

	c, err := svc.GetCart(ctx, "s")
	require.NoError(t, err)
	assert.Equal(t, []cart.Entry{{ProductID: "p2", Qty: 1}}, c.Entries)
}

type staticProducts map[string]bool

func (s staticProducts) ProductExists(_ context.Context, id string) (bool, error) {
	return s[id], nil
}
