package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

func TestSessionStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	store := NewSessionStore(client, 30*time.Minute)
	ctx := context.Background()

	t.Run("不存在的字段", func(t *testing.T) {
		val, ok, err := store.Get(ctx, "sid-1", "cart")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Nil(t, val)
	})

	t.Run("写入后读取并设置过期时间", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sid-1", "cart", []byte(`[]`)))

		val, ok, err := store.Get(ctx, "sid-1", "cart")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `[]`, string(val))

		assert.Equal(t, `[]`, mr.HGet("session:sid-1", "cart"))
		assert.Equal(t, 30*time.Minute, mr.TTL("session:sid-1"))
	})

	t.Run("过期后会话消失", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sid-2", "cart", []byte(`[{"id":"p1","qty":1}]`)))
		mr.FastForward(31 * time.Minute)

		_, ok, err := store.Get(ctx, "sid-2", "cart")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("删除会话", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "sid-3", "cart", []byte(`[]`)))
		require.NoError(t, store.Delete(ctx, "sid-3"))
		assert.False(t, mr.Exists("session:sid-3"))
	})

	t.Run("Redis不可用", func(t *testing.T) {
		require.NoError(t, store.Ping(ctx))
		mr.Close()

		_, _, err := store.Get(ctx, "sid-1", "cart")
		require.Error(t, err)
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRedisError))

		err = store.Set(ctx, "sid-1", "cart", []byte(`[]`))
		assert.True(t, apperrors.HasCode(err, apperrors.ErrCodeRedisError))
	})
}
