package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/xiebiao/modelstore/pkg/errors"
)

// SessionStore 服务端会话存储
// 设计说明：
// 1. 每个会话是一个Hash：session:{sid}，字段是各模块的JSON数据（如cart）
// 2. 每次写入都刷新过期时间，会话在TTL内无写入才会过期
// 3. 对上层暴露"按会话ID读写一个字段"的能力，不关心字段内容
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionStore 创建会话存储
func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Get 读取会话字段；字段不存在返回(nil, false, nil)
func (s *SessionStore) Get(ctx context.Context, sessionID, field string) ([]byte, bool, error) {
	val, err := s.client.HGet(ctx, sessionKey(sessionID), field).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "读取会话失败")
	}
	return val, true, nil
}

// Set 写入会话字段并刷新过期时间
// 学习要点：HSET和EXPIRE放在同一个MULTI事务里，避免写入后没有过期时间
func (s *SessionStore) Set(ctx context.Context, sessionID, field string, value []byte) error {
	key := sessionKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, field, value)
		pipe.Expire(ctx, key, s.ttl)
		return nil
	})
	if err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "保存会话失败")
	}
	return nil
}

// Delete 删除整个会话
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return apperrors.WrapCode(err, apperrors.ErrCodeRedisError, "删除会话失败")
	}
	return nil
}

// Ping 检查Redis可用性（健康检查）
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}
