package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"Vidhub/pkg/ident"
	"Vidhub/pkg/log"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrLockBusy = errors.New("cache: lock busy")

// 只删除自己持有的锁
var unlockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// ToggleLock 基于 SETNX 的分布式互斥锁，串行化同一 (actor, kind, target) 的开关操作
type ToggleLock struct {
	redis *redis.Client
	ttl   time.Duration
	wait  time.Duration
	retry time.Duration
}

func NewToggleLock(rds *redis.Client) *ToggleLock {
	return &ToggleLock{
		redis: rds,
		ttl:   5 * time.Second,
		wait:  time.Second,
		retry: 20 * time.Millisecond,
	}
}

func ToggleKey(actorID, kind, targetID string) string {
	return fmt.Sprintf("lock:toggle:%s:%s:%s", kind, actorID, targetID)
}

// Lock 在 wait 时间内反复尝试加锁，成功后返回释放函数
func (l *ToggleLock) Lock(ctx context.Context, key string) (func(), error) {
	token := ident.New()
	deadline := time.Now().Add(l.wait)

	for {
		ok, err := l.redis.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			return func() {
				// 调用方 ctx 可能已取消，释放使用独立超时
				c, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				if err := unlockScript.Run(c, l.redis, []string{key}, token).Err(); err != nil {
					log.L.Warn("release toggle lock failed", zap.String("key", key), zap.Error(err))
				}
			}, nil
		}
		if time.Now().After(deadline) {
			return nil, ErrLockBusy
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(l.retry):
		}
	}
}
