// Package cache wraps store ports with Redis read-through caches.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"social_graph/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultLikeCountTTL = time.Hour

// fillScript 只有在读取底层存储期间没有发生写操作（代数未变）时才回填。
// KEYS[1] 计数 key, KEYS[2] 代数 key; ARGV[1] 读取前的代数, ARGV[2] 计数, ARGV[3] ttl 毫秒
var fillScript = redis.NewScript(`
local gen = redis.call("GET", KEYS[2])
if gen == false then gen = "" end
if gen ~= ARGV[1] then return 0 end
redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[3])
return 1
`)

// bumpScript 写操作后推进代数并删除计数。
// KEYS[1] 计数 key, KEYS[2] 代数 key; ARGV[1] 代数 key 的 ttl 毫秒
var bumpScript = redis.NewScript(`
redis.call("INCR", KEYS[2])
redis.call("PEXPIRE", KEYS[2], ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`)

// LikeCounter 点赞数读穿透缓存。写操作成功后推进代数并删除计数，
// 回填时代数已变化则放弃回填，避免把旧值写回缓存。
// Redis 故障只记录日志并回落到底层存储。
type LikeCounter struct {
	store.ReactionStore

	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewLikeCounter(inner store.ReactionStore, client *redis.Client, ttl time.Duration, log *zap.Logger) *LikeCounter {
	if ttl <= 0 {
		ttl = defaultLikeCountTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &LikeCounter{ReactionStore: inner, client: client, ttl: ttl, log: log}
}

// 同一帖子的两个 key 使用同一个 hash tag，集群下落在同一个 slot
func likeCountKey(post uuid.UUID) string {
	return "likes:{" + post.String() + "}:count"
}

func likeGenKey(post uuid.UUID) string {
	return "likes:{" + post.String() + "}:gen"
}

func (c *LikeCounter) Like(ctx context.Context, user, post uuid.UUID) (bool, error) {
	created, err := c.ReactionStore.Like(ctx, user, post)
	if err == nil && created {
		c.invalidate(ctx, post)
	}
	return created, err
}

func (c *LikeCounter) Unlike(ctx context.Context, user, post uuid.UUID) error {
	if err := c.ReactionStore.Unlike(ctx, user, post); err != nil {
		return err
	}
	c.invalidate(ctx, post)
	return nil
}

func (c *LikeCounter) LikeCount(ctx context.Context, post uuid.UUID) (int64, error) {
	key, genKey := likeCountKey(post), likeGenKey(post)

	fill := true
	var gen string
	vals, err := c.client.MGet(ctx, key, genKey).Result()
	if err != nil {
		c.log.Warn("like count cache read failed", zap.String("key", key), zap.Error(err))
		fill = false
	} else {
		if cached, ok := vals[0].(string); ok {
			if n, perr := strconv.ParseInt(cached, 10, 64); perr == nil {
				return n, nil
			}
			c.log.Warn("discarding malformed like count", zap.String("key", key), zap.String("value", cached))
		}
		if g, ok := vals[1].(string); ok {
			gen = g
		}
	}

	n, err := c.ReactionStore.LikeCount(ctx, post)
	if err != nil {
		return 0, err
	}
	if !fill {
		return n, nil
	}

	ok, err := fillScript.Run(ctx, c.client, []string{key, genKey}, gen, n, c.ttl.Milliseconds()).Int()
	switch {
	case err != nil && !errors.Is(err, redis.Nil):
		c.log.Warn("like count cache write failed", zap.String("key", key), zap.Error(err))
	case ok == 0:
		c.log.Debug("like count changed during read, skipping fill", zap.String("key", key))
	}
	return n, nil
}

func (c *LikeCounter) invalidate(ctx context.Context, post uuid.UUID) {
	// 代数 key 比计数活得久，回填中的读者总能看到变化
	genTTL := 2 * c.ttl
	err := bumpScript.Run(ctx, c.client, []string{likeCountKey(post), likeGenKey(post)}, genTTL.Milliseconds()).Err()
	if err != nil {
		c.log.Warn("like count cache invalidation failed", zap.String("post_id", post.String()), zap.Error(err))
	}
}
