// Package counters keeps per-post like counts in redis and folds them
// into the posts table on a schedule, so list responses never pay for a
// count query.
package counters

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"harmonize/store"
)

const keyPrefix = "posts:likes:"

// LikeCounter tracks like totals per post. A nil *LikeCounter is valid
// and does nothing, for deployments without redis.
type LikeCounter struct {
	rdb *redis.Client
}

func NewLikeCounter(rdb *redis.Client) *LikeCounter {
	return &LikeCounter{rdb: rdb}
}

func key(postID uint) string {
	return keyPrefix + strconv.FormatUint(uint64(postID), 10)
}

func (lc *LikeCounter) Add(ctx context.Context, postID uint) {
	if lc == nil {
		return
	}
	if err := lc.rdb.Incr(ctx, key(postID)).Err(); err != nil {
		slog.Error("like counter incr failed", "post_id", postID, "error", err)
	}
}

func (lc *LikeCounter) Remove(ctx context.Context, postID uint) {
	if lc == nil {
		return
	}
	if err := lc.rdb.Decr(ctx, key(postID)).Err(); err != nil {
		slog.Error("like counter decr failed", "post_id", postID, "error", err)
	}
}

// Sync writes every counter back to its post row. Missing posts are
// skipped; their keys are dropped.
func (lc *LikeCounter) Sync(ctx context.Context, s store.Store) {
	if lc == nil {
		return
	}
	keys, err := lc.rdb.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		slog.Error("like counter scan failed", "pattern", keyPrefix+"*", "error", err)
		return
	}
	for _, k := range keys {
		id, err := strconv.ParseUint(strings.TrimPrefix(k, keyPrefix), 10, 64)
		if err != nil {
			continue
		}
		count, err := lc.rdb.Get(ctx, k).Int64()
		if err != nil {
			continue
		}
		if count < 0 {
			count = 0
		}
		post, err := s.PostByID(uint(id))
		if err != nil {
			lc.rdb.Del(ctx, k)
			continue
		}
		post.LikeCount = uint(count)
		if err := s.SavePost(post); err != nil {
			slog.Error("like counter sync failed", "post_id", id, "error", err)
		}
	}
	slog.Info("like counters synced", "keys", len(keys))
}
