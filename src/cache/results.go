// Package cache is a redis-backed verification-result cache. Identical claims
// in the same language skip the remote agent entirely. All cache failures are
// advisory: a broken redis degrades to cache misses, never to request errors.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/OneOfOne/xxhash"
	"github.com/redis/go-redis/v9"

	"github.com/Sayyed23/ai-missinformation-truth-guard-ai2/src/schema"
)

const keyPrefix = "truthguard:verify:"

// MustRedis connects or exits; pass an empty URL to run without a cache.
func MustRedis(url string) *redis.Client {
	if url == "" {
		return nil
	}
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	return redis.NewClient(opt)
}

// Key derives the cache key for a claim/language pair. Case and surrounding
// whitespace do not change the verdict, so they do not change the key.
func Key(claim, language string) string {
	h := xxhash.New64()
	_, _ = h.WriteString(strings.ToLower(strings.TrimSpace(claim)))
	_, _ = h.WriteString("\x00")
	_, _ = h.WriteString(strings.ToLower(strings.TrimSpace(language)))
	return fmt.Sprintf("%s%x", keyPrefix, h.Sum64())
}

type Results struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewResults wraps a redis client; a nil client yields a no-op cache.
func NewResults(rdb *redis.Client, ttl time.Duration) *Results {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Results{rdb: rdb, ttl: ttl}
}

func (r *Results) Get(ctx context.Context, key string) (*schema.VerificationResult, bool) {
	if r == nil || r.rdb == nil {
		return nil, false
	}
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("cache: get %s: %v", key, err)
		}
		return nil, false
	}
	var res schema.VerificationResult
	if err := json.Unmarshal(raw, &res); err != nil {
		log.Printf("cache: decode %s: %v", key, err)
		return nil, false
	}
	return &res, true
}

func (r *Results) Put(ctx context.Context, key string, res *schema.VerificationResult) {
	if r == nil || r.rdb == nil || res == nil {
		return
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		log.Printf("cache: set %s: %v", key, err)
	}
}
