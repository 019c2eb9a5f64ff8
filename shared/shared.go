package shared

import (
	"context"
	"fmt"
	"math"
	"strings"

	"villa/shared/cache"
	"villa/shared/dto"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// BuildCacheKey joins the prefix and the non-empty parts with ":".
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part == "" {
			continue
		}

		key = append(key, part)
	}

	return strings.Join(key, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends paging to the key so every page is cached separately.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, parts ...string) string {
	query := fmt.Sprintf("p%d_l%d", params.Page, params.Limit)

	return BuildCacheKey(prefix, append(parts, query)...)
}

// InvalidateCaches drops every key under prefix. Failures are only logged.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
