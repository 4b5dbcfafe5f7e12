package shared

import (
	"context"
	"smartoffice/shared/cache"
	"smartoffice/shared/dto"
	"strings"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// BuildCacheKey joins prefix and the non-empty parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	key := []string{prefix}

	for _, part := range parts {
		if part != "" {
			key = append(key, part)
		}
	}

	return strings.Join(key, cacheKeySeparator)
}

// InvalidateCaches drops prefix itself and every key below it. Failures are logged only.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Delete(ctx, prefix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache key")
	}

	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+"*"); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate cache keys")
	}
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return FilterByEq(fieldID, id, table)
}

// FilterByEq matches rows whose field equals value.
func FilterByEq(field string, value any, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    field,
				Value:    value,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}
