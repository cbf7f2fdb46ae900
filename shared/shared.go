package shared

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"roombook/shared/cache"
	"roombook/shared/constant"
	"roombook/shared/dto"
	"roombook/shared/timezone"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 0
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" || fieldName == "-" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return FilterByField(id, fieldID, table)
}

func FilterByField(value any, field, table string) dto.FilterGroup {
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

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return res, nil
}

// BuildCacheKey joins prefix and parts with ':'.
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// BuildCacheKeyWithQuery derives a stable key for a paged query below prefix.
func BuildCacheKeyWithQuery(prefix string, req dto.QueryParams, filter dto.FilterGroup) string {
	raw, err := json.Marshal(struct {
		Params dto.QueryParams `json:"params"`
		Filter dto.FilterGroup `json:"filter"`
	}{req, filter})
	if err != nil {
		log.Warn().Err(err).Str("prefix", prefix).Msg("failed to marshal cache query")

		return BuildCacheKey(prefix, fmt.Sprintf("%v:%v", req, filter))
	}

	return BuildCacheKey(prefix, strconv.FormatUint(xxhash.Sum64(raw), 16))
}

// InvalidateCaches removes every key stored below prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}
