package shared

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"lodging/shared/cache"
	"lodging/shared/constant"
	"lodging/shared/dto"
	"lodging/shared/failure"
	"lodging/shared/timezone"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

// ConvertStringToBool parses strconv.ParseBool spellings. Empty or
// unparsable input yields nil.
func ConvertStringToBool(value string) *bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Debug().Str("value", value).Msg("ignoring non boolean value")

		return nil
	}

	return &parsed
}

// ConvertStringToInt parses a trimmed decimal integer, reporting a conversion failure named after field.
func ConvertStringToInt(field, value string) (int, error) {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, failure.Conversion(fmt.Sprintf("%s must be a whole number", field)) //nolint:wrapcheck
	}

	return result, nil
}

// ParseID parses a positive numeric record id taken from a path parameter.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil || id <= 0 {
		return 0, failure.BadRequestFromString("id must be a positive whole number") //nolint:wrapcheck
	}

	return id, nil
}

// CalculateTotalPage never reports fewer than one page.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields collects the non-zero db-tagged fields of a patch struct
// into column/value pairs and stamps the modification metadata.
func TransformFields(data any, username string) map[string]any {
	value := reflect.Indirect(reflect.ValueOf(data))
	fields := map[string]any{
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}

	if value.Kind() != reflect.Struct {
		return fields
	}

	for index := range value.NumField() {
		column := value.Type().Field(index).Tag.Get("db")
		if column == "" || column == "-" || value.Field(index).IsZero() {
			continue
		}

		fields[column] = value.Field(index).Interface()
	}

	return fields
}

func FilterByID(id any, fieldID, table string) dto.FilterGroup {
	return dto.And(dto.Eq(table, fieldID, id))
}

// BuildCacheKey joins the non-empty parts into a colon separated cache key.
func BuildCacheKey(parts ...string) string {
	kept := make([]string, 0, len(parts))

	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, cacheKeySeparator)
}

// BuildCacheKeyWithQuery appends the paging, sorting and a digest of the filter to prefix.
func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	names := slices.Sorted(maps.Keys(args))

	digest := sha256.New()
	digest.Write([]byte(where))

	for _, name := range names {
		fmt.Fprintf(digest, "|%s=%v", name, args[name])
	}

	return BuildCacheKey(
		prefix,
		"page="+strconv.Itoa(params.Page),
		"limit="+strconv.Itoa(params.Limit),
		"sort="+params.SortBy+" "+params.SortDir,
		hex.EncodeToString(digest.Sum(nil))[:16],
	)
}

// InvalidateCaches removes every key; keys ending with an asterisk clear the whole prefix.
func InvalidateCaches(ctx context.Context, store cache.RedisCache, keys ...string) {
	for _, key := range keys {
		var err error

		if strings.HasSuffix(key, constant.Asterix) {
			err = store.Clear(ctx, key)
		} else {
			err = store.Delete(ctx, key)
		}

		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to invalidate cache")
		}
	}
}

// IsUniqueViolation reports whether err carries a postgres unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
	}

	return false
}

// Actor returns the username of the authenticated caller, or the system actor for background work.
func Actor(ctx context.Context) string {
	if username, ok := ctx.Value(constant.ContextKeyUsername).(string); ok && username != "" {
		return username
	}

	return constant.ContextSystem
}

// ConstraintName returns the postgres constraint named by err, empty when err carries none.
// DataError converts a postgres data exception into a Conversion failure and a
// check violation into a Validation failure. It returns nil for anything else.
func DataError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch {
	case string(pqErr.Code.Class()) == constant.PqErrorClassDataException:
		return failure.Conversion("a value could not be stored: " + pqErr.Message) //nolint:wrapcheck
	case string(pqErr.Code) == constant.PqErrorCodeCheckViolation:
		return failure.Validation([]string{"record violates " + pqErr.Constraint}) //nolint:wrapcheck
	default:
		return nil
	}
}

func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	return ""
}
