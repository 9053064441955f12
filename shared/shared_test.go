package shared_test

import (
	"context"
	"errors"
	"fmt"
	"lodging/shared"
	"lodging/shared/cache/mocks"
	"lodging/shared/constant"
	"lodging/shared/dto"
	"lodging/shared/failure"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		input string
		want  *bool
	}{
		{input: "", want: nil},
		{input: "  ", want: nil},
		{input: "true", want: &yes},
		{input: " 1 ", want: &yes},
		{input: "T", want: &yes},
		{input: "false", want: &no},
		{input: "0", want: &no},
		{input: "yes", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		total, limit, want int
	}{
		{total: 0, limit: 10, want: 1},
		{total: 100, limit: 0, want: 1},
		{total: 100, limit: -5, want: 1},
		{total: 1, limit: 10, want: 1},
		{total: 10, limit: 10, want: 1},
		{total: 11, limit: 10, want: 2},
		{total: 157, limit: 20, want: 8},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.total, tt.limit), func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type patch struct {
		FullName    string  `db:"full_name"`
		RoomNumbers string  `db:"room_numbers"`
		Age         *int    `db:"age"`
		Internal    string  `db:"-"`
		Untagged    string
		Remarks     *string `db:"remarks"`
	}

	zero := 0

	fields := shared.TransformFields(patch{
		FullName: "Asha Verma",
		Age:      &zero,
		Internal: "skip",
		Untagged: "skip",
	}, "admin")

	assert.Equal(t, "Asha Verma", fields["full_name"])
	assert.Equal(t, &zero, fields["age"])
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, fields[constant.FieldModifiedAt])

	for _, column := range []string{"room_numbers", "remarks", "-", "Untagged"} {
		assert.NotContains(t, fields, column)
	}

	assert.Len(t, shared.TransformFields(&patch{}, "system"), 2)
	assert.Len(t, shared.TransformFields("not a struct", "system"), 2)
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID(int64(7), "id", "tourists")

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(tourists.id = :id)", where)
	assert.Equal(t, map[string]any{"id": int64(7)}, args)
}

func TestConvertStringToInt(t *testing.T) {
	value, err := shared.ConvertStringToInt("room_number", " 42 ")
	assert.NoError(t, err)
	assert.Equal(t, 42, value)

	_, err = shared.ConvertStringToInt("room_number", "4a")
	assert.True(t, failure.Is(err, failure.CategoryConversion))
	assert.Equal(t, "room_number must be a whole number", err.Error())
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "room:availability:2026-10-16", shared.BuildCacheKey("room", "availability", "2026-10-16"))
	assert.Equal(t, "room:dashboard", shared.BuildCacheKey("room", "", "dashboard"))

	params := dto.QueryParams{Page: 2, Limit: 10, SortBy: "created_at", SortDir: "DESC"}
	byName := dto.FilterGroup{
		Filters:  []any{dto.Filter{Field: "full_name", Value: "asha", Operator: dto.FilterOperatorLike}},
		Operator: dto.FilterGroupOperatorAnd,
	}
	byMobile := dto.FilterGroup{
		Filters:  []any{dto.Filter{Field: "mobile_number", Value: "98", Operator: dto.FilterOperatorLike}},
		Operator: dto.FilterGroupOperatorAnd,
	}

	key := shared.BuildCacheKeyWithQuery("guest:list", params, byName)
	assert.True(t, strings.HasPrefix(key, "guest:list:page=2:limit=10:sort=created_at DESC:"))
	assert.Equal(t, key, shared.BuildCacheKeyWithQuery("guest:list", params, byName))
	assert.NotEqual(t, key, shared.BuildCacheKeyWithQuery("guest:list", params, byMobile))
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockRedisCache(ctrl)

	ctx := context.Background()

	store.EXPECT().Delete(ctx, "room:dashboard").Return(nil)
	store.EXPECT().Clear(ctx, "room:availability:*").Return(errors.New("redis down"))

	shared.InvalidateCaches(ctx, store, "room:dashboard", "room:availability:*")
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, shared.IsUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, shared.IsUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, shared.IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, shared.IsUniqueViolation(errors.New("boom")))
}

func TestDataError(t *testing.T) {
	overflow := fmt.Errorf("update: %w", &pq.Error{Code: "22003", Message: "numeric field overflow"})

	err := shared.DataError(overflow)
	require.Error(t, err)
	assert.Equal(t, failure.CategoryConversion, failure.GetCategory(err))
	assert.Contains(t, err.Error(), "numeric field overflow")

	err = shared.DataError(&pq.Error{Code: "23514", Constraint: "tourists_age_check"})
	require.Error(t, err)
	assert.Equal(t, failure.CategoryValidation, failure.GetCategory(err))

	assert.NoError(t, shared.DataError(&pq.Error{Code: "23505"}))
	assert.NoError(t, shared.DataError(errors.New("boom")))
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.ContextSystem, shared.Actor(context.Background()))

	ctx := context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")
	assert.Equal(t, "admin", shared.Actor(ctx))
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23505", Constraint: "tourists_receipt_number_key"})

	assert.Equal(t, "tourists_receipt_number_key", shared.ConstraintName(err))
	assert.Empty(t, shared.ConstraintName(errors.New("plain")))
}

func TestParseID(t *testing.T) {
	id, err := shared.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, value := range []string{"", "0", "-3", "abc"} {
		_, err := shared.ParseID(value)
		assert.Error(t, err, value)
	}
}
