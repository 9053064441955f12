package dto_test

import (
	"lodging/internal/domains/report/model/dto"
	"lodging/shared/failure"
	gDto "lodging/shared/dto"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	now := time.Date(2026, 10, 16, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		month    string
		wantFrom string
		wantTo   string
		wantErr  bool
	}{
		{name: "defaults to current month", month: "", wantFrom: "2026-10-01", wantTo: "2026-10-31"},
		{name: "february of a leap year", month: "2028-02", wantFrom: "2028-02-01", wantTo: "2028-02-29"},
		{name: "thirty day month", month: "2026-11", wantFrom: "2026-11-01", wantTo: "2026-11-30"},
		{name: "malformed", month: "10-2026", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			period, err := dto.ParseMonth(tt.month, now)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, period.From.Format("2006-01-02"))
			assert.Equal(t, tt.wantTo, period.To.Format("2006-01-02"))
		})
	}
}

func TestMonthRange_Query(t *testing.T) {
	period, err := dto.ParseMonth("2026-10", time.Now())
	require.NoError(t, err)

	assert.Equal(t, "2026-10", period.Label())

	group := period.FilterGroup()
	require.Len(t, group.Filters, 2)

	from, ok := group.Filters[0].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, "2026-10-01", from.Value)
	assert.Equal(t, gDto.FilterOperatorGreaterEq, from.Operator)

	to, ok := group.Filters[1].(gDto.Filter)
	require.True(t, ok)
	assert.Equal(t, "2026-10-31", to.Value)
	assert.Equal(t, gDto.FilterOperatorLessEq, to.Operator)

	params := period.QueryParams()
	assert.Equal(t, "tourists.check_in_date ASC, tourists.created_at", params.SortBy)
	assert.Equal(t, "ASC", params.SortDir)
	assert.Zero(t, params.Limit)
}
