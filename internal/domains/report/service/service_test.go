package service_test

import (
	"context"
	"errors"
	"lodging/config"
	otelMocks "lodging/infras/otel/mocks"
	documentMocks "lodging/internal/domains/document/mocks"
	guestMocks "lodging/internal/domains/guest/mocks"
	guestModel "lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/internal/domains/report/service"
	"lodging/shared/failure"
	gDto "lodging/shared/dto"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (service.Report, *guestMocks.MockGuest, *documentMocks.MockDocument) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := guestMocks.NewMockGuest(ctrl)
	document := documentMocks.NewMockDocument(ctrl)

	return service.New(repo, document, &config.Config{}, otelMocks.NewOtel()), repo, document
}

func TestMonthly(t *testing.T) {
	t.Run("renders the stays of the month", func(t *testing.T) {
		svc, repo, document := setup(t)

		guests := []guestModel.Guest{
			{FullName: "Asha", AmountPaidToday: decimal.RequireFromString("100.25"), RoomNumber: 1},
			{FullName: "Ravi", AmountPaidToday: decimal.RequireFromString("250.25"), RoomNumber: 2},
		}

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]guestModel.Guest, error) {
				assert.Equal(t, "ASC", params.SortDir)
				assert.Len(t, filter.Filters, 2)

				return guests, nil
			})
		document.EXPECT().MonthlyReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, from, to time.Time, rows []guestDto.ExportRow) ([]byte, error) {
				assert.Equal(t, "2026-09-01", from.Format("2006-01-02"))
				assert.Equal(t, "2026-09-30", to.Format("2006-01-02"))
				assert.Len(t, rows, 2)
				assert.Equal(t, "Ravi", rows[1].FullName)

				return []byte("xlsx"), nil
			})
		document.EXPECT().Archive(gomock.Any(), "reports", "hotel_report_2026_09.xlsx", gomock.Any(), gomock.Any()).
			Return("", nil).AnyTimes()

		res, err := svc.Monthly(context.Background(), "2026-09")

		require.NoError(t, err)
		assert.Equal(t, "hotel_report_2026_09.xlsx", res.FileName)
		assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", res.ContentType)
		assert.Equal(t, []byte("xlsx"), res.Data)
	})

	t.Run("empty month", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := svc.Monthly(context.Background(), "2026-09")

		require.Error(t, err)
		assert.True(t, failure.Is(err, failure.CategoryNotFound))
		assert.Equal(t, "no data available for 2026-09", err.Error())
	})

	t.Run("malformed month", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, err := svc.Monthly(context.Background(), "september")

		assert.Error(t, err)
	})

	t.Run("repository failure", func(t *testing.T) {
		svc, repo, _ := setup(t)

		repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

		_, err := svc.Monthly(context.Background(), "2026-09")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get stays for report")
	})
}
