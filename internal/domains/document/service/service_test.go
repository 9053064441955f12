package service_test

import (
	"bytes"
	"context"
	"errors"
	"lodging/config"
	otelMocks "lodging/infras/otel/mocks"
	s3Mocks "lodging/infras/s3/mocks"
	"lodging/internal/domains/document/service"
	guestDto "lodging/internal/domains/guest/model/dto"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Document, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "lodging"

	return service.New(cfg, storage, otelMocks.NewOtel()), storage
}

func TestDocumentService_Receipt(t *testing.T) {
	svc, _ := newService(t)

	checkOut := time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC)

	data, err := svc.Receipt(context.Background(), guestDto.ReceiptView{
		PropertyName:    "Aggarwal Bhawan",
		ReceiptNumber:   "RCP202610160001",
		IssuedAt:        time.Date(2026, 10, 16, 10, 0, 0, 0, time.UTC),
		FullName:        "Shiv Kumar",
		Address:         "Haridwar",
		MobileNumber:    "9876543210",
		IdentityNumber:  "123456789012",
		RoomNumber:      12,
		Guests:          3,
		CheckInDate:     time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC),
		CheckOutDate:    &checkOut,
		CheckOutTime:    "11:00",
		AmountPaid:      decimal.RequireFromString("1500"),
		RemainingAmount: decimal.RequireFromString("500"),
		Total:           decimal.RequireFromString("2000"),
		PaymentMode:     "Cash",
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestDocumentService_MonthlyReport(t *testing.T) {
	svc, _ := newService(t)

	first := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	second := time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC)

	rows := []guestDto.ExportRow{
		{FullName: "Asha", AmountPaidToday: decimal.RequireFromString("100.50"), RemainingAmount: decimal.RequireFromString("10"), CheckInDate: first, RoomNumber: 1},
		{FullName: "Ravi", AmountPaidToday: decimal.RequireFromString("200"), RemainingAmount: decimal.Zero, CheckInDate: first, RoomNumber: 2},
		{FullName: "Meera", AmountPaidToday: decimal.RequireFromString("50"), RemainingAmount: decimal.RequireFromString("5"), CheckInDate: second, RoomNumber: 1},
	}

	data, err := svc.MonthlyReport(context.Background(), first, time.Date(2026, 10, 31, 0, 0, 0, 0, time.UTC), rows)
	require.NoError(t, err)

	book, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)

	defer book.Close()

	assert.Equal(t, []string{service.ReportSheetName}, book.GetSheetList())

	sheetRows, err := book.GetRows(service.ReportSheetName)
	require.NoError(t, err)

	var labels []string
	for _, r := range sheetRows {
		if len(r) > 0 {
			labels = append(labels, r[0])
		}
	}

	assert.Equal(t, []string{
		"Report 2026-10-01 to 2026-10-31",
		"Date: 2026-10-01", "Name", "Asha", "Ravi", "Daily Total",
		"Date: 2026-10-02", "Name", "Meera", "Daily Total",
		"GRAND TOTAL",
	}, labels)

	grand := sheetRows[len(sheetRows)-1]
	assert.Equal(t, "350.50", grand[3])
	assert.Equal(t, "15.00", grand[4])
}

func TestDocumentService_Archive(t *testing.T) {
	t.Run("disabled storage is a no-op", func(t *testing.T) {
		svc, storage := newService(t)
		storage.EXPECT().Enabled().Return(false)

		url, err := svc.Archive(context.Background(), service.ArchiveDirReceipts, "receipt_1.pdf", "application/pdf", []byte("x"))

		require.NoError(t, err)
		assert.Empty(t, url)
	})

	t.Run("uploads when enabled", func(t *testing.T) {
		svc, storage := newService(t)
		storage.EXPECT().Enabled().Return(true)
		storage.EXPECT().
			UploadFileBytes(gomock.Any(), "lodging", service.ArchiveDirReceipts, "receipt_1.pdf", "application/pdf", []byte("x")).
			Return("https://cdn/receipts/receipt_1.pdf", nil)

		url, err := svc.Archive(context.Background(), service.ArchiveDirReceipts, "receipt_1.pdf", "application/pdf", []byte("x"))

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/receipts/receipt_1.pdf", url)
	})

	t.Run("upload failure", func(t *testing.T) {
		svc, storage := newService(t)
		storage.EXPECT().Enabled().Return(true)
		storage.EXPECT().UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("denied"))

		_, err := svc.Archive(context.Background(), service.ArchiveDirReports, "r.xlsx", "x", nil)

		assert.Error(t, err)
	})
}

func TestDocumentService_Remove(t *testing.T) {
	svc, storage := newService(t)
	storage.EXPECT().Enabled().Return(true)
	storage.EXPECT().DeleteFile(gomock.Any(), "lodging", service.ArchiveDirReceipts, "receipt_9.pdf").Return(nil)

	assert.NoError(t, svc.Remove(context.Background(), service.ArchiveDirReceipts, "receipt_9.pdf"))
}

func TestReportFileName(t *testing.T) {
	assert.Equal(t, "hotel_report_2026_10.xlsx", service.ReportFileName(time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC)))
}
