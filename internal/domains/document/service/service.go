package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/otel"
	"lodging/infras/s3"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ArchiveDirReceipts = "receipts"
	ArchiveDirReports  = "reports"
)

type Document interface {
	// Receipt renders a single receipt as PDF.
	Receipt(ctx context.Context, view guestDto.ReceiptView) ([]byte, error)
	// MonthlyReport renders the rows of one month as an xlsx workbook.
	MonthlyReport(ctx context.Context, from, to time.Time, rows []guestDto.ExportRow) ([]byte, error)
	// Archive stores a rendered document and returns its URL; it is a no-op when storage is disabled.
	Archive(ctx context.Context, dir, name, contentType string, data []byte) (string, error)
	Remove(ctx context.Context, dir, name string) error
}

type serviceImpl struct {
	cfg     *config.Config
	storage s3.S3
	otel    otel.Otel
}

func New(cfg *config.Config, storage s3.S3, otel otel.Otel) Document {
	return &serviceImpl{
		cfg:     cfg,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) Receipt(ctx context.Context, view guestDto.ReceiptView) (data []byte, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".Receipt")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("receipt.number", view.ReceiptNumber)

	data, err = renderReceipt(view)
	if err != nil {
		log.Error().Err(err).Str("receipt", view.ReceiptNumber).Msg("failed to render receipt")

		return nil, fmt.Errorf("failed to render receipt: %w", err)
	}

	return data, nil
}

func (s *serviceImpl) MonthlyReport(ctx context.Context, from, to time.Time, rows []guestDto.ExportRow) (data []byte, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".MonthlyReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	data, err = renderMonthlyReport(from, to, rows)
	if err != nil {
		log.Error().Err(err).Time("from", from).Msg("failed to render monthly report")

		return nil, fmt.Errorf("failed to render monthly report: %w", err)
	}

	return data, nil
}

func (s *serviceImpl) Archive(ctx context.Context, dir, name, contentType string, data []byte) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".Archive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.storage.Enabled() {
		return "", nil
	}

	url, err = s.storage.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, dir, name, contentType, data)
	if err != nil {
		log.Error().Err(err).Str("dir", dir).Str("name", name).Msg("failed to archive document")

		return "", fmt.Errorf("failed to archive document: %w", err)
	}

	return url, nil
}

func (s *serviceImpl) Remove(ctx context.Context, dir, name string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelDocumentScopeName, constant.OtelDocumentScopeName+".Remove")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if !s.storage.Enabled() {
		return nil
	}

	if err = s.storage.DeleteFile(ctx, s.cfg.External.S3.BucketName, dir, name); err != nil {
		log.Error().Err(err).Str("dir", dir).Str("name", name).Msg("failed to remove archived document")

		return fmt.Errorf("failed to remove archived document: %w", err)
	}

	return nil
}
