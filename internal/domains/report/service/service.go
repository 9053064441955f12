package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/otel"
	documentService "lodging/internal/domains/document/service"
	guestDto "lodging/internal/domains/guest/model/dto"
	guestRepo "lodging/internal/domains/guest/repository"
	"lodging/internal/domains/report/model/dto"
	"lodging/shared/constant"
	"lodging/shared/failure"
	"lodging/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Report interface {
	// Monthly renders the workbook of every stay checked in during month (YYYY-MM, empty for the current one).
	Monthly(ctx context.Context, month string) (dto.ReportFile, error)
}

type serviceImpl struct {
	guestRepo guestRepo.Guest
	document  documentService.Document
	cfg       *config.Config
	otel      otel.Otel
}

func New(guestRepo guestRepo.Guest, document documentService.Document, cfg *config.Config, otel otel.Otel) Report {
	return &serviceImpl{
		guestRepo: guestRepo,
		document:  document,
		cfg:       cfg,
		otel:      otel,
	}
}

func (s *serviceImpl) Monthly(ctx context.Context, month string) (res dto.ReportFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Monthly")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	period, err := dto.ParseMonth(month, timezone.Now())
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	scope.SetAttribute("report.month", period.Label())

	guests, err := s.guestRepo.GetAll(ctx, period.QueryParams(), period.FilterGroup())
	if err != nil {
		log.Error().Err(err).Str("month", period.Label()).Msg("failed to get stays for report")

		return res, fmt.Errorf("failed to get stays for report: %w", err)
	}

	if len(guests) == 0 {
		return res, failure.NotFound("no data available for " + period.Label()) //nolint:wrapcheck
	}

	rows := make([]guestDto.ExportRow, len(guests))
	for i, guest := range guests {
		rows[i].FromModel(guest)
	}

	data, err := s.document.MonthlyReport(ctx, period.From, period.To, rows)
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res = dto.ReportFile{
		FileName:    documentService.ReportFileName(period.From),
		ContentType: constant.ContentTypeXLSX,
		Data:        data,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if _, err := s.document.Archive(c, documentService.ArchiveDirReports, res.FileName, res.ContentType, data); err != nil {
			log.Warn().Err(err).Str("month", period.Label()).Msg("failed to archive report")
		}
	}()

	log.Info().Str("month", period.Label()).Int("rows", len(rows)).Msg("monthly report generated")

	return res, nil
}
