package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Receipt=MockReceiptService

import (
	"context"
	"errors"
	"fmt"
	"lodging/config"
	"lodging/infras/kafka"
	"lodging/infras/otel"
	documentService "lodging/internal/domains/document/service"
	guestModel "lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	guestRepo "lodging/internal/domains/guest/repository"
	guestService "lodging/internal/domains/guest/service"
	"lodging/internal/domains/receipt/model"
	"lodging/internal/domains/receipt/model/dto"
	receiptRepo "lodging/internal/domains/receipt/repository"
	"lodging/shared"
	"lodging/shared/cache"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	"lodging/shared/failure"
	gRepo "lodging/shared/repository"
	"lodging/shared/timezone"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	savepointDaily = "daily_receipt"

	suffixMin   = 10
	suffixRange = 90
	maxSequence = 9999
)

var errIssueRaceLost = errors.New("receipt issued concurrently")

type Receipt interface {
	// AllocateGlobal draws the next formal receipt number outside any transaction.
	AllocateGlobal(ctx context.Context) (string, error)
	// AllocateDaily draws a check-in receipt number inside tx; it never leaves tx aborted.
	AllocateDaily(ctx context.Context, tx *sqlx.Tx, now time.Time) (string, error)
	IssueFormal(ctx context.Context, guestID int64) (dto.IssueResponse, error)
	// Render produces the PDF of a guest's current receipt.
	Render(ctx context.Context, guestID int64) (dto.ReceiptFile, error)
	Counter(ctx context.Context) (dto.CounterResponse, error)
}

type serviceImpl struct {
	guestRepo   guestRepo.Guest
	receiptRepo receiptRepo.Receipt
	transactor  gRepo.Transactor
	document    documentService.Document
	cfg         *config.Config
	cache       cache.RedisCache
	kafka       kafka.Client
	otel        otel.Otel
}

func New(
	guestRepo guestRepo.Guest,
	receiptRepo receiptRepo.Receipt,
	transactor gRepo.Transactor,
	document documentService.Document,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Receipt {
	return &serviceImpl{
		guestRepo:   guestRepo,
		receiptRepo: receiptRepo,
		transactor:  transactor,
		document:    document,
		cfg:         cfg,
		cache:       cache,
		kafka:       kafka,
		otel:        otel,
	}
}

func (s *serviceImpl) formatGlobal(number int64) string {
	width := s.cfg.App.Receipt.FormalWidth
	if width <= 0 {
		width = model.DefaultFormalWidth
	}

	return fmt.Sprintf("%0*d", width, number)
}

func (s *serviceImpl) AllocateGlobal(ctx context.Context) (number string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllocateGlobal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	next, err := s.receiptRepo.NextGlobal(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to allocate global receipt number")

		return "", failure.Generation("failed to generate receipt number") //nolint:wrapcheck
	}

	return s.formatGlobal(next), nil
}

func (s *serviceImpl) AllocateDaily(ctx context.Context, tx *sqlx.Tx, now time.Time) (number string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AllocateDaily")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	prefix := model.DailyPrefix + now.Format(constant.CompactDate)

	if err = s.transactor.Savepoint(ctx, tx, savepointDaily); err != nil {
		log.Error().Err(err).Msg("failed to open receipt savepoint")

		return "", failure.Generation("failed to generate receipt number") //nolint:wrapcheck
	}

	number, err = s.sequenced(ctx, tx, prefix, now)
	if err == nil {
		return number, nil
	}

	log.Error().Err(err).Str("prefix", prefix).Msg("date-scoped receipt allocation failed, using timestamp receipt")

	if err = s.transactor.RollbackToSavepoint(ctx, tx, savepointDaily); err != nil {
		log.Error().Err(err).Msg("failed to roll back receipt savepoint")

		return "", failure.Generation("failed to generate receipt number") //nolint:wrapcheck
	}

	fallback := model.DailyPrefix + now.Format(constant.CompactDateTime)

	exists, err := s.guestRepo.ReceiptExists(ctx, tx, fallback)
	if err != nil || exists {
		log.Error().Err(err).Str("receipt", fallback).Bool("exists", exists).Msg("timestamp receipt unavailable")

		return "", failure.Generation("failed to generate a unique receipt number") //nolint:wrapcheck
	}

	scope.AddEvent("timestamp receipt fallback")

	return fallback, nil
}

// sequenced returns RCP<day><seq>, where seq continues from both the stored receipts and the day counter.
func (s *serviceImpl) sequenced(ctx context.Context, tx *sqlx.Tx, prefix string, now time.Time) (string, error) {
	latest, err := s.guestRepo.LatestReceiptWithPrefix(ctx, tx, prefix, model.DailyReceiptLen)
	if err != nil {
		return "", err
	}

	floor := 1

	if latest != "" {
		last, err := strconv.Atoi(latest[len(prefix):])
		if err != nil {
			return "", fmt.Errorf("malformed receipt number %q: %w", latest, err)
		}

		floor = last + 1
	}

	sequence, err := s.receiptRepo.NextDailyTx(ctx, tx, now, floor)
	if err != nil {
		return "", err
	}

	if sequence > maxSequence {
		return "", fmt.Errorf("daily receipt sequence exhausted at %d", sequence)
	}

	candidate := fmt.Sprintf("%s%0*d", prefix, model.DailySequenceLen, sequence)

	exists, err := s.guestRepo.ReceiptExists(ctx, tx, candidate)
	if err != nil {
		return "", err
	}

	if !exists {
		return candidate, nil
	}

	suffixed := fmt.Sprintf("%s%02d", candidate, suffixMin+rand.IntN(suffixRange)) //nolint:gosec

	exists, err = s.guestRepo.ReceiptExists(ctx, tx, suffixed)
	if err != nil {
		return "", err
	}

	if exists {
		return "", fmt.Errorf("receipt number %s already taken", suffixed)
	}

	return suffixed, nil
}

func (s *serviceImpl) IssueFormal(ctx context.Context, guestID int64) (res dto.IssueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IssueFormal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName)

	guest, err := s.guestRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("guestID", guestID).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound("guest not found") //nolint:wrapcheck
	}

	res.GuestID = guest.ID
	res.DownloadPath = dto.DownloadPath(guest.ID)

	if !guest.CheckInDone {
		return res, failure.BadRequestFromString("receipt can only be generated after check-in is completed") //nolint:wrapcheck
	}

	if guest.HasReceipt() {
		res.ReceiptNumber = guest.Receipt()
		res.AlreadyIssued = true

		return res, nil
	}

	actor := shared.Actor(ctx)

	var number string

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		next, err := s.receiptRepo.NextGlobalTx(ctx, tx)
		if err != nil {
			log.Error().Err(err).Msg("failed to allocate global receipt number")

			return failure.Generation("failed to generate receipt number") //nolint:wrapcheck
		}

		number = s.formatGlobal(next)

		updated, err := s.guestRepo.SetReceiptNumberTx(ctx, tx, guest.ID, number, actor)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if !updated {
			return errIssueRaceLost
		}

		return nil
	})

	switch {
	case errors.Is(err, errIssueRaceLost):
		return s.winner(ctx, filter, res)
	case shared.IsUniqueViolation(err):
		return res, failure.Conflict("receipt number already in use") //nolint:wrapcheck
	case err != nil:
		if failure.Is(err, failure.CategoryGeneration) {
			return res, err
		}

		log.Error().Err(err).Int64("guestID", guestID).Msg("failed to issue receipt")

		return res, fmt.Errorf("failed to issue receipt: %w", err)
	}

	res.ReceiptNumber = number

	receiptNumber := number
	guest.ReceiptNumber = &receiptNumber

	guestService.Invalidate(context.WithoutCancel(ctx), s.cache, guest.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		event := guestModel.NewEvent(guestModel.EventReceiptIssued, guest, actor, timezone.Now())
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Receipt, event.ToMessage()); err != nil {
			log.Warn().Err(err).Int64("guestID", guest.ID).Msg("failed to publish receipt event")
		}
	}()

	return res, nil
}

// winner re-reads a guest whose receipt was written by a concurrent issuer.
func (s *serviceImpl) winner(ctx context.Context, filter gDto.FilterGroup, res dto.IssueResponse) (dto.IssueResponse, error) {
	guest, err := s.guestRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Int64("guestID", res.GuestID).Msg("failed to re-read guest after concurrent issue")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if !guest.HasReceipt() {
		return res, failure.Generation("failed to generate receipt number") //nolint:wrapcheck
	}

	res.ReceiptNumber = guest.Receipt()
	res.AlreadyIssued = true

	return res, nil
}

func (s *serviceImpl) Render(ctx context.Context, guestID int64) (res dto.ReceiptFile, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Render")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.guestRepo.Get(ctx, shared.FilterByID(guestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Int64("guestID", guestID).Msg("failed to get guest")

		return res, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return res, failure.NotFound("guest not found") //nolint:wrapcheck
	}

	if !guest.HasReceipt() {
		return res, failure.NotFound("receipt not found") //nolint:wrapcheck
	}

	var view guestDto.ReceiptView
	view.FromModel(guest, s.cfg.App.PropertyName, guest.CreatedAt)

	data, err := s.document.Receipt(ctx, view)
	if err != nil {
		return res, fmt.Errorf("failed to render receipt: %w", err)
	}

	res.FileName = dto.FileName(guest.Receipt())
	res.ContentType = constant.ContentTypePDF
	res.Data = data

	return res, nil
}

func (s *serviceImpl) Counter(ctx context.Context) (res dto.CounterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Counter")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	counter, err := s.receiptRepo.Current(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get receipt counter")

		return res, fmt.Errorf("failed to get receipt counter: %w", err)
	}

	res.FromModel(counter)

	return res, nil
}
