package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/kafka"
	"lodging/infras/otel"
	"lodging/internal/domains/checkin/model/dto"
	documentService "lodging/internal/domains/document/service"
	guestModel "lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	guestRepo "lodging/internal/domains/guest/repository"
	guestService "lodging/internal/domains/guest/service"
	receiptDto "lodging/internal/domains/receipt/model/dto"
	receiptService "lodging/internal/domains/receipt/service"
	roomService "lodging/internal/domains/room/service"
	"lodging/shared"
	"lodging/shared/cache"
	"lodging/shared/constant"
	"lodging/shared/failure"
	gRepo "lodging/shared/repository"
	"lodging/shared/timezone"
	"lodging/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type CheckIn interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.CheckInResponse, error)
}

type serviceImpl struct {
	guestRepo  guestRepo.Guest
	transactor gRepo.Transactor
	receipt    receiptService.Receipt
	document   documentService.Document
	cfg        *config.Config
	cache      cache.RedisCache
	kafka      kafka.Client
	otel       otel.Otel
}

func New(
	guestRepo guestRepo.Guest,
	transactor gRepo.Transactor,
	receipt receiptService.Receipt,
	document documentService.Document,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) CheckIn {
	return &serviceImpl{
		guestRepo:  guestRepo,
		transactor: transactor,
		receipt:    receipt,
		document:   document,
		cfg:        cfg,
		cache:      cache,
		kafka:      kafka,
		otel:       otel,
	}
}

// assignRoom picks the requested room, or the lowest free one when requested is zero.
func assignRoom(occupied []int, requested, total int, date string) (int, error) {
	occupied = roomService.OccupiedSet(occupied, total)

	room, ok := roomService.NextAvailable(occupied, total)
	if !ok {
		return 0, failure.Capacity("no rooms available for " + date) //nolint:wrapcheck
	}

	if requested == 0 {
		return room, nil
	}

	if !roomService.IsAvailable(requested, occupied, total) {
		return 0, failure.Capacity(fmt.Sprintf("room %d is not available for %s", requested, date)) //nolint:wrapcheck
	}

	return requested, nil
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.CheckInResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	messages := validator.ValidateAll(&req)
	messages = append(messages, req.CrossFieldMessages()...)

	if len(messages) > 0 {
		return res, failure.Validation(messages) // nolint:wrapcheck
	}

	now := timezone.Now()
	actor := shared.Actor(ctx)

	guest, err := req.ToModel(now, actor)
	if err != nil {
		return res, err
	}

	requested, err := req.RequestedRoom()
	if err != nil {
		return res, err
	}

	date := guest.CheckInDate.Format(constant.DateOnlyFormat)
	scope.SetAttribute("checkin.date", date)

	err = s.transactor.WithTx(ctx, func(tx *sqlx.Tx) error {
		if err := s.guestRepo.LockDate(ctx, tx, guest.CheckInDate); err != nil {
			return err //nolint:wrapcheck
		}

		occupied, err := s.guestRepo.OccupiedRoomsTx(ctx, tx, guest.CheckInDate)
		if err != nil {
			return err //nolint:wrapcheck
		}

		if guest.RoomNumber, err = assignRoom(occupied, requested, s.cfg.App.TotalRooms, date); err != nil {
			return err
		}

		number, err := s.receipt.AllocateDaily(ctx, tx, now)
		if err != nil {
			return err //nolint:wrapcheck
		}

		guest.ReceiptNumber = &number

		guest.ID, err = s.guestRepo.InsertTx(ctx, tx, guest)

		return err //nolint:wrapcheck
	})
	if err != nil {
		return res, s.mapError(err, guest, date)
	}

	log.Info().Int64("guestID", guest.ID).Int("room", guest.RoomNumber).Str("receipt", guest.Receipt()).Msg("guest checked in")

	s.afterCheckIn(ctx, guest, actor)

	res.Guest.FromModel(guest)
	res.RoomNumber = guest.RoomNumber
	res.ReceiptNumber = guest.Receipt()
	res.DownloadPath = receiptDto.DownloadPath(guest.ID)

	return res, nil
}

func (s *serviceImpl) mapError(err error, guest guestModel.Guest, date string) error {
	switch {
	case shared.IsUniqueViolation(err) && shared.ConstraintName(err) == guestModel.IndexRoomDateOccupied:
		log.Warn().Err(err).Int("room", guest.RoomNumber).Str("date", date).Msg("check-in rejected by room index")

		return failure.Conflict(fmt.Sprintf("room %d is already occupied for %s", guest.RoomNumber, date)) //nolint:wrapcheck
	case shared.IsUniqueViolation(err):
		log.Warn().Err(err).Str("receipt", guest.Receipt()).Msg("check-in rejected by unique constraint")

		return failure.Conflict("guest record conflicts with an existing record") //nolint:wrapcheck
	case failure.GetCategory(err) != "":
		return err
	case shared.DataError(err) != nil:
		log.Warn().Err(err).Str("date", date).Msg("check-in rejected by column type")

		return shared.DataError(err)
	default:
		log.Error().Err(err).Str("date", date).Msg("failed to check in guest")

		return fmt.Errorf("failed to check in guest: %w", err)
	}
}

// afterCheckIn drops stale caches of a committed check-in, then runs the
// best-effort follow-ups in the background.
func (s *serviceImpl) afterCheckIn(ctx context.Context, guest guestModel.Guest, actor string) {
	guestService.Invalidate(context.WithoutCancel(ctx), s.cache, guest.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		event := guestModel.NewEvent(guestModel.EventCheckedIn, guest, actor, timezone.Now())
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Guest, event.ToMessage()); err != nil {
			log.Warn().Err(err).Int64("guestID", guest.ID).Msg("failed to publish check-in event")
		}

		if !s.cfg.External.S3.Enable {
			return
		}

		var view guestDto.ReceiptView
		view.FromModel(guest, s.cfg.App.PropertyName, guest.CreatedAt)

		data, err := s.document.Receipt(c, view)
		if err != nil {
			return
		}

		if _, err := s.document.Archive(c, documentService.ArchiveDirReceipts, receiptDto.FileName(guest.Receipt()), constant.ContentTypePDF, data); err != nil {
			log.Warn().Err(err).Int64("guestID", guest.ID).Msg("failed to archive receipt")
		}
	}()
}
