package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Guest=MockGuestService

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/kafka"
	"lodging/infras/otel"
	documentService "lodging/internal/domains/document/service"
	"lodging/internal/domains/guest/model"
	"lodging/internal/domains/guest/model/dto"
	"lodging/internal/domains/guest/repository"
	receiptDto "lodging/internal/domains/receipt/model/dto"
	roomService "lodging/internal/domains/room/service"
	"lodging/shared"
	"lodging/shared/cache"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	"lodging/shared/failure"
	"lodging/shared/timezone"
	"lodging/shared/validator"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	CacheScope = "guest"
	CacheGet   = "guest:get"
	CacheList  = "guest:list"
)

// InvalidationKeys lists the cache entries made stale by a change to guest id.
func InvalidationKeys(id int64) []string {
	keys := []string{
		shared.BuildCacheKey(CacheGet, strconv.FormatInt(id, 10), constant.Asterix),
		shared.BuildCacheKey(CacheList, constant.Asterix),
	}

	return append(keys, roomService.InvalidationKeys()...)
}

// Invalidate starts new guest and room cache generations, then drops the
// entries a change to guest id made stale. It returns once both are done.
func Invalidate(ctx context.Context, store cache.RedisCache, id int64) {
	for _, scope := range []string{CacheScope, roomService.CacheScope} {
		if err := cache.Bump(ctx, store, scope); err != nil {
			log.Warn().Err(err).Str("scope", scope).Msg("failed to bump cache generation")
		}
	}

	shared.InvalidateCaches(ctx, store, InvalidationKeys(id)...)
}

type Guest interface {
	Get(ctx context.Context, id int64) (dto.GuestDetail, error)
	List(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error)
	Search(ctx context.Context, req dto.SearchRequest, params gDto.QueryParams) (dto.GetGuestsResponse, error)
	Update(ctx context.Context, id int64, req dto.UpdateGuestRequest) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Guest
	document documentService.Document
	cfg      *config.Config
	cache    cache.RedisCache
	kafka    kafka.Client
	otel     otel.Otel
}

func New(
	repo repository.Guest,
	document documentService.Document,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Guest {
	return &serviceImpl{
		repo:     repo,
		document: document,
		cfg:      cfg,
		cache:    cache,
		kafka:    kafka,
		otel:     otel,
	}
}

func (s *serviceImpl) find(ctx context.Context, id int64) (model.Guest, error) {
	guest, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Int64("guestID", id).Msg("failed to get guest")

		return guest, fmt.Errorf("failed to get guest: %w", err)
	}

	if guest.ID == 0 {
		return guest, failure.NotFound("guest not found") // nolint:wrapcheck
	}

	return guest, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.GuestDetail, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("guest.id", id)

	cacheKey := cache.Versioned(ctx, s.cache, CacheScope, shared.BuildCacheKey(CacheGet, strconv.FormatInt(id, 10)))

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL,
		func(ctx context.Context) (res dto.GuestDetail, err error) {
			guest, err := s.find(ctx, id)
			if err != nil {
				return res, err
			}

			res.FromModel(guest)

			return res, nil
		})
}

func (s *serviceImpl) List(ctx context.Context, params gDto.QueryParams) (dto.GetGuestsResponse, error) {
	return s.Search(ctx, dto.SearchRequest{}, params)
}

func (s *serviceImpl) Search(ctx context.Context, req dto.SearchRequest, params gDto.QueryParams) (res dto.GetGuestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Search")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if messages := validator.ValidateAll(&req); len(messages) > 0 {
		return res, failure.Validation(messages) // nolint:wrapcheck
	}

	params = dto.ListParams(params)
	filter := req.ToFilterGroup()
	cacheKey := cache.Versioned(ctx, s.cache, CacheScope, shared.BuildCacheKeyWithQuery(CacheList, params, filter))

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL, func(ctx context.Context) (res dto.GetGuestsResponse, err error) {
		total, err := s.repo.Count(ctx, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to count guests")

			return res, fmt.Errorf("failed to count guests: %w", err)
		}

		models, err := s.repo.GetAll(ctx, params, filter)
		if err != nil {
			log.Error().Err(err).Msg("failed to get guests")

			return res, fmt.Errorf("failed to get guests: %w", err)
		}

		res.FromModels(models, total, params.Limit)

		return res, nil
	})
}

func (s *serviceImpl) Update(ctx context.Context, id int64, req dto.UpdateGuestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	if messages := validator.ValidateAll(&req); len(messages) > 0 {
		return failure.Validation(messages) // nolint:wrapcheck
	}

	guest, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if messages := req.CrossFieldMessages(guest); len(messages) > 0 {
		return failure.Validation(messages) // nolint:wrapcheck
	}

	actor := shared.Actor(ctx)

	updatedFields, err := req.ToUpdateFields(actor)
	if err != nil {
		return err
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if dataErr := shared.DataError(err); dataErr != nil {
			log.Warn().Err(err).Int64("guestID", id).Msg("guest update rejected by column type")

			return dataErr
		}

		log.Error().Err(err).Int64("guestID", id).Msg("failed to update guest")

		return fmt.Errorf("failed to update guest: %w", err)
	}

	s.afterChange(ctx, model.EventUpdated, guest, actor)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	guest, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Int64("guestID", id).Msg("failed to delete guest")

		return fmt.Errorf("failed to delete guest: %w", err)
	}

	if guest.HasReceipt() {
		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.document.Remove(c, documentService.ArchiveDirReceipts, receiptDto.FileName(guest.Receipt())); err != nil {
				log.Warn().Err(err).Int64("guestID", id).Msg("failed to remove archived receipt")
			}
		}()
	}

	s.afterChange(ctx, model.EventDeleted, guest, shared.Actor(ctx))

	return nil
}

// afterChange drops stale caches before returning and publishes the event in the background.
func (s *serviceImpl) afterChange(ctx context.Context, eventType string, guest model.Guest, actor string) {
	Invalidate(context.WithoutCancel(ctx), s.cache, guest.ID)

	go func() {
		c := context.WithoutCancel(ctx)

		event := model.NewEvent(eventType, guest, actor, timezone.Now())
		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.Guest, event.ToMessage()); err != nil {
			log.Warn().Err(err).Int64("guestID", guest.ID).Str("event", eventType).Msg("failed to publish guest event")
		}
	}()
}
