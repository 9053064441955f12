package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/otel"
	guestModel "lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	guestRepo "lodging/internal/domains/guest/repository"
	"lodging/internal/domains/room/model"
	"lodging/internal/domains/room/model/dto"
	"lodging/shared"
	"lodging/shared/cache"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	"lodging/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	CacheScope        = "room"
	CacheAvailability = "room:availability"
	CacheDashboard    = "room:dashboard"
)

// InvalidationKeys lists the cache entries a change of occupancy makes stale.
func InvalidationKeys() []string {
	return []string{
		shared.BuildCacheKey(CacheAvailability, constant.Asterix),
		shared.BuildCacheKey(CacheDashboard, constant.Asterix),
	}
}

type Room interface {
	Availability(ctx context.Context, date time.Time) (dto.Availability, error)
	RoomStatus(ctx context.Context, date time.Time) (dto.RoomStatus, error)
	Dashboard(ctx context.Context) (dto.Dashboard, error)
}

type serviceImpl struct {
	guestRepo guestRepo.Guest
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(guestRepo guestRepo.Guest, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Room {
	return &serviceImpl{
		guestRepo: guestRepo,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Availability(ctx context.Context, date time.Time) (res dto.Availability, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Availability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	day := date.Format(constant.DateOnlyFormat)
	scope.SetAttribute("room.date", day)

	cacheKey := cache.Versioned(ctx, s.cache, CacheScope, shared.BuildCacheKey(CacheAvailability, day))

	return cache.Remember(ctx, s.cache, cacheKey, s.cfg.Cache.TTL,
		func(ctx context.Context) (res dto.Availability, err error) {
			occupied, err := s.guestRepo.OccupiedRooms(ctx, date)
			if err != nil {
				log.Error().Err(err).Str("date", day).Msg("failed to get occupied rooms")

				return res, fmt.Errorf("failed to get occupied rooms: %w", err)
			}

			total := s.cfg.App.TotalRooms
			occupied = OccupiedSet(occupied, total)
			available := AvailableSet(occupied, total)

			return dto.Availability{
				Date:           day,
				TotalRooms:     total,
				Available:      available,
				Occupied:       occupied,
				AvailableCount: len(available),
				OccupiedCount:  len(occupied),
			}, nil
		})
}

func (s *serviceImpl) RoomStatus(ctx context.Context, date time.Time) (res dto.RoomStatus, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RoomStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	availability, err := s.Availability(ctx, date)
	if err != nil {
		return res, err
	}

	res.Date = availability.Date
	res.Rooms = make(map[int]string, availability.TotalRooms)

	for _, room := range availability.Available {
		res.Rooms[room] = model.StatusAvailable
	}

	for _, room := range availability.Occupied {
		res.Rooms[room] = model.StatusOccupied
	}

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context) (res dto.Dashboard, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return cache.Remember(ctx, s.cache, cache.Versioned(ctx, s.cache, CacheScope, CacheDashboard), s.cfg.Cache.TTL, s.loadDashboard)
}

func (s *serviceImpl) loadDashboard(ctx context.Context) (res dto.Dashboard, err error) {
	availability, err := s.Availability(ctx, timezone.Today())
	if err != nil {
		return res, err
	}

	todayFilter := gDto.And(
		gDto.Eq(guestModel.TableName, guestModel.FieldCheckInDate, availability.Date),
		gDto.Eq(guestModel.TableName, guestModel.FieldCheckInDone, true),
	)

	checkedIn, err := s.guestRepo.Count(ctx, todayFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count today's check-ins")

		return res, fmt.Errorf("failed to count today's check-ins: %w", err)
	}

	recent, err := s.guestRepo.GetAll(ctx, guestDto.ListParams(gDto.QueryParams{
		Page:  constant.DefaultValuePage,
		Limit: model.RecentCheckInLimit,
	}), gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get recent check-ins")

		return res, fmt.Errorf("failed to get recent check-ins: %w", err)
	}

	res = dto.Dashboard{
		Date:           availability.Date,
		TotalRooms:     availability.TotalRooms,
		CheckedInToday: checkedIn,
		AvailableToday: availability.AvailableCount,
		Recent:         make([]guestDto.RecentCheckIn, len(recent)),
	}

	for i, guest := range recent {
		res.Recent[i].FromModel(guest)
	}

	return res, nil
}
