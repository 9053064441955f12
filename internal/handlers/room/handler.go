package room

import (
	"lodging/infras/otel"
	"lodging/internal/domains/room/service"
	"lodging/shared/constant"
	"lodging/shared/failure"
	"lodging/shared/timezone"
	"lodging/transport/http/response"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/rooms/availability", handler.Availability)
	router.Get("/rooms/status", handler.Status)
	router.Get("/dashboard", handler.Dashboard)
}

// queryDate reads ?date=YYYY-MM-DD, defaulting to today.
func queryDate(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get(constant.RequestParamDate)
	if value == "" {
		return timezone.Today(), nil
	}

	date, err := timezone.ParseDate(value)
	if err != nil {
		return date, failure.BadRequestFromString("date must be in the format 2006-01-02") //nolint:wrapcheck
	}

	return date, nil
}

// Availability lists free and occupied rooms for a date.
// @Summary Room availability
// @Tags Room
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.Availability]
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/availability [get]
// @Security BearerAuth
func (handler *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Availability")
	defer scope.End()

	date, err := queryDate(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Availability(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Status maps every room to its state for a date.
// @Summary Room status
// @Tags Room
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.RoomStatus]
// @Failure 400 {object} response.Error
// @Router /v1/rooms/status [get]
// @Security BearerAuth
func (handler *Handler) Status(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Status")
	defer scope.End()

	date, err := queryDate(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	res, err := handler.service.RoomStatus(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Dashboard reports today's occupancy and the latest check-ins.
// @Summary Dashboard
// @Tags Room
// @Produce json
// @Success 200 {object} response.Data[dto.Dashboard]
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
// @Security BearerAuth
func (handler *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Dashboard")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
