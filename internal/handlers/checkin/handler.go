package checkin

import (
	"lodging/infras/otel"
	"lodging/internal/domains/checkin/model/dto"
	"lodging/internal/domains/checkin/service"
	"lodging/shared/constant"
	"lodging/shared/validator"
	"lodging/transport/http/response"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.CheckIn
	otel    otel.Otel
}

func New(service service.CheckIn, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/checkins", handler.CheckIn)
}

func decode(r *http.Request, req *dto.CheckInRequest) error {
	if strings.HasPrefix(r.Header.Get(constant.RequestHeaderContentType), constant.ContentTypeJSON) {
		return validator.Decode(r.Body, req) //nolint:wrapcheck
	}

	return req.FromForm(r)
}

// CheckIn records a guest, assigns a room and issues the stay receipt number.
// @Summary Check in a guest
// @Description Accepts JSON or a submitted form. Every validation message is returned together with the submitted form.
// @Tags CheckIn
// @Accept json
// @Accept x-www-form-urlencoded
// @Produce json
// @Param request body dto.CheckInRequest true "Check-in form"
// @Success 201 {object} response.Data[dto.CheckInResponse]
// @Failure 422 {object} response.Error "Validation failed"
// @Failure 409 {object} response.Error "Room taken or no rooms left"
// @Failure 500 {object} response.Error
// @Router /v1/checkins [post]
// @Security BearerAuth
func (handler *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckIn")
	defer scope.End()

	req := dto.CheckInRequest{}

	if err := decode(r, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode check-in request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.CheckIn(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check in guest")

		response.WithFormError(w, err, req)

		return
	}

	scope.AddEvent("Guest checked in successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
