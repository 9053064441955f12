package guest

import (
	"lodging/infras/otel"
	"lodging/internal/domains/guest/model/dto"
	"lodging/internal/domains/guest/service"
	"lodging/shared"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	"lodging/shared/validator"
	"lodging/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Guest
	otel    otel.Otel
}

func New(service service.Guest, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/guests", handler.GetGuests)
	router.Post("/guests/search", handler.Search)
	router.Get("/guests/{id}", handler.GetGuest)
	router.Patch("/guests/{id}", handler.UpdateGuest)
	router.Delete("/guests/{id}", handler.DeleteGuest)
}

// GetGuests lists stays, newest first; any search option narrows the list.
// @Summary List guests
// @Tags Guest
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Name contains"
// @Param identity_number query string false "Identity number contains"
// @Param mobile query string false "Mobile contains"
// @Param receipt_number query string false "Receipt number contains"
// @Param single_date query string false "Check-in date"
// @Param date_from query string false "Check-in on or after"
// @Param date_to query string false "Check-in on or before"
// @Param receipt_issued query string false "yes or no"
// @Param payment_mode query string false "Cash, Cheque, Online or Card"
// @Success 200 {object} response.Data[dto.GetGuestsResponse]
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests [get]
// @Security BearerAuth
func (handler *Handler) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	search := dto.SearchRequest{}
	search.FromRequest(r)

	var (
		res dto.GetGuestsResponse
		err error
	)

	if search == (dto.SearchRequest{}) {
		res, err = handler.service.List(ctx, queryParams)
	} else {
		res, err = handler.service.Search(ctx, search, queryParams)
	}

	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get guests")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// Search filters stays by a JSON body of search options.
// @Summary Search guests
// @Tags Guest
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param request body dto.SearchRequest true "Search options"
// @Success 200 {object} response.Data[dto.GetGuestsResponse]
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/guests/search [post]
// @Security BearerAuth
func (handler *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Search")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	req := dto.SearchRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode search request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Search(ctx, req, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to search guests")

		response.WithFormError(w, err, req)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetGuest returns the full record of a stay.
// @Summary Get guest
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Data[dto.GuestDetail]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGuest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to get guest")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateGuest corrects the editable fields of a stay.
// @Summary Update guest
// @Tags Guest
// @Accept json
// @Produce json
// @Param id path int true "Guest ID"
// @Param request body dto.UpdateGuestRequest true "Fields to change"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 422 {object} response.Error
// @Router /v1/guests/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateGuest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	req := dto.UpdateGuestRequest{}

	if err := validator.Decode(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode update request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to update guest")

		response.WithFormError(w, err, req)

		return
	}

	scope.AddEvent("Guest updated successfully")

	response.WithMessage(w, http.StatusOK, "Guest updated successfully")
}

// DeleteGuest removes a stay and frees its room.
// @Summary Delete guest
// @Tags Guest
// @Produce json
// @Param id path int true "Guest ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteGuest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteGuest")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to delete guest")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Guest deleted successfully")

	response.WithMessage(w, http.StatusOK, "Guest deleted successfully")
}
