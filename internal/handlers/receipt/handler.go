package receipt

import (
	"lodging/infras/otel"
	"lodging/internal/domains/receipt/service"
	"lodging/shared"
	"lodging/shared/constant"
	"lodging/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Receipt
	otel    otel.Otel
}

func New(service service.Receipt, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Post("/guests/{id}/receipt", handler.Issue)
	router.Get("/guests/{id}/receipt.pdf", handler.Download)
	router.Get("/receipts/counter", handler.Counter)
}

// Issue assigns the formal receipt number of a completed check-in; repeating it returns the same number.
// @Summary Issue receipt
// @Tags Receipt
// @Produce json
// @Param id path int true "Guest ID"
// @Success 201 {object} response.Data[dto.IssueResponse] "Issued"
// @Success 200 {object} response.Data[dto.IssueResponse] "Already issued"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/guests/{id}/receipt [post]
// @Security BearerAuth
func (handler *Handler) Issue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Issue")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	res, err := handler.service.IssueFormal(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to issue receipt")

		response.WithError(w, err)

		return
	}

	code := http.StatusCreated
	if res.AlreadyIssued {
		code = http.StatusOK
	}

	response.WithJSON(w, code, res)
}

// Download renders the receipt PDF of a stay.
// @Summary Download receipt
// @Tags Receipt
// @Produce application/pdf
// @Param id path int true "Guest ID"
// @Success 200 {file} file
// @Failure 404 {object} response.Error
// @Router /v1/guests/{id}/receipt.pdf [get]
// @Security BearerAuth
func (handler *Handler) Download(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Download")
	defer scope.End()

	id, err := shared.ParseID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	file, err := handler.service.Render(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int64("id", id).Msg("failed to render receipt")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.FileName, file.ContentType, file.Data)
}

// Counter reports the last formal receipt number handed out.
// @Summary Receipt counter
// @Tags Receipt
// @Produce json
// @Success 200 {object} response.Data[dto.CounterResponse]
// @Failure 500 {object} response.Error
// @Router /v1/receipts/counter [get]
// @Security BearerAuth
func (handler *Handler) Counter(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Counter")
	defer scope.End()

	res, err := handler.service.Counter(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get receipt counter")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
