package report

import (
	"lodging/infras/otel"
	"lodging/internal/domains/report/service"
	"lodging/shared/constant"
	"lodging/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/reports/monthly", handler.Monthly)
}

// Monthly downloads the workbook of a month's stays.
// @Summary Monthly report
// @Tags Report
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string false "Month (YYYY-MM), defaults to the current month"
// @Success 200 {file} file
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error "No stays in the month"
// @Router /v1/reports/monthly [get]
// @Security BearerAuth
func (handler *Handler) Monthly(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Monthly")
	defer scope.End()

	file, err := handler.service.Monthly(ctx, r.URL.Query().Get(constant.RequestParamMonth))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate monthly report")

		response.WithError(w, err)

		return
	}

	response.WithFile(w, file.FileName, file.ContentType, file.Data)
}
