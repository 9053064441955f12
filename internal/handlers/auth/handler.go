package auth

import (
	"context"
	"lodging/infras/otel"
	"lodging/internal/domains/auth/model/dto"
	"lodging/internal/domains/auth/service"
	userService "lodging/internal/domains/user/service"
	"lodging/shared/constant"
	"lodging/shared/failure"
	"lodging/shared/validator"
	"lodging/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auth
	user    userService.User
	otel    otel.Otel
}

func New(service service.Auth, user userService.User, otel otel.Otel) Handler {
	return Handler{
		service: service,
		user:    user,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Post("/auth/login", handler.Login)
	r.Post("/auth/refresh", handler.RefreshToken)
	r.Patch("/auth/password", handler.ChangePassword)
	r.Get("/auth/me", handler.Me)
}

func (handler *Handler) fail(w http.ResponseWriter, scope otel.Scope, err error, msg string) {
	scope.TraceError(err)
	log.Error().Err(err).Msg(msg)

	response.WithError(w, err)
}

func currentUser(ctx context.Context) (string, bool) {
	userID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	return userID, userID != ""
}

// Login handles admin login
// @Summary Login
// @Description Exchange the admin credentials for a token pair.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to login user")

		return
	}

	scope.AddEvent("User logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh token
// @Description Issue a new token pair from a refresh token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} response.Data[dto.TokenResponse]
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		handler.fail(w, scope, err, "failed to refresh token")

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword handles the admin password change
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Router /v1/auth/password [patch]
// @Security BearerAuth
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		handler.fail(w, scope, err, "failed to validate request body")

		return
	}

	userID, ok := currentUser(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("missing user"))

		return
	}

	if err := handler.service.ChangePassword(ctx, req, userID); err != nil {
		handler.fail(w, scope, err, "failed to change password")

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}

// Me returns the signed-in account
// @Summary Current account
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Data[userDto.UserResponse]
// @Failure 401 {object} response.Error
// @Router /v1/auth/me [get]
// @Security BearerAuth
func (handler *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Me")
	defer scope.End()

	userID, ok := currentUser(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("missing user"))

		return
	}

	res, err := handler.user.Get(ctx, userID)
	if err != nil {
		handler.fail(w, scope, err, "failed to get current user")

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}
