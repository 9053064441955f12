package middleware_test

import (
	"context"
	"lodging/config"
	"lodging/infras/jwt"
	jwtMocks "lodging/infras/jwt/mocks"
	otelMocks "lodging/infras/otel/mocks"
	"lodging/permissions"
	"lodging/shared/constant"
	"lodging/transport/http/middleware"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPermissions = `{"endpoints":[
	{"path":"/v1/auth/login","method":"POST","skip":true},
	{"path":"/v1/guests/{id}","method":"GET","permissions":["admin"]}
]}`

func newAuthRouter(t *testing.T, jwtService jwt.JWT, data *permissions.PermissionData) *chi.Mux {
	t.Helper()

	cfg := &config.Config{}
	cfg.App.APIKey = "internal-key"

	mw := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), data, cfg)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(mw.APIKey, mw.Auth, mw.RBAC)

		r.Post("/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		})
		r.Get("/v1/guests/{id}", func(w http.ResponseWriter, r *http.Request) {
			username, _ := r.Context().Value(constant.ContextKeyUsername).(string)
			w.Header().Set("X-Username", username)
			w.WriteHeader(http.StatusOK)
		})
	})

	return router
}

func TestAuthRole(t *testing.T) {
	data, err := permissions.Parse([]byte(testPermissions))
	require.NoError(t, err)

	tests := []struct {
		name         string
		method       string
		path         string
		headers      map[string]string
		mock         func(m *jwtMocks.MockJWT)
		wantCode     int
		wantUsername string
	}{
		{
			name:     "public route without token",
			method:   http.MethodPost,
			path:     "/v1/auth/login",
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "missing authorization header",
			method:   http.MethodGet,
			path:     "/v1/guests/7",
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "malformed authorization header",
			method:   http.MethodGet,
			path:     "/v1/guests/7",
			headers:  map[string]string{"Authorization": "Basic abc"},
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "expired token",
			method:  http.MethodGet,
			path:    "/v1/guests/7",
			headers: map[string]string{"Authorization": "Bearer expired"},
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "expired", jwt.AccessToken).Return(nil, jwt.ErrExpiredToken)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "token without subject",
			method:  http.MethodGet,
			path:    "/v1/guests/7",
			headers: map[string]string{"Authorization": "Bearer empty"},
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "empty", jwt.AccessToken).Return(&jwt.Claims{Role: "admin"}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:    "role not allowed",
			method:  http.MethodGet,
			path:    "/v1/guests/7",
			headers: map[string]string{"Authorization": "Bearer clerk"},
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "clerk", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u2", Username: "clerk", Role: "clerk"}, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:    "admin token",
			method:  http.MethodGet,
			path:    "/v1/guests/7",
			headers: map[string]string{"Authorization": "Bearer good"},
			mock: func(m *jwtMocks.MockJWT) {
				m.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).
					Return(&jwt.Claims{UserID: "u1", Username: "admin", Role: "admin"}, nil)
			},
			wantCode:     http.StatusOK,
			wantUsername: "admin",
		},
		{
			name:     "valid api key bypasses token",
			method:   http.MethodGet,
			path:     "/v1/guests/7",
			headers:  map[string]string{"X-API-Key": "internal-key"},
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusOK,
		},
		{
			name:     "wrong api key",
			method:   http.MethodGet,
			path:     "/v1/guests/7",
			headers:  map[string]string{"X-API-Key": "guess"},
			mock:     func(_ *jwtMocks.MockJWT) {},
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.mock(jwtService)

			req := httptest.NewRequestWithContext(context.Background(), tt.method, tt.path, nil)
			for key, value := range tt.headers {
				req.Header.Set(key, value)
			}

			rec := httptest.NewRecorder()
			newAuthRouter(t, jwtService, data).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantUsername, rec.Header().Get("X-Username"))
		})
	}
}

func TestRBAC_WithoutPermissions(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := jwtMocks.NewMockJWT(ctrl)
	jwtService.EXPECT().ValidateToken(gomock.Any(), "good", jwt.AccessToken).
		Return(&jwt.Claims{UserID: "u1", Username: "admin", Role: "admin"}, nil)

	req := httptest.NewRequestWithContext(context.Background(), http.MethodGet, "/v1/guests/7", nil)
	req.Header.Set("Authorization", "Bearer good")

	rec := httptest.NewRecorder()
	newAuthRouter(t, jwtService, nil).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
