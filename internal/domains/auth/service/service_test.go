package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"lodging/config"
	"lodging/infras/jwt"
	jwtMocks "lodging/infras/jwt/mocks"
	"lodging/infras/otel/mocks"
	"lodging/internal/domains/auth/model/dto"
	"lodging/internal/domains/auth/service"
	userMocks "lodging/internal/domains/user/mocks"
	userModel "lodging/internal/domains/user/model"
	cacheMocks "lodging/shared/cache/mocks"
	gDto "lodging/shared/dto"
	"lodging/shared/failure"
	"lodging/shared/password"
)

// bcrypt hash of "password"
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

type deps struct {
	userRepo *userMocks.MockUser
	jwt      *jwtMocks.MockJWT
	cache    *cacheMocks.MockRedisCache
}

func setup(t *testing.T) (service.Auth, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		userRepo: userMocks.NewMockUser(ctrl),
		jwt:      jwtMocks.NewMockJWT(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
	}

	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.App.Admin.Username = "admin"
	cfg.App.Admin.Password = "admin123"

	return service.New(d.userRepo, cfg, d.cache, mocks.NewOtel(), d.jwt), d
}

func adminUser() userModel.User {
	return userModel.User{ID: "user-id-123", Username: "admin", Password: passwordHash}
}

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(d deps)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminUser(), nil)
				d.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), "user-id-123", "admin", "admin").
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				d.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "last login failure does not block login",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminUser(), nil)
				d.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				d.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
		},
		{
			name: "unknown username",
			req:  dto.LoginRequest{Username: "ghost", Password: "password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Username: "admin", Password: "nope"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminUser(), nil)
			},
			wantErr:  true,
			wantCode: 401,
		},
		{
			name: "repository failure",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(userModel.User{}, errors.New("db down"))
			},
			wantErr:  true,
			wantCode: 500,
		},
		{
			name: "token generation failure",
			req:  dto.LoginRequest{Username: "admin", Password: "password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().GetByUsername(gomock.Any(), "admin").Return(adminUser(), nil)
				d.jwt.EXPECT().
					GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("sign failed"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			res, err := svc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", res.AccessToken)
			assert.Equal(t, "refresh-token", res.RefreshToken)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Run("valid refresh token", func(t *testing.T) {
		svc, d := setup(t)

		d.jwt.EXPECT().RefreshTokens(gomock.Any(), "refresh").
			Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil)

		res, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", res.AccessToken)
	})

	t.Run("invalid refresh token", func(t *testing.T) {
		svc, d := setup(t)

		d.jwt.EXPECT().RefreshTokens(gomock.Any(), "bad").Return(nil, jwt.ErrInvalidToken)

		_, err := svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})

		require.Error(t, err)
		assert.Equal(t, 401, failure.GetCode(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.ChangePasswordRequest
		setupMock func(d deps)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful change",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(), nil)
				d.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						hashed, ok := fields[userModel.FieldPassword].(string)
						require.True(t, ok)
						assert.NoError(t, password.Verify("new-password", hashed))

						return nil
					})
			},
		},
		{
			name: "wrong current password",
			req:  dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(), nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "user not found",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "update failure",
			req:  dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "new-password"},
			setupMock: func(d deps) {
				d.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(), nil)
				d.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
			},
			wantErr:  true,
			wantCode: 500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := setup(t)
			tt.setupMock(d)

			err := svc.ChangePassword(context.Background(), tt.req, "user-id-123")

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	t.Run("creates the admin when missing", func(t *testing.T) {
		svc, d := setup(t)

		d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		d.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, "admin", user.Username)
				assert.NoError(t, password.Verify("admin123", user.Password))

				return nil
			})

		require.NoError(t, svc.EnsureAdmin(context.Background()))
	})

	t.Run("leaves an existing admin alone", func(t *testing.T) {
		svc, d := setup(t)

		d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		require.NoError(t, svc.EnsureAdmin(context.Background()))
	})

	t.Run("concurrent bootstrap", func(t *testing.T) {
		svc, d := setup(t)

		d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		d.userRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(&pq.Error{Code: "23505"})

		require.NoError(t, svc.EnsureAdmin(context.Background()))
	})

	t.Run("lookup failure", func(t *testing.T) {
		svc, d := setup(t)

		d.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))

		assert.Error(t, svc.EnsureAdmin(context.Background()))
	})
}
