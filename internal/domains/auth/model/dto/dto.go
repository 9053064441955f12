package dto

import (
	"lodging/infras/jwt"
	"time"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8,max=72,nefield=CurrentPassword"`
}

// TokenResponse is returned by both login and refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

func NewTokenResponse(pair *jwt.TokenPair) TokenResponse {
	if pair == nil {
		return TokenResponse{}
	}

	return TokenResponse(*pair)
}

// LastLoginPatch and PasswordPatch are column patches for the users table.
type LastLoginPatch struct {
	LastLogin time.Time `db:"last_login"`
}

type PasswordPatch struct {
	Password string `db:"password"`
}
