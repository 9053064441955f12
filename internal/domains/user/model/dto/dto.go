package dto

import (
	"lodging/internal/domains/user/model"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	gModel "lodging/shared/model"
	"time"

	"github.com/google/uuid"
)

// NewAdmin builds the bootstrap account from an already hashed password.
func NewAdmin(username, hashedPassword string, now time.Time) model.User {
	return model.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: hashedPassword,
		Metadata: gModel.NewMetadata(constant.ContextSystem, now),
	}
}

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Role      string  `json:"role"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Username = user.Username
	r.Role = constant.RoleAdmin
	r.LastLogin = nil

	if user.LastLogin != nil {
		lastLogin := user.LastLogin.Format(constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}
