package dto

import (
	"time"

	"github.com/amazing-thailand/photo-service/entity"
)

type LoginRequestDTO struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// PublicUser is the externally visible projection of a user row. Credential
// material never appears here.
type PublicUser struct {
	UserID            uint      `json:"user_id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func PublicUserFrom(user *entity.User) PublicUser {
	return PublicUser{
		UserID:            user.UserID,
		Username:          user.Username,
		Email:             user.Email,
		ProfilePictureURL: user.ProfilePictureURL,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

type LoginResponseDTO struct {
	PublicUser
	Token string `json:"token,omitempty"`
}
