package entity

import "time"

type User struct {
	UserID            uint      `json:"user_id" gorm:"column:user_id;primaryKey;autoIncrement"`
	Username          string    `json:"username" gorm:"type:varchar(100);not null;uniqueIndex:idx_users_username"`
	Email             string    `json:"email" gorm:"type:varchar(255);not null;uniqueIndex:idx_users_email"`
	PasswordHash      string    `json:"-" gorm:"type:varchar(255);not null"`
	ProfilePictureURL *string   `json:"profile_picture_url" gorm:"type:varchar(1024)"`
	CreatedAt         time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
