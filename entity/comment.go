package entity

import "time"

type Comment struct {
	CommentID   uint      `json:"comment_id" gorm:"column:comment_id;primaryKey;autoIncrement"`
	PhotoID     uint      `json:"photo_id" gorm:"not null;index"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CommentText string    `json:"comment_text" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}
