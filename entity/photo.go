package entity

import (
	"time"

	"gorm.io/datatypes"
)

type Photo struct {
	PhotoID      uint           `json:"photo_id" gorm:"column:photo_id;primaryKey;autoIncrement"`
	LocationName string         `json:"location_name" gorm:"type:varchar(255);not null"`
	Description  *string        `json:"description" gorm:"type:text"`
	UserID       uint           `json:"user_id" gorm:"not null;index"`
	ImageURL     string         `json:"image_url" gorm:"type:varchar(1024);not null"`
	UploadInfo   datatypes.JSON `json:"upload_info,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"created_at" gorm:"not null;autoCreateTime;index"`
	UpdatedAt    time.Time      `json:"updated_at" gorm:"autoUpdateTime"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments,omitempty" gorm:"foreignKey:PhotoID;references:PhotoID;constraint:OnDelete:CASCADE"`
}

func (Photo) TableName() string {
	return "photos"
}
