package dto

import (
	"time"

	"github.com/amazing-thailand/photo-service/entity"
)

type PhotoCreatedDTO struct {
	PhotoID      uint      `json:"photo_id"`
	LocationName string    `json:"location_name"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
	UserID       uint      `json:"user_id"`
}

func PhotoCreatedFrom(photo *entity.Photo) PhotoCreatedDTO {
	return PhotoCreatedDTO{
		PhotoID:      photo.PhotoID,
		LocationName: photo.LocationName,
		ImageURL:     photo.ImageURL,
		CreatedAt:    photo.CreatedAt,
		UserID:       photo.UserID,
	}
}

type PhotoUpdatedDTO struct {
	PhotoID      uint      `json:"photo_id"`
	LocationName string    `json:"location_name"`
	ImageURL     string    `json:"image_url"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uint      `json:"user_id"`
}

func PhotoUpdatedFrom(photo *entity.Photo) PhotoUpdatedDTO {
	return PhotoUpdatedDTO{
		PhotoID:      photo.PhotoID,
		LocationName: photo.LocationName,
		ImageURL:     photo.ImageURL,
		UpdatedAt:    photo.UpdatedAt,
		UserID:       photo.UserID,
	}
}

type PhotoDeletedDTO struct {
	PhotoID      uint   `json:"photo_id"`
	LocationName string `json:"location_name"`
	ImageURL     string `json:"image_url"`
}

func PhotoDeletedFrom(photo *entity.Photo) PhotoDeletedDTO {
	return PhotoDeletedDTO{
		PhotoID:      photo.PhotoID,
		LocationName: photo.LocationName,
		ImageURL:     photo.ImageURL,
	}
}

// UploadInfo is captured at upload time and persisted as the photo's JSON
// metadata column.
type UploadInfo struct {
	OriginalFilename string `json:"original_filename"`
	SizeBytes        int64  `json:"size_bytes"`
	ContentType      string `json:"content_type"`
}
