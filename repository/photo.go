package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/amazing-thailand/photo-service/entity"
)

type PhotoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

// ownerSubset limits embedded user rows to their public columns.
func ownerSubset(db *gorm.DB) *gorm.DB {
	return db.Select("user_id", "username", "profile_picture_url")
}

func (r *PhotoRepository) Create(photo *entity.Photo) error {
	return translate(r.db.Create(photo).Error)
}

// List returns photos newest first, optionally narrowed by a case-insensitive
// substring search over location name, description and owner username, and by
// an inclusive creation-date range.
func (r *PhotoRepository) List(search string, startDate, endDate *time.Time) ([]entity.Photo, error) {
	query := r.db.Model(&entity.Photo{}).Preload("User", ownerSubset)

	if search != "" {
		pattern := "%" + search + "%"
		query = query.
			Joins("LEFT JOIN users ON users.user_id = photos.user_id").
			Where("photos.location_name ILIKE ? OR photos.description ILIKE ? OR users.username ILIKE ?",
				pattern, pattern, pattern)
	}
	if startDate != nil {
		query = query.Where("photos.created_at >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("photos.created_at <= ?", *endDate)
	}

	var photos []entity.Photo
	if err := query.Order("photos.created_at DESC").Find(&photos).Error; err != nil {
		return nil, translate(err)
	}
	return photos, nil
}

// FindDetails loads one photo with its owner subset and all comments oldest
// first, each with the commenter subset.
func (r *PhotoRepository) FindDetails(id uint) (*entity.Photo, error) {
	var photo entity.Photo
	err := r.db.
		Preload("User", ownerSubset).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC").Preload("User", ownerSubset)
		}).
		Where("photo_id = ?", id).
		First(&photo).Error
	if err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}

func (r *PhotoRepository) FindByID(id uint) (*entity.Photo, error) {
	var photo entity.Photo
	if err := r.db.Where("photo_id = ?", id).First(&photo).Error; err != nil {
		return nil, translate(err)
	}
	return &photo, nil
}

// SelectImageURL is the targeted fetch-before-write read for the asset
// lifecycle.
func (r *PhotoRepository) SelectImageURL(id uint) (string, error) {
	var photo entity.Photo
	err := r.db.Select("image_url").Where("photo_id = ?", id).First(&photo).Error
	if err != nil {
		return "", translate(err)
	}
	return photo.ImageURL, nil
}

func (r *PhotoRepository) Update(id uint, fields map[string]interface{}) (*entity.Photo, error) {
	if len(fields) > 0 {
		result := r.db.Model(&entity.Photo{}).Where("photo_id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(id)
}

// Delete removes the row. A vanished row (lost race with a concurrent
// delete) comes back as ErrNotFound, not as a generic failure.
func (r *PhotoRepository) Delete(id uint) error {
	result := r.db.Where("photo_id = ?", id).Delete(&entity.Photo{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
