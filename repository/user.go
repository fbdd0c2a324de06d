package repository

import (
	"gorm.io/gorm"

	"github.com/amazing-thailand/photo-service/entity"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return translate(r.db.Create(user).Error)
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	if err := r.db.Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// SelectProfilePictureURL is the targeted fetch-before-write read used by the
// asset lifecycle: it loads nothing but the current asset reference.
func (r *UserRepository) SelectProfilePictureURL(id uint) (*string, error) {
	var user entity.User
	err := r.db.Select("profile_picture_url").Where("user_id = ?", id).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return user.ProfilePictureURL, nil
}

// Update applies a partial update: only the supplied columns change. The
// refreshed row is returned.
func (r *UserRepository) Update(id uint, fields map[string]interface{}) (*entity.User, error) {
	if len(fields) > 0 {
		result := r.db.Model(&entity.User{}).Where("user_id = ?", id).Updates(fields)
		if result.Error != nil {
			return nil, translate(result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return r.FindByID(id)
}
