package repository

import (
	"gorm.io/gorm"

	"github.com/amazing-thailand/photo-service/entity"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *entity.Comment) error {
	return translate(r.db.Create(comment).Error)
}

func (r *CommentRepository) FindByID(id uint) (*entity.Comment, error) {
	var comment entity.Comment
	if err := r.db.Where("comment_id = ?", id).First(&comment).Error; err != nil {
		return nil, translate(err)
	}
	return &comment, nil
}

// ListByPhoto returns a photo's comments oldest first with the commenter
// subset embedded.
func (r *CommentRepository) ListByPhoto(photoID uint) ([]entity.Comment, error) {
	var comments []entity.Comment
	err := r.db.
		Preload("User", ownerSubset).
		Where("photo_id = ?", photoID).
		Order("created_at ASC").
		Find(&comments).Error
	if err != nil {
		return nil, translate(err)
	}
	return comments, nil
}

func (r *CommentRepository) UpdateText(id uint, text string) (*entity.Comment, error) {
	result := r.db.Model(&entity.Comment{}).Where("comment_id = ?", id).Update("comment_text", text)
	if result.Error != nil {
		return nil, translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindByID(id)
}

func (r *CommentRepository) Delete(id uint) error {
	result := r.db.Where("comment_id = ?", id).Delete(&entity.Comment{})
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
