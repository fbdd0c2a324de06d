package dto

import (
	"time"

	"github.com/amazing-thailand/photo-service/entity"
)

type CreateCommentRequestDTO struct {
	PhotoID     uint   `json:"photo_id" form:"photo_id"`
	UserID      uint   `json:"user_id" form:"user_id"`
	CommentText string `json:"comment_text" form:"comment_text"`
}

type UpdateCommentRequestDTO struct {
	CommentText string `json:"comment_text" form:"comment_text"`
}

type CommentCreatedDTO struct {
	CommentID   uint      `json:"comment_id"`
	PhotoID     uint      `json:"photo_id"`
	UserID      uint      `json:"user_id"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func CommentCreatedFrom(comment *entity.Comment) CommentCreatedDTO {
	return CommentCreatedDTO{
		CommentID:   comment.CommentID,
		PhotoID:     comment.PhotoID,
		UserID:      comment.UserID,
		CommentText: comment.CommentText,
		CreatedAt:   comment.CreatedAt,
	}
}

type CommentUpdatedDTO struct {
	CommentID   uint      `json:"comment_id"`
	PhotoID     uint      `json:"photo_id"`
	UserID      uint      `json:"user_id"`
	CommentText string    `json:"comment_text"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func CommentUpdatedFrom(comment *entity.Comment) CommentUpdatedDTO {
	return CommentUpdatedDTO{
		CommentID:   comment.CommentID,
		PhotoID:     comment.PhotoID,
		UserID:      comment.UserID,
		CommentText: comment.CommentText,
		UpdatedAt:   comment.UpdatedAt,
	}
}

type CommentDeletedDTO struct {
	CommentID uint `json:"comment_id"`
	PhotoID   uint `json:"photo_id"`
	UserID    uint `json:"user_id"`
}

func CommentDeletedFrom(comment *entity.Comment) CommentDeletedDTO {
	return CommentDeletedDTO{
		CommentID: comment.CommentID,
		PhotoID:   comment.PhotoID,
		UserID:    comment.UserID,
	}
}
