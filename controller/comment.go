package controller

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/amazing-thailand/photo-service/controller/dto"
	"github.com/amazing-thailand/photo-service/entity"
	"github.com/amazing-thailand/photo-service/repository"
	"github.com/amazing-thailand/photo-service/utils"
)

func (ctrl *Controller) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateCommentRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		utils.JSON400(c, "Invalid request body", err)
		return
	}
	if req.CommentText == "" || req.PhotoID == 0 || req.UserID == 0 {
		utils.JSON400(c, "Comment text, photo ID, and user ID are required.", nil)
		return
	}

	comment := &entity.Comment{
		PhotoID:     req.PhotoID,
		UserID:      req.UserID,
		CommentText: req.CommentText,
	}
	if err := ctrl.Repository.CommentRepo.Create(comment); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to create comment on photo %d: %v", req.PhotoID, err)
		utils.JSON500(c, "Failed to create comment", err)
		return
	}

	ctrl.invalidatePhotoCaches(c, req.PhotoID)
	utils.JSON201(c, "Comment created successfully", dto.CommentCreatedFrom(comment))
}

func (ctrl *Controller) GetCommentsForPhoto(c *gin.Context) {
	ctx := c.Request.Context()

	photoID, err := pathID(c, "photoId")
	if err != nil {
		utils.JSON400(c, "Invalid photo id", err)
		return
	}

	comments, err := ctrl.Repository.CommentRepo.ListByPhoto(photoID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to fetch comments for photo %d: %v", photoID, err)
		utils.JSON500(c, "Failed to fetch comments", err)
		return
	}

	utils.JSON200(c, "Comments fetched successfully", comments)
}

// EditComment checks existence before writing so a stale id yields a clean
// 404 instead of an update error.
func (ctrl *Controller) EditComment(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, err := pathID(c, "commentId")
	if err != nil {
		utils.JSON400(c, "Invalid comment id", err)
		return
	}

	var req dto.UpdateCommentRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		utils.JSON400(c, "Invalid request body", err)
		return
	}
	if req.CommentText == "" {
		utils.JSON400(c, "Comment text is required.", nil)
		return
	}

	existing, err := ctrl.Repository.CommentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, fmt.Sprintf("Comment with ID %d not found.", commentID), err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to load comment %d: %v", commentID, err)
		utils.JSON500(c, "Failed to update comment", err)
		return
	}

	updated, err := ctrl.Repository.CommentRepo.UpdateText(commentID, req.CommentText)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, fmt.Sprintf("Comment with ID %d not found.", commentID), err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to update comment %d: %v", commentID, err)
		utils.JSON500(c, "Failed to update comment", err)
		return
	}

	ctrl.invalidatePhotoCaches(c, existing.PhotoID)
	utils.JSON200(c, "Comment updated successfully", dto.CommentUpdatedFrom(updated))
}

func (ctrl *Controller) DeleteComment(c *gin.Context) {
	ctx := c.Request.Context()

	commentID, err := pathID(c, "commentId")
	if err != nil {
		utils.JSON400(c, "Invalid comment id", err)
		return
	}

	existing, err := ctrl.Repository.CommentRepo.FindByID(commentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, fmt.Sprintf("Comment with ID %d not found.", commentID), err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to load comment %d: %v", commentID, err)
		utils.JSON500(c, "Failed to delete comment", err)
		return
	}

	if err := ctrl.Repository.CommentRepo.Delete(commentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, fmt.Sprintf("Comment with ID %d not found.", commentID), err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Comment] Failed to delete comment %d: %v", commentID, err)
		utils.JSON500(c, "Failed to delete comment", err)
		return
	}

	ctrl.invalidatePhotoCaches(c, existing.PhotoID)
	utils.JSON200(c, "Comment deleted successfully", dto.CommentDeletedFrom(existing))
}
