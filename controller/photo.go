package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"github.com/amazing-thailand/photo-service/asset"
	"github.com/amazing-thailand/photo-service/controller/dto"
	"github.com/amazing-thailand/photo-service/entity"
	"github.com/amazing-thailand/photo-service/repository"
	"github.com/amazing-thailand/photo-service/utils"
)

const (
	photoFeedCacheKey    = "photos:feed"
	photoDetailKeyPrefix = "photos:detail:"
)

func photoDetailCacheKey(id uint) string {
	return fmt.Sprintf("%s%d", photoDetailKeyPrefix, id)
}

// invalidatePhotoCaches drops the feed and, when id is non-zero, the detail
// entry touched by a write.
func (ctrl *Controller) invalidatePhotoCaches(c *gin.Context, id uint) {
	ctx := c.Request.Context()
	keys := []string{photoFeedCacheKey}
	if id != 0 {
		keys = append(keys, photoDetailCacheKey(id))
	}
	if err := ctrl.Infra.Redis.Delete(ctx, keys...); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Cache invalidation failed: %v", err)
	}
}

// invalidateOwnerCaches drops every cached photo projection. Cached rows
// embed the owner's username and avatar, so a user update stales all of them.
func (ctrl *Controller) invalidateOwnerCaches(c *gin.Context) {
	ctx := c.Request.Context()
	if err := ctrl.Infra.Redis.DeleteByPattern(ctx, photoDetailKeyPrefix+"*"); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Cache invalidation failed: %v", err)
	}
	if err := ctrl.Infra.Redis.Delete(ctx, photoFeedCacheKey); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Cache invalidation failed: %v", err)
	}
}

// ListPhotos serves the photo feed, optionally filtered by a search term and
// an inclusive date range. The unfiltered feed is served from cache.
func (ctrl *Controller) ListPhotos(c *gin.Context) {
	ctx := c.Request.Context()

	search := c.Query("search")
	startParam := c.Query("startDate")
	endParam := c.Query("endDate")

	var startDate, endDate *time.Time
	if startParam != "" {
		parsed, err := time.Parse("2006-01-02", startParam)
		if err != nil {
			utils.JSON400(c, "Invalid startDate, expected YYYY-MM-DD", err)
			return
		}
		startDate = &parsed
	}
	if endParam != "" {
		parsed, err := time.Parse("2006-01-02", endParam)
		if err != nil {
			utils.JSON400(c, "Invalid endDate, expected YYYY-MM-DD", err)
			return
		}
		// Include the whole end day.
		endOfDay := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 23, 59, 59, 999_000_000, parsed.Location())
		endDate = &endOfDay
	}

	unfiltered := search == "" && startDate == nil && endDate == nil
	if unfiltered {
		var cached []entity.Photo
		if err := ctrl.Infra.Redis.Get(ctx, photoFeedCacheKey, &cached); err == nil {
			utils.JSON200(c, "Photos fetched successfully", cached)
			return
		}
	}

	photos, err := ctrl.Repository.PhotoRepo.List(search, startDate, endDate)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to fetch photos: %v", err)
		utils.JSON500(c, "Failed to fetch photos", err)
		return
	}

	if unfiltered {
		if err := ctrl.Infra.Redis.Set(ctx, photoFeedCacheKey, photos, ctrl.Config.EnvConfig.Redis.FeedTTL); err != nil {
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Failed to cache photo feed: %v", err)
		}
	}

	utils.JSON200(c, "Photos fetched successfully", photos)
}

func (ctrl *Controller) GetPhotoDetails(c *gin.Context) {
	ctx := c.Request.Context()

	photoID, err := pathID(c, "photoId")
	if err != nil {
		utils.JSON400(c, "Invalid photo id", err)
		return
	}

	var cached entity.Photo
	if err := ctrl.Infra.Redis.Get(ctx, photoDetailCacheKey(photoID), &cached); err == nil {
		utils.JSON200(c, "Photo fetched successfully", cached)
		return
	}

	photo, err := ctrl.Repository.PhotoRepo.FindDetails(photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, "Photo not found", err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to fetch photo %d: %v", photoID, err)
		utils.JSON500(c, "Failed to fetch photo details", err)
		return
	}

	if err := ctrl.Infra.Redis.Set(ctx, photoDetailCacheKey(photoID), photo, ctrl.Config.EnvConfig.Redis.FeedTTL); err != nil {
		ctrl.Infra.Logger.WarningWithContextf(ctx, "[Photo] Failed to cache photo %d: %v", photoID, err)
	}

	utils.JSON200(c, "Photo fetched successfully", photo)
}

// CreatePhoto uploads the image and writes the row, compensating with a
// best-effort retire when validation or the insert fails after the upload.
func (ctrl *Controller) CreatePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	file, closeFile, err := formFile(c, "photoImage")
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to read image from form: %v", err)
		utils.JSON400(c, "File upload failed", err)
		return
	}
	defer closeFile()

	locationName := c.PostForm("location_name")
	description := c.PostForm("description")
	userIDParam := c.PostForm("user_id")

	var created *entity.Photo
	_, err = ctrl.Assets.Create(ctx, file, asset.CategoryPhoto, ctrl.Config.EnvConfig.Upload.PhotoMaxBytes,
		func() error {
			if locationName == "" || userIDParam == "" || file == nil {
				return validationError("Location name, user ID, and photo image are required.")
			}
			if _, parseErr := strconv.ParseUint(userIDParam, 10, 64); parseErr != nil {
				return validationError("Invalid user ID.")
			}
			return nil
		},
		func(ref *asset.Reference) error {
			userID, _ := strconv.ParseUint(userIDParam, 10, 64)
			photo := &entity.Photo{
				LocationName: locationName,
				UserID:       uint(userID),
				ImageURL:     ref.URL,
				UploadInfo:   uploadInfoJSON(file),
			}
			if description != "" {
				photo.Description = &description
			}
			if createErr := ctrl.Repository.PhotoRepo.Create(photo); createErr != nil {
				return createErr
			}
			created = photo
			return nil
		})
	if err != nil {
		switch {
		case asset.IsRejected(err):
			utils.JSON400(c, "File upload failed", err)
		case isValidation(err):
			utils.JSON400(c, err.Error(), err)
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to create photo: %v", err)
			utils.JSON500(c, "Failed to create photo", err)
		}
		return
	}

	ctrl.invalidatePhotoCaches(c, 0)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Photo] Created photo %d at %q", created.PhotoID, created.LocationName)
	utils.JSON201(c, "Photo created successfully", dto.PhotoCreatedFrom(created))
}

// EditPhoto applies a partial update; a new image retires the old one
// best-effort before the row write.
func (ctrl *Controller) EditPhoto(c *gin.Context) {
	ctx := c.Request.Context()

	photoID, err := pathID(c, "photoId")
	if err != nil {
		utils.JSON400(c, "Invalid photo id", err)
		return
	}

	file, closeFile, err := formFile(c, "photoImage")
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to read image from form: %v", err)
		utils.JSON400(c, "File upload failed", err)
		return
	}
	defer closeFile()

	fields := map[string]interface{}{}
	if locationName, ok := c.GetPostForm("location_name"); ok {
		fields["location_name"] = locationName
	}
	if description, ok := c.GetPostForm("description"); ok {
		fields["description"] = description
	}

	currentURL := ""
	if file != nil {
		current, lookupErr := ctrl.Repository.PhotoRepo.SelectImageURL(photoID)
		if lookupErr != nil {
			if errors.Is(lookupErr, repository.ErrNotFound) {
				utils.JSON404(c, fmt.Sprintf("Photo with ID %d not found.", photoID), lookupErr)
				return
			}
			ctrl.Infra.Logger.ErrorWithContextf(ctx, lookupErr, "[Photo] Failed to load current image for %d: %v", photoID, lookupErr)
			utils.JSON500(c, "Failed to update photo", lookupErr)
			return
		}
		currentURL = current
		fields["upload_info"] = uploadInfoJSON(file)
	}

	var updated *entity.Photo
	_, err = ctrl.Assets.Replace(ctx, currentURL, file, asset.CategoryPhoto, ctrl.Config.EnvConfig.Upload.PhotoMaxBytes,
		func(ref *asset.Reference) error {
			if ref != nil {
				fields["image_url"] = ref.URL
			}
			photo, updateErr := ctrl.Repository.PhotoRepo.Update(photoID, fields)
			if updateErr != nil {
				return updateErr
			}
			updated = photo
			return nil
		})
	if err != nil {
		switch {
		case asset.IsRejected(err):
			utils.JSON400(c, "File upload failed", err)
		case errors.Is(err, repository.ErrNotFound):
			utils.JSON404(c, fmt.Sprintf("Photo with ID %d not found.", photoID), err)
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to update photo %d: %v", photoID, err)
			utils.JSON500(c, "Failed to update photo", err)
		}
		return
	}

	ctrl.invalidatePhotoCaches(c, photoID)
	utils.JSON200(c, "Photo updated successfully", dto.PhotoUpdatedFrom(updated))
}

// DeletePhoto retires the image first so a failed remote delete is observed
// while the row still exists, then removes the row. The row deletion never
// waits on the store.
func (ctrl *Controller) DeletePhoto(c *gin.Context) {
	ctx := c.Request.Context()

	photoID, err := pathID(c, "photoId")
	if err != nil {
		utils.JSON400(c, "Invalid photo id", err)
		return
	}

	photo, err := ctrl.Repository.PhotoRepo.FindByID(photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, "Photo not found", err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to load photo %d before delete: %v", photoID, err)
		utils.JSON500(c, "Failed to delete photo", err)
		return
	}

	err = ctrl.Assets.Delete(ctx, photo.ImageURL, func() error {
		return ctrl.Repository.PhotoRepo.Delete(photoID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Lost a race with a concurrent delete.
			utils.JSON404(c, fmt.Sprintf("Photo with ID %d not found.", photoID), err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Photo] Failed to delete photo %d: %v", photoID, err)
		utils.JSON500(c, "Failed to delete photo", err)
		return
	}

	ctrl.invalidatePhotoCaches(c, photoID)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Photo] Deleted photo %d", photoID)
	utils.JSON200(c, "Photo deleted successfully", dto.PhotoDeletedFrom(photo))
}

func uploadInfoJSON(file *asset.File) datatypes.JSON {
	if file == nil {
		return nil
	}
	info, err := json.Marshal(dto.UploadInfo{
		OriginalFilename: file.Filename,
		SizeBytes:        file.Size,
		ContentType:      file.ContentType,
	})
	if err != nil {
		return nil
	}
	return datatypes.JSON(info)
}
