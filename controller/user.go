package controller

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/amazing-thailand/photo-service/asset"
	"github.com/amazing-thailand/photo-service/controller/dto"
	"github.com/amazing-thailand/photo-service/entity"
	"github.com/amazing-thailand/photo-service/repository"
	"github.com/amazing-thailand/photo-service/utils"
)

// RegisterUser creates a user with an optional profile picture. The picture
// hits the store before the field check runs; a rejected request retires the
// fresh upload again via the asset manager.
func (ctrl *Controller) RegisterUser(c *gin.Context) {
	ctx := c.Request.Context()

	file, closeFile, err := formFile(c, "profilePicture")
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to read profile picture from form: %v", err)
		utils.JSON400(c, "File upload failed", err)
		return
	}
	defer closeFile()

	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password")

	var created *entity.User
	_, err = ctrl.Assets.Create(ctx, file, asset.CategoryAvatar, ctrl.Config.EnvConfig.Upload.AvatarMaxBytes,
		func() error {
			if username == "" || email == "" || password == "" {
				return validationError("Please provide username, email, and password.")
			}
			return nil
		},
		func(ref *asset.Reference) error {
			hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if hashErr != nil {
				return hashErr
			}
			user := &entity.User{
				Username:     username,
				Email:        email,
				PasswordHash: string(hash),
			}
			if ref != nil {
				user.ProfilePictureURL = &ref.URL
			}
			if createErr := ctrl.Repository.UserRepo.Create(user); createErr != nil {
				return createErr
			}
			created = user
			return nil
		})
	if err != nil {
		var dup *repository.DuplicateError
		switch {
		case asset.IsRejected(err):
			utils.JSON400(c, "File upload failed", err)
		case isValidation(err):
			utils.JSON400(c, err.Error(), err)
		case errors.As(err, &dup):
			ctrl.Infra.Logger.WarningWithContextf(ctx, "[User] Registration conflict on %s for %q", dup.Field, username)
			utils.JSON409(c, "User with this "+dup.Field+" already exists.", err)
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to register user: %v", err)
			utils.JSON500(c, "Failed to register user", err)
		}
		return
	}

	ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] Registered user %d (%s)", created.UserID, created.Username)
	utils.JSON201(c, "User registered successfully", dto.PublicUserFrom(created))
}

func (ctrl *Controller) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequestDTO
	if err := c.ShouldBind(&req); err != nil {
		utils.JSON400(c, "Please provide email and password.", err)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.JSON400(c, "Please provide email and password.", nil)
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON401(c, "Invalid email or password")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Login lookup failed: %v", err)
		utils.JSON500(c, "An internal server error occurred during login", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		utils.JSON401(c, "Invalid email or password")
		return
	}

	resp := dto.LoginResponseDTO{PublicUser: dto.PublicUserFrom(user)}
	if ctrl.Config.EnvConfig.JWT.SecretKey != "" {
		token, tokenErr := utils.GenerateToken(user.UserID, user.Username, ctrl.Config.EnvConfig)
		if tokenErr != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, tokenErr, "[User] Failed to issue token for user %d: %v", user.UserID, tokenErr)
		} else {
			resp.Token = token
		}
	}

	utils.JSON200(c, "User login successfully", resp)
}

func (ctrl *Controller) GetUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := pathID(c, "userId")
	if err != nil {
		utils.JSON400(c, "Invalid user id", err)
		return
	}

	user, err := ctrl.Repository.UserRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.JSON404(c, "User not found", err)
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to fetch user %d: %v", userID, err)
		utils.JSON500(c, "Failed to fetch user", err)
		return
	}

	utils.JSON200(c, "User fetched successfully", dto.PublicUserFrom(user))
}

// UpdateUser applies a partial update. Only supplied fields change; a
// supplied empty string does overwrite. A new profile picture retires the old
// one best-effort before the row write.
func (ctrl *Controller) UpdateUser(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := pathID(c, "userId")
	if err != nil {
		utils.JSON400(c, "Invalid user id", err)
		return
	}

	file, closeFile, err := formFile(c, "profilePicture")
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to read profile picture from form: %v", err)
		utils.JSON400(c, "File upload failed", err)
		return
	}
	defer closeFile()

	fields := map[string]interface{}{}
	if username, ok := c.GetPostForm("username"); ok {
		fields["username"] = username
	}
	if email, ok := c.GetPostForm("email"); ok {
		fields["email"] = email
	}
	if password, ok := c.GetPostForm("password"); ok && password != "" {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if hashErr != nil {
			utils.JSON500(c, "Failed to update user", hashErr)
			return
		}
		fields["password_hash"] = string(hash)
	}

	// Fetch-before-write: the current reference is read only when a new file
	// will replace it.
	currentURL := ""
	if file != nil {
		current, lookupErr := ctrl.Repository.UserRepo.SelectProfilePictureURL(userID)
		if lookupErr != nil {
			if errors.Is(lookupErr, repository.ErrNotFound) {
				utils.JSON404(c, "User not found", lookupErr)
				return
			}
			ctrl.Infra.Logger.ErrorWithContextf(ctx, lookupErr, "[User] Failed to load current profile picture for %d: %v", userID, lookupErr)
			utils.JSON500(c, "Failed to update user", lookupErr)
			return
		}
		if current != nil {
			currentURL = *current
		}
	}

	var updated *entity.User
	_, err = ctrl.Assets.Replace(ctx, currentURL, file, asset.CategoryAvatar, ctrl.Config.EnvConfig.Upload.AvatarMaxBytes,
		func(ref *asset.Reference) error {
			if ref != nil {
				fields["profile_picture_url"] = ref.URL
			}
			user, updateErr := ctrl.Repository.UserRepo.Update(userID, fields)
			if updateErr != nil {
				return updateErr
			}
			updated = user
			return nil
		})
	if err != nil {
		var dup *repository.DuplicateError
		switch {
		case asset.IsRejected(err):
			utils.JSON400(c, "File upload failed", err)
		case errors.As(err, &dup):
			utils.JSON409(c, "Update failed: User with this "+dup.Field+" already exists.", err)
		case errors.Is(err, repository.ErrNotFound):
			utils.JSON404(c, fmt.Sprintf("User with ID %d not found.", userID), err)
		default:
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[User] Failed to update user %d: %v", userID, err)
			utils.JSON500(c, "Failed to update user", err)
		}
		return
	}

	ctrl.invalidateOwnerCaches(c)
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[User] Updated user %d", userID)
	utils.JSON200(c, "User updated successfully", dto.PublicUserFrom(updated))
}
