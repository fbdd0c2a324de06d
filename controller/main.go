package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amazing-thailand/photo-service/asset"
	"github.com/amazing-thailand/photo-service/config"
	"github.com/amazing-thailand/photo-service/infra"
	"github.com/amazing-thailand/photo-service/repository"
)

type Controller struct {
	Config     *config.Config
	Infra      *infra.Infra
	Repository *repository.Repository
	Assets     *asset.Manager
}

func NewController(config *config.Config, infra *infra.Infra, repo *repository.Repository, assets *asset.Manager) *Controller {
	if repo == nil {
		panic("Failed to initialize Repository")
	}
	if assets == nil {
		panic("Failed to initialize asset manager")
	}
	return &Controller{
		Config:     config,
		Infra:      infra,
		Repository: repo,
		Assets:     assets,
	}
}

// validationError is a missing-required-field failure, reported as 400.
type validationError string

func (e validationError) Error() string {
	return string(e)
}

func isValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

// formFile reads an optional multipart file field into an asset.File. A
// missing field yields (nil, nil, nil); the returned closer must be called
// when the upload is done with the reader.
func formFile(c *gin.Context, field string) (*asset.File, func(), error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, func() {}, nil
		}
		return nil, func() {}, err
	}
	reader, err := header.Open()
	if err != nil {
		return nil, func() {}, err
	}
	file := &asset.File{
		Reader:      reader,
		Size:        header.Size,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	}
	return file, func() { _ = reader.Close() }, nil
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
