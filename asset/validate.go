package asset

import (
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

// File is an inbound upload, already buffered by the HTTP layer.
type File struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

// RejectedError marks an upload that was refused before the store was called.
type RejectedError struct {
	msg string
}

func (e *RejectedError) Error() string {
	return e.msg
}

func rejectedf(format string, args ...interface{}) error {
	return &RejectedError{msg: fmt.Sprintf(format, args...)}
}

// IsRejected reports whether err comes from upload validation.
func IsRejected(err error) bool {
	var re *RejectedError
	return errors.As(err, &re)
}

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

var allowedImageMIMEs = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
}

// ValidateImage checks size and type before any network call to the store.
// Both the declared content type and the filename extension must match the
// allow-list.
func ValidateImage(file *File, maxBytes int64) error {
	if file == nil {
		return rejectedf("no file provided")
	}
	if maxBytes > 0 && file.Size > maxBytes {
		return rejectedf("file too large: %d bytes exceeds the %d byte limit", file.Size, maxBytes)
	}
	ext := strings.ToLower(path.Ext(file.Filename))
	mime := strings.ToLower(strings.TrimSpace(strings.Split(file.ContentType, ";")[0]))
	if !allowedImageExts[ext] || !allowedImageMIMEs[mime] {
		return rejectedf("images only (accepted formats: jpeg, jpg, png, gif)")
	}
	return nil
}
