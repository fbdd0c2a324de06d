package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func photoRouter(ctrl *Controller) *gin.Engine {
	r := gin.New()
	r.POST("/api/photos", ctrl.CreatePhoto)
	return r
}

func TestCreatePhotoMissingLocationRetiresUpload(t *testing.T) {
	ctrl, store := newTestController(t)
	r := photoRouter(ctrl)

	// The image is uploaded before field validation runs, so the missing
	// location must cost exactly one compensating destroy.
	body, contentType := multipartForm(t, map[string]string{
		"user_id": "1",
	}, "photoImage", "beach.jpg", "image/jpeg", []byte("jpegdata"))

	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Location name, user ID, and photo image are required.", resp.Message)

	require.Len(t, store.uploads, 1)
	assert.Equal(t, "amazing-thailand-2025/photos", store.uploads[0].Folder)
	require.Len(t, store.destroys, 1)
	assert.Equal(t, store.uploads[0].Folder+"/"+store.uploads[0].PublicID, store.destroys[0])
}

func TestCreatePhotoRejectedTypeNeverHitsStore(t *testing.T) {
	ctrl, store := newTestController(t)
	r := photoRouter(ctrl)

	body, contentType := multipartForm(t, map[string]string{
		"location_name": "Wat Arun",
		"user_id":       "1",
	}, "photoImage", "notes.pdf", "application/pdf", []byte("pdfdata"))

	req := httptest.NewRequest(http.MethodPost, "/api/photos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, store.uploads)
	assert.Empty(t, store.destroys)
}
