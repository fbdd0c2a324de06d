package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amazing-thailand/photo-service/asset"
)

func TestObjectExt(t *testing.T) {
	assert.Equal(t, ".jpg", objectExt(&asset.File{Filename: "beach.JPG"}))
	assert.Equal(t, ".png", objectExt(&asset.File{Filename: "temple.png"}))
	assert.Equal(t, ".png", objectExt(&asset.File{Filename: "noext", ContentType: "image/png"}))
	assert.Equal(t, ".gif", objectExt(&asset.File{Filename: "", ContentType: "image/gif; charset=binary"}))
	assert.Equal(t, ".jpg", objectExt(&asset.File{Filename: "", ContentType: "image/jpeg"}))
}

func TestStripObjectExt(t *testing.T) {
	assert.Equal(t, "amazing-thailand-2025/photos/photo_1", stripObjectExt("amazing-thailand-2025/photos/photo_1.jpg"))
	assert.Equal(t, "amazing-thailand-2025/photos/photo_1", stripObjectExt("amazing-thailand-2025/photos/photo_1"))
	// A dot in a folder segment is not an extension separator.
	assert.Equal(t, "v1.2/photos/photo_1", stripObjectExt("v1.2/photos/photo_1"))
}
