package asset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUploadTarget(t *testing.T) {
	photo := NewUploadTarget("amazing-thailand-2025", CategoryPhoto)
	assert.Equal(t, "amazing-thailand-2025/photos", photo.Folder)
	assert.True(t, strings.HasPrefix(photo.PublicID, "photo_"))

	avatar := NewUploadTarget("amazing-thailand-2025", CategoryAvatar)
	assert.Equal(t, "amazing-thailand-2025/users", avatar.Folder)
	assert.True(t, strings.HasPrefix(avatar.PublicID, "user_"))
}

func TestNewUploadTargetUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		target := NewUploadTarget("amazing-thailand-2025", CategoryPhoto)
		assert.False(t, seen[target.PublicID], "duplicate public id %s", target.PublicID)
		seen[target.PublicID] = true
	}
}

func TestDecodeReference(t *testing.T) {
	storedID, ok := DecodeReference(
		"https://cdn.example.com/media/amazing-thailand-2025/photos/photo_1718000000000_abc123def456.jpg",
		"amazing-thailand-2025",
	)
	assert.True(t, ok)
	assert.Equal(t, "amazing-thailand-2025/photos/photo_1718000000000_abc123def456", storedID)
}

func TestDecodeReferenceKeepsInnerDots(t *testing.T) {
	storedID, ok := DecodeReference(
		"https://cdn.example.com/amazing-thailand-2025/users/user_1.2.3.png",
		"amazing-thailand-2025",
	)
	assert.True(t, ok)
	assert.Equal(t, "amazing-thailand-2025/users/user_1.2.3", storedID)
}

func TestDecodeReferenceNoExtension(t *testing.T) {
	storedID, ok := DecodeReference(
		"https://cdn.example.com/amazing-thailand-2025/photos/photo_raw",
		"amazing-thailand-2025",
	)
	assert.True(t, ok)
	assert.Equal(t, "amazing-thailand-2025/photos/photo_raw", storedID)
}

func TestDecodeReferenceMissingRootToken(t *testing.T) {
	_, ok := DecodeReference("https://cdn.example.com/other/photos/photo_1.jpg", "amazing-thailand-2025")
	assert.False(t, ok)

	_, ok = DecodeReference("", "amazing-thailand-2025")
	assert.False(t, ok)

	_, ok = DecodeReference("https://cdn.example.com/amazing-thailand-2025/photos/x.jpg", "")
	assert.False(t, ok)
}

func TestDecodeReferenceTrailingSlash(t *testing.T) {
	_, ok := DecodeReference("https://cdn.example.com/amazing-thailand-2025/photos/", "amazing-thailand-2025")
	assert.False(t, ok)
}

func TestDecodeReferenceHiddenFileName(t *testing.T) {
	// A leading dot is not an extension separator.
	storedID, ok := DecodeReference(
		"https://cdn.example.com/amazing-thailand-2025/photos/.secret",
		"amazing-thailand-2025",
	)
	assert.True(t, ok)
	assert.Equal(t, "amazing-thailand-2025/photos/.secret", storedID)
}
