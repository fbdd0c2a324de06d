package asset

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Category selects the storage folder and the public-id prefix for an upload.
type Category string

const (
	CategoryPhoto  Category = "photos"
	CategoryAvatar Category = "users"
)

func (c Category) prefix() string {
	switch c {
	case CategoryAvatar:
		return "user"
	default:
		return "photo"
	}
}

// UploadTarget is where a file lands in the object store.
type UploadTarget struct {
	Folder   string
	PublicID string
}

// NewUploadTarget generates a target under rootFolder for the given category.
// The public id combines the category prefix, the current time and a random
// component, so two uploads can never silently overwrite each other.
func NewUploadTarget(rootFolder string, category Category) UploadTarget {
	id := fmt.Sprintf("%s_%d_%s", category.prefix(), time.Now().UnixMilli(), shortRandom())
	return UploadTarget{
		Folder:   rootFolder + "/" + string(category),
		PublicID: id,
	}
}

func shortRandom() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// DecodeReference recovers the stored public id ("folder/name" without the
// file extension) from an asset URL. The second return value reports whether
// the URL contains the expected root folder token at all; callers treat a
// false result as "nothing to delete" rather than an error, since this sits
// on best-effort cleanup paths.
//
// Only the segment after the last dot is stripped, so a public id that itself
// contains dots survives intact.
func DecodeReference(rawURL, rootToken string) (string, bool) {
	if rawURL == "" || rootToken == "" {
		return "", false
	}
	parts := strings.Split(rawURL, "/")
	start := -1
	for i, part := range parts {
		if part == rootToken {
			start = i
			break
		}
	}
	if start < 0 {
		return "", false
	}
	segments := parts[start:]
	name := segments[len(segments)-1]
	if name == "" {
		return "", false
	}
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	segments[len(segments)-1] = name
	return strings.Join(segments, "/"), true
}
