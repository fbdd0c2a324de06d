package asset

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingStore remembers every upload and destroy so tests can assert on
// the exact sequence of store calls.
type recordingStore struct {
	uploads    []UploadTarget
	destroys   []string
	uploadErr  error
	destroyErr error
}

func (s *recordingStore) Upload(ctx context.Context, file *File, target UploadTarget) (*Reference, error) {
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	s.uploads = append(s.uploads, target)
	storedID := target.Folder + "/" + target.PublicID
	return &Reference{
		URL:      "https://cdn.example.com/media/" + storedID + ".jpg",
		StoredID: storedID,
	}, nil
}

func (s *recordingStore) Destroy(ctx context.Context, storedID string) error {
	s.destroys = append(s.destroys, storedID)
	return s.destroyErr
}

type recordingPublisher struct {
	published []string
}

func (p *recordingPublisher) PublishRetireAsset(ctx context.Context, storedID string) error {
	p.published = append(p.published, storedID)
	return nil
}

func newTestManager(store Store) *Manager {
	return NewManager(store, &recordingPublisher{}, nil, ManagerConfig{
		RootFolder: "amazing-thailand-2025",
	})
}

func validFile() *File {
	return testFile("beach.jpg", "image/jpeg", 1024)
}

func TestManagerCreateSuccess(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	var written *Reference
	ref, err := m.Create(context.Background(), validFile(), CategoryPhoto, 5*1024*1024,
		func() error { return nil },
		func(r *Reference) error {
			written = r
			return nil
		})
	require.NoError(t, err)
	require.NotNil(t, ref)
	assert.Equal(t, ref, written)
	assert.Len(t, store.uploads, 1)
	assert.Empty(t, store.destroys)

	// The URL must decode back to the stored id.
	storedID, ok := DecodeReference(ref.URL, m.RootFolder())
	require.True(t, ok)
	assert.Equal(t, ref.StoredID, storedID)
}

func TestManagerCreateValidationFailureRetiresUpload(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	wantErr := errors.New("missing required fields")
	_, err := m.Create(context.Background(), validFile(), CategoryPhoto, 5*1024*1024,
		func() error { return wantErr },
		func(r *Reference) error {
			t.Fatal("write must not run when validation fails")
			return nil
		})
	assert.ErrorIs(t, err, wantErr)
	assert.Len(t, store.uploads, 1)
	require.Len(t, store.destroys, 1)
	assert.Equal(t, store.uploads[0].Folder+"/"+store.uploads[0].PublicID, store.destroys[0])
}

func TestManagerCreateWriteFailureRetiresUpload(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	wantErr := errors.New("insert failed")
	_, err := m.Create(context.Background(), validFile(), CategoryPhoto, 5*1024*1024,
		func() error { return nil },
		func(r *Reference) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)
	assert.Len(t, store.destroys, 1)
}

func TestManagerCreateRejectedBeforeStore(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	_, err := m.Create(context.Background(), testFile("notes.pdf", "application/pdf", 10), CategoryPhoto, 5*1024*1024,
		func() error { return nil },
		func(r *Reference) error { return nil })
	assert.True(t, IsRejected(err))
	assert.Empty(t, store.uploads)
	assert.Empty(t, store.destroys)
}

func TestManagerCreateWithoutFile(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	ref, err := m.Create(context.Background(), nil, CategoryAvatar, 1024*1024,
		func() error { return nil },
		func(r *Reference) error {
			assert.Nil(t, r)
			return nil
		})
	require.NoError(t, err)
	assert.Nil(t, ref)
	assert.Empty(t, store.uploads)
}

func TestManagerReplaceRetiresOldAsset(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	currentURL := "https://cdn.example.com/media/amazing-thailand-2025/photos/photo_old.jpg"
	ref, err := m.Replace(context.Background(), currentURL, validFile(), CategoryPhoto, 5*1024*1024,
		func(r *Reference) error {
			require.NotNil(t, r)
			return nil
		})
	require.NoError(t, err)
	require.NotNil(t, ref)
	require.Len(t, store.destroys, 1)
	assert.Equal(t, "amazing-thailand-2025/photos/photo_old", store.destroys[0])
}

func TestManagerReplaceWithoutFile(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	ref, err := m.Replace(context.Background(), "https://cdn.example.com/media/amazing-thailand-2025/photos/photo_old.jpg", nil, CategoryPhoto, 5*1024*1024,
		func(r *Reference) error {
			assert.Nil(t, r)
			return nil
		})
	require.NoError(t, err)
	assert.Nil(t, ref)
	assert.Empty(t, store.uploads)
	assert.Empty(t, store.destroys, "a text-only update must leave the current asset alone")
}

func TestManagerReplaceUpdateFailureRetiresNewAsset(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	wantErr := errors.New("row vanished")
	_, err := m.Replace(context.Background(), "https://cdn.example.com/media/amazing-thailand-2025/photos/photo_old.jpg", validFile(), CategoryPhoto, 5*1024*1024,
		func(r *Reference) error { return wantErr })
	assert.ErrorIs(t, err, wantErr)

	// Old asset retired on upload, new one retired on the failed update.
	require.Len(t, store.destroys, 2)
	assert.Equal(t, "amazing-thailand-2025/photos/photo_old", store.destroys[0])
	assert.Equal(t, store.uploads[0].Folder+"/"+store.uploads[0].PublicID, store.destroys[1])
}

func TestManagerDeleteRetiresThenRemoves(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	removed := false
	err := m.Delete(context.Background(), "https://cdn.example.com/media/amazing-thailand-2025/photos/photo_gone.png", func() error {
		removed = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, removed)
	require.Len(t, store.destroys, 1)
	assert.Equal(t, "amazing-thailand-2025/photos/photo_gone", store.destroys[0])
}

func TestManagerDeleteStoreFailureDoesNotBlockRemove(t *testing.T) {
	store := &recordingStore{destroyErr: errors.New("store down")}
	publisher := &recordingPublisher{}
	m := NewManager(store, publisher, nil, ManagerConfig{RootFolder: "amazing-thailand-2025"})

	removed := false
	err := m.Delete(context.Background(), "https://cdn.example.com/media/amazing-thailand-2025/photos/photo_gone.png", func() error {
		removed = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, removed)

	// The failed delete is queued for the retire consumer.
	require.Len(t, publisher.published, 1)
	assert.Equal(t, "amazing-thailand-2025/photos/photo_gone", publisher.published[0])
}

func TestManagerDeleteUndecodableURL(t *testing.T) {
	store := &recordingStore{}
	m := newTestManager(store)

	removed := false
	err := m.Delete(context.Background(), "https://elsewhere.example.com/foo/bar.png", func() error {
		removed = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, store.destroys)
}

func TestManagerUploadFailurePropagates(t *testing.T) {
	wantErr := errors.New("store unreachable")
	store := &recordingStore{uploadErr: wantErr}
	m := newTestManager(store)

	_, err := m.Create(context.Background(), validFile(), CategoryPhoto, 5*1024*1024,
		func() error { return nil },
		func(r *Reference) error {
			t.Fatal("write must not run when the upload fails")
			return nil
		})
	assert.ErrorIs(t, err, wantErr)
	assert.Empty(t, store.destroys)
}
