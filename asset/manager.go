package asset

import (
	"context"
	"time"
)

// Reference points at an uploaded object: the URL stored on the database row
// and the store-side id used for deletion.
type Reference struct {
	URL      string `json:"url"`
	StoredID string `json:"stored_id"`
}

// Store is the object-store collaborator.
type Store interface {
	Upload(ctx context.Context, file *File, target UploadTarget) (*Reference, error)
	Destroy(ctx context.Context, storedID string) error
}

// Logger matches the infra logger client surface.
type Logger interface {
	InfoWithContextf(ctx context.Context, format string, args ...interface{})
	WarningWithContextf(ctx context.Context, format string, args ...interface{})
	ErrorWithContextf(ctx context.Context, err error, format string, args ...interface{})
}

// RetirePublisher queues a failed remote delete for later retry so orphaned
// assets stay observable instead of silently accumulating.
type RetirePublisher interface {
	PublishRetireAsset(ctx context.Context, storedID string) error
}

type ManagerConfig struct {
	RootFolder     string
	UploadTimeout  time.Duration
	DestroyTimeout time.Duration
}

// Manager keeps a database row and its remote asset in best-effort
// consistency. Uploads happen before the row write; every failure after a
// successful upload retires the fresh asset again. Remote deletes never fail
// the surrounding operation.
type Manager struct {
	store          Store
	retries        RetirePublisher
	logger         Logger
	rootFolder     string
	uploadTimeout  time.Duration
	destroyTimeout time.Duration
}

func NewManager(store Store, retries RetirePublisher, logger Logger, cfg ManagerConfig) *Manager {
	m := &Manager{
		store:          store,
		retries:        retries,
		logger:         logger,
		rootFolder:     cfg.RootFolder,
		uploadTimeout:  cfg.UploadTimeout,
		destroyTimeout: cfg.DestroyTimeout,
	}
	if m.rootFolder == "" {
		m.rootFolder = "amazing-thailand-2025"
	}
	if m.uploadTimeout <= 0 {
		m.uploadTimeout = 10 * time.Second
	}
	if m.destroyTimeout <= 0 {
		m.destroyTimeout = 5 * time.Second
	}
	if m.logger == nil {
		m.logger = nopLogger{}
	}
	return m
}

// RootFolder returns the folder token shared by all managed assets.
func (m *Manager) RootFolder() string {
	return m.rootFolder
}

// Upload validates the file and pushes it to the store under a fresh target.
// A store call that outlives the configured timeout counts as a failed upload.
func (m *Manager) Upload(ctx context.Context, file *File, category Category, maxBytes int64) (*Reference, error) {
	if err := ValidateImage(file, maxBytes); err != nil {
		return nil, err
	}
	uctx, cancel := context.WithTimeout(ctx, m.uploadTimeout)
	defer cancel()
	return m.store.Upload(uctx, file, NewUploadTarget(m.rootFolder, category))
}

// Create runs one create-with-asset operation: upload (when a file is
// present), then field validation, then the row write. Field validation runs
// after the upload to match the request pipeline this service replaced, so a
// rejected request compensates by retiring the already-uploaded asset.
func (m *Manager) Create(ctx context.Context, file *File, category Category, maxBytes int64,
	validate func() error, write func(ref *Reference) error) (*Reference, error) {

	var ref *Reference
	if file != nil {
		uploaded, err := m.Upload(ctx, file, category, maxBytes)
		if err != nil {
			return nil, err
		}
		ref = uploaded
	}
	if err := validate(); err != nil {
		if ref != nil {
			m.Retire(ctx, ref.URL)
		}
		return nil, err
	}
	if err := write(ref); err != nil {
		if ref != nil {
			m.Retire(ctx, ref.URL)
		}
		return nil, err
	}
	return ref, nil
}

// Replace swaps the asset on an existing row. currentURL is the reference
// loaded before the write; with a new file present the old asset is retired
// best-effort and the new reference handed to update. With no file, update
// receives nil and must leave the asset column untouched. Any update failure
// retires the freshly uploaded asset before the error is surfaced.
func (m *Manager) Replace(ctx context.Context, currentURL string, file *File, category Category, maxBytes int64,
	update func(ref *Reference) error) (*Reference, error) {

	var ref *Reference
	if file != nil {
		uploaded, err := m.Upload(ctx, file, category, maxBytes)
		if err != nil {
			return nil, err
		}
		ref = uploaded
		if currentURL != "" {
			m.Retire(ctx, currentURL)
		}
	}
	if err := update(ref); err != nil {
		if ref != nil {
			m.Retire(ctx, ref.URL)
		}
		return nil, err
	}
	return ref, nil
}

// Delete retires the row's asset and then removes the row. The asset delete
// is attempted first so a failure is still observed while the row exists, but
// it never prevents the row deletion; the row is the source of truth.
func (m *Manager) Delete(ctx context.Context, currentURL string, remove func() error) error {
	if currentURL != "" {
		m.Retire(ctx, currentURL)
	}
	return remove()
}

// Retire deletes the remote object behind url, best-effort. A URL the codec
// cannot decode is a no-op. Store failures are logged and queued for retry;
// they are never returned.
func (m *Manager) Retire(ctx context.Context, url string) {
	if url == "" {
		return
	}
	storedID, ok := DecodeReference(url, m.rootFolder)
	if !ok {
		m.logger.WarningWithContextf(ctx, "[Asset] no public id recoverable from %q, skipping remote delete", url)
		return
	}
	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), m.destroyTimeout)
	defer cancel()
	if err := m.store.Destroy(dctx, storedID); err != nil {
		m.logger.ErrorWithContextf(ctx, err, "[Asset] remote delete failed for %s: %v", storedID, err)
		if m.retries != nil {
			if perr := m.retries.PublishRetireAsset(ctx, storedID); perr != nil {
				m.logger.ErrorWithContextf(ctx, perr, "[Asset] failed to queue retire retry for %s: %v", storedID, perr)
			}
		}
		return
	}
	m.logger.InfoWithContextf(ctx, "[Asset] removed remote object %s", storedID)
}

type nopLogger struct{}

func (nopLogger) InfoWithContextf(context.Context, string, ...interface{}) {}

func (nopLogger) WarningWithContextf(context.Context, string, ...interface{}) {}

func (nopLogger) ErrorWithContextf(context.Context, error, string, ...interface{}) {}
