package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStore is the self-hosted backend: one MySQL table per collection,
// local filesystem uploads served by the API under /files.
type GormStore struct {
	db        *gorm.DB
	uploadDir string
	publicURL string // prefix prepended to uploaded file paths, e.g. http://host:port/files
}

func NewGormStore(db *gorm.DB, uploadDir, publicURL string) *GormStore {
	return &GormStore{db: db, uploadDir: uploadDir, publicURL: publicURL}
}

func (s *GormStore) Find(ctx context.Context, collection string, out any) error {
	return s.db.WithContext(ctx).Table(collection).Find(out).Error
}

func (s *GormStore) Save(ctx context.Context, collection string, record Record) error {
	db := s.db.WithContext(ctx).Table(collection)
	if record.GetObjectID() == "" {
		record.SetObjectID(uuid.NewString())
		return db.Create(record).Error
	}
	// Save updates every field, matching the hosted store's whole-record upsert.
	return db.Save(record).Error
}

func (s *GormStore) Remove(ctx context.Context, collection, objectID string) error {
	res := s.db.WithContext(ctx).Table(collection).Where("object_id = ?", objectID).Delete(nil)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) Upload(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	// Prefix with a uuid so concurrent uploads of the same name never collide.
	name := uuid.NewString()[:8] + "_" + filepath.Base(filename)
	target := filepath.Join(s.uploadDir, dir)
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	f, err := os.Create(filepath.Join(target, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return s.publicURL + "/" + dir + "/" + name, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// NotFound reports whether err means the record did not exist, regardless of
// which backend produced it.
func NotFound(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, gorm.ErrRecordNotFound)
}
