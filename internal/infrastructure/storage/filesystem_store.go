package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

const defaultBaseDir = "/var/lib/talentbruecke/documents"

// FilesystemStore keeps uploaded document bytes on local disk, one file per
// storage key. The key format is "<candidate_id>/<uuid><ext>" so a candidate's
// files share a directory and names never collide.
type FilesystemStore struct {
	baseDir string
}

func NewFilesystemStore(baseDir string) (*FilesystemStore, error) {
	if baseDir == "" {
		baseDir = defaultBaseDir
	}
	if err := os.MkdirAll(baseDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create document store dir: %w", err)
	}
	return &FilesystemStore{baseDir: baseDir}, nil
}

func (s *FilesystemStore) Put(_ context.Context, candidateID, fileName string, data []byte) (string, error) {
	key := filepath.Join(candidateID, uuid.NewString()+filepath.Ext(fileName))
	fullPath := filepath.Join(s.baseDir, key)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o750); err != nil {
		return "", fmt.Errorf("failed to create candidate dir: %w", err)
	}
	if err := os.WriteFile(fullPath, data, 0o640); err != nil {
		return "", fmt.Errorf("failed to write document file: %w", err)
	}
	return key, nil
}

func (s *FilesystemStore) Delete(_ context.Context, storageKey string) error {
	err := os.Remove(filepath.Join(s.baseDir, storageKey))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document file: %w", err)
	}
	return nil
}
