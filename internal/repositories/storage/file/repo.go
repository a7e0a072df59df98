package filerepo

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"compliancedesk/internal/models"
)

const pkg = "fileRepo/"

type repository struct {
	basePath string
}

func NewRepository(basePath string) *repository {
	return &repository{basePath: basePath}
}

func (r *repository) SaveFile(fileName string, reader io.Reader) (string, string, int64, error) {
	op := pkg + "SaveFile"

	if err := os.MkdirAll(r.basePath, 0o755); err != nil {
		return "", "", 0, fmt.Errorf("%s: %w", op, err)
	}

	path := filepath.Join(r.basePath, fileName)

	f, err := os.Create(path)
	if err != nil {
		return "", "", 0, fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	// Hash while writing so the stored hash is a function of exactly
	// the bytes that landed on disk.
	hasher := sha256.New()

	size, err := io.Copy(f, io.TeeReader(reader, hasher))
	if err != nil {
		_ = os.Remove(path)
		return "", "", 0, fmt.Errorf("%s: %w", op, err)
	}

	return path, hex.EncodeToString(hasher.Sum(nil)), size, nil
}

func (r *repository) OpenFile(path string) (io.ReadCloser, error) {
	op := pkg + "OpenFile"

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return f, nil
}

func (r *repository) DeleteFile(path string) error {
	op := pkg + "DeleteFile"

	if err := os.Remove(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", op, models.ErrDocumentNotFound)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *repository) HashFile(path string) (string, error) {
	op := pkg + "HashFile"

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer f.Close()

	hasher := sha256.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
