package storage

import "io"

type FileRepository interface {
	// SaveFile streams content to disk under fileName and returns the
	// storage path, the SHA-256 hex hash and the byte size of what was
	// written.
	SaveFile(fileName string, reader io.Reader) (path string, hash string, size int64, err error)
	OpenFile(path string) (io.ReadCloser, error)
	DeleteFile(path string) error
	// HashFile recomputes the SHA-256 hex hash of the file at path.
	HashFile(path string) (string, error)
}
