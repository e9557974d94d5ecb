package storage

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/sciconst/internal/catalog"
	"github.com/ensigniasec/sciconst/internal/validate"
)

const (
	maxFileSize = 10 * 1024 * 1024 // 10MB limit to prevent memory exhaustion
	dirPerm     = 0o700
	filePerm    = 0o600
)

// ErrIO is matched by every IOError.
var ErrIO = errors.New("i/o error")

// IOError wraps a failed file operation with the path it was attempted on.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

func (e *IOError) Is(target error) bool { return target == ErrIO }

// Storage persists the custom constant overlay as a flat JSON file.
type Storage struct {
	Path string `validate:"required,filepath"`
}

// NewStorage creates a Storage for path, expanding a leading tilde.
func NewStorage(path string) (*Storage, error) {
	expandedPath, err := expandTilde(path)
	if err != nil {
		return nil, err
	}
	s := &Storage{Path: expandedPath}
	if err := validate.Struct(s); err != nil {
		return nil, fmt.Errorf("invalid custom constants path %q: %w", path, err)
	}
	return s, nil
}

// Load replaces the store's custom overlay with the file contents.
// A missing file leaves the overlay untouched and is not an error.
func (s *Storage) Load(store *catalog.Store) error {
	logrus.Debug("Loading custom constants from: ", s.Path)
	data, err := ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logrus.Debug("No custom constants file yet")
			return nil
		}
		return err
	}
	if err := store.ImportCustom(data); err != nil {
		return fmt.Errorf("%s: %w", s.Path, err)
	}
	return nil
}

// Save writes the store's custom overlay to the file.
func (s *Storage) Save(store *catalog.Store) error {
	logrus.Debug("Saving custom constants to: ", s.Path)
	data, err := store.ExportCustom()
	if err != nil {
		return err
	}
	return WriteFile(s.Path, data)
}

// ReadFile reads a whole file with a size cap. Failures are *IOError.
func ReadFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &IOError{Op: "read", Path: path, Err: errors.New("is a directory")}
	}
	if info.Size() > maxFileSize {
		return nil, &IOError{Op: "read", Path: path, Err: fmt.Errorf("file too large: %d bytes (max %d)", info.Size(), maxFileSize)}
	}

	data, err := io.ReadAll(io.LimitReader(file, maxFileSize))
	if err != nil {
		return nil, &IOError{Op: "read", Path: path, Err: err}
	}
	return data, nil
}

// WriteFile writes data through a temporary file in the same directory and renames it
// into place, so readers never observe a partially written file.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return &IOError{Op: "mkdir", Path: dir, Err: err}
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		cleanup()
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return &IOError{Op: "close", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// ExpandPath is expandTilde for callers outside the package.
func ExpandPath(path string) (string, error) {
	return expandTilde(path)
}
