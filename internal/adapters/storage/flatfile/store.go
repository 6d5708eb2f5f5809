// Package flatfile implements the member store as a newline-delimited text
// file: one name per line, no header, no escaping. A name that itself
// contains a newline cannot be represented and is split on the next load.
package flatfile

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jsamuelsen11/member-roster/internal/domain"
	"github.com/jsamuelsen11/member-roster/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.MemberStore   = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const (
	separator = "\n"
	fileMode  = 0o644
	dirMode   = 0o755
)

// Store reads and rewrites the roster file at a fixed path.
// It holds no locks: concurrent writers race and the last rename wins.
type Store struct {
	path string
}

// New returns a Store backed by the file at path. The file and its parent
// directories are created on the first write.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the roster file.
func (s *Store) Path() string {
	return s.path
}

// LoadAll returns the names stored in the file in file order. A missing or
// empty file yields an empty slice. Lines are not trimmed; trailing empty
// lines left by a terminating newline are dropped.
func (s *Store) LoadAll(_ context.Context) ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, &domain.StorageError{Op: "read", Path: s.path, Err: err}
	}
	return splitNames(string(data)), nil
}

// Append writes name at the end of the file, creating it if needed. A
// separating newline is written first when the file is non-empty and does
// not already end with one, so entries never run together.
func (s *Store) Append(_ context.Context, name string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_APPEND|os.O_CREATE, fileMode)
	if err != nil {
		return &domain.StorageError{Op: "open", Path: s.path, Err: err}
	}

	needsSep, err := needsSeparator(f)
	if err != nil {
		_ = f.Close()
		return &domain.StorageError{Op: "read", Path: s.path, Err: err}
	}

	entry := name
	if needsSep {
		entry = separator + name
	}
	if _, err := f.WriteString(entry); err != nil {
		_ = f.Close()
		return &domain.StorageError{Op: "append", Path: s.path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &domain.StorageError{Op: "close", Path: s.path, Err: err}
	}
	return nil
}

// ReplaceAll overwrites the file with names joined by newlines. The content
// is written to a temporary file in the same directory and renamed into
// place, so readers see either the old or the new roster.
func (s *Store) ReplaceAll(_ context.Context, names []string) error {
	if err := s.ensureDir(); err != nil {
		return err
	}

	dir, base := filepath.Split(s.path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return &domain.StorageError{Op: "create", Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(strings.Join(names, separator)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &domain.StorageError{Op: "write", Path: s.path, Err: err}
	}
	if err := tmp.Chmod(fileMode); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return &domain.StorageError{Op: "chmod", Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return &domain.StorageError{Op: "close", Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return &domain.StorageError{Op: "rename", Path: s.path, Err: err}
	}
	return nil
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return "member-store"
}

// HealthCheck reports whether the roster file's directory is reachable and
// the file, if present, is a regular file.
func (s *Store) HealthCheck(_ context.Context) error {
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		if _, dirErr := os.Stat(filepath.Dir(s.path)); dirErr != nil && !errors.Is(dirErr, fs.ErrNotExist) {
			return fmt.Errorf("stat %s: %w", filepath.Dir(s.path), dirErr)
		}
		return nil
	case err != nil:
		return fmt.Errorf("stat %s: %w", s.path, err)
	case !info.Mode().IsRegular():
		return fmt.Errorf("%s is not a regular file", s.path)
	}
	return nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return &domain.StorageError{Op: "mkdir", Path: dir, Err: err}
	}
	return nil
}

// splitNames splits file content into names. Empty content has no names, and
// trailing empty fields are dropped while empty lines in the middle are kept.
func splitNames(content string) []string {
	names := strings.Split(content, separator)
	end := len(names)
	for end > 0 && names[end-1] == "" {
		end--
	}
	return names[:end]
}

// needsSeparator reports whether f is non-empty and its last byte is not a
// newline.
func needsSeparator(f *os.File) (bool, error) {
	info, err := f.Stat()
	if err != nil {
		return false, err
	}
	if info.Size() == 0 {
		return false, nil
	}

	last := make([]byte, 1)
	if _, err := f.ReadAt(last, info.Size()-1); err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	return !bytes.Equal(last, []byte(separator)), nil
}

// Close is a no-op; the file is opened and closed per operation.
func (s *Store) Close() error {
	return nil
}
