// Package storage keeps uploaded application files on local disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

var (
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrInvalidName     = errors.New("invalid file name")
)

const docxType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// allowedTypes maps accepted content types to the extension files are stored under.
var allowedTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	docxType:             ".docx",
	"image/jpeg":         ".jpg",
	"image/png":          ".png",
}

type Store struct {
	Dir      string
	MaxBytes int64
}

// NewStore creates dir if needed.
func NewStore(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Store{Dir: dir, MaxBytes: maxBytes}, nil
}

// Save sniffs the upload, writes it under a generated name and returns that name.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	if s.MaxBytes > 0 && fh.Size > s.MaxBytes {
		return "", fmt.Errorf("%w: %s", ErrTooLarge, fh.Filename)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("opening upload: %w", err)
	}
	defer src.Close()

	ext, err := detect(src, fh.Filename)
	if err != nil {
		return "", err
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewinding upload: %w", err)
	}

	name := uuid.NewString() + ext
	path := filepath.Join(s.Dir, name)
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", name, err)
	}

	var r io.Reader = src
	if s.MaxBytes > 0 {
		r = io.LimitReader(src, s.MaxBytes+1)
	}
	written, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err == nil && s.MaxBytes > 0 && written > s.MaxBytes {
		err = fmt.Errorf("%w: %s", ErrTooLarge, fh.Filename)
	}
	if err != nil {
		os.Remove(path)
		if errors.Is(err, ErrTooLarge) {
			return "", err
		}
		return "", fmt.Errorf("writing %s: %w", name, err)
	}
	return name, nil
}

func detect(r io.Reader, filename string) (string, error) {
	mime, err := mimetype.DetectReader(r)
	if err != nil {
		return "", fmt.Errorf("sniffing upload: %w", err)
	}

	for m := mime; m != nil; m = m.Parent() {
		if ext, ok := allowedTypes[m.String()]; ok {
			return ext, nil
		}
	}

	// Office containers whose signature falls past the sniffing window.
	declared := strings.ToLower(filepath.Ext(filename))
	switch {
	case mime.Is("application/zip") && declared == ".docx":
		return ".docx", nil
	case mime.Is("application/x-ole-storage") && declared == ".doc":
		return ".doc", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedType, mime.String())
}

// Path resolves a stored name to its location, refusing anything that is not
// a plain file name inside the store.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", ErrInvalidName
	}
	return filepath.Join(s.Dir, name), nil
}

// Remove deletes stored files, ignoring ones already gone.
func (s *Store) Remove(names ...string) error {
	var errs []error
	for _, name := range names {
		path, err := s.Path(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
