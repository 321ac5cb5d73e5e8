package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensions accepted for requirement files and sprint artifacts.
var allowedExt = map[string]bool{
	".pdf":  true,
	".txt":  true,
	".py":   true,
	".java": true,
	".c":    true,
	".cpp":  true,
	".doc":  true,
	".docx": true,
	".ppt":  true,
	".pptx": true,
}

func AllowedFile(name string) bool {
	return allowedExt[strings.ToLower(filepath.Ext(name))]
}

// DiskStore writes uploads under a single directory served statically at
// /uploads. Stored names are uuid-based so uploads never collide; the
// original filename lives in the database record.
type DiskStore struct {
	dir string
}

func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (d *DiskStore) Dir() string { return d.dir }

// Save persists the uploaded file and returns its path relative to the
// process working directory.
func (d *DiskStore) Save(fh *multipart.FileHeader) (string, error) {
	if !AllowedFile(fh.Filename) {
		return "", fmt.Errorf("40005:File type not allowed")
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	path := filepath.Join(d.dir, name)

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}
	return path, nil
}

// FileURL builds the client-facing URL of a stored file.
func FileURL(baseURL, path string) string {
	if path == "" {
		return ""
	}
	return fmt.Sprintf("%s/uploads/%s", strings.TrimRight(baseURL, "/"), filepath.Base(path))
}
