// Package upload persists submitted photos to a directory on local
// disk and maps them to public URLs.
package upload

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is the public path under which stored photos are served.
const URLPrefix = "/uploads/"

// PhotoStore writes uploaded photos to a directory, one file per photo,
// each under a collision-resistant unique name. Files are never
// modified or deleted after being written.
type PhotoStore struct {
	dir string
}

// NewPhotoStore creates the upload directory if needed and returns a
// store over it.
func NewPhotoStore(dir string) (*PhotoStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &PhotoStore{dir: dir}, nil
}

// Dir returns the directory photos are stored in.
func (p *PhotoStore) Dir() string {
	return p.dir
}

// Save writes the photo to disk under a fresh unique name derived from
// the client-supplied filename and returns its public URL path.
func (p *PhotoStore) Save(originalName string, r io.Reader) (string, error) {
	name := uuid.New().String() + "_" + SanitizeFilename(originalName)

	f, err := os.OpenFile(filepath.Join(p.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return path.Join(URLPrefix, name), nil
}

// SanitizeFilename strips path components and any character outside
// [A-Za-z0-9._-] from a client-supplied filename. Returns "photo" when
// nothing safe remains.
func SanitizeFilename(name string) string {
	// Browsers may send full paths; keep only the base name. Check both
	// separators since the client OS is unknown.
	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		}
	}

	sanitized := strings.Trim(b.String(), ".")
	if sanitized == "" {
		return "photo"
	}
	return sanitized
}
