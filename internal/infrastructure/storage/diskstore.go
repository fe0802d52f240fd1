// Package storage persists ticket attachments on local disk under
// {root}/{year}/{month}/{project-slug}/{display-id}[/comment_{id}]/{name}.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type DiskStore struct {
	root string
}

func NewDiskStore(root string) *DiskStore {
	return &DiskStore{root: root}
}

// Save streams the upload to disk and returns the path relative to the store
// root together with the byte count. Name collisions get a numeric suffix.
func (s *DiskStore) Save(r io.Reader, projectSlug, displayID string, commentID *uint, filename string, now time.Time) (string, int64, error) {
	dir := filepath.Join(
		fmt.Sprintf("%04d", now.Year()),
		fmt.Sprintf("%02d", int(now.Month())),
		sanitizeSegment(projectSlug),
		sanitizeSegment(displayID),
	)
	if commentID != nil {
		dir = filepath.Join(dir, fmt.Sprintf("comment_%d", *commentID))
	}

	absDir := filepath.Join(s.root, dir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", 0, fmt.Errorf("failed to create attachment directory: %w", err)
	}

	base := sanitizeSegment(filepath.Base(filename))
	if base == "" || base == "." {
		base = "attachment"
	}

	relPath, absPath := s.uniquePath(dir, absDir, base)

	f, err := os.Create(absPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create attachment file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		os.Remove(absPath)
		return "", 0, fmt.Errorf("failed to write attachment: %w", err)
	}
	return relPath, size, nil
}

// Open returns the stored file. Paths resolving outside the store root are
// rejected.
func (s *DiskStore) Open(storedPath string) (*os.File, error) {
	abs := filepath.Join(s.root, filepath.Clean("/"+storedPath))
	rootAbs, err := filepath.Abs(s.root)
	if err != nil {
		return nil, err
	}
	absResolved, err := filepath.Abs(abs)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(absResolved, rootAbs+string(filepath.Separator)) {
		return nil, fmt.Errorf("attachment path escapes storage root")
	}
	return os.Open(absResolved)
}

func (s *DiskStore) uniquePath(dir, absDir, base string) (string, string) {
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	name := base
	for i := 1; ; i++ {
		abs := filepath.Join(absDir, name)
		if _, err := os.Stat(abs); os.IsNotExist(err) {
			return filepath.Join(dir, name), abs
		}
		name = fmt.Sprintf("%s_%d%s", stem, i, ext)
	}
}

// sanitizeSegment keeps path segments free of separators and parent
// references.
func sanitizeSegment(s string) string {
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, "..", "-")
	return strings.TrimSpace(s)
}
