package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// FS stores one <address>.json file per document under a root directory.
type FS struct {
	root string
}

var _ Interface = (*FS)(nil)

// OpenFS creates the root directory if needed and returns a filesystem
// store rooted there.
func OpenFS(root string) (*FS, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store root %s: %w", root, err)
	}
	return &FS{root: root}, nil
}

// Root returns the store's root directory.
func (s *FS) Root() string {
	return s.root
}

// Path returns the file path backing an address. Exposed for the editor
// hook, which hands the path to an external command after a write.
func (s *FS) Path(addr string) string {
	return filepath.Join(s.root, addr+".json")
}

// Exists reports whether a document file is present for the address.
func (s *FS) Exists(addr string) (bool, error) {
	_, err := os.Stat(s.Path(addr))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat %s: %w", s.Path(addr), err)
}

// Load returns the stored document, or ErrNotFound.
func (s *FS) Load(addr string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(addr))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", addr, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.Path(addr), err)
	}
	return data, nil
}

// Save replaces the document for the address. The body lands in a
// uniquely named temp file in the same directory first and is renamed
// into place, so a crash mid-write leaves either the old document or the
// new one, never a truncated mix.
func (s *FS) Save(addr string, body []byte) error {
	tmp := filepath.Join(s.root, "."+addr+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.Path(addr)); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", s.Path(addr), err)
	}
	return nil
}

// List returns every stored address, sorted ascending. Temp files and
// anything that is not a .json document are ignored.
func (s *FS) List() ([]string, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to list store root %s: %w", s.root, err)
	}

	var addrs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, ".json") {
			continue
		}
		addrs = append(addrs, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(addrs)
	return addrs, nil
}
