// Package localfiles implements the attachment store port against a local
// directory. Orders reference attachments by key; this adapter only answers
// existence checks, it never reads the files.
package localfiles

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store checks attachment keys against files under a root directory.
type Store struct {
	root string
}

// NewStore creates a store rooted at the given directory.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Exists reports whether a file for the key is present. Keys that escape the
// root directory are rejected.
func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if !strings.HasPrefix(path, filepath.Clean(s.root)+string(filepath.Separator)) {
		return false, fmt.Errorf("attachment key %q escapes the store root", key)
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
