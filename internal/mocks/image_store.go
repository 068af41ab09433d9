package mocks

import (
	"mime/multipart"
	"sync"
)

// MemoryImageStore fakes image persistence: Save hands back a
// deterministic path without touching disk, Remove records what was
// released. SaveErr forces Save to fail.
type MemoryImageStore struct {
	mu      sync.Mutex
	SaveErr error
	Saved   []string
	Removed []string
}

// Save records the upload and returns a fake stored path.
func (s *MemoryImageStore) Save(file multipart.File, header *multipart.FileHeader) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	path := "uploads/images/" + header.Filename
	s.Saved = append(s.Saved, path)
	return path, nil
}

// Remove records the released path.
func (s *MemoryImageStore) Remove(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Removed = append(s.Removed, path)
}
