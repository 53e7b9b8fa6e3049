// Package storage puts uploaded images behind a small interface so the
// handlers don't care whether the bytes land in MinIO or in a test map.
package storage

import (
	"context"
	"io"
	"sync"
)

// ImageStore persists an uploaded object and returns its public URL.
type ImageStore interface {
	Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
}

// Memory keeps uploads in a map. Test use only.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

func (m *Memory) Put(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[name] = data
	m.mu.Unlock()
	return "memory://" + name, nil
}

// Object returns a stored upload, for test assertions.
func (m *Memory) Object(name string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[name]
	return data, ok
}
