package session

import (
	"context"
	"sync"
	"time"
)

// MemoryBackend stores sessions in-process. It is the fallback when no
// Redis is configured; sessions do not survive a restart.
type MemoryBackend struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      Data
	expiresAt time.Time
}

// NewMemoryBackend returns an in-process session Backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{entries: make(map[string]memoryEntry)}
}

func (b *MemoryBackend) Set(_ context.Context, token string, data *Data, ttl time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[token] = memoryEntry{data: *data, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (b *MemoryBackend) Get(_ context.Context, token string) (*Data, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	entry, ok := b.entries[token]
	if !ok {
		return nil, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(b.entries, token)
		return nil, nil
	}
	data := entry.data
	return &data, nil
}

func (b *MemoryBackend) Delete(_ context.Context, token string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.entries, token)
	return nil
}
