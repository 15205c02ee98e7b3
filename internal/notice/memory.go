package notice

import (
	"context"
	"sync"
)

// MemoryBoard хранит уведомления в памяти, используется без Redis
type MemoryBoard struct {
	mu       sync.Mutex
	notices  []Notice
	capacity int
}

func NewMemoryBoard(capacity int) *MemoryBoard {
	if capacity <= 0 {
		capacity = 100
	}
	return &MemoryBoard{capacity: capacity}
}

func (b *MemoryBoard) Publish(_ context.Context, n Notice) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notices = append(b.notices, n)
	if over := len(b.notices) - b.capacity; over > 0 {
		b.notices = b.notices[over:]
	}
	return nil
}

// Recent возвращает до limit последних уведомлений, новые первыми
func (b *MemoryBoard) Recent(_ context.Context, limit int) ([]Notice, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if limit <= 0 || limit > len(b.notices) {
		limit = len(b.notices)
	}
	out := make([]Notice, 0, limit)
	for i := len(b.notices) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, b.notices[i])
	}
	return out, nil
}
