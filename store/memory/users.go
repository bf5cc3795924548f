package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// UserDirectory 内存用户目录。AcceptAll 为 true 时任何非零 ID 都视为存在，
// 用于没有用户库的本地运行（身份由 JWT 保证）。
type UserDirectory struct {
	AcceptAll bool

	mu    sync.RWMutex
	users map[uuid.UUID]struct{}
}

func NewUserDirectory(ids ...uuid.UUID) *UserDirectory {
	d := &UserDirectory{users: make(map[uuid.UUID]struct{}, len(ids))}
	for _, id := range ids {
		d.users[id] = struct{}{}
	}
	return d
}

func (d *UserDirectory) Add(id uuid.UUID) {
	d.mu.Lock()
	d.users[id] = struct{}{}
	d.mu.Unlock()
}

func (d *UserDirectory) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	if d.AcceptAll {
		return true, nil
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.users[id]
	return ok, nil
}
