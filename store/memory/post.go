package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"social_graph/errno"
	"social_graph/model"

	"github.com/google/uuid"
)

type PostRepository struct {
	mu       sync.RWMutex
	posts    map[uuid.UUID]*model.Post
	byAuthor map[uuid.UUID][]uuid.UUID
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:    make(map[uuid.UUID]*model.Post),
		byAuthor: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (r *PostRepository) Create(_ context.Context, p *model.Post) error {
	cp := *p
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[p.ID]; ok {
		return fmt.Errorf("post %s already exists", p.ID)
	}
	r.posts[p.ID] = &cp
	r.byAuthor[p.AuthorID] = append(r.byAuthor[p.AuthorID], p.ID)
	return nil
}

func (r *PostRepository) Get(_ context.Context, id uuid.UUID) (*model.Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.posts[id]
	if !ok {
		return nil, errno.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

// ListByAuthors walks only the per-author indexes of the requested authors.
func (r *PostRepository) ListByAuthors(_ context.Context, authors []uuid.UUID, limit int) ([]model.Post, error) {
	r.mu.RLock()
	posts := make([]model.Post, 0)
	seen := make(map[uuid.UUID]struct{}, len(authors))
	for _, a := range authors {
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		for _, id := range r.byAuthor[a] {
			posts = append(posts, *r.posts[id])
		}
	}
	r.mu.RUnlock()

	sort.Slice(posts, func(i, j int) bool { return posts[i].NewerThan(&posts[j]) })
	if limit > 0 && limit < len(posts) {
		posts = posts[:limit]
	}
	return posts, nil
}
