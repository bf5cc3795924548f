package pgstore

import (
	"context"
	"errors"
	"fmt"

	"social_graph/errno"
	"social_graph/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, p *model.Post) error {
	row := &postRow{
		ID:        p.ID,
		AuthorID:  p.AuthorID,
		Title:     p.Title,
		Content:   p.Content,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var row postRow
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	p := row.toModel()
	return &p, nil
}

// ListByAuthors 作者集合过滤下推到 SQL（author_id IN ?），走 (author_id, created_at) 索引
func (r *PostRepository) ListByAuthors(ctx context.Context, authors []uuid.UUID, limit int) ([]model.Post, error) {
	if len(authors) == 0 {
		return []model.Post{}, nil
	}
	query := r.db.WithContext(ctx).
		Where("author_id IN ?", authors).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var rows []postRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query posts by authors: %w", err)
	}
	posts := make([]model.Post, 0, len(rows))
	for i := range rows {
		posts = append(posts, rows[i].toModel())
	}
	return posts, nil
}
