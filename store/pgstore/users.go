package pgstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserResolver 读取身份系统的 users 表，只做存在性检查
type UserResolver struct {
	db    *gorm.DB
	table string
}

func NewUserResolver(db *gorm.DB, table string) *UserResolver {
	if table == "" {
		table = "users"
	}
	return &UserResolver{db: db, table: table}
}

func (r *UserResolver) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Table(r.table).
		Where("id = ?", id).
		Limit(1).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to resolve user: %w", err)
	}
	return count > 0, nil
}
