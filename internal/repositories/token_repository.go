package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	model "bughunt-platform.com/bughunt-platform/internal/models"
)

type TokenRepository struct {
	db *gorm.DB
}

var ErrTokenNotFound = errors.New("token not found")

func NewTokenRepository(db *gorm.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(ctx context.Context, token *model.AuthToken) error {
	return r.db.WithContext(ctx).Create(token).Error
}

func (r *TokenRepository) Find(ctx context.Context, token string) (*model.AuthToken, error) {
	var t model.AuthToken
	err := r.db.WithContext(ctx).First(&t, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TokenRepository) DeleteExpired(ctx context.Context, now time.Time) error {
	return r.db.WithContext(ctx).
		Delete(&model.AuthToken{}, "expires_at < ?", now).Error
}
