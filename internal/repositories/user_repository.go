package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	model "bughunt-platform.com/bughunt-platform/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

var ErrUserNotFound = errors.New("user not found")

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

func (r *UserRepository) ListPending(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).
		Where("approved = ?", false).
		Order("created_at asc").
		Find(&users).Error
	return users, err
}

func (r *UserRepository) SetApproved(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Model(&model.User{}).
		Where("username = ?", username).
		Update("approved", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, username string) error {
	res := r.db.WithContext(ctx).Delete(&model.User{}, "username = ?", username)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
