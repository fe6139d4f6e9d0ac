package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawhaven/adoption-core/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

type GormUserRepo struct {
	db *gorm.DB
}

func NewGormUserRepo(db *gorm.DB) *GormUserRepo {
	return &GormUserRepo{db: db}
}

func (r *GormUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	var model UserModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return userModelToDomain(&model), nil
}

// FindByRoles resolves the staff pool at a point in time; callers snapshot
// the result and never re-derive it.
func (r *GormUserRepo) FindByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
	var models []UserModel
	err := r.db.WithContext(ctx).
		Where("role IN ?", roles).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(models))
	for i := range models {
		users = append(users, *userModelToDomain(&models[i]))
	}
	return users, nil
}

func (r *GormUserRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&total).Error
	return total, err
}
