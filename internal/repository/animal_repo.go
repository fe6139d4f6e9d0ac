package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pawhaven/adoption-core/internal/domain"
)

type AnimalListParams struct {
	Category *string
	Adopted  *bool
	Page     int
	PageSize int
}

type AnimalRepository interface {
	Create(ctx context.Context, a *domain.Animal) error
	GetByID(ctx context.Context, id string) (*domain.Animal, error)
	List(ctx context.Context, params AnimalListParams) ([]domain.Animal, int64, error)
	Update(ctx context.Context, a *domain.Animal) error
	Delete(ctx context.Context, id string) error
	MarkAdopted(ctx context.Context, id string, adoptedBy *string, at time.Time) error
	CountByAdopted(ctx context.Context, adopted bool) (int64, error)
}

type GormAnimalRepo struct {
	db *gorm.DB
}

func NewGormAnimalRepo(db *gorm.DB) *GormAnimalRepo {
	return &GormAnimalRepo{db: db}
}

func (r *GormAnimalRepo) Create(ctx context.Context, a *domain.Animal) error {
	model := animalModelFromDomain(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if a != nil {
		*a = *animalModelToDomain(model)
	}
	return nil
}

func (r *GormAnimalRepo) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	var model AnimalModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return animalModelToDomain(&model), nil
}

func (r *GormAnimalRepo) List(ctx context.Context, params AnimalListParams) ([]domain.Animal, int64, error) {
	query := r.db.WithContext(ctx).Model(&AnimalModel{})

	if params.Category != nil {
		query = query.Where("category = ?", *params.Category)
	}
	if params.Adopted != nil {
		query = query.Where("adopted = ?", *params.Adopted)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := max(params.Page, 1)
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 50
	}
	pageSize = min(pageSize, 100)

	var models []AnimalModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	animals := make([]domain.Animal, 0, len(models))
	for i := range models {
		animals = append(animals, *animalModelToDomain(&models[i]))
	}

	return animals, total, nil
}

// Update writes the catalog columns only; adoption state changes go through
// MarkAdopted so the workflow invariants hold.
func (r *GormAnimalRepo) Update(ctx context.Context, a *domain.Animal) error {
	model := animalModelFromDomain(a)
	result := r.db.WithContext(ctx).
		Model(&AnimalModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]any{
			"name":              model.Name,
			"category":          model.Category,
			"breed":             model.Breed,
			"gender":            model.Gender,
			"age":               model.Age,
			"medical_condition": model.MedicalCondition,
			"adoption_type":     model.AdoptionType,
			"foster_duration":   model.FosterDuration,
			"address":           model.Address,
			"img":               model.Img,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormAnimalRepo) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&AnimalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormAnimalRepo) MarkAdopted(ctx context.Context, id string, adoptedBy *string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&AnimalModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"adopted":    true,
			"adopted_by": adoptedBy,
			"adopted_at": at,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormAnimalRepo) CountByAdopted(ctx context.Context, adopted bool) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&AnimalModel{}).
		Where("adopted = ?", adopted).
		Count(&total).Error
	return total, err
}
