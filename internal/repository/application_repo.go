package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/pawhaven/adoption-core/internal/domain"
)

type ApplicationListParams struct {
	Status   *domain.ApplicationStatus
	AnimalID *string
	Page     int
	PageSize int
}

// DecisionUpdate is the field set written when an application is decided.
type DecisionUpdate struct {
	Decision           domain.Decision
	ReviewedBy         string
	ReviewedAt         time.Time
	RejectionReason    string
	MessageToApplicant string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a *domain.AdoptionApplication) error
	GetByID(ctx context.Context, id string) (*domain.AdoptionApplication, error)
	List(ctx context.Context, params ApplicationListParams) ([]domain.AdoptionApplication, int64, error)
	Decide(ctx context.Context, id string, update DecisionUpdate) error
	HardDelete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status *domain.ApplicationStatus) (int64, error)
}

type GormApplicationRepo struct {
	db *gorm.DB
}

func NewGormApplicationRepo(db *gorm.DB) *GormApplicationRepo {
	return &GormApplicationRepo{db: db}
}

func (r *GormApplicationRepo) Create(ctx context.Context, a *domain.AdoptionApplication) error {
	model := applicationModelFromDomain(a)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if a != nil {
		*a = *applicationModelToDomain(model)
	}
	return nil
}

func (r *GormApplicationRepo) GetByID(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
	var model ApplicationModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return applicationModelToDomain(&model), nil
}

func (r *GormApplicationRepo) List(ctx context.Context, params ApplicationListParams) ([]domain.AdoptionApplication, int64, error) {
	query := r.db.WithContext(ctx).Model(&ApplicationModel{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.AnimalID != nil {
		query = query.Where("animal_id = ?", *params.AnimalID)
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

	var models []ApplicationModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	applications := make([]domain.AdoptionApplication, 0, len(models))
	for i := range models {
		applications = append(applications, *applicationModelToDomain(&models[i]))
	}

	return applications, total, nil
}

// Decide records the terminal outcome guarded on status = submitted, so two
// racing reviewers cannot both win: the loser gets ErrConflict.
func (r *GormApplicationRepo) Decide(ctx context.Context, id string, update DecisionUpdate) error {
	rejectionReason := ""
	if update.Decision == domain.DecisionRejected {
		rejectionReason = update.RejectionReason
	}

	result := r.db.WithContext(ctx).
		Model(&ApplicationModel{}).
		Where("id = ? AND status = ?", id, domain.ApplicationSubmitted).
		Updates(map[string]any{
			"status":               domain.ApplicationStatus(update.Decision),
			"decision":             update.Decision,
			"reviewed_by":          update.ReviewedBy,
			"reviewed_at":          update.ReviewedAt,
			"rejection_reason":     rejectionReason,
			"message_to_applicant": update.MessageToApplicant,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrConflict
	}
	return nil
}

func (r *GormApplicationRepo) HardDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&ApplicationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormApplicationRepo) CountByStatus(ctx context.Context, status *domain.ApplicationStatus) (int64, error) {
	query := r.db.WithContext(ctx).Model(&ApplicationModel{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var total int64
	err := query.Count(&total).Error
	return total, err
}
