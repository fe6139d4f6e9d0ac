package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/pawhaven/adoption-core/internal/domain"
)

type NotificationListParams struct {
	Recipient *string
	Type      *domain.NotificationType
	Deleted   *bool
	Page      int
	PageSize  int
}

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	CreateBatch(ctx context.Context, notifications []*domain.Notification) error
	ListForRecipient(ctx context.Context, recipient string, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, recipient string) (int64, error)
	GetForRecipient(ctx context.Context, id string, recipient string) (*domain.Notification, error)
	MarkRead(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, recipient string, at time.Time) error
	SoftDelete(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error)
	Restore(ctx context.Context, id string, recipient string) (*domain.Notification, error)
	HasReviewGrant(ctx context.Context, recipient string, applicationID string) (bool, error)
	UpdateLink(ctx context.Context, id string, link string) error
	List(ctx context.Context, params NotificationListParams) ([]domain.Notification, int64, error)
	HardDelete(ctx context.Context, id string) error
	CountLive(ctx context.Context) (int64, error)
}

type GormNotificationRepo struct {
	db *gorm.DB
}

func NewGormNotificationRepo(db *gorm.DB) *GormNotificationRepo {
	return &GormNotificationRepo{db: db}
}

func (r *GormNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	model := notificationModelFromDomain(n)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	if n != nil {
		*n = *notificationModelToDomain(model)
	}
	return nil
}

func (r *GormNotificationRepo) CreateBatch(ctx context.Context, notifications []*domain.Notification) error {
	models := make([]NotificationModel, 0, len(notifications))
	modelIndexes := make([]int, 0, len(notifications))
	for i, n := range notifications {
		model := notificationModelFromDomain(n)
		if model != nil {
			models = append(models, *model)
			modelIndexes = append(modelIndexes, i)
		}
	}

	if len(models) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).CreateInBatches(&models, 100).Error; err != nil {
		return err
	}

	for i := range models {
		idx := modelIndexes[i]
		if idx < len(notifications) && notifications[idx] != nil {
			*notifications[idx] = *notificationModelToDomain(&models[i])
		}
	}

	return nil
}

func (r *GormNotificationRepo) ListForRecipient(ctx context.Context, recipient string, limit int) ([]domain.Notification, error) {
	if limit < 1 {
		limit = 100
	}

	var models []NotificationModel
	err := r.db.WithContext(ctx).
		Where("recipient = ? AND deleted = ?", recipient, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, *notificationModelToDomain(&models[i]))
	}

	return notifications, nil
}

// CountUnread is computed independently of the capped list so the badge
// reflects the true total.
func (r *GormNotificationRepo) CountUnread(ctx context.Context, recipient string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("recipient = ? AND read = ? AND deleted = ?", recipient, false, false).
		Count(&total).Error
	return total, err
}

func (r *GormNotificationRepo) GetForRecipient(ctx context.Context, id string, recipient string) (*domain.Notification, error) {
	var model NotificationModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND recipient = ? AND deleted = ?", id, recipient, false).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return notificationModelToDomain(&model), nil
}

// MarkRead stamps read_at once; marking an already-read notification keeps
// the original timestamp.
func (r *GormNotificationRepo) MarkRead(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ? AND recipient = ? AND read = ? AND deleted = ?", id, recipient, false, false).
		Updates(map[string]any{
			"read":    true,
			"read_at": at,
		})
	if result.Error != nil {
		return nil, result.Error
	}

	return r.GetForRecipient(ctx, id, recipient)
}

func (r *GormNotificationRepo) MarkAllRead(ctx context.Context, recipient string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("recipient = ? AND read = ? AND deleted = ?", recipient, false, false).
		Updates(map[string]any{
			"read":    true,
			"read_at": at,
		}).Error
}

func (r *GormNotificationRepo) SoftDelete(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ? AND recipient = ? AND deleted = ?", id, recipient, false).
		Updates(map[string]any{
			"deleted":    true,
			"deleted_at": at,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.getOwned(ctx, id, recipient)
}

func (r *GormNotificationRepo) Restore(ctx context.Context, id string, recipient string) (*domain.Notification, error) {
	result := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ? AND recipient = ? AND deleted = ?", id, recipient, true).
		Updates(map[string]any{
			"deleted":    false,
			"deleted_at": nil,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domain.ErrNotFound
	}

	return r.getOwned(ctx, id, recipient)
}

// HasReviewGrant is the review-gate query: a live notification addressed to
// the recipient whose payload references the application id.
func (r *GormNotificationRepo) HasReviewGrant(ctx context.Context, recipient string, applicationID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("recipient = ? AND deleted = ?", recipient, false).
		Where(datatypes.JSONQuery("data").Equals(applicationID, domain.DataKeyApplicationID)).
		Count(&total).Error
	if err != nil {
		return false, err
	}
	return total > 0, nil
}

// UpdateLink backfills the self-referential deep link after the id is known.
func (r *GormNotificationRepo) UpdateLink(ctx context.Context, id string, link string) error {
	result := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id = ?", id).
		Update("link", link)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormNotificationRepo) List(ctx context.Context, params NotificationListParams) ([]domain.Notification, int64, error) {
	query := r.db.WithContext(ctx).Model(&NotificationModel{})

	if params.Recipient != nil {
		query = query.Where("recipient = ?", *params.Recipient)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.Deleted != nil {
		query = query.Where("deleted = ?", *params.Deleted)
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

	var models []NotificationModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	notifications := make([]domain.Notification, 0, len(models))
	for i := range models {
		notifications = append(notifications, *notificationModelToDomain(&models[i]))
	}

	return notifications, total, nil
}

func (r *GormNotificationRepo) HardDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&NotificationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *GormNotificationRepo) CountLive(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("deleted = ?", false).
		Count(&total).Error
	return total, err
}

func (r *GormNotificationRepo) getOwned(ctx context.Context, id string, recipient string) (*domain.Notification, error) {
	var model NotificationModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND recipient = ?", id, recipient).
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return notificationModelToDomain(&model), nil
}
