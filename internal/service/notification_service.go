package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/observability"
	"github.com/pawhaven/adoption-core/internal/repository"
)

// myNotificationsLimit caps the recipient-facing list; the unread count is
// computed separately and is not bounded by it.
const myNotificationsLimit = 100

type NotificationService struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
	metrics       *observability.Metrics
	now           func() time.Time
}

func NewNotificationService(
	notifications repository.NotificationRepository,
	logger *zap.Logger,
	metrics *observability.Metrics,
) (*NotificationService, error) {
	if notifications == nil {
		return nil, fmt.Errorf("notification repository is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &NotificationService{
		notifications: notifications,
		logger:        logger,
		metrics:       metrics,
		now:           time.Now,
	}, nil
}

// ListMine returns the caller's undeleted notifications, newest first,
// together with the true unread count.
func (s *NotificationService) ListMine(ctx context.Context, recipient string) ([]domain.Notification, int64, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, 0, fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}

	notifications, err := s.notifications.ListForRecipient(ctx, recipient, myNotificationsLimit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.notifications.CountUnread(ctx, recipient)
	if err != nil {
		return nil, 0, err
	}

	return notifications, unread, nil
}

// GetByID fetches one of the caller's undeleted notifications and marks it
// read as a side effect when it was unread.
func (s *NotificationService) GetByID(ctx context.Context, recipient string, id string) (*domain.Notification, error) {
	recipient, id, err := requireRecipientAndID(recipient, id)
	if err != nil {
		return nil, err
	}

	notification, err := s.notifications.GetForRecipient(ctx, id, recipient)
	if err != nil {
		return nil, err
	}

	if !notification.Read {
		return s.notifications.MarkRead(ctx, id, recipient, s.now().UTC())
	}
	return notification, nil
}

// MarkRead is idempotent: the first call stamps read_at and later calls keep
// that timestamp.
func (s *NotificationService) MarkRead(ctx context.Context, recipient string, id string) (*domain.Notification, error) {
	recipient, id, err := requireRecipientAndID(recipient, id)
	if err != nil {
		return nil, err
	}
	return s.notifications.MarkRead(ctx, id, recipient, s.now().UTC())
}

func (s *NotificationService) MarkAllRead(ctx context.Context, recipient string) error {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}
	return s.notifications.MarkAllRead(ctx, recipient, s.now().UTC())
}

// Delete soft-deletes: the notification disappears from lists, counts, and
// the review gate, but stays restorable.
func (s *NotificationService) Delete(ctx context.Context, recipient string, id string) (*domain.Notification, error) {
	recipient, id, err := requireRecipientAndID(recipient, id)
	if err != nil {
		return nil, err
	}
	return s.notifications.SoftDelete(ctx, id, recipient, s.now().UTC())
}

func (s *NotificationService) Restore(ctx context.Context, recipient string, id string) (*domain.Notification, error) {
	recipient, id, err := requireRecipientAndID(recipient, id)
	if err != nil {
		return nil, err
	}
	return s.notifications.Restore(ctx, id, recipient)
}

// Notify persists a single notification.
func (s *NotificationService) Notify(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	if err := prepareNotificationForCreate(n); err != nil {
		return nil, err
	}

	if err := s.notifications.Create(ctx, n); err != nil {
		return nil, err
	}

	s.metrics.IncNotificationCreated(n.Type.String())
	return n, nil
}

// NotifySelfLinked creates a notification whose link must reference its own
// id. The link cannot exist before the record does, so this is a two-phase
// write; a failure after phase one leaves a usable notification without a
// deep link, which is logged and tolerated.
func (s *NotificationService) NotifySelfLinked(ctx context.Context, n *domain.Notification, linkFor func(id string) string) (*domain.Notification, error) {
	if linkFor == nil {
		return nil, fmt.Errorf("link builder is required")
	}

	n.Link = ""
	created, err := s.Notify(ctx, n)
	if err != nil {
		return nil, err
	}

	link := linkFor(created.ID)
	if err := s.notifications.UpdateLink(ctx, created.ID, link); err != nil {
		s.logger.Warn("notification created without self link",
			zap.String("notificationId", created.ID),
			zap.Error(err),
		)
		return created, nil
	}
	created.Link = link

	return created, nil
}

// FanOut persists one notification per recipient in a single batch write.
func (s *NotificationService) FanOut(ctx context.Context, notifications []*domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	for _, n := range notifications {
		if err := prepareNotificationForCreate(n); err != nil {
			return err
		}
	}

	if err := s.notifications.CreateBatch(ctx, notifications); err != nil {
		return err
	}

	for _, n := range notifications {
		s.metrics.IncNotificationCreated(n.Type.String())
	}
	s.metrics.ObserveFanOutSize(len(notifications))

	return nil
}

func prepareNotificationForCreate(n *domain.Notification) error {
	if n == nil {
		return fmt.Errorf("%w: notification is required", domain.ErrValidation)
	}

	n.Recipient = strings.TrimSpace(n.Recipient)
	n.Title = strings.TrimSpace(n.Title)

	n.ID = strings.TrimSpace(n.ID)
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	if n.Type == "" {
		n.Type = domain.NotificationGeneral
	}

	n.Read = false
	n.ReadAt = nil
	n.Deleted = false
	n.DeletedAt = nil

	return n.Validate()
}

func requireRecipientAndID(recipient string, id string) (string, string, error) {
	recipient = strings.TrimSpace(recipient)
	id = strings.TrimSpace(id)
	if recipient == "" {
		return "", "", fmt.Errorf("%w: recipient is required", domain.ErrValidation)
	}
	if id == "" {
		return "", "", fmt.Errorf("%w: notification id is required", domain.ErrValidation)
	}
	return recipient, id, nil
}
