package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
)

// memoryNotificationRepo keeps notifications in a slice so tests can drive
// the grant lifecycle through real soft-delete and restore state instead of
// canned answers.
type memoryNotificationRepo struct {
	records []*domain.Notification
}

func (m *memoryNotificationRepo) find(id string, recipient string) *domain.Notification {
	for _, n := range m.records {
		if n.ID == id && n.Recipient == recipient {
			return n
		}
	}
	return nil
}

func (m *memoryNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	copied := *n
	m.records = append(m.records, &copied)
	return nil
}

func (m *memoryNotificationRepo) CreateBatch(ctx context.Context, notifications []*domain.Notification) error {
	for _, n := range notifications {
		if err := m.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (m *memoryNotificationRepo) ListForRecipient(_ context.Context, recipient string, limit int) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range m.records {
		if n.Recipient != recipient || n.Deleted {
			continue
		}
		out = append(out, *n)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *memoryNotificationRepo) CountUnread(_ context.Context, recipient string) (int64, error) {
	var count int64
	for _, n := range m.records {
		if n.Recipient == recipient && !n.Deleted && !n.Read {
			count++
		}
	}
	return count, nil
}

func (m *memoryNotificationRepo) GetForRecipient(_ context.Context, id string, recipient string) (*domain.Notification, error) {
	if n := m.find(id, recipient); n != nil {
		copied := *n
		return &copied, nil
	}
	return nil, domain.ErrNotFound
}

func (m *memoryNotificationRepo) MarkRead(_ context.Context, id string, recipient string, at time.Time) (*domain.Notification, error) {
	n := m.find(id, recipient)
	if n == nil {
		return nil, domain.ErrNotFound
	}
	if !n.Read {
		n.Read = true
		n.ReadAt = &at
	}
	copied := *n
	return &copied, nil
}

func (m *memoryNotificationRepo) MarkAllRead(_ context.Context, recipient string, at time.Time) error {
	for _, n := range m.records {
		if n.Recipient == recipient && !n.Read {
			n.Read = true
			n.ReadAt = &at
		}
	}
	return nil
}

func (m *memoryNotificationRepo) SoftDelete(_ context.Context, id string, recipient string, at time.Time) (*domain.Notification, error) {
	n := m.find(id, recipient)
	if n == nil {
		return nil, domain.ErrNotFound
	}
	n.Deleted = true
	n.DeletedAt = &at
	copied := *n
	return &copied, nil
}

func (m *memoryNotificationRepo) Restore(_ context.Context, id string, recipient string) (*domain.Notification, error) {
	n := m.find(id, recipient)
	if n == nil {
		return nil, domain.ErrNotFound
	}
	n.Deleted = false
	n.DeletedAt = nil
	copied := *n
	return &copied, nil
}

func (m *memoryNotificationRepo) HasReviewGrant(_ context.Context, recipient string, applicationID string) (bool, error) {
	for _, n := range m.records {
		if n.Recipient == recipient && !n.Deleted && n.ApplicationID() == applicationID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryNotificationRepo) UpdateLink(_ context.Context, id string, link string) error {
	for _, n := range m.records {
		if n.ID == id {
			n.Link = link
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memoryNotificationRepo) List(_ context.Context, _ repository.NotificationListParams) ([]domain.Notification, int64, error) {
	out := make([]domain.Notification, 0, len(m.records))
	for _, n := range m.records {
		out = append(out, *n)
	}
	return out, int64(len(out)), nil
}

func (m *memoryNotificationRepo) HardDelete(_ context.Context, id string) error {
	for i, n := range m.records {
		if n.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *memoryNotificationRepo) CountLive(_ context.Context) (int64, error) {
	var count int64
	for _, n := range m.records {
		if !n.Deleted {
			count++
		}
	}
	return count, nil
}

// The review grant is possession of a live notification: deleting it revokes
// review access, restoring it grants access again, and neither touches the
// other reviewer's grant.
func TestReviewGrantFollowsNotificationLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	animal := &domain.Animal{ID: "animal-1", Name: "Biscuit", Category: "dog"}

	var stored *domain.AdoptionApplication
	applications := &fakeApplicationRepo{
		createFn: func(_ context.Context, a *domain.AdoptionApplication) error {
			copied := *a
			stored = &copied
			return nil
		},
		getByIDFn: func(_ context.Context, id string) (*domain.AdoptionApplication, error) {
			if stored == nil || stored.ID != id {
				return nil, domain.ErrNotFound
			}
			copied := *stored
			return &copied, nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(_ context.Context, id string) (*domain.Animal, error) {
			if id != animal.ID {
				return nil, domain.ErrNotFound
			}
			return animal, nil
		},
	}
	users := &fakeUserRepo{
		findByRolesFn: func(_ context.Context, _ []domain.Role) ([]domain.User, error) {
			return []domain.User{
				{ID: "staff-a", Role: domain.RoleStaff},
				{ID: "staff-b", Role: domain.RoleStaff},
			}, nil
		},
	}

	store := &memoryNotificationRepo{}
	notifier, err := NewNotificationService(store, nil, nil)
	if err != nil {
		t.Fatalf("NewNotificationService() error = %v", err)
	}
	gate, err := NewReviewGate(store)
	if err != nil {
		t.Fatalf("NewReviewGate() error = %v", err)
	}
	svc, err := NewAdoptionService(applications, animals, users, notifier, gate, nil, nil)
	if err != nil {
		t.Fatalf("NewAdoptionService() error = %v", err)
	}

	application, err := svc.Submit(ctx, animal.ID, nil, validForm())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	for _, reviewer := range []string{"staff-a", "staff-b"} {
		if _, err := svc.GetForReview(ctx, reviewer, application.ID); err != nil {
			t.Fatalf("GetForReview(%s) error = %v, want grant from fan-out", reviewer, err)
		}
	}

	mine, _, err := notifier.ListMine(ctx, "staff-b")
	if err != nil {
		t.Fatalf("ListMine() error = %v", err)
	}
	if len(mine) != 1 {
		t.Fatalf("staff-b notifications = %d, want 1", len(mine))
	}

	if _, err := notifier.Delete(ctx, "staff-b", mine[0].ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := svc.GetForReview(ctx, "staff-b", application.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("GetForReview(staff-b) after delete error = %v, want ErrForbidden", err)
	}
	if _, err := svc.GetForReview(ctx, "staff-a", application.ID); err != nil {
		t.Fatalf("GetForReview(staff-a) error = %v, want grant untouched by staff-b's delete", err)
	}

	if _, err := notifier.Restore(ctx, "staff-b", mine[0].ID); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	if _, err := svc.GetForReview(ctx, "staff-b", application.ID); err != nil {
		t.Fatalf("GetForReview(staff-b) after restore error = %v, want grant back", err)
	}
}
