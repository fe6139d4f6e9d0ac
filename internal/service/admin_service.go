package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
)

// AdminService is the coarse administrative surface: read-only lists and
// counts over applications and notifications, and hard deletes that bypass
// the review gate entirely.
type AdminService struct {
	users         repository.UserRepository
	animals       repository.AnimalRepository
	applications  repository.ApplicationRepository
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

type DashboardStats struct {
	TotalUsers           int64
	TotalAnimals         int64
	AdoptedAnimals       int64
	AvailableAnimals     int64
	TotalApplications    int64
	PendingApplications  int64
	AcceptedApplications int64
	RejectedApplications int64
	LiveNotifications    int64
}

func NewAdminService(
	users repository.UserRepository,
	animals repository.AnimalRepository,
	applications repository.ApplicationRepository,
	notifications repository.NotificationRepository,
	logger *zap.Logger,
) (*AdminService, error) {
	if users == nil || animals == nil || applications == nil || notifications == nil {
		return nil, fmt.Errorf("all repositories are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AdminService{
		users:         users,
		animals:       animals,
		applications:  applications,
		notifications: notifications,
		logger:        logger,
	}, nil
}

// AuthorizeAdmin is the coarse role gate for the whole admin surface; it is
// independent of the notification-possession review gate.
func (s *AdminService) AuthorizeAdmin(ctx context.Context, callerID string) error {
	_, err := RequireRole(ctx, s.users, callerID, domain.RoleAdmin)
	return err
}

func (s *AdminService) DashboardStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, err
	}
	if stats.AdoptedAnimals, err = s.animals.CountByAdopted(ctx, true); err != nil {
		return nil, err
	}
	if stats.AvailableAnimals, err = s.animals.CountByAdopted(ctx, false); err != nil {
		return nil, err
	}
	stats.TotalAnimals = stats.AdoptedAnimals + stats.AvailableAnimals

	if stats.TotalApplications, err = s.applications.CountByStatus(ctx, nil); err != nil {
		return nil, err
	}
	for status, target := range map[domain.ApplicationStatus]*int64{
		domain.ApplicationSubmitted: &stats.PendingApplications,
		domain.ApplicationAccepted:  &stats.AcceptedApplications,
		domain.ApplicationRejected:  &stats.RejectedApplications,
	} {
		status := status
		count, err := s.applications.CountByStatus(ctx, &status)
		if err != nil {
			return nil, err
		}
		*target = count
	}

	if stats.LiveNotifications, err = s.notifications.CountLive(ctx); err != nil {
		return nil, err
	}

	return stats, nil
}

func (s *AdminService) ListApplications(ctx context.Context, params repository.ApplicationListParams) ([]domain.AdoptionApplication, int64, error) {
	return s.applications.List(ctx, params)
}

// DeleteApplication is the administrative hard delete; unlike the decision
// path it needs no notification grant.
func (s *AdminService) DeleteApplication(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: application id is required", domain.ErrValidation)
	}

	if err := s.applications.HardDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("application hard-deleted", zap.String("applicationId", id))
	return nil
}

func (s *AdminService) ListNotifications(ctx context.Context, params repository.NotificationListParams) ([]domain.Notification, int64, error) {
	return s.notifications.List(ctx, params)
}

// DeleteNotification physically removes the record; this is the only purge
// path, soft-deleted notifications are otherwise restorable forever.
func (s *AdminService) DeleteNotification(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: notification id is required", domain.ErrValidation)
	}

	if err := s.notifications.HardDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("notification hard-deleted", zap.String("notificationId", id))
	return nil
}
