package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pawhaven/adoption-core/internal/repository"
)

// ReviewGate decides whether a user may open or decide an application.
// Possession of a live (undeleted) notification whose payload references the
// application id is the sole grant: there is no role check and no ACL table.
// Soft-deleting the notification revokes access; restoring it re-grants it.
type ReviewGate struct {
	notifications repository.NotificationRepository
}

func NewReviewGate(notifications repository.NotificationRepository) (*ReviewGate, error) {
	if notifications == nil {
		return nil, fmt.Errorf("notification repository is required")
	}
	return &ReviewGate{notifications: notifications}, nil
}

func (g *ReviewGate) CanReview(ctx context.Context, userID string, applicationID string) (bool, error) {
	userID = strings.TrimSpace(userID)
	applicationID = strings.TrimSpace(applicationID)
	if userID == "" || applicationID == "" {
		return false, nil
	}

	return g.notifications.HasReviewGrant(ctx, userID, applicationID)
}
