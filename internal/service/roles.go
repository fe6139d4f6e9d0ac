package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
)

// RequireRole is the coarse role capability check used by the catalog and
// admin surfaces. It is deliberately separate from the review gate, which
// grants access by notification possession instead of role.
func RequireRole(ctx context.Context, users repository.UserRepository, callerID string, roles ...domain.Role) (*domain.User, error) {
	callerID = strings.TrimSpace(callerID)
	if callerID == "" {
		return nil, fmt.Errorf("%w: caller is required", domain.ErrValidation)
	}

	user, err := users.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown caller", domain.ErrForbidden)
		}
		return nil, err
	}

	if !user.HasAnyRole(roles...) {
		return nil, fmt.Errorf("%w: %s access required", domain.ErrForbidden, roleList(roles))
	}

	return user, nil
}

func roleList(roles []domain.Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	return strings.Join(names, " or ")
}
