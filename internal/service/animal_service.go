package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
)

// AnimalService is the catalog surface. Reads are public; writes require the
// staff or admin capability. Adoption state is never writable here — only an
// accepted decision mutates it.
type AnimalService struct {
	animals repository.AnimalRepository
	users   repository.UserRepository
	logger  *zap.Logger
	now     func() time.Time
}

func NewAnimalService(
	animals repository.AnimalRepository,
	users repository.UserRepository,
	logger *zap.Logger,
) (*AnimalService, error) {
	if animals == nil || users == nil {
		return nil, fmt.Errorf("animal and user repositories are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AnimalService{
		animals: animals,
		users:   users,
		logger:  logger,
		now:     time.Now,
	}, nil
}

func (s *AnimalService) List(ctx context.Context, params repository.AnimalListParams) ([]domain.Animal, int64, error) {
	return s.animals.List(ctx, params)
}

func (s *AnimalService) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: animal id is required", domain.ErrValidation)
	}
	return s.animals.GetByID(ctx, id)
}

func (s *AnimalService) Create(ctx context.Context, callerID string, animal *domain.Animal) (*domain.Animal, error) {
	caller, err := RequireRole(ctx, s.users, callerID, domain.RoleStaff, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	if err := animal.Validate(); err != nil {
		return nil, err
	}

	animal.ID = uuid.NewString()
	animal.Adopted = false
	animal.AdoptedBy = nil
	animal.AdoptedAt = nil
	animal.SubmittedBy = &caller.ID

	if err := s.animals.Create(ctx, animal); err != nil {
		return nil, err
	}

	s.logger.Info("animal listed",
		zap.String("animalId", animal.ID),
		zap.String("submittedBy", caller.ID),
	)

	return animal, nil
}

func (s *AnimalService) Update(ctx context.Context, callerID string, animal *domain.Animal) (*domain.Animal, error) {
	if _, err := RequireRole(ctx, s.users, callerID, domain.RoleStaff, domain.RoleAdmin); err != nil {
		return nil, err
	}

	animal.ID = strings.TrimSpace(animal.ID)
	if animal.ID == "" {
		return nil, fmt.Errorf("%w: animal id is required", domain.ErrValidation)
	}
	if err := animal.Validate(); err != nil {
		return nil, err
	}

	if err := s.animals.Update(ctx, animal); err != nil {
		return nil, err
	}

	return s.animals.GetByID(ctx, animal.ID)
}

func (s *AnimalService) Delete(ctx context.Context, callerID string, id string) error {
	if _, err := RequireRole(ctx, s.users, callerID, domain.RoleStaff, domain.RoleAdmin); err != nil {
		return err
	}

	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: animal id is required", domain.ErrValidation)
	}

	return s.animals.Delete(ctx, id)
}
