package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/observability"
	"github.com/pawhaven/adoption-core/internal/repository"
)

// SubmissionForm is the flat applicant form snapshotted onto the application.
type SubmissionForm struct {
	FullName              string
	Email                 string
	Phone                 string
	PreferredContact      string
	MonthlyIncome         string
	HomeEnvironment       string
	HouseholdMembers      string
	WorkSchedule          string
	HasOtherAnimals       string
	OtherAnimalsDetails   string
	HealthCondition       string
	HealthDetails         string
	ExperienceWithAnimals string
	ReasonForAdoption     string
	AdditionalNotes       string
}

type DecisionInput struct {
	Decision           string
	RejectionReason    string
	MessageToApplicant string
}

// ReviewBundle is what a reviewer sees: the application, the referenced
// animal, and a restricted view of the applicant when one is registered.
type ReviewBundle struct {
	Application *domain.AdoptionApplication
	Animal      *domain.Animal
	Applicant   *domain.PublicProfile
}

type AdoptionService struct {
	applications repository.ApplicationRepository
	animals      repository.AnimalRepository
	users        repository.UserRepository
	notifier     *NotificationService
	gate         *ReviewGate
	logger       *zap.Logger
	metrics      *observability.Metrics
	now          func() time.Time
}

func NewAdoptionService(
	applications repository.ApplicationRepository,
	animals repository.AnimalRepository,
	users repository.UserRepository,
	notifier *NotificationService,
	gate *ReviewGate,
	logger *zap.Logger,
	metrics *observability.Metrics,
) (*AdoptionService, error) {
	if applications == nil || animals == nil || users == nil {
		return nil, fmt.Errorf("application, animal, and user repositories are required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notification service is required")
	}
	if gate == nil {
		return nil, fmt.Errorf("review gate is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &AdoptionService{
		applications: applications,
		animals:      animals,
		users:        users,
		notifier:     notifier,
		gate:         gate,
		logger:       logger,
		metrics:      metrics,
		now:          time.Now,
	}, nil
}

// Submit creates an application for an animal and fans out one review
// notification per resolved recipient. applicantUserID is nil for guests.
func (s *AdoptionService) Submit(ctx context.Context, animalID string, applicantUserID *string, form SubmissionForm) (*domain.AdoptionApplication, error) {
	animalID = strings.TrimSpace(animalID)

	application := applicationFromForm(animalID, applicantUserID, form)
	if err := application.Validate(); err != nil {
		return nil, err
	}

	animal, err := s.animals.GetByID(ctx, animalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: animal not found", domain.ErrNotFound)
		}
		return nil, err
	}

	application.ID = uuid.NewString()
	if err := s.applications.Create(ctx, application); err != nil {
		return nil, err
	}
	s.metrics.IncApplicationSubmitted()

	recipients, err := s.resolveRecipients(ctx, animal)
	if err != nil {
		return nil, fmt.Errorf("application %s created but recipient resolution failed: %w", application.ID, err)
	}

	// No owner and no staff: the application is saved but nobody holds a
	// review grant for it. Documented behavior, recoverable via admin.
	if len(recipients) == 0 {
		s.logger.Warn("adoption application has no reviewers",
			zap.String("applicationId", application.ID),
			zap.String("animalId", animal.ID),
		)
		return application, nil
	}

	notifications := make([]*domain.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		notifications = append(notifications, reviewNotification(recipient, application, animal))
	}

	if err := s.notifier.FanOut(ctx, notifications); err != nil {
		return nil, fmt.Errorf("application %s created but notification fan-out failed: %w", application.ID, err)
	}

	s.logger.Info("adoption application submitted",
		zap.String("applicationId", application.ID),
		zap.String("animalId", animal.ID),
		zap.Int("recipients", len(recipients)),
	)

	return application, nil
}

// GetForReview returns the full review bundle, gated on a live notification
// grant.
func (s *AdoptionService) GetForReview(ctx context.Context, callerID string, applicationID string) (*ReviewBundle, error) {
	callerID = strings.TrimSpace(callerID)
	applicationID = strings.TrimSpace(applicationID)
	if applicationID == "" {
		return nil, fmt.Errorf("%w: application id is required", domain.ErrValidation)
	}

	allowed, err := s.gate.CanReview(ctx, callerID, applicationID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: not allowed to review this application", domain.ErrForbidden)
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	bundle := &ReviewBundle{Application: application}

	animal, err := s.animals.GetByID(ctx, application.AnimalID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	bundle.Animal = animal

	if application.ApplicantUser != nil {
		applicant, err := s.users.GetByID(ctx, *application.ApplicantUser)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		bundle.Applicant = applicant.PublicProfile()
	}

	return bundle, nil
}

// Decide records the terminal outcome. On accept the animal becomes adopted
// (adopted_by may stay nil for guest applicants) and a registered applicant
// gets a decision notice with a self-referential link. Re-deciding an
// already-decided application fails with ErrConflict.
func (s *AdoptionService) Decide(ctx context.Context, callerID string, applicationID string, input DecisionInput) (*domain.AdoptionApplication, error) {
	callerID = strings.TrimSpace(callerID)
	applicationID = strings.TrimSpace(applicationID)

	decision, err := domain.ParseDecisionFromString(input.Decision)
	if err != nil {
		return nil, err
	}

	allowed, err := s.gate.CanReview(ctx, callerID, applicationID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("%w: not allowed to decide this application", domain.ErrForbidden)
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	decidedAt := s.now().UTC()
	if err := application.ApplyDecision(decision, callerID, decidedAt, input.RejectionReason, input.MessageToApplicant); err != nil {
		return nil, err
	}
	if err := s.applications.Decide(ctx, applicationID, repository.DecisionUpdate{
		Decision:           decision,
		ReviewedBy:         callerID,
		ReviewedAt:         decidedAt,
		RejectionReason:    input.RejectionReason,
		MessageToApplicant: input.MessageToApplicant,
	}); err != nil {
		return nil, err
	}
	s.metrics.IncDecision(decision.String())

	animal, animalErr := s.animals.GetByID(ctx, application.AnimalID)
	if animalErr != nil && !errors.Is(animalErr, domain.ErrNotFound) {
		return nil, animalErr
	}

	if decision == domain.DecisionAccepted && animal != nil {
		if err := s.animals.MarkAdopted(ctx, animal.ID, application.ApplicantUser, decidedAt); err != nil {
			return nil, fmt.Errorf("decision saved but animal update failed: %w", err)
		}
		animal.MarkAdopted(application.ApplicantUser, decidedAt)
	}

	if application.ApplicantUser != nil {
		notice := decisionNotification(*application.ApplicantUser, application, animal, decision, input)
		if _, err := s.notifier.NotifySelfLinked(ctx, notice, notificationLink); err != nil {
			return nil, fmt.Errorf("decision saved but applicant notice failed: %w", err)
		}
	}

	s.logger.Info("adoption application decided",
		zap.String("applicationId", application.ID),
		zap.String("decision", decision.String()),
		zap.String("reviewedBy", callerID),
	)

	return application, nil
}

func (s *AdoptionService) resolveRecipients(ctx context.Context, animal *domain.Animal) ([]string, error) {
	if animal.SubmittedBy != nil && strings.TrimSpace(*animal.SubmittedBy) != "" {
		return []string{*animal.SubmittedBy}, nil
	}

	staff, err := s.users.FindByRoles(ctx, domain.ReviewerRoles)
	if err != nil {
		return nil, err
	}

	recipients := make([]string, 0, len(staff))
	for _, user := range staff {
		recipients = append(recipients, user.ID)
	}
	return recipients, nil
}

func applicationFromForm(animalID string, applicantUserID *string, form SubmissionForm) *domain.AdoptionApplication {
	return &domain.AdoptionApplication{
		AnimalID:              animalID,
		ApplicantUser:         normalizeOptionalID(applicantUserID),
		FullName:              strings.TrimSpace(form.FullName),
		Email:                 strings.TrimSpace(form.Email),
		Phone:                 strings.TrimSpace(form.Phone),
		PreferredContact:      defaultString(form.PreferredContact, domain.DefaultPreferredContact),
		MonthlyIncome:         form.MonthlyIncome,
		HomeEnvironment:       strings.TrimSpace(form.HomeEnvironment),
		HouseholdMembers:      form.HouseholdMembers,
		WorkSchedule:          form.WorkSchedule,
		HasOtherAnimals:       defaultString(form.HasOtherAnimals, domain.DefaultHasOtherAnimals),
		OtherAnimalsDetails:   form.OtherAnimalsDetails,
		HealthCondition:       defaultString(form.HealthCondition, domain.DefaultHealthCondition),
		HealthDetails:         form.HealthDetails,
		ExperienceWithAnimals: form.ExperienceWithAnimals,
		ReasonForAdoption:     form.ReasonForAdoption,
		AdditionalNotes:       form.AdditionalNotes,
		Status:                domain.ApplicationSubmitted,
		Decision:              domain.DecisionPending,
	}
}

func reviewNotification(recipient string, application *domain.AdoptionApplication, animal *domain.Animal) *domain.Notification {
	animalName := animal.DisplayName()

	return &domain.Notification{
		Recipient: recipient,
		Type:      domain.NotificationAdoptionApplication,
		Title:     fmt.Sprintf("New adoption application: %s", animalName),
		Message:   fmt.Sprintf("%s submitted an adoption application.", application.FullName),
		Link:      reviewLink(application.ID),
		Data: map[string]any{
			domain.DataKeyApplicationID:  application.ID,
			domain.DataKeyAnimalID:       animal.ID,
			domain.DataKeyAnimalName:     animalName,
			domain.DataKeyApplicantName:  application.FullName,
			domain.DataKeyApplicantEmail: application.Email,
			domain.DataKeyApplicantPhone: application.Phone,
		},
	}
}

func decisionNotification(recipient string, application *domain.AdoptionApplication, animal *domain.Animal, decision domain.Decision, input DecisionInput) *domain.Notification {
	animalName := animal.DisplayName()

	title := fmt.Sprintf("Adoption application rejected: %s", animalName)
	message := input.MessageToApplicant
	if decision == domain.DecisionAccepted {
		title = fmt.Sprintf("Adoption application accepted: %s", animalName)
		if message == "" {
			message = "Your adoption application was accepted."
		}
	} else if message == "" {
		message = "Your adoption application was rejected."
	}

	var animalID string
	if animal != nil {
		animalID = animal.ID
	}

	return &domain.Notification{
		Recipient: recipient,
		Type:      domain.NotificationAdoptionDecision,
		Title:     title,
		Message:   message,
		Data: map[string]any{
			domain.DataKeyApplicationID:      application.ID,
			domain.DataKeyAnimalID:           animalID,
			domain.DataKeyAnimalName:         animalName,
			domain.DataKeyDecision:           decision.String(),
			domain.DataKeyRejectionReason:    application.RejectionReason,
			domain.DataKeyMessageToApplicant: input.MessageToApplicant,
		},
	}
}

func reviewLink(applicationID string) string {
	return "/review/" + applicationID
}

func notificationLink(notificationID string) string {
	return "/notification/" + notificationID
}

func normalizeOptionalID(v *string) *string {
	if v == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*v)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func defaultString(v string, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
