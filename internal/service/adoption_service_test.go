package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
)

func validForm() SubmissionForm {
	return SubmissionForm{
		FullName:        "Jamie Doe",
		Email:           "jamie@example.com",
		Phone:           "+15551234567",
		HomeEnvironment: "house with yard",
	}
}

func newAdoptionService(
	t *testing.T,
	applications *fakeApplicationRepo,
	animals *fakeAnimalRepo,
	users *fakeUserRepo,
	notifications *fakeNotificationRepo,
) *AdoptionService {
	t.Helper()

	notifier, err := NewNotificationService(notifications, nil, nil)
	if err != nil {
		t.Fatalf("NewNotificationService() error = %v", err)
	}
	gate, err := NewReviewGate(notifications)
	if err != nil {
		t.Fatalf("NewReviewGate() error = %v", err)
	}
	svc, err := NewAdoptionService(applications, animals, users, notifier, gate, nil, nil)
	if err != nil {
		t.Fatalf("NewAdoptionService() error = %v", err)
	}
	return svc
}

func TestSubmitNotifiesOwnerWhenAnimalHasOne(t *testing.T) {
	t.Parallel()

	owner := "owner-1"
	animal := &domain.Animal{ID: "animal-1", Name: "Biscuit", Category: "dog", SubmittedBy: &owner}

	var created *domain.AdoptionApplication
	applications := &fakeApplicationRepo{
		createFn: func(ctx context.Context, a *domain.AdoptionApplication) error {
			created = a
			return nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			if id != animal.ID {
				t.Fatalf("animal lookup id = %s, want %s", id, animal.ID)
			}
			return animal, nil
		},
	}
	users := &fakeUserRepo{
		findByRolesFn: func(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
			t.Fatal("staff lookup should be skipped when the animal has an owner")
			return nil, nil
		},
	}

	var batch []*domain.Notification
	notifications := &fakeNotificationRepo{
		createBatchFn: func(ctx context.Context, ns []*domain.Notification) error {
			batch = ns
			return nil
		},
	}

	svc := newAdoptionService(t, applications, animals, users, notifications)

	result, err := svc.Submit(context.Background(), "animal-1", nil, validForm())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if created == nil || created.ID == "" {
		t.Fatal("application should be persisted with a generated id")
	}
	if result.Status != domain.ApplicationSubmitted {
		t.Fatalf("status = %s, want submitted", result.Status)
	}
	if result.PreferredContact != domain.DefaultPreferredContact {
		t.Fatalf("preferred contact = %q, want default %q", result.PreferredContact, domain.DefaultPreferredContact)
	}

	if len(batch) != 1 {
		t.Fatalf("fan-out size = %d, want 1", len(batch))
	}
	notice := batch[0]
	if notice.Recipient != owner {
		t.Fatalf("recipient = %s, want %s", notice.Recipient, owner)
	}
	if notice.Type != domain.NotificationAdoptionApplication {
		t.Fatalf("type = %s, want adoption_application", notice.Type)
	}
	if notice.ApplicationID() != result.ID {
		t.Fatalf("grant key = %q, want %q", notice.ApplicationID(), result.ID)
	}
	if notice.Link != "/review/"+result.ID {
		t.Fatalf("link = %q, want /review/%s", notice.Link, result.ID)
	}
}

func TestSubmitFansOutToStaffWhenNoOwner(t *testing.T) {
	t.Parallel()

	animal := &domain.Animal{ID: "animal-1", Name: "Clover", Category: "rabbit"}

	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return animal, nil
		},
	}
	users := &fakeUserRepo{
		findByRolesFn: func(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
			if len(roles) != len(domain.ReviewerRoles) {
				t.Fatalf("roles = %v, want %v", roles, domain.ReviewerRoles)
			}
			return []domain.User{
				{ID: "staff-1", Role: domain.RoleStaff},
				{ID: "admin-1", Role: domain.RoleAdmin},
			}, nil
		},
	}

	var batch []*domain.Notification
	notifications := &fakeNotificationRepo{
		createBatchFn: func(ctx context.Context, ns []*domain.Notification) error {
			batch = ns
			return nil
		},
	}

	svc := newAdoptionService(t, &fakeApplicationRepo{}, animals, users, notifications)

	applicant := "user-9"
	result, err := svc.Submit(context.Background(), "animal-1", &applicant, validForm())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result.ApplicantUser == nil || *result.ApplicantUser != applicant {
		t.Fatalf("applicant user = %v, want %s", result.ApplicantUser, applicant)
	}

	if len(batch) != 2 {
		t.Fatalf("fan-out size = %d, want 2", len(batch))
	}
	recipients := map[string]bool{}
	for _, notice := range batch {
		recipients[notice.Recipient] = true
		if notice.ApplicationID() != result.ID {
			t.Fatalf("grant key = %q, want %q", notice.ApplicationID(), result.ID)
		}
	}
	if !recipients["staff-1"] || !recipients["admin-1"] {
		t.Fatalf("recipients = %v, want staff-1 and admin-1", recipients)
	}
}

func TestSubmitValidationFailsBeforePersist(t *testing.T) {
	t.Parallel()

	applications := &fakeApplicationRepo{
		createFn: func(ctx context.Context, a *domain.AdoptionApplication) error {
			t.Fatal("create should not be called for an invalid form")
			return nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			t.Fatal("animal lookup should not run for an invalid form")
			return nil, nil
		},
	}

	svc := newAdoptionService(t, applications, animals, &fakeUserRepo{}, &fakeNotificationRepo{})

	form := validForm()
	form.FullName = " "
	_, err := svc.Submit(context.Background(), "animal-1", nil, form)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Submit() error = %v, want ErrValidation", err)
	}
}

func TestSubmitUnknownAnimal(t *testing.T) {
	t.Parallel()

	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return nil, domain.ErrNotFound
		},
	}

	svc := newAdoptionService(t, &fakeApplicationRepo{}, animals, &fakeUserRepo{}, &fakeNotificationRepo{})

	_, err := svc.Submit(context.Background(), "missing", nil, validForm())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Submit() error = %v, want ErrNotFound", err)
	}
}

func TestSubmitSucceedsWithNoReviewers(t *testing.T) {
	t.Parallel()

	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return &domain.Animal{ID: id, Name: "Clover", Category: "rabbit"}, nil
		},
	}
	users := &fakeUserRepo{
		findByRolesFn: func(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
			return nil, nil
		},
	}
	notifications := &fakeNotificationRepo{
		createBatchFn: func(ctx context.Context, ns []*domain.Notification) error {
			t.Fatal("no notifications should be written without recipients")
			return nil
		},
	}

	svc := newAdoptionService(t, &fakeApplicationRepo{}, animals, users, notifications)

	result, err := svc.Submit(context.Background(), "animal-1", nil, validForm())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if result == nil || result.ID == "" {
		t.Fatal("application should still be created without reviewers")
	}
}

func TestGetForReviewRequiresGrant(t *testing.T) {
	t.Parallel()

	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return false, nil
		},
	}
	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			t.Fatal("application must not be loaded without a grant")
			return nil, nil
		},
	}

	svc := newAdoptionService(t, applications, &fakeAnimalRepo{}, &fakeUserRepo{}, notifications)

	_, err := svc.GetForReview(context.Background(), "reviewer-1", "app-1")
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("GetForReview() error = %v, want ErrForbidden", err)
	}
}

func TestGetForReviewBundlesApplicantProfile(t *testing.T) {
	t.Parallel()

	applicant := "user-9"
	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			a := &domain.AdoptionApplication{
				ID:            id,
				AnimalID:      "animal-1",
				ApplicantUser: &applicant,
				FullName:      "Jamie Doe",
				Status:        domain.ApplicationSubmitted,
			}
			return a, nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return &domain.Animal{ID: id, Name: "Biscuit", Category: "dog"}, nil
		},
	}
	users := &fakeUserRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, UserName: "jamie", Email: "jamie@example.com"}, nil
		},
	}
	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			if recipient != "reviewer-1" || applicationID != "app-1" {
				t.Fatalf("grant check = (%s, %s), want (reviewer-1, app-1)", recipient, applicationID)
			}
			return true, nil
		},
	}

	svc := newAdoptionService(t, applications, animals, users, notifications)

	bundle, err := svc.GetForReview(context.Background(), "reviewer-1", "app-1")
	if err != nil {
		t.Fatalf("GetForReview() error = %v", err)
	}
	if bundle.Application == nil || bundle.Application.ID != "app-1" {
		t.Fatal("bundle should contain the application")
	}
	if bundle.Animal == nil || bundle.Animal.Name != "Biscuit" {
		t.Fatal("bundle should contain the animal")
	}
	if bundle.Applicant == nil || bundle.Applicant.UserName != "jamie" {
		t.Fatal("bundle should contain the applicant profile")
	}
}

func TestGetForReviewToleratesMissingAnimal(t *testing.T) {
	t.Parallel()

	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			return &domain.AdoptionApplication{ID: id, AnimalID: "gone", Status: domain.ApplicationSubmitted}, nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return nil, domain.ErrNotFound
		},
	}
	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return true, nil
		},
	}

	svc := newAdoptionService(t, applications, animals, &fakeUserRepo{}, notifications)

	bundle, err := svc.GetForReview(context.Background(), "reviewer-1", "app-1")
	if err != nil {
		t.Fatalf("GetForReview() error = %v", err)
	}
	if bundle.Animal != nil {
		t.Fatal("missing animal should surface as nil, not an error")
	}
	if bundle.Applicant != nil {
		t.Fatal("guest application has no applicant profile")
	}
}

func TestDecideAcceptMarksAnimalAndNotifiesApplicant(t *testing.T) {
	t.Parallel()

	applicant := "user-9"
	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			return &domain.AdoptionApplication{
				ID:            id,
				AnimalID:      "animal-1",
				ApplicantUser: &applicant,
				FullName:      "Jamie Doe",
				Status:        domain.ApplicationSubmitted,
				Decision:      domain.DecisionPending,
			}, nil
		},
		decideFn: func(ctx context.Context, id string, update repository.DecisionUpdate) error {
			if update.Decision != domain.DecisionAccepted {
				t.Fatalf("decision = %s, want accepted", update.Decision)
			}
			if update.ReviewedBy != "reviewer-1" {
				t.Fatalf("reviewed by = %s, want reviewer-1", update.ReviewedBy)
			}
			return nil
		},
	}

	markAdoptedCalled := false
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return &domain.Animal{ID: id, Name: "Biscuit", Category: "dog"}, nil
		},
		markAdoptedFn: func(ctx context.Context, id string, adoptedBy *string, at time.Time) error {
			if adoptedBy == nil || *adoptedBy != applicant {
				t.Fatalf("adoptedBy = %v, want %s", adoptedBy, applicant)
			}
			markAdoptedCalled = true
			return nil
		},
	}

	var notice *domain.Notification
	linkUpdated := ""
	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, n *domain.Notification) error {
			notice = n
			return nil
		},
		updateLinkFn: func(ctx context.Context, id string, link string) error {
			linkUpdated = link
			return nil
		},
	}

	svc := newAdoptionService(t, applications, animals, &fakeUserRepo{}, notifications)

	result, err := svc.Decide(context.Background(), "reviewer-1", "app-1", DecisionInput{Decision: "accepted"})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}

	if result.Status != domain.ApplicationAccepted {
		t.Fatalf("status = %s, want accepted", result.Status)
	}
	if !markAdoptedCalled {
		t.Fatal("accept must mark the animal adopted")
	}
	if notice == nil {
		t.Fatal("registered applicant must receive a decision notice")
	}
	if notice.Recipient != applicant {
		t.Fatalf("notice recipient = %s, want %s", notice.Recipient, applicant)
	}
	if notice.Type != domain.NotificationAdoptionDecision {
		t.Fatalf("notice type = %s, want adoption_decision", notice.Type)
	}
	if linkUpdated != "/notification/"+notice.ID {
		t.Fatalf("self link = %q, want /notification/%s", linkUpdated, notice.ID)
	}
}

func TestDecideAcceptGuestSkipsNotice(t *testing.T) {
	t.Parallel()

	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			return &domain.AdoptionApplication{
				ID:       id,
				AnimalID: "animal-1",
				FullName: "Walk-in Guest",
				Status:   domain.ApplicationSubmitted,
				Decision: domain.DecisionPending,
			}, nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return &domain.Animal{ID: id, Name: "Biscuit", Category: "dog"}, nil
		},
		markAdoptedFn: func(ctx context.Context, id string, adoptedBy *string, at time.Time) error {
			if adoptedBy != nil {
				t.Fatalf("adoptedBy = %v, want nil for guest applicant", adoptedBy)
			}
			return nil
		},
	}
	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, n *domain.Notification) error {
			t.Fatal("guest applicants must not receive a decision notice")
			return nil
		},
	}

	svc := newAdoptionService(t, applications, animals, &fakeUserRepo{}, notifications)

	if _, err := svc.Decide(context.Background(), "reviewer-1", "app-1", DecisionInput{Decision: "accepted"}); err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
}

func TestDecideRejectLeavesAnimalUntouched(t *testing.T) {
	t.Parallel()

	applicant := "user-9"
	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			return &domain.AdoptionApplication{
				ID:            id,
				AnimalID:      "animal-1",
				ApplicantUser: &applicant,
				Status:        domain.ApplicationSubmitted,
				Decision:      domain.DecisionPending,
			}, nil
		},
	}
	animals := &fakeAnimalRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.Animal, error) {
			return &domain.Animal{ID: id, Name: "Biscuit", Category: "dog"}, nil
		},
		markAdoptedFn: func(ctx context.Context, id string, adoptedBy *string, at time.Time) error {
			t.Fatal("reject must not mark the animal adopted")
			return nil
		},
	}

	var notice *domain.Notification
	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return true, nil
		},
		createFn: func(ctx context.Context, n *domain.Notification) error {
			notice = n
			return nil
		},
	}

	svc := newAdoptionService(t, applications, animals, &fakeUserRepo{}, notifications)

	result, err := svc.Decide(context.Background(), "reviewer-1", "app-1", DecisionInput{
		Decision:        "rejected",
		RejectionReason: "home too small",
	})
	if err != nil {
		t.Fatalf("Decide() error = %v", err)
	}
	if result.RejectionReason != "home too small" {
		t.Fatalf("rejection reason = %q, want home too small", result.RejectionReason)
	}
	if notice == nil {
		t.Fatal("registered applicant must receive a decision notice")
	}
	if !strings.Contains(notice.Title, "rejected") {
		t.Fatalf("notice title = %q, want a rejection title", notice.Title)
	}
	if notice.Message != "Your adoption application was rejected." {
		t.Fatalf("notice message = %q, want the default rejection message", notice.Message)
	}
}

func TestDecideInvalidDecision(t *testing.T) {
	t.Parallel()

	svc := newAdoptionService(t, &fakeApplicationRepo{}, &fakeAnimalRepo{}, &fakeUserRepo{}, &fakeNotificationRepo{})

	_, err := svc.Decide(context.Background(), "reviewer-1", "app-1", DecisionInput{Decision: "pending"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("Decide() error = %v, want ErrValidation", err)
	}
}

func TestDecideWithoutGrantForbidden(t *testing.T) {
	t.Parallel()

	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return false, nil
		},
	}

	svc := newAdoptionService(t, &fakeApplicationRepo{}, &fakeAnimalRepo{}, &fakeUserRepo{}, notifications)

	_, err := svc.Decide(context.Background(), "reviewer-1", "app-1", DecisionInput{Decision: "accepted"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("Decide() error = %v, want ErrForbidden", err)
	}
}

func TestDecideAlreadyDecidedConflicts(t *testing.T) {
	t.Parallel()

	reviewer := "reviewer-0"
	applications := &fakeApplicationRepo{
		getByIDFn: func(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
			return &domain.AdoptionApplication{
				ID:         id,
				AnimalID:   "animal-1",
				Status:     domain.ApplicationRejected,
				Decision:   domain.DecisionRejected,
				ReviewedBy: &reviewer,
			}, nil
		},
		decideFn: func(ctx context.Context, id string, update repository.DecisionUpdate) error {
			t.Fatal("decided application must not be written again")
			return nil
		},
	}
	notifications := &fakeNotificationRepo{
		hasReviewGrantFn: func(ctx context.Context, recipient string, applicationID string) (bool, error) {
			return true, nil
		},
	}

	svc := newAdoptionService(t, applications, &fakeAnimalRepo{}, &fakeUserRepo{}, notifications)

	_, err := svc.Decide(context.Background(), "reviewer-1", "app-1", DecisionInput{Decision: "accepted"})
	if !errors.Is(err, domain.ErrConflict) {
		t.Fatalf("Decide() error = %v, want ErrConflict", err)
	}
}

type fakeApplicationRepo struct {
	createFn        func(ctx context.Context, a *domain.AdoptionApplication) error
	getByIDFn       func(ctx context.Context, id string) (*domain.AdoptionApplication, error)
	listFn          func(ctx context.Context, params repository.ApplicationListParams) ([]domain.AdoptionApplication, int64, error)
	decideFn        func(ctx context.Context, id string, update repository.DecisionUpdate) error
	hardDeleteFn    func(ctx context.Context, id string) error
	countByStatusFn func(ctx context.Context, status *domain.ApplicationStatus) (int64, error)
}

func (f *fakeApplicationRepo) Create(ctx context.Context, a *domain.AdoptionApplication) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeApplicationRepo) GetByID(ctx context.Context, id string) (*domain.AdoptionApplication, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeApplicationRepo) List(ctx context.Context, params repository.ApplicationListParams) ([]domain.AdoptionApplication, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeApplicationRepo) Decide(ctx context.Context, id string, update repository.DecisionUpdate) error {
	if f.decideFn != nil {
		return f.decideFn(ctx, id, update)
	}
	return nil
}

func (f *fakeApplicationRepo) HardDelete(ctx context.Context, id string) error {
	if f.hardDeleteFn != nil {
		return f.hardDeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeApplicationRepo) CountByStatus(ctx context.Context, status *domain.ApplicationStatus) (int64, error) {
	if f.countByStatusFn != nil {
		return f.countByStatusFn(ctx, status)
	}
	return 0, nil
}

type fakeAnimalRepo struct {
	createFn         func(ctx context.Context, a *domain.Animal) error
	getByIDFn        func(ctx context.Context, id string) (*domain.Animal, error)
	listFn           func(ctx context.Context, params repository.AnimalListParams) ([]domain.Animal, int64, error)
	updateFn         func(ctx context.Context, a *domain.Animal) error
	deleteFn         func(ctx context.Context, id string) error
	markAdoptedFn    func(ctx context.Context, id string, adoptedBy *string, at time.Time) error
	countByAdoptedFn func(ctx context.Context, adopted bool) (int64, error)
}

func (f *fakeAnimalRepo) Create(ctx context.Context, a *domain.Animal) error {
	if f.createFn != nil {
		return f.createFn(ctx, a)
	}
	return nil
}

func (f *fakeAnimalRepo) GetByID(ctx context.Context, id string) (*domain.Animal, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAnimalRepo) List(ctx context.Context, params repository.AnimalListParams) ([]domain.Animal, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeAnimalRepo) Update(ctx context.Context, a *domain.Animal) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, a)
	}
	return nil
}

func (f *fakeAnimalRepo) Delete(ctx context.Context, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeAnimalRepo) MarkAdopted(ctx context.Context, id string, adoptedBy *string, at time.Time) error {
	if f.markAdoptedFn != nil {
		return f.markAdoptedFn(ctx, id, adoptedBy, at)
	}
	return nil
}

func (f *fakeAnimalRepo) CountByAdopted(ctx context.Context, adopted bool) (int64, error) {
	if f.countByAdoptedFn != nil {
		return f.countByAdoptedFn(ctx, adopted)
	}
	return 0, nil
}

type fakeUserRepo struct {
	getByIDFn     func(ctx context.Context, id string) (*domain.User, error)
	findByRolesFn func(ctx context.Context, roles []domain.Role) ([]domain.User, error)
	countFn       func(ctx context.Context) (int64, error)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) FindByRoles(ctx context.Context, roles []domain.Role) ([]domain.User, error) {
	if f.findByRolesFn != nil {
		return f.findByRolesFn(ctx, roles)
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	if f.countFn != nil {
		return f.countFn(ctx)
	}
	return 0, nil
}

type fakeNotificationRepo struct {
	createFn           func(ctx context.Context, n *domain.Notification) error
	createBatchFn      func(ctx context.Context, notifications []*domain.Notification) error
	listForRecipientFn func(ctx context.Context, recipient string, limit int) ([]domain.Notification, error)
	countUnreadFn      func(ctx context.Context, recipient string) (int64, error)
	getForRecipientFn  func(ctx context.Context, id string, recipient string) (*domain.Notification, error)
	markReadFn         func(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error)
	markAllReadFn      func(ctx context.Context, recipient string, at time.Time) error
	softDeleteFn       func(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error)
	restoreFn          func(ctx context.Context, id string, recipient string) (*domain.Notification, error)
	hasReviewGrantFn   func(ctx context.Context, recipient string, applicationID string) (bool, error)
	updateLinkFn       func(ctx context.Context, id string, link string) error
	listFn             func(ctx context.Context, params repository.NotificationListParams) ([]domain.Notification, int64, error)
	hardDeleteFn       func(ctx context.Context, id string) error
	countLiveFn        func(ctx context.Context) (int64, error)
}

func (f *fakeNotificationRepo) Create(ctx context.Context, n *domain.Notification) error {
	if f.createFn != nil {
		return f.createFn(ctx, n)
	}
	return nil
}

func (f *fakeNotificationRepo) CreateBatch(ctx context.Context, notifications []*domain.Notification) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, notifications)
	}
	return nil
}

func (f *fakeNotificationRepo) ListForRecipient(ctx context.Context, recipient string, limit int) ([]domain.Notification, error) {
	if f.listForRecipientFn != nil {
		return f.listForRecipientFn(ctx, recipient, limit)
	}
	return nil, nil
}

func (f *fakeNotificationRepo) CountUnread(ctx context.Context, recipient string) (int64, error) {
	if f.countUnreadFn != nil {
		return f.countUnreadFn(ctx, recipient)
	}
	return 0, nil
}

func (f *fakeNotificationRepo) GetForRecipient(ctx context.Context, id string, recipient string) (*domain.Notification, error) {
	if f.getForRecipientFn != nil {
		return f.getForRecipientFn(ctx, id, recipient)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error) {
	if f.markReadFn != nil {
		return f.markReadFn(ctx, id, recipient, at)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNotificationRepo) MarkAllRead(ctx context.Context, recipient string, at time.Time) error {
	if f.markAllReadFn != nil {
		return f.markAllReadFn(ctx, recipient, at)
	}
	return nil
}

func (f *fakeNotificationRepo) SoftDelete(ctx context.Context, id string, recipient string, at time.Time) (*domain.Notification, error) {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, id, recipient, at)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNotificationRepo) Restore(ctx context.Context, id string, recipient string) (*domain.Notification, error) {
	if f.restoreFn != nil {
		return f.restoreFn(ctx, id, recipient)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeNotificationRepo) HasReviewGrant(ctx context.Context, recipient string, applicationID string) (bool, error) {
	if f.hasReviewGrantFn != nil {
		return f.hasReviewGrantFn(ctx, recipient, applicationID)
	}
	return false, nil
}

func (f *fakeNotificationRepo) UpdateLink(ctx context.Context, id string, link string) error {
	if f.updateLinkFn != nil {
		return f.updateLinkFn(ctx, id, link)
	}
	return nil
}

func (f *fakeNotificationRepo) List(ctx context.Context, params repository.NotificationListParams) ([]domain.Notification, int64, error) {
	if f.listFn != nil {
		return f.listFn(ctx, params)
	}
	return nil, 0, nil
}

func (f *fakeNotificationRepo) HardDelete(ctx context.Context, id string) error {
	if f.hardDeleteFn != nil {
		return f.hardDeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeNotificationRepo) CountLive(ctx context.Context) (int64, error) {
	if f.countLiveFn != nil {
		return f.countLiveFn(ctx)
	}
	return 0, nil
}
