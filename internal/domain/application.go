package domain

import (
	"fmt"
	"strings"
	"time"
)

// ApplicationStatus is the workflow state of an adoption application.
type ApplicationStatus string

const (
	ApplicationSubmitted ApplicationStatus = "submitted"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) String() string { return string(s) }

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationSubmitted, ApplicationAccepted, ApplicationRejected:
		return true
	}
	return false
}

// Decision mirrors the status once an application is decided.
type Decision string

const (
	DecisionPending  Decision = "pending"
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

func (d Decision) String() string { return string(d) }

// IsTerminal reports whether d is an outcome a reviewer may record.
func (d Decision) IsTerminal() bool {
	return d == DecisionAccepted || d == DecisionRejected
}

// ParseDecisionFromString accepts only the terminal outcomes; "pending" is
// not something a reviewer can submit.
func ParseDecisionFromString(s string) (Decision, error) {
	d := Decision(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsTerminal() {
		return "", fmt.Errorf("%w: invalid decision %q", ErrValidation, s)
	}
	return d, nil
}

// Defaults applied to optional submission fields.
const (
	DefaultPreferredContact = "phone"
	DefaultHasOtherAnimals  = "no"
	DefaultHealthCondition  = "none"
)

// AdoptionApplication snapshots the applicant's form at submission time;
// later profile edits never alter it.
type AdoptionApplication struct {
	ID            string
	AnimalID      string
	ApplicantUser *string

	FullName         string
	Email            string
	Phone            string
	PreferredContact string

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

	Status             ApplicationStatus
	Decision           Decision
	ReviewedBy         *string
	ReviewedAt         *time.Time
	RejectionReason    string
	MessageToApplicant string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *AdoptionApplication) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: application is required", ErrValidation)
	}
	if strings.TrimSpace(a.AnimalID) == "" {
		return fmt.Errorf("%w: animal id is required", ErrValidation)
	}
	if strings.TrimSpace(a.FullName) == "" {
		return fmt.Errorf("%w: full_name is required", ErrValidation)
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrValidation)
	}
	if strings.TrimSpace(a.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if strings.TrimSpace(a.HomeEnvironment) == "" {
		return fmt.Errorf("%w: home_environment is required", ErrValidation)
	}
	return nil
}

// IsDecided reports whether a terminal decision has been recorded.
func (a *AdoptionApplication) IsDecided() bool {
	return a.Status != ApplicationSubmitted
}

// ApplyDecision records the terminal outcome. It never reverts: a second
// decision fails with ErrConflict.
func (a *AdoptionApplication) ApplyDecision(decision Decision, reviewer string, at time.Time, rejectionReason, messageToApplicant string) error {
	if !decision.IsTerminal() {
		return fmt.Errorf("%w: invalid decision %q", ErrValidation, decision)
	}
	if a.IsDecided() {
		return fmt.Errorf("%w: application already decided", ErrConflict)
	}

	a.Decision = decision
	a.Status = ApplicationStatus(decision)
	a.ReviewedBy = &reviewer
	a.ReviewedAt = &at
	a.MessageToApplicant = messageToApplicant
	a.RejectionReason = ""
	if decision == DecisionRejected {
		a.RejectionReason = rejectionReason
	}
	return nil
}
