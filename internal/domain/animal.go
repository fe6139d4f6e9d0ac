package domain

import (
	"fmt"
	"strings"
	"time"
)

// AdoptionType distinguishes permanent adoptions from fostering.
type AdoptionType string

const (
	AdoptionPermanent AdoptionType = "Permanent"
	AdoptionFoster    AdoptionType = "Foster"
)

func (a AdoptionType) String() string { return string(a) }

func (a AdoptionType) IsValid() bool {
	switch a {
	case AdoptionPermanent, AdoptionFoster:
		return true
	}
	return false
}

// Animal is a catalog record. The adoption fields are mutated only by the
// adoption workflow on an accepted decision; reversal is an admin operation.
type Animal struct {
	ID               string
	Name             string
	Category         string
	Breed            string
	Gender           string
	Age              int
	MedicalCondition string
	AdoptionType     AdoptionType
	FosterDuration   string
	Address          string
	Img              string

	Adopted   bool
	AdoptedBy *string
	AdoptedAt *time.Time

	// SubmittedBy is who listed the animal; it determines the sole
	// notification recipient on submission when set.
	SubmittedBy *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (a *Animal) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: animal is required", ErrValidation)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(a.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if a.AdoptionType != "" && !a.AdoptionType.IsValid() {
		return fmt.Errorf("%w: invalid adoption type %q", ErrValidation, a.AdoptionType)
	}
	if a.Age < 0 {
		return fmt.Errorf("%w: age must be >= 0", ErrValidation)
	}
	return nil
}

// DisplayName never returns an empty string for notification text.
func (a *Animal) DisplayName() string {
	if a == nil || strings.TrimSpace(a.Name) == "" {
		return "Animal"
	}
	return a.Name
}

// MarkAdopted records an accepted adoption. adoptedBy may be nil for a
// guest applicant; adopted implies a non-nil timestamp.
func (a *Animal) MarkAdopted(adoptedBy *string, at time.Time) {
	a.Adopted = true
	a.AdoptedBy = adoptedBy
	a.AdoptedAt = &at
}
