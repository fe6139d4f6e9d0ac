package domain

import (
	"fmt"
	"strings"
	"time"
)

// NotificationType tags the event that produced a notification.
type NotificationType string

const (
	NotificationGeneral             NotificationType = "general"
	NotificationAdoptionApplication NotificationType = "adoption_application"
	NotificationAdoptionDecision    NotificationType = "adoption_decision"
)

func (t NotificationType) String() string { return string(t) }

// Data payload keys. DataKeyApplicationID is the grant key the review gate
// depends on; any producer of a review-granting notification must set it to
// the stringified application id.
const (
	DataKeyApplicationID      = "applicationId"
	DataKeyAnimalID           = "animalId"
	DataKeyAnimalName         = "animalName"
	DataKeyApplicantName      = "applicantName"
	DataKeyApplicantEmail     = "applicantEmail"
	DataKeyApplicantPhone     = "applicantPhone"
	DataKeyDecision           = "decision"
	DataKeyRejectionReason    = "rejection_reason"
	DataKeyMessageToApplicant = "message_to_applicant"
)

// Notification is an in-app record addressed to one recipient. Deletion is a
// soft flag so a deleted notification stays restorable; while deleted it is
// invisible to the recipient and to the review gate.
type Notification struct {
	ID        string
	Recipient string
	Type      NotificationType
	Title     string
	Message   string
	Link      string
	Data      map[string]any

	Read   bool
	ReadAt *time.Time

	Deleted   bool
	DeletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n *Notification) Validate() error {
	if n == nil {
		return fmt.Errorf("%w: notification is required", ErrValidation)
	}
	if strings.TrimSpace(n.Recipient) == "" {
		return fmt.Errorf("%w: recipient is required", ErrValidation)
	}
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	return nil
}

// ApplicationID returns the review-grant key carried in the data payload,
// or "" when the notification is not review-related.
func (n *Notification) ApplicationID() string {
	if n == nil || n.Data == nil {
		return ""
	}
	id, _ := n.Data[DataKeyApplicationID].(string)
	return id
}
