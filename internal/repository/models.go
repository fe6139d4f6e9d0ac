package repository

import (
	"time"

	"gorm.io/datatypes"

	"github.com/pawhaven/adoption-core/internal/domain"
)

// UserModel is the persistence model for the users table. Credential and
// profile-editing columns live outside this core; only identity, role, and
// reviewer-facing display fields are mapped.
type UserModel struct {
	ID               string      `gorm:"type:uuid;primaryKey"`
	UserName         string      `gorm:"type:varchar(255);not null"`
	Email            string      `gorm:"type:varchar(255);not null"`
	PhoneNumber      string      `gorm:"type:varchar(64)"`
	Role             domain.Role `gorm:"type:varchar(16);not null;default:'user'"`
	ProfileImage     string      `gorm:"type:text"`
	ProfileColor     string      `gorm:"type:varchar(16)"`
	ProfileTextColor string      `gorm:"type:varchar(16)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// AnimalModel is the persistence model for the animals table.
type AnimalModel struct {
	ID               string              `gorm:"type:uuid;primaryKey"`
	Name             string              `gorm:"type:varchar(255);not null"`
	Category         string              `gorm:"type:varchar(64);not null"`
	Breed            string              `gorm:"type:varchar(128)"`
	Gender           string              `gorm:"type:varchar(16)"`
	Age              int                 `gorm:"not null;default:0"`
	MedicalCondition string              `gorm:"type:text"`
	AdoptionType     domain.AdoptionType `gorm:"type:varchar(16)"`
	FosterDuration   string              `gorm:"type:varchar(64)"`
	Address          string              `gorm:"type:text"`
	Img              string              `gorm:"type:text"`
	Adopted          bool                `gorm:"not null;default:false"`
	AdoptedBy        *string             `gorm:"type:uuid"`
	AdoptedAt        *time.Time
	SubmittedBy      *string `gorm:"type:uuid"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (AnimalModel) TableName() string {
	return "animals"
}

// ApplicationModel is the persistence model for adoption_applications.
type ApplicationModel struct {
	ID            string  `gorm:"type:uuid;primaryKey"`
	AnimalID      string  `gorm:"type:uuid;not null;index"`
	ApplicantUser *string `gorm:"type:uuid"`

	FullName         string `gorm:"type:varchar(255);not null"`
	Email            string `gorm:"type:varchar(255);not null"`
	Phone            string `gorm:"type:varchar(64);not null"`
	PreferredContact string `gorm:"type:varchar(32);not null;default:'phone'"`

	MonthlyIncome         string `gorm:"type:varchar(128)"`
	HomeEnvironment       string `gorm:"type:text;not null"`
	HouseholdMembers      string `gorm:"type:text"`
	WorkSchedule          string `gorm:"type:text"`
	HasOtherAnimals       string `gorm:"type:varchar(8);not null;default:'no'"`
	OtherAnimalsDetails   string `gorm:"type:text"`
	HealthCondition       string `gorm:"type:varchar(64);not null;default:'none'"`
	HealthDetails         string `gorm:"type:text"`
	ExperienceWithAnimals string `gorm:"type:text"`
	ReasonForAdoption     string `gorm:"type:text"`
	AdditionalNotes       string `gorm:"type:text"`

	Status             domain.ApplicationStatus `gorm:"type:varchar(16);not null;index"`
	Decision           domain.Decision          `gorm:"type:varchar(16);not null;default:'pending'"`
	ReviewedBy         *string                  `gorm:"type:uuid"`
	ReviewedAt         *time.Time
	RejectionReason    string `gorm:"type:text"`
	MessageToApplicant string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ApplicationModel) TableName() string {
	return "adoption_applications"
}

// NotificationModel is the persistence model for the notifications table.
type NotificationModel struct {
	ID        string                  `gorm:"type:uuid;primaryKey"`
	Recipient string                  `gorm:"type:uuid;not null;index"`
	Type      domain.NotificationType `gorm:"type:varchar(64);not null;default:'general'"`
	Title     string                  `gorm:"type:varchar(255);not null"`
	Message   string                  `gorm:"type:text"`
	Link      string                  `gorm:"type:text"`
	Data      datatypes.JSONMap       `gorm:"type:jsonb"`
	Read      bool                    `gorm:"not null;default:false;index"`
	ReadAt    *time.Time
	Deleted   bool `gorm:"not null;default:false;index"`
	DeletedAt *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func userModelToDomain(m *UserModel) *domain.User {
	if m == nil {
		return nil
	}

	return &domain.User{
		ID:               m.ID,
		UserName:         m.UserName,
		Email:            m.Email,
		PhoneNumber:      m.PhoneNumber,
		Role:             m.Role,
		ProfileImage:     m.ProfileImage,
		ProfileColor:     m.ProfileColor,
		ProfileTextColor: m.ProfileTextColor,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func animalModelFromDomain(a *domain.Animal) *AnimalModel {
	if a == nil {
		return nil
	}

	return &AnimalModel{
		ID:               a.ID,
		Name:             a.Name,
		Category:         a.Category,
		Breed:            a.Breed,
		Gender:           a.Gender,
		Age:              a.Age,
		MedicalCondition: a.MedicalCondition,
		AdoptionType:     a.AdoptionType,
		FosterDuration:   a.FosterDuration,
		Address:          a.Address,
		Img:              a.Img,
		Adopted:          a.Adopted,
		AdoptedBy:        a.AdoptedBy,
		AdoptedAt:        a.AdoptedAt,
		SubmittedBy:      a.SubmittedBy,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func animalModelToDomain(m *AnimalModel) *domain.Animal {
	if m == nil {
		return nil
	}

	return &domain.Animal{
		ID:               m.ID,
		Name:             m.Name,
		Category:         m.Category,
		Breed:            m.Breed,
		Gender:           m.Gender,
		Age:              m.Age,
		MedicalCondition: m.MedicalCondition,
		AdoptionType:     m.AdoptionType,
		FosterDuration:   m.FosterDuration,
		Address:          m.Address,
		Img:              m.Img,
		Adopted:          m.Adopted,
		AdoptedBy:        m.AdoptedBy,
		AdoptedAt:        m.AdoptedAt,
		SubmittedBy:      m.SubmittedBy,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func applicationModelFromDomain(a *domain.AdoptionApplication) *ApplicationModel {
	if a == nil {
		return nil
	}

	return &ApplicationModel{
		ID:                    a.ID,
		AnimalID:              a.AnimalID,
		ApplicantUser:         a.ApplicantUser,
		FullName:              a.FullName,
		Email:                 a.Email,
		Phone:                 a.Phone,
		PreferredContact:      a.PreferredContact,
		MonthlyIncome:         a.MonthlyIncome,
		HomeEnvironment:       a.HomeEnvironment,
		HouseholdMembers:      a.HouseholdMembers,
		WorkSchedule:          a.WorkSchedule,
		HasOtherAnimals:       a.HasOtherAnimals,
		OtherAnimalsDetails:   a.OtherAnimalsDetails,
		HealthCondition:       a.HealthCondition,
		HealthDetails:         a.HealthDetails,
		ExperienceWithAnimals: a.ExperienceWithAnimals,
		ReasonForAdoption:     a.ReasonForAdoption,
		AdditionalNotes:       a.AdditionalNotes,
		Status:                a.Status,
		Decision:              a.Decision,
		ReviewedBy:            a.ReviewedBy,
		ReviewedAt:            a.ReviewedAt,
		RejectionReason:       a.RejectionReason,
		MessageToApplicant:    a.MessageToApplicant,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func applicationModelToDomain(m *ApplicationModel) *domain.AdoptionApplication {
	if m == nil {
		return nil
	}

	return &domain.AdoptionApplication{
		ID:                    m.ID,
		AnimalID:              m.AnimalID,
		ApplicantUser:         m.ApplicantUser,
		FullName:              m.FullName,
		Email:                 m.Email,
		Phone:                 m.Phone,
		PreferredContact:      m.PreferredContact,
		MonthlyIncome:         m.MonthlyIncome,
		HomeEnvironment:       m.HomeEnvironment,
		HouseholdMembers:      m.HouseholdMembers,
		WorkSchedule:          m.WorkSchedule,
		HasOtherAnimals:       m.HasOtherAnimals,
		OtherAnimalsDetails:   m.OtherAnimalsDetails,
		HealthCondition:       m.HealthCondition,
		HealthDetails:         m.HealthDetails,
		ExperienceWithAnimals: m.ExperienceWithAnimals,
		ReasonForAdoption:     m.ReasonForAdoption,
		AdditionalNotes:       m.AdditionalNotes,
		Status:                m.Status,
		Decision:              m.Decision,
		ReviewedBy:            m.ReviewedBy,
		ReviewedAt:            m.ReviewedAt,
		RejectionReason:       m.RejectionReason,
		MessageToApplicant:    m.MessageToApplicant,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func notificationModelFromDomain(n *domain.Notification) *NotificationModel {
	if n == nil {
		return nil
	}

	var data datatypes.JSONMap
	if n.Data != nil {
		data = datatypes.JSONMap(n.Data)
	}

	return &NotificationModel{
		ID:        n.ID,
		Recipient: n.Recipient,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Data:      data,
		Read:      n.Read,
		ReadAt:    n.ReadAt,
		Deleted:   n.Deleted,
		DeletedAt: n.DeletedAt,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func notificationModelToDomain(m *NotificationModel) *domain.Notification {
	if m == nil {
		return nil
	}

	var data map[string]any
	if m.Data != nil {
		data = map[string]any(m.Data)
	}

	return &domain.Notification{
		ID:        m.ID,
		Recipient: m.Recipient,
		Type:      m.Type,
		Title:     m.Title,
		Message:   m.Message,
		Link:      m.Link,
		Data:      data,
		Read:      m.Read,
		ReadAt:    m.ReadAt,
		Deleted:   m.Deleted,
		DeletedAt: m.DeletedAt,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
