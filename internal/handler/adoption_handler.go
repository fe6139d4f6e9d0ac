package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/ratelimit"
	"github.com/pawhaven/adoption-core/internal/service"
)

type AdoptionService interface {
	Submit(ctx context.Context, animalID string, applicantUserID *string, form service.SubmissionForm) (*domain.AdoptionApplication, error)
	GetForReview(ctx context.Context, callerID string, applicationID string) (*service.ReviewBundle, error)
	Decide(ctx context.Context, callerID string, applicationID string, input service.DecisionInput) (*domain.AdoptionApplication, error)
}

type AdoptionHandler struct {
	service AdoptionService
	limiter ratelimit.RateLimiter
}

func NewAdoptionHandler(service AdoptionService, limiter ratelimit.RateLimiter) (*AdoptionHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("adoption service is required")
	}
	return &AdoptionHandler{service: service, limiter: limiter}, nil
}

func RegisterAdoptionRoutes(router fiber.Router, service AdoptionService, limiter ratelimit.RateLimiter) error {
	h, err := NewAdoptionHandler(service, limiter)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1")
	v1.Post("/animals/:animalId/applications", OptionalUser(), h.SubmitApplication)
	v1.Get("/applications/:id/review", RequireUser(), h.GetApplicationForReview)
	v1.Post("/applications/:id/decision", RequireUser(), h.DecideApplication)

	return nil
}

type submitApplicationRequest struct {
	FullName              string `json:"full_name"`
	Email                 string `json:"email"`
	Phone                 string `json:"phone"`
	PreferredContact      string `json:"preferred_contact"`
	MonthlyIncome         string `json:"monthly_income"`
	HomeEnvironment       string `json:"home_environment"`
	HouseholdMembers      string `json:"household_members"`
	WorkSchedule          string `json:"work_schedule"`
	HasOtherAnimals       string `json:"has_other_animals"`
	OtherAnimalsDetails   string `json:"other_animals_details"`
	HealthCondition       string `json:"health_condition"`
	HealthDetails         string `json:"health_details"`
	ExperienceWithAnimals string `json:"experience_with_animals"`
	ReasonForAdoption     string `json:"reason_for_adoption"`
	AdditionalNotes       string `json:"additional_notes"`
}

type decideApplicationRequest struct {
	Decision           string `json:"decision"`
	RejectionReason    string `json:"rejection_reason"`
	MessageToApplicant string `json:"message_to_applicant"`
}

type applicationResponse struct {
	ID                    string     `json:"id"`
	AnimalID              string     `json:"animal_id"`
	ApplicantUser         *string    `json:"applicant_user,omitempty"`
	FullName              string     `json:"full_name"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	PreferredContact      string     `json:"preferred_contact"`
	MonthlyIncome         string     `json:"monthly_income"`
	HomeEnvironment       string     `json:"home_environment"`
	HouseholdMembers      string     `json:"household_members"`
	WorkSchedule          string     `json:"work_schedule"`
	HasOtherAnimals       string     `json:"has_other_animals"`
	OtherAnimalsDetails   string     `json:"other_animals_details"`
	HealthCondition       string     `json:"health_condition"`
	HealthDetails         string     `json:"health_details"`
	ExperienceWithAnimals string     `json:"experience_with_animals"`
	ReasonForAdoption     string     `json:"reason_for_adoption"`
	AdditionalNotes       string     `json:"additional_notes"`
	Status                string     `json:"status"`
	Decision              string     `json:"decision"`
	ReviewedBy            *string    `json:"reviewed_by,omitempty"`
	ReviewedAt            *time.Time `json:"reviewed_at,omitempty"`
	RejectionReason       string     `json:"rejection_reason"`
	MessageToApplicant    string     `json:"message_to_applicant"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type animalResponse struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Category         string     `json:"category"`
	Breed            string     `json:"breed,omitempty"`
	Gender           string     `json:"gender,omitempty"`
	Age              int        `json:"age"`
	MedicalCondition string     `json:"medical_condition,omitempty"`
	AdoptionType     string     `json:"adoption_type,omitempty"`
	FosterDuration   string     `json:"foster_duration,omitempty"`
	Address          string     `json:"address,omitempty"`
	Img              string     `json:"img,omitempty"`
	Adopted          bool       `json:"adopted"`
	AdoptedBy        *string    `json:"adopted_by,omitempty"`
	AdoptedAt        *time.Time `json:"adopted_at,omitempty"`
	SubmittedBy      *string    `json:"submitted_by,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type applicantProfileResponse struct {
	ID               string `json:"id"`
	UserName         string `json:"user_name"`
	Email            string `json:"email"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	ProfileImage     string `json:"profile_image,omitempty"`
	ProfileColor     string `json:"profile_color,omitempty"`
	ProfileTextColor string `json:"profile_text_color,omitempty"`
}

type reviewBundleResponse struct {
	Application applicationResponse       `json:"application"`
	Animal      *animalResponse           `json:"animal,omitempty"`
	Applicant   *applicantProfileResponse `json:"applicant,omitempty"`
}

func (h *AdoptionHandler) SubmitApplication(c *fiber.Ctx) error {
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.UserContext(), "submit:"+c.IP())
		if err != nil {
			return err
		}
		if !allowed {
			return fiber.NewError(fiber.StatusTooManyRequests, "too many submissions, try again later")
		}
	}

	var req submitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	animalID := strings.TrimSpace(c.Params("animalId"))

	application, err := h.service.Submit(c.UserContext(), animalID, optionalCallerID(c), service.SubmissionForm{
		FullName:              req.FullName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		PreferredContact:      req.PreferredContact,
		MonthlyIncome:         req.MonthlyIncome,
		HomeEnvironment:       req.HomeEnvironment,
		HouseholdMembers:      req.HouseholdMembers,
		WorkSchedule:          req.WorkSchedule,
		HasOtherAnimals:       req.HasOtherAnimals,
		OtherAnimalsDetails:   req.OtherAnimalsDetails,
		HealthCondition:       req.HealthCondition,
		HealthDetails:         req.HealthDetails,
		ExperienceWithAnimals: req.ExperienceWithAnimals,
		ReasonForAdoption:     req.ReasonForAdoption,
		AdditionalNotes:       req.AdditionalNotes,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Application submitted",
		"applicationId": application.ID,
	})
}

func (h *AdoptionHandler) GetApplicationForReview(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	bundle, err := h.service.GetForReview(c.UserContext(), callerID(c), id)
	if err != nil {
		return toHTTPError(err)
	}

	resp := reviewBundleResponse{
		Application: toApplicationResponse(bundle.Application),
	}
	if bundle.Animal != nil {
		animal := toAnimalResponse(bundle.Animal)
		resp.Animal = &animal
	}
	if bundle.Applicant != nil {
		resp.Applicant = &applicantProfileResponse{
			ID:               bundle.Applicant.ID,
			UserName:         bundle.Applicant.UserName,
			Email:            bundle.Applicant.Email,
			PhoneNumber:      bundle.Applicant.PhoneNumber,
			ProfileImage:     bundle.Applicant.ProfileImage,
			ProfileColor:     bundle.Applicant.ProfileColor,
			ProfileTextColor: bundle.Applicant.ProfileTextColor,
		}
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

func (h *AdoptionHandler) DecideApplication(c *fiber.Ctx) error {
	var req decideApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	id := strings.TrimSpace(c.Params("id"))

	application, err := h.service.Decide(c.UserContext(), callerID(c), id, service.DecisionInput{
		Decision:           req.Decision,
		RejectionReason:    req.RejectionReason,
		MessageToApplicant: req.MessageToApplicant,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Decision saved",
		"applicationId": application.ID,
		"decision":      application.Decision.String(),
	})
}

func toApplicationResponse(a *domain.AdoptionApplication) applicationResponse {
	if a == nil {
		return applicationResponse{}
	}

	return applicationResponse{
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
		Status:                a.Status.String(),
		Decision:              a.Decision.String(),
		ReviewedBy:            a.ReviewedBy,
		ReviewedAt:            a.ReviewedAt,
		RejectionReason:       a.RejectionReason,
		MessageToApplicant:    a.MessageToApplicant,
		CreatedAt:             a.CreatedAt,
		UpdatedAt:             a.UpdatedAt,
	}
}

func toAnimalResponse(a *domain.Animal) animalResponse {
	if a == nil {
		return animalResponse{}
	}

	return animalResponse{
		ID:               a.ID,
		Name:             a.Name,
		Category:         a.Category,
		Breed:            a.Breed,
		Gender:           a.Gender,
		Age:              a.Age,
		MedicalCondition: a.MedicalCondition,
		AdoptionType:     a.AdoptionType.String(),
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
