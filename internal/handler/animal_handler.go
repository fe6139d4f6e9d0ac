package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
)

type AnimalService interface {
	List(ctx context.Context, params repository.AnimalListParams) ([]domain.Animal, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Animal, error)
	Create(ctx context.Context, callerID string, animal *domain.Animal) (*domain.Animal, error)
	Update(ctx context.Context, callerID string, animal *domain.Animal) (*domain.Animal, error)
	Delete(ctx context.Context, callerID string, id string) error
}

type AnimalHandler struct {
	service AnimalService
}

func NewAnimalHandler(service AnimalService) (*AnimalHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("animal service is required")
	}
	return &AnimalHandler{service: service}, nil
}

func RegisterAnimalRoutes(router fiber.Router, service AnimalService) error {
	h, err := NewAnimalHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1/animals")
	v1.Get("/", h.ListAnimals)
	v1.Get("/:id", h.GetAnimal)
	v1.Post("/", RequireUser(), h.CreateAnimal)
	v1.Put("/:id", RequireUser(), h.UpdateAnimal)
	v1.Delete("/:id", RequireUser(), h.DeleteAnimal)

	return nil
}

type animalRequest struct {
	Name             string `json:"name"`
	Category         string `json:"category"`
	Breed            string `json:"breed"`
	Gender           string `json:"gender"`
	Age              int    `json:"age"`
	MedicalCondition string `json:"medical_condition"`
	AdoptionType     string `json:"adoption_type"`
	FosterDuration   string `json:"foster_duration"`
	Address          string `json:"address"`
	Img              string `json:"img"`
}

type listAnimalsResponse struct {
	Animals []animalResponse `json:"animals"`
	Total   int64            `json:"total"`
}

func (h *AnimalHandler) ListAnimals(c *fiber.Ctx) error {
	params := repository.AnimalListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	if category := strings.TrimSpace(c.Query("category")); category != "" {
		params.Category = &category
	}
	if rawAdopted := strings.TrimSpace(c.Query("adopted")); rawAdopted != "" {
		adopted := rawAdopted == "true"
		params.Adopted = &adopted
	}

	animals, total, err := h.service.List(c.UserContext(), params)
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]animalResponse, 0, len(animals))
	for i := range animals {
		responses = append(responses, toAnimalResponse(&animals[i]))
	}

	return c.Status(fiber.StatusOK).JSON(listAnimalsResponse{
		Animals: responses,
		Total:   total,
	})
}

func (h *AnimalHandler) GetAnimal(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	animal, err := h.service.GetByID(c.UserContext(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toAnimalResponse(animal))
}

func (h *AnimalHandler) CreateAnimal(c *fiber.Ctx) error {
	var req animalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	animal, err := h.service.Create(c.UserContext(), callerID(c), animalFromRequest(req))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusCreated).JSON(toAnimalResponse(animal))
}

func (h *AnimalHandler) UpdateAnimal(c *fiber.Ctx) error {
	var req animalRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	animal := animalFromRequest(req)
	animal.ID = strings.TrimSpace(c.Params("id"))

	updated, err := h.service.Update(c.UserContext(), callerID(c), animal)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(toAnimalResponse(updated))
}

func (h *AnimalHandler) DeleteAnimal(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	if err := h.service.Delete(c.UserContext(), callerID(c), id); err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Animal deleted",
	})
}

func animalFromRequest(req animalRequest) *domain.Animal {
	return &domain.Animal{
		Name:             req.Name,
		Category:         req.Category,
		Breed:            req.Breed,
		Gender:           req.Gender,
		Age:              req.Age,
		MedicalCondition: req.MedicalCondition,
		AdoptionType:     domain.AdoptionType(req.AdoptionType),
		FosterDuration:   req.FosterDuration,
		Address:          req.Address,
		Img:              req.Img,
	}
}
