package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/pawhaven/adoption-core/internal/domain"
	"github.com/pawhaven/adoption-core/internal/repository"
	"github.com/pawhaven/adoption-core/internal/service"
)

type AdminService interface {
	AuthorizeAdmin(ctx context.Context, callerID string) error
	DashboardStats(ctx context.Context) (*service.DashboardStats, error)
	ListApplications(ctx context.Context, params repository.ApplicationListParams) ([]domain.AdoptionApplication, int64, error)
	DeleteApplication(ctx context.Context, id string) error
	ListNotifications(ctx context.Context, params repository.NotificationListParams) ([]domain.Notification, int64, error)
	DeleteNotification(ctx context.Context, id string) error
}

type AdminHandler struct {
	service AdminService
}

func NewAdminHandler(service AdminService) (*AdminHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("admin service is required")
	}
	return &AdminHandler{service: service}, nil
}

func RegisterAdminRoutes(router fiber.Router, service AdminService) error {
	h, err := NewAdminHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1/admin", RequireUser(), h.requireAdmin)
	v1.Get("/stats", h.GetDashboardStats)
	v1.Get("/applications", h.ListApplications)
	v1.Delete("/applications/:id", h.DeleteApplication)
	v1.Get("/notifications", h.ListNotifications)
	v1.Delete("/notifications/:id", h.DeleteNotification)

	return nil
}

type listMeta struct {
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
	Total    int64 `json:"total"`
}

type adminApplicationsResponse struct {
	Applications []applicationResponse `json:"applications"`
	Meta         listMeta              `json:"meta"`
}

type adminNotificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	Meta          listMeta               `json:"meta"`
}

func (h *AdminHandler) requireAdmin(c *fiber.Ctx) error {
	if err := h.service.AuthorizeAdmin(c.UserContext(), callerID(c)); err != nil {
		return toHTTPError(err)
	}
	return c.Next()
}

func (h *AdminHandler) GetDashboardStats(c *fiber.Ctx) error {
	stats, err := h.service.DashboardStats(c.UserContext())
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"users": fiber.Map{"total": stats.TotalUsers},
		"animals": fiber.Map{
			"total":     stats.TotalAnimals,
			"adopted":   stats.AdoptedAnimals,
			"available": stats.AvailableAnimals,
		},
		"applications": fiber.Map{
			"total":    stats.TotalApplications,
			"pending":  stats.PendingApplications,
			"accepted": stats.AcceptedApplications,
			"rejected": stats.RejectedApplications,
		},
		"notifications": fiber.Map{"total": stats.LiveNotifications},
	})
}

func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	params := repository.ApplicationListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	if rawStatus := strings.TrimSpace(c.Query("status")); rawStatus != "" {
		status := domain.ApplicationStatus(strings.ToLower(rawStatus))
		if !status.IsValid() {
			return toHTTPError(fmt.Errorf("%w: invalid status %q", domain.ErrValidation, rawStatus))
		}
		params.Status = &status
	}

	applications, total, err := h.service.ListApplications(c.UserContext(), params)
	if err != nil {
		return toHTTPError(err)
	}

	responses := make([]applicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, toApplicationResponse(&applications[i]))
	}

	return c.Status(fiber.StatusOK).JSON(adminApplicationsResponse{
		Applications: responses,
		Meta:         listMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

func (h *AdminHandler) DeleteApplication(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	if err := h.service.DeleteApplication(c.UserContext(), id); err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Application deleted",
	})
}

func (h *AdminHandler) ListNotifications(c *fiber.Ctx) error {
	params := repository.NotificationListParams{
		Page:     c.QueryInt("page", 1),
		PageSize: c.QueryInt("pageSize", 50),
	}

	if recipient := strings.TrimSpace(c.Query("recipient")); recipient != "" {
		params.Recipient = &recipient
	}
	if rawDeleted := strings.TrimSpace(c.Query("deleted")); rawDeleted != "" {
		deleted := rawDeleted == "true"
		params.Deleted = &deleted
	}

	notifications, total, err := h.service.ListNotifications(c.UserContext(), params)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(adminNotificationsResponse{
		Notifications: toNotificationResponses(notifications),
		Meta:          listMeta{Page: params.Page, PageSize: params.PageSize, Total: total},
	})
}

func (h *AdminHandler) DeleteNotification(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	if err := h.service.DeleteNotification(c.UserContext(), id); err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Notification deleted",
	})
}
