package handler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pawhaven/adoption-core/internal/domain"
)

type NotificationService interface {
	ListMine(ctx context.Context, recipient string) ([]domain.Notification, int64, error)
	GetByID(ctx context.Context, recipient string, id string) (*domain.Notification, error)
	MarkRead(ctx context.Context, recipient string, id string) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, recipient string) error
	Delete(ctx context.Context, recipient string, id string) (*domain.Notification, error)
	Restore(ctx context.Context, recipient string, id string) (*domain.Notification, error)
}

type NotificationHandler struct {
	service NotificationService
}

func NewNotificationHandler(service NotificationService) (*NotificationHandler, error) {
	if service == nil {
		return nil, fmt.Errorf("notification service is required")
	}
	return &NotificationHandler{service: service}, nil
}

func RegisterNotificationRoutes(router fiber.Router, service NotificationService) error {
	h, err := NewNotificationHandler(service)
	if err != nil {
		return err
	}

	v1 := router.Group("/v1/notifications", RequireUser())
	v1.Get("/", h.ListMyNotifications)
	v1.Post("/read-all", h.MarkAllRead)
	v1.Get("/:id", h.GetNotification)
	v1.Post("/:id/read", h.MarkRead)
	v1.Delete("/:id", h.DeleteNotification)
	v1.Post("/:id/restore", h.RestoreNotification)

	return nil
}

type notificationResponse struct {
	ID        string         `json:"id"`
	Recipient string         `json:"recipient"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Link      string         `json:"link"`
	Data      map[string]any `json:"data,omitempty"`
	Read      bool           `json:"read"`
	ReadAt    *time.Time     `json:"read_at,omitempty"`
	Deleted   bool           `json:"deleted"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

type listNotificationsResponse struct {
	Notifications []notificationResponse `json:"notifications"`
	UnreadCount   int64                  `json:"unreadCount"`
}

func (h *NotificationHandler) ListMyNotifications(c *fiber.Ctx) error {
	notifications, unread, err := h.service.ListMine(c.UserContext(), callerID(c))
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(listNotificationsResponse{
		Notifications: toNotificationResponses(notifications),
		UnreadCount:   unread,
	})
}

func (h *NotificationHandler) GetNotification(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	notification, err := h.service.GetByID(c.UserContext(), callerID(c), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notification": toNotificationResponse(notification),
	})
}

func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	notification, err := h.service.MarkRead(c.UserContext(), callerID(c), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notification": toNotificationResponse(notification),
	})
}

func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.service.MarkAllRead(c.UserContext(), callerID(c)); err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "All notifications marked as read",
	})
}

func (h *NotificationHandler) DeleteNotification(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	notification, err := h.service.Delete(c.UserContext(), callerID(c), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notification": toNotificationResponse(notification),
	})
}

func (h *NotificationHandler) RestoreNotification(c *fiber.Ctx) error {
	id := strings.TrimSpace(c.Params("id"))

	notification, err := h.service.Restore(c.UserContext(), callerID(c), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"notification": toNotificationResponse(notification),
	})
}

func toNotificationResponses(notifications []domain.Notification) []notificationResponse {
	responses := make([]notificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		n := notification
		responses = append(responses, toNotificationResponse(&n))
	}
	return responses
}

func toNotificationResponse(n *domain.Notification) notificationResponse {
	if n == nil {
		return notificationResponse{}
	}

	return notificationResponse{
		ID:        n.ID,
		Recipient: n.Recipient,
		Type:      n.Type.String(),
		Title:     n.Title,
		Message:   n.Message,
		Link:      n.Link,
		Data:      n.Data,
		Read:      n.Read,
		ReadAt:    n.ReadAt,
		Deleted:   n.Deleted,
		DeletedAt: n.DeletedAt,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
