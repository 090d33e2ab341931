package handlers

import (
	"context"
	"net/mail"
	"strings"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/gofiber/fiber/v2"
)

type contactStore interface {
	Create(ctx context.Context, name, email, message string) (*models.ContactMessage, error)
}

type ContactHandler struct {
	contactRepo contactStore
}

func NewContactHandler(contactRepo contactStore) *ContactHandler {
	return &ContactHandler{contactRepo: contactRepo}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmitContact is the one public write endpoint; no session is required.
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Message = strings.TrimSpace(req.Message)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please fill in all required fields",
		})
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please enter a valid email address",
		})
	}

	if _, err := h.contactRepo.Create(c.Context(), req.Name, req.Email, req.Message); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to send message",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Message sent to Coach Jake",
	})
}
