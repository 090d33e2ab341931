package handlers

import (
	"errors"
	"strings"

	"github.com/courtlab/HoopCoachBack/internal/models"
	activityws "github.com/courtlab/HoopCoachBack/internal/websocket"
	"github.com/courtlab/HoopCoachBack/pkg/utils"
	websocket "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// ActivityHandler upgrades coach connections onto the live workout feed.
type ActivityHandler struct {
	hub       *activityws.Hub
	jwtSecret string
}

func NewActivityHandler(hub *activityws.Hub, jwtSecret string) *ActivityHandler {
	return &ActivityHandler{hub: hub, jwtSecret: jwtSecret}
}

// WebSocketAuth authenticates the upgrade request. Browsers cannot set
// headers on WebSocket handshakes, so the token may arrive as a query
// parameter instead. Only coaches may subscribe.
func (h *ActivityHandler) WebSocketAuth(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return c.Status(fiber.StatusUpgradeRequired).JSON(fiber.Map{"error": "WebSocket upgrade required"})
	}

	claims, err := h.parseWSClaims(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid or expired token"})
	}
	if claims.Role != models.RoleCoach {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Forbidden"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("role", claims.Role)
	return c.Next()
}

func (h *ActivityHandler) HandleWebSocket(conn *websocket.Conn) {
	client := activityws.NewClient(h.hub, conn)

	h.hub.Register(client)
	go client.WritePump()
	client.ReadPump()
}

func (h *ActivityHandler) parseWSClaims(c *fiber.Ctx) (*utils.Claims, error) {
	tokenString := strings.TrimSpace(c.Query("token"))
	if tokenString == "" {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
	}

	if tokenString == "" {
		return nil, errors.New("missing token")
	}

	return utils.ValidateToken(tokenString, h.jwtSecret)
}
