package middleware

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

// Page paths that require a session. /coach additionally requires the
// coach role.
var ProtectedPrefixes = []string{"/dashboard", "/workouts", "/leaderboard", "/coach", "/finish-profile"}

const (
	coachPrefix   = "/coach"
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

type Decision int

const (
	DecisionAllow Decision = iota
	DecisionRedirectLogin
	DecisionRedirectDashboard
)

// Decide applies the route-protection rules to one request path. The role
// lookup is only invoked for coach paths; a lookup failure is treated
// identically to "not a coach".
func Decide(path string, hasSession bool, roleLookup func() (string, error)) Decision {
	if !isProtectedPath(path) {
		return DecisionAllow
	}
	if !hasSession {
		return DecisionRedirectLogin
	}
	if strings.HasPrefix(path, coachPrefix) {
		role, err := roleLookup()
		if err != nil || role != models.RoleCoach {
			return DecisionRedirectDashboard
		}
	}
	return DecisionAllow
}

func isProtectedPath(path string) bool {
	for _, prefix := range ProtectedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// RoleLookup resolves the subject's role from the profile store, not from
// token claims.
type RoleLookup func(ctx context.Context, userID int64) (string, error)

// AccessGate protects page routes: unauthenticated requests bounce to the
// login page carrying the original path, and non-coaches hitting /coach
// bounce to the dashboard. The gate never mutates session state.
func AccessGate(secret string, lookup RoleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		hasSession := false
		var userID int64
		if tokenString := tokenFromRequest(c); tokenString != "" {
			if claims, err := utils.ValidateToken(tokenString, secret); err == nil {
				if id, err := strconv.ParseInt(claims.UserID, 10, 64); err == nil {
					hasSession = true
					userID = id
				}
			}
		}

		decision := Decide(path, hasSession, func() (string, error) {
			return lookup(c.Context(), userID)
		})

		switch decision {
		case DecisionRedirectLogin:
			return c.Redirect(LoginPath+"?next="+url.QueryEscape(path), fiber.StatusFound)
		case DecisionRedirectDashboard:
			return c.Redirect(DashboardPath, fiber.StatusFound)
		default:
			return c.Next()
		}
	}
}
