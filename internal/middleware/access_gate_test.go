package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/pkg/utils"
	"github.com/gofiber/fiber/v2"
)

const gateTestSecret = "gate-test-secret"

func newGateApp(t *testing.T, lookup RoleLookup) *fiber.App {
	t.Helper()
	app := fiber.New()
	app.Use(AccessGate(gateTestSecret, lookup))
	app.Get("/*", func(c *fiber.Ctx) error {
		return c.SendString("page")
	})
	return app
}

func sessionToken(t *testing.T, userID, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(userID, role, gateTestSecret)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	return token
}

func TestAccessGateRedirectsAnonymousWithNext(t *testing.T) {
	app := newGateApp(t, func(context.Context, int64) (string, error) {
		return models.RoleAthlete, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != "/login?next=%2Fdashboard" {
		t.Errorf("expected login redirect with next, got %q", got)
	}
}

func TestAccessGateAllowsAuthenticatedSession(t *testing.T) {
	app := newGateApp(t, func(context.Context, int64) (string, error) {
		return models.RoleAthlete, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/workouts", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, "7", models.RoleAthlete)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestAccessGateBouncesNonCoachFromCoachPages(t *testing.T) {
	app := newGateApp(t, func(context.Context, int64) (string, error) {
		return models.RoleAthlete, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/coach/roster", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, "7", models.RoleAthlete)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
	if got := resp.Header.Get("Location"); got != DashboardPath {
		t.Errorf("expected dashboard redirect, got %q", got)
	}
}

func TestAccessGateIgnoresTokenRoleForCoachPages(t *testing.T) {
	// The token claims coach but the store says athlete; the store wins.
	app := newGateApp(t, func(context.Context, int64) (string, error) {
		return models.RoleAthlete, nil
	})

	req := httptest.NewRequest(http.MethodGet, "/coach", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: sessionToken(t, "7", models.RoleCoach)})
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected 302, got %d", resp.StatusCode)
	}
}
