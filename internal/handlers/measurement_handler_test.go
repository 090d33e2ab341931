package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/courtlab/HoopCoachBack/internal/models"
	"github.com/courtlab/HoopCoachBack/internal/repository"
	"github.com/gofiber/fiber/v2"
)

type stubMeasurementRepo struct {
	created []repository.CreateMeasurementInput
	recent  []models.Measurement
}

func (s *stubMeasurementRepo) Create(_ context.Context, input repository.CreateMeasurementInput) (*models.Measurement, error) {
	s.created = append(s.created, input)
	return &models.Measurement{
		ID:       int64(len(s.created)),
		UserID:   input.UserID,
		Date:     input.Date,
		WeightKG: input.WeightKG,
	}, nil
}

func (s *stubMeasurementRepo) ListRecent(context.Context, int64, int) ([]models.Measurement, error) {
	return s.recent, nil
}

func TestCreateMeasurementReturnsPersistedRow(t *testing.T) {
	repo := &stubMeasurementRepo{}
	handler := NewMeasurementHandler(repo, nil)

	app := authenticatedApp("7", models.RoleAthlete)
	app.Post("/api/v1/measurements", handler.CreateMeasurement)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/measurements", strings.NewReader(`{"weight_kg":82.5}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body struct {
		Success     bool               `json:"success"`
		Measurement models.Measurement `json:"measurement"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Error("expected success true")
	}
	if body.Measurement.ID == 0 {
		t.Error("expected server-assigned id in response")
	}
	if body.Measurement.WeightKG != 82.5 {
		t.Errorf("expected weight 82.5, got %v", body.Measurement.WeightKG)
	}
	if len(repo.created) != 1 || repo.created[0].UserID != 7 {
		t.Errorf("unexpected store calls: %+v", repo.created)
	}
}

func TestCreateMeasurementRejectsInvalidWeight(t *testing.T) {
	repo := &stubMeasurementRepo{}
	handler := NewMeasurementHandler(repo, nil)

	app := authenticatedApp("7", models.RoleAthlete)
	app.Post("/api/v1/measurements", handler.CreateMeasurement)

	for _, payload := range []string{`{"weight_kg":0}`, `{"weight_kg":-5}`, `{}`} {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/measurements", strings.NewReader(payload))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("app.Test: %v", err)
		}

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("payload %s: expected 400, got %d", payload, resp.StatusCode)
		}
		var body struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		resp.Body.Close()
		if body.Error != "Please enter a valid weight" {
			t.Errorf("payload %s: unexpected error %q", payload, body.Error)
		}
	}

	if len(repo.created) != 0 {
		t.Errorf("expected no store calls, got %d", len(repo.created))
	}
}

func TestCreateMeasurementHonorsProvidedDate(t *testing.T) {
	repo := &stubMeasurementRepo{}
	handler := NewMeasurementHandler(repo, nil)

	app := authenticatedApp("7", models.RoleAthlete)
	app.Post("/api/v1/measurements", handler.CreateMeasurement)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/measurements",
		strings.NewReader(`{"weight_kg":80,"date":"2026-03-01T00:00:00Z"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	resp.Body.Close()

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 store call, got %d", len(repo.created))
	}
	want := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	if !repo.created[0].Date.Equal(want) {
		t.Errorf("expected date %v, got %v", want, repo.created[0].Date)
	}
}

func TestListMeasurementsReturnsEmptySlice(t *testing.T) {
	handler := NewMeasurementHandler(&stubMeasurementRepo{}, nil)

	app := authenticatedApp("7", models.RoleAthlete)
	app.Get("/api/v1/measurements", handler.ListMeasurements)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/measurements", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(body["measurements"]) != "[]" {
		t.Errorf("expected [] for empty history, got %s", body["measurements"])
	}
}
