package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"taskman/domain/apperrors"
	"taskman/domain/dto"
	"taskman/domain/models"
	"taskman/interfaces/api/handlers"
	"taskman/interfaces/api/middleware"
	"taskman/interfaces/api/routes"
	"taskman/pkg/logger"
)

// ========== Stub services ==========

type stubPersonService struct {
	person  *models.Person
	persons []*models.Person
	err     error
}

func (s *stubPersonService) Create(ctx context.Context, req *dto.CreatePersonRequest) (*models.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.person, nil
}

func (s *stubPersonService) GetByID(ctx context.Context, id uint) (*models.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.person, nil
}

func (s *stubPersonService) List(ctx context.Context) ([]*models.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.persons, nil
}

func (s *stubPersonService) Update(ctx context.Context, id uint, req *dto.UpdatePersonRequest) (*models.Person, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.person, nil
}

func (s *stubPersonService) Delete(ctx context.Context, id uint) error {
	return s.err
}

type stubTaskService struct {
	task  *models.Task
	tasks []*models.Task
	err   error
}

func (s *stubTaskService) Create(ctx context.Context, personID uint, req *dto.CreateTaskRequest) (*models.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.task, nil
}

func (s *stubTaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.task, nil
}

func (s *stubTaskService) List(ctx context.Context) ([]*models.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.tasks, nil
}

func (s *stubTaskService) Update(ctx context.Context, id uint, req *dto.UpdateTaskRequest) (*models.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.task, nil
}

func (s *stubTaskService) Delete(ctx context.Context, id uint) error {
	return s.err
}

// ========== Test helpers ==========

func newTestApp(personSvc *stubPersonService, taskSvc *stubTaskService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	h := handlers.NewHandlers(&handlers.Services{
		PersonService: personSvc,
		TaskService:   taskSvc,
	})
	routes.SetupRoutes(app, h)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var req *http.Request
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	var envelope map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return envelope
}

// ========== Person handler tests ==========

func TestCreatePersonHandler(t *testing.T) {
	t.Run("returns 201 with created person", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			person: &models.Person{ID: 1, Name: "Alice"},
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodPost, "/api/v1/persons/", map[string]any{"name": "Alice"})
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("expected 201, got %d", resp.StatusCode)
		}

		envelope := decodeEnvelope(t, resp)
		if envelope["success"] != true {
			t.Error("expected success true")
		}
		data := envelope["data"].(map[string]any)
		if data["id"] != float64(1) || data["name"] != "Alice" {
			t.Errorf("unexpected data: %v", data)
		}
	})

	t.Run("returns 400 on validation error", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			err: apperrors.New(apperrors.CodeValidation, "person name cannot be empty"),
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodPost, "/api/v1/persons/", map[string]any{"name": ""})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}

		envelope := decodeEnvelope(t, resp)
		if envelope["success"] != false {
			t.Error("expected success false")
		}
	})

	t.Run("returns 400 on duplicate name", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			err: apperrors.ErrPersonNameTaken,
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodPost, "/api/v1/persons/", map[string]any{"name": "Alice"})
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestGetPersonHandler(t *testing.T) {
	t.Run("returns 200 with person and tasks", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			person: &models.Person{
				ID:   1,
				Name: "Alice",
				Tasks: []models.Task{
					{ID: 1, Name: "Fix bug", StartDate: "2026-01-01", AssignedPersonID: 1},
				},
			},
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodGet, "/api/v1/persons/1", nil)
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		envelope := decodeEnvelope(t, resp)
		data := envelope["data"].(map[string]any)
		tasks := data["tasks"].([]any)
		if len(tasks) != 1 {
			t.Errorf("expected 1 task, got %d", len(tasks))
		}
	})

	t.Run("returns 404 for missing person", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			err: apperrors.ErrPersonNotFound,
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodGet, "/api/v1/persons/999", nil)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})

	t.Run("returns 400 for non-numeric id", func(t *testing.T) {
		app := newTestApp(&stubPersonService{}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodGet, "/api/v1/persons/abc", nil)
		if resp.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("expected 400, got %d", resp.StatusCode)
		}
	})
}

func TestListPersonsHandler(t *testing.T) {
	app := newTestApp(&stubPersonService{
		persons: []*models.Person{
			{ID: 1, Name: "Alice"},
			{ID: 2, Name: "Bob"},
		},
	}, &stubTaskService{})

	resp := doRequest(t, app, fiber.MethodGet, "/api/v1/persons/", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	data := envelope["data"].(map[string]any)
	persons := data["persons"].([]any)
	if len(persons) != 2 {
		t.Errorf("expected 2 persons, got %d", len(persons))
	}
}

func TestUpdatePersonHandler(t *testing.T) {
	t.Run("returns 200 with updated person", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			person: &models.Person{ID: 1, Name: "Bob"},
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodPut, "/api/v1/persons/1", map[string]any{"name": "Bob"})
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}

		envelope := decodeEnvelope(t, resp)
		data := envelope["data"].(map[string]any)
		if data["name"] != "Bob" {
			t.Errorf("expected Bob, got %v", data["name"])
		}
	})

	t.Run("returns 404 for missing person", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			err: apperrors.ErrPersonNotFound,
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodPut, "/api/v1/persons/42", map[string]any{"name": "Bob"})
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})
}

func TestDeletePersonHandler(t *testing.T) {
	t.Run("returns 204 with empty body", func(t *testing.T) {
		app := newTestApp(&stubPersonService{}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodDelete, "/api/v1/persons/1", nil)
		if resp.StatusCode != fiber.StatusNoContent {
			t.Fatalf("expected 204, got %d", resp.StatusCode)
		}
	})

	t.Run("returns 404 for missing person", func(t *testing.T) {
		app := newTestApp(&stubPersonService{
			err: apperrors.ErrPersonNotFound,
		}, &stubTaskService{})

		resp := doRequest(t, app, fiber.MethodDelete, "/api/v1/persons/42", nil)
		if resp.StatusCode != fiber.StatusNotFound {
			t.Fatalf("expected 404, got %d", resp.StatusCode)
		}
	})
}

// recordingPersonService จับ request ID จาก context ที่ handler ส่งเข้ามา
type recordingPersonService struct {
	stubPersonService
	requestID string
}

func (s *recordingPersonService) Create(ctx context.Context, req *dto.CreatePersonRequest) (*models.Person, error) {
	s.requestID = logger.GetRequestID(ctx)
	return &models.Person{ID: 1, Name: req.Name}, nil
}

func TestRequestIDReachesServiceContext(t *testing.T) {
	svc := &recordingPersonService{}
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestIDMiddleware())
	h := handlers.NewHandlers(&handlers.Services{
		PersonService: svc,
		TaskService:   &stubTaskService{},
	})
	routes.SetupRoutes(app, h)

	req := httptest.NewRequest(fiber.MethodPost, "/api/v1/persons/", bytes.NewReader([]byte(`{"name":"Alice"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.RequestIDHeader, "req-abc-123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	// request ID จาก client ต้องไปถึง service layer สำหรับ log correlation
	if svc.requestID != "req-abc-123" {
		t.Errorf("expected request ID %q in service context, got %q", "req-abc-123", svc.requestID)
	}
	if got := resp.Header.Get(middleware.RequestIDHeader); got != "req-abc-123" {
		t.Errorf("expected request ID echoed in response header, got %q", got)
	}
}

func TestHealthRoute(t *testing.T) {
	app := newTestApp(&stubPersonService{}, &stubTaskService{})

	resp := doRequest(t, app, fiber.MethodGet, "/health", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	envelope := decodeEnvelope(t, resp)
	if envelope["status"] != "ok" {
		t.Errorf("expected status ok, got %v", envelope["status"])
	}
}
