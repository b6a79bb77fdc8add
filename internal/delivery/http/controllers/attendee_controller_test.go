package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type mockAttendeeService struct {
	registration *domain.Registration
	events       []*domain.Event
	err          error

	gotEventID string
	gotForm    domain.RegistrationForm
}

func (m *mockAttendeeService) Register(ctx context.Context, eventID string, identity domain.Identity, form domain.RegistrationForm) (*domain.Registration, error) {
	m.gotEventID = eventID
	m.gotForm = form
	if m.err != nil {
		return nil, m.err
	}
	return m.registration, nil
}

func (m *mockAttendeeService) ListMyRegisteredEvents(ctx context.Context, identity domain.Identity) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func registerRequest(t *testing.T, body string, identity *domain.Identity) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/events/evt42/registrations", strings.NewReader(body))
	req.SetPathValue("eventID", "evt42")
	if identity != nil {
		req = req.WithContext(middleware.SetIdentity(req.Context(), *identity))
	}
	return req
}

const validRegisterBody = `{"name":"Asha","usn":"1BM20CS001","email":"asha@college.edu","semester":"5"}`

func TestAttendeeController_Register_Success(t *testing.T) {
	svc := &mockAttendeeService{
		registration: &domain.Registration{ID: "evt42_1BM20CS001", EventID: "evt42", USN: "1BM20CS001"},
	}
	ctrl := NewAttendeeController(testLogger(), svc)

	identity := domain.Identity{UID: "u1", Role: domain.RoleStudent}
	w := httptest.NewRecorder()
	ctrl.Register(w, registerRequest(t, validRegisterBody, &identity))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
	if svc.gotEventID != "evt42" {
		t.Fatalf("expected service called with evt42, got %q", svc.gotEventID)
	}
	if svc.gotForm.USN != "1BM20CS001" {
		t.Fatalf("expected usn 1BM20CS001, got %q", svc.gotForm.USN)
	}

	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestAttendeeController_Register_Unauthorized(t *testing.T) {
	ctrl := NewAttendeeController(testLogger(), &mockAttendeeService{})

	w := httptest.NewRecorder()
	ctrl.Register(w, registerRequest(t, validRegisterBody, nil))

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAttendeeController_Register_MissingFields(t *testing.T) {
	svc := &mockAttendeeService{}
	ctrl := NewAttendeeController(testLogger(), svc)

	identity := domain.Identity{UID: "u1", Role: domain.RoleStudent}
	w := httptest.NewRecorder()
	ctrl.Register(w, registerRequest(t, `{"name":"Asha"}`, &identity))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if svc.gotEventID != "" {
		t.Fatalf("service should not be called on validation failure")
	}
}

func TestAttendeeController_Register_EventNotFound(t *testing.T) {
	svc := &mockAttendeeService{err: domain.ErrNotFound}
	ctrl := NewAttendeeController(testLogger(), svc)

	identity := domain.Identity{UID: "u1", Role: domain.RoleStudent}
	w := httptest.NewRecorder()
	ctrl.Register(w, registerRequest(t, validRegisterBody, &identity))

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestAttendeeController_Register_PartialFailure(t *testing.T) {
	svc := &mockAttendeeService{
		err: &domain.PartialFailureError{Step: domain.StepCounter, Err: errors.New("update failed")},
	}
	ctrl := NewAttendeeController(testLogger(), svc)

	identity := domain.Identity{UID: "u1", Role: domain.RoleStudent}
	w := httptest.NewRecorder()
	ctrl.Register(w, registerRequest(t, validRegisterBody, &identity))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != helpers.ErrCodeInternalError {
		t.Fatalf("expected internal_error, got %v", resp.Error)
	}
	// The failed step stays server-side.
	if strings.Contains(resp.Error.Message, "counter") {
		t.Fatalf("response must not disclose the failed step, got %q", resp.Error.Message)
	}
}

func TestAttendeeController_ListMyRegisteredEvents_Unauthorized(t *testing.T) {
	ctrl := NewAttendeeController(testLogger(), &mockAttendeeService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me/events", nil)
	w := httptest.NewRecorder()
	ctrl.ListMyRegisteredEvents(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestAttendeeController_ListMyRegisteredEvents_Success(t *testing.T) {
	svc := &mockAttendeeService{
		events: []*domain.Event{{ID: "e1", Name: "Tech Fest"}},
	}
	ctrl := NewAttendeeController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/users/me/events", nil)
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "u1", Role: domain.RoleStudent}))

	w := httptest.NewRecorder()
	ctrl.ListMyRegisteredEvents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp helpers.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
}

func TestAttendeeController_ListMyRegisteredEvents_Error(t *testing.T) {
	svc := &mockAttendeeService{err: errors.New("service error")}
	ctrl := NewAttendeeController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/users/me/events", nil)
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "u1", Role: domain.RoleStudent}))

	w := httptest.NewRecorder()
	ctrl.ListMyRegisteredEvents(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
