package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type mockEventService struct {
	event         *domain.Event
	events        []*domain.Event
	registrations []*domain.Registration
	total         int
	err           error
}

func (m *mockEventService) CreateEvent(ctx context.Context, identity domain.Identity, name, description, venue string, date *time.Time) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.event, nil
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.events, nil
}

func (m *mockEventService) ListEventRegistrations(ctx context.Context, eventID string, identity domain.Identity, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.registrations, m.total, nil
}

func TestEventController_CreateEvent_Forbidden(t *testing.T) {
	svc := &mockEventService{err: domain.ErrForbidden}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"name":"Tech Fest"}`))
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "u1", Role: domain.RoleStudent}))

	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestEventController_CreateEvent_Success(t *testing.T) {
	svc := &mockEventService{event: &domain.Event{ID: "e1", Name: "Tech Fest"}}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"name":"Tech Fest","venue":"Main Hall"}`))
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "org1", Role: domain.RoleOrganizer}))

	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestEventController_CreateEvent_MissingName(t *testing.T) {
	svc := &mockEventService{}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodPost, "/events", strings.NewReader(`{"venue":"Main Hall"}`))
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "org1", Role: domain.RoleOrganizer}))

	w := httptest.NewRecorder()
	ctrl.CreateEvent(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestEventController_GetEvent_NotFound(t *testing.T) {
	svc := &mockEventService{err: domain.ErrNotFound}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/missing", nil)
	req.SetPathValue("eventID", "missing")

	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestEventController_GetEvent_Success(t *testing.T) {
	svc := &mockEventService{event: &domain.Event{ID: "e1", Name: "Tech Fest", Registrations: 7}}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/e1", nil)
	req.SetPathValue("eventID", "e1")

	w := httptest.NewRecorder()
	ctrl.GetEvent(w, req)

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

func TestEventController_ListEvents_EmptyIsArray(t *testing.T) {
	svc := &mockEventService{}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	w := httptest.NewRecorder()
	ctrl.ListEvents(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if !strings.Contains(w.Body.String(), `"data":[]`) {
		t.Fatalf("expected empty array data, got %s", w.Body.String())
	}
}

func TestEventController_ListEventRegistrations_Forbidden(t *testing.T) {
	svc := &mockEventService{err: domain.ErrForbidden}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/e1/registrations", nil)
	req.SetPathValue("eventID", "e1")
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "u1", Role: domain.RoleStudent}))

	w := httptest.NewRecorder()
	ctrl.ListEventRegistrations(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, w.Code)
	}
}

func TestEventController_ListEventRegistrations_Success(t *testing.T) {
	svc := &mockEventService{
		registrations: []*domain.Registration{{ID: "e1_1BM20CS001", EventID: "e1", USN: "1BM20CS001"}},
		total:         1,
	}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/events/e1/registrations?page=1&page_size=20", nil)
	req.SetPathValue("eventID", "e1")
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "org1", Role: domain.RoleOrganizer}))

	w := httptest.NewRecorder()
	ctrl.ListEventRegistrations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp struct {
		Data struct {
			Registrations []*domain.Registration `json:"registrations"`
			Pagination    helpers.PaginationMeta `json:"pagination"`
		} `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if resp.Error != nil {
		t.Fatalf("expected no error, got %v", resp.Error)
	}
	if len(resp.Data.Registrations) != 1 || resp.Data.Pagination.Total != 1 {
		t.Fatalf("unexpected response data: %+v", resp.Data)
	}
}
