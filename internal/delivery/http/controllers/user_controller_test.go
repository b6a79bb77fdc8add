package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campusevents/internal/delivery/http/helpers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/domain"
)

type mockUserService struct {
	user *domain.User
	err  error
}

func (m *mockUserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func TestUserController_GetMe_Unauthorized(t *testing.T) {
	ctrl := NewUserController(testLogger(), &mockUserService{})

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	w := httptest.NewRecorder()
	ctrl.GetMe(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestUserController_GetMe_Success(t *testing.T) {
	svc := &mockUserService{
		user: &domain.User{ID: "u1", Email: "asha@college.edu", EventsRegistered: []string{"e1", "e2"}},
	}
	ctrl := NewUserController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "u1", Role: domain.RoleStudent}))

	w := httptest.NewRecorder()
	ctrl.GetMe(w, req)

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

func TestUserController_GetMe_NotFound(t *testing.T) {
	svc := &mockUserService{err: domain.ErrNotFound}
	ctrl := NewUserController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req = req.WithContext(middleware.SetIdentity(req.Context(), domain.Identity{UID: "ghost", Role: domain.RoleStudent}))

	w := httptest.NewRecorder()
	ctrl.GetMe(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}
