package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"campusevents/internal/domain"
)

// fakeUserStore implements domain.UserRepository for auth tests.
type fakeUserStore struct {
	usersByEmail map[string]*domain.User
	createErr    error
	created      *domain.User
}

func (f *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = "generated-id"
	f.created = user
	return nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, ok := f.usersByEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeUserStore) AddRegisteredEvent(ctx context.Context, userID, eventID string) error {
	return nil
}

func (f *fakeUserStore) ListRegisteredEventIDs(ctx context.Context, userID string) ([]string, error) {
	return nil, nil
}

// fakeHasher implements domain.PasswordHasher with transparent values.
type fakeHasher struct{}

func (fakeHasher) GenerateSalt() (string, error) { return "salt", nil }

func (fakeHasher) Hash(salt, password string) (string, error) { return salt + ":" + password, nil }

func (fakeHasher) Compare(hash, salt, password string) error {
	if hash != salt+":"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeIssuer implements domain.TokenIssuer.
type fakeIssuer struct {
	lastIdentity domain.Identity
}

func (f *fakeIssuer) Issue(identity domain.Identity, _ time.Duration) (string, error) {
	f.lastIdentity = identity
	return "token-for-" + identity.UID, nil
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		role     string
		wantErr  error
		wantRole string
	}{
		{
			name:     "student by default",
			email:    "asha@college.edu",
			password: "longenough",
			wantRole: domain.RoleStudent,
		},
		{
			name:     "organizer role kept",
			email:    "org@college.edu",
			password: "longenough",
			role:     "organizer",
			wantRole: domain.RoleOrganizer,
		},
		{
			name:     "unknown role falls back to student",
			email:    "x@college.edu",
			password: "longenough",
			role:     "admin",
			wantRole: domain.RoleStudent,
		},
		{
			name:     "invalid email",
			email:    "not-an-email",
			password: "longenough",
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "short password",
			email:    "asha@college.edu",
			password: "short",
			wantErr:  domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUserStore{usersByEmail: map[string]*domain.User{}}
			svc := NewAuthService(store, fakeHasher{}, &fakeIssuer{}, time.Hour)

			user, err := svc.SignUp(context.Background(), tt.email, tt.password, "Asha", tt.role)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.Role != tt.wantRole {
				t.Errorf("expected role %q, got %q", tt.wantRole, user.Role)
			}
			if user.PasswordHash == "" || user.Salt == "" {
				t.Error("expected password hash and salt to be set")
			}
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	store := &fakeUserStore{createErr: domain.ErrDuplicateEmail}
	svc := NewAuthService(store, fakeHasher{}, &fakeIssuer{}, time.Hour)

	_, err := svc.SignUp(context.Background(), "asha@college.edu", "longenough", "Asha", "")
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestAuthService_Login(t *testing.T) {
	existing := &domain.User{
		ID:           "u1",
		Email:        "asha@college.edu",
		Role:         domain.RoleStudent,
		Salt:         "salt",
		PasswordHash: "salt:correct-password",
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{
			name:     "success",
			email:    "asha@college.edu",
			password: "correct-password",
		},
		{
			name:     "email is normalized",
			email:    "  ASHA@College.edu ",
			password: "correct-password",
		},
		{
			name:     "wrong password",
			email:    "asha@college.edu",
			password: "wrong",
			wantErr:  domain.ErrUnauthorized,
		},
		{
			name:     "unknown email",
			email:    "nobody@college.edu",
			password: "correct-password",
			wantErr:  domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeUserStore{usersByEmail: map[string]*domain.User{existing.Email: existing}}
			issuer := &fakeIssuer{}
			svc := NewAuthService(store, fakeHasher{}, issuer, time.Hour)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if token != "token-for-u1" {
				t.Errorf("unexpected token %q", token)
			}
			if user.ID != "u1" {
				t.Errorf("unexpected user %+v", user)
			}
			if issuer.lastIdentity.Role != domain.RoleStudent {
				t.Errorf("expected role claim %q, got %q", domain.RoleStudent, issuer.lastIdentity.Role)
			}
		})
	}
}
