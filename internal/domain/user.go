package domain

import (
	"context"
	"time"
)

// Application roles. A user holds exactly one.
const (
	RoleStudent   = "student"
	RoleOrganizer = "organizer"
)

// Identity is a verified user identity, extracted from a session token by
// the auth middleware and passed explicitly into service calls. A zero
// Identity means "unauthenticated".
type Identity struct {
	UID   string
	Email string
	Role  string
}

// User represents a registered user
// swagger:model User
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	Role             string    `json:"role"`
	PasswordHash     string    `json:"-"`
	Salt             string    `json:"-"`
	EventsRegistered []string  `json:"events_registered"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUser returns a new User with the given fields. ID is typically set by the repository on create.
func NewUser(email, name, role string, createdAt, updatedAt time.Time) *User {
	return &User{
		Email:     email,
		Name:      name,
		Role:      role,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated user.
type TokenIssuer interface {
	Issue(identity Identity, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the verified identity.
type TokenVerifier interface {
	Verify(token string) (Identity, error)
}

// UserRepository defines the interface for user storage.
//
// AddRegisteredEvent is add-if-absent: adding an event id that is already
// in the user's history is a no-op, so the history stays a set no matter
// how often it is called.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	AddRegisteredEvent(ctx context.Context, userID, eventID string) error
	ListRegisteredEventIDs(ctx context.Context, userID string) ([]string, error)
}

// AuthService defines sign-up and login.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name, role string) (*User, error)
	Login(ctx context.Context, email, password string) (token string, user *User, err error)
}

// UserService defines user-profile operations.
type UserService interface {
	// GetProfile returns the user with EventsRegistered populated from
	// the registration history.
	GetProfile(ctx context.Context, userID string) (*User, error)
}
