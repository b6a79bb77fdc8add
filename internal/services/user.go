package services

import (
	"context"
	"errors"
	"fmt"

	"campusevents/internal/domain"
)

type userService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a UserService with the given repository.
func NewUserService(userRepo domain.UserRepository) domain.UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	ids, err := s.userRepo.ListRegisteredEventIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list registered event ids: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	user.EventsRegistered = ids
	return user, nil
}
