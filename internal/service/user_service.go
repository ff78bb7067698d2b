package service

import (
	"context"

	"github.com/questio/questio-backend/internal/model"
	"github.com/questio/questio-backend/internal/repository"
)

// UserService handles user account business logic.
type UserService struct {
	userRepo *repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetByID retrieves a user by ID.
func (s *UserService) GetByID(ctx context.Context, id int) (*model.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetByRegistration retrieves a user by registration number.
func (s *UserService) GetByRegistration(ctx context.Context, registration string) (*model.User, error) {
	return s.userRepo.GetByRegistration(ctx, registration)
}

// Create inserts a new user account.
func (s *UserService) Create(ctx context.Context, u *model.User) error {
	return s.userRepo.Create(ctx, u)
}
