package service

import (
	"context"
	goerrors "errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fleetrent/internal/errors"
	"fleetrent/internal/model"
	"fleetrent/internal/repository"
)

const bcryptCost = 10

// UserService handles user registration. Users are created only via signup;
// role is immutable and nothing updates or deletes them.
type UserService interface {
	Signup(ctx context.Context, name, email, password string, role model.Role) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Signup registers a new user with a hashed password.
func (s *userService) Signup(ctx context.Context, name, email, password string, role model.Role) (*model.User, error) {
	if !role.Valid() {
		return nil, errors.ErrInvalidRole
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// Two concurrent signups can both pass the FindByEmail check; the
		// unique index on email decides the winner.
		if goerrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
