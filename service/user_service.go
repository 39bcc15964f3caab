package service

import (
	"context"
	"fmt"

	"github.com/AnshNarg/bit-coin/customerrors"
	"github.com/AnshNarg/bit-coin/model"
	"github.com/AnshNarg/bit-coin/repository"
)

type UserService interface {
	GetOrCreateUser(ctx context.Context, request model.LoginRequest) (*model.User, error)
	GetUser(ctx context.Context, email string) (*model.User, error)
}

type UserServiceImpl struct {
	repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) UserService {
	return &UserServiceImpl{repo: repo}
}

// GetOrCreateUser backs the demo login: any credentials are accepted, the
// account is created on first sight of the email.
func (s *UserServiceImpl) GetOrCreateUser(ctx context.Context, request model.LoginRequest) (*model.User, error) {
	existing, err := s.repo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	user, err := request.ToEntity()
	if err != nil {
		return nil, fmt.Errorf("failed to process user data: %w", err)
	}

	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, customerrors.ErrUserNotFound
	}
	return user, nil
}
