package repository

import (
	"context"
	"sync"

	"github.com/AnshNarg/bit-coin/model"
)

// UserRepository is an in-memory user store. The demo keeps no durable
// state; everything lives for the process lifetime.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]model.User // keyed by email
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[string]model.User),
	}
}

// FindByEmail returns nil, nil when no user exists
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[email]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

// Save inserts or updates
func (r *UserRepository) Save(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.Email] = *user
	return nil
}

func (r *UserRepository) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.users, email)
	return nil
}
