package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"
)

type UserRepository interface {
	Get(ctx context.Context) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
	Delete(ctx context.Context) error
}

type userRepository struct {
	store storage.Store
}

func NewUserRepository(store storage.Store) UserRepository {
	return &userRepository{store: store}
}

// Get returns the current user, or nil when nobody is logged in. Malformed
// stored data reads as logged out.
func (r *userRepository) Get(ctx context.Context) (*models.User, error) {
	data, err := r.store.Get(ctx, storage.KeyUser)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) Save(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	return r.store.Set(ctx, storage.KeyUser, data)
}

func (r *userRepository) Delete(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyUser)
}
