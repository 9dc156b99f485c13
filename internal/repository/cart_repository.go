package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"
)

type CartRepository interface {
	GetItems(ctx context.Context) ([]models.CartItem, error)
	SaveItems(ctx context.Context, items []models.CartItem) error
	Clear(ctx context.Context) error
	GetDraft(ctx context.Context) (models.CheckoutDraft, error)
	SaveDraft(ctx context.Context, draft models.CheckoutDraft) error
	ClearDraft(ctx context.Context) error
}

type cartRepository struct {
	store storage.Store
}

func NewCartRepository(store storage.Store) CartRepository {
	return &cartRepository{store: store}
}

// GetItems loads the cart snapshot. A missing or malformed value is treated
// as an empty cart rather than an error.
func (r *cartRepository) GetItems(ctx context.Context) ([]models.CartItem, error) {
	data, err := r.store.Get(ctx, storage.KeyCartItems)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.CartItem{}, nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []models.CartItem{}, nil
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func (r *cartRepository) SaveItems(ctx context.Context, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	return r.store.Set(ctx, storage.KeyCartItems, data)
}

func (r *cartRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyCartItems)
}

func (r *cartRepository) GetDraft(ctx context.Context) (models.CheckoutDraft, error) {
	data, err := r.store.Get(ctx, storage.KeyCheckoutDraft)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return models.CheckoutDraft{}, nil
		}
		return models.CheckoutDraft{}, fmt.Errorf("failed to load checkout draft: %w", err)
	}

	var draft models.CheckoutDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return models.CheckoutDraft{}, nil
	}
	return draft, nil
}

func (r *cartRepository) SaveDraft(ctx context.Context, draft models.CheckoutDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout draft: %w", err)
	}
	return r.store.Set(ctx, storage.KeyCheckoutDraft, data)
}

func (r *cartRepository) ClearDraft(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyCheckoutDraft)
}
