package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/storage"
)

type MenuRepository interface {
	GetItems(ctx context.Context) ([]models.MenuItem, error)
	SaveItems(ctx context.Context, items []models.MenuItem) error
	LastID(ctx context.Context) (int64, error)
	SetLastID(ctx context.Context, id int64) error
	GetFeatured(ctx context.Context) ([]models.MenuItem, error)
	SaveFeatured(ctx context.Context, items []models.MenuItem) error
}

type menuRepository struct {
	store storage.Store
}

func NewMenuRepository(store storage.Store) MenuRepository {
	return &menuRepository{store: store}
}

// GetItems loads the admin-created menu items. Built-in catalog items are not
// stored; the service unions them in. Missing or malformed values read as an
// empty list.
func (r *menuRepository) GetItems(ctx context.Context) ([]models.MenuItem, error) {
	return r.loadItems(ctx, storage.KeyMenuItems)
}

func (r *menuRepository) SaveItems(ctx context.Context, items []models.MenuItem) error {
	return r.saveItems(ctx, storage.KeyMenuItems, items)
}

// LastID returns the highest admin menu item id ever assigned. The counter is
// stored separately so ids are not reused after deletions.
func (r *menuRepository) LastID(ctx context.Context) (int64, error) {
	data, err := r.store.Get(ctx, storage.KeyLastMenuItemID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load last menu item id: %w", err)
	}

	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, nil
	}
	return id, nil
}

func (r *menuRepository) SetLastID(ctx context.Context, id int64) error {
	return r.store.Set(ctx, storage.KeyLastMenuItemID, []byte(strconv.FormatInt(id, 10)))
}

func (r *menuRepository) GetFeatured(ctx context.Context) ([]models.MenuItem, error) {
	return r.loadItems(ctx, storage.KeyFeaturedItems)
}

func (r *menuRepository) SaveFeatured(ctx context.Context, items []models.MenuItem) error {
	return r.saveItems(ctx, storage.KeyFeaturedItems, items)
}

func (r *menuRepository) loadItems(ctx context.Context, key string) ([]models.MenuItem, error) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.MenuItem{}, nil
		}
		return nil, fmt.Errorf("failed to load %q: %w", key, err)
	}

	var items []models.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []models.MenuItem{}, nil
	}
	if items == nil {
		items = []models.MenuItem{}
	}
	return items, nil
}

func (r *menuRepository) saveItems(ctx context.Context, key string, items []models.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal %q: %w", key, err)
	}
	return r.store.Set(ctx, key, data)
}
