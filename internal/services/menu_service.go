package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
)

var (
	ErrMenuItemNotFound = errors.New("menu item not found")
	ErrBuiltinItem      = errors.New("built-in menu items cannot be modified")
	ErrInvalidMenuItem  = errors.New("menu item needs a name, a positive price and a valid category")
)

type MenuItemInput struct {
	Name        string
	Description string
	Price       int64
	Category    string
}

type MenuService interface {
	List(ctx context.Context, category string) ([]models.MenuItem, error)
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	Add(ctx context.Context, input MenuItemInput, image []byte, imageType string) (*models.MenuItem, error)
	Update(ctx context.Context, id string, input MenuItemInput, image []byte, imageType string) (*models.MenuItem, error)
	Delete(ctx context.Context, id string) error
	Featured(ctx context.Context) ([]models.MenuItem, error)
	SetFeatured(ctx context.Context, ids []string) ([]models.MenuItem, error)
}

type menuService struct {
	menuRepo repository.MenuRepository
}

func NewMenuService(menuRepo repository.MenuRepository) MenuService {
	return &menuService{menuRepo: menuRepo}
}

// List returns the built-in catalog followed by admin-created items,
// optionally filtered by category.
func (s *menuService) List(ctx context.Context, category string) ([]models.MenuItem, error) {
	stored, err := s.menuRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	all := append(models.BuiltinMenu(), stored...)
	if category == "" {
		return all, nil
	}

	filtered := []models.MenuItem{}
	for _, item := range all {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func (s *menuService) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	all, err := s.List(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			return &all[i], nil
		}
	}
	return nil, ErrMenuItemNotFound
}

// Add creates an admin menu item. The id comes from a persisted counter so
// ids are never reused after deletions. The image is stored inline as a data
// URL.
func (s *menuService) Add(ctx context.Context, input MenuItemInput, image []byte, imageType string) (*models.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}

	lastID, err := s.menuRepo.LastID(ctx)
	if err != nil {
		return nil, err
	}

	item := models.MenuItem{
		ID:          fmt.Sprintf("custom%d", lastID+1),
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Image:       encodeImage(image, imageType),
	}

	items, err := s.menuRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	items = append(items, item)

	if err := s.menuRepo.SaveItems(ctx, items); err != nil {
		return nil, err
	}
	if err := s.menuRepo.SetLastID(ctx, lastID+1); err != nil {
		return nil, err
	}

	return &item, nil
}

// Update replaces an admin item's fields. When no new image is supplied the
// previous one is kept. Built-in catalog items cannot be edited.
func (s *menuService) Update(ctx context.Context, id string, input MenuItemInput, image []byte, imageType string) (*models.MenuItem, error) {
	if err := validateMenuItemInput(input); err != nil {
		return nil, err
	}
	if isBuiltin(id) {
		return nil, ErrBuiltinItem
	}

	items, err := s.menuRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Name = input.Name
		items[i].Description = input.Description
		items[i].Price = input.Price
		items[i].Category = input.Category
		if len(image) > 0 {
			items[i].Image = encodeImage(image, imageType)
		}
		if err := s.menuRepo.SaveItems(ctx, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}

	return nil, ErrMenuItemNotFound
}

func (s *menuService) Delete(ctx context.Context, id string) error {
	if isBuiltin(id) {
		return ErrBuiltinItem
	}

	items, err := s.menuRepo.GetItems(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrMenuItemNotFound
	}

	return s.menuRepo.SaveItems(ctx, kept)
}

func (s *menuService) Featured(ctx context.Context) ([]models.MenuItem, error) {
	return s.menuRepo.GetFeatured(ctx)
}

// SetFeatured stores the full items for the given ids so the home page
// carousel can render without a second lookup.
func (s *menuService) SetFeatured(ctx context.Context, ids []string) ([]models.MenuItem, error) {
	featured := make([]models.MenuItem, 0, len(ids))
	for _, id := range ids {
		item, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("featured item %q: %w", id, err)
		}
		featured = append(featured, *item)
	}

	if err := s.menuRepo.SaveFeatured(ctx, featured); err != nil {
		return nil, err
	}
	return featured, nil
}

func validateMenuItemInput(input MenuItemInput) error {
	if input.Name == "" || input.Price <= 0 || !models.ValidCategory(input.Category) {
		return ErrInvalidMenuItem
	}
	return nil
}

func isBuiltin(id string) bool {
	for _, item := range models.BuiltinMenu() {
		if item.ID == id {
			return true
		}
	}
	return false
}

func encodeImage(image []byte, imageType string) string {
	if len(image) == 0 {
		return ""
	}
	if imageType == "" {
		imageType = "application/octet-stream"
	}
	return "data:" + imageType + ";base64," + base64.StdEncoding.EncodeToString(image)
}
