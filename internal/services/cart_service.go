package services

import (
	"context"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
)

type CartService interface {
	Items(ctx context.Context) ([]models.CartItem, error)
	AddItem(ctx context.Context, item models.CartItem) error
	RemoveItem(ctx context.Context, id string) error
	UpdateQuantity(ctx context.Context, id string, delta int) error
	Clear(ctx context.Context) error
	Total(ctx context.Context) (int64, error)
	Draft(ctx context.Context) (models.CheckoutDraft, error)
	SaveDraft(ctx context.Context, draft models.CheckoutDraft) error
}

type cartService struct {
	cartRepo repository.CartRepository
}

func NewCartService(cartRepo repository.CartRepository) CartService {
	return &cartService{cartRepo: cartRepo}
}

func (s *cartService) Items(ctx context.Context) ([]models.CartItem, error) {
	return s.cartRepo.GetItems(ctx)
}

// AddItem appends the item to the cart, merging quantities when a line with
// the same id already exists. Quantity is coerced to at least 1.
func (s *cartService) AddItem(ctx context.Context, item models.CartItem) error {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return err
	}

	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	return s.cartRepo.SaveItems(ctx, items)
}

// RemoveItem deletes the line with the given id. Removing an absent id is a
// no-op.
func (s *cartService) RemoveItem(ctx context.Context, id string) error {
	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	return s.cartRepo.SaveItems(ctx, kept)
}

// UpdateQuantity adds delta to the line's quantity, clamped to a minimum of
// 1. The line is never removed here, even by a large negative delta.
func (s *cartService) UpdateQuantity(ctx context.Context, id string, delta int) error {
	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return err
	}

	for i := range items {
		if items[i].ID == id {
			quantity := items[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			items[i].Quantity = quantity
			break
		}
	}

	return s.cartRepo.SaveItems(ctx, items)
}

func (s *cartService) Clear(ctx context.Context) error {
	return s.cartRepo.Clear(ctx)
}

func (s *cartService) Total(ctx context.Context) (int64, error) {
	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return 0, err
	}
	return models.CartTotal(items), nil
}

func (s *cartService) Draft(ctx context.Context) (models.CheckoutDraft, error) {
	return s.cartRepo.GetDraft(ctx)
}

func (s *cartService) SaveDraft(ctx context.Context, draft models.CheckoutDraft) error {
	return s.cartRepo.SaveDraft(ctx, draft)
}
