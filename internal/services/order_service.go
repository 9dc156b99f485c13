package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/models"
	"github.com/Ayesha-Iqbal-Codes/wham-bam-burgers/internal/repository"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrMissingDetails    = errors.New("address, phone and pickup date are required")
	ErrEmptyCancelReason = errors.New("cancellation reason is required")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrOrderFinal        = errors.New("order is already completed or cancelled")
)

type PlaceOrderRequest struct {
	CustomerName  string
	CustomerEmail string
	Address       string
	Phone         string
	PickupDate    string
}

type OrderService interface {
	Place(ctx context.Context, req PlaceOrderRequest) (*models.Order, error)
	ListForCustomer(ctx context.Context, email string) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	Get(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error)
	Cancel(ctx context.Context, id int64, reason string) (*models.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo}
}

// Place snapshots the current cart into a new order and clears the cart. The
// order id comes from a persisted counter rather than the order list, so ids
// keep increasing even after older orders are deleted.
func (s *orderService) Place(ctx context.Context, req PlaceOrderRequest) (*models.Order, error) {
	if req.Address == "" || req.Phone == "" || req.PickupDate == "" {
		return nil, ErrMissingDetails
	}

	items, err := s.cartRepo.GetItems(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	lastID, err := s.orderRepo.LastID(ctx)
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// The counter can lag behind the list, e.g. state written before the
	// counter existed. Never hand out an id at or below one already stored.
	for _, existing := range orders {
		if existing.ID > lastID {
			lastID = existing.ID
		}
	}

	email := req.CustomerEmail
	if email == "" {
		email = models.GuestEmail
	}

	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)

	order := models.Order{
		ID:            lastID + 1,
		CustomerName:  req.CustomerName,
		CustomerEmail: email,
		Phone:         req.Phone,
		Address:       req.Address,
		PickupTime:    req.PickupDate,
		Items:         snapshot,
		Status:        models.StatusPending,
		Total:         models.CartTotal(snapshot),
		CreatedAt:     time.Now(),
	}

	orders = append(orders, order)

	if err := s.orderRepo.SaveAll(ctx, orders); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetLastID(ctx, order.ID); err != nil {
		return nil, err
	}
	if err := s.cartRepo.Clear(ctx); err != nil {
		return nil, err
	}
	if err := s.cartRepo.ClearDraft(ctx); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListForCustomer returns the orders whose customer email matches, newest
// first. Pass models.GuestEmail for unauthenticated customers.
func (s *orderService) ListForCustomer(ctx context.Context, email string) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Order{}
	for _, order := range orders {
		if order.CustomerEmail == email {
			matched = append(matched, order)
		}
	}

	sortNewestFirst(matched)
	return matched, nil
}

// ListAll returns every well-formed order, newest first. Orders missing an
// address or pickup time are skipped; they cannot be fulfilled.
func (s *orderService) ListAll(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	valid := []models.Order{}
	for _, order := range orders {
		if order.Address != "" && order.PickupTime != "" {
			valid = append(valid, order)
		}
	}

	sortNewestFirst(valid)
	return valid, nil
}

func (s *orderService) Get(ctx context.Context, id int64) (*models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// UpdateStatus moves the order to one of the fulfilment statuses. Cancelled
// is only reachable through Cancel, and terminal orders cannot change.
func (s *orderService) UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (*models.Order, error) {
	if !models.ValidUpdateTarget(status) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	return s.mutateOrder(ctx, id, func(order *models.Order) error {
		if order.Status.Terminal() {
			return ErrOrderFinal
		}
		order.Status = status
		return nil
	})
}

// Cancel sets the order to Cancelled with the given reason. A blank reason
// leaves the order untouched.
func (s *orderService) Cancel(ctx context.Context, id int64, reason string) (*models.Order, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyCancelReason
	}

	return s.mutateOrder(ctx, id, func(order *models.Order) error {
		if order.Status.Terminal() {
			return ErrOrderFinal
		}
		order.Status = models.StatusCancelled
		order.CancelReason = reason
		return nil
	})
}

func (s *orderService) mutateOrder(ctx context.Context, id int64, mutate func(*models.Order) error) (*models.Order, error) {
	orders, err := s.orderRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if err := mutate(&orders[i]); err != nil {
			return nil, err
		}
		if err := s.orderRepo.SaveAll(ctx, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}

	return nil, ErrOrderNotFound
}

func sortNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].ID > orders[j].ID
	})
}
