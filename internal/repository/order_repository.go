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

type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	SaveAll(ctx context.Context, orders []models.Order) error
	LastID(ctx context.Context) (int64, error)
	SetLastID(ctx context.Context, id int64) error
}

type orderRepository struct {
	store storage.Store
}

func NewOrderRepository(store storage.Store) OrderRepository {
	return &orderRepository{store: store}
}

// GetAll loads the order snapshot. A missing or malformed value is treated
// as no orders rather than an error.
func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	data, err := r.store.Get(ctx, storage.KeyOrders)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []models.Order{}, nil
		}
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return []models.Order{}, nil
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (r *orderRepository) SaveAll(ctx context.Context, orders []models.Order) error {
	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("failed to marshal orders: %w", err)
	}
	return r.store.Set(ctx, storage.KeyOrders, data)
}

// LastID returns the highest order id ever assigned. The counter is stored
// separately from the order list so ids stay monotonic even after orders are
// deleted. Missing or malformed values read as 0.
func (r *orderRepository) LastID(ctx context.Context) (int64, error) {
	data, err := r.store.Get(ctx, storage.KeyLastOrderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to load last order id: %w", err)
	}

	id, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return 0, nil
	}
	return id, nil
}

func (r *orderRepository) SetLastID(ctx context.Context, id int64) error {
	return r.store.Set(ctx, storage.KeyLastOrderID, []byte(strconv.FormatInt(id, 10)))
}
