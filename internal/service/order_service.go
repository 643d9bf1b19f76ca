package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainerrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/repository"
)

// OrderInput carries the fields a customer submits when placing an order.
type OrderInput struct {
	ProductID   string
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Name        string
	Phone       string
	Address     string
}

// OrderService exposes order operations, split between customer-facing calls
// scoped by the caller's identity and administrative calls.
type OrderService interface {
	CreateOrder(ctx context.Context, userID uuid.UUID, input OrderInput) (*model.Order, error)
	ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error)
	CancelOrderByUser(ctx context.Context, id, userID uuid.UUID) (*model.Order, error)
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error)
	DeleteOrder(ctx context.Context, id uuid.UUID) error
}

type orderService struct {
	repo repository.OrderRepository
}

// NewOrderService builds an OrderService.
func NewOrderService(repo repository.OrderRepository) OrderService {
	return &orderService{repo: repo}
}

// CreateOrder places a single-line order for the given user, always starting
// in the pending status.
func (s *orderService) CreateOrder(ctx context.Context, userID uuid.UUID, input OrderInput) (*model.Order, error) {
	order := &model.Order{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
		Items: []model.OrderItem{
			{
				ProductID: input.ProductID,
				Name:      input.ProductName,
				Price:     input.Price,
				Quantity:  input.Quantity,
			},
		},
		Status: model.OrderStatusPending,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrdersByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

// CancelOrderByUser cancels an order on behalf of its owner. Orders that have
// shipped or been delivered can no longer be cancelled.
func (s *orderService) CancelOrderByUser(ctx context.Context, id, userID uuid.UUID) (*model.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrNotOrderOwner
	}
	switch order.Status {
	case model.OrderStatusShipped, model.OrderStatusDelivered:
		return nil, domainerrors.ErrOrderNotCancellable
	case model.OrderStatusCancelled:
		return nil, domainerrors.ErrOrderAlreadyCancelled
	}

	order.Status = model.OrderStatusCancelled
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	return s.repo.List(ctx)
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status string) (*model.Order, error) {
	if !model.ValidOrderStatus(status) {
		return nil, domainerrors.ErrInvalidOrderStatus
	}

	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	order.Status = status
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetOrder(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
