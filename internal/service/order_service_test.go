package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	domainerrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockOrderRepository is a mock implementation of OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Order), args.Error(1)
}

func (m *MockOrderRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) List(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockOrderRepository) Update(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockRepo := new(MockOrderRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

	service := NewOrderService(mockRepo)
	userID := uuid.New()

	order, err := service.CreateOrder(context.Background(), userID, OrderInput{
		ProductID:   uuid.NewString(),
		ProductName: "Wireless Mouse",
		Quantity:    2,
		Price:       decimal.NewFromFloat(19.99),
		Name:        "A",
		Phone:       "0123456789",
		Address:     "1 Main St",
	})

	assert.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)

	mockRepo.AssertExpectations(t)
}

func TestOrderService_CancelOrderByUser(t *testing.T) {
	ownerID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name          string
		status        string
		caller        uuid.UUID
		expectUpdate  bool
		expectedError error
	}{
		{name: "pending order cancels", status: model.OrderStatusPending, caller: ownerID, expectUpdate: true},
		{name: "not the owner", status: model.OrderStatusPending, caller: otherID, expectedError: domainerrors.ErrNotOrderOwner},
		{name: "shipped order", status: model.OrderStatusShipped, caller: ownerID, expectedError: domainerrors.ErrOrderNotCancellable},
		{name: "delivered order", status: model.OrderStatusDelivered, caller: ownerID, expectedError: domainerrors.ErrOrderNotCancellable},
		{name: "already cancelled", status: model.OrderStatusCancelled, caller: ownerID, expectedError: domainerrors.ErrOrderAlreadyCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orderID := uuid.New()
			mockRepo := new(MockOrderRepository)
			mockRepo.On("FindByID", mock.Anything, orderID).Return(&model.Order{
				ID:     orderID,
				UserID: ownerID,
				Status: tt.status,
			}, nil)
			if tt.expectUpdate {
				mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)
			}

			service := NewOrderService(mockRepo)
			order, err := service.CancelOrderByUser(context.Background(), orderID, tt.caller)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.OrderStatusCancelled, order.Status)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderID := uuid.New()

	t.Run("valid status", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByID", mock.Anything, orderID).Return(&model.Order{
			ID:     orderID,
			Status: model.OrderStatusPending,
		}, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Order")).Return(nil)

		service := NewOrderService(mockRepo)
		order, err := service.UpdateOrderStatus(context.Background(), orderID, model.OrderStatusShipped)

		assert.NoError(t, err)
		assert.Equal(t, model.OrderStatusShipped, order.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown status rejected before lookup", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)

		service := NewOrderService(mockRepo)
		order, err := service.UpdateOrderStatus(context.Background(), orderID, "returned")

		assert.Equal(t, domainerrors.ErrInvalidOrderStatus, err)
		assert.Nil(t, order)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)

		service := NewOrderService(mockRepo)
		order, err := service.UpdateOrderStatus(context.Background(), orderID, model.OrderStatusShipped)

		assert.Equal(t, domainerrors.ErrOrderNotFound, err)
		assert.Nil(t, order)
		mockRepo.AssertExpectations(t)
	})
}

func TestOrderService_DeleteOrder(t *testing.T) {
	orderID := uuid.New()

	t.Run("existing order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByID", mock.Anything, orderID).Return(&model.Order{ID: orderID}, nil)
		mockRepo.On("Delete", mock.Anything, orderID).Return(nil)

		service := NewOrderService(mockRepo)
		assert.NoError(t, service.DeleteOrder(context.Background(), orderID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing order", func(t *testing.T) {
		mockRepo := new(MockOrderRepository)
		mockRepo.On("FindByID", mock.Anything, orderID).Return(nil, gorm.ErrRecordNotFound)

		service := NewOrderService(mockRepo)
		assert.Equal(t, domainerrors.ErrOrderNotFound, service.DeleteOrder(context.Background(), orderID))
		mockRepo.AssertExpectations(t)
	})
}
