package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/cache"
	domainerrors "storefront/internal/errors"
	"storefront/internal/model"
)

// MockProductRepository is a mock implementation of ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// testCache points at a closed port; the wrapper treats every operation as a
// cache miss.
func testCache() *cache.Client {
	return cache.New("127.0.0.1:1", "", 0)
}

func TestProductService_CreateProduct_NormalizesCategory(t *testing.T) {
	mockRepo := new(MockProductRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	service := NewProductService(mockRepo, testCache())
	created, err := service.CreateProduct(context.Background(), &model.Product{
		Name:     "Wireless Mouse",
		Price:    decimal.NewFromFloat(19.99),
		Category: "  Accessories ",
	})

	assert.NoError(t, err)
	assert.Equal(t, "accessories", created.Category)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProduct(t *testing.T) {
	productID := uuid.New()

	t.Run("existing product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, productID).Return(&model.Product{
			ID:   productID,
			Name: "Wireless Mouse",
		}, nil)

		service := NewProductService(mockRepo, testCache())
		product, err := service.GetProduct(context.Background(), productID)

		assert.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing product", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

		service := NewProductService(mockRepo, testCache())
		product, err := service.GetProduct(context.Background(), productID)

		assert.Equal(t, domainerrors.ErrProductNotFound, err)
		assert.Nil(t, product)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	productID := uuid.New()
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, productID).Return(&model.Product{
		ID:       productID,
		Name:     "Wireless Mouse",
		Category: "accessories",
		Stock:    10,
	}, nil)
	mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)

	service := NewProductService(mockRepo, testCache())
	updated, err := service.UpdateProduct(context.Background(), productID, &model.Product{
		Name:     "Wireless Mouse v2",
		Price:    decimal.NewFromFloat(24.99),
		Category: "Accessories",
		Stock:    8,
		IsActive: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, productID, updated.ID)
	assert.Equal(t, "Wireless Mouse v2", updated.Name)
	assert.Equal(t, "accessories", updated.Category)
	assert.Equal(t, 8, updated.Stock)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct_Missing(t *testing.T) {
	productID := uuid.New()
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindByID", mock.Anything, productID).Return(nil, gorm.ErrRecordNotFound)

	service := NewProductService(mockRepo, testCache())
	assert.Equal(t, domainerrors.ErrProductNotFound, service.DeleteProduct(context.Background(), productID))
	mockRepo.AssertExpectations(t)
}
