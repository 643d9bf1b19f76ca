package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"storefront/internal/auth"
	"storefront/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newTestAuthService(repo *MockUserRepository) (AuthService, *auth.JWTService) {
	jwtService := auth.NewJWTService("test-secret", time.Hour)
	return NewAuthService(repo, jwtService), jwtService
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		password      string
		userName      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful registration",
			email:    "a@x.com",
			password: "secret1",
			userName: "A",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:     "email already registered",
			email:    "existing@x.com",
			password: "secret1",
			userName: "B",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@x.com").Return(&model.User{Email: "existing@x.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
		{
			name:     "duplicate insert loses race",
			email:    "racer@x.com",
			password: "secret1",
			userName: "C",
			setupMock: func(m *MockUserRepository) {
				// Both racers pass the pre-check; the unique index rejects
				// the second insert.
				m.On("FindByEmail", mock.Anything, "racer@x.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(gorm.ErrDuplicatedKey)
			},
			expectedError: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service, jwtService := newTestAuthService(mockRepo)
			result, err := service.Register(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, tt.email, result.Email)
				assert.Equal(t, model.RoleUser, result.Role)
				assert.NotEmpty(t, result.Token)

				// The issued token round-trips to the new account.
				claims, err := jwtService.Validate(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, result.ID, claims.Subject)
				assert.Equal(t, tt.email, claims.Email)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Register_NeverStoresPlaintext(t *testing.T) {
	mockRepo := new(MockUserRepository)

	var created *model.User
	mockRepo.On("FindByEmail", mock.Anything, "a@x.com").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).Return(nil)

	service, _ := newTestAuthService(mockRepo)
	_, err := service.Register(context.Background(), "A", "a@x.com", "secret1")
	assert.NoError(t, err)

	assert.NotNil(t, created)
	assert.NotEqual(t, "secret1", created.PasswordHash)
	assert.True(t, auth.CheckPassword("secret1", created.PasswordHash))
}

func TestAuthService_Login(t *testing.T) {
	hashed, err := auth.HashPassword("secret1")
	assert.NoError(t, err)

	accountID := uuid.New()
	account := &model.User{
		ID:           accountID,
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: hashed,
		Role:         model.RoleUser,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(account, nil)
			},
			expectedError: nil,
		},
		{
			name:     "wrong password",
			email:    "a@x.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(account, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "empty password",
			email:    "a@x.com",
			password: "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@x.com").Return(account, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "nobody@x.com",
			password: "secret1",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@x.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service, jwtService := newTestAuthService(mockRepo)
			result, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				// Wrong password and unknown email are the same error.
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, result)
				assert.Equal(t, accountID.String(), result.ID)
				assert.Equal(t, model.RoleUser, result.Role)

				claims, err := jwtService.Validate(result.Token)
				assert.NoError(t, err)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_ResolveAccount(t *testing.T) {
	accountID := uuid.New()
	account := &model.User{ID: accountID, Email: "a@x.com", Role: model.RoleUser}

	tests := []struct {
		name      string
		id        string
		setupMock func(*MockUserRepository)
		expected  *model.User
	}{
		{
			name: "existing account",
			id:   accountID.String(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, accountID).Return(account, nil)
			},
			expected: account,
		},
		{
			name: "deleted account",
			id:   accountID.String(),
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, accountID).Return(nil, gorm.ErrRecordNotFound)
			},
			expected: nil,
		},
		{
			name:      "malformed id",
			id:        "not-a-uuid",
			setupMock: func(m *MockUserRepository) {},
			expected:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			service, _ := newTestAuthService(mockRepo)
			got, err := service.ResolveAccount(context.Background(), tt.id)

			// Absence is a normal outcome, never an error.
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			mockRepo.AssertExpectations(t)
		})
	}
}
