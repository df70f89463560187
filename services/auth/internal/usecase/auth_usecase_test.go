package usecase

import (
	"errors"
	"testing"

	"boost-market/pkg/jwt"
	"boost-market/pkg/logger"
	"boost-market/services/auth/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *entity.User) error {
	args := m.Called(user)
	if args.Error(0) == nil {
		user.ID = "user-new"
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(id string) (*entity.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) GetByNumber(number string) (*entity.User, error) {
	args := m.Called(number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(id, name string) error {
	args := m.Called(id, name)
	return args.Error(0)
}

func (m *MockUserRepository) List() ([]*entity.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserRepository) AddSocialAccount(account *entity.SocialAccount) error {
	args := m.Called(account)
	return args.Error(0)
}

func newTestUseCase(repo *MockUserRepository) AuthUseCase {
	return NewAuthUseCase(repo, jwt.NewService("test-secret"), logger.New())
}

func TestRegister_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	mockRepo.On("GetByNumber", "9876543210").Return(nil, errors.New("record not found"))
	mockRepo.On("Create", mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Alice" && u.Number == "9876543210" && u.Role == entity.RoleUser
	})).Return(nil)

	user, token, err := uc.Register("Alice", "9876543210", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Alice", user.Name)
	assert.Empty(t, user.Password)
	mockRepo.AssertExpectations(t)
}

func TestRegister_DuplicateNumber(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	mockRepo.On("GetByNumber", "9876543210").Return(&entity.User{ID: "user-1"}, nil)

	user, token, err := uc.Register("Alice", "9876543210", "secret123")

	assert.Error(t, err)
	assert.Equal(t, "user with this number already exists", err.Error())
	assert.Nil(t, user)
	assert.Empty(t, token)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestRegister_HashesPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	var stored string
	mockRepo.On("GetByNumber", "9876543210").Return(nil, errors.New("record not found"))
	mockRepo.On("Create", mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(0).(*entity.User).Password
	}).Return(nil)

	_, _, err := uc.Register("Alice", "9876543210", "secret123")

	assert.NoError(t, err)
	assert.NotEqual(t, "secret123", stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("secret123")))
}

func TestLogin_Success(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockRepo.On("GetByNumber", "9876543210").Return(&entity.User{
		ID:       "user-1",
		Number:   "9876543210",
		Password: string(hashed),
		Role:     entity.RoleUser,
	}, nil)

	user, token, err := uc.Login("9876543210", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
}

func TestLogin_WrongPassword(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	mockRepo.On("GetByNumber", "9876543210").Return(&entity.User{
		ID:       "user-1",
		Password: string(hashed),
	}, nil)

	user, token, err := uc.Login("9876543210", "wrong")

	assert.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestLogin_UnknownNumber(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	mockRepo.On("GetByNumber", "0000000000").Return(nil, errors.New("record not found"))

	_, _, err := uc.Login("0000000000", "secret123")

	assert.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
}

func TestLinkSocialAccount(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	mockRepo.On("AddSocialAccount", mock.MatchedBy(func(a *entity.SocialAccount) bool {
		return a.UserID == "user-1" && a.Name == "instagram" && a.Link == "https://instagram.com/alice"
	})).Return(nil)
	mockRepo.On("GetByID", "user-1").Return(&entity.User{
		ID: "user-1",
		SocialAccounts: []entity.SocialAccount{
			{Name: "instagram", Link: "https://instagram.com/alice"},
		},
	}, nil)

	user, err := uc.LinkSocialAccount("user-1", "instagram", "https://instagram.com/alice")

	assert.NoError(t, err)
	assert.Len(t, user.SocialAccounts, 1)
	mockRepo.AssertExpectations(t)
}

func TestUpdateProfile(t *testing.T) {
	mockRepo := new(MockUserRepository)
	uc := newTestUseCase(mockRepo)

	mockRepo.On("UpdateName", "user-1", "Alice B").Return(nil)
	mockRepo.On("GetByID", "user-1").Return(&entity.User{ID: "user-1", Name: "Alice B"}, nil)

	user, err := uc.UpdateProfile("user-1", "Alice B")

	assert.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)
}
