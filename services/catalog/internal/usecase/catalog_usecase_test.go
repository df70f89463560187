package usecase

import (
	"context"
	"testing"

	"boost-market/pkg/logger"
	"boost-market/services/catalog/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPlanRepository is a mock implementation of PlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) Create(plan *entity.Plan) error {
	args := m.Called(plan)
	if args.Error(0) == nil {
		plan.ID = "plan-new"
	}
	return args.Error(0)
}

func (m *MockPlanRepository) GetByID(id string) (*entity.Plan, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Plan), args.Error(1)
}

func (m *MockPlanRepository) List(platform string) ([]*entity.Plan, error) {
	args := m.Called(platform)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Plan), args.Error(1)
}

func (m *MockPlanRepository) Update(plan *entity.Plan) error {
	args := m.Called(plan)
	return args.Error(0)
}

func (m *MockPlanRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockConfigRepository is a mock implementation of ConfigRepository
type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Get() (*entity.PaymentConfig, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentConfig), args.Error(1)
}

func (m *MockConfigRepository) Update(upiID, qrCodeURL, instructions string) (*entity.PaymentConfig, error) {
	args := m.Called(upiID, qrCodeURL, instructions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PaymentConfig), args.Error(1)
}

func TestCreatePlan_Success(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockConfig := new(MockConfigRepository)
	uc := NewCatalogUseCase(mockPlans, mockConfig, nil, nil, logger.New())

	mockPlans.On("Create", mock.MatchedBy(func(p *entity.Plan) bool {
		return p.Name == "Starter" && p.Platform == entity.PlatformInstagram
	})).Return(nil)

	plan, err := uc.CreatePlan(&entity.Plan{
		Name:     "Starter",
		Price:    199,
		Type:     entity.PlanTypeLikes,
		Platform: entity.PlatformInstagram,
	})

	assert.NoError(t, err)
	assert.Equal(t, "plan-new", plan.ID)
	mockPlans.AssertExpectations(t)
}

func TestCreatePlan_InvalidPlatform(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockConfig := new(MockConfigRepository)
	uc := NewCatalogUseCase(mockPlans, mockConfig, nil, nil, logger.New())

	plan, err := uc.CreatePlan(&entity.Plan{
		Name:     "Starter",
		Platform: entity.Platform("MYSPACE"),
	})

	assert.ErrorIs(t, err, entity.ErrInvalidPlatform)
	assert.Nil(t, plan)
	mockPlans.AssertNotCalled(t, "Create", mock.Anything)
}

func TestListPlans_FiltersByPlatform(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockConfig := new(MockConfigRepository)
	uc := NewCatalogUseCase(mockPlans, mockConfig, nil, nil, logger.New())

	mockPlans.On("List", "INSTAGRAM").Return([]*entity.Plan{
		{ID: "plan-1", Platform: entity.PlatformInstagram},
	}, nil)

	plans, err := uc.ListPlans(context.Background(), "INSTAGRAM")

	assert.NoError(t, err)
	assert.Len(t, plans, 1)
	mockPlans.AssertExpectations(t)
}

func TestDeletePlan_NotFound(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockConfig := new(MockConfigRepository)
	uc := NewCatalogUseCase(mockPlans, mockConfig, nil, nil, logger.New())

	mockPlans.On("GetByID", "missing").Return(nil, entity.ErrPlanNotFound)

	err := uc.DeletePlan("missing")

	assert.ErrorIs(t, err, entity.ErrPlanNotFound)
	mockPlans.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestGetPaymentConfig(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockConfig := new(MockConfigRepository)
	uc := NewCatalogUseCase(mockPlans, mockConfig, nil, nil, logger.New())

	mockConfig.On("Get").Return(&entity.PaymentConfig{UPIID: "admin@upi"}, nil)

	config, err := uc.GetPaymentConfig()

	assert.NoError(t, err)
	assert.Equal(t, "admin@upi", config.UPIID)
}

func TestUpdatePaymentConfig_TextOnly(t *testing.T) {
	mockPlans := new(MockPlanRepository)
	mockConfig := new(MockConfigRepository)
	uc := NewCatalogUseCase(mockPlans, mockConfig, nil, nil, logger.New())

	mockConfig.On("Update", "new@upi", "", "Pay here").Return(&entity.PaymentConfig{
		UPIID:        "new@upi",
		Instructions: "Pay here",
	}, nil)

	config, err := uc.UpdatePaymentConfig("new@upi", "Pay here", nil, "", "")

	assert.NoError(t, err)
	assert.Equal(t, "new@upi", config.UPIID)
	mockConfig.AssertExpectations(t)
}
