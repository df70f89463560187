package usecase

import (
	"testing"

	"boost-market/pkg/logger"
	"boost-market/services/simulation/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a mock implementation of PostRepository
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(post *entity.Post) error {
	args := m.Called(post)
	if args.Error(0) == nil {
		post.ID = "post-new"
	}
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(id string) (*entity.Post, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) ListByUser(userID string) ([]*entity.Post, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

func (m *MockPostRepository) UpdateCounters(id string, views, likes, followers int64, engagementRate float64, proxiesUsed int) (*entity.Post, error) {
	args := m.Called(id, views, likes, followers, engagementRate, proxiesUsed)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockProxyRepository is a mock implementation of ProxyRepository
type MockProxyRepository struct {
	mock.Mock
}

func (m *MockProxyRepository) Create(proxy *entity.Proxy) error {
	args := m.Called(proxy)
	if args.Error(0) == nil {
		proxy.ID = "proxy-new"
	}
	return args.Error(0)
}

func (m *MockProxyRepository) List() ([]*entity.Proxy, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Proxy), args.Error(1)
}

func (m *MockProxyRepository) Update(proxy *entity.Proxy) error {
	args := m.Called(proxy)
	return args.Error(0)
}

func (m *MockProxyRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func TestCreatePost_DefaultCaption(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockProxies := new(MockProxyRepository)
	uc := NewSimulationUseCase(mockPosts, mockProxies, logger.New())

	mockPosts.On("Create", mock.MatchedBy(func(p *entity.Post) bool {
		return p.Caption == "Untitled Post" && p.EngagementRate == 4.5
	})).Return(nil)

	post, err := uc.CreatePost("user-1", "https://instagram.com/p/abc", "")

	assert.NoError(t, err)
	assert.Equal(t, "Untitled Post", post.Caption)
	mockPosts.AssertExpectations(t)
}

func TestGetPost_OwnerOnly(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockProxies := new(MockProxyRepository)
	uc := NewSimulationUseCase(mockPosts, mockProxies, logger.New())

	mockPosts.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)

	post, err := uc.GetPost("post-1", "intruder", "USER")
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)
	assert.Nil(t, post)

	post, err = uc.GetPost("post-1", "intruder", "ADMIN")
	assert.NoError(t, err)
	assert.Equal(t, "post-1", post.ID)
}

func TestUpdateCounters_ChecksOwnership(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockProxies := new(MockProxyRepository)
	uc := NewSimulationUseCase(mockPosts, mockProxies, logger.New())

	mockPosts.On("GetByID", "post-1").Return(&entity.Post{ID: "post-1", UserID: "user-1"}, nil)
	mockPosts.On("UpdateCounters", "post-1", int64(1000), int64(250), int64(40), 5.2, 3).
		Return(&entity.Post{ID: "post-1", SimulatedViews: 1000}, nil)

	post, err := uc.UpdateCounters("post-1", "user-1", "USER", UpdateCountersInput{
		SimulatedViews:     1000,
		SimulatedLikes:     250,
		SimulatedFollowers: 40,
		EngagementRate:     5.2,
		ProxiesUsed:        3,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(1000), post.SimulatedViews)

	_, err = uc.UpdateCounters("post-1", "intruder", "USER", UpdateCountersInput{})
	assert.ErrorIs(t, err, entity.ErrNotAuthorized)
}

func TestCreateProxy_DefaultsToActive(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockProxies := new(MockProxyRepository)
	uc := NewSimulationUseCase(mockPosts, mockProxies, logger.New())

	mockProxies.On("Create", mock.MatchedBy(func(p *entity.Proxy) bool {
		return p.Status == entity.ProxyStatusActive
	})).Return(nil)

	proxy, err := uc.CreateProxy(&entity.Proxy{IP: "10.0.0.1", Port: "8080", Country: "IN"})

	assert.NoError(t, err)
	assert.Equal(t, entity.ProxyStatusActive, proxy.Status)
}

func TestCreateProxy_InvalidStatus(t *testing.T) {
	mockPosts := new(MockPostRepository)
	mockProxies := new(MockProxyRepository)
	uc := NewSimulationUseCase(mockPosts, mockProxies, logger.New())

	proxy, err := uc.CreateProxy(&entity.Proxy{
		IP:      "10.0.0.1",
		Port:    "8080",
		Country: "IN",
		Status:  entity.ProxyStatus("Broken"),
	})

	assert.ErrorIs(t, err, entity.ErrInvalidStatus)
	assert.Nil(t, proxy)
	mockProxies.AssertNotCalled(t, "Create", mock.Anything)
}
