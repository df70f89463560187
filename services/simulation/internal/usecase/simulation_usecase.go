package usecase

import (
	"fmt"

	"boost-market/pkg/logger"
	"boost-market/services/simulation/internal/entity"
	"boost-market/services/simulation/internal/repo/persistent"
)

type UpdateCountersInput struct {
	SimulatedViews     int64
	SimulatedLikes     int64
	SimulatedFollowers int64
	EngagementRate     float64
	ProxiesUsed        int
}

type SimulationUseCase interface {
	CreatePost(userID, url, caption string) (*entity.Post, error)
	ListMyPosts(userID string) ([]*entity.Post, error)
	GetPost(postID, userID, role string) (*entity.Post, error)
	UpdateCounters(postID, userID, role string, in UpdateCountersInput) (*entity.Post, error)
	DeletePost(postID, userID, role string) error

	CreateProxy(proxy *entity.Proxy) (*entity.Proxy, error)
	ListProxies() ([]*entity.Proxy, error)
	UpdateProxy(proxy *entity.Proxy) (*entity.Proxy, error)
	DeleteProxy(proxyID string) error
}

type simulationUseCase struct {
	postRepo  persistent.PostRepository
	proxyRepo persistent.ProxyRepository
	logger    *logger.Logger
}

func NewSimulationUseCase(
	postRepo persistent.PostRepository,
	proxyRepo persistent.ProxyRepository,
	logger *logger.Logger,
) SimulationUseCase {
	return &simulationUseCase{
		postRepo:  postRepo,
		proxyRepo: proxyRepo,
		logger:    logger,
	}
}

func (uc *simulationUseCase) CreatePost(userID, url, caption string) (*entity.Post, error) {
	if caption == "" {
		caption = "Untitled Post"
	}

	post := &entity.Post{
		UserID:         userID,
		URL:            url,
		Caption:        caption,
		EngagementRate: 4.5,
	}

	if err := uc.postRepo.Create(post); err != nil {
		uc.logger.Error("Failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (uc *simulationUseCase) ListMyPosts(userID string) ([]*entity.Post, error) {
	posts, err := uc.postRepo.ListByUser(userID)
	if err != nil {
		uc.logger.Error("Failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (uc *simulationUseCase) GetPost(postID, userID, role string) (*entity.Post, error) {
	post, err := uc.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}

	if role != "ADMIN" && post.UserID != userID {
		return nil, entity.ErrNotAuthorized
	}
	return post, nil
}

// UpdateCounters overwrites the simulated growth numbers. The dashboard
// pushes these periodically; they carry no meaning beyond display.
func (uc *simulationUseCase) UpdateCounters(postID, userID, role string, in UpdateCountersInput) (*entity.Post, error) {
	if _, err := uc.GetPost(postID, userID, role); err != nil {
		return nil, err
	}

	return uc.postRepo.UpdateCounters(
		postID,
		in.SimulatedViews,
		in.SimulatedLikes,
		in.SimulatedFollowers,
		in.EngagementRate,
		in.ProxiesUsed,
	)
}

func (uc *simulationUseCase) DeletePost(postID, userID, role string) error {
	if _, err := uc.GetPost(postID, userID, role); err != nil {
		return err
	}
	return uc.postRepo.Delete(postID)
}

func (uc *simulationUseCase) CreateProxy(proxy *entity.Proxy) (*entity.Proxy, error) {
	if proxy.Status == "" {
		proxy.Status = entity.ProxyStatusActive
	}
	if !proxy.Status.Valid() {
		return nil, entity.ErrInvalidStatus
	}

	if err := uc.proxyRepo.Create(proxy); err != nil {
		uc.logger.Error("Failed to create proxy: %v", err)
		return nil, fmt.Errorf("failed to create proxy: %w", err)
	}
	return proxy, nil
}

func (uc *simulationUseCase) ListProxies() ([]*entity.Proxy, error) {
	proxies, err := uc.proxyRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list proxies: %v", err)
		return nil, fmt.Errorf("failed to list proxies: %w", err)
	}
	return proxies, nil
}

func (uc *simulationUseCase) UpdateProxy(proxy *entity.Proxy) (*entity.Proxy, error) {
	if proxy.Status != "" && !proxy.Status.Valid() {
		return nil, entity.ErrInvalidStatus
	}

	if err := uc.proxyRepo.Update(proxy); err != nil {
		return nil, err
	}
	return proxy, nil
}

func (uc *simulationUseCase) DeleteProxy(proxyID string) error {
	return uc.proxyRepo.Delete(proxyID)
}
