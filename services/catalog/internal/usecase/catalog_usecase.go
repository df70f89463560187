package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"boost-market/pkg/logger"
	"boost-market/services/catalog/internal/entity"
	"boost-market/services/catalog/internal/repo/persistent"

	"github.com/redis/go-redis/v9"
)

const planCacheTTL = 10 * time.Minute

// Uploader stores the UPI QR code image and returns its reference path.
type Uploader interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

type CatalogUseCase interface {
	CreatePlan(plan *entity.Plan) (*entity.Plan, error)
	GetPlan(planID string) (*entity.Plan, error)
	ListPlans(ctx context.Context, platform string) ([]*entity.Plan, error)
	UpdatePlan(plan *entity.Plan) (*entity.Plan, error)
	DeletePlan(planID string) error
	GetPaymentConfig() (*entity.PaymentConfig, error)
	UpdatePaymentConfig(upiID, instructions string, qrCode io.Reader, qrCodeKey, contentType string) (*entity.PaymentConfig, error)
}

type catalogUseCase struct {
	planRepo    persistent.PlanRepository
	configRepo  persistent.ConfigRepository
	uploader    Uploader
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewCatalogUseCase(
	planRepo persistent.PlanRepository,
	configRepo persistent.ConfigRepository,
	uploader Uploader,
	redisClient *redis.Client,
	logger *logger.Logger,
) CatalogUseCase {
	return &catalogUseCase{
		planRepo:    planRepo,
		configRepo:  configRepo,
		uploader:    uploader,
		redisClient: redisClient,
		logger:      logger,
	}
}

func (uc *catalogUseCase) CreatePlan(plan *entity.Plan) (*entity.Plan, error) {
	if !plan.Platform.Valid() {
		return nil, entity.ErrInvalidPlatform
	}

	if err := uc.planRepo.Create(plan); err != nil {
		uc.logger.Error("Failed to create plan: %v", err)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.invalidatePlanCache(string(plan.Platform))
	return plan, nil
}

func (uc *catalogUseCase) GetPlan(planID string) (*entity.Plan, error) {
	return uc.planRepo.GetByID(planID)
}

// ListPlans serves the public catalog through a redis cache keyed by
// platform; a cache miss falls through to Postgres and repopulates.
func (uc *catalogUseCase) ListPlans(ctx context.Context, platform string) ([]*entity.Plan, error) {
	cacheKey := planCacheKey(platform)

	if uc.redisClient != nil {
		if cached, err := uc.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			var plans []*entity.Plan
			if err := json.Unmarshal([]byte(cached), &plans); err == nil {
				return plans, nil
			}
		}
	}

	plans, err := uc.planRepo.List(platform)
	if err != nil {
		uc.logger.Error("Failed to list plans: %v", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	if uc.redisClient != nil {
		if plansJSON, err := json.Marshal(plans); err == nil {
			uc.redisClient.Set(ctx, cacheKey, plansJSON, planCacheTTL)
		}
	}

	return plans, nil
}

func (uc *catalogUseCase) UpdatePlan(plan *entity.Plan) (*entity.Plan, error) {
	if plan.Platform != "" && !plan.Platform.Valid() {
		return nil, entity.ErrInvalidPlatform
	}

	if err := uc.planRepo.Update(plan); err != nil {
		return nil, err
	}

	uc.invalidatePlanCache(string(plan.Platform))
	return plan, nil
}

func (uc *catalogUseCase) DeletePlan(planID string) error {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil {
		return err
	}

	if err := uc.planRepo.Delete(planID); err != nil {
		return err
	}

	uc.invalidatePlanCache(string(plan.Platform))
	return nil
}

func (uc *catalogUseCase) GetPaymentConfig() (*entity.PaymentConfig, error) {
	return uc.configRepo.Get()
}

func (uc *catalogUseCase) UpdatePaymentConfig(upiID, instructions string, qrCode io.Reader, qrCodeKey, contentType string) (*entity.PaymentConfig, error) {
	qrCodeURL := ""
	if qrCode != nil {
		url, err := uc.uploader.UploadFile(qrCodeKey, qrCode, contentType)
		if err != nil {
			uc.logger.Error("Failed to upload QR code: %v", err)
			return nil, fmt.Errorf("failed to store QR code: %w", err)
		}
		qrCodeURL = url
	}

	return uc.configRepo.Update(upiID, qrCodeURL, instructions)
}

func (uc *catalogUseCase) invalidatePlanCache(platform string) {
	if uc.redisClient == nil {
		return
	}
	ctx := context.Background()
	keys := []string{planCacheKey("")}
	if platform != "" {
		keys = append(keys, planCacheKey(platform))
	}
	if err := uc.redisClient.Del(ctx, keys...).Err(); err != nil {
		uc.logger.Warn("Failed to invalidate plan cache: %v", err)
	}
}

func planCacheKey(platform string) string {
	if platform == "" {
		return "plans:all"
	}
	return fmt.Sprintf("plans:%s", platform)
}
