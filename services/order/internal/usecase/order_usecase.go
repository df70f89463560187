package usecase

import (
	"fmt"
	"io"

	"boost-market/pkg/logger"
	"boost-market/services/order/internal/entity"
	"boost-market/services/order/internal/repo/persistent"
)

// Uploader stores a proof-of-payment artifact and returns its reference path.
// The order flow persists the returned string verbatim.
type Uploader interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

// ReviewPublisher notifies the admin surface about newly pending work.
type ReviewPublisher interface {
	PublishReviewTask(task map[string]interface{}) error
}

type CreateOrderInput struct {
	PlanID        string
	Amount        float64
	PaymentMethod string
	UTR           string
	Video         string
	Screenshot    io.Reader
	ScreenshotKey string
	ContentType   string
}

type OrderUseCase interface {
	CreateOrder(userID string, in CreateOrderInput) (*entity.Order, error)
	ListOrders(userID, role string) ([]*entity.Order, error)
	ListMyOrders(userID string) ([]*entity.Order, error)
	GetOrder(orderID, userID, role string) (*entity.Order, error)
	UpdateStatus(orderID string, status entity.OrderStatus, rejectionReason string) (*entity.Order, error)
	UpdateFulfilment(orderID string, status entity.FulfilmentStatus) (*entity.Order, error)
}

type orderUseCase struct {
	orderRepo persistent.OrderRepository
	planRepo  persistent.PlanRepository
	uploader  Uploader
	publisher ReviewPublisher
	logger    *logger.Logger
}

func NewOrderUseCase(
	orderRepo persistent.OrderRepository,
	planRepo persistent.PlanRepository,
	uploader Uploader,
	publisher ReviewPublisher,
	logger *logger.Logger,
) OrderUseCase {
	return &orderUseCase{
		orderRepo: orderRepo,
		planRepo:  planRepo,
		uploader:  uploader,
		publisher: publisher,
		logger:    logger,
	}
}

func (uc *orderUseCase) CreateOrder(userID string, in CreateOrderInput) (*entity.Order, error) {
	order := &entity.Order{
		UserID:           userID,
		PlanID:           in.PlanID,
		Amount:           in.Amount,
		UTR:              in.UTR,
		Video:            in.Video,
		Status:           entity.OrderStatusPending,
		FulfilmentStatus: entity.FulfilmentPending,
	}

	if in.PaymentMethod == entity.PaymentMethodWallet {
		description := fmt.Sprintf("Purchase of plan: %s", uc.describePlan(in.PlanID))
		if err := uc.orderRepo.CreateWalletOrder(order, description); err != nil {
			if err != entity.ErrInsufficientBalance {
				uc.logger.Error("Failed to create wallet order: %v", err)
			}
			return nil, err
		}
		return order, nil
	}

	if in.Screenshot != nil {
		path, err := uc.uploader.UploadFile(in.ScreenshotKey, in.Screenshot, in.ContentType)
		if err != nil {
			uc.logger.Error("Failed to upload payment screenshot: %v", err)
			return nil, fmt.Errorf("failed to store payment screenshot: %w", err)
		}
		order.ScreenshotPath = path
	}

	if err := uc.orderRepo.Create(order); err != nil {
		uc.logger.Error("Failed to create order: %v", err)
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	uc.notifyPendingReview("order", order.ID, order.UserID, order.Amount)
	return order, nil
}

func (uc *orderUseCase) ListOrders(userID, role string) ([]*entity.Order, error) {
	owner := userID
	if role == "ADMIN" {
		owner = ""
	}

	orders, err := uc.orderRepo.ListVisible(owner)
	if err != nil {
		uc.logger.Error("Failed to list orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (uc *orderUseCase) ListMyOrders(userID string) ([]*entity.Order, error) {
	orders, err := uc.orderRepo.ListByUser(userID)
	if err != nil {
		uc.logger.Error("Failed to list user orders: %v", err)
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (uc *orderUseCase) GetOrder(orderID, userID, role string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if role != "ADMIN" && order.UserID != userID {
		return nil, entity.ErrNotAuthorized
	}
	return order, nil
}

func (uc *orderUseCase) UpdateStatus(orderID string, status entity.OrderStatus, rejectionReason string) (*entity.Order, error) {
	if !status.Valid() {
		return nil, entity.ErrInvalidStatus
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(status) {
		if order.Status.Terminal() {
			return nil, entity.ErrOrderProcessed
		}
		return nil, entity.ErrInvalidStatus
	}

	// Approval is a pure status flag: wallet money moved at creation time
	// and manual orders never touch the balance.
	return uc.orderRepo.UpdateStatus(orderID, status, rejectionReason)
}

func (uc *orderUseCase) UpdateFulfilment(orderID string, status entity.FulfilmentStatus) (*entity.Order, error) {
	if !status.Valid() {
		return nil, entity.ErrInvalidFulfilment
	}
	return uc.orderRepo.UpdateFulfilment(orderID, status)
}

// describePlan composes the human-readable purchase description. A missing
// plan falls back to the raw id rather than blocking the order.
func (uc *orderUseCase) describePlan(planID string) string {
	plan, err := uc.planRepo.GetByID(planID)
	if err != nil || plan == nil {
		return planID
	}
	return fmt.Sprintf("%s - %s", plan.Platform, plan.Name)
}

func (uc *orderUseCase) notifyPendingReview(kind, id, userID string, amount float64) {
	if uc.publisher == nil {
		return
	}
	go func() {
		task := map[string]interface{}{
			"type":     kind,
			"id":       id,
			"user_id":  userID,
			"amount":   amount,
			"priority": 5,
		}
		if err := uc.publisher.PublishReviewTask(task); err != nil {
			uc.logger.Error("Failed to publish review task: %v", err)
		}
	}()
}
