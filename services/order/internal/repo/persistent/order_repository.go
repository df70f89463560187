package persistent

import (
	"errors"

	"boost-market/services/order/internal/entity"
	"boost-market/services/order/internal/model"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *entity.Order) error
	CreateWalletOrder(order *entity.Order, description string) error
	GetByID(id string) (*entity.Order, error)
	ListVisible(userID string) ([]*entity.Order, error)
	ListByUser(userID string) ([]*entity.Order, error)
	UpdateStatus(id string, status entity.OrderStatus, rejectionReason string) (*entity.Order, error)
	UpdateFulfilment(id string, status entity.FulfilmentStatus) (*entity.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *entity.Order) error {
	orderModel := ToOrderModel(order)
	if err := r.db.Create(orderModel).Error; err != nil {
		return err
	}
	*order = *ToOrderEntity(orderModel)
	return nil
}

// CreateWalletOrder settles a wallet-funded purchase in a single database
// transaction: conditional debit, APPROVED purchase record, APPROVED order.
// The debit checks and decrements the balance in one UPDATE so two
// concurrent purchases can never both pass the balance check.
func (r *orderRepository) CreateWalletOrder(order *entity.Order, description string) error {
	orderModel := ToOrderModel(order)
	orderModel.Status = string(entity.OrderStatusApproved)
	orderModel.UTR = entity.WalletPaymentUTR
	orderModel.ScreenshotPath = ""

	err := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.UserModel{}).
			Where("id = ? AND wallet_balance >= ?", order.UserID, order.Amount).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance - ?", order.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrInsufficientBalance
		}

		txn := &model.WalletTransactionModel{
			UserID:      order.UserID,
			Amount:      order.Amount,
			Type:        "PURCHASE",
			Status:      "APPROVED",
			Description: description,
		}
		if err := tx.Create(txn).Error; err != nil {
			return err
		}

		return tx.Create(orderModel).Error
	})
	if err != nil {
		return err
	}

	*order = *ToOrderEntity(orderModel)
	return nil
}

func (r *orderRepository) GetByID(id string) (*entity.Order, error) {
	var orderModel model.OrderModel
	if err := r.db.Where("id = ?", id).First(&orderModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrOrderNotFound
		}
		return nil, err
	}

	order := ToOrderEntity(&orderModel)
	r.attachUser(order)
	return order, nil
}

// ListVisible returns non-REJECTED orders, newest first. An empty userID
// returns every user's orders (admin view); rejected orders surface through
// the per-user history instead.
func (r *orderRepository) ListVisible(userID string) ([]*entity.Order, error) {
	query := r.db.Where("status <> ?", string(entity.OrderStatusRejected)).Order("created_at DESC")
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var orderModels []model.OrderModel
	if err := query.Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = ToOrderEntity(&orderModels[i])
		r.attachUser(orders[i])
	}
	return orders, nil
}

func (r *orderRepository) ListByUser(userID string) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*entity.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = ToOrderEntity(&orderModels[i])
	}
	return orders, nil
}

// UpdateStatus flips a PENDING order into a terminal state. The status guard
// lives in the WHERE clause so a concurrent double-approval loses the race
// and reports the order as already processed.
func (r *orderRepository) UpdateStatus(id string, status entity.OrderStatus, rejectionReason string) (*entity.Order, error) {
	updates := map[string]interface{}{"status": string(status)}
	if rejectionReason != "" {
		updates["rejection_reason"] = rejectionReason
	}

	res := r.db.Model(&model.OrderModel{}).
		Where("id = ? AND status = ?", id, string(entity.OrderStatusPending)).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if _, err := r.GetByID(id); err != nil {
			return nil, err
		}
		return nil, entity.ErrOrderProcessed
	}

	return r.GetByID(id)
}

func (r *orderRepository) UpdateFulfilment(id string, status entity.FulfilmentStatus) (*entity.Order, error) {
	res := r.db.Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("fulfilment_status", string(status))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrOrderNotFound
	}

	return r.GetByID(id)
}

// attachUser joins in the owner's display identity for the admin surface.
// A missing user row is not an error; the order stands on its own.
func (r *orderRepository) attachUser(order *entity.Order) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", order.UserID).First(&userModel).Error; err != nil {
		return
	}
	order.UserName = userModel.Name
	order.UserNumber = userModel.Number
}

type PlanRepository interface {
	GetByID(id string) (*entity.Plan, error)
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) GetByID(id string) (*entity.Plan, error) {
	var planModel model.PlanModel
	if err := r.db.Where("id = ?", id).First(&planModel).Error; err != nil {
		return nil, err
	}
	return ToPlanEntity(&planModel), nil
}
