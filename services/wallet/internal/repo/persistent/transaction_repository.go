package persistent

import (
	"errors"

	"boost-market/services/wallet/internal/entity"
	"boost-market/services/wallet/internal/model"

	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(txn *entity.WalletTransaction) error
	GetByID(id string) (*entity.WalletTransaction, error)
	ListByUser(userID string) ([]*entity.WalletTransaction, error)
	ListPendingDeposits() ([]*entity.WalletTransaction, error)
	ApproveDeposit(id string) (*entity.WalletTransaction, error)
	RejectDeposit(id string) (*entity.WalletTransaction, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(txn *entity.WalletTransaction) error {
	txnModel := ToTransactionModel(txn)
	if err := r.db.Create(txnModel).Error; err != nil {
		return err
	}
	*txn = *ToTransactionEntity(txnModel)
	return nil
}

func (r *transactionRepository) GetByID(id string) (*entity.WalletTransaction, error) {
	var txnModel model.WalletTransactionModel
	if err := r.db.Where("id = ?", id).First(&txnModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrTransactionNotFound
		}
		return nil, err
	}
	return ToTransactionEntity(&txnModel), nil
}

func (r *transactionRepository) ListByUser(userID string) ([]*entity.WalletTransaction, error) {
	var txnModels []model.WalletTransactionModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&txnModels).Error; err != nil {
		return nil, err
	}

	txns := make([]*entity.WalletTransaction, len(txnModels))
	for i := range txnModels {
		txns[i] = ToTransactionEntity(&txnModels[i])
	}
	return txns, nil
}

// ListPendingDeposits returns the admin review queue, newest first, with the
// requesting user's display identity joined in.
func (r *transactionRepository) ListPendingDeposits() ([]*entity.WalletTransaction, error) {
	var txnModels []model.WalletTransactionModel
	err := r.db.
		Where("type = ? AND status = ?", string(entity.TransactionDeposit), string(entity.TransactionStatusPending)).
		Order("created_at DESC").
		Find(&txnModels).Error
	if err != nil {
		return nil, err
	}

	txns := make([]*entity.WalletTransaction, len(txnModels))
	for i := range txnModels {
		txns[i] = ToTransactionEntity(&txnModels[i])
		r.attachUser(txns[i])
	}
	return txns, nil
}

// ApproveDeposit flips a PENDING deposit to APPROVED and credits the user's
// balance in the same database transaction. The status guard sits in the
// WHERE clause so a second approval finds zero rows and never re-credits.
func (r *transactionRepository) ApproveDeposit(id string) (*entity.WalletTransaction, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var txnModel model.WalletTransactionModel
		if err := tx.Where("id = ?", id).First(&txnModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrTransactionNotFound
			}
			return err
		}
		if txnModel.Type != string(entity.TransactionDeposit) {
			return entity.ErrNotDeposit
		}

		res := tx.Model(&model.WalletTransactionModel{}).
			Where("id = ? AND status = ?", id, string(entity.TransactionStatusPending)).
			Update("status", string(entity.TransactionStatusApproved))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entity.ErrTransactionProcessed
		}

		return tx.Model(&model.UserModel{}).
			Where("id = ?", txnModel.UserID).
			UpdateColumn("wallet_balance", gorm.Expr("wallet_balance + ?", txnModel.Amount)).Error
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// RejectDeposit flips a PENDING deposit to REJECTED. No balance change.
func (r *transactionRepository) RejectDeposit(id string) (*entity.WalletTransaction, error) {
	res := r.db.Model(&model.WalletTransactionModel{}).
		Where("id = ? AND type = ? AND status = ?",
			id, string(entity.TransactionDeposit), string(entity.TransactionStatusPending)).
		Update("status", string(entity.TransactionStatusRejected))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		txn, err := r.GetByID(id)
		if err != nil {
			return nil, err
		}
		if txn.Type != entity.TransactionDeposit {
			return nil, entity.ErrNotDeposit
		}
		return nil, entity.ErrTransactionProcessed
	}

	return r.GetByID(id)
}

func (r *transactionRepository) attachUser(txn *entity.WalletTransaction) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", txn.UserID).First(&userModel).Error; err != nil {
		return
	}
	txn.UserName = userModel.Name
	txn.UserNumber = userModel.Number
}
