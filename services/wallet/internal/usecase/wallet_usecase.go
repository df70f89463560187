package usecase

import (
	"fmt"
	"io"

	"boost-market/pkg/logger"
	"boost-market/services/wallet/internal/entity"
	"boost-market/services/wallet/internal/repo/persistent"
)

// Uploader stores a proof-of-payment artifact and returns its reference path.
type Uploader interface {
	UploadFile(key string, file io.Reader, contentType string) (string, error)
}

// ReviewPublisher notifies the admin surface about newly pending work.
type ReviewPublisher interface {
	PublishReviewTask(task map[string]interface{}) error
}

type RequestDepositInput struct {
	Amount        float64
	UTR           string
	Screenshot    io.Reader
	ScreenshotKey string
	ContentType   string
}

type WalletUseCase interface {
	RequestDeposit(userID string, in RequestDepositInput) (*entity.WalletTransaction, error)
	ListMyTransactions(userID string) ([]*entity.WalletTransaction, error)
	ListPendingDeposits() ([]*entity.WalletTransaction, error)
	ResolveDeposit(txnID string, status entity.TransactionStatus) (*entity.WalletTransaction, error)
}

type walletUseCase struct {
	txnRepo   persistent.TransactionRepository
	uploader  Uploader
	publisher ReviewPublisher
	logger    *logger.Logger
}

func NewWalletUseCase(
	txnRepo persistent.TransactionRepository,
	uploader Uploader,
	publisher ReviewPublisher,
	logger *logger.Logger,
) WalletUseCase {
	return &walletUseCase{
		txnRepo:   txnRepo,
		uploader:  uploader,
		publisher: publisher,
		logger:    logger,
	}
}

// RequestDeposit records a PENDING deposit claim. The balance is untouched
// until an admin approves; the screenshot is the user's evidence.
func (uc *walletUseCase) RequestDeposit(userID string, in RequestDepositInput) (*entity.WalletTransaction, error) {
	txn := &entity.WalletTransaction{
		UserID:      userID,
		Amount:      in.Amount,
		Type:        entity.TransactionDeposit,
		Status:      entity.TransactionStatusPending,
		UTR:         in.UTR,
		Description: "Wallet deposit request",
	}

	if in.Screenshot != nil {
		path, err := uc.uploader.UploadFile(in.ScreenshotKey, in.Screenshot, in.ContentType)
		if err != nil {
			uc.logger.Error("Failed to upload deposit screenshot: %v", err)
			return nil, fmt.Errorf("failed to store deposit screenshot: %w", err)
		}
		txn.ScreenshotPath = path
	}

	if err := uc.txnRepo.Create(txn); err != nil {
		uc.logger.Error("Failed to create deposit request: %v", err)
		return nil, fmt.Errorf("failed to create deposit request: %w", err)
	}

	uc.notifyPendingReview(txn)
	return txn, nil
}

func (uc *walletUseCase) ListMyTransactions(userID string) ([]*entity.WalletTransaction, error) {
	txns, err := uc.txnRepo.ListByUser(userID)
	if err != nil {
		uc.logger.Error("Failed to list transactions: %v", err)
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (uc *walletUseCase) ListPendingDeposits() ([]*entity.WalletTransaction, error) {
	txns, err := uc.txnRepo.ListPendingDeposits()
	if err != nil {
		uc.logger.Error("Failed to list pending deposits: %v", err)
		return nil, fmt.Errorf("failed to list pending deposits: %w", err)
	}
	return txns, nil
}

// ResolveDeposit settles a pending deposit. APPROVED credits the balance
// exactly once; REJECTED leaves it untouched; anything already settled comes
// back as ErrTransactionProcessed.
func (uc *walletUseCase) ResolveDeposit(txnID string, status entity.TransactionStatus) (*entity.WalletTransaction, error) {
	switch status {
	case entity.TransactionStatusApproved:
		return uc.txnRepo.ApproveDeposit(txnID)
	case entity.TransactionStatusRejected:
		return uc.txnRepo.RejectDeposit(txnID)
	default:
		return nil, entity.ErrInvalidStatus
	}
}

func (uc *walletUseCase) notifyPendingReview(txn *entity.WalletTransaction) {
	if uc.publisher == nil {
		return
	}
	go func() {
		task := map[string]interface{}{
			"type":     "deposit",
			"id":       txn.ID,
			"user_id":  txn.UserID,
			"amount":   txn.Amount,
			"priority": 5,
		}
		if err := uc.publisher.PublishReviewTask(task); err != nil {
			uc.logger.Error("Failed to publish review task: %v", err)
		}
	}()
}
