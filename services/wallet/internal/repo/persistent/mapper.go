package persistent

import (
	"boost-market/services/wallet/internal/entity"
	"boost-market/services/wallet/internal/model"
)

func ToTransactionEntity(m *model.WalletTransactionModel) *entity.WalletTransaction {
	if m == nil {
		return nil
	}

	return &entity.WalletTransaction{
		ID:             m.ID,
		UserID:         m.UserID,
		Amount:         m.Amount,
		Type:           entity.TransactionType(m.Type),
		Status:         entity.TransactionStatus(m.Status),
		UTR:            m.UTR,
		ScreenshotPath: m.ScreenshotPath,
		Description:    m.Description,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToTransactionModel(e *entity.WalletTransaction) *model.WalletTransactionModel {
	if e == nil {
		return nil
	}

	return &model.WalletTransactionModel{
		ID:             e.ID,
		UserID:         e.UserID,
		Amount:         e.Amount,
		Type:           string(e.Type),
		Status:         string(e.Status),
		UTR:            e.UTR,
		ScreenshotPath: e.ScreenshotPath,
		Description:    e.Description,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
