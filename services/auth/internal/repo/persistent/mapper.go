package persistent

import (
	"boost-market/services/auth/internal/entity"
	"boost-market/services/auth/internal/model"
)

func ToUserEntity(m *model.UserModel) *entity.User {
	if m == nil {
		return nil
	}

	accounts := make([]entity.SocialAccount, len(m.SocialAccounts))
	for i := range m.SocialAccounts {
		accounts[i] = entity.SocialAccount{
			ID:     m.SocialAccounts[i].ID,
			UserID: m.SocialAccounts[i].UserID,
			Name:   m.SocialAccounts[i].Name,
			Link:   m.SocialAccounts[i].Link,
		}
	}

	return &entity.User{
		ID:             m.ID,
		Name:           m.Name,
		Number:         m.Number,
		Password:       m.Password,
		Role:           entity.Role(m.Role),
		WalletBalance:  m.WalletBalance,
		SocialAccounts: accounts,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *model.UserModel {
	if e == nil {
		return nil
	}

	return &model.UserModel{
		ID:            e.ID,
		Name:          e.Name,
		Number:        e.Number,
		Password:      e.Password,
		Role:          string(e.Role),
		WalletBalance: e.WalletBalance,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}
