package persistent

import (
	"boost-market/services/catalog/internal/entity"
	"boost-market/services/catalog/internal/model"
)

func ToPlanEntity(m *model.PlanModel) *entity.Plan {
	if m == nil {
		return nil
	}

	return &entity.Plan{
		ID:             m.ID,
		Name:           m.Name,
		Description:    m.Description,
		Price:          m.Price,
		Features:       []string(m.Features),
		Type:           entity.PlanType(m.Type),
		Platform:       entity.Platform(m.Platform),
		ViewsCount:     m.ViewsCount,
		LikesCount:     m.LikesCount,
		FollowersCount: m.FollowersCount,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToPlanModel(e *entity.Plan) *model.PlanModel {
	if e == nil {
		return nil
	}

	return &model.PlanModel{
		ID:             e.ID,
		Name:           e.Name,
		Description:    e.Description,
		Price:          e.Price,
		Features:       e.Features,
		Type:           string(e.Type),
		Platform:       string(e.Platform),
		ViewsCount:     e.ViewsCount,
		LikesCount:     e.LikesCount,
		FollowersCount: e.FollowersCount,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToConfigEntity(m *model.PaymentConfigModel) *entity.PaymentConfig {
	if m == nil {
		return nil
	}

	return &entity.PaymentConfig{
		ID:           m.ID,
		UPIID:        m.UPIID,
		QRCodeURL:    m.QRCodeURL,
		Instructions: m.Instructions,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
