package persistent

import (
	"boost-market/services/order/internal/entity"
	"boost-market/services/order/internal/model"
)

func ToOrderEntity(m *model.OrderModel) *entity.Order {
	if m == nil {
		return nil
	}

	return &entity.Order{
		ID:               m.ID,
		UserID:           m.UserID,
		PlanID:           m.PlanID,
		Status:           entity.OrderStatus(m.Status),
		Amount:           m.Amount,
		UTR:              m.UTR,
		ScreenshotPath:   m.ScreenshotPath,
		RejectionReason:  m.RejectionReason,
		Video:            m.Video,
		FulfilmentStatus: entity.FulfilmentStatus(m.FulfilmentStatus),
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

func ToOrderModel(e *entity.Order) *model.OrderModel {
	if e == nil {
		return nil
	}

	return &model.OrderModel{
		ID:               e.ID,
		UserID:           e.UserID,
		PlanID:           e.PlanID,
		Status:           string(e.Status),
		Amount:           e.Amount,
		UTR:              e.UTR,
		ScreenshotPath:   e.ScreenshotPath,
		RejectionReason:  e.RejectionReason,
		Video:            e.Video,
		FulfilmentStatus: string(e.FulfilmentStatus),
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func ToPlanEntity(m *model.PlanModel) *entity.Plan {
	if m == nil {
		return nil
	}

	return &entity.Plan{
		ID:       m.ID,
		Name:     m.Name,
		Platform: m.Platform,
		Price:    m.Price,
		Type:     m.Type,
	}
}
