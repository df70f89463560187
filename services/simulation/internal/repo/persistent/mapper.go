package persistent

import (
	"boost-market/services/simulation/internal/entity"
	"boost-market/services/simulation/internal/model"
)

func ToPostEntity(m *model.PostModel) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:                 m.ID,
		UserID:             m.UserID,
		URL:                m.URL,
		Caption:            m.Caption,
		SimulatedViews:     m.SimulatedViews,
		SimulatedLikes:     m.SimulatedLikes,
		SimulatedFollowers: m.SimulatedFollowers,
		EngagementRate:     m.EngagementRate,
		ProxiesUsed:        m.ProxiesUsed,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *model.PostModel {
	if e == nil {
		return nil
	}

	return &model.PostModel{
		ID:                 e.ID,
		UserID:             e.UserID,
		URL:                e.URL,
		Caption:            e.Caption,
		SimulatedViews:     e.SimulatedViews,
		SimulatedLikes:     e.SimulatedLikes,
		SimulatedFollowers: e.SimulatedFollowers,
		EngagementRate:     e.EngagementRate,
		ProxiesUsed:        e.ProxiesUsed,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}
}

func ToProxyEntity(m *model.ProxyModel) *entity.Proxy {
	if m == nil {
		return nil
	}

	return &entity.Proxy{
		ID:        m.ID,
		IP:        m.IP,
		Port:      m.Port,
		Country:   m.Country,
		Status:    entity.ProxyStatus(m.Status),
		Username:  m.Username,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToProxyModel(e *entity.Proxy) *model.ProxyModel {
	if e == nil {
		return nil
	}

	return &model.ProxyModel{
		ID:        e.ID,
		IP:        e.IP,
		Port:      e.Port,
		Country:   e.Country,
		Status:    string(e.Status),
		Username:  e.Username,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
