package persistent

import (
	"errors"

	"boost-market/services/simulation/internal/entity"
	"boost-market/services/simulation/internal/model"

	"gorm.io/gorm"
)

type ProxyRepository interface {
	Create(proxy *entity.Proxy) error
	List() ([]*entity.Proxy, error)
	Update(proxy *entity.Proxy) error
	Delete(id string) error
}

type proxyRepository struct {
	db *gorm.DB
}

func NewProxyRepository(db *gorm.DB) ProxyRepository {
	return &proxyRepository{db: db}
}

func (r *proxyRepository) Create(proxy *entity.Proxy) error {
	proxyModel := ToProxyModel(proxy)
	if err := r.db.Create(proxyModel).Error; err != nil {
		return err
	}
	*proxy = *ToProxyEntity(proxyModel)
	return nil
}

func (r *proxyRepository) List() ([]*entity.Proxy, error) {
	var proxyModels []model.ProxyModel
	if err := r.db.Order("created_at DESC").Find(&proxyModels).Error; err != nil {
		return nil, err
	}

	proxies := make([]*entity.Proxy, len(proxyModels))
	for i := range proxyModels {
		proxies[i] = ToProxyEntity(&proxyModels[i])
	}
	return proxies, nil
}

func (r *proxyRepository) Update(proxy *entity.Proxy) error {
	proxyModel := ToProxyModel(proxy)
	res := r.db.Model(&model.ProxyModel{}).Where("id = ?", proxy.ID).Updates(proxyModel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrProxyNotFound
	}

	var updated model.ProxyModel
	if err := r.db.Where("id = ?", proxy.ID).First(&updated).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.ErrProxyNotFound
		}
		return err
	}
	*proxy = *ToProxyEntity(&updated)
	return nil
}

func (r *proxyRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.ProxyModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrProxyNotFound
	}
	return nil
}
