package persistent

import (
	"errors"

	"boost-market/services/catalog/internal/entity"
	"boost-market/services/catalog/internal/model"

	"gorm.io/gorm"
)

type ConfigRepository interface {
	Get() (*entity.PaymentConfig, error)
	Update(upiID, qrCodeURL, instructions string) (*entity.PaymentConfig, error)
}

type configRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) ConfigRepository {
	return &configRepository{db: db}
}

// Get returns the single payment config row, creating the default one on
// first access.
func (r *configRepository) Get() (*entity.PaymentConfig, error) {
	var configModel model.PaymentConfigModel
	err := r.db.First(&configModel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		configModel = model.PaymentConfigModel{}
		if err := r.db.Create(&configModel).Error; err != nil {
			return nil, err
		}
		return ToConfigEntity(&configModel), nil
	}
	if err != nil {
		return nil, err
	}
	return ToConfigEntity(&configModel), nil
}

func (r *configRepository) Update(upiID, qrCodeURL, instructions string) (*entity.PaymentConfig, error) {
	current, err := r.Get()
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if upiID != "" {
		updates["upi_id"] = upiID
	}
	if qrCodeURL != "" {
		updates["qr_code_url"] = qrCodeURL
	}
	if instructions != "" {
		updates["instructions"] = instructions
	}

	if len(updates) > 0 {
		err = r.db.Model(&model.PaymentConfigModel{}).
			Where("id = ?", current.ID).
			Updates(updates).Error
		if err != nil {
			return nil, err
		}
	}

	return r.Get()
}
