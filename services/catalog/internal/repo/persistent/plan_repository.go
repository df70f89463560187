package persistent

import (
	"errors"

	"boost-market/services/catalog/internal/entity"
	"boost-market/services/catalog/internal/model"

	"gorm.io/gorm"
)

type PlanRepository interface {
	Create(plan *entity.Plan) error
	GetByID(id string) (*entity.Plan, error)
	List(platform string) ([]*entity.Plan, error)
	Update(plan *entity.Plan) error
	Delete(id string) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(plan *entity.Plan) error {
	planModel := ToPlanModel(plan)
	if err := r.db.Create(planModel).Error; err != nil {
		return err
	}
	*plan = *ToPlanEntity(planModel)
	return nil
}

func (r *planRepository) GetByID(id string) (*entity.Plan, error) {
	var planModel model.PlanModel
	if err := r.db.Where("id = ?", id).First(&planModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPlanNotFound
		}
		return nil, err
	}
	return ToPlanEntity(&planModel), nil
}

// List returns plans cheapest first. An empty platform returns the whole
// catalog.
func (r *planRepository) List(platform string) ([]*entity.Plan, error) {
	query := r.db.Order("price ASC")
	if platform != "" {
		query = query.Where("platform = ?", platform)
	}

	var planModels []model.PlanModel
	if err := query.Find(&planModels).Error; err != nil {
		return nil, err
	}

	plans := make([]*entity.Plan, len(planModels))
	for i := range planModels {
		plans[i] = ToPlanEntity(&planModels[i])
	}
	return plans, nil
}

func (r *planRepository) Update(plan *entity.Plan) error {
	planModel := ToPlanModel(plan)
	res := r.db.Model(&model.PlanModel{}).Where("id = ?", plan.ID).Updates(planModel)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrPlanNotFound
	}

	updated, err := r.GetByID(plan.ID)
	if err != nil {
		return err
	}
	*plan = *updated
	return nil
}

func (r *planRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.PlanModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrPlanNotFound
	}
	return nil
}
