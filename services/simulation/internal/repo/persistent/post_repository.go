package persistent

import (
	"errors"

	"boost-market/services/simulation/internal/entity"
	"boost-market/services/simulation/internal/model"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	ListByUser(userID string) ([]*entity.Post, error)
	UpdateCounters(id string, views, likes, followers int64, engagementRate float64, proxiesUsed int) (*entity.Post, error)
	Delete(id string) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.Create(postModel).Error; err != nil {
		return err
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(id string) (*entity.Post, error) {
	var postModel model.PostModel
	if err := r.db.Where("id = ?", id).First(&postModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, err
	}
	return ToPostEntity(&postModel), nil
}

func (r *postRepository) ListByUser(userID string) ([]*entity.Post, error) {
	var postModels []model.PostModel
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&postModels).Error; err != nil {
		return nil, err
	}

	posts := make([]*entity.Post, len(postModels))
	for i := range postModels {
		posts[i] = ToPostEntity(&postModels[i])
	}
	return posts, nil
}

func (r *postRepository) UpdateCounters(id string, views, likes, followers int64, engagementRate float64, proxiesUsed int) (*entity.Post, error) {
	res := r.db.Model(&model.PostModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"simulated_views":     views,
			"simulated_likes":     likes,
			"simulated_followers": followers,
			"engagement_rate":     engagementRate,
			"proxies_used":        proxiesUsed,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entity.ErrPostNotFound
	}

	return r.GetByID(id)
}

func (r *postRepository) Delete(id string) error {
	res := r.db.Where("id = ?", id).Delete(&model.PostModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
