package persistent

import (
	"boost-market/services/auth/internal/entity"
	"boost-market/services/auth/internal/model"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByNumber(number string) (*entity.User, error)
	UpdateName(id, name string) error
	List() ([]*entity.User, error)
	AddSocialAccount(account *entity.SocialAccount) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Preload("SocialAccounts").Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByNumber(number string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("number = ?", number).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) UpdateName(id, name string) error {
	return r.db.Model(&model.UserModel{}).Where("id = ?", id).Update("name", name).Error
}

func (r *userRepository) List() ([]*entity.User, error) {
	var userModels []model.UserModel
	if err := r.db.Preload("SocialAccounts").Order("created_at DESC").Find(&userModels).Error; err != nil {
		return nil, err
	}

	users := make([]*entity.User, len(userModels))
	for i := range userModels {
		users[i] = ToUserEntity(&userModels[i])
		users[i].Password = ""
	}
	return users, nil
}

func (r *userRepository) AddSocialAccount(account *entity.SocialAccount) error {
	accountModel := &model.SocialAccountModel{
		UserID: account.UserID,
		Name:   account.Name,
		Link:   account.Link,
	}
	if err := r.db.Create(accountModel).Error; err != nil {
		return err
	}
	account.ID = accountModel.ID
	return nil
}
