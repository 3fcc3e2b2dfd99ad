package repository

import (
	"github.com/studenthub/examgate/internal/model"
	"gorm.io/gorm"
)

type IdentityRepository interface {
	Create(identity *model.Identity) error
	FindByKey(key string) (*model.Identity, error)
	DeleteByKey(key string) error
}

type identityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) IdentityRepository {
	return &identityRepository{db: db}
}

func (r *identityRepository) Create(identity *model.Identity) error {
	return r.db.Create(identity).Error
}

func (r *identityRepository) FindByKey(key string) (*model.Identity, error) {
	var identity model.Identity
	err := r.db.Where("key = ?", key).First(&identity).Error
	return &identity, err
}

func (r *identityRepository) DeleteByKey(key string) error {
	return r.db.Where("key = ?", key).Delete(&model.Identity{}).Error
}
