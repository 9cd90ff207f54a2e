package repository

import (
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type RotationSetRepository struct {
	DB *gorm.DB
}

func NewRotationSetRepository(db *gorm.DB) *RotationSetRepository {
	return &RotationSetRepository{DB: db}
}

func (r *RotationSetRepository) Create(set *model.ActiveSubtopicSet) error {
	return r.DB.Create(set).Error
}

func (r *RotationSetRepository) FindLatestByRelationship(relationshipID uint) (*model.ActiveSubtopicSet, error) {
	var set model.ActiveSubtopicSet
	err := r.DB.Where("relationship_id = ?", relationshipID).
		Order("created_at DESC").First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}

func (r *RotationSetRepository) FindLatestByUser(userID uint) (*model.ActiveSubtopicSet, error) {
	var set model.ActiveSubtopicSet
	err := r.DB.Where("user_id = ? AND relationship_id IS NULL", userID).
		Order("created_at DESC").First(&set).Error
	if err != nil {
		return nil, err
	}
	return &set, nil
}
