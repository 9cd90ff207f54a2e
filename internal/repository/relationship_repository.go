package repository

import (
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type RelationshipRepository struct {
	DB *gorm.DB
}

func NewRelationshipRepository(db *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{DB: db}
}

func (r *RelationshipRepository) Create(rel *model.Relationship) error {
	return r.DB.Create(rel).Error
}

func (r *RelationshipRepository) FindByID(id uint) (*model.Relationship, error) {
	var rel model.Relationship
	err := r.DB.First(&rel, id).Error
	return &rel, err
}

// FindActiveByUserID 查找用户当前未断开的配对
func (r *RelationshipRepository) FindActiveByUserID(userID uint) (*model.Relationship, error) {
	var rel model.Relationship
	err := r.DB.Where("(user1_id = ? OR user2_id = ?) AND disconnected = ?", userID, userID, false).
		First(&rel).Error
	return &rel, err
}

func (r *RelationshipRepository) FindAnyByUserID(userID uint) (*model.Relationship, error) {
	var rel model.Relationship
	err := r.DB.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("created_at DESC").First(&rel).Error
	return &rel, err
}

func (r *RelationshipRepository) List(page, limit int) ([]model.Relationship, int64, error) {
	var rels []model.Relationship
	var total int64

	query := r.DB.Model(&model.Relationship{})
	query.Count(&total)

	err := query.Offset((page - 1) * limit).Limit(limit).Order("created_at DESC").Find(&rels).Error
	return rels, total, err
}

func (r *RelationshipRepository) Update(rel *model.Relationship) error {
	return r.DB.Save(rel).Error
}

// Disconnect 断开关系。记录保留，下游一律按单人模式处理
func (r *RelationshipRepository) Disconnect(id uint) error {
	return r.DB.Model(&model.Relationship{}).Where("id = ?", id).Update("disconnected", true).Error
}
