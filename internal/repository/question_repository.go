package repository

import (
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	return &q, err
}

func (r *QuestionRepository) List(subTopicID *uint, page, limit int) ([]model.Question, int64, error) {
	var qs []model.Question
	var total int64

	query := r.DB.Model(&model.Question{})
	if subTopicID != nil {
		query = query.Where("sub_topic_id = ?", *subTopicID)
	}
	query.Count(&total)

	err := query.Offset((page - 1) * limit).Limit(limit).
		Order("sort_order ASC, id ASC").Find(&qs).Error
	return qs, total, err
}

// FindActiveBySubTopic 按固定顺序返回子主题下启用的问题，每日轮换依赖这个顺序稳定
func (r *QuestionRepository) FindActiveBySubTopic(subTopicID uint) ([]model.Question, error) {
	var qs []model.Question
	err := r.DB.Where("sub_topic_id = ? AND is_active = ?", subTopicID, true).
		Order("sort_order ASC, id ASC").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) FindActiveBySubTopics(subTopicIDs []uint) ([]model.Question, error) {
	var qs []model.Question
	if len(subTopicIDs) == 0 {
		return qs, nil
	}
	err := r.DB.Where("sub_topic_id IN ? AND is_active = ?", subTopicIDs, true).
		Order("sort_order ASC, id ASC").Find(&qs).Error
	return qs, err
}

func (r *QuestionRepository) Update(q *model.Question) error {
	return r.DB.Save(q).Error
}

func (r *QuestionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Question{}, id).Error
}
