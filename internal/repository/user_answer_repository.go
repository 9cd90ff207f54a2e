package repository

import (
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type UserAnswerRepository struct {
	DB *gorm.DB
}

func NewUserAnswerRepository(db *gorm.DB) *UserAnswerRepository {
	return &UserAnswerRepository{DB: db}
}

func (r *UserAnswerRepository) Create(a *model.UserAnswer) error {
	return r.DB.Create(a).Error
}

func (r *UserAnswerRepository) CreateBatch(answers []model.UserAnswer) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range answers {
			if err := tx.Create(&answers[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *UserAnswerRepository) FindByID(id uint) (*model.UserAnswer, error) {
	var a model.UserAnswer
	err := r.DB.First(&a, id).Error
	return &a, err
}

func (r *UserAnswerRepository) Update(a *model.UserAnswer) error {
	return r.DB.Save(a).Error
}

func (r *UserAnswerRepository) Delete(id uint) error {
	return r.DB.Delete(&model.UserAnswer{}, id).Error
}

// FindLatestByUserAndQuestion 用户对某问题的最新作答
func (r *UserAnswerRepository) FindLatestByUserAndQuestion(userID, questionID uint) (*model.UserAnswer, error) {
	var a model.UserAnswer
	err := r.DB.Where("user_id = ? AND question_id = ?", userID, questionID).
		Order("answered_at DESC").First(&a).Error
	return &a, err
}

// FindByUsersAndQuestions 取多名用户对一组问题的全部作答，供匹配度与进度计算使用
func (r *UserAnswerRepository) FindByUsersAndQuestions(userIDs, questionIDs []uint) ([]model.UserAnswer, error) {
	var answers []model.UserAnswer
	if len(userIDs) == 0 || len(questionIDs) == 0 {
		return answers, nil
	}
	err := r.DB.Where("user_id IN ? AND question_id IN ?", userIDs, questionIDs).
		Find(&answers).Error
	return answers, err
}

// CountCompleteByUserAndQuestions 统计用户在一组问题中已完成作答的数量（去重）
func (r *UserAnswerRepository) CountCompleteByUserAndQuestions(userID uint, questionIDs []uint) (int, error) {
	if len(questionIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.DB.Model(&model.UserAnswer{}).
		Where("user_id = ? AND question_id IN ? AND answer_status = ?", userID, questionIDs, model.AnswerComplete).
		Distinct("question_id").
		Count(&count).Error
	return int(count), err
}

func (r *UserAnswerRepository) List(userID, questionID *uint, page, limit int) ([]model.UserAnswer, int64, error) {
	var answers []model.UserAnswer
	var total int64

	query := r.DB.Model(&model.UserAnswer{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	if questionID != nil {
		query = query.Where("question_id = ?", *questionID)
	}
	query.Count(&total)

	err := query.Offset((page - 1) * limit).Limit(limit).
		Order("answered_at DESC").Find(&answers).Error
	return answers, total, err
}
