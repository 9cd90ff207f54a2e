package service

import (
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService 问题管理服务
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	subTopicRepo *repository.SubTopicRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository, subTopicRepo *repository.SubTopicRepository) *QuestionService {
	return &QuestionService{questionRepo: questionRepo, subTopicRepo: subTopicRepo}
}

type QuestionRequest struct {
	SubTopicID   *uint  `json:"subTopicId"`
	QuestionText string `json:"questionText" binding:"required"`
	QuestionType string `json:"questionType"`
	OptionText   string `json:"optionText"`
	OptionImg    string `json:"optionImg"`
	SortOrder    int    `json:"sortOrder"`
	IsActive     *bool  `json:"isActive"`
}

func (s *QuestionService) Create(req *QuestionRequest) (*model.Question, error) {
	if req.SubTopicID != nil {
		if _, err := s.subTopicRepo.FindByID(*req.SubTopicID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrSubTopicNotFound
			}
			return nil, err
		}
	}

	q := &model.Question{
		SubTopicID:   req.SubTopicID,
		QuestionText: req.QuestionText,
		QuestionType: model.QuestionYesNo,
		OptionText:   req.OptionText,
		OptionImg:    req.OptionImg,
		SortOrder:    req.SortOrder,
		IsActive:     true,
	}
	if req.QuestionType != "" {
		q.QuestionType = model.QuestionType(req.QuestionType)
	}
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	if err := s.questionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) GetByID(id uint) (*model.Question, error) {
	q, err := s.questionRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) List(subTopicID *uint, page, limit int) ([]model.Question, int64, error) {
	return s.questionRepo.List(subTopicID, page, limit)
}

func (s *QuestionService) Update(id uint, req *QuestionRequest) (*model.Question, error) {
	q, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	q.SubTopicID = req.SubTopicID
	q.QuestionText = req.QuestionText
	if req.QuestionType != "" {
		q.QuestionType = model.QuestionType(req.QuestionType)
	}
	q.OptionText = req.OptionText
	q.OptionImg = req.OptionImg
	q.SortOrder = req.SortOrder
	if req.IsActive != nil {
		q.IsActive = *req.IsActive
	}
	if err := s.questionRepo.Update(q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *QuestionService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.questionRepo.Delete(id)
}
