package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"time"

	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// AnswerService 用户作答服务
type AnswerService struct {
	answerRepo   *repository.UserAnswerRepository
	questionRepo *repository.QuestionRepository
	userRepo     *repository.UserRepository
	storage      *StorageService
}

func NewAnswerService(
	answerRepo *repository.UserAnswerRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
	storage *StorageService,
) *AnswerService {
	return &AnswerService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
		storage:      storage,
	}
}

type CreateAnswerRequest struct {
	UserID       uint   `json:"userId" binding:"required"`
	QuestionID   uint   `json:"questionId" binding:"required"`
	AnswerText   string `json:"answerText"`
	AnswerStatus string `json:"answerStatus"`
}

type BulkAnswerItem struct {
	QuestionID   uint   `json:"questionId" binding:"required"`
	AnswerText   string `json:"answerText"`
	AnswerStatus string `json:"answerStatus"`
}

type BulkAnswerRequest struct {
	UserID  uint             `json:"userId" binding:"required"`
	Answers []BulkAnswerItem `json:"answers" binding:"required,min=1"`
}

// Create 记录一次作答。同一问题重复作答则覆盖最近一条
func (s *AnswerService) Create(req *CreateAnswerRequest) (*model.UserAnswer, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if _, err := s.questionRepo.FindByID(req.QuestionID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	status := model.AnswerComplete
	if req.AnswerStatus != "" {
		status = model.AnswerStatus(req.AnswerStatus)
	}

	existing, err := s.answerRepo.FindLatestByUserAndQuestion(req.UserID, req.QuestionID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if existing != nil {
		existing.AnswerText = req.AnswerText
		existing.AnswerStatus = status
		existing.AnsweredAt = time.Now()
		if err := s.answerRepo.Update(existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	answer := &model.UserAnswer{
		UserID:       req.UserID,
		QuestionID:   req.QuestionID,
		AnswerText:   req.AnswerText,
		AnswerStatus: status,
		AnsweredAt:   time.Now(),
	}
	if err := s.answerRepo.Create(answer); err != nil {
		return nil, err
	}
	return answer, nil
}

// CreateBulk 批量作答，整体一个事务
func (s *AnswerService) CreateBulk(req *BulkAnswerRequest) ([]model.UserAnswer, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()
	answers := make([]model.UserAnswer, 0, len(req.Answers))
	for _, item := range req.Answers {
		status := model.AnswerComplete
		if item.AnswerStatus != "" {
			status = model.AnswerStatus(item.AnswerStatus)
		}
		answers = append(answers, model.UserAnswer{
			UserID:       req.UserID,
			QuestionID:   item.QuestionID,
			AnswerText:   item.AnswerText,
			AnswerStatus: status,
			AnsweredAt:   now,
		})
	}
	if err := s.answerRepo.CreateBatch(answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// CreateWithImage 照片类问题的作答，先上传图片再落库
func (s *AnswerService) CreateWithImage(ctx context.Context, userID, questionID uint, answerText string, file *multipart.FileHeader) (*model.UserAnswer, error) {
	answer, err := s.Create(&CreateAnswerRequest{
		UserID:     userID,
		QuestionID: questionID,
		AnswerText: answerText,
	})
	if err != nil {
		return nil, err
	}

	if file != nil {
		if !util.IsImage(file.Header.Get("Content-Type")) {
			return nil, util.ErrInvalidFileType
		}
		src, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer src.Close()

		ext := filepath.Ext(file.Filename)
		filename := fmt.Sprintf("answers/%d_%d%s", userID, time.Now().UnixNano(), ext)
		url, err := s.storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		answer.AnswerImg = url
		if err := s.answerRepo.Update(answer); err != nil {
			return nil, err
		}
	}
	return answer, nil
}

func (s *AnswerService) GetByID(id uint) (*model.UserAnswer, error) {
	a, err := s.answerRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAnswerNotFound
		}
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) List(userID, questionID *uint, page, limit int) ([]model.UserAnswer, int64, error) {
	return s.answerRepo.List(userID, questionID, page, limit)
}

type UpdateAnswerRequest struct {
	AnswerText   *string `json:"answerText"`
	AnswerStatus *string `json:"answerStatus"`
}

func (s *AnswerService) Update(id uint, req *UpdateAnswerRequest) (*model.UserAnswer, error) {
	a, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req.AnswerText != nil {
		a.AnswerText = *req.AnswerText
	}
	if req.AnswerStatus != nil {
		a.AnswerStatus = model.AnswerStatus(*req.AnswerStatus)
	}
	a.AnsweredAt = time.Now()
	if err := s.answerRepo.Update(a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AnswerService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.answerRepo.Delete(id)
}
