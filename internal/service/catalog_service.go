package service

import (
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// CatalogService 题库分类服务（分类 / 话题 / 子主题）
type CatalogService struct {
	categoryRepo *repository.CategoryRepository
	topicRepo    *repository.TopicRepository
	subTopicRepo *repository.SubTopicRepository
	questionRepo *repository.QuestionRepository
	userRepo     *repository.UserRepository
}

func NewCatalogService(
	categoryRepo *repository.CategoryRepository,
	topicRepo *repository.TopicRepository,
	subTopicRepo *repository.SubTopicRepository,
	questionRepo *repository.QuestionRepository,
	userRepo *repository.UserRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo: categoryRepo,
		topicRepo:    topicRepo,
		subTopicRepo: subTopicRepo,
		questionRepo: questionRepo,
		userRepo:     userRepo,
	}
}

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

func (s *CatalogService) CreateCategory(req *CategoryRequest) (*model.Category, error) {
	c := &model.Category{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.categoryRepo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) GetCategory(id uint) (*model.Category, error) {
	c, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) ListCategories(activeOnly bool) ([]model.Category, error) {
	return s.categoryRepo.FindAll(activeOnly)
}

func (s *CatalogService) UpdateCategory(id uint, req *CategoryRequest) (*model.Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}
	c.Name = req.Name
	c.Description = req.Description
	c.Icon = req.Icon
	c.Color = req.Color
	c.SortOrder = req.SortOrder
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if err := s.categoryRepo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(id uint) error {
	if _, err := s.GetCategory(id); err != nil {
		return err
	}
	return s.categoryRepo.Delete(id)
}

type TopicRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

func (s *CatalogService) CreateTopic(req *TopicRequest) (*model.Topic, error) {
	t := &model.Topic{
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.topicRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) GetTopic(id uint) (*model.Topic, error) {
	t, err := s.topicRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTopicNotFound
		}
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) ListTopics(activeOnly bool) ([]model.Topic, error) {
	return s.topicRepo.FindAll(activeOnly)
}

func (s *CatalogService) UpdateTopic(id uint, req *TopicRequest) (*model.Topic, error) {
	t, err := s.GetTopic(id)
	if err != nil {
		return nil, err
	}
	t.Name = req.Name
	t.Description = req.Description
	t.Icon = req.Icon
	t.Color = req.Color
	t.SortOrder = req.SortOrder
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.topicRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *CatalogService) DeleteTopic(id uint) error {
	if _, err := s.GetTopic(id); err != nil {
		return err
	}
	return s.topicRepo.Delete(id)
}

type SubTopicRequest struct {
	TopicID     *uint  `json:"topicId"`
	CategoryID  *uint  `json:"categoryId"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Color       string `json:"color"`
	Adult       bool   `json:"adult"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

func (s *CatalogService) CreateSubTopic(req *SubTopicRequest) (*model.SubTopic, error) {
	st := &model.SubTopic{
		TopicID:     req.TopicID,
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
		Color:       req.Color,
		Adult:       req.Adult,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	if err := s.subTopicRepo.Create(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *CatalogService) GetSubTopic(id uint) (*model.SubTopic, error) {
	st, err := s.subTopicRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubTopicNotFound
		}
		return nil, err
	}
	return st, nil
}

// ListSubTopics 按分类/话题过滤；userID 提供时按其成人内容偏好过滤
func (s *CatalogService) ListSubTopics(categoryID, topicID, userID *uint) ([]model.SubTopic, error) {
	hideAdult := false
	if userID != nil {
		user, err := s.userRepo.FindByID(*userID)
		if err == nil {
			hideAdult = user.HideContent
		}
	}
	return s.subTopicRepo.FindFiltered(categoryID, topicID, hideAdult)
}

func (s *CatalogService) UpdateSubTopic(id uint, req *SubTopicRequest) (*model.SubTopic, error) {
	st, err := s.GetSubTopic(id)
	if err != nil {
		return nil, err
	}
	st.TopicID = req.TopicID
	st.CategoryID = req.CategoryID
	st.Name = req.Name
	st.Description = req.Description
	st.Icon = req.Icon
	st.Color = req.Color
	st.Adult = req.Adult
	st.SortOrder = req.SortOrder
	if req.IsActive != nil {
		st.IsActive = *req.IsActive
	}
	if err := s.subTopicRepo.Update(st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *CatalogService) DeleteSubTopic(id uint) error {
	if _, err := s.GetSubTopic(id); err != nil {
		return err
	}
	return s.subTopicRepo.Delete(id)
}

// SubTopicWithQuestions 子主题及其生效中的问题列表
type SubTopicWithQuestions struct {
	model.SubTopic
	Questions []model.Question `json:"questions"`
}

func (s *CatalogService) GetSubTopicWithQuestions(id uint) (*SubTopicWithQuestions, error) {
	st, err := s.GetSubTopic(id)
	if err != nil {
		return nil, err
	}
	questions, err := s.questionRepo.FindActiveBySubTopic(id)
	if err != nil {
		return nil, err
	}
	return &SubTopicWithQuestions{SubTopic: *st, Questions: questions}, nil
}
