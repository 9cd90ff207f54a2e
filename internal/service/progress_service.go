package service

import (
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/progress"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// ProgressService 答题进度计算服务。
// 所有百分比与分区由 internal/progress 的纯函数给出，这里只负责取数。
type ProgressService struct {
	answerRepo   *repository.UserAnswerRepository
	questionRepo *repository.QuestionRepository
	subTopicRepo *repository.SubTopicRepository
	topicRepo    *repository.TopicRepository
	categoryRepo *repository.CategoryRepository
	relRepo      *repository.RelationshipRepository
	userRepo     *repository.UserRepository
}

func NewProgressService(
	answerRepo *repository.UserAnswerRepository,
	questionRepo *repository.QuestionRepository,
	subTopicRepo *repository.SubTopicRepository,
	topicRepo *repository.TopicRepository,
	categoryRepo *repository.CategoryRepository,
	relRepo *repository.RelationshipRepository,
	userRepo *repository.UserRepository,
) *ProgressService {
	return &ProgressService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		subTopicRepo: subTopicRepo,
		topicRepo:    topicRepo,
		categoryRepo: categoryRepo,
		relRepo:      relRepo,
		userRepo:     userRepo,
	}
}

// SubTopicProgress 单个子主题的双方进度
type SubTopicProgress struct {
	SubTopicID      uint              `json:"subTopicId"`
	Name            string            `json:"name"`
	TotalQuestions  int               `json:"totalQuestions"`
	UserAnswered    int               `json:"userAnswered"`
	PartnerAnswered int               `json:"partnerAnswered"`
	UserProgress    int               `json:"userProgress"`
	PartnerProgress int               `json:"partnerProgress"`
	OverallProgress int               `json:"overallProgress"`
	Division        progress.Division `json:"division"`
	IsCompleted     bool              `json:"isCompleted"`
}

// partnerOf 返回用户当前伴侣的ID；无配对或已断开时为 nil
func (s *ProgressService) partnerOf(userID uint) (*uint, error) {
	rel, err := s.relRepo.FindActiveByUserID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return rel.PartnerID(userID), nil
}

// subTopicStatus 计算一个子主题的进度。questions 为该子主题的生效问题
func (s *ProgressService) subTopicStatus(st *model.SubTopic, userID uint, partnerID *uint) (*SubTopicProgress, error) {
	questions, err := s.questionRepo.FindActiveBySubTopic(st.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	userAnswered, err := s.answerRepo.CountCompleteByUserAndQuestions(userID, ids)
	if err != nil {
		return nil, err
	}
	partnerAnswered := 0
	if partnerID != nil {
		partnerAnswered, err = s.answerRepo.CountCompleteByUserAndQuestions(*partnerID, ids)
		if err != nil {
			return nil, err
		}
	}

	total := len(ids)
	userPct := progress.Percent(total, userAnswered)
	partnerPct := progress.Percent(total, partnerAnswered)
	status := progress.Classify(userPct, partnerPct, userAnswered, partnerAnswered, partnerID != nil)

	return &SubTopicProgress{
		SubTopicID:      st.ID,
		Name:            st.Name,
		TotalQuestions:  total,
		UserAnswered:    userAnswered,
		PartnerAnswered: partnerAnswered,
		UserProgress:    userPct,
		PartnerProgress: partnerPct,
		OverallProgress: status.OverallProgress,
		Division:        status.Division,
		IsCompleted:     status.IsCompleted,
	}, nil
}

// GetSubTopicProgress 子主题维度的进度
func (s *ProgressService) GetSubTopicProgress(userID, subTopicID uint) (*SubTopicProgress, error) {
	st, err := s.subTopicRepo.FindByID(subTopicID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubTopicNotFound
		}
		return nil, err
	}
	partnerID, err := s.partnerOf(userID)
	if err != nil {
		return nil, err
	}
	return s.subTopicStatus(st, userID, partnerID)
}

// GroupProgress 话题或分类维度的聚合进度
type GroupProgress struct {
	ID              uint               `json:"id"`
	Name            string             `json:"name"`
	OverallProgress int                `json:"overallProgress"`
	SubTopics       []SubTopicProgress `json:"subTopics"`
}

func (s *ProgressService) groupStatus(id uint, name string, subTopics []model.SubTopic, userID uint) (*GroupProgress, error) {
	partnerID, err := s.partnerOf(userID)
	if err != nil {
		return nil, err
	}

	group := &GroupProgress{ID: id, Name: name, SubTopics: make([]SubTopicProgress, 0, len(subTopics))}
	totalQuestions := 0
	totalAnswered := 0
	for i := range subTopics {
		stStatus, err := s.subTopicStatus(&subTopics[i], userID, partnerID)
		if err != nil {
			return nil, err
		}
		group.SubTopics = append(group.SubTopics, *stStatus)
		totalQuestions += stStatus.TotalQuestions
		totalAnswered += stStatus.UserAnswered
	}
	group.OverallProgress = progress.Percent(totalQuestions, totalAnswered)
	return group, nil
}

// GetTopicProgress 话题下所有子主题的进度
func (s *ProgressService) GetTopicProgress(userID, topicID uint) (*GroupProgress, error) {
	topic, err := s.topicRepo.FindByID(topicID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrTopicNotFound
		}
		return nil, err
	}
	subTopics, err := s.filteredSubTopics(userID, nil, &topicID)
	if err != nil {
		return nil, err
	}
	return s.groupStatus(topic.ID, topic.Name, subTopics, userID)
}

// GetCategoryProgress 分类下所有子主题的进度
func (s *ProgressService) GetCategoryProgress(userID, categoryID uint) (*GroupProgress, error) {
	category, err := s.categoryRepo.FindByID(categoryID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrCategoryNotFound
		}
		return nil, err
	}
	subTopics, err := s.filteredSubTopics(userID, &categoryID, nil)
	if err != nil {
		return nil, err
	}
	return s.groupStatus(category.ID, category.Name, subTopics, userID)
}

// filteredSubTopics 按用户成人内容偏好过滤子主题
func (s *ProgressService) filteredSubTopics(userID uint, categoryID, topicID *uint) ([]model.SubTopic, error) {
	hideAdult := false
	if user, err := s.userRepo.FindByID(userID); err == nil {
		hideAdult = user.HideContent
	}
	return s.subTopicRepo.FindFiltered(categoryID, topicID, hideAdult)
}

// DivisionCounts 各分区的子主题数量
type DivisionCounts struct {
	Unanswered int `json:"unanswered"`
	YourTurn   int `json:"yourTurn"`
	Answered   int `json:"answered"`
	Complete   int `json:"complete"`
	Total      int `json:"total"`
}

// GetDivisionCounts 统计用户可见子主题在各分区的数量
func (s *ProgressService) GetDivisionCounts(userID uint, categoryID, topicID *uint) (*DivisionCounts, error) {
	statuses, err := s.classifyAll(userID, categoryID, topicID)
	if err != nil {
		return nil, err
	}

	counts := &DivisionCounts{Total: len(statuses)}
	for _, st := range statuses {
		switch st.Division {
		case progress.DivisionUnanswered:
			counts.Unanswered++
		case progress.DivisionYourTurn:
			counts.YourTurn++
		case progress.DivisionAnswered:
			counts.Answered++
		case progress.DivisionComplete:
			counts.Complete++
		}
	}
	return counts, nil
}

// GetSubTopicsByDivision 返回落在指定分区的子主题；division 为 all 时返回全部
func (s *ProgressService) GetSubTopicsByDivision(userID uint, division progress.Division, categoryID, topicID *uint) ([]SubTopicProgress, error) {
	statuses, err := s.classifyAll(userID, categoryID, topicID)
	if err != nil {
		return nil, err
	}
	if division == progress.DivisionAll {
		return statuses, nil
	}

	filtered := make([]SubTopicProgress, 0, len(statuses))
	for _, st := range statuses {
		if st.Division == division {
			filtered = append(filtered, st)
		}
	}
	return filtered, nil
}

func (s *ProgressService) classifyAll(userID uint, categoryID, topicID *uint) ([]SubTopicProgress, error) {
	subTopics, err := s.filteredSubTopics(userID, categoryID, topicID)
	if err != nil {
		return nil, err
	}
	partnerID, err := s.partnerOf(userID)
	if err != nil {
		return nil, err
	}

	statuses := make([]SubTopicProgress, 0, len(subTopics))
	for i := range subTopics {
		st, err := s.subTopicStatus(&subTopics[i], userID, partnerID)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, *st)
	}
	return statuses, nil
}
