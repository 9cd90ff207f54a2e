package service

import (
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/progress"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// ResultService 答案对比与契合度服务
type ResultService struct {
	answerRepo   *repository.UserAnswerRepository
	questionRepo *repository.QuestionRepository
	subTopicRepo *repository.SubTopicRepository
	relRepo      *repository.RelationshipRepository
}

func NewResultService(
	answerRepo *repository.UserAnswerRepository,
	questionRepo *repository.QuestionRepository,
	subTopicRepo *repository.SubTopicRepository,
	relRepo *repository.RelationshipRepository,
) *ResultService {
	return &ResultService{
		answerRepo:   answerRepo,
		questionRepo: questionRepo,
		subTopicRepo: subTopicRepo,
		relRepo:      relRepo,
	}
}

// QuestionResult 单个问题的双方作答
type QuestionResult struct {
	QuestionID    uint               `json:"questionId"`
	QuestionText  string             `json:"questionText"`
	QuestionType  model.QuestionType `json:"questionType"`
	UserAnswer    string             `json:"userAnswer"`
	UserImg       string             `json:"userImg,omitempty"`
	PartnerAnswer string             `json:"partnerAnswer"`
	PartnerImg    string             `json:"partnerImg,omitempty"`
	Matched       bool               `json:"matched"`
}

// SubTopicResult 子主题下的对比结果及契合度
type SubTopicResult struct {
	SubTopicID        uint             `json:"subTopicId"`
	Name              string           `json:"name"`
	SimilarityPercent string           `json:"similarityPercent"`
	Matches           int              `json:"matches"`
	TotalCompared     int              `json:"totalCompared"`
	Questions         []QuestionResult `json:"questions"`
}

// partnerOf 返回用户当前伴侣的ID；无配对或断开时为 nil
func (s *ResultService) partnerOf(userID uint) (*uint, error) {
	rel, err := s.relRepo.FindActiveByUserID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return rel.PartnerID(userID), nil
}

// GetSubTopicResult 子主题维度的双方答案对比。
// 断开或单人模式时伴侣侧为空，契合度为 0.00。
func (s *ResultService) GetSubTopicResult(userID, subTopicID uint) (*SubTopicResult, error) {
	st, err := s.subTopicRepo.FindByID(subTopicID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrSubTopicNotFound
		}
		return nil, err
	}

	questions, err := s.questionRepo.FindActiveBySubTopic(subTopicID)
	if err != nil {
		return nil, err
	}
	questionIDs := make([]uint, len(questions))
	for i, q := range questions {
		questionIDs[i] = q.ID
	}

	partnerID, err := s.partnerOf(userID)
	if err != nil {
		return nil, err
	}

	userIDs := []uint{userID}
	if partnerID != nil {
		userIDs = append(userIDs, *partnerID)
	}
	answers, err := s.answerRepo.FindByUsersAndQuestions(userIDs, questionIDs)
	if err != nil {
		return nil, err
	}

	answerText := make(map[progress.AnswerKey]string, len(answers))
	answerImg := make(map[progress.AnswerKey]string, len(answers))
	for _, a := range answers {
		if a.AnswerStatus != model.AnswerComplete {
			continue
		}
		key := progress.AnswerKey{UserID: a.UserID, QuestionID: a.QuestionID}
		answerText[key] = a.AnswerText
		answerImg[key] = a.AnswerImg
	}

	match := progress.MatchAnswers(questionIDs, answerText, userID, partnerID)

	result := &SubTopicResult{
		SubTopicID:        st.ID,
		Name:              st.Name,
		SimilarityPercent: match.SimilarityPercent,
		Matches:           match.Matches,
		TotalCompared:     match.TotalCompared,
		Questions:         make([]QuestionResult, 0, len(questions)),
	}

	for _, q := range questions {
		qr := QuestionResult{
			QuestionID:   q.ID,
			QuestionText: q.QuestionText,
			QuestionType: q.QuestionType,
			UserAnswer:   answerText[progress.AnswerKey{UserID: userID, QuestionID: q.ID}],
			UserImg:      answerImg[progress.AnswerKey{UserID: userID, QuestionID: q.ID}],
		}
		if partnerID != nil {
			qr.PartnerAnswer = answerText[progress.AnswerKey{UserID: *partnerID, QuestionID: q.ID}]
			qr.PartnerImg = answerImg[progress.AnswerKey{UserID: *partnerID, QuestionID: q.ID}]
		}
		qr.Matched = progress.AnswersEqual(qr.UserAnswer, qr.PartnerAnswer)
		result.Questions = append(result.Questions, qr)
	}
	return result, nil
}

// GetQuestionResult 单个问题的双方作答
func (s *ResultService) GetQuestionResult(userID, questionID uint) (*QuestionResult, error) {
	q, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}

	partnerID, err := s.partnerOf(userID)
	if err != nil {
		return nil, err
	}

	qr := &QuestionResult{
		QuestionID:   q.ID,
		QuestionText: q.QuestionText,
		QuestionType: q.QuestionType,
	}
	if a, err := s.answerRepo.FindLatestByUserAndQuestion(userID, questionID); err == nil && a.AnswerStatus == model.AnswerComplete {
		qr.UserAnswer = a.AnswerText
		qr.UserImg = a.AnswerImg
	}
	if partnerID != nil {
		if a, err := s.answerRepo.FindLatestByUserAndQuestion(*partnerID, questionID); err == nil && a.AnswerStatus == model.AnswerComplete {
			qr.PartnerAnswer = a.AnswerText
			qr.PartnerImg = a.AnswerImg
		}
	}
	qr.Matched = progress.AnswersEqual(qr.UserAnswer, qr.PartnerAnswer)
	return qr, nil
}
