package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"pairbond_backend/internal/config"
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/progress"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"
	"pairbond_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HomeService 首页聚合服务：每日问题、随机子主题、概览
type HomeService struct {
	cfg             *config.Config
	rdb             *redis.Client
	userRepo        *repository.UserRepository
	relRepo         *repository.RelationshipRepository
	subTopicRepo    *repository.SubTopicRepository
	questionRepo    *repository.QuestionRepository
	answerRepo      *repository.UserAnswerRepository
	appOpenRepo     *repository.AppOpenRepository
	rotationRepo    *repository.RotationSetRepository
	progressService *ProgressService
}

func NewHomeService(
	cfg *config.Config,
	rdb *redis.Client,
	userRepo *repository.UserRepository,
	relRepo *repository.RelationshipRepository,
	subTopicRepo *repository.SubTopicRepository,
	questionRepo *repository.QuestionRepository,
	answerRepo *repository.UserAnswerRepository,
	appOpenRepo *repository.AppOpenRepository,
	rotationRepo *repository.RotationSetRepository,
	progressService *ProgressService,
) *HomeService {
	return &HomeService{
		cfg:             cfg,
		rdb:             rdb,
		userRepo:        userRepo,
		relRepo:         relRepo,
		subTopicRepo:    subTopicRepo,
		questionRepo:    questionRepo,
		answerRepo:      answerRepo,
		appOpenRepo:     appOpenRepo,
		rotationRepo:    rotationRepo,
		progressService: progressService,
	}
}

// DailyQuestionResult 今日问题及双方作答状态
type DailyQuestionResult struct {
	Question        *model.Question `json:"question"`
	UserAnswered    bool            `json:"userAnswered"`
	PartnerAnswered bool            `json:"partnerAnswered"`
}

// GetDailyQuestion 按固定起始日轮换返回今日问题。
// 问题ID当天全局一致，优先从 Redis 取，未命中再计算并回填。
func (s *HomeService) GetDailyQuestion(ctx context.Context, userID *uint) (*DailyQuestionResult, error) {
	question, err := s.todayQuestion(ctx)
	if err != nil {
		return nil, err
	}
	if question == nil {
		return nil, util.ErrQuestionNotFound
	}

	result := &DailyQuestionResult{Question: question}
	if userID != nil {
		if a, err := s.answerRepo.FindLatestByUserAndQuestion(*userID, question.ID); err == nil && a.AnswerStatus == model.AnswerComplete {
			result.UserAnswered = true
		}
		rel, err := s.relRepo.FindActiveByUserID(*userID)
		if err == nil {
			if partnerID := rel.PartnerID(*userID); partnerID != nil {
				if a, err := s.answerRepo.FindLatestByUserAndQuestion(*partnerID, question.ID); err == nil && a.AnswerStatus == model.AnswerComplete {
					result.PartnerAnswered = true
				}
			}
		}
	}
	return result, nil
}

func (s *HomeService) todayQuestion(ctx context.Context) (*model.Question, error) {
	now := time.Now()
	cacheKey := fmt.Sprintf("daily_question:%s", progress.DayKey(now))

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var q model.Question
			if json.Unmarshal([]byte(cached), &q) == nil {
				return &q, nil
			}
		}
	}

	pool, err := s.questionRepo.FindActiveBySubTopic(s.cfg.Home.DailySubTopicID)
	if err != nil {
		return nil, err
	}
	ids := make([]uint, len(pool))
	for i, q := range pool {
		ids[i] = q.ID
	}

	qid, ok := progress.DailyQuestion(ids, s.cfg.Home.DailyEpochTime(), now)
	if !ok {
		return nil, nil
	}

	var question *model.Question
	for i := range pool {
		if pool[i].ID == qid {
			question = &pool[i]
			break
		}
	}
	if question == nil {
		return nil, nil
	}

	if s.rdb != nil {
		if data, err := json.Marshal(question); err == nil {
			ttl := time.Until(progress.DayUTC(now).AddDate(0, 0, 1))
			if err := s.rdb.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
				logger.Log.Warn("每日问题缓存写入失败", zap.Error(err))
			}
		}
	}
	return question, nil
}

// GetRandomSubTopics 返回首页随机子主题选集。
// 选集落库复用，直到所有成员把其中子主题全部完成才重新抽样。
func (s *HomeService) GetRandomSubTopics(userID uint) ([]model.SubTopic, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	rel, err := s.relRepo.FindActiveByUserID(userID)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var set *model.ActiveSubtopicSet
	if rel != nil {
		set, err = s.rotationRepo.FindLatestByRelationship(rel.ID)
	} else {
		set, err = s.rotationRepo.FindLatestByUser(userID)
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var members []uint
	if rel != nil {
		members = rel.MemberIDs()
	} else {
		members = []uint{userID}
	}

	if set != nil {
		expired, err := s.setExpired(set.IDs(), members)
		if err != nil {
			return nil, err
		}
		if !expired {
			return s.loadSubTopics(set.IDs())
		}
	}

	return s.sampleNewSet(user, rel)
}

// setExpired 当集合内所有子主题被所有成员完成后视为过期
func (s *HomeService) setExpired(subTopicIDs []uint, members []uint) (bool, error) {
	if len(subTopicIDs) == 0 {
		return true, nil
	}
	for _, stID := range subTopicIDs {
		questions, err := s.questionRepo.FindActiveBySubTopic(stID)
		if err != nil {
			return false, err
		}
		if len(questions) == 0 {
			continue
		}
		ids := make([]uint, len(questions))
		for i, q := range questions {
			ids[i] = q.ID
		}
		for _, member := range members {
			answered, err := s.answerRepo.CountCompleteByUserAndQuestions(member, ids)
			if err != nil {
				return false, err
			}
			if progress.Percent(len(ids), answered) < 100 {
				return false, nil
			}
		}
	}
	return true, nil
}

func (s *HomeService) sampleNewSet(user *model.User, rel *model.Relationship) ([]model.SubTopic, error) {
	candidates, err := s.subTopicRepo.FindFiltered(nil, nil, user.HideContent)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return []model.SubTopic{}, nil
	}

	pool := make([]uint, len(candidates))
	for i, st := range candidates {
		pool[i] = st.ID
	}

	size := s.cfg.Home.RandomSetSize
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picked := progress.SampleIDs(pool, size, rng)

	set := &model.ActiveSubtopicSet{}
	if rel != nil {
		relID := rel.ID
		set.RelationshipID = &relID
	} else {
		uid := user.ID
		set.UserID = &uid
	}
	set.SetIDs(picked)
	if err := s.rotationRepo.Create(set); err != nil {
		return nil, err
	}
	return s.loadSubTopics(picked)
}

// loadSubTopics 按抽样顺序加载子主题
func (s *HomeService) loadSubTopics(ids []uint) ([]model.SubTopic, error) {
	result := make([]model.SubTopic, 0, len(ids))
	for _, id := range ids {
		st, err := s.subTopicRepo.FindActiveByID(id)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return nil, err
		}
		result = append(result, *st)
	}
	return result, nil
}

// HomeOverview 首页聚合数据
type HomeOverview struct {
	User          *model.User          `json:"user"`
	Partner       *model.User          `json:"partner,omitempty"`
	Relationship  *model.Relationship  `json:"relationship,omitempty"`
	DaysTogether  int                  `json:"daysTogether"`
	Streak        int                  `json:"streak"`
	DailyQuestion *DailyQuestionResult `json:"dailyQuestion,omitempty"`
	Divisions     *DivisionCounts      `json:"divisions"`
}

// GetHome 首页一次取全：用户、伴侣、在一起天数、连续天数、今日问题、分区统计
func (s *HomeService) GetHome(ctx context.Context, userID uint) (*HomeOverview, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	overview := &HomeOverview{User: user}

	rel, err := s.relRepo.FindActiveByUserID(userID)
	if err == nil {
		overview.Relationship = rel
		overview.DaysTogether = DaysTogether(rel, time.Now())
		if partnerID := rel.PartnerID(userID); partnerID != nil {
			if partner, err := s.userRepo.FindByID(*partnerID); err == nil {
				overview.Partner = partner
			}
		}
	} else if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	opens, err := s.appOpenRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	overview.Streak = progress.Streak(opens, time.Now())

	daily, err := s.GetDailyQuestion(ctx, &userID)
	if err == nil {
		overview.DailyQuestion = daily
	}

	divisions, err := s.progressService.GetDivisionCounts(userID, nil, nil)
	if err != nil {
		return nil, err
	}
	overview.Divisions = divisions

	return overview, nil
}
