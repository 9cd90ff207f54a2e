package service

import (
	"time"

	"pairbond_backend/internal/model"
	"pairbond_backend/internal/progress"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

const defaultFreezesPerMonth = 2

// StreakService 连续打开天数服务
type StreakService struct {
	appOpenRepo *repository.AppOpenRepository
	relRepo     *repository.RelationshipRepository
	userRepo    *repository.UserRepository
	settingRepo *repository.AppSettingRepository
}

func NewStreakService(
	appOpenRepo *repository.AppOpenRepository,
	relRepo *repository.RelationshipRepository,
	userRepo *repository.UserRepository,
	settingRepo *repository.AppSettingRepository,
) *StreakService {
	return &StreakService{
		appOpenRepo: appOpenRepo,
		relRepo:     relRepo,
		userRepo:    userRepo,
		settingRepo: settingRepo,
	}
}

// RecordOpen 记录一次打开。同一 UTC 日历日只保留一条
func (s *StreakService) RecordOpen(userID uint) (bool, error) {
	if _, err := s.userRepo.FindByID(userID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, util.ErrUserNotFound
		}
		return false, err
	}

	now := time.Now()
	existing, err := s.appOpenRepo.FindByUserAndDay(userID, now)
	if err != nil && err != gorm.ErrRecordNotFound {
		return false, err
	}
	if existing != nil {
		return false, nil
	}

	open := &model.DailyAppOpen{UserID: userID, OpenedAt: now}
	if err := s.appOpenRepo.Create(open); err != nil {
		return false, err
	}
	return true, nil
}

// WeekDay 一周视图中的单日状态
type WeekDay struct {
	Date   string `json:"date"`
	Opened bool   `json:"opened"`
}

// SingleUserStreak 单用户连续天数及本周打开情况
type SingleUserStreak struct {
	UserID uint      `json:"userId"`
	Streak int       `json:"streak"`
	Week   []WeekDay `json:"week"`
}

// GetSingleUserStreak 返回当前连续天数与最近7天（含今天）的打开标记。
// 调用本身会记录今天的打开。
func (s *StreakService) GetSingleUserStreak(userID uint) (*SingleUserStreak, error) {
	if _, err := s.RecordOpen(userID); err != nil {
		return nil, err
	}

	opens, err := s.appOpenRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	week := make([]WeekDay, 0, 7)
	for i := 6; i >= 0; i-- {
		day := progress.DayUTC(now).AddDate(0, 0, -i)
		week = append(week, WeekDay{
			Date:   progress.DayKey(day),
			Opened: progress.OpenedOn(opens, day),
		})
	}

	return &SingleUserStreak{
		UserID: userID,
		Streak: progress.Streak(opens, now),
		Week:   week,
	}, nil
}

// CalendarDay 月历中的单日状态
type CalendarDay struct {
	Date          string `json:"date"`
	UserOpened    bool   `json:"userOpened"`
	PartnerOpened bool   `json:"partnerOpened"`
	BothOpened    bool   `json:"bothOpened"`
}

// RelationshipStreak 关系维度的连续天数视图
type RelationshipStreak struct {
	RelationshipID uint          `json:"relationshipId"`
	UserStreak     int           `json:"userStreak"`
	PartnerStreak  int           `json:"partnerStreak"`
	SharedStreak   int           `json:"sharedStreak"`
	FreezesAllowed int           `json:"freezesAllowed"`
	Calendar       []CalendarDay `json:"calendar"`
}

// GetRelationshipStreak 返回关系双方的连续天数和指定月份的月历。
// 断开或单人关系时伴侣侧为空，共享连续天数等于调用者的连续天数。
func (s *StreakService) GetRelationshipStreak(relationshipID, userID uint, year int, month time.Month) (*RelationshipStreak, error) {
	rel, err := s.relRepo.FindByID(relationshipID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRelationshipNotFound
		}
		return nil, err
	}

	userOpens, err := s.appOpenRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}

	var partnerOpens []time.Time
	partnerID := rel.PartnerID(userID)
	if partnerID != nil {
		partnerOpens, err = s.appOpenRepo.FindAllByUser(*partnerID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	result := &RelationshipStreak{
		RelationshipID: relationshipID,
		UserStreak:     progress.Streak(userOpens, now),
		FreezesAllowed: s.settingRepo.IntValue("streak_freeze_per_month", defaultFreezesPerMonth),
	}
	if partnerID != nil {
		result.PartnerStreak = progress.Streak(partnerOpens, now)
		result.SharedStreak = sharedStreak(userOpens, partnerOpens, now)
	} else {
		result.SharedStreak = result.UserStreak
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	for day := first; day.Month() == month; day = day.AddDate(0, 0, 1) {
		userOpened := progress.OpenedOn(userOpens, day)
		partnerOpened := partnerID != nil && progress.OpenedOn(partnerOpens, day)
		result.Calendar = append(result.Calendar, CalendarDay{
			Date:          progress.DayKey(day),
			UserOpened:    userOpened,
			PartnerOpened: partnerOpened,
			BothOpened:    userOpened && partnerOpened,
		})
	}
	return result, nil
}

// sharedStreak 双方都打开的日子构成的连续天数
func sharedStreak(a, b []time.Time, now time.Time) int {
	shared := make([]time.Time, 0)
	seen := make(map[string]bool)
	for _, t := range a {
		key := progress.DayKey(t)
		if !seen[key] && progress.OpenedOn(b, t) {
			seen[key] = true
			shared = append(shared, t)
		}
	}
	return progress.Streak(shared, now)
}
