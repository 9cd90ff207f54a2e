package repository

import (
	"pairbond_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type AppOpenRepository struct {
	DB *gorm.DB
}

func NewAppOpenRepository(db *gorm.DB) *AppOpenRepository {
	return &AppOpenRepository{DB: db}
}

func (r *AppOpenRepository) Create(open *model.DailyAppOpen) error {
	return r.DB.Create(open).Error
}

// FindByUserAndDay 检查用户在指定 UTC 日历日是否有打开记录
func (r *AppOpenRepository) FindByUserAndDay(userID uint, day time.Time) (*model.DailyAppOpen, error) {
	var open model.DailyAppOpen
	startOfDay := time.Date(day.UTC().Year(), day.UTC().Month(), day.UTC().Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.Add(24 * time.Hour)

	err := r.DB.Where("user_id = ? AND opened_at >= ? AND opened_at < ?", userID, startOfDay, endOfDay).
		First(&open).Error
	if err != nil {
		return nil, err
	}
	return &open, nil
}

// FindAllByUser 返回用户全部打开记录的时间戳，连续天数据此计算
func (r *AppOpenRepository) FindAllByUser(userID uint) ([]time.Time, error) {
	var opens []model.DailyAppOpen
	err := r.DB.Where("user_id = ?", userID).Find(&opens).Error
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, len(opens))
	for i, o := range opens {
		times[i] = o.OpenedAt
	}
	return times, nil
}

// FindByUserBetween 返回用户在时间窗内的打开记录，供日历展示
func (r *AppOpenRepository) FindByUserBetween(userID uint, from, to time.Time) ([]time.Time, error) {
	var opens []model.DailyAppOpen
	err := r.DB.Where("user_id = ? AND opened_at >= ? AND opened_at < ?", userID, from, to).
		Find(&opens).Error
	if err != nil {
		return nil, err
	}

	times := make([]time.Time, len(opens))
	for i, o := range opens {
		times[i] = o.OpenedAt
	}
	return times, nil
}
