package repository

import (
	"strconv"

	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type AppSettingRepository struct {
	db *gorm.DB
}

func NewAppSettingRepository(db *gorm.DB) *AppSettingRepository {
	return &AppSettingRepository{db: db}
}

func (r *AppSettingRepository) FindByKey(key string) (*model.AppSetting, error) {
	var setting model.AppSetting
	err := r.db.Where("`key` = ?", key).First(&setting).Error
	return &setting, err
}

func (r *AppSettingRepository) FindAll() ([]model.AppSetting, error) {
	var settings []model.AppSetting
	err := r.db.Order("`key`").Find(&settings).Error
	return settings, err
}

func (r *AppSettingRepository) Upsert(key, value, description string) error {
	var setting model.AppSetting
	err := r.db.Where("`key` = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.Create(&model.AppSetting{Key: key, Value: value, Description: description}).Error
	}
	if err != nil {
		return err
	}
	setting.Value = value
	if description != "" {
		setting.Description = description
	}
	return r.db.Save(&setting).Error
}

// IntValue 读取整数配置，缺失或非法时返回默认值
func (r *AppSettingRepository) IntValue(key string, fallback int) int {
	setting, err := r.FindByKey(key)
	if err != nil {
		return fallback
	}
	v, err := strconv.Atoi(setting.Value)
	if err != nil {
		return fallback
	}
	return v
}
