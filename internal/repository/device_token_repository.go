package repository

import (
	"errors"
	"pairbond_backend/internal/model"

	"gorm.io/gorm"
)

type DeviceTokenRepository struct {
	DB *gorm.DB
}

func NewDeviceTokenRepository(db *gorm.DB) *DeviceTokenRepository {
	return &DeviceTokenRepository{DB: db}
}

// Upsert 同一用户同一令牌只保留一条记录，重复注册时重新激活
func (r *DeviceTokenRepository) Upsert(token *model.DeviceToken) error {
	var existing model.DeviceToken
	err := r.DB.Where("user_id = ? AND device_token = ?", token.UserID, token.DeviceToken).
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.DB.Create(token).Error
	}
	if err != nil {
		return err
	}

	existing.DeviceType = token.DeviceType
	existing.IsActive = true
	return r.DB.Save(&existing).Error
}

func (r *DeviceTokenRepository) Deactivate(userID uint, deviceToken string) error {
	return r.DB.Model(&model.DeviceToken{}).
		Where("user_id = ? AND device_token = ?", userID, deviceToken).
		Update("is_active", false).Error
}

func (r *DeviceTokenRepository) FindActiveByUser(userID uint) ([]model.DeviceToken, error) {
	var tokens []model.DeviceToken
	err := r.DB.Where("user_id = ? AND is_active = ?", userID, true).Find(&tokens).Error
	return tokens, err
}
