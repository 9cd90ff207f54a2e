package service

import (
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// DeviceTokenService 推送设备令牌服务
type DeviceTokenService struct {
	tokenRepo *repository.DeviceTokenRepository
	userRepo  *repository.UserRepository
}

func NewDeviceTokenService(tokenRepo *repository.DeviceTokenRepository, userRepo *repository.UserRepository) *DeviceTokenService {
	return &DeviceTokenService{tokenRepo: tokenRepo, userRepo: userRepo}
}

type RegisterTokenRequest struct {
	UserID      uint   `json:"userId" binding:"required"`
	DeviceToken string `json:"deviceToken" binding:"required"`
	DeviceType  string `json:"deviceType" binding:"required,oneof=ios android web"`
}

// Register 注册或刷新设备令牌，同一令牌重复注册会被重新激活
func (s *DeviceTokenService) Register(req *RegisterTokenRequest) (*model.DeviceToken, error) {
	if _, err := s.userRepo.FindByID(req.UserID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	token := &model.DeviceToken{
		UserID:      req.UserID,
		DeviceToken: req.DeviceToken,
		DeviceType:  req.DeviceType,
		IsActive:    true,
	}
	if err := s.tokenRepo.Upsert(token); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *DeviceTokenService) Deactivate(userID uint, deviceToken string) error {
	return s.tokenRepo.Deactivate(userID, deviceToken)
}

func (s *DeviceTokenService) ListActive(userID uint) ([]model.DeviceToken, error) {
	return s.tokenRepo.FindActiveByUser(userID)
}
