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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService 用户服务
type UserService struct {
	userRepo *repository.UserRepository
	storage  *StorageService
}

func NewUserService(userRepo *repository.UserRepository, storage *StorageService) *UserService {
	return &UserService{userRepo: userRepo, storage: storage}
}

type CreateUserRequest struct {
	UUID               string     `json:"uuid"`
	TransactionID      string     `json:"transactionId"`
	SocialID           string     `json:"socialId"`
	Name               string     `json:"name"`
	Gender             string     `json:"gender"`
	BirthDate          *time.Time `json:"birthDate"`
	Lat                float64    `json:"lat"`
	Long               float64    `json:"long"`
	Anniversary        *time.Time `json:"anniversary"`
	RelationshipStatus string     `json:"relationshipStatus"`
	Expectations       string     `json:"expectations"`
	Lang               string     `json:"lang"`
	DistanceUnit       string     `json:"distanceUnit"`
	HideContent        *bool      `json:"hideContent"`
	LocationPermission *bool      `json:"locationPermission"`
	Mood               string     `json:"mood"`
}

type UpdateUserRequest struct {
	Name               *string    `json:"name"`
	Gender             *string    `json:"gender"`
	BirthDate          *time.Time `json:"birthDate"`
	Lat                *float64   `json:"lat"`
	Long               *float64   `json:"long"`
	Anniversary        *time.Time `json:"anniversary"`
	RelationshipStatus *string    `json:"relationshipStatus"`
	Expectations       *string    `json:"expectations"`
	Lang               *string    `json:"lang"`
	DistanceUnit       *string    `json:"distanceUnit"`
	HideContent        *bool      `json:"hideContent"`
	LocationPermission *bool      `json:"locationPermission"`
	Mood               *string    `json:"mood"`
}

// Create 创建用户。uuid 缺省时生成；邀请码保证唯一
func (s *UserService) Create(req *CreateUserRequest) (*model.User, error) {
	if req.UUID != "" {
		existing, err := s.userRepo.FindByUUID(req.UUID)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if existing != nil {
			// 同一设备重复注册直接返回已有用户
			return existing, nil
		}
	}

	user := &model.User{
		UUID:               req.UUID,
		TransactionID:      req.TransactionID,
		SocialID:           req.SocialID,
		Name:               req.Name,
		Gender:             model.Gender(req.Gender),
		BirthDate:          req.BirthDate,
		Lat:                req.Lat,
		Long:               req.Long,
		Anniversary:        req.Anniversary,
		RelationshipStatus: req.RelationshipStatus,
		Expectations:       req.Expectations,
		Lang:               req.Lang,
		Mood:               req.Mood,
		IsActive:           true,
		LastActiveAt:       time.Now(),
	}
	if user.UUID == "" {
		user.UUID = uuid.New().String()
	}
	if user.Lang == "" {
		user.Lang = "en"
	}
	if req.DistanceUnit != "" {
		user.DistanceUnit = model.DistanceUnit(req.DistanceUnit)
	} else {
		user.DistanceUnit = model.DistanceKM
	}
	if req.HideContent != nil {
		user.HideContent = *req.HideContent
	}
	if req.LocationPermission != nil {
		user.LocationPermission = *req.LocationPermission
	}
	user.InviteCode = s.generateInviteCode()

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateInviteCode 生成未被占用的8位邀请码
func (s *UserService) generateInviteCode() string {
	for {
		code := uuid.New().String()[:8]
		_, err := s.userRepo.FindByInviteCode(code)
		if err == gorm.ErrRecordNotFound {
			return code
		}
	}
}

func (s *UserService) GetByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByUUID(uid string) (*model.User, error) {
	user, err := s.userRepo.FindByUUID(uid)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// Update 按字段更新，未提交的字段保持原值
func (s *UserService) Update(id uint, req *UpdateUserRequest) (*model.User, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Gender != nil {
		user.Gender = model.Gender(*req.Gender)
	}
	if req.BirthDate != nil {
		user.BirthDate = req.BirthDate
	}
	if req.Lat != nil {
		user.Lat = *req.Lat
	}
	if req.Long != nil {
		user.Long = *req.Long
	}
	if req.Anniversary != nil {
		user.Anniversary = req.Anniversary
	}
	if req.RelationshipStatus != nil {
		user.RelationshipStatus = *req.RelationshipStatus
	}
	if req.Expectations != nil {
		user.Expectations = *req.Expectations
	}
	if req.Lang != nil {
		user.Lang = *req.Lang
	}
	if req.DistanceUnit != nil {
		user.DistanceUnit = model.DistanceUnit(*req.DistanceUnit)
	}
	if req.HideContent != nil {
		user.HideContent = *req.HideContent
	}
	if req.LocationPermission != nil {
		user.LocationPermission = *req.LocationPermission
	}
	if req.Mood != nil {
		user.Mood = *req.Mood
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UploadProfileImage 上传头像并写回用户记录
func (s *UserService) UploadProfileImage(ctx context.Context, id uint, file *multipart.FileHeader) (string, error) {
	user, err := s.GetByID(id)
	if err != nil {
		return "", err
	}
	if !util.IsImage(file.Header.Get("Content-Type")) {
		return "", util.ErrInvalidFileType
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ext := filepath.Ext(file.Filename)
	filename := fmt.Sprintf("profiles/%d_%d%s", user.ID, time.Now().UnixNano(), ext)
	url, err := s.storage.Upload(ctx, filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		return "", err
	}

	if err := s.userRepo.UpdateProfileImg(user.ID, url); err != nil {
		return "", err
	}
	return url, nil
}

// Delete 软删除，保留30天可恢复
func (s *UserService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.userRepo.SoftDelete(id)
}

// Restore 恢复已软删除的用户
func (s *UserService) Restore(id uint) (*model.User, error) {
	user, err := s.userRepo.FindDeletedByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if err := s.userRepo.Restore(id); err != nil {
		return nil, err
	}
	user.DeletedAt = gorm.DeletedAt{}
	return user, nil
}

// PurgeExpired 清除软删除超过保留期的用户
func (s *UserService) PurgeExpired(retention time.Duration) (int, error) {
	deleted, err := s.userRepo.FindDeleted()
	if err != nil {
		return 0, err
	}

	cutoff := time.Now().Add(-retention)
	purged := 0
	for _, u := range deleted {
		if u.DeletedAt.Valid && u.DeletedAt.Time.Before(cutoff) {
			if err := s.userRepo.HardDelete(u.ID); err != nil {
				return purged, err
			}
			purged++
		}
	}
	return purged, nil
}

func (s *UserService) TouchLastActive(id uint) error {
	return s.userRepo.TouchLastActive(id)
}
