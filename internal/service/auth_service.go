package service

import (
	"pairbond_backend/internal/config"
	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService 管理后台认证服务
type AuthService struct {
	adminRepo *repository.AdminRepository
	cfg       *config.Config
}

func NewAuthService(adminRepo *repository.AdminRepository, cfg *config.Config) *AuthService {
	return &AuthService{adminRepo: adminRepo, cfg: cfg}
}

type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token string       `json:"token"`
	Admin *model.Admin `json:"admin"`
}

// Register 创建管理员账号，邮箱唯一
func (s *AuthService) Register(req *AdminRegisterRequest) (*model.Admin, error) {
	existing, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, util.ErrEmailRegistered
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &model.Admin{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Login 校验密码并签发 JWT
func (s *AuthService) Login(req *AdminLoginRequest) (*AdminLoginResponse, error) {
	admin, err := s.adminRepo.FindByEmail(req.Email)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAdminNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)); err != nil {
		return nil, util.ErrWrongPassword
	}

	token, err := util.GenerateJWT(admin.ID, admin.Email, s.cfg.JWT.Secret, s.cfg.JWT.ExpireTime)
	if err != nil {
		return nil, err
	}

	return &AdminLoginResponse{Token: token, Admin: admin}, nil
}

// GetAdmin 按ID获取管理员信息
func (s *AuthService) GetAdmin(id uint) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}
