package repository

import (
	"pairbond_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUUID(uuid string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("uuid = ?", uuid).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByInviteCode(code string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("invite_code = ?", code).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateProfileImg(id uint, url string) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("profile_img", url).Error
}

func (r *UserRepository) TouchLastActive(id uint) error {
	return r.DB.Model(&model.User{}).Where("id = ?", id).Update("last_active_at", time.Now()).Error
}

// SoftDelete 软删除，可通过 Restore 恢复
func (r *UserRepository) SoftDelete(id uint) error {
	return r.DB.Delete(&model.User{}, id).Error
}

// HardDelete 永久删除
func (r *UserRepository) HardDelete(id uint) error {
	return r.DB.Unscoped().Delete(&model.User{}, id).Error
}

func (r *UserRepository) Restore(id uint) error {
	return r.DB.Unscoped().Model(&model.User{}).Where("id = ?", id).Update("deleted_at", nil).Error
}

func (r *UserRepository) FindDeleted() ([]model.User, error) {
	var users []model.User
	err := r.DB.Unscoped().Where("deleted_at IS NOT NULL").Find(&users).Error
	return users, err
}

func (r *UserRepository) FindDeletedByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Unscoped().Where("id = ? AND deleted_at IS NOT NULL", id).First(&user).Error
	return &user, err
}
