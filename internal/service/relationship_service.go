package service

import (
	"time"

	"pairbond_backend/internal/model"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/util"

	"gorm.io/gorm"
)

// RelationshipService 配对关系服务
type RelationshipService struct {
	relRepo  *repository.RelationshipRepository
	userRepo *repository.UserRepository
}

func NewRelationshipService(relRepo *repository.RelationshipRepository, userRepo *repository.UserRepository) *RelationshipService {
	return &RelationshipService{relRepo: relRepo, userRepo: userRepo}
}

type CreateRelationshipRequest struct {
	User1ID   uint       `json:"user1Id" binding:"required"`
	User2ID   *uint      `json:"user2Id"`
	StartedAt *time.Time `json:"startedAt"`
}

type PairByInviteCodeRequest struct {
	UserID     uint   `json:"userId" binding:"required"`
	InviteCode string `json:"inviteCode" binding:"required"`
}

// RelationshipDetail 关系及双方用户信息
type RelationshipDetail struct {
	*model.Relationship
	User1        *model.User `json:"user1,omitempty"`
	User2        *model.User `json:"user2,omitempty"`
	DaysTogether int         `json:"daysTogether"`
}

// Create 直接创建关系；user2 可为空（单人模式）
func (s *RelationshipService) Create(req *CreateRelationshipRequest) (*model.Relationship, error) {
	if _, err := s.userRepo.FindByID(req.User1ID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if req.User2ID != nil {
		if _, err := s.userRepo.FindByID(*req.User2ID); err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrUserNotFound
			}
			return nil, err
		}
	}

	rel := &model.Relationship{
		User1ID:   req.User1ID,
		User2ID:   req.User2ID,
		StartedAt: req.StartedAt,
	}
	if rel.StartedAt == nil {
		now := time.Now()
		rel.StartedAt = &now
	}
	if err := s.relRepo.Create(rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// PairByInviteCode 通过邀请码配对。双方都不能已有生效中的关系
func (s *RelationshipService) PairByInviteCode(req *PairByInviteCodeRequest) (*model.Relationship, error) {
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}

	partner, err := s.userRepo.FindByInviteCode(req.InviteCode)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrInviteCodeInvalid
		}
		return nil, err
	}
	if partner.ID == user.ID {
		return nil, util.ErrInviteCodeInvalid
	}

	for _, id := range []uint{user.ID, partner.ID} {
		existing, err := s.relRepo.FindActiveByUserID(id)
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if existing != nil {
			return nil, util.ErrAlreadyPaired
		}
	}

	now := time.Now()
	partnerID := partner.ID
	rel := &model.Relationship{
		User1ID:   user.ID,
		User2ID:   &partnerID,
		StartedAt: &now,
	}
	if err := s.relRepo.Create(rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// GetByID 返回关系详情，断开的关系仍然可读
func (s *RelationshipService) GetByID(id uint) (*RelationshipDetail, error) {
	rel, err := s.relRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRelationshipNotFound
		}
		return nil, err
	}
	return s.buildDetail(rel)
}

// GetByUserID 返回用户相关的关系，优先生效中的
func (s *RelationshipService) GetByUserID(userID uint) (*RelationshipDetail, error) {
	rel, err := s.relRepo.FindActiveByUserID(userID)
	if err == gorm.ErrRecordNotFound {
		rel, err = s.relRepo.FindAnyByUserID(userID)
	}
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRelationshipNotFound
		}
		return nil, err
	}
	return s.buildDetail(rel)
}

func (s *RelationshipService) buildDetail(rel *model.Relationship) (*RelationshipDetail, error) {
	detail := &RelationshipDetail{Relationship: rel}

	user1, err := s.userRepo.FindByID(rel.User1ID)
	if err == nil {
		detail.User1 = user1
	}
	if rel.User2ID != nil {
		user2, err := s.userRepo.FindByID(*rel.User2ID)
		if err == nil {
			detail.User2 = user2
		}
	}
	detail.DaysTogether = DaysTogether(rel, time.Now())
	return detail, nil
}

// DaysTogether 自 startedAt 起的完整天数，首日计为1
func DaysTogether(rel *model.Relationship, now time.Time) int {
	if rel.StartedAt == nil {
		return 0
	}
	days := int(now.Sub(*rel.StartedAt).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}

type UpdateRelationshipRequest struct {
	StartedAt *time.Time `json:"startedAt"`
}

func (s *RelationshipService) Update(id uint, req *UpdateRelationshipRequest) (*model.Relationship, error) {
	rel, err := s.relRepo.FindByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrRelationshipNotFound
		}
		return nil, err
	}

	if req.StartedAt != nil {
		rel.StartedAt = req.StartedAt
	}
	if err := s.relRepo.Update(rel); err != nil {
		return nil, err
	}
	return rel, nil
}

// Disconnect 标记断开。记录保留，后续查询按单人模式处理
func (s *RelationshipService) Disconnect(id uint) error {
	if _, err := s.relRepo.FindByID(id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrRelationshipNotFound
		}
		return err
	}
	return s.relRepo.Disconnect(id)
}

func (s *RelationshipService) List(page, limit int) ([]model.Relationship, int64, error) {
	return s.relRepo.List(page, limit)
}
