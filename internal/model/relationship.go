package model

import "time"

// Relationship 两名用户之间的配对。
// User2ID 为空或 Disconnected 为 true 时按单人模式处理，下游计算不得视为错误。
// swagger:model Relationship
type Relationship struct {
	BaseModel
	User1ID      uint       `gorm:"index;not null" json:"user1Id"`
	User2ID      *uint      `gorm:"index" json:"user2Id"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	Disconnected bool       `gorm:"default:false" json:"disconnected"`
}

func (Relationship) TableName() string {
	return "relationships"
}

// PartnerID 返回 userID 的伴侣；关系断开或没有第二名用户时返回 nil
func (r *Relationship) PartnerID(userID uint) *uint {
	if r.Disconnected || r.User2ID == nil {
		return nil
	}
	if r.User1ID == userID {
		return r.User2ID
	}
	if *r.User2ID == userID {
		id := r.User1ID
		return &id
	}
	return nil
}

// MemberIDs 返回参与计算的用户ID；断开的关系只包含 user1
func (r *Relationship) MemberIDs() []uint {
	if r.Disconnected || r.User2ID == nil {
		return []uint{r.User1ID}
	}
	return []uint{r.User1ID, *r.User2ID}
}
