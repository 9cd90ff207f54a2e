package model

import (
	"strconv"
	"strings"
)

// ActiveSubtopicSet 首页随机子主题的缓存选集，按关系或单个用户保存。
// 当集合内所有子主题被所有相关用户完成后视为过期，服务层会重新抽样。
// swagger:model ActiveSubtopicSet
type ActiveSubtopicSet struct {
	BaseModel
	RelationshipID *uint  `gorm:"index" json:"relationshipId"`
	UserID         *uint  `gorm:"index" json:"userId"`
	SubtopicIDs    string `gorm:"size:500;not null" json:"subtopicIds"` // 逗号分隔
}

func (ActiveSubtopicSet) TableName() string {
	return "active_subtopic_sets"
}

// IDs 解析出子主题ID列表，忽略无法解析的片段
func (s *ActiveSubtopicSet) IDs() []uint {
	parts := strings.Split(s.SubtopicIDs, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			continue
		}
		ids = append(ids, uint(v))
	}
	return ids
}

// SetIDs 以逗号分隔形式保存子主题ID列表
func (s *ActiveSubtopicSet) SetIDs(ids []uint) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	s.SubtopicIDs = strings.Join(parts, ",")
}
