package model

import "time"

type JournalType string

const (
	JournalMemory     JournalType = "memory"
	JournalSpecialDay JournalType = "special_day"
)

// Journal 情侣共同的日记条目（回忆或纪念日）
// swagger:model Journal
type Journal struct {
	BaseModel
	RelationshipID uint        `gorm:"index;not null" json:"relationshipId"`
	Type           JournalType `gorm:"size:20;not null" json:"type"`
	Title          string      `gorm:"type:text" json:"title,omitempty"`
	ColorCode      string      `gorm:"size:50" json:"colorCode,omitempty"`
	DateTime       time.Time   `gorm:"not null" json:"dateTime"`
	Lat            float64     `gorm:"type:decimal(10,8)" json:"lat,omitempty"`
	Long           float64     `gorm:"type:decimal(11,8)" json:"long,omitempty"`
	Location       string      `gorm:"size:255" json:"location,omitempty"`
	Images         string      `gorm:"type:text" json:"images,omitempty"` // 逗号分隔的URL
	VideoURL       string      `gorm:"size:500" json:"videoUrl,omitempty"`
	VideoThumb     string      `gorm:"size:500" json:"videoThumb,omitempty"`
	Description    string      `gorm:"type:text" json:"description,omitempty"`
}

func (Journal) TableName() string {
	return "journal"
}

// JournalComment 日记条目下的评论
// swagger:model JournalComment
type JournalComment struct {
	BaseModel
	JournalID uint   `gorm:"index;not null" json:"journalId"`
	UserID    uint   `gorm:"not null" json:"userId"`
	Comment   string `gorm:"type:text;not null" json:"comment"`
}

func (JournalComment) TableName() string {
	return "journal_comments"
}
