package model

import (
	"time"
)

type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderOther       Gender = "other"
	GenderNotDisclose Gender = "prefer_not_to_say"
)

type DistanceUnit string

const (
	DistanceKM    DistanceUnit = "km"
	DistanceMiles DistanceUnit = "miles"
)

// User 应用用户。注册无需密码，客户端凭 uuid 识别；邀请码用于配对。
// swagger:model User
type User struct {
	BaseModel
	UUID               string       `gorm:"size:100;unique;not null" json:"uuid"`
	TransactionID      string       `gorm:"size:255" json:"transactionId,omitempty"`
	SocialID           string       `gorm:"size:255" json:"socialId,omitempty"`
	Name               string       `gorm:"size:255" json:"name"`
	Gender             Gender       `gorm:"type:enum('male','female','other','prefer_not_to_say')" json:"gender,omitempty"`
	BirthDate          *time.Time   `json:"birthDate,omitempty"`
	Lat                float64      `gorm:"type:decimal(10,8)" json:"lat,omitempty"`
	Long               float64      `gorm:"type:decimal(11,8)" json:"long,omitempty"`
	Anniversary        *time.Time   `json:"anniversary,omitempty"`
	RelationshipStatus string       `gorm:"size:100" json:"relationshipStatus,omitempty"`
	Expectations       string       `gorm:"type:text" json:"expectations,omitempty"`
	InviteCode         string       `gorm:"size:100;unique" json:"inviteCode"`
	Lang               string       `gorm:"size:10;default:'en'" json:"lang"`
	DistanceUnit       DistanceUnit `gorm:"type:enum('km','miles');default:'km'" json:"distanceUnit"`
	HideContent        bool         `gorm:"default:false" json:"hideContent"` // 隐藏成人内容
	LocationPermission bool         `gorm:"default:false" json:"locationPermission"`
	Mood               string       `gorm:"size:100" json:"mood,omitempty"`
	ProfileImg         string       `gorm:"size:500" json:"profileImg,omitempty"`
	IsActive           bool         `gorm:"default:true" json:"isActive"`
	LastActiveAt       time.Time    `json:"lastActiveAt"`
}

func (User) TableName() string {
	return "users"
}
