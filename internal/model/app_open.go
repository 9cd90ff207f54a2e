package model

import "time"

// DailyAppOpen 用户打开应用的记录，连续天数据此计算。
// 同一用户同一天可能有多条记录，计算层按 UTC 日历日去重。
// swagger:model DailyAppOpen
type DailyAppOpen struct {
	BaseModel
	UserID   uint      `gorm:"index;not null" json:"userId"`
	OpenedAt time.Time `gorm:"index;not null" json:"openedAt"`
}

func (DailyAppOpen) TableName() string {
	return "daily_app_opens"
}
