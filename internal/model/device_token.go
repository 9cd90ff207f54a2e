package model

// DeviceToken 推送通知的设备令牌
// swagger:model DeviceToken
type DeviceToken struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	DeviceToken string `gorm:"size:500;not null" json:"deviceToken"`
	DeviceType  string `gorm:"size:50;not null" json:"deviceType"` // ios / android / web
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

func (DeviceToken) TableName() string {
	return "device_tokens"
}

// AppSetting 键值形式的应用配置
// swagger:model AppSetting
type AppSetting struct {
	BaseModel
	Key         string `gorm:"size:100;unique;not null" json:"key"`
	Value       string `gorm:"type:text" json:"value"`
	Description string `gorm:"type:text" json:"description,omitempty"`
}

func (AppSetting) TableName() string {
	return "app_settings"
}
