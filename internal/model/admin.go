package model

// Admin 内容管理后台账号，仅用于分类/问题等题库维护接口
// swagger:model Admin
type Admin struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Email    string `gorm:"size:100;unique;not null" json:"email"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (Admin) TableName() string {
	return "admins"
}
