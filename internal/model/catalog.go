package model

// Category 题库顶层分类（Never Have I Ever、This or That 等）
// swagger:model Category
type Category struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"size:100" json:"icon,omitempty"`
	Color       string `gorm:"size:50" json:"color,omitempty"` // 十六进制色值
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

func (Category) TableName() string {
	return "categories"
}

// Topic 分类下的话题（Icebreakers、Us & Love 等）
// swagger:model Topic
type Topic struct {
	BaseModel
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"size:100" json:"icon,omitempty"`
	Color       string `gorm:"size:50" json:"color,omitempty"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

func (Topic) TableName() string {
	return "topics"
}

// SubTopic 问题的叶子分组，进度与每日轮换都以子主题为单位计算
// swagger:model SubTopic
type SubTopic struct {
	BaseModel
	TopicID     *uint  `gorm:"index" json:"topicId"`
	CategoryID  *uint  `gorm:"index" json:"categoryId"`
	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"size:100" json:"icon,omitempty"`
	Color       string `gorm:"size:50" json:"color,omitempty"`
	Adult       bool   `gorm:"not null;default:false" json:"adult"`
	SortOrder   int    `gorm:"not null;default:0" json:"sortOrder"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

func (SubTopic) TableName() string {
	return "sub_topics"
}

type QuestionType string

const (
	QuestionYesNo          QuestionType = "yes_no"
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionPhoto          QuestionType = "photo"
	QuestionText           QuestionType = "text"
)

// swagger:model Question
type Question struct {
	BaseModel
	SubTopicID   *uint        `gorm:"index" json:"subTopicId"`
	QuestionText string       `gorm:"type:text;not null" json:"questionText"`
	QuestionType QuestionType `gorm:"type:enum('yes_no','multiple_choice','photo','text');not null;default:'yes_no'" json:"questionType"`
	OptionText   string       `gorm:"size:500" json:"optionText,omitempty"`
	OptionImg    string       `gorm:"type:text" json:"optionImg,omitempty"`
	SortOrder    int          `gorm:"not null;default:0" json:"sortOrder"`
	IsActive     bool         `gorm:"not null;default:true" json:"isActive"`
}

func (Question) TableName() string {
	return "questions"
}
