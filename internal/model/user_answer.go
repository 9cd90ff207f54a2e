package model

import "time"

type AnswerStatus string

const (
	AnswerComplete AnswerStatus = "complete"
	AnswerSkipped  AnswerStatus = "skipped"
)

// UserAnswer 用户对某个问题的作答，创建后不再变更语义（更新走覆盖写入）
// swagger:model UserAnswer
type UserAnswer struct {
	BaseModel
	UserID       uint         `gorm:"index:idx_user_question;not null" json:"userId"`
	QuestionID   uint         `gorm:"index:idx_user_question;not null" json:"questionId"`
	AnswerText   string       `gorm:"type:text" json:"answerText"`
	AnswerImg    string       `gorm:"size:500" json:"answerImg,omitempty"`
	AnswerStatus AnswerStatus `gorm:"type:enum('complete','skipped');not null;default:'complete'" json:"answerStatus"`
	AnsweredAt   time.Time    `gorm:"not null" json:"answeredAt"`
}

func (UserAnswer) TableName() string {
	return "user_answers"
}
