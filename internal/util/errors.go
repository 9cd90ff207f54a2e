package util

import "errors"

var (
	ErrUserNotFound         = errors.New("用户不存在")
	ErrRelationshipNotFound = errors.New("relationship not found")
	ErrCategoryNotFound     = errors.New("category not found")
	ErrTopicNotFound        = errors.New("topic not found")
	ErrSubTopicNotFound     = errors.New("sub-topic not found")
	ErrQuestionNotFound     = errors.New("question not found")
	ErrAnswerNotFound       = errors.New("answer not found")
	ErrJournalNotFound      = errors.New("journal not found")
	ErrInviteCodeInvalid    = errors.New("邀请码无效")
	ErrAlreadyPaired        = errors.New("user already in a relationship")
	ErrMissingTarget        = errors.New("either relationshipId or userId must be provided")
	ErrAdminNotFound        = errors.New("admin not found")
	ErrWrongPassword        = errors.New("邮箱或密码错误")
	ErrEmailRegistered      = errors.New("该邮箱已被注册")
	ErrCommentLimitReached  = errors.New("评论数量已达上限")
	ErrInvalidFileType      = errors.New("不支持的文件类型")
)
