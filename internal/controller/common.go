package controller

import (
	"mime/multipart"
	"strconv"

	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// firstFile 多文件字段取第一个
func firstFile(files []*multipart.FileHeader) *multipart.FileHeader {
	if len(files) == 0 {
		return nil
	}
	return files[0]
}

// parseIDParam 解析路径中的数字ID；非法时写入 400 响应并返回 false
func parseIDParam(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "无效的 "+name)
		return 0, false
	}
	return uint(v), true
}

// parseUintQuery 解析可选的数字查询参数
func parseUintQuery(ctx *gin.Context, name string) *uint {
	s := ctx.Query(name)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return nil
	}
	id := uint(v)
	return &id
}

// pagination 解析分页参数，默认第1页每页20条
func pagination(ctx *gin.Context) (int, int) {
	page := 1
	limit := 20
	if p, err := strconv.Atoi(ctx.DefaultQuery("page", "1")); err == nil && p > 0 {
		page = p
	}
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "20")); err == nil && l > 0 && l <= 100 {
		limit = l
	}
	return page, limit
}

// notFoundErrors 服务层的未找到类错误，统一映射为 404
var notFoundErrors = map[error]bool{
	util.ErrUserNotFound:         true,
	util.ErrRelationshipNotFound: true,
	util.ErrCategoryNotFound:     true,
	util.ErrTopicNotFound:        true,
	util.ErrSubTopicNotFound:     true,
	util.ErrQuestionNotFound:     true,
	util.ErrAnswerNotFound:       true,
	util.ErrJournalNotFound:      true,
	util.ErrAdminNotFound:        true,
}

// serviceError 把服务层错误映射为响应
func serviceError(ctx *gin.Context, err error) {
	switch {
	case notFoundErrors[err]:
		util.NotFound(ctx, err.Error())
	case err == util.ErrInviteCodeInvalid,
		err == util.ErrAlreadyPaired,
		err == util.ErrMissingTarget,
		err == util.ErrEmailRegistered,
		err == util.ErrCommentLimitReached,
		err == util.ErrInvalidFileType:
		util.BadRequest(ctx, err.Error())
	case err == util.ErrWrongPassword:
		util.Unauthorized(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}
