package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

// @Summary 提交作答
// @Description 同一问题重复作答时覆盖原答案
// @Tags 作答
// @Accept json
// @Produce json
// @Param request body service.CreateAnswerRequest true "作答内容"
// @Success 201 {object} util.Response
// @Router /api/user-answers [post]
func (c *AnswerController) Create(ctx *gin.Context) {
	var req service.CreateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	answer, err := c.AnswerService.Create(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}

// @Summary 批量提交作答
// @Description 一次提交多个问题的答案，整体一个事务
// @Tags 作答
// @Accept json
// @Produce json
// @Param request body service.BulkAnswerRequest true "批量作答内容"
// @Success 201 {object} util.Response
// @Router /api/user-answers/bulk [post]
func (c *AnswerController) CreateBulk(ctx *gin.Context) {
	var req service.BulkAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	answers, err := c.AnswerService.CreateBulk(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, answers)
}

// @Summary 提交带图片的作答
// @Description 照片类问题的作答，multipart 表单提交
// @Tags 作答
// @Accept multipart/form-data
// @Produce json
// @Param userId formData int true "用户ID"
// @Param questionId formData int true "问题ID"
// @Param answerText formData string false "文字答案"
// @Param image formData file false "图片文件"
// @Success 201 {object} util.Response
// @Router /api/user-answers/with-image [post]
func (c *AnswerController) CreateWithImage(ctx *gin.Context) {
	userID := util.MustParseUint(ctx.PostForm("userId"))
	questionID := util.MustParseUint(ctx.PostForm("questionId"))
	if userID == 0 || questionID == 0 {
		util.BadRequest(ctx, "userId 和 questionId 必填")
		return
	}

	file, _ := ctx.FormFile("image")
	answer, err := c.AnswerService.CreateWithImage(ctx.Request.Context(), userID, questionID, ctx.PostForm("answerText"), file)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, answer)
}

// @Summary 作答列表
// @Tags 作答
// @Produce json
// @Param userId query int false "用户ID"
// @Param questionId query int false "问题ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/user-answers [get]
func (c *AnswerController) List(ctx *gin.Context) {
	userID := parseUintQuery(ctx, "userId")
	questionID := parseUintQuery(ctx, "questionId")
	page, limit := pagination(ctx)

	answers, total, err := c.AnswerService.List(userID, questionID, page, limit)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: answers, Total: total, Page: page, Limit: limit})
}

// @Summary 获取作答
// @Tags 作答
// @Produce json
// @Param id path int true "作答ID"
// @Success 200 {object} util.Response
// @Router /api/user-answers/{id} [get]
func (c *AnswerController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	answer, err := c.AnswerService.GetByID(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// @Summary 更新作答
// @Tags 作答
// @Accept json
// @Produce json
// @Param id path int true "作答ID"
// @Param request body service.UpdateAnswerRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/user-answers/{id} [put]
func (c *AnswerController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.UpdateAnswerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	answer, err := c.AnswerService.Update(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, answer)
}

// @Summary 删除作答
// @Tags 作答
// @Produce json
// @Param id path int true "作答ID"
// @Success 200 {object} util.Response
// @Router /api/user-answers/{id} [delete]
func (c *AnswerController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.AnswerService.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
