package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	QuestionService *service.QuestionService
}

func NewQuestionController(questionService *service.QuestionService) *QuestionController {
	return &QuestionController{QuestionService: questionService}
}

// @Summary 创建问题
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.QuestionRequest true "问题信息"
// @Success 201 {object} util.Response
// @Router /api/questions [post]
func (c *QuestionController) Create(ctx *gin.Context) {
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.Create(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 问题列表
// @Tags 题库
// @Produce json
// @Param subTopicId query int false "子主题ID"
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/questions [get]
func (c *QuestionController) List(ctx *gin.Context) {
	subTopicID := parseUintQuery(ctx, "subTopicId")
	page, limit := pagination(ctx)

	questions, total, err := c.QuestionService.List(subTopicID, page, limit)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: questions, Total: total, Page: page, Limit: limit})
}

// @Summary 获取问题
// @Tags 题库
// @Produce json
// @Param id path int true "问题ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [get]
func (c *QuestionController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	q, err := c.QuestionService.GetByID(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 更新问题
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题ID"
// @Param request body service.QuestionRequest true "问题信息"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [put]
func (c *QuestionController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	q, err := c.QuestionService.Update(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// @Summary 删除问题
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param id path int true "问题ID"
// @Success 200 {object} util.Response
// @Router /api/questions/{id} [delete]
func (c *QuestionController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.QuestionService.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
