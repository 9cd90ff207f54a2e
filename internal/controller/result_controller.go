package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResultController struct {
	ResultService *service.ResultService
}

func NewResultController(resultService *service.ResultService) *ResultController {
	return &ResultController{ResultService: resultService}
}

// @Summary 子主题结果对比
// @Description 返回双方在该子主题下的逐题答案与契合度百分比
// @Tags 结果
// @Produce json
// @Param id path int true "子主题ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/results/sub-topic/{id} [get]
func (c *ResultController) GetSubTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	result, err := c.ResultService.GetSubTopicResult(userID, id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// @Summary 单题结果对比
// @Tags 结果
// @Produce json
// @Param id path int true "问题ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/results/question/{id} [get]
func (c *ResultController) GetQuestion(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	result, err := c.ResultService.GetQuestionResult(userID, id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
