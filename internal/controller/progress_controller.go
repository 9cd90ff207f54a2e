package controller

import (
	"pairbond_backend/internal/progress"
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// requireUserID 进度接口都以调用方用户为视角
func requireUserID(ctx *gin.Context) (uint, bool) {
	userID := parseUintQuery(ctx, "userId")
	if userID == nil {
		util.BadRequest(ctx, "userId 必填")
		return 0, false
	}
	return *userID, true
}

// @Summary 子主题进度
// @Description 返回调用方及其伴侣在该子主题下的答题进度与分区
// @Tags 进度
// @Produce json
// @Param id path int true "子主题ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/user-progress/sub-topic/{id} [get]
func (c *ProgressController) GetSubTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	p, err := c.ProgressService.GetSubTopicProgress(userID, id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 话题进度
// @Tags 进度
// @Produce json
// @Param id path int true "话题ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/user-progress/topic/{id} [get]
func (c *ProgressController) GetTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	p, err := c.ProgressService.GetTopicProgress(userID, id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 分类进度
// @Tags 进度
// @Produce json
// @Param id path int true "分类ID"
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/user-progress/category/{id} [get]
func (c *ProgressController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	p, err := c.ProgressService.GetCategoryProgress(userID, id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, p)
}

// @Summary 分区统计
// @Description 统计用户可见子主题在各分区的数量
// @Tags 进度
// @Produce json
// @Param userId query int true "用户ID"
// @Param categoryId query int false "分类ID"
// @Param topicId query int false "话题ID"
// @Success 200 {object} util.Response
// @Router /api/user-progress/divisions [get]
func (c *ProgressController) GetDivisions(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	counts, err := c.ProgressService.GetDivisionCounts(userID, parseUintQuery(ctx, "categoryId"), parseUintQuery(ctx, "topicId"))
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, counts)
}

// @Summary 按分区筛选子主题
// @Description division 取 unanswered/your_turn/answered/complete/all
// @Tags 进度
// @Produce json
// @Param userId query int true "用户ID"
// @Param division query string true "分区"
// @Param categoryId query int false "分类ID"
// @Param topicId query int false "话题ID"
// @Success 200 {object} util.Response
// @Router /api/user-progress/sub-topics [get]
func (c *ProgressController) GetSubTopicsByDivision(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	division := ctx.DefaultQuery("division", string(progress.DivisionAll))
	if !progress.ValidDivision(division) {
		util.BadRequest(ctx, "无效的 division")
		return
	}
	subTopics, err := c.ProgressService.GetSubTopicsByDivision(userID, progress.Division(division), parseUintQuery(ctx, "categoryId"), parseUintQuery(ctx, "topicId"))
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, subTopics)
}
