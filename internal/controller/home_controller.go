package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	HomeService *service.HomeService
}

func NewHomeController(homeService *service.HomeService) *HomeController {
	return &HomeController{HomeService: homeService}
}

// @Summary 首页聚合
// @Description 一次返回用户、伴侣、在一起天数、连续天数、今日问题与分区统计
// @Tags 首页
// @Produce json
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/home [get]
func (c *HomeController) GetHome(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	overview, err := c.HomeService.GetHome(ctx.Request.Context(), userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

// @Summary 随机子主题
// @Description 返回首页随机子主题选集，集合在所有成员完成前保持不变
// @Tags 首页
// @Produce json
// @Param userId query int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/home/random-subtopics [get]
func (c *HomeController) GetRandomSubTopics(ctx *gin.Context) {
	userID, ok := requireUserID(ctx)
	if !ok {
		return
	}
	subTopics, err := c.HomeService.GetRandomSubTopics(userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, subTopics)
}

// @Summary 每日问题
// @Description 按固定轮换返回今日问题，问题当天全局一致；传 userId 时附带双方作答状态
// @Tags 首页
// @Produce json
// @Param userId query int false "用户ID"
// @Success 200 {object} util.Response
// @Router /api/daily-questions [get]
func (c *HomeController) GetDailyQuestion(ctx *gin.Context) {
	userID := parseUintQuery(ctx, "userId")
	result, err := c.HomeService.GetDailyQuestion(ctx.Request.Context(), userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}
