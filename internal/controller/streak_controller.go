package controller

import (
	"strconv"
	"time"

	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreakController struct {
	StreakService *service.StreakService
}

func NewStreakController(streakService *service.StreakService) *StreakController {
	return &StreakController{StreakService: streakService}
}

type recordOpenRequest struct {
	UserID uint `json:"userId" binding:"required"`
}

// @Summary 记录打开
// @Description 记录用户今天打开了应用，同一 UTC 日历日幂等
// @Tags 连续天数
// @Accept json
// @Produce json
// @Param request body recordOpenRequest true "用户"
// @Success 200 {object} util.Response
// @Router /api/streak/open [post]
func (c *StreakController) RecordOpen(ctx *gin.Context) {
	var req recordOpenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	created, err := c.StreakService.RecordOpen(req.UserID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"recorded": created})
}

// @Summary 单用户连续天数
// @Description 返回连续天数与最近7天的打开情况，调用本身会记录今天的打开
// @Tags 连续天数
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/streak/user/{userId} [get]
func (c *StreakController) GetSingleUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	streak, err := c.StreakService.GetSingleUserStreak(userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, streak)
}

// @Summary 关系连续天数
// @Description 返回双方连续天数、共同连续天数和指定月份的月历
// @Tags 连续天数
// @Produce json
// @Param relationshipId path int true "关系ID"
// @Param userId query int true "调用方用户ID"
// @Param year query int false "年份，默认当前年"
// @Param month query int false "月份 1-12，默认当前月"
// @Success 200 {object} util.Response
// @Router /api/streak/relationship/{relationshipId} [get]
func (c *StreakController) GetRelationship(ctx *gin.Context) {
	relationshipID, ok := parseIDParam(ctx, "relationshipId")
	if !ok {
		return
	}
	userID := parseUintQuery(ctx, "userId")
	if userID == nil {
		util.BadRequest(ctx, "userId 必填")
		return
	}

	now := time.Now().UTC()
	year := now.Year()
	month := now.Month()
	if y, err := strconv.Atoi(ctx.Query("year")); err == nil && y > 0 {
		year = y
	}
	if m, err := strconv.Atoi(ctx.Query("month")); err == nil && m >= 1 && m <= 12 {
		month = time.Month(m)
	}

	streak, err := c.StreakService.GetRelationshipStreak(relationshipID, *userID, year, month)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, streak)
}
