package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DeviceTokenController struct {
	DeviceTokenService *service.DeviceTokenService
}

func NewDeviceTokenController(deviceTokenService *service.DeviceTokenService) *DeviceTokenController {
	return &DeviceTokenController{DeviceTokenService: deviceTokenService}
}

// @Summary 注册设备令牌
// @Description 注册推送令牌，重复注册会重新激活
// @Tags 设备
// @Accept json
// @Produce json
// @Param request body service.RegisterTokenRequest true "令牌信息"
// @Success 201 {object} util.Response
// @Router /api/device-tokens [post]
func (c *DeviceTokenController) Register(ctx *gin.Context) {
	var req service.RegisterTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	token, err := c.DeviceTokenService.Register(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, token)
}

type deactivateTokenRequest struct {
	UserID      uint   `json:"userId" binding:"required"`
	DeviceToken string `json:"deviceToken" binding:"required"`
}

// @Summary 注销设备令牌
// @Tags 设备
// @Accept json
// @Produce json
// @Param request body deactivateTokenRequest true "令牌信息"
// @Success 200 {object} util.Response
// @Router /api/device-tokens/deactivate [post]
func (c *DeviceTokenController) Deactivate(ctx *gin.Context) {
	var req deactivateTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.DeviceTokenService.Deactivate(req.UserID, req.DeviceToken); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 用户的设备令牌
// @Tags 设备
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/device-tokens/user/{userId} [get]
func (c *DeviceTokenController) ListByUser(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}
	tokens, err := c.DeviceTokenService.ListActive(userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, tokens)
}
