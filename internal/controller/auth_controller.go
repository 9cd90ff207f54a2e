package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// @Summary 管理员注册
// @Description 创建后台管理员账号
// @Tags 管理后台
// @Accept json
// @Produce json
// @Param request body service.AdminRegisterRequest true "注册信息"
// @Success 201 {object} util.Response
// @Router /api/admin/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.AdminRegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	admin, err := c.AuthService.Register(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, admin)
}

// @Summary 管理员登录
// @Description 校验邮箱密码并返回 JWT
// @Tags 管理后台
// @Accept json
// @Produce json
// @Param request body service.AdminLoginRequest true "登录信息"
// @Success 200 {object} util.Response
// @Router /api/admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.AdminLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	resp, err := c.AuthService.Login(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, resp)
}

// @Summary 当前管理员信息
// @Description 返回当前登录管理员的资料
// @Tags 管理后台
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetAdminFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	admin, err := c.AuthService.GetAdmin(claims.AdminID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, admin)
}
