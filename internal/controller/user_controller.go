package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// @Summary 创建用户
// @Description 注册新用户，uuid 缺省时自动生成，同一 uuid 重复提交返回已有用户
// @Tags 用户
// @Accept json
// @Produce json
// @Param request body service.CreateUserRequest true "用户信息"
// @Success 201 {object} util.Response
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req service.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, user)
}

// @Summary 获取用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.UserService.GetByID(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 按 UUID 获取用户
// @Tags 用户
// @Produce json
// @Param uuid path string true "设备UUID"
// @Success 200 {object} util.Response
// @Router /api/users/uuid/{uuid} [get]
func (c *UserController) GetByUUID(ctx *gin.Context) {
	user, err := c.UserService.GetByUUID(ctx.Param("uuid"))
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 更新用户
// @Description 按字段更新，未提交的字段保持原值
// @Tags 用户
// @Accept json
// @Produce json
// @Param id path int true "用户ID"
// @Param request body service.UpdateUserRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/users/{id} [put]
func (c *UserController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Update(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary 上传头像
// @Tags 用户
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "用户ID"
// @Param image formData file true "头像文件"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/profile-image [post]
func (c *UserController) UploadProfileImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	file, err := ctx.FormFile("image")
	if err != nil {
		util.BadRequest(ctx, "缺少图片文件")
		return
	}

	url, err := c.UserService.UploadProfileImage(ctx.Request.Context(), id, file)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"profileImg": url})
}

// @Summary 删除用户
// @Description 软删除，保留期内可恢复
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id} [delete]
func (c *UserController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.UserService.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 恢复用户
// @Description 恢复保留期内被软删除的用户
// @Tags 用户
// @Produce json
// @Param id path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/users/{id}/restore [post]
func (c *UserController) Restore(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.UserService.Restore(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}
