package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RelationshipController struct {
	RelationshipService *service.RelationshipService
}

func NewRelationshipController(relationshipService *service.RelationshipService) *RelationshipController {
	return &RelationshipController{RelationshipService: relationshipService}
}

// @Summary 创建关系
// @Description 直接建立配对关系，user2 可为空（单人模式）
// @Tags 关系
// @Accept json
// @Produce json
// @Param request body service.CreateRelationshipRequest true "关系信息"
// @Success 201 {object} util.Response
// @Router /api/relationships [post]
func (c *RelationshipController) Create(ctx *gin.Context) {
	var req service.CreateRelationshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rel, err := c.RelationshipService.Create(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, rel)
}

// @Summary 邀请码配对
// @Description 使用伴侣的邀请码建立配对关系
// @Tags 关系
// @Accept json
// @Produce json
// @Param request body service.PairByInviteCodeRequest true "配对信息"
// @Success 201 {object} util.Response
// @Router /api/relationships/pair [post]
func (c *RelationshipController) Pair(ctx *gin.Context) {
	var req service.PairByInviteCodeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rel, err := c.RelationshipService.PairByInviteCode(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, rel)
}

// @Summary 获取关系
// @Description 返回关系及双方用户信息，断开的关系仍可读
// @Tags 关系
// @Produce json
// @Param id path int true "关系ID"
// @Success 200 {object} util.Response
// @Router /api/relationships/{id} [get]
func (c *RelationshipController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	detail, err := c.RelationshipService.GetByID(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary 按用户获取关系
// @Tags 关系
// @Produce json
// @Param userId path int true "用户ID"
// @Success 200 {object} util.Response
// @Router /api/relationships/user/{userId} [get]
func (c *RelationshipController) GetByUserID(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	detail, err := c.RelationshipService.GetByUserID(userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary 更新关系
// @Tags 关系
// @Accept json
// @Produce json
// @Param id path int true "关系ID"
// @Param request body service.UpdateRelationshipRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/relationships/{id} [put]
func (c *RelationshipController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req service.UpdateRelationshipRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	rel, err := c.RelationshipService.Update(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, rel)
}

// @Summary 断开关系
// @Description 标记关系断开，记录保留，后续按单人模式处理
// @Tags 关系
// @Produce json
// @Param id path int true "关系ID"
// @Success 200 {object} util.Response
// @Router /api/relationships/{id}/disconnect [post]
func (c *RelationshipController) Disconnect(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.RelationshipService.Disconnect(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 关系列表
// @Description 管理后台分页查询全部关系
// @Tags 管理后台
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param limit query int false "每页数量" default(20)
// @Success 200 {object} util.Response
// @Router /api/admin/relationships [get]
func (c *RelationshipController) List(ctx *gin.Context) {
	page, limit := pagination(ctx)
	rels, total, err := c.RelationshipService.List(page, limit)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{List: rels, Total: total, Page: page, Limit: limit})
}
