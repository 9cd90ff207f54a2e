package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController 题库分类接口（分类 / 话题 / 子主题）
type CatalogController struct {
	CatalogService *service.CatalogService
}

func NewCatalogController(catalogService *service.CatalogService) *CatalogController {
	return &CatalogController{CatalogService: catalogService}
}

// @Summary 创建分类
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CategoryRequest true "分类信息"
// @Success 201 {object} util.Response
// @Router /api/categories [post]
func (c *CatalogController) CreateCategory(ctx *gin.Context) {
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	category, err := c.CatalogService.CreateCategory(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, category)
}

// @Summary 分类列表
// @Tags 题库
// @Produce json
// @Param all query bool false "包含停用的分类"
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *CatalogController) ListCategories(ctx *gin.Context) {
	activeOnly := ctx.Query("all") != "true"
	categories, err := c.CatalogService.ListCategories(activeOnly)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// @Summary 获取分类
// @Tags 题库
// @Produce json
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response
// @Router /api/categories/{id} [get]
func (c *CatalogController) GetCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	category, err := c.CatalogService.GetCategory(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// @Summary 更新分类
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Param request body service.CategoryRequest true "分类信息"
// @Success 200 {object} util.Response
// @Router /api/categories/{id} [put]
func (c *CatalogController) UpdateCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.CategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	category, err := c.CatalogService.UpdateCategory(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, category)
}

// @Summary 删除分类
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param id path int true "分类ID"
// @Success 200 {object} util.Response
// @Router /api/categories/{id} [delete]
func (c *CatalogController) DeleteCategory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteCategory(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 创建话题
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.TopicRequest true "话题信息"
// @Success 201 {object} util.Response
// @Router /api/topics [post]
func (c *CatalogController) CreateTopic(ctx *gin.Context) {
	var req service.TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	topic, err := c.CatalogService.CreateTopic(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, topic)
}

// @Summary 话题列表
// @Tags 题库
// @Produce json
// @Param all query bool false "包含停用的话题"
// @Success 200 {object} util.Response
// @Router /api/topics [get]
func (c *CatalogController) ListTopics(ctx *gin.Context) {
	activeOnly := ctx.Query("all") != "true"
	topics, err := c.CatalogService.ListTopics(activeOnly)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// @Summary 获取话题
// @Tags 题库
// @Produce json
// @Param id path int true "话题ID"
// @Success 200 {object} util.Response
// @Router /api/topics/{id} [get]
func (c *CatalogController) GetTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	topic, err := c.CatalogService.GetTopic(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// @Summary 更新话题
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "话题ID"
// @Param request body service.TopicRequest true "话题信息"
// @Success 200 {object} util.Response
// @Router /api/topics/{id} [put]
func (c *CatalogController) UpdateTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.TopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	topic, err := c.CatalogService.UpdateTopic(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}

// @Summary 删除话题
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param id path int true "话题ID"
// @Success 200 {object} util.Response
// @Router /api/topics/{id} [delete]
func (c *CatalogController) DeleteTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteTopic(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 创建子主题
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SubTopicRequest true "子主题信息"
// @Success 201 {object} util.Response
// @Router /api/sub-topics [post]
func (c *CatalogController) CreateSubTopic(ctx *gin.Context) {
	var req service.SubTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	st, err := c.CatalogService.CreateSubTopic(&req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, st)
}

// @Summary 子主题列表
// @Description 可按分类/话题过滤；传 userId 时按该用户的成人内容偏好过滤
// @Tags 题库
// @Produce json
// @Param categoryId query int false "分类ID"
// @Param topicId query int false "话题ID"
// @Param userId query int false "用户ID"
// @Success 200 {object} util.Response
// @Router /api/sub-topics [get]
func (c *CatalogController) ListSubTopics(ctx *gin.Context) {
	categoryID := parseUintQuery(ctx, "categoryId")
	topicID := parseUintQuery(ctx, "topicId")
	userID := parseUintQuery(ctx, "userId")

	subTopics, err := c.CatalogService.ListSubTopics(categoryID, topicID, userID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, subTopics)
}

// @Summary 获取子主题
// @Tags 题库
// @Produce json
// @Param id path int true "子主题ID"
// @Success 200 {object} util.Response
// @Router /api/sub-topics/{id} [get]
func (c *CatalogController) GetSubTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	st, err := c.CatalogService.GetSubTopic(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 子主题及问题
// @Description 返回子主题与其生效中的问题列表
// @Tags 题库
// @Produce json
// @Param id path int true "子主题ID"
// @Success 200 {object} util.Response
// @Router /api/sub-topics/{id}/questions [get]
func (c *CatalogController) GetSubTopicWithQuestions(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	st, err := c.CatalogService.GetSubTopicWithQuestions(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 更新子主题
// @Tags 题库
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "子主题ID"
// @Param request body service.SubTopicRequest true "子主题信息"
// @Success 200 {object} util.Response
// @Router /api/sub-topics/{id} [put]
func (c *CatalogController) UpdateSubTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.SubTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	st, err := c.CatalogService.UpdateSubTopic(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, st)
}

// @Summary 删除子主题
// @Tags 题库
// @Produce json
// @Security BearerAuth
// @Param id path int true "子主题ID"
// @Success 200 {object} util.Response
// @Router /api/sub-topics/{id} [delete]
func (c *CatalogController) DeleteSubTopic(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.CatalogService.DeleteSubTopic(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
