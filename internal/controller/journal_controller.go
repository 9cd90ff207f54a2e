package controller

import (
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type JournalController struct {
	JournalService *service.JournalService
}

func NewJournalController(journalService *service.JournalService) *JournalController {
	return &JournalController{JournalService: journalService}
}

// @Summary 创建日记
// @Description 创建回忆或纪念日条目，支持多图和一个视频，视频自动抽取缩略图
// @Tags 日记
// @Accept multipart/form-data
// @Produce json
// @Param relationshipId formData int true "关系ID"
// @Param type formData string true "类型 memory/special_day"
// @Param title formData string false "标题"
// @Param description formData string false "描述"
// @Param images formData file false "图片（可多个）"
// @Param video formData file false "视频"
// @Success 201 {object} util.Response
// @Router /api/journals [post]
func (c *JournalController) Create(ctx *gin.Context) {
	var req service.CreateJournalRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	images := form.File["images"]
	journal, err := c.JournalService.Create(ctx.Request.Context(), &req, images, firstFile(form.File["video"]))
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, journal)
}

// @Summary 获取日记
// @Tags 日记
// @Produce json
// @Param id path int true "日记ID"
// @Success 200 {object} util.Response
// @Router /api/journals/{id} [get]
func (c *JournalController) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	detail, err := c.JournalService.GetByID(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, detail)
}

// @Summary 关系日记列表
// @Tags 日记
// @Produce json
// @Param relationshipId path int true "关系ID"
// @Param type query string false "类型 memory/special_day"
// @Success 200 {object} util.Response
// @Router /api/journals/relationship/{relationshipId} [get]
func (c *JournalController) ListByRelationship(ctx *gin.Context) {
	relationshipID, ok := parseIDParam(ctx, "relationshipId")
	if !ok {
		return
	}
	journalType := ctx.Query("type")
	details, err := c.JournalService.ListByRelationship(relationshipID, &journalType)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, details)
}

// @Summary 按日期分组的日记
// @Tags 日记
// @Produce json
// @Param relationshipId path int true "关系ID"
// @Success 200 {object} util.Response
// @Router /api/journals/relationship/{relationshipId}/datewise [get]
func (c *JournalController) ListDatewise(ctx *gin.Context) {
	relationshipID, ok := parseIDParam(ctx, "relationshipId")
	if !ok {
		return
	}
	grouped, err := c.JournalService.ListDatewise(relationshipID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, grouped)
}

// @Summary 日记地点列表
// @Tags 日记
// @Produce json
// @Param relationshipId path int true "关系ID"
// @Success 200 {object} util.Response
// @Router /api/journals/relationship/{relationshipId}/locations [get]
func (c *JournalController) Locations(ctx *gin.Context) {
	relationshipID, ok := parseIDParam(ctx, "relationshipId")
	if !ok {
		return
	}
	locations, err := c.JournalService.Locations(relationshipID)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, locations)
}

// @Summary 更新日记
// @Tags 日记
// @Accept json
// @Produce json
// @Param id path int true "日记ID"
// @Param request body service.UpdateJournalRequest true "更新内容"
// @Success 200 {object} util.Response
// @Router /api/journals/{id} [put]
func (c *JournalController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.UpdateJournalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	journal, err := c.JournalService.Update(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, journal)
}

// @Summary 删除日记
// @Description 同时删除该条目下的全部评论
// @Tags 日记
// @Produce json
// @Param id path int true "日记ID"
// @Success 200 {object} util.Response
// @Router /api/journals/{id} [delete]
func (c *JournalController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	if err := c.JournalService.Delete(id); err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 添加评论
// @Tags 日记
// @Accept json
// @Produce json
// @Param id path int true "日记ID"
// @Param request body service.CreateCommentRequest true "评论内容"
// @Success 201 {object} util.Response
// @Router /api/journals/{id}/comments [post]
func (c *JournalController) AddComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	var req service.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	comment, err := c.JournalService.AddComment(id, &req)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Created(ctx, comment)
}

// @Summary 评论列表
// @Tags 日记
// @Produce json
// @Param id path int true "日记ID"
// @Success 200 {object} util.Response
// @Router /api/journals/{id}/comments [get]
func (c *JournalController) ListComments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	comments, err := c.JournalService.ListComments(id)
	if err != nil {
		serviceError(ctx, err)
		return
	}
	util.Success(ctx, comments)
}
