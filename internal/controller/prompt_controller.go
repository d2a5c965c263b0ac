package controller

import (
	"errors"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/service"
	"essay_edu_backend/internal/util"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PromptController 处理写作题目相关的API请求
type PromptController struct {
	PromptService *service.PromptService
}

func NewPromptController(promptService *service.PromptService) *PromptController {
	return &PromptController{PromptService: promptService}
}

// ListPromptsRequest 定义题目列表查询参数
// swagger:model ListPromptsRequest
type ListPromptsRequest struct {
	Level    string `form:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	Category string `form:"category"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

// ListPrompts godoc
// @Summary 获取已发布题目列表
// @Description 分页返回已发布的写作题目，支持按水平和主题分类过滤
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param level query string false "写作水平 beginner|intermediate|advanced"
// @Param category query string false "主题分类"
// @Param page query int false "页码，默认1" default(1)
// @Param limit query int false "每页数量，默认10，最大50" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/v1/writing/prompts [get]
func (c *PromptController) ListPrompts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var request ListPromptsRequest
	request.Page = 1
	request.Limit = 10

	if err := ctx.ShouldBindQuery(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prompts, total, err := c.PromptService.ListPublished(ctx.Request.Context(),
		model.ProficiencyLevel(request.Level), request.Category, request.Page, request.Limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  prompts,
		Total: total,
		Page:  request.Page,
		Limit: request.Limit,
	})
}

// ListMyPrompts godoc
// @Summary 获取自己创建的题目列表
// @Description 老师查看自己创建的全部题目，包含未发布和定时发布的
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认1" default(1)
// @Param limit query int false "每页数量，默认10，最大50" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/v1/writing/prompts/mine [get]
func (c *PromptController) ListMyPrompts(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	var request ListPromptsRequest
	request.Page = 1
	request.Limit = 10

	if err := ctx.ShouldBindQuery(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prompts, total, err := c.PromptService.ListByCreator(user.UserID, request.Page, request.Limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  prompts,
		Total: total,
		Page:  request.Page,
		Limit: request.Limit,
	})
}

// GetPrompt godoc
// @Summary 获取题目详情
// @Description 返回题目及其参考材料，学生只能查看已发布的题目
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=model.WritingPrompt} "成功"
// @Failure 400 {object} util.Response "题目ID无效"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/v1/writing/prompts/{id} [get]
func (c *PromptController) GetPrompt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "题目ID无效")
		return
	}

	prompt, err := c.PromptService.GetPrompt(uint(id), user.Role)
	if err != nil {
		// 未发布的题目对学生一律按不存在处理
		if errors.Is(err, util.ErrPromptNotFound) || errors.Is(err, util.ErrPromptNotPublished) {
			util.Error(ctx, http.StatusNotFound, "题目不存在")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"prompt": prompt})
}

// CreatePrompt godoc
// @Summary 创建写作题目
// @Description 老师创建题目，可立即发布或设置定时发布时间
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.PromptInput true "题目信息"
// @Success 201 {object} util.Response{data=model.WritingPrompt} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "权限不足"
// @Router /api/v1/writing/prompts [post]
func (c *PromptController) CreatePrompt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	var input service.PromptInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prompt, err := c.PromptService.CreatePrompt(user.UserID, input)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Created(ctx, gin.H{"prompt": prompt})
}

// UpdatePrompt godoc
// @Summary 更新写作题目
// @Description 老师只能更新自己创建的题目，管理员不受限
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param request body service.PromptInput true "题目信息"
// @Success 200 {object} util.Response{data=model.WritingPrompt} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/v1/writing/prompts/{id} [put]
func (c *PromptController) UpdatePrompt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "题目ID无效")
		return
	}

	var input service.PromptInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	prompt, err := c.PromptService.UpdatePrompt(uint(id), user.UserID, user.Role, input)
	if err != nil {
		if errors.Is(err, util.ErrPromptNotFound) {
			util.Error(ctx, http.StatusNotFound, "题目不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.BadRequest(ctx, err.Error())
		}
		return
	}

	util.Success(ctx, gin.H{"prompt": prompt})
}

// DeletePrompt godoc
// @Summary 删除写作题目
// @Description 删除题目及其参考材料
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/v1/writing/prompts/{id} [delete]
func (c *PromptController) DeletePrompt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "题目ID无效")
		return
	}

	if err := c.PromptService.DeletePrompt(uint(id), user.UserID, user.Role); err != nil {
		if errors.Is(err, util.ErrPromptNotFound) {
			util.Error(ctx, http.StatusNotFound, "题目不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "题目删除成功"})
}

// PublishPrompt godoc
// @Summary 立即发布题目
// @Description 将未发布的题目立即发布，清除定时发布设置
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "题目不存在或已发布"
// @Router /api/v1/writing/prompts/{id}/publish [post]
func (c *PromptController) PublishPrompt(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "题目ID无效")
		return
	}

	if err := c.PromptService.PublishPrompt(uint(id), user.UserID, user.Role); err != nil {
		if errors.Is(err, util.ErrPromptNotFound) {
			util.Error(ctx, http.StatusNotFound, "题目不存在或已发布")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "题目发布成功"})
}

// UploadSourceText godoc
// @Summary 上传题目参考材料
// @Description 为题目上传阅读材料，支持 txt、md、pdf
// @Tags 写作题目
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param file formData file true "参考材料文件"
// @Success 201 {object} util.Response{data=model.PromptSourceText} "上传成功"
// @Failure 400 {object} util.Response "文件类型不支持"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "题目不存在"
// @Router /api/v1/writing/prompts/{id}/source-texts [post]
func (c *PromptController) UploadSourceText(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "题目ID无效")
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer src.Close()

	sourceText, err := c.PromptService.UploadSourceText(ctx.Request.Context(), uint(id), user.UserID, user.Role,
		file.Filename, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, util.ErrUnsupportedFileType) {
			util.BadRequest(ctx, "不支持的文件类型，仅支持 txt、md、pdf")
		} else if errors.Is(err, util.ErrPromptNotFound) {
			util.Error(ctx, http.StatusNotFound, "题目不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"sourceText": sourceText})
}

// DeleteSourceText godoc
// @Summary 删除题目参考材料
// @Description 删除题目下的指定参考材料及其存储对象
// @Tags 写作题目
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Param textId path int true "参考材料ID"
// @Success 200 {object} util.Response{data=map[string]interface{}} "成功"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "题目或参考材料不存在"
// @Router /api/v1/writing/prompts/{id}/source-texts/{textId} [delete]
func (c *PromptController) DeleteSourceText(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "题目ID无效")
		return
	}

	textID, err := strconv.ParseUint(ctx.Param("textId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "参考材料ID无效")
		return
	}

	if err := c.PromptService.DeleteSourceText(ctx.Request.Context(), uint(id), uint(textID), user.UserID, user.Role); err != nil {
		if errors.Is(err, util.ErrPromptNotFound) || errors.Is(err, util.ErrSourceTextNotFound) {
			util.Error(ctx, http.StatusNotFound, "题目或参考材料不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"message": "参考材料删除成功"})
}
