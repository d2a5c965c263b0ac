package controller

import (
	"errors"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/service"
	"essay_edu_backend/internal/util"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WritingController 处理作文提交与批改相关的API请求
type WritingController struct {
	WritingService *service.WritingService
}

func NewWritingController(writingService *service.WritingService) *WritingController {
	return &WritingController{WritingService: writingService}
}

// SubmitEssayRequest 定义作文提交请求模型
// swagger:model SubmitEssayRequest
type SubmitEssayRequest struct {
	PromptID         *uint  `json:"promptId"`
	Title            string `json:"title"`
	Essay            string `json:"essay" binding:"required"`
	Level            string `json:"level" binding:"omitempty,oneof=beginner intermediate advanced"`
	TimeSpentSeconds int    `json:"timeSpentSeconds" binding:"omitempty,min=0"`
}

// ListSubmissionsRequest 定义提交列表查询参数
// swagger:model ListSubmissionsRequest
type ListSubmissionsRequest struct {
	Page  int `form:"page" binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// SubmitEssay godoc
// @Summary 提交作文并批改
// @Description 提交一篇作文，同步返回批改结果；promptId 为空表示自由写作
// @Tags 写作批改
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SubmitEssayRequest true "作文提交请求"
// @Success 200 {object} util.Response{data=service.AnalyzeEssayOutput} "成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/v1/writing/submissions [post]
func (c *WritingController) SubmitEssay(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var request SubmitEssayRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	output, err := c.WritingService.AnalyzeEssay(ctx.Request.Context(), service.AnalyzeEssayInput{
		UserID:           user.UserID,
		PromptID:         request.PromptID,
		Title:            request.Title,
		Essay:            request.Essay,
		Level:            model.ProficiencyLevel(request.Level),
		TimeSpentSeconds: request.TimeSpentSeconds,
	})
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			util.BadRequest(ctx, ve.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, output)
}

// ListSubmissions godoc
// @Summary 获取自己的提交列表
// @Description 按时间倒序分页返回当前用户的作文提交
// @Tags 写作批改
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "页码，默认1" default(1)
// @Param limit query int false "每页数量，默认10，最大50" default(10)
// @Success 200 {object} util.Response{data=util.PageResponse} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/v1/writing/submissions [get]
func (c *WritingController) ListSubmissions(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var request ListSubmissionsRequest
	request.Page = 1
	request.Limit = 10

	if err := ctx.ShouldBindQuery(&request); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	submissions, total, err := c.WritingService.ListSubmissions(user.UserID, request.Page, request.Limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  submissions,
		Total: total,
		Page:  request.Page,
		Limit: request.Limit,
	})
}

// GetSubmission godoc
// @Summary 获取单个提交
// @Description 返回提交内容及其批改结果，学生只能查看自己的提交
// @Tags 写作批改
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=model.EssaySubmission} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/v1/writing/submissions/{id} [get]
func (c *WritingController) GetSubmission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	submission, err := c.WritingService.GetSubmission(user.UserID, user.Role, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.Error(ctx, http.StatusNotFound, "提交不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"submission": submission})
}

// GetAnalysis godoc
// @Summary 获取提交的批改结果
// @Description 返回指定提交的批改结果，未批改的提交返回404
// @Tags 写作批改
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=model.EssayAnalysis} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "提交或批改结果不存在"
// @Router /api/v1/writing/submissions/{id}/analysis [get]
func (c *WritingController) GetAnalysis(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	analysis, err := c.WritingService.GetAnalysis(user.UserID, user.Role, ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.Error(ctx, http.StatusNotFound, "提交不存在")
		} else if errors.Is(err, util.ErrAnalysisNotFound) {
			util.Error(ctx, http.StatusNotFound, "批改结果不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, gin.H{"analysis": analysis})
}

// ReanalyzeSubmission godoc
// @Summary 重新批改提交
// @Description 按已存储的作文内容重跑批改并覆盖旧结果，不重复累计进度
// @Tags 写作批改
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "提交ID"
// @Success 200 {object} util.Response{data=service.AnalyzeEssayOutput} "成功"
// @Failure 400 {object} util.Response "作文内容不合法"
// @Failure 401 {object} util.Response "未授权"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 404 {object} util.Response "提交不存在"
// @Router /api/v1/writing/submissions/{id}/reanalyze [post]
func (c *WritingController) ReanalyzeSubmission(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	output, err := c.WritingService.ReanalyzeSubmission(ctx.Request.Context(), user.UserID, user.Role, ctx.Param("id"))
	if err != nil {
		var ve *engine.ValidationError
		if errors.As(err, &ve) {
			util.BadRequest(ctx, ve.Error())
		} else if errors.Is(err, util.ErrSubmissionNotFound) {
			util.Error(ctx, http.StatusNotFound, "提交不存在")
		} else if errors.Is(err, util.ErrPermissionDenied) {
			util.Forbidden(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, output)
}
