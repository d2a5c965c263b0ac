package controller

import (
	"essay_edu_backend/internal/model"
	"essay_edu_backend/internal/service"
	"essay_edu_backend/internal/util"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ProgressController 处理写作进度相关的API请求
type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetMyProgress godoc
// @Summary 获取自己的写作进度
// @Description 返回累计篇数、平均分、最好成绩、近期走势以及长项短板
// @Tags 写作进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressOverview} "成功"
// @Failure 401 {object} util.Response "未授权"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/v1/writing/progress [get]
func (c *ProgressController) GetMyProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ProgressService.GetProgress(ctx.Request.Context(), user.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}

// GetStudentProgress godoc
// @Summary 获取指定学生的写作进度
// @Description 老师和管理员查看任意学生的进度快照
// @Tags 写作进度
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path int true "学生用户ID"
// @Success 200 {object} util.Response{data=service.ProgressOverview} "成功"
// @Failure 400 {object} util.Response "用户ID无效"
// @Failure 403 {object} util.Response "权限不足"
// @Failure 500 {object} util.Response "服务器内部错误"
// @Router /api/v1/writing/students/{userId}/progress [get]
func (c *ProgressController) GetStudentProgress(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil || (user.Role != model.Teacher && user.Role != model.Admin) {
		util.Forbidden(ctx)
		return
	}

	userID, err := strconv.ParseUint(ctx.Param("userId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "用户ID无效")
		return
	}

	overview, err := c.ProgressService.GetProgress(ctx.Request.Context(), uint(userID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, overview)
}
