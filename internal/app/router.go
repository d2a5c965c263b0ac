package app

import (
	"essay_edu_backend/docs"
	"essay_edu_backend/internal/config"
	"essay_edu_backend/internal/middleware"
	"essay_edu_backend/internal/model"

	"essay_edu_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api/v1"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	// 1. 公共路由(无需登录)
	a.registerPublicRoutes(router, c)

	// 2. 需要授权的路由
	authGroup := router.Group("/api/v1")
	authGroup.Use(middleware.AuthMiddleware(), middleware.ActivityMiddleware(repos.user))
	{
		// 学生/通用 授权接口
		a.registerStudentRoutes(authGroup, c)

		// 教师相关接口
		a.registerTeacherRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api/v1")
	{
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/profile/level", c.auth.UpdateLevel)

	// 作文提交与批改
	rg.POST("/writing/submissions", c.writing.SubmitEssay)
	rg.GET("/writing/submissions", c.writing.ListSubmissions)
	rg.GET("/writing/submissions/:id", c.writing.GetSubmission)
	rg.GET("/writing/submissions/:id/analysis", c.writing.GetAnalysis)
	rg.POST("/writing/submissions/:id/reanalyze", c.writing.ReanalyzeSubmission)

	// 写作进度
	rg.GET("/writing/progress", c.progress.GetMyProgress)

	// 写作题库（学生只能看到已发布的题目）
	rg.GET("/writing/prompts", c.prompt.ListPrompts)
	rg.GET("/writing/prompts/:id", c.prompt.GetPrompt)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/writing")
	teacher.Use(middleware.RoleMiddleware(model.Teacher))
	{
		// 题库管理
		teacher.GET("/prompts/mine", c.prompt.ListMyPrompts)
		teacher.POST("/prompts", c.prompt.CreatePrompt)
		teacher.PUT("/prompts/:id", c.prompt.UpdatePrompt)
		teacher.DELETE("/prompts/:id", c.prompt.DeletePrompt)
		teacher.POST("/prompts/:id/publish", c.prompt.PublishPrompt)

		// 参考材料
		teacher.POST("/prompts/:id/source-texts", c.prompt.UploadSourceText)
		teacher.DELETE("/prompts/:id/source-texts/:textId", c.prompt.DeleteSourceText)

		// 学生进度查询
		teacher.GET("/students/:userId/progress", c.progress.GetStudentProgress)
	}
}
