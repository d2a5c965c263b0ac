package app

import (
	"context"
	"essay_edu_backend/internal/config"
	"essay_edu_backend/internal/controller"
	"essay_edu_backend/internal/engine"
	"essay_edu_backend/internal/repository"
	"essay_edu_backend/internal/service"
	"essay_edu_backend/pkg/database"
	"essay_edu_backend/pkg/logger"
	"essay_edu_backend/pkg/monitoring"
	"essay_edu_backend/pkg/security"
	"essay_edu_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Engine          *engine.Engine
	services        *services
	tracerProvider  *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	prompt     *repository.PromptRepository
	submission *repository.SubmissionRepository
	analysis   *repository.AnalysisRepository
	progress   *repository.ProgressRepository
}

type services struct {
	auth     *service.AuthService
	storage  *service.StorageService
	prompt   *service.PromptService
	progress *service.ProgressService
	writing  *service.WritingService
}

type controllers struct {
	auth     *controller.AuthController
	writing  *controller.WritingController
	prompt   *controller.PromptController
	progress *controller.ProgressController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置文件热更新入口。只替换配置指针并触发回调，
// 引擎后端、限流参数这类启动时固化的部分需要重启才生效。
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("配置已热更新", zap.String("mode", cfg.Server.Mode))
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		prompt:     repository.NewPromptRepository(db),
		submission: repository.NewSubmissionRepository(db),
		analysis:   repository.NewAnalysisRepository(db),
		progress:   repository.NewProgressRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.prompt = service.NewPromptService(repos.prompt, s.storage, rdb)
	s.progress = service.NewProgressService(repos.progress, rdb)
	s.writing = service.NewWritingService(a.Engine, repos.submission, repos.analysis, repos.prompt, repos.user, s.progress)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth),
		writing:  controller.NewWritingController(s.writing),
		prompt:   controller.NewPromptController(s.prompt),
		progress: controller.NewProgressController(s.progress),
		health:   controller.NewHealthController(db, rdb, a.Engine),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	// 认证中间件每次请求从上下文取配置，热更新后的 JWT 密钥即时生效
	router.Use(func(c *gin.Context) {
		c.Set("config", a.Config)
		c.Next()
	})

	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 600
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// buildEngine 按配置装配批改引擎。后端探测失败只降级为纯规则批改，不阻塞启动。
func buildEngine(cfg *config.Config) *engine.Engine {
	var backend engine.InferenceBackend
	switch cfg.ML.Mode {
	case "script":
		backend = engine.NewScriptBackend(cfg.ML.PythonBin, cfg.ML.ScriptPath)
	case "http":
		backend = engine.NewHTTPBackend(cfg.ML.URL, cfg.ML.APIKey)
	case "", "off":
	default:
		logger.Log.Warn("未知的 ML 模式，按 off 处理", zap.String("mode", cfg.ML.Mode))
	}

	mlReady := false
	if backend != nil {
		mlReady = engine.ProbeBackend(context.Background(), backend, cfg.ML.ProbeTimeout, logger.Log)
	}

	return engine.NewEngine(backend, mlReady, cfg.ML.InferTimeout, logger.Log)
}

func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		for range ticker.C {
			s.prompt.PublishDueScheduled(time.Now())
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	migrate := cfg.Server.Mode != "release" || cfg.ForceMigrate
	db, err := database.InitDB(&cfg.Database, migrate)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Redis 不可用时降级为无缓存模式，不影响批改主链路
	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("Redis不可用，降级为无缓存模式", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	app.Engine = buildEngine(cfg)

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	// 监控初始化
	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("essay-writing-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracerProvider = tp
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.startBackgroundTasks(services)

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
