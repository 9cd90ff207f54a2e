package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pairbond_backend/internal/config"
	"pairbond_backend/internal/controller"
	"pairbond_backend/internal/repository"
	"pairbond_backend/internal/service"
	"pairbond_backend/internal/util"
	"pairbond_backend/pkg/database"
	"pairbond_backend/pkg/logger"
	"pairbond_backend/pkg/monitoring"
	"pairbond_backend/pkg/security"
	"pairbond_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user         *repository.UserRepository
	relationship *repository.RelationshipRepository
	category     *repository.CategoryRepository
	topic        *repository.TopicRepository
	subTopic     *repository.SubTopicRepository
	question     *repository.QuestionRepository
	answer       *repository.UserAnswerRepository
	journal      *repository.JournalRepository
	appOpen      *repository.AppOpenRepository
	rotationSet  *repository.RotationSetRepository
	appSetting   *repository.AppSettingRepository
	deviceToken  *repository.DeviceTokenRepository
	admin        *repository.AdminRepository
}

type services struct {
	auth         *service.AuthService
	storage      *service.StorageService
	user         *service.UserService
	relationship *service.RelationshipService
	catalog      *service.CatalogService
	question     *service.QuestionService
	answer       *service.AnswerService
	journal      *service.JournalService
	streak       *service.StreakService
	progress     *service.ProgressService
	result       *service.ResultService
	home         *service.HomeService
	deviceToken  *service.DeviceTokenService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	relationship *controller.RelationshipController
	catalog      *controller.CatalogController
	question     *controller.QuestionController
	answer       *controller.AnswerController
	journal      *controller.JournalController
	streak       *controller.StreakController
	progress     *controller.ProgressController
	result       *controller.ResultController
	home         *controller.HomeController
	deviceToken  *controller.DeviceTokenController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig 配置热加载后通知各个已注册的回调
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		relationship: repository.NewRelationshipRepository(db),
		category:     repository.NewCategoryRepository(db),
		topic:        repository.NewTopicRepository(db),
		subTopic:     repository.NewSubTopicRepository(db),
		question:     repository.NewQuestionRepository(db),
		answer:       repository.NewUserAnswerRepository(db),
		journal:      repository.NewJournalRepository(db),
		appOpen:      repository.NewAppOpenRepository(db),
		rotationSet:  repository.NewRotationSetRepository(db),
		appSetting:   repository.NewAppSettingRepository(db),
		deviceToken:  repository.NewDeviceTokenRepository(db),
		admin:        repository.NewAdminRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.admin, cfg)
	s.user = service.NewUserService(repos.user, s.storage)
	s.relationship = service.NewRelationshipService(repos.relationship, repos.user)
	s.catalog = service.NewCatalogService(repos.category, repos.topic, repos.subTopic, repos.question, repos.user)
	s.question = service.NewQuestionService(repos.question, repos.subTopic)
	s.answer = service.NewAnswerService(repos.answer, repos.question, repos.user, s.storage)
	s.journal = service.NewJournalService(repos.journal, repos.relationship, repos.appSetting, s.storage)
	s.streak = service.NewStreakService(repos.appOpen, repos.relationship, repos.user, repos.appSetting)
	s.progress = service.NewProgressService(repos.answer, repos.question, repos.subTopic, repos.topic, repos.category, repos.relationship, repos.user)
	s.result = service.NewResultService(repos.answer, repos.question, repos.subTopic, repos.relationship)
	s.home = service.NewHomeService(cfg, rdb, repos.user, repos.relationship, repos.subTopic, repos.question, repos.answer, repos.appOpen, repos.rotationSet, s.progress)
	s.deviceToken = service.NewDeviceTokenService(repos.deviceToken, repos.user)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.auth),
		user:         controller.NewUserController(s.user),
		relationship: controller.NewRelationshipController(s.relationship),
		catalog:      controller.NewCatalogController(s.catalog),
		question:     controller.NewQuestionController(s.question),
		answer:       controller.NewAnswerController(s.answer),
		journal:      controller.NewJournalController(s.journal),
		streak:       controller.NewStreakController(s.streak),
		progress:     controller.NewProgressController(s.progress),
		result:       controller.NewResultController(s.result),
		home:         controller.NewHomeController(s.home),
		deviceToken:  controller.NewDeviceTokenController(s.deviceToken),
		health:       controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// startBackgroundTasks 周期清理超过保留期的软删除用户
func (a *App) startBackgroundTasks(s *services) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		for range ticker.C {
			purged, err := s.user.PurgeExpired(30 * 24 * time.Hour)
			if err != nil {
				logger.Log.Error("清理软删除用户失败", zap.Error(err))
				continue
			}
			if purged > 0 {
				logger.Log.Info("清理软删除用户", zap.Int("count", purged))
			}
		}
	}()
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		log.Fatalf("Failed to initialize redis: %v", err)
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		_, err := tracing.InitTracer("pairbond-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
		router.Static("/api/uploads", cfg.Storage.LocalPath)
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

	log.Println("Server exiting")
}
