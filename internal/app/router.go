package app

import (
	"pairbond_backend/docs"
	"pairbond_backend/internal/config"
	"pairbond_backend/internal/middleware"
	"pairbond_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由（客户端接口，无需登录）
	a.registerClientRoutes(router, c, repos)

	// 2. 管理后台路由（JWT 保护）
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerClientRoutes(router *gin.Engine, c *controllers, repos *repositories) {
	api := router.Group("/api")
	api.Use(middleware.ActivityMiddleware(repos.user))
	{
		api.GET("/health", c.health.HealthCheck)

		// 用户
		api.POST("/users", c.user.Create)
		api.GET("/users/:id", c.user.GetByID)
		api.GET("/users/uuid/:uuid", c.user.GetByUUID)
		api.PUT("/users/:id", c.user.Update)
		api.POST("/users/:id/profile-image", c.user.UploadProfileImage)
		api.DELETE("/users/:id", c.user.Delete)
		api.POST("/users/:id/restore", c.user.Restore)

		// 关系
		api.POST("/relationships", c.relationship.Create)
		api.POST("/relationships/pair", c.relationship.Pair)
		api.GET("/relationships/:id", c.relationship.GetByID)
		api.GET("/relationships/user/:userId", c.relationship.GetByUserID)
		api.PUT("/relationships/:id", c.relationship.Update)
		api.POST("/relationships/:id/disconnect", c.relationship.Disconnect)

		// 题库（客户端只读）
		api.GET("/categories", c.catalog.ListCategories)
		api.GET("/categories/:id", c.catalog.GetCategory)
		api.GET("/topics", c.catalog.ListTopics)
		api.GET("/topics/:id", c.catalog.GetTopic)
		api.GET("/sub-topics", c.catalog.ListSubTopics)
		api.GET("/sub-topics/:id", c.catalog.GetSubTopic)
		api.GET("/sub-topics/:id/questions", c.catalog.GetSubTopicWithQuestions)
		api.GET("/questions", c.question.List)
		api.GET("/questions/:id", c.question.GetByID)

		// 作答
		api.POST("/user-answers", c.answer.Create)
		api.POST("/user-answers/bulk", c.answer.CreateBulk)
		api.POST("/user-answers/with-image", c.answer.CreateWithImage)
		api.GET("/user-answers", c.answer.List)
		api.GET("/user-answers/:id", c.answer.GetByID)
		api.PUT("/user-answers/:id", c.answer.Update)
		api.DELETE("/user-answers/:id", c.answer.Delete)

		// 日记
		api.POST("/journals", c.journal.Create)
		api.GET("/journals/:id", c.journal.GetByID)
		api.GET("/journals/relationship/:relationshipId", c.journal.ListByRelationship)
		api.GET("/journals/relationship/:relationshipId/datewise", c.journal.ListDatewise)
		api.GET("/journals/relationship/:relationshipId/locations", c.journal.Locations)
		api.PUT("/journals/:id", c.journal.Update)
		api.DELETE("/journals/:id", c.journal.Delete)
		api.POST("/journals/:id/comments", c.journal.AddComment)
		api.GET("/journals/:id/comments", c.journal.ListComments)

		// 连续天数
		api.POST("/streak/open", c.streak.RecordOpen)
		api.GET("/streak/user/:userId", c.streak.GetSingleUser)
		api.GET("/streak/relationship/:relationshipId", c.streak.GetRelationship)

		// 进度
		api.GET("/user-progress/sub-topic/:id", c.progress.GetSubTopic)
		api.GET("/user-progress/topic/:id", c.progress.GetTopic)
		api.GET("/user-progress/category/:id", c.progress.GetCategory)
		api.GET("/user-progress/divisions", c.progress.GetDivisions)
		api.GET("/user-progress/sub-topics", c.progress.GetSubTopicsByDivision)

		// 结果对比
		api.GET("/results/sub-topic/:id", c.result.GetSubTopic)
		api.GET("/results/question/:id", c.result.GetQuestion)

		// 首页
		api.GET("/home", c.home.GetHome)
		api.GET("/home/random-subtopics", c.home.GetRandomSubTopics)
		api.GET("/daily-questions", c.home.GetDailyQuestion)

		// 设备令牌
		api.POST("/device-tokens", c.deviceToken.Register)
		api.POST("/device-tokens/deactivate", c.deviceToken.Deactivate)
		api.GET("/device-tokens/user/:userId", c.deviceToken.ListByUser)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	{
		admin.POST("/register", c.auth.Register)
		admin.POST("/login", c.auth.Login)
	}

	// 题库维护接口需要管理员身份
	authorized := router.Group("/api")
	authorized.Use(middleware.AuthMiddleware(cfg))
	{
		authorized.POST("/categories", c.catalog.CreateCategory)
		authorized.PUT("/categories/:id", c.catalog.UpdateCategory)
		authorized.DELETE("/categories/:id", c.catalog.DeleteCategory)

		authorized.POST("/topics", c.catalog.CreateTopic)
		authorized.PUT("/topics/:id", c.catalog.UpdateTopic)
		authorized.DELETE("/topics/:id", c.catalog.DeleteTopic)

		authorized.POST("/sub-topics", c.catalog.CreateSubTopic)
		authorized.PUT("/sub-topics/:id", c.catalog.UpdateSubTopic)
		authorized.DELETE("/sub-topics/:id", c.catalog.DeleteSubTopic)

		authorized.POST("/questions", c.question.Create)
		authorized.PUT("/questions/:id", c.question.Update)
		authorized.DELETE("/questions/:id", c.question.Delete)

		authorized.GET("/admin/profile", c.auth.Profile)
		authorized.GET("/admin/relationships", c.relationship.List)
	}
}
