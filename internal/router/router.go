package router

import (
	"yourprompty/internal/handlers"
	"yourprompty/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(r *gin.Engine) {
	// Handlers
	authHandler := handlers.NewAuthHandler()
	promptHandler := handlers.NewPromptHandler()
	likeHandler := handlers.NewLikeHandler()
	commentHandler := handlers.NewCommentHandler()
	userHandler := handlers.NewUserHandler()
	categoryHandler := handlers.NewCategoryHandler()
	recommendationHandler := handlers.NewRecommendationHandler()
	notificationHandler := handlers.NewNotificationHandler()
	chatHandler := handlers.NewChatHandler()
	imageHandler := handlers.NewImageHandler()

	r.Use(middleware.Metrics())

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/img/:id", imageHandler.Proxy) // 图片反代

	api := r.Group("/api")
	api.Use(middleware.LoadUser())
	{
		// 公共路由 (Public Routes)
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/prompts", promptHandler.List)                           // 作品列表
		api.GET("/prompts/:id", promptHandler.Detail)                     // 作品详情
		api.GET("/prompts/:id/comments", commentHandler.List)             // 评论列表
		api.GET("/categories", categoryHandler.List)                      // 分类列表
		api.GET("/users/:email", userHandler.Profile)                     // 用户主页
		api.GET("/recommendations/stats/:userEmail", recommendationHandler.Stats) // 关注统计（公开）

		// 受保护路由 (Protected Routes)
		authorized := api.Group("/")
		authorized.Use(middleware.AuthRequired())
		{
			authorized.GET("/auth/me", authHandler.Me)
			authorized.PUT("/users/me", userHandler.UpdateMe)

			authorized.POST("/prompts", promptHandler.Create)             // 发布作品
			authorized.DELETE("/prompts/:id", promptHandler.Delete)       // 删除作品
			authorized.POST("/prompts/:id/like", likeHandler.Toggle)      // 点赞开关
			authorized.POST("/prompts/:id/comments", commentHandler.Create)
			authorized.DELETE("/comments/:cid", commentHandler.Delete)

			authorized.GET("/recommendations", recommendationHandler.Get)
			authorized.POST("/recommendations/track", recommendationHandler.Track)
			authorized.POST("/recommendations/follow/:creatorEmail", recommendationHandler.Follow)
			authorized.DELETE("/recommendations/follow/:creatorEmail", recommendationHandler.Unfollow)
			authorized.GET("/recommendations/follow/:creatorEmail/status", recommendationHandler.FollowStatus)

			authorized.GET("/notifications", notificationHandler.List)
			authorized.POST("/notifications/:id/read", notificationHandler.Read)
			authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
			authorized.DELETE("/notifications/:id", notificationHandler.Delete)

			authorized.POST("/chat", chatHandler.Ask)     // 提示词助手
			authorized.POST("/upload", imageHandler.Upload)
		}
	}
}
