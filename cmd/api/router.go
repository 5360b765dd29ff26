package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"edubright-backend/internal/shared/middleware"
	"edubright-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupAuthRoutes(v1, c)
		setupPublicRoutes(v1, c)
		setupRegistrationRoutes(v1, c)
		setupAdminRoutes(v1, c)
	}

	return router
}

// ========================================
// AUTH ROUTES
// ========================================
func setupAuthRoutes(v1 *gin.RouterGroup, c *container.Container) {
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.UserHandler.Register)
		auth.POST("/login", c.UserHandler.Login)
		auth.GET("/me", middleware.AuthMiddleware(c.Config.JWT.Secret), c.UserHandler.Me)
	}
}

// ========================================
// PUBLIC ROUTES
// ========================================
// The marketing site reads these without a session.
func setupPublicRoutes(v1 *gin.RouterGroup, c *container.Container) {
	team := v1.Group("/team")
	{
		team.GET("/members", c.TeamHandler.ListMembers)
		team.GET("/members/:id", c.TeamHandler.GetMember)
		team.GET("/tags", c.TeamHandler.ListTags)
	}

	blog := v1.Group("/blog")
	{
		blog.GET("/posts", c.BlogHandler.ListPosts)
		blog.GET("/posts/:id", c.BlogHandler.GetPost)
		blog.GET("/authors", c.BlogHandler.ListAuthors)
		blog.GET("/tags", c.BlogHandler.ListTags)
	}

	events := v1.Group("/events")
	{
		events.GET("", c.EventHandler.ListEvents)
		events.GET("/tags", c.EventHandler.ListTags)
		events.GET("/:id", c.EventHandler.GetEvent)
	}

	v1.GET("/careers", c.CareersHandler.ListPublicJobs)
	v1.GET("/careers/:id", c.CareersHandler.GetJob)

	v1.POST("/contact", c.ContactHandler.Submit)
}

// ========================================
// REGISTRATION ROUTES
// ========================================
func setupRegistrationRoutes(v1 *gin.RouterGroup, c *container.Container) {
	events := v1.Group("/events")
	events.Use(middleware.AuthMiddleware(c.Config.JWT.Secret))
	{
		events.POST("/register", c.EventHandler.Register)
	}
}

// ========================================
// ADMIN ROUTES
// ========================================
// Everything under /admin requires a valid session with the admin role.
func setupAdminRoutes(v1 *gin.RouterGroup, c *container.Container) {
	admin := v1.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(c.Config.JWT.Secret),
		middleware.AdminMiddleware(),
	)
	{
		team := admin.Group("/team")
		{
			team.POST("/members", c.TeamHandler.CreateMember)
			team.PUT("/members/:id", c.TeamHandler.UpdateMember)
			team.DELETE("/members/:id", c.TeamHandler.DeleteMember)
			team.POST("/members/reorder", c.TeamHandler.ReorderMembers)
			team.PUT("/members/:id/tags", c.TeamHandler.SetMemberTags)

			team.POST("/tags", c.TeamHandler.CreateTag)
			team.PUT("/tags/:id", c.TeamHandler.UpdateTag)
			team.DELETE("/tags/:id", c.TeamHandler.DeleteTag)
			team.POST("/tags/reorder", c.TeamHandler.ReorderTags)
		}

		blog := admin.Group("/blog")
		{
			blog.POST("/posts", c.BlogHandler.CreatePost)
			blog.PUT("/posts/:id", c.BlogHandler.UpdatePost)
			blog.DELETE("/posts/:id", c.BlogHandler.DeletePost)
			blog.PUT("/posts/:id/tags", c.BlogHandler.SetPostTags)

			blog.POST("/authors", c.BlogHandler.CreateAuthor)
			blog.PUT("/authors/:id", c.BlogHandler.UpdateAuthor)
			blog.DELETE("/authors/:id", c.BlogHandler.DeleteAuthor)

			blog.POST("/tags", c.BlogHandler.CreateTag)
			blog.DELETE("/tags/:id", c.BlogHandler.DeleteTag)
		}

		events := admin.Group("/events")
		{
			events.POST("", c.EventHandler.CreateEvent)
			events.PUT("/:id", c.EventHandler.UpdateEvent)
			events.DELETE("/:id", c.EventHandler.DeleteEvent)
			events.GET("/:id/registrations", c.EventHandler.ListRegistrations)

			events.POST("/tags", c.EventHandler.CreateTag)
			events.DELETE("/tags/:id", c.EventHandler.DeleteTag)
		}

		careers := admin.Group("/careers")
		{
			careers.GET("", c.CareersHandler.ListAllJobs)
			careers.POST("", c.CareersHandler.CreateJob)
			careers.PUT("/:id", c.CareersHandler.UpdateJob)
			careers.DELETE("/:id", c.CareersHandler.DeleteJob)
		}

		admin.GET("/contact", c.ContactHandler.ListSubmissions)

		admin.POST("/media", c.MediaHandler.Upload)
		admin.DELETE("/media", c.MediaHandler.Delete)
	}
}

// ========================================
// HEALTH CHECK
// ========================================
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := http.StatusOK
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down" // degraded but serving
		}

		ctx.JSON(status, gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
