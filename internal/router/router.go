package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ashish-Kumar16/TaskGroove/internal/handler"
	"github.com/Ashish-Kumar16/TaskGroove/internal/middleware"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store"
)

type Deps struct {
	Users          store.Users
	JWTSecret      string
	AuthHandler    *handler.AuthHandler
	MemberHandler  *handler.MemberHandler
	ProjectHandler *handler.ProjectHandler
	TaskHandler    *handler.TaskHandler
}

func Setup(r *gin.Engine, deps Deps) {
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public routes (no auth)
	auth := api.Group("/auth")
	{
		auth.POST("/register", deps.AuthHandler.Register)
		auth.POST("/login", deps.AuthHandler.Login)
	}

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(deps.JWTSecret, deps.Users))
	{
		authed.GET("/auth/me", deps.AuthHandler.GetMe)

		members := authed.Group("/members")
		{
			members.GET("", deps.MemberHandler.List)
			members.POST("", deps.MemberHandler.Create)
			members.GET("/:id", deps.MemberHandler.Get)
			members.PUT("/:id", deps.MemberHandler.Update)
			members.DELETE("/:id", deps.MemberHandler.Delete)
		}

		projects := authed.Group("/projects")
		{
			projects.GET("", deps.ProjectHandler.List)
			projects.POST("", deps.ProjectHandler.Create)
			projects.GET("/user", deps.ProjectHandler.ListMine)
			projects.GET("/:id", deps.ProjectHandler.Get)
			projects.PUT("/:id", deps.ProjectHandler.Update)
			projects.DELETE("/:id", deps.ProjectHandler.Delete)
			projects.POST("/:id/members", deps.ProjectHandler.AddMember)
		}

		tasks := authed.Group("/tasks")
		{
			tasks.GET("", deps.TaskHandler.List)
			tasks.POST("", deps.TaskHandler.Create)
			tasks.GET("/assigned", deps.TaskHandler.ListAssigned)
			tasks.GET("/:id", deps.TaskHandler.Get)
			tasks.PUT("/:id", deps.TaskHandler.Update)
			tasks.DELETE("/:id", deps.TaskHandler.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"code": 40400, "message": "Route not found", "data": nil})
	})
}
