package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Ashish-Kumar16/TaskGroove/internal/config"
	"github.com/Ashish-Kumar16/TaskGroove/internal/handler"
	"github.com/Ashish-Kumar16/TaskGroove/internal/router"
	"github.com/Ashish-Kumar16/TaskGroove/internal/service"
	"github.com/Ashish-Kumar16/TaskGroove/internal/store/mongodb"
)

func main() {
	// Local development overrides; absence is fine in production.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// Database
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	st, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	slog.Info("database connection established", "database", cfg.Mongo.Database)

	// Services
	authService := service.NewAuthService(st.Users, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	memberService := service.NewMemberService(st.Users, st.Projects)
	projectService := service.NewProjectService(st.Projects, st.Users)
	taskService := service.NewTaskService(st.Tasks, st.Projects, st.Users)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	memberHandler := handler.NewMemberHandler(memberService)
	projectHandler := handler.NewProjectHandler(projectService)
	taskHandler := handler.NewTaskHandler(taskService, projectService)

	// Gin engine
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	router.Setup(r, router.Deps{
		Users:          st.Users,
		JWTSecret:      cfg.JWT.Secret,
		AuthHandler:    authHandler,
		MemberHandler:  memberHandler,
		ProjectHandler: projectHandler,
		TaskHandler:    taskHandler,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server run: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown", "error", err)
	}
	if err := st.Close(shutdownCtx); err != nil {
		slog.Error("close database", "error", err)
	}
}
