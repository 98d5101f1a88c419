package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/exprc/exprc/api"
	"github.com/exprc/exprc/api/middleware"
	"github.com/exprc/exprc/usecases"
	"github.com/exprc/exprc/utils"
)

func corsOption(env string) cors.Config {
	allowedOrigins := []string{"*"}

	if env == "development" {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{http.MethodOptions, http.MethodHead, http.MethodGet, http.MethodPost},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func initRouter(ctx context.Context, conf AppConfiguration, u usecases.Usecases) *gin.Engine {
	if conf.env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)
	loggingMiddleware := middleware.NewLogging(logger, middleware.WithIgnorePath([]string{"/liveness"}))

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(conf.env)))
	r.Use(middleware.NewRequestId(logger))
	r.Use(loggingMiddleware)

	compileHandler := api.NewCompileHandler(u.NewCompilerUsecase())
	livenessHandler := api.NewLivenessHandler(u.NewLivenessUsecase())

	r.GET("/liveness", livenessHandler.Liveness)
	r.POST("/compile", compileHandler.Compile)

	return r
}
