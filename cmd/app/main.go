package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "ashen-backend/docs"
	"ashen-backend/internal/common/config"
	"ashen-backend/internal/common/logger"
	"ashen-backend/internal/common/middleware"
	systemhttp "ashen-backend/internal/features/system/delivery/http"
	userhttp "ashen-backend/internal/features/user/delivery/http"
	usermongo "ashen-backend/internal/features/user/repository/mongodb"
	userservice "ashen-backend/internal/features/user/service"
	mongoplatform "ashen-backend/internal/platform/mongo"
)

// @title           Ashen API
// @version         1.0
// @description     Profile directory backend: public profile listing and creation, admin management behind HTTP Basic auth.

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.basic BasicAuth

// @tag.name users
// @tag.description Public profile endpoints

// @tag.name admin
// @tag.description Administrative endpoints, Basic auth required

// @tag.name system
// @tag.description Liveness and store diagnostics

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	logger.Init("ashen-backend", cfg.Debug)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	store, err := mongoplatform.Open(ctx, cfg.Mongo.URI)
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer store.Close()

	logger.Info().Str("database", store.Name()).Msg("MongoDB connection established")

	ctx, cancel = context.WithTimeout(context.Background(), 15*time.Second)
	err = usermongo.EnsureIndexes(ctx, store.Database())
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to ensure user indexes")
	}

	userRepo := usermongo.NewMongoRepository(store.Database())
	userSvc := userservice.NewUserService(userRepo)
	gate := middleware.NewAccessGate(cfg.Admin.Username, cfg.Admin.Password)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.Server.Origin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept"}
	router.Use(cors.New(corsConfig))

	systemhttp.NewSystemHandler(store).RegisterRoutes(router)
	userhttp.NewUserHandler(userSvc).RegisterRoutes(router, gate)
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}
