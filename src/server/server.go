package server

import (
	"fmt"
	app "frameless/src/app"
	cfg "frameless/src/configuration"
	db "frameless/src/repository"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// NewRouter wires the repositories, collaborators and handlers into a gin
// engine. Kept separate from RunServer so tests can assemble the full
// router against their own database and blob store.
func NewRouter(config *cfg.Properties, database *gorm.DB, blobs app.BlobStore, generator app.Generator) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Cache-Control"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	users := db.NewUserRepository(database, config.DB.CascadeDelete)
	images := db.NewImageRepository(database)
	contents := db.NewContentRepository(database)

	hasher := app.NewBcryptHasher(config.Auth.BcryptCost)
	tokens := app.NewTokenService(config.Auth.Secret, config.Auth.TokenTTL)

	baseHandler := NewBaseHandler()
	authHandler := NewAuthHandler(users, hasher, tokens)
	userHandler := NewUserHandler(users, hasher, config.Server.MaxPageSize)
	imageHandler := NewImageHandler(images, blobs, config.Server.MaxPageSize)
	contentHandler := NewContentHandler(contents, generator, config.Server.MaxPageSize)

	// Register Routes
	router.GET("/health", baseHandler.GetHealth)
	router.GET("/version", baseHandler.GetVersion)

	authRoutes := router.Group("/auth")
	authRoutes.POST("/token", authHandler.Token)
	authRoutes.GET("/me", authHandler.RequireUser(), authHandler.Me)

	userRoutes := router.Group("/users")
	userRoutes.POST("", userHandler.Create)
	userRoutes.GET("", userHandler.List)
	userRoutes.GET("/:id", userHandler.Get)
	userRoutes.PUT("/:id", userHandler.Update)
	userRoutes.DELETE("/:id", userHandler.Delete)

	contentRoutes := router.Group("/content")
	contentRoutes.POST("/content", contentHandler.Create)
	contentRoutes.POST("/content/generate", contentHandler.Generate)
	contentRoutes.GET("/content", contentHandler.List)
	contentRoutes.GET("/content/:id", contentHandler.Get)
	contentRoutes.PUT("/content/:id", contentHandler.Update)
	contentRoutes.DELETE("/content/:id", contentHandler.Delete)

	imageRoutes := router.Group("/images")
	imageRoutes.POST("/images", imageHandler.Create)
	imageRoutes.POST("/images/upload", imageHandler.Upload)
	imageRoutes.GET("/images", imageHandler.List)
	imageRoutes.GET("/images/:id", imageHandler.Get)
	imageRoutes.PUT("/images/:id", imageHandler.Update)
	imageRoutes.DELETE("/images/:id", imageHandler.Delete)

	// Uploaded blobs are served back under their derived path-based URLs.
	if local, ok := blobs.(*app.LocalDiskStore); ok {
		router.Static(config.Uploads.BaseURL, local.Dir())
	}

	router.NoRoute(func(ctx *gin.Context) { ctx.JSON(http.StatusNotFound, gin.H{}) })
	return router
}

func RunServer(config *cfg.Properties) {
	level, err := log.ParseLevel(config.LogLevel)
	if err != nil {
		level = log.DebugLevel
	}
	log.SetLevel(level)

	database, err := db.Connect(config.DB.Path)
	if err != nil {
		log.Fatalf("database not respond: %v", err)
	}

	blobs, err := newBlobStore(config)
	if err != nil {
		log.Fatalf("can not initialize blob storage: %v", err)
	}

	generator := newGenerator(config)

	router := NewRouter(config, database, blobs, generator)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%s", config.Server.Port),
		Handler:     router,
		ReadTimeout: config.Server.ReadTimeout,
	}
	log.Infof("%s listening on port %s", config.Server.Name, config.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newBlobStore(config *cfg.Properties) (app.BlobStore, error) {
	if config.Uploads.Driver == "s3" {
		return app.NewMinioS3Client(
			config.S3.Host,
			config.S3.AccessKey,
			config.S3.SecretKey,
			config.S3.Bucket,
			config.S3.UseSSL)
	}
	return app.NewLocalDiskStore(config.Uploads.Dir, config.Uploads.BaseURL)
}

func newGenerator(config *cfg.Properties) app.Generator {
	if config.Generator.Backend == "remote" {
		return app.NewRemoteGenerator(config.Generator.Host, config.Generator.Timeout)
	}
	return app.NewPlaceholderGenerator()
}
