package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/newsflow-app/newsflow-api/internal/config"
	"github.com/newsflow-app/newsflow-api/internal/database"
	gnews "github.com/newsflow-app/newsflow-api/internal/news"
	mysqlRepo "github.com/newsflow-app/newsflow-api/internal/repository/mysql"
	redisCache "github.com/newsflow-app/newsflow-api/internal/repository/redis"
	"github.com/newsflow-app/newsflow-api/internal/rest"
	"github.com/newsflow-app/newsflow-api/internal/rest/middleware"
	"github.com/newsflow-app/newsflow-api/internal/rest/request"
	"github.com/newsflow-app/newsflow-api/internal/usecase/bookmark"
	"github.com/newsflow-app/newsflow-api/internal/usecase/comment"
	"github.com/newsflow-app/newsflow-api/internal/usecase/like"
	"github.com/newsflow-app/newsflow-api/internal/usecase/news"
	"github.com/newsflow-app/newsflow-api/internal/usecase/stats"
	"github.com/newsflow-app/newsflow-api/internal/usecase/user"
	"github.com/newsflow-app/newsflow-api/internal/workers"
)

const migrationsDir = "migrations"

func init() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("invalid configuration: ", err)
	}

	// prepare database
	db, err := database.Open(cfg.Database)
	if err != nil {
		logrus.Fatal(err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			logrus.Fatal("got error when getting sql.DB from gorm.DB: ", err)
		}
		if err := sqlDB.Close(); err != nil {
			logrus.Fatal("got error when closing the DB connection: ", err)
		}
	}()

	if err := database.Migrate(db, migrationsDir); err != nil {
		logrus.Fatal("failed to run migrations: ", err)
	}

	// prepare cache
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Addr(),
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,
	})
	defer func() {
		if err := client.Close(); err != nil {
			logrus.Error("got error when closing the cache connection: ", err)
		}
	}()
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		logrus.Fatal("failed to open connection to cache: ", err)
	}

	// prepare gin
	request.RegisterCustomValidators()
	route := gin.Default()
	// Article URLs travel percent-encoded as a single path segment; route on
	// the raw path and let the handler do the one unescape.
	route.UseRawPath = true
	route.UnescapePathValues = false
	route.Use(middleware.CORS())
	route.Use(middleware.RequestID())
	route.Use(middleware.SetRequestContextWithTimeout(cfg.Server.ContextTimeout))

	// Prepare repositories
	userRepo := mysqlRepo.NewUserRepository(db)
	bookmarkRepo := mysqlRepo.NewBookmarkRepository(db)
	likeRepo := mysqlRepo.NewArticleLikeRepository(db)
	commentRepo := mysqlRepo.NewCommentRepository(db)
	newsCache := redisCache.NewNewsCache(client, cfg.Cache.NewsTTL)
	newsProvider := gnews.NewGNewsClient(cfg.News.BaseURL, cfg.News.APIKey, cfg.News.Timeout)

	// Start worker
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	newsRefresher := workers.NewNewsRefreshWorker(newsProvider, newsCache, cfg.News.RefreshInterval)
	go newsRefresher.Start(ctx)

	// Build service layer
	userSvc := user.NewService(userRepo, []byte(cfg.Auth.JWTSecret), cfg.Auth.JWTTTL)
	bookmarkSvc := bookmark.NewService(bookmarkRepo)
	likeSvc := like.NewService(likeRepo)
	commentSvc := comment.NewService(commentRepo)
	newsSvc := news.NewService(newsProvider, newsCache)
	statsSvc := stats.NewService(userRepo, bookmarkRepo)

	userHandler := rest.NewUserHandler(userSvc)
	bookmarkHandler := rest.NewBookmarkHandler(bookmarkSvc)
	likeHandler := rest.NewLikeHandler(likeSvc)
	commentHandler := rest.NewCommentHandler(commentSvc)
	newsHandler := rest.NewNewsHandler(newsSvc)
	statsHandler := rest.NewStatsHandler(statsSvc)

	authMiddleware := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	// Register routes
	api := route.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "NewsFlow API is running!",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.POST("/auth/register", userHandler.Register)
	api.POST("/auth/login", userHandler.Login)

	api.GET("/news", newsHandler.Headlines)
	api.GET("/news/search", newsHandler.Search)

	api.GET("/likes/summary", likeHandler.Summary)
	api.GET("/comments/:articleURL", commentHandler.FetchByArticle)
	api.GET("/public/stats", statsHandler.Summary)

	authorized := api.Group("/")
	authorized.Use(authMiddleware)
	{
		authorized.GET("/auth/me", userHandler.Me)
		authorized.PUT("/users/preferences", userHandler.UpdatePreferences)

		authorized.GET("/bookmarks", bookmarkHandler.Fetch)
		authorized.POST("/bookmarks", bookmarkHandler.Store)
		authorized.DELETE("/bookmarks/url", bookmarkHandler.DeleteByURL)
		authorized.DELETE("/bookmarks/:id", bookmarkHandler.DeleteByID)

		authorized.POST("/likes", likeHandler.Toggle)

		authorized.POST("/comments", commentHandler.Create)
		authorized.PUT("/comments/:id", commentHandler.Update)
		authorized.DELETE("/comments/:id", commentHandler.Delete)
		authorized.POST("/comments/:id/like", commentHandler.ToggleLike)
		authorized.POST("/comments/:id/reply", commentHandler.Reply)
	}

	// Start server
	srv := &http.Server{
		Addr:    cfg.Server.Address,
		Handler: route,
	}
	go func() {
		logrus.Infof("Server is running on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("listen: %s", err)
		}
	}()

	// shutdown
	<-ctx.Done()
	logrus.Info("Shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Fatal("Server forced to shutdown: ", err)
	}

	logrus.Info("Server exiting")
}
