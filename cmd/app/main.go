package main

import (
	"context"
	"os"
	"strconv"
	"time"

	dbadapter "dhvanicast/internal/adapters/database"
	"dhvanicast/internal/adapters/httpapi"
	"dhvanicast/internal/adapters/httpapi/middleware"
	redisadapter "dhvanicast/internal/adapters/redis"
	"dhvanicast/internal/adapters/ws"
	"dhvanicast/internal/config"
	adEntity "dhvanicast/internal/core/ad"
	adapp "dhvanicast/internal/core/ad/service"
	blockEntity "dhvanicast/internal/core/block"
	blockapp "dhvanicast/internal/core/block/service"
	chatEntity "dhvanicast/internal/core/chat"
	chatapp "dhvanicast/internal/core/chat/service"
	feedapp "dhvanicast/internal/core/feed/service"
	"dhvanicast/internal/core/feedstore"
	postEntity "dhvanicast/internal/core/post"
	postapp "dhvanicast/internal/core/post/service"
	userEntity "dhvanicast/internal/core/user"
	userapp "dhvanicast/internal/core/user/service"
	"dhvanicast/internal/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.Init()

	config.InitDB()

	if err := config.DB.AutoMigrate(
		&userEntity.User{},
		&postEntity.Post{},
		&adEntity.Ad{},
		&blockEntity.Request{},
		&chatEntity.Message{},
	); err != nil {
		config.Logger.Fatal("Error during migrations:", zap.Error(err))
	}

	config.Logger.Info("✅ Database migrations completed")

	config.InitRedis()

	defer closeResources(config.Logger)

	config.Logger.Info("App is running...")

	userRepo := dbadapter.NewUserRepositoryDatabase()
	postRepo := dbadapter.NewPostRepositoryDatabase()
	adRepo := dbadapter.NewAdRepositoryDatabase()
	blockRepo := dbadapter.NewBlockRepositoryDatabase()
	chatRepo := dbadapter.NewChatRepositoryDatabase()
	overlayRepo := redisadapter.NewOverlayRepositoryRedis(config.RedisClient)

	pool := feedstore.NewPool(postRepo)

	userSvc := userapp.NewUserService(userRepo, []byte(os.Getenv("JWT_SECRET")))
	postSvc := postapp.NewPostService(postRepo, overlayRepo)
	feedSvc := feedapp.NewFeedService(pool, overlayRepo, adRepo, userSvc)
	blockSvc := blockapp.NewBlockService(blockRepo, overlayRepo)
	adSvc := adapp.NewAdService(adRepo)
	chatSvc := chatapp.NewChatService(chatRepo)

	r := httpapi.SetupRoutes(userSvc, postSvc, feedSvc, blockSvc, adSvc, chatSvc)

	refreshSecStr := os.Getenv("FEED_REFRESH_SECONDS")
	refreshSec, err := strconv.Atoi(refreshSecStr)
	if err != nil || refreshSec <= 0 {
		refreshSec = 10
	}

	refreshWorker := workers.NewRefreshWorker(pool, time.Duration(refreshSec)*time.Second, config.Logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go refreshWorker.Run(ctx)

	hub := ws.NewHub(chatSvc, config.Logger)
	go hub.Run(ctx)

	r.GET("/ws", middleware.JWTAuthMiddleware(), func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request, c.GetString("userID"))
	})

	if err := r.Run(":" + os.Getenv("APP_PORT")); err != nil {
		config.Logger.Fatal("Server failed to start:", zap.Error(err))
	}
}

// closeResources بستن اتصالات به Redis و دیتابیس
func closeResources(logger *zap.Logger) {
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB:", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection:", zap.Error(err))
	}
}
