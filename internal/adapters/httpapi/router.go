package httpapi

import (
	"context"
	"time"

	"dhvanicast/internal/adapters/httpapi/middleware"
	"dhvanicast/internal/core/feed"
	feedapp "dhvanicast/internal/core/feed/service"
	postapp "dhvanicast/internal/core/post/service"
	blockPort "dhvanicast/internal/ports/block"
	chatPort "dhvanicast/internal/ports/chat"
	postPort "dhvanicast/internal/ports/post"
	userPort "dhvanicast/internal/ports/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, username, mobile, password, city string) (*userPort.UserDTO, error)
	GetUser(ctx context.Context, id string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID string, in postapp.CreatePostInput) (*postPort.PostDTO, error)
	ToggleLike(ctx context.Context, sessionID, postID string) (likes int, liked bool, err error)
	RecordView(ctx context.Context, postID string) error
	GetPost(ctx context.Context, sessionID, id string) (*postPort.PostDTO, error)
}

type FeedUseCase interface {
	BuildFeed(ctx context.Context, q feedapp.FeedQuery) (*postPort.FeedPageDTO, error)
	RepostAuthor(ctx context.Context, sessionID, authorName string) error
}

type BlockUseCase interface {
	Submit(ctx context.Context, requesterID, sessionID, blockedUserName, reason, postID string) (*blockPort.RequestDTO, error)
	Pending(ctx context.Context, requesterID string) ([]*blockPort.RequestDTO, error)
}

type AdUseCase interface {
	CreateAd(ctx context.Context, sponsor, title, imageURL, linkURL, city string) (*feed.AdSlot, error)
	ListActive(ctx context.Context, city string) ([]feed.AdSlot, error)
}

type ChatUseCase interface {
	History(ctx context.Context, userA, userB string, limit int) ([]*chatPort.MessageDTO, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	feedUC FeedUseCase,
	blockUC BlockUseCase,
	adUC AdUseCase,
	chatUC ChatUseCase,
) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Session-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	fc := NewFeedController(feedUC)
	bc := NewBlockController(blockUC)
	ac := NewAdController(adUC)
	cc := NewChatController(chatUC)

	r.GET("/health", func(c *gin.Context) { c.String(200, "OK") })

	// مسیرهای ثبت‌نام و ورود بدون JWT Middleware
	r.POST("/register", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)

	// feed is public, a token only personalizes it
	r.GET("/posts", middleware.OptionalJWT(), fc.GetFeed)
	r.GET("/posts/by-city/:city", middleware.OptionalJWT(), fc.GetFeedByCity)
	r.GET("/posts/:id", middleware.OptionalJWT(), pc.GetPost)
	r.POST("/posts/:id/view", middleware.OptionalJWT(), pc.RecordView)

	r.POST("/posts", middleware.JWTAuthMiddleware(), pc.CreatePost)
	r.POST("/posts/:id/like", middleware.JWTAuthMiddleware(), pc.ToggleLike)
	r.POST("/reposts", middleware.JWTAuthMiddleware(), fc.Repost)

	r.POST("/block-requests", middleware.JWTAuthMiddleware(), bc.Submit)
	r.GET("/block-requests/pending", middleware.JWTAuthMiddleware(), bc.Pending)

	r.GET("/ads", ac.ListActive)
	r.POST("/ads", middleware.JWTAuthMiddleware(), ac.CreateAd)

	r.GET("/messages/:peerId", middleware.JWTAuthMiddleware(), cc.History)

	r.GET("/users/:id", middleware.JWTAuthMiddleware(), uc.GetUser)

	return r
}

// sessionID per-request: explicit header wins, otherwise the viewer's id.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-Id"); sid != "" {
		return sid
	}
	return c.GetString("userID")
}
