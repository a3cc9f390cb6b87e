package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/MashookhKhanlol/youtube-clone/internal/config"
	"github.com/MashookhKhanlol/youtube-clone/internal/database"
	"github.com/MashookhKhanlol/youtube-clone/internal/middleware"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/auth"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/comment"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/dashboard"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/feed"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/like"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/playlist"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/subscription"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/tweet"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/user"
	"github.com/MashookhKhanlol/youtube-clone/internal/modules/video"
	jwtsvc "github.com/MashookhKhanlol/youtube-clone/internal/pkg/jwt"
	"github.com/MashookhKhanlol/youtube-clone/internal/repository"
	"github.com/MashookhKhanlol/youtube-clone/internal/storage"
)

type objectStorage interface {
	auth.ObjectStorage
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	store, err := buildStorage(cfg)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)
	historyRepo := repository.NewWatchHistoryRepository(db)

	j := jwtsvc.New(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	hub := feed.NewHub()
	defer hub.Close()
	notifier := feed.NewNotifier(hub, subscriptionRepo)

	authService := auth.NewService(userRepo, j, cfg.RefreshTokenPepper)
	authHandler := auth.NewHandler(authService, store)

	userService := user.NewService(userRepo, subscriptionRepo, historyRepo)
	userHandler := user.NewHandler(userService, store)

	videoService := video.NewService(videoRepo, likeRepo, historyRepo, notifier)
	videoHandler := video.NewHandler(videoService, store)

	commentService := comment.NewService(commentRepo, videoRepo)
	commentHandler := comment.NewHandler(commentService)

	tweetService := tweet.NewService(tweetRepo)
	tweetHandler := tweet.NewHandler(tweetService)

	likeService := like.NewService(likeRepo, videoRepo, commentRepo, tweetRepo)
	likeHandler := like.NewHandler(likeService)

	subscriptionService := subscription.NewService(subscriptionRepo, userRepo)
	subscriptionHandler := subscription.NewHandler(subscriptionService)

	playlistService := playlist.NewService(playlistRepo, videoRepo)
	playlistHandler := playlist.NewHandler(playlistService)

	dashboardService := dashboard.NewService(videoRepo, likeRepo, subscriptionRepo)
	dashboardHandler := dashboard.NewHandler(dashboardService)

	wsHandler := feed.NewWSHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		public := v1.Group("/")
		public.Use(middleware.RateLimit(cfg.LoginRateLimit, cfg.LoginRateWindow))
		{
			authHandler.RegisterPublicRoutes(public)
		}

		protected := v1.Group("/")
		protected.Use(middleware.RequireAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			userHandler.RegisterProtectedRoutes(protected)
			videoHandler.RegisterProtectedRoutes(protected)
			commentHandler.RegisterProtectedRoutes(protected)
			tweetHandler.RegisterProtectedRoutes(protected)
			likeHandler.RegisterProtectedRoutes(protected)
			subscriptionHandler.RegisterProtectedRoutes(protected)
			playlistHandler.RegisterProtectedRoutes(protected)
			dashboardHandler.RegisterProtectedRoutes(protected)
		}
	}

	r.GET("/ws/feed", wsHandler.HandleWebSocket)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

func buildStorage(cfg *config.Config) (objectStorage, error) {
	if cfg.ObjectStore.Bucket != "" {
		return storage.NewS3Storage(context.Background(), cfg.ObjectStore)
	}
	log.Println("S3_BUCKET not set, falling back to local disk storage")
	return storage.NewLocalStorage("uploads", cfg.ObjectStore.PublicBaseURL)
}
