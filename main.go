package main

import (
	"log"
	"time"

	"social_graph/config"
	"social_graph/handler"
	"social_graph/middleware"
	"social_graph/notify"
	"social_graph/service"
	"social_graph/store"
	"social_graph/store/cache"
	"social_graph/store/memory"
	"social_graph/store/pgstore"
	"social_graph/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func init() {
	// 设置时区为 UTC（推荐服务端统一使用 UTC）
	time.Local = time.UTC
}

type stores struct {
	relationships store.RelationshipStore
	reactions     store.ReactionStore
	notifications store.NotificationStore
	posts         store.PostRepository
	users         store.UserResolver
}

func main() {
	// 加载配置
	cfg := config.Load()

	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer utils.SyncLogger()
	logger := utils.Logger()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	// 初始化存储
	var st stores
	switch cfg.StoreBackend {
	case config.BackendMemory:
		users := memory.NewUserDirectory()
		users.AcceptAll = true
		st = stores{
			relationships: memory.NewRelationshipStore(),
			reactions:     memory.NewReactionStore(),
			notifications: memory.NewNotificationStore(),
			posts:         memory.NewPostRepository(),
			users:         users,
		}
		logger.Warn("using in-memory store, data is lost on restart")
	case config.BackendPostgres:
		if err := utils.InitDB(cfg.DatabaseURL, logger); err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		defer utils.CloseDB()

		db := utils.GetDB()
		if err := pgstore.AutoMigrate(db); err != nil {
			logger.Fatal("failed to migrate database", zap.Error(err))
		}
		st = stores{
			relationships: pgstore.NewRelationshipStore(db),
			reactions:     pgstore.NewReactionStore(db),
			notifications: pgstore.NewNotificationStore(db),
			posts:         pgstore.NewPostRepository(db),
			users:         pgstore.NewUserResolver(db, ""),
		}
	default:
		logger.Fatal("unknown STORE_BACKEND", zap.String("backend", cfg.StoreBackend))
	}

	// 初始化 Redis（可选）：点赞数缓存 + 通知发布
	var publisher notify.Publisher = notify.NopPublisher{}
	if cfg.RedisURL != "" {
		if err := utils.InitRedis(cfg.RedisURL, cfg.RedisPassword, cfg.RedisDB); err != nil {
			logger.Warn("redis unavailable, running without cache and notification publishing", zap.Error(err))
		} else {
			defer utils.CloseRedis()
			st.reactions = cache.NewLikeCounter(st.reactions, utils.GetRedis(), cfg.LikeCountTTL, logger)
			redisPub := notify.NewRedisPublisher(utils.GetRedis(), cfg.NotificationChannel)
			publisher = redisPub
			logger.Info("publishing notifications to redis", zap.String("channel", redisPub.Channel()))
		}
	}

	// 初始化认证中间件
	middleware.InitAuth(cfg.JWTSecret)

	// 创建服务
	notifSvc := service.NewNotificationService(st.notifications, logger)
	notifSvc.SetPublisher(publisher)
	interactions := service.NewInteractionService(st.relationships, st.reactions, st.posts, st.users, notifSvc, logger)
	relSvc := service.NewRelationshipService(st.relationships)
	postSvc := service.NewPostService(st.posts, st.reactions)

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}
	r := gin.New()

	// 注册统一错误处理和访问日志中间件（使用全局日志器）
	r.Use(middleware.ErrorHandlerMiddleware(nil))
	r.Use(middleware.RequestLogger(nil))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.NoRoute(func(c *gin.Context) {
		utils.NotFound(c, "route not found")
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{"status": "ok"})
	})

	handler.RegisterRoutes(r, &handler.Handlers{
		Relationships: handler.NewRelationshipHandler(interactions, relSvc),
		Posts:         handler.NewPostHandler(postSvc, interactions),
		Feed:          handler.NewFeedHandler(interactions, cfg.FeedDefaultLimit),
		Notifications: handler.NewNotificationHandler(interactions, notifSvc),
	})

	// 启动服务
	logger.Info("social_graph service starting",
		zap.String("port", cfg.Port),
		zap.String("backend", cfg.StoreBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
