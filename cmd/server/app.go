package server

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/officinaverde/blog-api/ent"
	"github.com/officinaverde/blog-api/internal/app/bootstrap"
	"github.com/officinaverde/blog-api/internal/app/middleware"
	"github.com/officinaverde/blog-api/internal/infra/persistence/database"
	ent_impl "github.com/officinaverde/blog-api/internal/infra/persistence/ent"
	"github.com/officinaverde/blog-api/internal/infra/router"
	"github.com/officinaverde/blog-api/pkg/config"
	article_handler "github.com/officinaverde/blog-api/pkg/handler/article"
	auth_handler "github.com/officinaverde/blog-api/pkg/handler/auth"
	category_handler "github.com/officinaverde/blog-api/pkg/handler/category"
	contact_handler "github.com/officinaverde/blog-api/pkg/handler/contact"
	tag_handler "github.com/officinaverde/blog-api/pkg/handler/tag"
	"github.com/officinaverde/blog-api/pkg/idgen"
	article_service "github.com/officinaverde/blog-api/pkg/service/article"
	auth_service "github.com/officinaverde/blog-api/pkg/service/auth"
	category_service "github.com/officinaverde/blog-api/pkg/service/category"
	contact_service "github.com/officinaverde/blog-api/pkg/service/contact"
	parser_service "github.com/officinaverde/blog-api/pkg/service/parser"
	tag_service "github.com/officinaverde/blog-api/pkg/service/tag"
	"github.com/officinaverde/blog-api/pkg/service/utility"

	_ "github.com/officinaverde/blog-api/ent/runtime"
)

// App bundles the process-wide components.
type App struct {
	cfg         *config.Config
	engine      *gin.Engine
	sqlDB       *sql.DB
	entClient   *ent.Client
	redisClient *redis.Client
}

// NewApp builds the whole dependency graph: config, storage, repositories,
// services, handlers and routes.
func NewApp() (*App, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := idgen.InitSqidsEncoder(); err != nil {
		return nil, fmt.Errorf("failed to initialize public ID encoder: %w", err)
	}

	ctx := context.Background()

	sqlDB, err := database.NewSQLDB(cfg)
	if err != nil {
		return nil, err
	}
	entClient, err := database.NewEntClient(ctx, sqlDB, cfg)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	redisClient, _ := database.NewRedisClient(ctx, cfg)
	cacheSvc := utility.NewCacheServiceWithFallback(redisClient)

	dbType := database.NormalizedDBType(cfg)

	// Repositories.
	articleRepo := ent_impl.NewArticleRepo(entClient, dbType)
	tagRepo := ent_impl.NewTagRepo(entClient)
	categoryRepo := ent_impl.NewCategoryRepo(entClient)
	userRepo := ent_impl.NewUserRepo(entClient)
	contactRepo := ent_impl.NewContactMessageRepo(entClient)
	txManager := ent_impl.NewEntTransactionManager(entClient, dbType)

	// Services.
	tokenSvc, err := auth_service.NewTokenService(cfg)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}
	authSvc := auth_service.NewAuthService(userRepo, txManager, tokenSvc)
	parserSvc := parser_service.NewService()
	articleSvc := article_service.NewService(articleRepo, tagRepo, categoryRepo, parserSvc, cacheSvc)
	tagSvc := tag_service.NewService(tagRepo)
	categorySvc := category_service.NewService(categoryRepo)
	contactSvc := contact_service.NewService(contactRepo)

	if err := bootstrap.NewBootstrapper(txManager).SeedAdminAccount(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("bootstrap failed: %w", err)
	}

	if !cfg.GetBool(config.KeyServerDebug) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.Default()

	handlers := &router.Handlers{
		Article:  article_handler.NewHandler(articleSvc),
		Auth:     auth_handler.NewHandler(authSvc),
		Tag:      tag_handler.NewHandler(tagSvc),
		Category: category_handler.NewHandler(categorySvc),
		Contact:  contact_handler.NewHandler(contactSvc),
	}
	mw := middleware.NewMiddleware(tokenSvc)
	router.Setup(engine, handlers, mw, cfg.GetString(config.KeyCORSOrigins))

	return &App{
		cfg:         cfg,
		engine:      engine,
		sqlDB:       sqlDB,
		entClient:   entClient,
		redisClient: redisClient,
	}, nil
}

// Run serves HTTP until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Run() error {
	port := a.cfg.GetString(config.KeyServerPort)
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.engine,
	}

	go func() {
		log.Printf("listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	a.close()
	log.Println("server stopped")
	return nil
}

func (a *App) close() {
	if a.entClient != nil {
		if err := a.entClient.Close(); err != nil {
			log.Printf("failed to close ent client: %v", err)
		}
	} else if a.sqlDB != nil {
		a.sqlDB.Close()
	}
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			log.Printf("failed to close redis client: %v", err)
		}
	}
}
