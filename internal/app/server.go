package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/WINZED31/Baladeya/internal/config"
	"github.com/WINZED31/Baladeya/internal/db"
	authHandler "github.com/WINZED31/Baladeya/internal/handlers/auth"
	pagesHandler "github.com/WINZED31/Baladeya/internal/handlers/pages"
	"github.com/WINZED31/Baladeya/internal/metrics"
	"github.com/WINZED31/Baladeya/internal/middleware"
	"github.com/WINZED31/Baladeya/internal/pkg/session"
	"github.com/WINZED31/Baladeya/internal/repository/postgres"
	"github.com/WINZED31/Baladeya/internal/service/analysis"
	authUsecase "github.com/WINZED31/Baladeya/internal/service/auth"
	complaintUsecase "github.com/WINZED31/Baladeya/internal/service/complaint"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type Server struct {
	cfg         config.AppConfig
	engine      *gin.Engine
	httpServer  *http.Server
	logger      *zap.Logger
	authService *authUsecase.Service
}

func NewServer() *Server {
	cfg := config.Load()
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	ctx := context.Background()

	// ----- Logger -----
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync()
	s.logger = logger

	// ----- PostgreSQL -----
	pool, err := db.ConnectPostgres(s.cfg.PostgresDSN)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// ----- Redis -----
	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     s.cfg.RedisAddr,
		Password: s.cfg.RedisPass,
		DB:       s.cfg.RedisDB,
		PoolSize: 10,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	logger.Info("connected to Redis", zap.String("addr", s.cfg.RedisAddr))

	// ----- Metrics -----
	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// ----- Repositories -----
	userRepo := postgres.NewUserRepository(pool)
	sessionRepo := postgres.NewSessionRepository(pool)
	complaintRepo := postgres.NewComplaintRepository(pool)

	// ----- Session store & rate limiter -----
	sessionStore := session.NewStore(redisClient, sessionRepo, logger)
	rateLimiter := session.NewRateLimiter(redisClient)

	// ----- Services -----
	authService := authUsecase.NewService(userRepo, sessionStore, rateLimiter, s.cfg.SessionTTL, logger)
	s.authService = authService
	complaintService := complaintUsecase.NewService(complaintRepo, logger)
	analyzer := analysis.NewKeywordAnalyzer()

	// ----- Admin seeding -----
	if err := s.seedAdmin(ctx); err != nil {
		logger.Error("failed to seed admin account", zap.Error(err))
	}

	// ----- Handlers -----
	authHandlerInst := authHandler.NewHandler(authService, s.cfg.SessionCookie, s.cfg.LangCookie, s.cfg.SessionTTL, m, logger)
	pagesHandlerInst := pagesHandler.NewHandler(authService, complaintService, analyzer, m, logger)

	// ----- Middlewares -----
	sessionMiddleware := middleware.NewSessionMiddleware(authService, s.cfg.SessionCookie, m)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.MetricsMiddleware(m),
		middleware.Language(s.cfg.LangCookie),
		sessionMiddleware.Load(),
	)

	// ----- Templates -----
	s.engine.LoadHTMLGlob(s.cfg.TemplateDir + "/*.tmpl")

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:       authHandlerInst,
		PagesHandler:      pagesHandlerInst,
		SessionMiddleware: sessionMiddleware,
		Registry:          registry,
	}
	SetupRouter(s.engine, logger, handlers)

	logger.Info("server running", zap.String("addr", s.cfg.HTTPAddr))
	s.httpServer = &http.Server{Addr: s.cfg.HTTPAddr, Handler: s.engine}
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests before the process exits.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// seedAdmin creates the administrator account when it does not exist yet.
func (s *Server) seedAdmin(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	email := os.Getenv("ADMIN_EMAIL")
	name := os.Getenv("ADMIN_NAME")

	if username == "" {
		username = "admin"
		s.logger.Warn("ADMIN_USERNAME not set, using default", zap.String("username", username))
	}
	if password == "" {
		s.logger.Warn("ADMIN_PASSWORD not set, skipping admin seeding")
		return nil
	}
	if email == "" {
		email = "admin@baladeya.dz"
	}
	if name == "" {
		name = "Administrator"
	}

	if len(password) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}

	return s.authService.EnsureAdminExists(ctx, username, email, password, name)
}
