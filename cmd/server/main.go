package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	appbilling "github.com/skillswap/backend/internal/application/billing"
	appcatalog "github.com/skillswap/backend/internal/application/catalog"
	appidentity "github.com/skillswap/backend/internal/application/identity"
	appmentorship "github.com/skillswap/backend/internal/application/mentorship"
	"github.com/skillswap/backend/internal/infrastructure/auth"
	"github.com/skillswap/backend/internal/infrastructure/config"
	"github.com/skillswap/backend/internal/infrastructure/event"
	"github.com/skillswap/backend/internal/infrastructure/logger"
	"github.com/skillswap/backend/internal/infrastructure/mail"
	"github.com/skillswap/backend/internal/infrastructure/password"
	"github.com/skillswap/backend/internal/infrastructure/persistence"
	"github.com/skillswap/backend/internal/interfaces/http/handler"
	"github.com/skillswap/backend/internal/interfaces/http/router"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server exited: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database,
		logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level)))
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close() //nolint:errcheck

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}
	log.Info("Database ready", zap.String("name", cfg.Database.DBName))

	var blacklist auth.TokenBlacklist
	if redisBlacklist, err := auth.NewRedisTokenBlacklist(cfg.Redis); err != nil {
		log.Warn("Redis unavailable, using in-memory token blacklist", zap.Error(err))
		blacklist = auth.NewInMemoryTokenBlacklist()
	} else {
		defer redisBlacklist.Close() //nolint:errcheck
		blacklist = redisBlacklist
	}

	jwtService := auth.NewJWTService(cfg.JWT)
	hasher := password.NewHasher()
	mailer := mail.NewLogMailer(log, cfg.Mail.From)

	eventBus := event.NewInMemoryBus(log)
	eventBus.Subscribe(appidentity.NewWelcomeMailHandler(mailer, log))

	userRepo := persistence.NewGormUserRepository(db.DB)
	resetTokenRepo := persistence.NewGormPasswordResetTokenRepository(db.DB)
	skillRepo := persistence.NewGormSkillRepository(db.DB)
	userSkillRepo := persistence.NewGormUserSkillRepository(db.DB)
	requestRepo := persistence.NewGormRequestRepository(db.DB)
	sessionRepo := persistence.NewGormSessionRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	ledgerRepo := persistence.NewGormBalanceTransactionRepository(db.DB)
	settlementScope := persistence.NewGormSettlementScope(db.DB)

	authService := appidentity.NewAuthService(userRepo, hasher, jwtService, blacklist, log)
	userService := appidentity.NewUserService(userRepo, ledgerRepo, hasher, eventBus, log)
	resetService := appidentity.NewPasswordResetService(userRepo, resetTokenRepo, hasher, mailer, log)
	skillService := appcatalog.NewSkillService(skillRepo, userSkillRepo, userRepo, log)
	requestService := appmentorship.NewRequestService(requestRepo, userRepo, skillRepo, log)
	sessionService := appmentorship.NewSessionService(sessionRepo, requestRepo, log)
	reviewService := appmentorship.NewReviewService(reviewRepo, sessionRepo, log)
	paymentService := appbilling.NewPaymentService(paymentRepo, ledgerRepo, userRepo, settlementScope, log)

	engine := router.New(router.Dependencies{
		Config:         cfg,
		Logger:         log,
		JWTService:     jwtService,
		TokenBlacklist: blacklist,
		Handlers: router.Handlers{
			Auth:       handler.NewAuthHandler(authService, userService, resetService),
			User:       handler.NewUserHandler(userService, skillService, paymentService),
			Skill:      handler.NewSkillHandler(skillService),
			Mentorship: handler.NewMentorshipHandler(requestService, sessionService, reviewService),
			Payment:    handler.NewPaymentHandler(paymentService),
			System:     handler.NewSystemHandler(db),
		},
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
