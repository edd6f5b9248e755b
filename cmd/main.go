package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/clinic-server/internal/api/http/context"
	"github.com/dtroode/clinic-server/internal/api/http/handler"
	"github.com/dtroode/clinic-server/internal/api/http/router"
	httpServer "github.com/dtroode/clinic-server/internal/api/http/server"
	"github.com/dtroode/clinic-server/internal/config"
	"github.com/dtroode/clinic-server/internal/logger"
	"github.com/dtroode/clinic-server/internal/model"
	"github.com/dtroode/clinic-server/internal/password"
	"github.com/dtroode/clinic-server/internal/repository/postgres"
	"github.com/dtroode/clinic-server/internal/revocation"
	"github.com/dtroode/clinic-server/internal/server"
	"github.com/dtroode/clinic-server/internal/service"
	storage "github.com/dtroode/clinic-server/internal/storage/minio"
	"github.com/dtroode/clinic-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.AccessTTL(), cfg.JWT.RefreshTTL())
	if err != nil {
		logger.Fatal("failed to initialize token issuer", "error", err)
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	avatarStorage, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}

	userRepo := postgres.NewUserRepository(db)
	branchRepo := postgres.NewBranchRepository(db)
	sectionRepo := postgres.NewSectionRepository(db)
	roomRepo := postgres.NewRoomRepository(db)
	specialtyRepo := postgres.NewSpecialtyRepository(db)
	scheduleRepo := postgres.NewScheduleRepository(db)

	registry := revocation.NewRegistry()
	go registry.Run(ctx, cfg.Revocation.SweepInterval)

	session := service.NewSession(tokenManager, registry, userRepo, logger)
	tokenService := service.NewTokenService(tokenManager, registry, session, logger)
	authService := service.NewAuth(userRepo, password.NewBcryptHasher(cfg.Password.BcryptCost), tokenService, logger)

	services := router.Services{
		Auth:        authService,
		Tokens:      tokenService,
		Users:       service.NewUser(userRepo, avatarStorage, logger),
		Directory:   service.NewDirectory(branchRepo, sectionRepo, roomRepo, logger),
		Specialties: service.NewSpecialty(specialtyRepo, logger),
		Schedules:   service.NewSchedule(scheduleRepo, userRepo, logger),
		DB:          db,
	}
	options := router.Options{
		Cookie: handler.CookieConfig{
			Name:   cfg.Cookie.Name,
			Secure: cfg.Cookie.Secure,
			MaxAge: cfg.JWT.RefreshTTL(),
		},
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}

	r := router.New(services, options, httpctx.NewManager(), logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete", "revoked_tokens", registry.Len())
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
