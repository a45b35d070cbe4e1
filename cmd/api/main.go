package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/lock"
	"github.com/BruksfildServices01/salon-scheduler/internal/logger"
	"github.com/BruksfildServices01/salon-scheduler/internal/media"
	"github.com/BruksfildServices01/salon-scheduler/internal/routes"
	"github.com/BruksfildServices01/salon-scheduler/internal/seed"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/validators"
	ucProfessional "github.com/BruksfildServices01/salon-scheduler/internal/usecase/professional"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Config{}).Fatal("invalid configuration", "error", err)
	}

	log := logger.New(logger.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "salon-scheduler",
	})

	if err := validators.RegisterBindings(); err != nil {
		log.Fatal("register validators", "error", err)
	}

	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}

	health := map[string]handlers.Pinger{}

	// ======================================================
	// STORAGE
	// ======================================================
	var (
		repo  domain.Repository
		store audit.Store
	)
	switch cfg.StorageDriver {
	case config.StorageMemory:
		mem := repository.NewMemoryRepository()
		if err := seed.Memory(mem, seed.DefaultPIN); err != nil {
			log.Fatal("seed memory storage", "error", err)
		}
		repo = mem
		store = audit.NewMemoryStore()
		log.Warn("using in-memory storage, data is lost on restart")

	default:
		db, err := dbpkg.NewDB(cfg)
		if err != nil {
			log.Fatal("connect database", "error", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal("get sql.DB", "error", err)
		}
		defer sqlDB.Close()

		repo = repository.NewAppointmentGormRepository(db)
		store = audit.New(db)
		health["database"] = handlers.PingFunc(sqlDB.PingContext)
	}

	// ======================================================
	// LOCK
	// ======================================================
	var locker lock.Locker = lock.NewLocalLocker()
	if cfg.RedisEnabled() {
		rdb, err := lock.NewRedisClient(cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword)
		if err != nil {
			log.Fatal("connect redis", "error", err)
		}
		defer rdb.Close()

		locker = lock.NewRedisLocker(rdb, cfg.LockTTL)
		health["redis"] = handlers.PingFunc(func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		})
		log.Info("redis slot lock enabled", "addr", cfg.RedisAddr)
	} else {
		log.Warn("REDIS_URL not set, slot lock is local to this instance")
	}

	// ======================================================
	// MEDIA
	// ======================================================
	var avatars ucProfessional.AvatarUploader
	if cfg.MediaEnabled() {
		avatars = media.NewAvatarStore(media.NewS3Client(cfg), cfg.S3Bucket, cfg.S3PublicBaseURL)
	}

	dispatcher := audit.NewDispatcher(store, log.Logger)

	r := gin.New()
	r.Use(gin.Recovery())

	routes.RegisterRoutes(r, routes.Deps{
		Config:     cfg,
		Logger:     log,
		Repo:       repo,
		Locker:     locker,
		Audit:      dispatcher,
		AuditStore: store,
		Avatars:    avatars,
		Health:     health,
		Now:        timezone.Clock(cfg.Timezone),
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: r,
	}

	go func() {
		log.Info("server running", "addr", cfg.Addr(), "storage", cfg.StorageDriver, "timezone", cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", "error", err)
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}

	// drena os eventos pendentes antes de fechar o banco
	dispatcher.Close()
	log.Info("server stopped")
}
