package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/HotelBooker/internal/auth"
	"github.com/stpnv0/HotelBooker/internal/config"
	"github.com/stpnv0/HotelBooker/internal/events"
	"github.com/stpnv0/HotelBooker/internal/handler"
	"github.com/stpnv0/HotelBooker/internal/idempotency"
	"github.com/stpnv0/HotelBooker/internal/middleware"
	"github.com/stpnv0/HotelBooker/internal/repository"
	"github.com/stpnv0/HotelBooker/internal/repository/memory"
	"github.com/stpnv0/HotelBooker/internal/router"
	"github.com/stpnv0/HotelBooker/internal/scheduler"
	"github.com/stpnv0/HotelBooker/internal/service"
	"github.com/stpnv0/HotelBooker/internal/service/ports"
	"github.com/stpnv0/HotelBooker/migrations"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	redis      *redis.Client
	publisher  *events.RabbitPublisher
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

type storage struct {
	rooms    ports.RoomRepo
	bookings ports.BookingRepo
	tx       ports.Transactor
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"HotelBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	store, err := app.initStorage()
	if err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	if err = app.initServices(store); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initStorage() (storage, error) {
	if a.cfg.Storage.Driver == config.StorageMemory {
		a.log.Warn("using in-memory storage, data is lost on restart")
		s := memory.New()
		return storage{rooms: s.Rooms(), bookings: s.Bookings(), tx: s}, nil
	}

	if err := a.runMigrations(); err != nil {
		return storage{}, fmt.Errorf("migrations: %w", err)
	}
	if err := a.initDB(); err != nil {
		return storage{}, fmt.Errorf("init db: %w", err)
	}

	return storage{
		rooms:    repository.NewRoomRepo(a.db),
		bookings: repository.NewBookingRepo(a.db),
		tx:       repository.NewTransactor(a.db),
	}, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initIdempotency() (middleware.IdempotencyStore, error) {
	if a.cfg.Redis.Addr == "" {
		a.log.Info("redis addr is empty, Idempotency-Key handling disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = rdb
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)

	return idempotency.NewStore(rdb, a.cfg.Redis.IdempotencyTTL), nil
}

func (a *App) initServices(store storage) error {
	publisher, err := events.NewRabbitPublisher(a.cfg.RabbitMQ.URL, a.cfg.RabbitMQ.Exchange, a.log)
	if err != nil {
		return fmt.Errorf("init publisher: %w", err)
	}
	a.publisher = publisher

	idem, err := a.initIdempotency()
	if err != nil {
		return fmt.Errorf("init idempotency: %w", err)
	}

	issuer := auth.NewIssuer(a.cfg.Auth.JWTSecret, a.cfg.Auth.TokenTTL, a.cfg.Auth.StaffEmails, a.cfg.Auth.StaffKey)

	roomService := service.NewRoomService(store.rooms)
	bookingService := service.NewBookingService(store.bookings, store.tx, publisher, a.log)

	if a.cfg.Scheduler.PendingTTL > 0 {
		a.scheduler = scheduler.New(
			bookingService,
			a.cfg.Scheduler.Interval,
			a.cfg.Scheduler.PendingTTL,
			a.log,
		)
	}

	h := handler.NewHandler(roomService, bookingService, issuer, a.cfg.Auth.CookieSecure)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Auth:        middleware.Auth(issuer),
			Staff:       middleware.RequireRole(auth.RoleStaff),
			Idempotency: middleware.Idempotency(idem, a.log),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS.AllowedOrigins),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if a.scheduler != nil {
		go a.scheduler.Start(ctx)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
			logger.String("storage", a.cfg.Storage.Driver),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.publisher.Close(); err != nil {
		a.log.Error("failed to close publisher", logger.String("error", err.Error()))
	}

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis", logger.String("error", err.Error()))
		}
	}

	if a.db != nil {
		if err := a.db.Master.Close(); err != nil {
			return fmt.Errorf("close db: %w", err)
		}
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")
	}

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
