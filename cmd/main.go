package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sbilibin2017/cryptex-wallet/internal/bus"
	"github.com/sbilibin2017/cryptex-wallet/internal/facades"
	"github.com/sbilibin2017/cryptex-wallet/internal/handlers"
	"github.com/sbilibin2017/cryptex-wallet/internal/logger"
	"github.com/sbilibin2017/cryptex-wallet/internal/middlewares"
	"github.com/sbilibin2017/cryptex-wallet/internal/repositories"
	"github.com/sbilibin2017/cryptex-wallet/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Store backends.
const (
	backendMemory   = "memory"
	backendRedis    = "redis"
	backendPostgres = "postgres"
)

// config holds everything parsed from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	StoreBackend string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisPrefix       string

	KafkaBrokers []string
	KafkaTopic   string

	GWHost           string
	GWPort           string
	RateSyncInterval time.Duration

	Engine services.EngineConfig
}

// @title cryptex-wallet API
// @version 1.0.0
// @description Wallet ledger holding MWK and USDT balances derived from an append-only transaction log
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnv(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

// parseConfig loads environment variables from a file and returns the
// application, storage, messaging, gRPC and engine configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	cfg.StoreBackend = getEnv("STORE_BACKEND", backendRedis)
	switch cfg.StoreBackend {
	case backendMemory, backendRedis, backendPostgres:
	default:
		return cfg, fmt.Errorf("STORE_BACKEND: unknown backend %q", cfg.StoreBackend)
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	cfg.RedisPrefix = getEnv("REDIS_PREFIX", "wallet:")

	// Kafka config, disabled without brokers
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "wallet-events")

	// gRPC config
	cfg.GWHost = getEnv("GW_EXCHANGER_HOST", "localhost")
	cfg.GWPort = getEnv("GW_EXCHANGER_PORT", "50051")
	syncSecond, err := getEnvInt("RATE_SYNC_SECOND", "0")
	if err != nil {
		return
	}
	cfg.RateSyncInterval = time.Duration(syncSecond) * time.Second

	// Engine config
	cfg.Engine = services.DefaultEngineConfig()
	if cfg.Engine.FallbackRate, err = decimal.NewFromString(getEnv("FX_FALLBACK_RATE", strconv.Itoa(services.DefaultFallbackRate))); err != nil {
		return cfg, fmt.Errorf("FX_FALLBACK_RATE: %w", err)
	}
	if !cfg.Engine.FallbackRate.IsPositive() {
		return cfg, errors.New("FX_FALLBACK_RATE: must be positive")
	}
	if cfg.Engine.Pin.AllowWhenUnset, err = strconv.ParseBool(getEnv("PIN_ALLOW_WHEN_UNSET", "true")); err != nil {
		return cfg, fmt.Errorf("PIN_ALLOW_WHEN_UNSET: %w", err)
	}
	if cfg.Engine.MaxRetries, err = getEnvInt("ENGINE_MAX_RETRIES", strconv.Itoa(services.DefaultMaxRetries)); err != nil {
		return
	}

	return cfg, nil
}

// subscriber is a bus that other contexts can listen on.
type subscriber interface {
	bus.Publisher
	handlers.WalletSubscriber
}

// run initializes the logger, store, bus, gRPC client, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", cfg.LogLevel)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	// Store and bus
	var (
		store repositories.KVStore
		sub   subscriber
	)
	switch cfg.StoreBackend {
	case backendPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

		db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		pg := repositories.NewPostgresStore(db)
		if err := pg.Migrate(ctx); err != nil {
			return fmt.Errorf("PostgreSQL migration failed: %w", err)
		}
		store = pg

		// LISTEN needs a connection of its own, outside the pool
		listenConn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL listener connection error: %w", err)
		}
		defer listenConn.Close(context.Background())

		pgBus := bus.NewPostgresBus(db)
		go func() {
			if err := pgBus.Listen(ctx, listenConn); err != nil {
				log.Errorw("wallet event listener failed", "error", err)
			}
		}()
		sub = pgBus
	case backendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()

		store = repositories.NewRedisStore(rdb, cfg.RedisPrefix)
		sub = bus.NewRedisBus(rdb, cfg.RedisPrefix)
	default:
		store = repositories.NewMemoryStore()
		sub = bus.NewMemoryBus()
	}
	log.Infof("Using %s store", cfg.StoreBackend)

	publishers := bus.Multi{sub}
	if len(cfg.KafkaBrokers) > 0 {
		writer := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
			Async:                  true,
		}
		kp := bus.NewKafkaPublisher(writer)
		defer kp.Close()
		publishers = append(publishers, kp)
		log.Infof("Forwarding wallet events to Kafka topic %s", cfg.KafkaTopic)
	}

	// Initialize repositories and services
	walletService := services.NewWalletService(
		repositories.NewTransactionRepository(store),
		repositories.NewWalletRepository(store),
		repositories.NewFxRateRepository(store),
		repositories.NewPinRepository(store),
		publishers,
		cfg.Engine,
	)

	// Rate sync from the exchanger
	if cfg.RateSyncInterval > 0 {
		grpcAddr := fmt.Sprintf("%s:%s", cfg.GWHost, cfg.GWPort)
		conn, err := grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to create gRPC client for %s: %w", grpcAddr, err)
		}
		defer conn.Close()

		facade := facades.NewExchangeRatesGRPCFacade(pb.NewExchangeServiceClient(conn))
		syncer := services.NewRateSyncer(facade, walletService, cfg.RateSyncInterval)
		go syncer.Run(ctx)
		log.Infof("Syncing rate from %s every %s", grpcAddr, cfg.RateSyncInterval)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: newRouter(cfg, walletService, sub),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	go func() {
		log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every wallet route on a chi router.
func newRouter(cfg config, svc *services.WalletService, sub handlers.WalletSubscriber) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middlewares.RequestIDHeader},
		ExposedHeaders: []string{middlewares.RequestIDHeader},
		MaxAge:         300,
	}))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/wallet", handlers.NewGetWalletHandler(svc))
	r.Post("/wallet/recompute", handlers.NewRecomputeHandler(svc))
	r.Post("/wallet/deposit", handlers.NewDepositHandler(svc))
	r.Post("/wallet/withdraw", handlers.NewWithdrawHandler(svc))
	r.Post("/wallet/buy", handlers.NewBuyHandler(svc))
	r.Post("/wallet/sell", handlers.NewSellHandler(svc))

	r.Get("/transactions", handlers.NewListTransactionsHandler(svc))
	r.Get("/transactions/{id}", handlers.NewGetTransactionHandler(svc))

	r.Get("/pin", handlers.NewGetPinStatusHandler(svc))
	r.Post("/pin/verify", handlers.NewVerifyPinHandler(svc))
	r.Put("/pin", handlers.NewSetPinHandler(svc))

	r.Get("/rate", handlers.NewGetRateHandler(svc))
	r.Put("/rate", handlers.NewSetRateHandler(svc))

	r.Get("/ws", handlers.NewWalletStreamHandler(svc, sub))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	return r
}
