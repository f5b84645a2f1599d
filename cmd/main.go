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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-rfid-launcher/docs"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/facades"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/handlers"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/logger"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/metrics"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/middlewares"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/migrations"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/repositories"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/services"
	"github.com/sbilibin2017/gw-rfid-launcher/internal/tags"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage backends.
const (
	backendPostgres = "postgres"
	backendDynamoDB = "dynamodb"
)

// config holds everything read from the environment.
type config struct {
	AppHost         string
	AppPort         string
	LogLevel        string
	LogFormat       string
	CORSAllowOrigin string
	StorageBackend  string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	DynamoEndpoint  string
	DynamoTableName string
	AWSRegion       string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers   []string
	KafkaScanTopic string

	LaunchEnabled bool
	LaunchCommand string
	LaunchTimeout time.Duration

	ScanDebounce       time.Duration
	UIDStripSeparators bool
}

// @title gw-rfid-launcher API
// @version 1.0.0
// @description Maps scanned RFID tags to users and opens their music resource
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
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, storage, Redis, Kafka, launch and logging configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}
	getBool := func(key, defaultValue string) (bool, error) {
		v, err := strconv.ParseBool(getEnv(key, defaultValue))
		if err != nil {
			return false, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", logger.FormatJSON)
	cfg.CORSAllowOrigin = getEnv("APP_CORS_ALLOW_ORIGIN", "*")
	cfg.StorageBackend = getEnv("STORAGE_BACKEND", backendPostgres)
	if cfg.StorageBackend != backendPostgres && cfg.StorageBackend != backendDynamoDB {
		err = fmt.Errorf("STORAGE_BACKEND: unsupported backend %q", cfg.StorageBackend)
		return
	}

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// DynamoDB config
	cfg.DynamoEndpoint = getEnv("DYNAMODB_ENDPOINT", "")
	cfg.DynamoTableName = getEnv("DYNAMODB_TABLE_NAME", "rfid-users")
	cfg.AWSRegion = getEnv("AWS_REGION", "us-east-1")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaScanTopic = getEnv("KAFKA_SCAN_TOPIC", "rfid-scans")

	// Launch config
	if cfg.LaunchEnabled, err = getBool("LAUNCH_ENABLED", "true"); err != nil {
		return
	}
	cfg.LaunchCommand = getEnv("LAUNCH_COMMAND", "")
	launchTimeoutMS, err := getInt("LAUNCH_TIMEOUT_MS", "3000")
	if err != nil {
		return
	}
	cfg.LaunchTimeout = time.Duration(launchTimeoutMS) * time.Millisecond

	// Tag config
	debounceSecond, err := getInt("SCAN_DEBOUNCE_SECOND", "0")
	if err != nil {
		return
	}
	cfg.ScanDebounce = time.Duration(debounceSecond) * time.Second
	if cfg.UIDStripSeparators, err = getBool("UID_STRIP_SEPARATORS", "false"); err != nil {
		return
	}

	return
}

// userStore is the directory store the service runs against.
type userStore interface {
	services.RFIDUserReader
	services.RFIDUserWriter
}

type postgresStore struct {
	*repositories.RFIDUserReadRepository
	*repositories.RFIDUserWriteRepository
}

// run initializes the logger, storage, Redis, Kafka, launcher and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel, cfg.LogFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Initialize storage
	var (
		store userStore
		db    *sqlx.DB
	)
	switch cfg.StorageBackend {
	case backendPostgres:
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
		logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

		var err error
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.PGMaxOpenConns)
		db.SetMaxIdleConns(cfg.PGMaxIdleConns)

		if err := migrations.Up(ctx, db.DB); err != nil {
			return fmt.Errorf("migrations failed: %w", err)
		}
		version, err := migrations.Version(ctx, db.DB)
		if err != nil {
			return fmt.Errorf("failed to read schema version: %w", err)
		}
		logger.Log.Infow("schema migrated", "version", version)

		store = postgresStore{
			RFIDUserReadRepository:  repositories.NewRFIDUserReadRepository(db, middlewares.GetTxFromContext),
			RFIDUserWriteRepository: repositories.NewRFIDUserWriteRepository(db, middlewares.GetTxFromContext),
		}

	case backendDynamoDB:
		logger.Log.Infof("Connecting to DynamoDB table %s in %s", cfg.DynamoTableName, cfg.AWSRegion)

		client, err := repositories.NewDynamoClient(ctx, cfg.AWSRegion, cfg.DynamoEndpoint)
		if err != nil {
			return fmt.Errorf("DynamoDB client error: %w", err)
		}
		dynamoRepo := repositories.NewRFIDUserDynamoRepository(client, cfg.DynamoTableName)
		if err := dynamoRepo.EnsureTable(ctx, time.Minute); err != nil {
			return fmt.Errorf("DynamoDB table setup failed: %w", err)
		}
		store = dynamoRepo
	}

	// Scan debounce needs Redis
	var debouncer services.ScanDebouncer
	if cfg.ScanDebounce > 0 {
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
		debouncer = repositories.NewScanDebounceRepository(rdb, cfg.ScanDebounce)
	}

	// Scan events
	var kafkaWriter services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:         kafka.TCP(cfg.KafkaBrokers...),
			Topic:        cfg.KafkaScanTopic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 10 * time.Millisecond,
			Async:        true,
			Completion: func(msgs []kafka.Message, err error) {
				if err != nil {
					logger.Log.Errorw("failed to deliver scan events to Kafka", "count", len(msgs), "error", err)
				}
			},
		}
		defer w.Close()
		kafkaWriter = w
	}

	var launcher services.Launcher
	if cfg.LaunchEnabled {
		launcher = facades.NewCommandLauncher(cfg.LaunchCommand)
	}

	// Initialize services
	rfidService := services.NewRFIDService(
		store, store,
		tags.NewNormalizer(cfg.UIDStripSeparators),
		launcher, debouncer, kafkaWriter,
		cfg.LaunchTimeout,
	)

	// Initialize handlers
	resolveTagHandler := handlers.NewResolveTagHandler(rfidService)
	listUsersHandler := handlers.NewListUsersHandler(rfidService)
	createUserHandler := handlers.NewCreateUserHandler(rfidService)
	updateUserHandler := handlers.NewUpdateUserHandler(rfidService)
	deleteUserHandler := handlers.NewDeleteUserHandler(rfidService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.CORSMiddleware(cfg.CORSAllowOrigin))
	r.Use(middlewares.LoggingMiddleware)
	r.Use(metrics.Middleware)

	r.Get("/rfid", resolveTagHandler)
	r.Get("/rfid/users", listUsersHandler)

	r.Group(func(r chi.Router) {
		if db != nil {
			r.Use(middlewares.TxMiddleware(db))
		}
		r.Post("/rfid/users", createUserHandler)
		r.Patch("/rfid/users/{uid}", updateUserHandler)
		r.Delete("/rfid/users/{uid}", deleteUserHandler)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
