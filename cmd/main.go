package main

import (
	"context"
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
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/dev-ankit-kumar/Ernet-portal/internal/handlers"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/jwt"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/logger"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/middlewares"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/repositories"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/secrets"
	"github.com/dev-ankit-kumar/Ernet-portal/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title Ernet portal API
// @version 1.0.0
// @description Admin portal backend for VM and web-hosting provisioning
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		logLevel, jwtSecret, jwtExp,
		otpTTL, otpMaxAttempts, vmSecretKey,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaBrokers, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp,
		otpTTL, otpMaxAttempts,
		vmSecretKey,
	); err != nil {
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, logging, JWT, and OTP configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	logLevel, jwtSecretKey string, jwtExpSecond int,
	otpTTLSecond, otpMaxAttempts int,
	vmSecretKey string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "ernet_portal")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config; empty brokers disable audit publishing
	kafkaBrokers = getEnv("KAFKA_BROKERS", "")
	kafkaTopic = getEnv("KAFKA_AUDIT_TOPIC", "portal-audit")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "900")); err != nil {
		return
	}

	// OTP config
	if otpTTLSecond, err = strconv.Atoi(getEnv("OTP_TTL_SECOND", "30")); err != nil {
		return
	}
	if otpMaxAttempts, err = strconv.Atoi(getEnv("OTP_MAX_ATTEMPTS", "5")); err != nil {
		return
	}

	// Key for sealing VM passwords at rest, 32 bytes hex
	vmSecretKey = getEnv("VM_SECRET_KEY", "6368616e676520746869732070617373776f726420746f206120736563726574")

	return
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaBrokers, kafkaTopic string,
	logLevel string,
	jwtSecretKey string, jwtExpSecond int,
	otpTTLSecond, otpMaxAttempts int,
	vmSecretKey string,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka audit writer, optional
	var kafkaWriter *kafka.Writer
	if kafkaBrokers != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(kafkaBrokers, ",")...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
	}

	// VM password sealing
	box, err := secrets.New(vmSecretKey)
	if err != nil {
		logger.Log.Fatal("invalid VM_SECRET_KEY:", err)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	authorizedRepo := repositories.NewAuthorizedUserReadRepository(db)
	otpReadRepo := repositories.NewOTPReadRepository(db)
	otpWriteRepo := repositories.NewOTPWriteRepository(db)
	attemptRepo := repositories.NewOTPAttemptRepository(rdb, time.Duration(otpTTLSecond)*time.Second)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	vmReadRepo := repositories.NewVMReadRepository(db)
	vmWriteRepo := repositories.NewVMWriteRepository(db)
	webReadRepo := repositories.NewWebHostingReadRepository(db)
	webWriteRepo := repositories.NewWebHostingWriteRepository(db)

	// Initialize services
	var auditWriter services.KafkaWriter
	if kafkaWriter != nil {
		auditWriter = kafkaWriter
	}
	authService := services.NewAuthService(authorizedRepo, otpReadRepo, otpWriteRepo, attemptRepo, jwtSvc, otpTTLSecond, otpMaxAttempts)
	userService := services.NewUserService(userReadRepo, userWriteRepo, auditWriter)
	vmService := services.NewVMService(vmReadRepo, vmWriteRepo, box, auditWriter)
	webService := services.NewWebHostingService(webReadRepo, webWriteRepo, auditWriter)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Post("/api/send-otp", handlers.NewSendOTPHandler(authService))
	r.Post("/api/verify-otp", handlers.NewVerifyOTPHandler(authService))
	r.Post("/api/login", handlers.NewLoginHandler(authService))

	// Protected routes with JWT middleware
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)
	txMiddleware := middlewares.TxMiddleware(db)
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)

		r.Post("/api/add-user", handlers.NewAddUserHandler(userService))
		r.Post("/api/bulk-add-users", handlers.NewBulkAddUsersHandler(userService))
		r.Get("/api/users", handlers.NewUsersHandler(userService))
		r.Get("/api/user-count", handlers.NewUserCountHandler(userService))
		r.Get("/api/user/{id}", handlers.NewGetUserHandler(userService))
		r.Get("/api/invoice/{id}", handlers.NewInvoiceHandler(userService))
		r.With(txMiddleware).Put("/api/user/{id}", handlers.NewUpdateUserHandler(userService))
		r.With(txMiddleware).Delete("/api/user/{id}", handlers.NewDeleteUserHandler(userService))

		r.Post("/api/add-vm", handlers.NewAddVMHandler(vmService))
		r.Post("/api/bulk-add-vms", handlers.NewBulkAddVMsHandler(vmService))
		r.Get("/api/vms", handlers.NewVMsHandler(vmService))
		r.Get("/api/vm-count", handlers.NewVMCountHandler(vmService))

		r.Post("/api/add-webhosting-user", handlers.NewAddWebHostingUserHandler(webService))
		r.Post("/api/bulk-upload-webhosting", handlers.NewBulkUploadWebHostingHandler(webService))
		r.Get("/api/webhosting-users", handlers.NewWebHostingUsersHandler(webService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
