package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"travelorders/cmd"
	httpadapter "travelorders/internal/adapters/in/http"
	"travelorders/internal/adapters/out/kafka"
	"travelorders/internal/adapters/out/postgres/notificationrepo"
	"travelorders/internal/adapters/out/postgres/orderrepo"
	"travelorders/internal/adapters/out/postgres/userrepo"
	"travelorders/internal/adapters/out/redis"
	"travelorders/internal/core/application/usecases/commands"
	"travelorders/internal/core/domain/model/kernel"
	"travelorders/internal/core/domain/model/user"
	"travelorders/internal/jobs"
	"travelorders/internal/pkg/logging"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Missing .env is fine in containerized deployments where the
	// environment is set directly.
	_ = godotenv.Load(".env")

	configs, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)
		os.Exit(1)
	}

	logger, err := logging.New(configs.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("connect to postgres", zap.Error(err))
	}

	if err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&userrepo.UserDTO{},
		&userrepo.UserPermissionDTO{},
		&notificationrepo.NotificationDTO{},
	); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	ctx := context.Background()

	redisClient, err := redis.NewClient(ctx, redis.Config{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
		DB:       configs.RedisDB,
	})
	if err != nil {
		logger.Fatal("connect to redis", zap.Error(err))
	}
	tokenStore := redis.NewTokenStore(redisClient)

	notifier, err := kafka.NewNotifier(kafka.Config{
		Brokers: configs.KafkaBrokers,
		Topic:   configs.KafkaNotificationTopic,
	})
	if err != nil {
		logger.Fatal("configure kafka notifier", zap.Error(err))
	}
	defer func() { _ = notifier.Close() }()

	root := cmd.NewCompositionRoot(configs, gormDB, notifier, tokenStore, logger)

	// "grant <user-id> <permission>" is an administrative one-shot used to
	// seed reviewer capabilities; everything else starts the API server.
	if len(os.Args) > 1 && os.Args[1] == "grant" {
		if err = runGrant(ctx, &root, os.Args[2:]); err != nil {
			logger.Fatal("grant permission", zap.Error(err))
		}
		return
	}

	startWebServer(&root, configs, logger)
}

func runGrant(ctx context.Context, root *cmd.CompositionRoot, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: grant <user-id> <permission>")
	}

	userID, err := kernel.UUIDFromString(args[0])
	if err != nil {
		return err
	}
	permission, err := user.PermissionFromString(args[1])
	if err != nil {
		return err
	}

	grantCmd, err := commands.NewGrantPermissionCommand(userID, permission)
	if err != nil {
		return err
	}

	handler := root.CreateGrantPermissionCommandHandler()
	return handler.Handle(ctx, grantCmd)
}

func startWebServer(root *cmd.CompositionRoot, configs cmd.Config, logger *zap.Logger) {
	server := httpadapter.NewServer(
		root.CreateRegisterUserCommandHandler(),
		root.CreateCreateOrderCommandHandler(),
		root.CreateUpdateOrderStatusCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		root.CreateGetOrderQueryHandler(),
		root.CreateListOrdersQueryHandler(),
		root.CreateGetUserQueryHandler(),
		root.CreateGetUserByEmailQueryHandler(),
		root.TokenStrategy(),
		root.PasswordHasher(),
		root.TokenStore(),
	)

	jobManager := jobs.NewJobManager(
		root.CreateRelayNotificationsCommandHandler(),
		configs.RelayBatchSize,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("start background jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true

	server.RegisterRoutes(e)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}
