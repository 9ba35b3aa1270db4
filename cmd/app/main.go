package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gommonlog "github.com/labstack/gommon/log"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/postgres/alertrepo"
	"fulfillment/internal/adapters/out/postgres/chatrepo"
	"fulfillment/internal/adapters/out/postgres/idseq"
	"fulfillment/internal/adapters/out/postgres/itemrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outboxrepo"
	"fulfillment/internal/adapters/out/postgres/procurementrepo"
	"fulfillment/internal/adapters/out/postgres/requestrepo"
	"fulfillment/internal/adapters/out/postgres/userrepo"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/logger"
)

func main() {
	configs := getConfigs()

	if err := logger.Init(logger.Config{
		Level:       "info",
		Environment: configs.Environment,
		ServiceName: "fulfillment",
	}); err != nil {
		panic(err)
	}
	log := logger.Get()

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	app := cmd.NewCompositionRoot(configs, gormDB)
	defer func() {
		if closeErr := app.ClosePublisher(); closeErr != nil {
			log.Warn("failed to close notification publisher", zap.Error(closeErr))
		}
	}()

	jobManager := jobs.NewJobManager(app.CreateDispatchNotificationsCommandHandler(), log)
	if err := jobManager.StartAll(); err != nil {
		log.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := gormDB.AutoMigrate(
		&requestrepo.RequestDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.DeliveryDTO{},
		&procurementrepo.ProcurementDTO{},
		&procurementrepo.ProcurementItemDTO{},
		&procurementrepo.ProcurementCompletionDTO{},
		&alertrepo.AlertDTO{},
		&alertrepo.AlertOrderDTO{},
		&chatrepo.MessageDTO{},
		&itemrepo.ItemDTO{},
		&userrepo.UserDTO{},
		&idseq.SequenceDTO{},
		&outboxrepo.OutboxEntryDTO{},
	); err != nil {
		return nil, err
	}

	return gormDB, nil
}

func getConfigs() cmd.Config {
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:               getEnv("HTTP_PORT", "8080"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "postgres"),
		DBPassword:             getEnv("DB_PASSWORD", "postgres"),
		DBName:                 getEnv("DB_NAME", "fulfillment"),
		DBSslMode:              getEnv("DB_SSLMODE", "disable"),
		KafkaHost:              getEnv("KAFKA_HOST", "localhost:9092"),
		KafkaNotificationTopic: getEnv("KAFKA_NOTIFICATION_TOPIC", "fulfillment.notifications"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.HideBanner = true
	// Request logging goes through zap; keep echo's own logger quiet.
	e.Logger.SetLevel(gommonlog.ERROR)
	e.Use(middleware.Recover())
	e.Use(logger.Middleware())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(app.Metrics().Handler()))

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
