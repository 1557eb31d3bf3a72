package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"procurement/cmd"
	httpin "procurement/internal/adapters/in/http"
	"procurement/internal/adapters/out/postgres/assetrepo"
	"procurement/internal/adapters/out/postgres/discrepancyrepo"
	"procurement/internal/adapters/out/postgres/orderrepo"
	"procurement/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateGetOverdueDeliveriesQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:       goDotEnvVariable("HTTP_PORT"),
		DBHost:         goDotEnvVariable("DB_HOST"),
		DBPort:         goDotEnvVariable("DB_PORT"),
		DBUser:         goDotEnvVariable("DB_USER"),
		DBPassword:     goDotEnvVariable("DB_PASSWORD"),
		DBName:         goDotEnvVariable("DB_NAME"),
		DBSslMode:      goDotEnvVariable("DB_SSLMODE"),
		AttachmentRoot: goDotEnvVariable("ATTACHMENT_ROOT"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TrackingEventDTO{},
		&discrepancyrepo.CaseDTO{},
		&discrepancyrepo.ShortageDTO{},
		&assetrepo.AssetDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderItemsCommandHandler(),
		app.CreateTransitionOrderCommandHandler(),
		app.CreateScheduleDeliveryCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateReceiveItemsCommandHandler(),
		app.CreateReviewDiscrepancyCommandHandler(),
		app.CreateResolveDiscrepancyCommandHandler(),
		app.CreateGenerateAssetsCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersByStatusQueryHandler(),
		app.CreateGetOverdueDeliveriesQueryHandler(),
		app.CreateGetOpenDiscrepancyQueryHandler(),
		app.Policy(),
		app.Files(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
