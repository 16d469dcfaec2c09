package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"mestrack/cmd"
	"mestrack/internal/adapters/out/postgres/equipmentrepo"
	"mestrack/internal/adapters/out/postgres/inspectionrepo"
	"mestrack/internal/adapters/out/postgres/lotrepo"
	"mestrack/internal/adapters/out/postgres/productrepo"
	"mestrack/internal/adapters/out/postgres/workorderrepo"
	"mestrack/internal/adapters/out/ws"
	"mestrack/internal/core/domain/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := gorm.Open(postgres.Open(configs.DBConnectionString()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = migrate(gormDB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	hub := ws.NewHub(logger)
	go hub.Run()
	defer hub.Shutdown()

	app := cmd.NewCompositionRoot(configs, gormDB, hub)

	jobManager := app.CreateJobManager(logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func migrate(gormDB *gorm.DB) error {
	return gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&productrepo.ProcessDTO{},
		&workorderrepo.WorkOrderDTO{},
		&workorderrepo.WorkResultDTO{},
		&lotrepo.LotDTO{},
		&lotrepo.HistoryDTO{},
		&inspectionrepo.InspectionDTO{},
		&inspectionrepo.ItemDTO{},
		&inspectionrepo.StandardDTO{},
		&equipmentrepo.EquipmentDTO{},
		&equipmentrepo.TelemetryDTO{},
	)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:                 goDotEnvVariable("HTTP_PORT"),
		DBHost:                   goDotEnvVariable("DB_HOST"),
		DBPort:                   goDotEnvVariable("DB_PORT"),
		DBUser:                   goDotEnvVariable("DB_USER"),
		DBPassword:               goDotEnvVariable("DB_PASSWORD"),
		DBName:                   goDotEnvVariable("DB_NAME"),
		DBSslMode:                goDotEnvVariable("DB_SSLMODE"),
		DefectRateThreshold:      floatEnvVariable("DEFECT_RATE_THRESHOLD", services.DefaultDefectRateThreshold),
		EnableEquipmentSimulator: boolEnvVariable("ENABLE_EQUIPMENT_SIMULATOR"),
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

func floatEnvVariable(key string, fallback float64) float64 {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Fatalf("Invalid value for %s: %v", key, err)
	}
	return value
}

func boolEnvVariable(key string) bool {
	return goDotEnvVariable(key) == "true"
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := app.CreateHTTPServer()
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
