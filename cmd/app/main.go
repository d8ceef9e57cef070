package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"courier/cmd"
	httpin "courier/internal/adapters/in/http"
	"courier/internal/adapters/out/postgres/invoicerepo"
	"courier/internal/adapters/out/postgres/parcelrepo"
	"courier/internal/adapters/out/postgres/paymentrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/adapters/out/postgres/userrepo"
	"courier/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDB(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(
		app.CreateMarkOverdueInvoicesCommandHandler(),
		configs.OverdueCronSchedule,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:            goDotEnvVariable("HTTP_PORT"),
		DBHost:              goDotEnvVariable("DB_HOST"),
		DBPort:              goDotEnvVariable("DB_PORT"),
		DBUser:              goDotEnvVariable("DB_USER"),
		DBPassword:          goDotEnvVariable("DB_PASSWORD"),
		DBName:              goDotEnvVariable("DB_NAME"),
		DBSslMode:           goDotEnvVariable("DB_SSLMODE"),
		OverdueCronSchedule: goDotEnvVariable("OVERDUE_CRON_SCHEDULE"),
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

// mustOpenDB connects to postgres and migrates the schema. TranslateError is
// required: the repositories rely on gorm.ErrDuplicatedKey to surface unique
// constraint violations as conflicts.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&userrepo.UserDTO{},
		&parcelrepo.ParcelDTO{},
		&shipmentrepo.ShipmentDTO{},
		&invoicerepo.InvoiceDTO{},
		&paymentrepo.PaymentDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreatePreAlertParcelCommandHandler(),
		app.CreateWeighParcelCommandHandler(),
		app.CreateCreateShipmentCommandHandler(),
		app.CreateMarkShipmentDeliveredCommandHandler(),
		app.CreateSubmitPaymentCommandHandler(),
		app.CreateVerifyPaymentCommandHandler(),
		app.CreateRejectPaymentCommandHandler(),
		app.CreateApproveParcelPaymentCommandHandler(),
		app.CreateDeletePaymentCommandHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateGetShipmentQueryHandler(),
		app.CreateGetInvoiceQueryHandler(),
		app.CreateGetInvoicesByOwnerQueryHandler(),
		app.CreateGetPaymentQueryHandler(),
		app.CreateGetPendingPaymentsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
