package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"storefront/cmd"
	_ "storefront/docs"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/payfast"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/offerrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/generated/servers"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustOpenDatabase(configs)
	gateway, err := payfast.NewGateway(payfast.Config{
		MerchantID:  configs.PayFastMerchantID,
		MerchantKey: configs.PayFastMerchantKey,
		Passphrase:  configs.PayFastPassphrase,
		ReturnURL:   configs.PayFastReturnURL,
		CancelURL:   configs.PayFastCancelURL,
		NotifyURL:   configs.PayFastNotifyURL,
		Sandbox:     configs.PayFastSandbox == "true",
	})
	if err != nil {
		log.Fatalf("Invalid PayFast configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, gateway)

	jobManager := startJobs(&app)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		PayFastMerchantID:  goDotEnvVariable("PAYFAST_MERCHANT_ID"),
		PayFastMerchantKey: goDotEnvVariable("PAYFAST_MERCHANT_KEY"),
		PayFastPassphrase:  goDotEnvVariable("PAYFAST_PASSPHRASE"),
		PayFastReturnURL:   goDotEnvVariable("PAYFAST_RETURN_URL"),
		PayFastCancelURL:   goDotEnvVariable("PAYFAST_CANCEL_URL"),
		PayFastNotifyURL:   goDotEnvVariable("PAYFAST_NOTIFY_URL"),
		PayFastSandbox:     goDotEnvVariable("PAYFAST_SANDBOX"),
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

func mustOpenDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	gormDB, err := gorm.Open(gorm_postgres.New(gorm_postgres.Config{Conn: sqlDB}), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to initialize gorm: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&productrepo.ProductDTO{},
		&offerrepo.OfferDTO{},
		&cartrepo.CartDTO{}, &cartrepo.CartItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

func startJobs(app *cmd.CompositionRoot) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager, err := jobs.NewJobManager(app.CreateGetOrderStatsQueryHandler(), logger)
	if err != nil {
		log.Fatalf("Failed to create job manager: %v", err)
	}
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCheckoutCommandHandler(),
		app.CreateMarkOrderPaidCommandHandler(),
		app.CreateMarkOrderDeliveredCommandHandler(),
		app.CreateSetOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetMyOrdersQueryHandler(),
		app.CreateGetOrderStatsQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
