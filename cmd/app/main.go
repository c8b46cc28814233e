package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"ordertaking/cmd"
	httpin "ordertaking/internal/adapters/in/http"
	"ordertaking/internal/adapters/out/postgres/productcatalog"
)

func main() {
	configs := getConfigs()

	db, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err)
	}

	if err = db.AutoMigrate(
		&productcatalog.ProductDTO{},
		&productcatalog.PromotionPriceDTO{},
	); err != nil {
		log.Fatalf("failed to migrate schema: %s", err)
	}

	e := echo.New()
	root := cmd.NewCompositionRoot(configs, db, e.Logger.(*log.Logger))

	placeOrderHandler, err := root.CreatePlaceOrderCommandHandler(context.Background())
	if err != nil {
		log.Fatalf("failed to load price book: %s", err)
	}

	httpin.NewServer(placeOrderHandler).Register(e)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)
	return gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
}
