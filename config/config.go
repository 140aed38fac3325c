package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/durcevicjuraj/calorie-tracker-web/models"
)

type Config struct {
	Addr        string
	DatabaseDSN string
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	return Config{Addr: addr, DatabaseDSN: dsn}
}

// OpenDB connects to postgres and migrates the schema. The handle is
// passed into the service constructors rather than held as a package
// global.
func OpenDB(cfg Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Food{},
		&models.FoodItem{},
		&models.Meal{},
		&models.MealItem{},
		&models.ConsumptionLog{},
		&models.DailyGoal{},
		&models.DailyHistory{},
	); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	return db, nil
}
