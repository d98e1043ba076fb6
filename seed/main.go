package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hmosawi/folio_api/seed/seeders"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, admin, survey, social")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := gorm.Open(postgres.Open(databaseDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database")

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		if err := mainSeeder.SeedAll(); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	case "admin":
		log.Println("Seeding admin account only...")
		if err := mainSeeder.SeedAdminOnly(); err != nil {
			log.Fatalf("Failed to seed admin: %v", err)
		}
	case "survey":
		log.Println("Seeding survey questions only...")
		if err := mainSeeder.SeedSurveyOnly(); err != nil {
			log.Fatalf("Failed to seed survey questions: %v", err)
		}
	case "social":
		log.Println("Seeding social links only...")
		if err := mainSeeder.SeedSocialOnly(); err != nil {
			log.Fatalf("Failed to seed social links: %v", err)
		}
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'admin', 'survey', or 'social'", *seedType)
	}
}

func databaseDSN() string {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn
	}

	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := envOr("DB_PASSWORD", "postgres")
	dbname := envOr("DB_NAME", "folio_api")
	sslmode := envOr("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func showHelp() {
	fmt.Println("Database seeder")
	fmt.Println()
	fmt.Println("Usage: seed [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -type string   Type of seeding: all, admin, survey, social (default \"all\")")
	fmt.Println("  -help          Show this help message")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  DATABASE_URL or DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME")
	fmt.Println("  ADMIN_EMAIL / ADMIN_PASSWORD for the seeded admin account")
}
