package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config from .env
const (
	DB_HOST     = "localhost"
	DB_PORT     = "5432"
	DB_USER     = "postgres"
	DB_PASSWORD = ""
	DB_NAME     = "taskman"
)

func main() {
	fmt.Println("============================================")
	fmt.Println("  Taskman - Clear All Data")
	fmt.Println("============================================")
	fmt.Println()

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		DB_HOST, DB_USER, DB_PASSWORD, DB_NAME, DB_PORT)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	// Tables to truncate (order matters for foreign keys)
	tables := []string{"tasks", "persons"}

	for _, table := range tables {
		result := db.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if result.Error != nil {
			log.Printf("     Failed to truncate %s: %v\n", table, result.Error)
			continue
		}
		fmt.Printf("     Truncated %s\n", table)
	}

	fmt.Println()
	fmt.Println("============================================")
	fmt.Println("  Done! Ready for fresh testing.")
	fmt.Println("============================================")
}
