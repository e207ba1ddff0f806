package main

import (
	"fmt"
	"log"
	"os"

	"github.com/foundershield/foundershield/config"
	"github.com/foundershield/foundershield/internal/database"
	"github.com/foundershield/foundershield/internal/repository"
	"github.com/foundershield/foundershield/server"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: foundershield <command>")
		fmt.Println("Commands:")
		fmt.Println("  migrate   Create database tables")
		fmt.Println("  server    Start the application server")
		os.Exit(1)
	}

	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("Config initialization failed: %v", err)
	}
	if cfg == nil {
		log.Fatalf("config is empty")
	}

	// Setup the database
	dashboardDB, err := database.InitDatabase(&database.DatabaseConfig{
		DBPath:        cfg.DatabaseConfig.DBPath,
		BusyTimeoutMs: cfg.DatabaseConfig.BusyTimeoutMs,
		LogLevel:      cfg.DatabaseConfig.LogLevel,
	})
	if err != nil {
		log.Fatalf("Database initialization failed: %v", err)
	}

	switch os.Args[1] {
	case "migrate":

		err := repository.MigrateDB(dashboardDB)
		if err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}
		log.Println("Database migration completed successfully")

	case "server":

		log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
		log.Println("FounderShield starting up...")

		// Tables are created on every start; migrate exists for tooling that
		// wants the schema without the server.
		if err := repository.MigrateDB(dashboardDB); err != nil {
			log.Fatalf("Database migration failed: %v", err)
		}

		server, err := server.NewServer(cfg, dashboardDB)
		if err != nil {
			log.Fatalf("Server setup failed: %v", err)
		}

		err = server.Run()
		if err != nil {
			log.Fatalf("Server startup failed: %v", err)
		}

		log.Println("Shutdown complete")

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		fmt.Println("Usage: foundershield <command>")
		fmt.Println("Commands:")
		fmt.Println("  migrate   Create database tables")
		fmt.Println("  server    Start the application server")
		os.Exit(1)
	}
}
