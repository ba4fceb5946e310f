package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/luminauth/idp-console/internal/clients"
	"github.com/luminauth/idp-console/internal/config"
	"github.com/luminauth/idp-console/internal/database"
	"github.com/luminauth/idp-console/internal/logger"
	"github.com/luminauth/idp-console/internal/seeding"
)

func main() {
	withDevClient := flag.Bool("dev-client", false, "also register a development OAuth client")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zapLogger, err := logger.New(cfg.App.Environment)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck // best effort

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entClient, _, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer entClient.Close()

	if err := database.RunMigrations(ctx, entClient); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	seeder := seeding.New(entClient, zapLogger)
	if err := seeder.SeedScopeDescriptions(ctx); err != nil {
		log.Fatalf("seeding scope descriptions failed: %v", err)
	}

	if *withDevClient {
		store := clients.NewStore(entClient, zapLogger)
		client, secret, err := seeder.SeedDevClient(ctx, store)
		if err != nil {
			log.Fatalf("seeding dev client failed: %v", err)
		}
		if secret != "" {
			log.Printf("dev client ready: client_id=%s client_secret=%s (store this now, it is not shown again)", client.ClientID, secret)
		} else {
			log.Printf("dev client already present: client_id=%s", client.ClientID)
		}
	}

	log.Println("seeding complete")
}
