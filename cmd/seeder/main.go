package main

import (
	"officer-mobility/config"
	"officer-mobility/internal/database"
	"officer-mobility/internal/repository"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := config.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := config.ConnectDB(cfg.Database, log)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}

	log.Info("seeding sample fleet")
	if err := database.SeedAll(db, log); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}
	count, err := repository.NewOfficerRepository(db).Count()
	if err != nil {
		log.Fatal("counting officers failed", zap.Error(err))
	}
	log.Info("seeding finished", zap.Int64("officers", count))
}
