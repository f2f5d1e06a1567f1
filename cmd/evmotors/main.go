package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"evmotors/internal/config"
	"evmotors/internal/db"
	"evmotors/internal/handlers"
	"evmotors/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	conn, err := db.ConnectAndMigrate(cfg, log)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	app := handlers.NewApp(store.New(conn, log), log)
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
