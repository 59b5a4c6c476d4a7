package main

import (
	"database/sql"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/dalmoeng/custos-go/cmd/internal/config"
	db "github.com/dalmoeng/custos-go/cmd/internal/db/sqlc"
	"github.com/dalmoeng/custos-go/cmd/internal/server"
	"github.com/dalmoeng/custos-go/cmd/pkg/logging"

	_ "github.com/lib/pq"
)

const dbDriver = "postgres"

func main() {
	logger := logging.GetLogger()
	logger.Info("Starting Custos API...")

	err := godotenv.Load()
	if err != nil {
		logger.Warnf("warning: error loading .env file: %v", err)
	}

	cfg := config.GetConfig()

	conn, err := sql.Open(dbDriver, cfg.Postgres.DSN())
	if err != nil {
		logger.Fatalf("error connecting to database: %v", err)
	}
	defer conn.Close()

	if err = conn.Ping(); err != nil {
		logger.Fatalf("error pinging database: %v", err)
	}

	logger.Info("Database connection established")

	store := db.NewStore(conn)
	srv := server.NewServer(store, logger, cfg)

	serverAddress := fmt.Sprintf("%s:%s", cfg.Listen.BindIP, cfg.Listen.Port)
	logger.Infof("Starting server on %s", serverAddress)

	err = srv.Start(serverAddress)
	if err != nil {
		logger.Fatalf("error starting server: %v", err)
	}
}
