package main

import (
	"context"
	"log/slog"
	"os"

	"HaliSahaX/service/match/internal/config"
	"HaliSahaX/service/match/internal/db"
	"HaliSahaX/service/match/schema"
	"github.com/joho/godotenv"
)

// Applica lo schema embedded oppure i file SQL passati da CLI.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1) Carica env dedicato al servizio match.
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = "service/match/.env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	} else {
		logger.Info(".env caricato", "path", envPath)
	}

	// 2) Costruisce la DSN (env o Secrets Manager) e apre il DB.
	ctx := context.Background()
	cfg := config.Load()
	if err := cfg.ResolveDBSecret(ctx); err != nil {
		logger.Error("secret db non disponibile", "error", err)
		os.Exit(1)
	}

	database, err := db.Open(cfg.DBDSN)
	if err != nil {
		logger.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close()

	// 3) Senza argomenti applica schema.sql; altrimenti ogni file in una transazione.
	files := os.Args[1:]
	if len(files) == 0 {
		if err := db.ExecSQL(ctx, database, schema.SQL); err != nil {
			logger.Error("schema non applicato", "error", err)
			os.Exit(1)
		}
		logger.Info("schema applicato")
		return
	}

	for _, file := range files {
		if err := db.ExecSQLFile(ctx, database, file); err != nil {
			logger.Error("esecuzione sql fallita", "file", file, "error", err)
			os.Exit(1)
		}
		logger.Info("sql eseguito", "file", file)
	}
}
