package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"HaliSahaX/service/match/internal/config"
	"HaliSahaX/service/match/internal/db"
	"HaliSahaX/service/match/internal/match"
	"HaliSahaX/service/match/internal/store"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/itbasis/go-clock"
)

// Connessione e service riusati tra invocazioni della stessa istanza Lambda.
var service *match.Service

// handler finalizza i match scaduti su evento schedulato EventBridge.
func handler(ctx context.Context, event events.CloudWatchEvent) error {
	slog.Info("sweep schedulato", "time", event.Time)

	if service == nil {
		if err := initService(ctx); err != nil {
			return fmt.Errorf("init service: %w", err)
		}
	}

	finalized, err := service.SweepExpired(ctx)
	if err != nil {
		slog.Error("sweep fallito", "error", err, "finalized", len(finalized))
		return err
	}
	slog.Info("sweep completato", "finalized", len(finalized))
	return nil
}

func initService(ctx context.Context) error {
	cfg := config.Load()
	if err := cfg.ResolveDBSecret(ctx); err != nil {
		return err
	}
	database, err := db.Open(cfg.DBDSN)
	if err != nil {
		return err
	}
	// Pool ridotto per Lambda.
	database.SetMaxOpenConns(5)
	database.SetMaxIdleConns(2)

	opts := store.Options{MaxAttempts: cfg.TxMaxAttempts, Backoff: cfg.TxBackoff}
	service = match.NewService(store.NewPostgres(database, opts), clock.New(), slog.Default())
	return nil
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	lambda.Start(handler)
}
