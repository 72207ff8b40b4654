package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"HaliSahaX/service/match/internal/config"
	"HaliSahaX/service/match/internal/db"
	"HaliSahaX/service/match/internal/match"
	"HaliSahaX/service/match/internal/store"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Stampa classifica e match in arrivo leggendo dallo store configurato.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// 1) Carica env per connessione allo store.
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = "service/match/.env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	}

	// 2) Apre lo store scelto da STORE_BACKEND.
	cfg := config.Load()
	var matchStore match.Store
	switch cfg.StoreBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		defer client.Close()
		matchStore = store.NewRedis(client, store.DefaultOptions)
	default:
		database, err := db.Open(cfg.DBDSN)
		if err != nil {
			logger.Error("db connection failed", "error", err)
			os.Exit(1)
		}
		defer database.Close()
		matchStore = store.NewPostgres(database, store.DefaultOptions)
	}

	// 3) Chiama il service di dominio e stampa il risultato.
	// Il catalogo non fallisce mai: gli errori finiscono nel log su stderr.
	service := match.NewService(matchStore, clock.New(), slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	players, _ := service.GetLeaderboard(ctx)
	fmt.Printf("leaderboard players=%d\n", len(players))
	for i, p := range players {
		fmt.Printf("%2d. %s rating=%.2f votes=%d matches=%d badges=%v\n",
			i+1, p.FullName, p.Rating, p.TotalVotes, p.MatchCount, p.Badges)
	}

	matches, _ := service.GetMatchesByStatus(ctx, match.FilterUpcoming)
	fmt.Printf("upcoming matches=%d\n", len(matches))
	for _, m := range matches {
		fmt.Printf("match id=%s date=%s location=%s A=%d B=%d\n",
			m.ID, m.Date.Format(time.RFC3339), m.Location, len(m.TeamA), len(m.TeamB))
	}
}
