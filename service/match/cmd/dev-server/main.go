package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"time"

	"HaliSahaX/pkg/grpcx"
	"HaliSahaX/service/match/internal/match"
	"HaliSahaX/service/match/internal/store"
	"github.com/alicebob/miniredis/v2"
	"github.com/itbasis/go-clock"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

// Server locale senza dipendenze esterne: store Redis in memoria con dati demo.
// L'identita' arriva dal metadata "user_id" senza verifica.
func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	addr := os.Getenv("GRPC_ADDR")
	if addr == "" {
		addr = ":50062"
	}

	mr, err := miniredis.Run()
	if err != nil {
		logger.Error("miniredis start failed", "error", err)
		os.Exit(1)
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	matchStore := store.NewRedis(client, store.DefaultOptions)
	service := match.NewService(matchStore, clock.New(), logger)
	if err := seed(context.Background(), service, logger); err != nil {
		logger.Error("seed fallito", "error", err)
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("grpc listen failed", "error", err)
		os.Exit(1)
	}

	server := grpc.NewServer(grpc.UnaryInterceptor(grpcx.MetadataIdentityInterceptor()))
	match.NewGRPCServer(service).Register(server)
	reflection.Register(server)

	logger.Info("dev match grpc listening", "addr", addr, "redis", mr.Addr())
	if err := server.Serve(lis); err != nil {
		logger.Error("grpc serve failed", "error", err)
		os.Exit(1)
	}
}

// seed registra alcuni giocatori e un match di domani organizzato da "demo-org".
func seed(ctx context.Context, service *match.Service, logger *slog.Logger) error {
	demo := []match.ProfileUpdate{
		{FullName: "Demo Organizer", Position: "midfield"},
		{FullName: "Arda", Position: "forward", Age: 24},
		{FullName: "Cem", Position: "defense", Age: 29},
		{FullName: "Deniz", Position: "goalkeeper", Age: 31},
	}
	ids := []string{"demo-org", "demo-1", "demo-2", "demo-3"}
	for i, profile := range demo {
		if _, err := service.RegisterPlayer(ctx, ids[i], profile); err != nil {
			return err
		}
	}

	m, err := service.CreateMatch(ctx, "demo-org", "Caddebostan Halı Saha", "1500", "",
		time.Now().Add(24*time.Hour).Truncate(time.Hour))
	if err != nil {
		return err
	}
	for i, id := range ids[1:] {
		team := match.TeamA
		if i%2 == 1 {
			team = match.TeamB
		}
		if _, err := service.JoinOrSwitchTeam(ctx, m.ID, team, id); err != nil {
			return err
		}
	}
	logger.Info("dati demo caricati", "match_id", m.ID, "players", len(ids))
	return nil
}
