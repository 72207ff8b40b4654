package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"HaliSahaX/pkg/authx"
	"HaliSahaX/pkg/grpcx"
	"HaliSahaX/service/match/internal/config"
	"HaliSahaX/service/match/internal/db"
	"HaliSahaX/service/match/internal/lock"
	"HaliSahaX/service/match/internal/match"
	"HaliSahaX/service/match/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
)

func main() {
	// Bootstrap di logging e config.
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Carica le variabili da .env se presente (solo per dev).
	envPath := os.Getenv("GO_DOTENV_PATH")
	if envPath == "" {
		envPath = ".env"
	}
	if err := godotenv.Overload(envPath); err != nil {
		// Se manca il file .env, continuiamo con le env già presenti.
		logger.Warn("impossibile caricare .env", "path", envPath, "error", err)
	} else {
		logger.Info(".env caricato", "path", envPath)
	}

	cfg := config.Load()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cfg.ResolveDBSecret(ctx); err != nil {
		logger.Error("secret db non disponibile", "error", err)
		os.Exit(1)
	}

	opts := store.Options{MaxAttempts: cfg.TxMaxAttempts, Backoff: cfg.TxBackoff}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	// Store documenti: Postgres (default) o Redis.
	var matchStore match.Store
	switch cfg.StoreBackend {
	case config.BackendRedis:
		if err := pingRedis(ctx, redisClient); err != nil {
			logger.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		matchStore = store.NewRedis(redisClient, opts)
	case config.BackendPostgres:
		database, err := db.Open(cfg.DBDSN)
		if err != nil {
			logger.Error("db connection failed", "error", err)
			os.Exit(1)
		}
		defer database.Close()
		matchStore = store.NewPostgres(database, opts)
	default:
		logger.Error("STORE_BACKEND non valido", "backend", cfg.StoreBackend)
		os.Exit(1)
	}

	// Il lock dello sweep e' opzionale: senza Redis ogni istanza fa il suo giro.
	var locker match.Locker
	if err := pingRedis(ctx, redisClient); err != nil {
		logger.Warn("redis non raggiungibile, sweep senza lock", "error", err)
	} else {
		locker = lock.NewRedisLock(redisClient, cfg.SweepInterval, 0, 0)
	}

	service := match.NewService(matchStore, clock.New(), logger)

	// Identita': JWT verificato se configurato, altrimenti metadata user_id (dev).
	var (
		unaryAuth grpc.UnaryServerInterceptor
		httpAuth  gin.HandlerFunc
	)
	if cfg.JWTSecret != "" {
		verifier := authx.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
		unaryAuth = verifier.UnaryInterceptor()
		httpAuth = verifier.GinMiddleware()
	} else {
		logger.Warn("JWT_SECRET mancante, identita' letta da metadata senza verifica")
		unaryAuth = grpcx.MetadataIdentityInterceptor()
	}

	// Registra MatchService.
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(unaryAuth))
	match.NewGRPCServer(service).Register(server)
	reflection.Register(server)

	listener, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Error("grpc listen failed", "error", err)
		os.Exit(1)
	}

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           match.NewRouter(service, httpAuth),
		ReadHeaderTimeout: 5 * time.Second,
	}

	var wg sync.WaitGroup
	shutdown := make(chan bool)
	wg.Add(1)
	go service.RunPeriodicSweep(cfg.SweepInterval, locker, shutdown, &wg)

	go func() {
		logger.Info("match http listening", "addr", cfg.HTTPAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve failed", "error", err)
			stop()
		}
	}()

	go func() {
		logger.Info("match grpc listening", "addr", cfg.GRPCAddr, "backend", cfg.StoreBackend)
		if err := server.Serve(listener); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown in corso")

	close(shutdown)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "error", err)
	}
	server.GracefulStop()
	wg.Wait()
}

func pingRedis(ctx context.Context, client *redis.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return client.Ping(ctx).Err()
}
