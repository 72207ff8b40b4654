package containers

import (
	"context"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image      = "postgres:16.3-alpine"
	dbName     = "halisaha"
	dbUser     = "halisaha"
	dbPassword = "secret"
)

// DBContainer e' un Postgres usa e getta per i test di integrazione.
type DBContainer struct {
	container *postgres.PostgresContainer
}

// NewDBContainer avvia il container e attende che accetti connessioni.
func NewDBContainer(ctx context.Context) (*DBContainer, error) {
	container, err := postgres.Run(ctx, image,
		postgres.WithDatabase(dbName),
		postgres.WithUsername(dbUser),
		postgres.WithPassword(dbPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}
	return &DBContainer{container: container}, nil
}

func (c *DBContainer) Shutdown(ctx context.Context) error {
	return c.container.Terminate(ctx)
}

func (c *DBContainer) ConnectionString(ctx context.Context) (string, error) {
	// Il container non ha TLS.
	return c.container.ConnectionString(ctx, "sslmode=disable")
}
