package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretGetter e' la parte del client Secrets Manager usata qui.
type SecretGetter interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// ResolveDBSecret sostituisce la DSN con le credenziali del secret DB_SECRET_ARN.
// Senza ARN non fa nulla.
func (c *Config) ResolveDBSecret(ctx context.Context) error {
	if c.DBSecretARN == "" {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	return c.resolveDBSecret(ctx, secretsmanager.NewFromConfig(awsCfg))
}

func (c *Config) resolveDBSecret(ctx context.Context, client SecretGetter) error {
	result, err := client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(c.DBSecretARN),
	})
	if err != nil {
		return fmt.Errorf("get db secret: %w", err)
	}
	if result.SecretString == nil {
		return errors.New("db secret has no string value")
	}

	// Il secret RDS ha port numerica: si decodifica in any.
	var creds map[string]any
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return fmt.Errorf("decode db secret: %w", err)
	}
	field := func(key string) string {
		if value, ok := creds[key]; ok && value != nil {
			return fmt.Sprint(value)
		}
		return ""
	}

	dsn := buildDSN(field("host"), field("port"), field("username"), field("password"), field("dbname"))
	if dsn == "" {
		return errors.New("db secret is missing host, username or dbname")
	}
	c.DBDSN = dsn
	slog.Info("credenziali db caricate da secrets manager")
	return nil
}
