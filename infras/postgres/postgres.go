package postgres

//nolint:revive
import (
	"context"
	"fmt"
	"net"
	"time"

	"villa/config"

	"github.com/cenkalti/backoff/v5"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  CreatePostgresReadConn(*config),
		Write: CreatePostgresWriteConn(*config),
	}
}

// getDBName returns the database name with prefix if configured
func getDBName(config config.Config, baseName string) string {
	if config.DB.Postgres.Prefix != "" {
		return config.DB.Postgres.Prefix + baseName
	}

	return baseName
}

// CreatePostgresWriteConn creates a database connection for write access.
func CreatePostgresWriteConn(config config.Config) *sqlx.DB {
	write := config.DB.Postgres.Write

	return CreatePostgresConnection(
		"write",
		Descriptor(write.Username, write.Password, write.Host, write.Port, getDBName(config, write.Name), write.SSLMode),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

// CreatePostgresReadConn creates a database connection for read access.
func CreatePostgresReadConn(config config.Config) *sqlx.DB {
	read := config.DB.Postgres.Read

	return CreatePostgresConnection(
		"read",
		Descriptor(read.Username, read.Password, read.Host, read.Port, getDBName(config, read.Name), read.SSLMode),
		config.DB.Postgres.MaxRetry,
		config.DB.Postgres.RetryWaitTime,
	)
}

func Descriptor(username, password, host, port, dbName, sslMode string) string {
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)
}

// CreatePostgresConnection connects with retries. When every attempt fails the
// pool is still returned unconnected so queries surface the error per request.
func CreatePostgresConnection(name, descriptor string, maxRetry, waitTime int) *sqlx.DB {
	connect := func() (*sqlx.DB, error) {
		return sqlx.Connect(driverName, descriptor) //nolint:wrapcheck
	}

	notify := func(err error, wait time.Duration) {
		log.Error().Err(err).Str("name", name).Dur("wait", wait).Msg("Failed connecting to database, retrying")
	}

	sqlDB, err := backoff.Retry(context.Background(), connect,
		backoff.WithBackOff(backoff.NewConstantBackOff(time.Duration(waitTime)*time.Second)),
		backoff.WithMaxTries(uint(max(1, maxRetry))),
		backoff.WithNotify(notify),
	)
	if err == nil {
		log.Info().Str("name", name).Msg("Connected to database")

		return configurePool(sqlDB)
	}

	sqlDB, err = sqlx.Open(driverName, descriptor)
	if err != nil {
		log.Fatal().Err(err).Str("name", name).Msg("Invalid database descriptor")
	}

	log.Warn().Str("name", name).Msg("Database not reachable yet, continuing with a lazy pool")

	return configurePool(sqlDB)
}

func configurePool(sqlDB *sqlx.DB) *sqlx.DB {
	sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
	sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

	return sqlDB
}
