package helper_test

import (
	"testing"

	"villa/config"
	"villa/helper"

	"github.com/stretchr/testify/assert"
)

func TestConnectionString(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"
	cfg.DB.Postgres.MigrationTable = "schema_migrations"
	cfg.DB.Postgres.Write.Username = "villa"
	cfg.DB.Postgres.Write.Password = "secret"
	cfg.DB.Postgres.Write.Host = "db"
	cfg.DB.Postgres.Write.Port = "5432"
	cfg.DB.Postgres.Write.Name = "villa"
	cfg.DB.Postgres.Write.SSLMode = "disable"

	assert.Equal(t,
		"postgres://villa:secret@db:5432/staging_villa?sslmode=disable&x-migrations-table=schema_migrations",
		helper.ConnectionString(cfg),
	)
}
