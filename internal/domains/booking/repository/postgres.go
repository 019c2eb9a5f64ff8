package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"villa/infras/otel"
	"villa/infras/postgres"
	"villa/shared/constant"
	"villa/shared/timezone"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog/log"
)

const (
	stateTable       = "booking_state"
	stateFieldKey    = "state_key"
	stateFieldState  = "payload"
	stateFieldUpdate = "updated_at"
)

type postgresBackend struct {
	db   *postgres.Connection
	key  string
	otel otel.Otel
	psql sq.StatementBuilderType
}

// NewPostgres keeps the state as one jsonb row keyed by the state key.
func NewPostgres(db *postgres.Connection, key string, otel otel.Otel) Backend {
	return &postgresBackend{
		db:   db,
		key:  key,
		otel: otel,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (p *postgresBackend) Read(ctx context.Context) (state []byte, err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Read")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := p.psql.Select(stateFieldState).
		From(stateTable).
		Where(sq.Eq{stateFieldKey: p.key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	// Reads go to the write pool so a submit never checks against a lagging replica.
	err = p.db.Write.GetContext(ctx, &state, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrStateNotFound
	}

	if err != nil {
		log.Error().Err(err).Str("key", p.key).Msg("failed to read booking state from postgres")

		return nil, fmt.Errorf("failed to read booking state from postgres: %w", err)
	}

	return state, nil
}

func (p *postgresBackend) Write(ctx context.Context, state []byte) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".postgres.Write")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := p.psql.Insert(stateTable).
		Columns(stateFieldKey, stateFieldState, stateFieldUpdate).
		Values(p.key, string(state), timezone.Now()).
		Suffix(fmt.Sprintf(
			"ON CONFLICT (%s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s",
			stateFieldKey, stateFieldState, stateFieldState, stateFieldUpdate, stateFieldUpdate,
		)).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = p.db.Write.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).Str("key", p.key).Msg("failed to write booking state to postgres")

		return fmt.Errorf("failed to write booking state to postgres: %w", err)
	}

	return nil
}

func (p *postgresBackend) Name() string {
	return StorePostgres
}
