package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"villa/infras/otel"
	"villa/infras/postgres"
	"villa/internal/domains/gallery/model"
	"villa/shared/constant"

	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog/log"
)

// Filter selects items by category. An empty category matches everything and
// a zero Limit returns every row.
type Filter struct {
	Category string
	Limit    int
	Offset   int
}

type Gallery interface {
	Insert(ctx context.Context, item model.Item) error
	Get(ctx context.Context, id string) (model.Item, error)
	List(ctx context.Context, filter Filter) ([]model.Item, error)
	Count(ctx context.Context, filter Filter) (int, error)
	Delete(ctx context.Context, id string) error
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
	psql sq.StatementBuilderType
}

func New(db *postgres.Connection, otel otel.Otel) Gallery {
	return &repositoryImpl{
		db:   db,
		otel: otel,
		psql: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *repositoryImpl) Insert(ctx context.Context, item model.Item) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Insert")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.psql.Insert(model.TableName).
		Columns(model.Columns()...).
		Values(item.ID, item.Title, item.Category, item.Caption, item.ImageURL, item.ThumbnailURL, item.Position, item.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).Str("id", item.ID).Msg("failed to insert gallery item")

		return fmt.Errorf("failed to insert gallery item: %w", err)
	}

	return nil
}

// Get returns a zero Item when no row matches.
func (r *repositoryImpl) Get(ctx context.Context, id string) (item model.Item, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.psql.Select(model.Columns()...).
		From(model.TableName).
		Where(sq.Eq{model.FieldID: id}).
		ToSql()
	if err != nil {
		return item, fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err = r.db.Read.GetContext(ctx, &item, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}

	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get gallery item")

		return item, fmt.Errorf("failed to get gallery item: %w", err)
	}

	return item, nil
}

func (r *repositoryImpl) List(ctx context.Context, filter Filter) (items []model.Item, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	builder := r.psql.Select(model.Columns()...).
		From(model.TableName).
		OrderBy(model.FieldPosition+" ASC", model.FieldCreatedAt+" ASC")
	builder = applyFilter(builder, filter)

	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset)) //nolint:gosec
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	items = []model.Item{}
	if err = r.db.Read.SelectContext(ctx, &items, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to list gallery items")

		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}

	return items, nil
}

func (r *repositoryImpl) Count(ctx context.Context, filter Filter) (total int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := applyFilter(r.psql.Select("COUNT(*)").From(model.TableName), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.GetContext(ctx, &total, query, args...); err != nil {
		log.Error().Err(err).Msg("failed to count gallery items")

		return 0, fmt.Errorf("failed to count gallery items: %w", err)
	}

	return total, nil
}

func (r *repositoryImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	query, args, err := r.psql.Delete(model.TableName).
		Where(sq.Eq{model.FieldID: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if _, err = r.db.Write.ExecContext(ctx, query, args...); err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to delete gallery item")

		return fmt.Errorf("failed to delete gallery item: %w", err)
	}

	return nil
}

func applyFilter(builder sq.SelectBuilder, filter Filter) sq.SelectBuilder {
	if filter.Category != constant.Empty {
		builder = builder.Where(sq.Eq{model.FieldCategory: filter.Category})
	}

	return builder
}
