package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/infras/otel"
	"lodging/infras/postgres"
	"lodging/internal/domains/receipt/model"
	"lodging/shared"
	"lodging/shared/constant"
	"lodging/shared/logger"
	gRepo "lodging/shared/repository"
	"lodging/shared/timezone"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	queryNextGlobal = `UPDATE receipt_counter
		SET current_number = current_number + 1, last_updated = $1
		WHERE id = $2
		RETURNING current_number`
	queryNextDaily = `INSERT INTO receipt_daily_counters (day, current_number, last_updated)
		VALUES ($1, $2, $3)
		ON CONFLICT (day) DO UPDATE
		SET current_number = GREATEST(receipt_daily_counters.current_number + 1, EXCLUDED.current_number),
			last_updated = EXCLUDED.last_updated
		RETURNING current_number`
)

type Receipt interface {
	// NextGlobal bumps the global counter and returns the new value.
	NextGlobal(ctx context.Context) (int64, error)
	NextGlobalTx(ctx context.Context, tx *sqlx.Tx) (int64, error)
	// NextDailyTx bumps the counter of day to at least floor and returns the new value.
	NextDailyTx(ctx context.Context, tx *sqlx.Tx, day time.Time, floor int) (int, error)
	Current(ctx context.Context) (model.Counter, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Counter]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Receipt {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Counter](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) nextGlobal(ctx context.Context, q sqlx.QueryerContext) (number int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".receipt.NextGlobal")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryNextGlobal)

	if err = sqlx.GetContext(ctx, q, &number, queryNextGlobal, timezone.Now(), model.CounterID); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to increment receipt counter: %w", err)
	}

	return number, nil
}

func (r *repositoryImpl) NextGlobal(ctx context.Context) (int64, error) {
	return r.nextGlobal(ctx, r.db.Write)
}

func (r *repositoryImpl) NextGlobalTx(ctx context.Context, tx *sqlx.Tx) (int64, error) {
	return r.nextGlobal(ctx, tx)
}

func (r *repositoryImpl) NextDailyTx(ctx context.Context, tx *sqlx.Tx, day time.Time, floor int) (number int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".receipt.NextDailyTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryNextDaily)

	if err = tx.GetContext(ctx, &number, queryNextDaily, day.Format(constant.DateOnlyFormat), max(floor, 1), timezone.Now()); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to increment daily receipt counter: %w", err)
	}

	return number, nil
}

func (r *repositoryImpl) Current(ctx context.Context) (model.Counter, error) {
	counter, err := r.Get(ctx, shared.FilterByID(model.CounterID, model.FieldID, model.TableName))
	if err != nil {
		return model.Counter{}, fmt.Errorf("failed to get receipt counter: %w", err)
	}

	return counter, nil
}
