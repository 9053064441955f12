package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"lodging/infras/otel"
	"lodging/infras/postgres"
	"lodging/internal/domains/guest/model"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	"lodging/shared/logger"
	gRepo "lodging/shared/repository"
	"lodging/shared/timezone"
	"slices"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

const (
	queryOccupiedRooms = `SELECT room_number FROM tourists
		WHERE check_in_date = $1 AND check_in_done
		ORDER BY room_number`
	queryLockDate      = `SELECT pg_advisory_xact_lock(hashtext($1))`
	queryLatestReceipt = `SELECT receipt_number FROM tourists
		WHERE receipt_number LIKE $1 AND char_length(receipt_number) = $2
		ORDER BY receipt_number DESC
		LIMIT 1`
	queryReceiptExists = `SELECT EXISTS(SELECT 1 FROM tourists WHERE receipt_number = $1)`
	querySetReceipt    = `UPDATE tourists
		SET receipt_number = $1, modified_at = $2, modified_by = $3
		WHERE id = $4 AND (receipt_number IS NULL OR receipt_number = '')`

	lockKeyPrefix = "checkin:"
)

type Guest interface {
	Insert(ctx context.Context, guest model.Guest) (int64, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, guest model.Guest) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Guest, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Guest, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateTx(ctx context.Context, tx *sqlx.Tx, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error

	// OccupiedRooms lists, ascending, the rooms held by completed check-ins on date.
	OccupiedRooms(ctx context.Context, date time.Time) ([]int, error)
	OccupiedRoomsTx(ctx context.Context, tx *sqlx.Tx, date time.Time) ([]int, error)
	// LockDate serializes check-ins for one date until tx ends.
	LockDate(ctx context.Context, tx *sqlx.Tx, date time.Time) error
	// LatestReceiptWithPrefix returns the greatest receipt of exactly length characters starting with prefix.
	LatestReceiptWithPrefix(ctx context.Context, tx *sqlx.Tx, prefix string, length int) (string, error)
	ReceiptExists(ctx context.Context, tx *sqlx.Tx, number string) (bool, error)
	// SetReceiptNumberTx writes number only when the guest has none, reporting whether a row changed.
	SetReceiptNumberTx(ctx context.Context, tx *sqlx.Tx, id int64, number, user string) (bool, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Guest]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) insertReturning(ctx context.Context, exec sqlx.ExtContext, guest model.Guest) (id int64, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.insertReturning")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	columns := slices.DeleteFunc(slices.Clone(r.InsertColumns), func(col string) bool {
		return col == model.FieldID
	})

	placeholders := make([]string, len(columns))
	for i, col := range columns {
		placeholders[i] = ":" + col
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		model.TableName, strings.Join(columns, ", "), strings.Join(placeholders, ", "), model.FieldID)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	rows, err := sqlx.NamedQueryContext(ctx, exec, query, guest)
	if err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}
	defer rows.Close()

	if rows.Next() {
		if err = rows.Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to scan inserted id (%s): %w", model.EntityName, err)
		}
	}

	if err = rows.Err(); err != nil {
		logger.ErrorWithStack(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return id, nil
}

func (r *repositoryImpl) Insert(ctx context.Context, guest model.Guest) (int64, error) {
	return r.insertReturning(ctx, r.db.Write, guest)
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, guest model.Guest) (int64, error) {
	return r.insertReturning(ctx, tx, guest)
}

func (r *repositoryImpl) occupiedRooms(ctx context.Context, q sqlx.QueryerContext, date time.Time) (rooms []int, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.OccupiedRooms")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryOccupiedRooms)

	rooms = []int{}

	if err = sqlx.SelectContext(ctx, q, &rooms, queryOccupiedRooms, date.Format(constant.DateOnlyFormat)); err != nil {
		logger.ErrorWithStack(err)

		return nil, fmt.Errorf("failed to get occupied rooms: %w", err)
	}

	return rooms, nil
}

func (r *repositoryImpl) OccupiedRooms(ctx context.Context, date time.Time) ([]int, error) {
	return r.occupiedRooms(ctx, r.db.Read, date)
}

func (r *repositoryImpl) OccupiedRoomsTx(ctx context.Context, tx *sqlx.Tx, date time.Time) ([]int, error) {
	return r.occupiedRooms(ctx, tx, date)
}

func (r *repositoryImpl) LockDate(ctx context.Context, tx *sqlx.Tx, date time.Time) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.LockDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = tx.ExecContext(ctx, queryLockDate, lockKeyPrefix+date.Format(constant.DateOnlyFormat)); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to lock check-in date: %w", err)
	}

	return nil
}

func (r *repositoryImpl) LatestReceiptWithPrefix(ctx context.Context, tx *sqlx.Tx, prefix string, length int) (number string, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.LatestReceiptWithPrefix")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var numbers []string

	if err = tx.SelectContext(ctx, &numbers, queryLatestReceipt, prefix+"%", length); err != nil {
		logger.ErrorWithStack(err)

		return "", fmt.Errorf("failed to get latest receipt: %w", err)
	}

	if len(numbers) == 0 {
		return "", nil
	}

	return numbers[0], nil
}

func (r *repositoryImpl) ReceiptExists(ctx context.Context, tx *sqlx.Tx, number string) (exists bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.ReceiptExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = tx.GetContext(ctx, &exists, queryReceiptExists, number); err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to check receipt number: %w", err)
	}

	return exists, nil
}

func (r *repositoryImpl) SetReceiptNumberTx(ctx context.Context, tx *sqlx.Tx, id int64, number, user string) (updated bool, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".guest.SetReceiptNumberTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result, err := tx.ExecContext(ctx, querySetReceipt, number, timezone.Now(), user, id)
	if err != nil {
		logger.ErrorWithStack(err)

		return false, fmt.Errorf("failed to set receipt number: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
