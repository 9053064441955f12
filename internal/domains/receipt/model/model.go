package model

import "time"

const (
	TableName      = "receipt_counter"
	DailyTableName = "receipt_daily_counters"
	EntityName     = "receipt_counter"

	FieldID            = "id"
	FieldCurrentNumber = "current_number"
	FieldLastUpdated   = "last_updated"
	FieldDay           = "day"

	// CounterID is the primary key of the only row of the global counter.
	CounterID = 1

	DailyPrefix        = "RCP"
	DailySequenceLen   = 4
	DailyReceiptLen    = len(DailyPrefix) + len("20060102") + DailySequenceLen
	DefaultFormalWidth = 6
)

// Counter is the global sequence behind formal receipt numbers.
type Counter struct {
	ID            int       `db:"id"`
	CurrentNumber int64     `db:"current_number"`
	LastUpdated   time.Time `db:"last_updated"`
}

// DailyCounter is the per-day sequence behind check-in receipt numbers.
type DailyCounter struct {
	Day           time.Time `db:"day"`
	CurrentNumber int       `db:"current_number"`
	LastUpdated   time.Time `db:"last_updated"`
}
