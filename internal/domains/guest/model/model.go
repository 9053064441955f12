package model

import (
	"lodging/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "tourists"
	EntityName = "guest"

	FieldID               = "id"
	FieldFullName         = "full_name"
	FieldFatherSpouseName = "father_spouse_name"
	FieldAge              = "age"
	FieldWork             = "work"
	FieldAddress          = "address"
	FieldGender           = "gender"
	FieldMaleCount        = "male_count"
	FieldFemaleCount      = "female_count"
	FieldChildrenCount    = "children_count"
	FieldIdentityNumber   = "identity_number"
	FieldMobileNumber     = "mobile_number"
	FieldAlternateMobile  = "alternate_mobile"
	FieldRoomNumber       = "room_number"
	FieldCheckInDate      = "check_in_date"
	FieldCheckInDone      = "check_in_done"
	FieldCheckOutDate     = "check_out_date"
	FieldCheckOutTime     = "check_out_time"
	FieldExtraBed         = "extra_bed"
	FieldAmountPaidToday  = "amount_paid_today"
	FieldRemainingAmount  = "remaining_amount"
	FieldPaymentMode      = "payment_mode"
	FieldReceiptNumber    = "receipt_number"
	FieldComments         = "comments"
	FieldCreatedAt        = "created_at"

	IndexRoomDateOccupied = "tourists_room_date_occupied_uidx"
)

const (
	PaymentModeCash    = "Cash"
	PaymentModeCheque  = "Cheque"
	PaymentModeOnline  = "Online"
	PaymentModeCard    = "Card"
	DefaultPaymentMode = PaymentModeCash
)

// Guest is a single stay of one party in one room on one check-in date.
type Guest struct {
	ID               int64           `db:"id"`
	FullName         string          `db:"full_name"`
	FatherSpouseName *string         `db:"father_spouse_name"`
	Age              *int            `db:"age"`
	Work             *string         `db:"work"`
	Address          string          `db:"address"`
	Gender           *string         `db:"gender"`
	MaleCount        int             `db:"male_count"`
	FemaleCount      int             `db:"female_count"`
	ChildrenCount    int             `db:"children_count"`
	IdentityNumber   string          `db:"identity_number"`
	MobileNumber     string          `db:"mobile_number"`
	AlternateMobile  *string         `db:"alternate_mobile"`
	RoomNumber       int             `db:"room_number"`
	CheckInDate      time.Time       `db:"check_in_date"`
	CheckInDone      bool            `db:"check_in_done"`
	CheckOutDate     *time.Time      `db:"check_out_date"`
	CheckOutTime     *string         `db:"check_out_time"`
	ExtraBed         bool            `db:"extra_bed"`
	AmountPaidToday  decimal.Decimal `db:"amount_paid_today"`
	RemainingAmount  decimal.Decimal `db:"remaining_amount"`
	PaymentMode      string          `db:"payment_mode"`
	ReceiptNumber    *string         `db:"receipt_number"`
	Comments         *string         `db:"comments"`
	model.Metadata
}

// Receipt returns the receipt number, empty when none was issued.
func (g Guest) Receipt() string {
	if g.ReceiptNumber == nil {
		return ""
	}

	return *g.ReceiptNumber
}

// HasReceipt treats a NULL and an empty receipt number alike.
func (g Guest) HasReceipt() bool {
	return g.Receipt() != ""
}

func (g Guest) Total() decimal.Decimal {
	return g.AmountPaidToday.Add(g.RemainingAmount)
}
