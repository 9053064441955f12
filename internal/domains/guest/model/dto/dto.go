package dto

import (
	"lodging/internal/domains/guest/model"
	"lodging/shared"
	"lodging/shared/constant"
	gDto "lodging/shared/dto"
	"lodging/shared/failure"
	"lodging/shared/timezone"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const amountPlaces = 2

func formatDate(value *time.Time) string {
	if value == nil || value.IsZero() {
		return ""
	}

	return value.Format(constant.DateOnlyFormat)
}

func deref[T any](value *T) T {
	var zero T
	if value == nil {
		return zero
	}

	return *value
}

// GuestListItem is the row shown by list and search results.
type GuestListItem struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	MobileNumber     string `json:"mobile_number"`
	IdentityNumber   string `json:"identity_number"`
	RoomNumber       int    `json:"room_number"`
	CheckInDate      string `json:"check_in_date"`
	CheckInDone      bool   `json:"check_in_done"`
	AmountPaidToday  string `json:"amount_paid_today"`
	RemainingAmount  string `json:"remaining_amount"`
	PaymentMode      string `json:"payment_mode"`
	ReceiptNumber    string `json:"receipt_number"`
	ReceiptGenerated bool   `json:"receipt_generated"`
	CreatedAt        string `json:"created_at"`
}

func (r *GuestListItem) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.FullName = guest.FullName
	r.MobileNumber = guest.MobileNumber
	r.IdentityNumber = guest.IdentityNumber
	r.RoomNumber = guest.RoomNumber
	r.CheckInDate = formatDate(&guest.CheckInDate)
	r.CheckInDone = guest.CheckInDone
	r.AmountPaidToday = guest.AmountPaidToday.StringFixed(amountPlaces)
	r.RemainingAmount = guest.RemainingAmount.StringFixed(amountPlaces)
	r.PaymentMode = guest.PaymentMode
	r.ReceiptNumber = guest.Receipt()
	r.ReceiptGenerated = guest.HasReceipt()
	r.CreatedAt = timezone.Format(guest.CreatedAt, constant.DateFormat)
}

// GuestDetail carries every stored field of a guest.
type GuestDetail struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	FatherSpouseName string `json:"father_spouse_name"`
	Age              *int   `json:"age"`
	Work             string `json:"work"`
	Address          string `json:"address"`
	Gender           string `json:"gender"`
	MaleCount        int    `json:"male_count"`
	FemaleCount      int    `json:"female_count"`
	ChildrenCount    int    `json:"children_count"`
	IdentityNumber   string `json:"identity_number"`
	MobileNumber     string `json:"mobile_number"`
	AlternateMobile  string `json:"alternate_mobile"`
	RoomNumber       int    `json:"room_number"`
	CheckInDate      string `json:"check_in_date"`
	CheckInDone      bool   `json:"check_in_done"`
	CheckOutDate     string `json:"check_out_date"`
	CheckOutTime     string `json:"check_out_time"`
	ExtraBed         bool   `json:"extra_bed"`
	AmountPaidToday  string `json:"amount_paid_today"`
	RemainingAmount  string `json:"remaining_amount"`
	TotalAmount      string `json:"total_amount"`
	PaymentMode      string `json:"payment_mode"`
	ReceiptNumber    string `json:"receipt_number"`
	ReceiptGenerated bool   `json:"receipt_generated"`
	Comments         string `json:"comments"`
	gDto.Metadata
}

func (r *GuestDetail) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.FullName = guest.FullName
	r.FatherSpouseName = deref(guest.FatherSpouseName)
	r.Age = guest.Age
	r.Work = deref(guest.Work)
	r.Address = guest.Address
	r.Gender = deref(guest.Gender)
	r.MaleCount = guest.MaleCount
	r.FemaleCount = guest.FemaleCount
	r.ChildrenCount = guest.ChildrenCount
	r.IdentityNumber = guest.IdentityNumber
	r.MobileNumber = guest.MobileNumber
	r.AlternateMobile = deref(guest.AlternateMobile)
	r.RoomNumber = guest.RoomNumber
	r.CheckInDate = formatDate(&guest.CheckInDate)
	r.CheckInDone = guest.CheckInDone
	r.CheckOutDate = formatDate(guest.CheckOutDate)
	r.CheckOutTime = deref(guest.CheckOutTime)
	r.ExtraBed = guest.ExtraBed
	r.AmountPaidToday = guest.AmountPaidToday.StringFixed(amountPlaces)
	r.RemainingAmount = guest.RemainingAmount.StringFixed(amountPlaces)
	r.TotalAmount = guest.Total().StringFixed(amountPlaces)
	r.PaymentMode = guest.PaymentMode
	r.ReceiptNumber = guest.Receipt()
	r.ReceiptGenerated = guest.HasReceipt()
	r.Comments = deref(guest.Comments)
	r.Metadata.FromModel(guest.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestListItem `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestListItem, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}

// RecentCheckIn is a dashboard row.
type RecentCheckIn struct {
	ID               int64  `json:"id"`
	FullName         string `json:"full_name"`
	RoomNumber       int    `json:"room_number"`
	CheckInDate      string `json:"check_in_date"`
	ReceiptNumber    string `json:"receipt_number"`
	ReceiptGenerated bool   `json:"receipt_generated"`
}

func (r *RecentCheckIn) FromModel(guest model.Guest) {
	r.ID = guest.ID
	r.FullName = guest.FullName
	r.RoomNumber = guest.RoomNumber
	r.CheckInDate = formatDate(&guest.CheckInDate)
	r.ReceiptNumber = guest.Receipt()
	r.ReceiptGenerated = guest.HasReceipt()
}

// ReceiptView is everything printed on a receipt.
type ReceiptView struct {
	PropertyName     string
	ReceiptNumber    string
	IssuedAt         time.Time
	FullName         string
	FatherSpouseName string
	Address          string
	MobileNumber     string
	IdentityNumber   string
	RoomNumber       int
	ExtraBed         bool
	Guests           int
	CheckInDate      time.Time
	CheckOutDate     *time.Time
	CheckOutTime     string
	AmountPaid       decimal.Decimal
	RemainingAmount  decimal.Decimal
	Total            decimal.Decimal
	PaymentMode      string
}

func (r *ReceiptView) FromModel(guest model.Guest, propertyName string, issuedAt time.Time) {
	r.PropertyName = propertyName
	r.ReceiptNumber = guest.Receipt()
	r.IssuedAt = issuedAt
	r.FullName = guest.FullName
	r.FatherSpouseName = deref(guest.FatherSpouseName)
	r.Address = guest.Address
	r.MobileNumber = guest.MobileNumber
	r.IdentityNumber = guest.IdentityNumber
	r.RoomNumber = guest.RoomNumber
	r.ExtraBed = guest.ExtraBed
	r.Guests = guest.MaleCount + guest.FemaleCount + guest.ChildrenCount
	r.CheckInDate = guest.CheckInDate
	r.CheckOutDate = guest.CheckOutDate
	r.CheckOutTime = deref(guest.CheckOutTime)
	r.AmountPaid = guest.AmountPaidToday
	r.RemainingAmount = guest.RemainingAmount
	r.Total = guest.Total()
	r.PaymentMode = guest.PaymentMode
}

// ExportRow is one line of the monthly workbook.
type ExportRow struct {
	FullName        string
	MobileNumber    string
	IdentityNumber  string
	AmountPaidToday decimal.Decimal
	RemainingAmount decimal.Decimal
	CheckInDate     time.Time
	RoomNumber      int
}

func (r *ExportRow) FromModel(guest model.Guest) {
	r.FullName = guest.FullName
	r.MobileNumber = guest.MobileNumber
	r.IdentityNumber = guest.IdentityNumber
	r.AmountPaidToday = guest.AmountPaidToday
	r.RemainingAmount = guest.RemainingAmount
	r.CheckInDate = guest.CheckInDate
	r.RoomNumber = guest.RoomNumber
}

// UpdateGuestRequest edits the correctable fields of a stay; empty fields are left unchanged.
type UpdateGuestRequest struct {
	FullName        string  `json:"full_name"         validate:"omitempty,max=255"`
	Address         string  `json:"address"           validate:"omitempty,max=500"`
	IdentityNumber  string  `json:"identity_number"   validate:"omitempty,digits=12"`
	MobileNumber    string  `json:"mobile_number"     validate:"omitempty,digits=10"`
	AmountPaidToday string  `json:"amount_paid_today" validate:"omitempty,money"`
	RemainingAmount string  `json:"remaining_amount"  validate:"omitempty,money"`
	PaymentMode     string  `json:"payment_mode"      validate:"omitempty,oneof=Cash Cheque Online Card"`
	Comments        *string `json:"comments"          validate:"omitempty,max=1000"`
	CheckOutDate    string  `json:"check_out_date"    validate:"omitempty,datetime=2006-01-02"`
	CheckOutTime    string  `json:"check_out_time"    validate:"omitempty,datetime=15:04"`
}

type guestPatch struct {
	FullName        string           `db:"full_name"`
	Address         string           `db:"address"`
	IdentityNumber  string           `db:"identity_number"`
	MobileNumber    string           `db:"mobile_number"`
	AmountPaidToday *decimal.Decimal `db:"amount_paid_today"`
	RemainingAmount *decimal.Decimal `db:"remaining_amount"`
	PaymentMode     string           `db:"payment_mode"`
	Comments        *string          `db:"comments"`
	CheckOutDate    *time.Time       `db:"check_out_date"`
	CheckOutTime    *string          `db:"check_out_time"`
}

// IsEmpty reports whether the request changes nothing.
func (u *UpdateGuestRequest) IsEmpty() bool {
	return *u == (UpdateGuestRequest{})
}

// CrossFieldMessages checks the edit against the stored stay.
func (u *UpdateGuestRequest) CrossFieldMessages(guest model.Guest) []string {
	if u.CheckOutDate == "" || guest.CheckInDate.IsZero() {
		return nil
	}

	// A validated ISO date orders lexically.
	if u.CheckOutDate < guest.CheckInDate.Format(constant.DateOnlyFormat) {
		return []string{"check_out_date must not be before check_in_date"}
	}

	return nil
}

// ToUpdateFields converts the request into column updates stamped with the editing user.
func (u *UpdateGuestRequest) ToUpdateFields(user string) (map[string]any, error) {
	patch := guestPatch{
		FullName:       strings.TrimSpace(u.FullName),
		Address:        strings.TrimSpace(u.Address),
		IdentityNumber: u.IdentityNumber,
		MobileNumber:   u.MobileNumber,
		PaymentMode:    u.PaymentMode,
		Comments:       u.Comments,
	}

	if u.AmountPaidToday != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(u.AmountPaidToday))
		if err != nil {
			return nil, failure.Conversion("amount_paid_today must be a valid amount") //nolint:wrapcheck
		}

		patch.AmountPaidToday = &amount
	}

	if u.RemainingAmount != "" {
		amount, err := decimal.NewFromString(strings.TrimSpace(u.RemainingAmount))
		if err != nil {
			return nil, failure.Conversion("remaining_amount must be a valid amount") //nolint:wrapcheck
		}

		patch.RemainingAmount = &amount
	}

	if u.CheckOutDate != "" {
		date, err := timezone.ParseDate(u.CheckOutDate)
		if err != nil {
			return nil, failure.Conversion("check_out_date must be a date in the format 2006-01-02") //nolint:wrapcheck
		}

		patch.CheckOutDate = &date
	}

	if u.CheckOutTime != "" {
		patch.CheckOutTime = &u.CheckOutTime
	}

	return shared.TransformFields(patch, user), nil
}
