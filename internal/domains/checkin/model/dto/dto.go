package dto

import (
	"errors"
	"lodging/internal/domains/guest/model"
	guestDto "lodging/internal/domains/guest/model/dto"
	"lodging/shared"
	"lodging/shared/constant"
	"lodging/shared/failure"
	gModel "lodging/shared/model"
	"lodging/shared/timezone"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CheckInRequest is the check-in form as submitted; numbers stay text until converted.
type CheckInRequest struct {
	FullName         string `json:"full_name"          validate:"required,max=255"`
	FatherSpouseName string `json:"father_spouse_name" validate:"omitempty,max=255"`
	Age              string `json:"age"                validate:"omitempty,intrange=1 120"`
	Work             string `json:"work"               validate:"omitempty,max=255"`
	Address          string `json:"address"            validate:"required,max=500"`
	Gender           string `json:"gender"             validate:"omitempty,max=20"`
	MaleCount        string `json:"male_count"         validate:"omitempty,intrange=0 50"`
	FemaleCount      string `json:"female_count"       validate:"omitempty,intrange=0 50"`
	ChildrenCount    string `json:"children_count"     validate:"omitempty,intrange=0 20"`
	IdentityNumber   string `json:"identity_number"    validate:"required,digits=12"`
	MobileNumber     string `json:"mobile_number"      validate:"required,digits=10"`
	AlternateMobile  string `json:"alternate_mobile"   validate:"omitempty,digits=10"`
	RoomNumber       string `json:"room_number"        validate:"omitempty,number"`
	CheckInDate      string `json:"check_in_date"      validate:"omitempty,datetime=2006-01-02"`
	CheckOutDate     string `json:"check_out_date"     validate:"omitempty,datetime=2006-01-02"`
	CheckOutTime     string `json:"check_out_time"     validate:"omitempty,datetime=15:04"`
	ExtraBed         bool   `json:"extra_bed"`
	AmountPaidToday  string `json:"amount_paid_today"  validate:"omitempty,money"`
	RemainingAmount  string `json:"remaining_amount"   validate:"omitempty,money"`
	PaymentMode      string `json:"payment_mode"       validate:"omitempty,oneof=Cash Cheque Online Card"`
	Comments         string `json:"comments"           validate:"omitempty,max=1000"`
}

// FromForm reads an urlencoded or multipart form.
func (c *CheckInRequest) FromForm(r *http.Request) error {
	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return failure.BadRequestFromString("failed to parse form") //nolint:wrapcheck
	}

	value := func(key string) string {
		return strings.TrimSpace(r.PostFormValue(key))
	}

	c.FullName = value("full_name")
	c.FatherSpouseName = value("father_spouse_name")
	c.Age = value("age")
	c.Work = value("work")
	c.Address = value("address")
	c.Gender = value("gender")
	c.MaleCount = value("male_count")
	c.FemaleCount = value("female_count")
	c.ChildrenCount = value("children_count")
	c.IdentityNumber = value("identity_number")
	c.MobileNumber = value("mobile_number")
	c.AlternateMobile = value("alternate_mobile")
	c.RoomNumber = value("room_number")
	c.CheckInDate = value("check_in_date")
	c.CheckOutDate = value("check_out_date")
	c.CheckOutTime = value("check_out_time")
	c.AmountPaidToday = value("amount_paid_today")
	c.RemainingAmount = value("remaining_amount")
	c.PaymentMode = value("payment_mode")
	c.Comments = value("comments")

	switch extraBed := strings.ToLower(value("extra_bed")); extraBed {
	case "on", "yes":
		c.ExtraBed = true
	default:
		if parsed := shared.ConvertStringToBool(extraBed); parsed != nil {
			c.ExtraBed = *parsed
		}
	}

	return nil
}

// Normalize trims the free text fields.
func (c *CheckInRequest) Normalize() {
	c.FullName = strings.TrimSpace(c.FullName)
	c.FatherSpouseName = strings.TrimSpace(c.FatherSpouseName)
	c.Address = strings.TrimSpace(c.Address)
	c.IdentityNumber = strings.TrimSpace(c.IdentityNumber)
	c.MobileNumber = strings.TrimSpace(c.MobileNumber)
	c.AlternateMobile = strings.TrimSpace(c.AlternateMobile)
	c.RoomNumber = strings.TrimSpace(c.RoomNumber)
	c.Comments = strings.TrimSpace(c.Comments)
}

// CrossFieldMessages reports the rules that span more than one field.
func (c *CheckInRequest) CrossFieldMessages() []string {
	if c.CheckInDate == "" || c.CheckOutDate == "" {
		return nil
	}

	// Both are validated ISO dates, so they order lexically.
	if c.CheckOutDate < c.CheckInDate {
		return []string{"check_out_date must not be before check_in_date"}
	}

	return nil
}

func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}

func count(field, value string) (int, error) {
	if value == "" {
		return 0, nil
	}

	return shared.ConvertStringToInt(field, value) //nolint:wrapcheck
}

func amount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, failure.Conversion(field + " must be a valid amount") //nolint:wrapcheck
	}

	return parsed, nil
}

// RequestedRoom returns the room asked for, or zero when the lowest free room should be assigned.
func (c *CheckInRequest) RequestedRoom() (int, error) {
	return count("room_number", c.RoomNumber)
}

// ToModel converts the request into a completed check-in; the room and receipt are assigned later.
func (c *CheckInRequest) ToModel(now time.Time, actor string) (model.Guest, error) {
	guest := model.Guest{
		FullName:         c.FullName,
		FatherSpouseName: optional(c.FatherSpouseName),
		Work:             optional(c.Work),
		Address:          c.Address,
		Gender:           optional(c.Gender),
		IdentityNumber:   c.IdentityNumber,
		MobileNumber:     c.MobileNumber,
		AlternateMobile:  optional(c.AlternateMobile),
		CheckInDone:      true,
		CheckOutTime:     optional(c.CheckOutTime),
		ExtraBed:         c.ExtraBed,
		PaymentMode:      c.PaymentMode,
		Comments:         optional(c.Comments),
		Metadata:         gModel.NewMetadata(actor, now),
	}

	if guest.PaymentMode == "" {
		guest.PaymentMode = model.DefaultPaymentMode
	}

	var err error

	if c.Age != "" {
		age, err := shared.ConvertStringToInt("age", c.Age)
		if err != nil {
			return guest, err //nolint:wrapcheck
		}

		guest.Age = &age
	}

	if guest.MaleCount, err = count("male_count", c.MaleCount); err != nil {
		return guest, err
	}

	if guest.FemaleCount, err = count("female_count", c.FemaleCount); err != nil {
		return guest, err
	}

	if guest.ChildrenCount, err = count("children_count", c.ChildrenCount); err != nil {
		return guest, err
	}

	if guest.AmountPaidToday, err = amount("amount_paid_today", c.AmountPaidToday); err != nil {
		return guest, err
	}

	if guest.RemainingAmount, err = amount("remaining_amount", c.RemainingAmount); err != nil {
		return guest, err
	}

	guest.CheckInDate = timezone.StartOfDay(now)

	if c.CheckInDate != "" {
		if guest.CheckInDate, err = timezone.ParseDate(c.CheckInDate); err != nil {
			return guest, failure.Conversion("check_in_date must be a date in the format 2006-01-02") //nolint:wrapcheck
		}
	}

	if c.CheckOutDate != "" {
		checkOut, err := timezone.ParseDate(c.CheckOutDate)
		if err != nil {
			return guest, failure.Conversion("check_out_date must be a date in the format 2006-01-02") //nolint:wrapcheck
		}

		guest.CheckOutDate = &checkOut
	}

	return guest, nil
}

type CheckInResponse struct {
	Guest         guestDto.GuestDetail `json:"guest"`
	RoomNumber    int                  `json:"room_number"`
	ReceiptNumber string               `json:"receipt_number"`
	DownloadPath  string               `json:"download_path"`
}
