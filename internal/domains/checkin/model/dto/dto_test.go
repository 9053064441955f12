package dto_test

import (
	"lodging/internal/domains/checkin/model/dto"
	"lodging/internal/domains/guest/model"
	"lodging/shared/failure"
	"lodging/shared/validator"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() dto.CheckInRequest {
	return dto.CheckInRequest{
		FullName:        "Shiv Kumar",
		Address:         "Haridwar",
		Age:             "34",
		MaleCount:       "2",
		FemaleCount:     "1",
		IdentityNumber:  "123456789012",
		MobileNumber:    "9876543210",
		AmountPaidToday: "1500.50",
		RemainingAmount: "0",
		PaymentMode:     "Online",
	}
}

func TestCheckInRequest_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *dto.CheckInRequest)
		wantMsg string
	}{
		{name: "12 digit identity", mutate: func(r *dto.CheckInRequest) { r.IdentityNumber = "123456789012" }},
		{name: "11 digit identity", mutate: func(r *dto.CheckInRequest) { r.IdentityNumber = "12345678901" }, wantMsg: "identity_number must be exactly 12 digits"},
		{name: "13 digit identity", mutate: func(r *dto.CheckInRequest) { r.IdentityNumber = "1234567890123" }, wantMsg: "identity_number must be exactly 12 digits"},
		{name: "10 digit mobile", mutate: func(r *dto.CheckInRequest) { r.MobileNumber = "9876543210" }},
		{name: "9 digit mobile", mutate: func(r *dto.CheckInRequest) { r.MobileNumber = "987654321" }, wantMsg: "mobile_number must be exactly 10 digits"},
		{name: "11 digit mobile", mutate: func(r *dto.CheckInRequest) { r.MobileNumber = "98765432101" }, wantMsg: "mobile_number must be exactly 10 digits"},
		{name: "age 1", mutate: func(r *dto.CheckInRequest) { r.Age = "1" }},
		{name: "age 120", mutate: func(r *dto.CheckInRequest) { r.Age = "120" }},
		{name: "age 0", mutate: func(r *dto.CheckInRequest) { r.Age = "0" }, wantMsg: "age must be a whole number between 1 and 120"},
		{name: "age 121", mutate: func(r *dto.CheckInRequest) { r.Age = "121" }, wantMsg: "age must be a whole number between 1 and 120"},
		{name: "too many children", mutate: func(r *dto.CheckInRequest) { r.ChildrenCount = "21" }, wantMsg: "children_count must be a whole number between 0 and 20"},
		{name: "room not a number", mutate: func(r *dto.CheckInRequest) { r.RoomNumber = "12a" }, wantMsg: "room_number must be a whole number"},
		{name: "alternate mobile", mutate: func(r *dto.CheckInRequest) { r.AlternateMobile = "12345" }, wantMsg: "alternate_mobile must be exactly 10 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			messages := validator.ValidateAll(&req)

			if tt.wantMsg == "" {
				assert.Empty(t, messages)

				return
			}

			assert.Equal(t, []string{tt.wantMsg}, messages)
		})
	}
}

func TestCheckInRequest_CrossFieldMessages(t *testing.T) {
	req := validRequest()
	req.CheckInDate = "2026-10-16"
	req.CheckOutDate = "2026-10-15"

	assert.Equal(t, []string{"check_out_date must not be before check_in_date"}, req.CrossFieldMessages())

	req.CheckOutDate = "2026-10-16"
	assert.Empty(t, req.CrossFieldMessages())
}

func TestCheckInRequest_ToModel(t *testing.T) {
	now := time.Date(2026, 10, 16, 14, 30, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		req := validRequest()
		req.PaymentMode = ""

		guest, err := req.ToModel(now, "admin")
		require.NoError(t, err)

		assert.Equal(t, "2026-10-16", guest.CheckInDate.Format("2006-01-02"))
		assert.Equal(t, model.PaymentModeCash, guest.PaymentMode)
		assert.True(t, guest.CheckInDone)
		assert.Equal(t, 34, *guest.Age)
		assert.Equal(t, 2, guest.MaleCount)
		assert.Equal(t, "1500.5", guest.AmountPaidToday.String())
		assert.Nil(t, guest.FatherSpouseName)
		assert.Nil(t, guest.ReceiptNumber)
		assert.Equal(t, "admin", guest.CreatedBy)
	})

	t.Run("explicit dates", func(t *testing.T) {
		req := validRequest()
		req.CheckInDate = "2026-10-20"
		req.CheckOutDate = "2026-10-22"
		req.CheckOutTime = "11:00"

		guest, err := req.ToModel(now, "admin")
		require.NoError(t, err)

		assert.Equal(t, "2026-10-20", guest.CheckInDate.Format("2006-01-02"))
		require.NotNil(t, guest.CheckOutDate)
		assert.Equal(t, "2026-10-22", guest.CheckOutDate.Format("2006-01-02"))
		assert.Equal(t, "11:00", *guest.CheckOutTime)
	})

	t.Run("malformed amount", func(t *testing.T) {
		req := validRequest()
		req.AmountPaidToday = "1,500"

		_, err := req.ToModel(now, "admin")
		assert.True(t, failure.Is(err, failure.CategoryConversion))
	})
}

func TestCheckInRequest_RequestedRoom(t *testing.T) {
	req := validRequest()

	room, err := req.RequestedRoom()
	require.NoError(t, err)
	assert.Zero(t, room)

	req.RoomNumber = "42"
	room, err = req.RequestedRoom()
	require.NoError(t, err)
	assert.Equal(t, 42, room)
}

func TestCheckInRequest_FromForm(t *testing.T) {
	form := url.Values{
		"full_name":       {"  Asha Devi "},
		"address":         {"Rishikesh"},
		"identity_number": {"123456789012"},
		"mobile_number":   {"9876543210"},
		"room_number":     {"7"},
		"extra_bed":       {"on"},
	}

	r := httptest.NewRequest("POST", "/v1/checkins", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var req dto.CheckInRequest
	require.NoError(t, req.FromForm(r))

	assert.Equal(t, "Asha Devi", req.FullName)
	assert.Equal(t, "7", req.RoomNumber)
	assert.True(t, req.ExtraBed)
	assert.Empty(t, validator.ValidateAll(&req))
}
