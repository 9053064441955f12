package model

import (
	"lodging/infras/kafka"
	"strconv"
	"time"
)

const (
	EventCheckedIn     = "guest.checked_in"
	EventUpdated       = "guest.updated"
	EventDeleted       = "guest.deleted"
	EventReceiptIssued = "receipt.issued"
)

// Event is published after a guest record changes.
type Event struct {
	Type          string    `json:"type"`
	GuestID       int64     `json:"guest_id"`
	RoomNumber    int       `json:"room_number,omitempty"`
	CheckInDate   string    `json:"check_in_date,omitempty"`
	ReceiptNumber string    `json:"receipt_number,omitempty"`
	Actor         string    `json:"actor,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, guest Guest, actor string, at time.Time) Event {
	return Event{
		Type:          eventType,
		GuestID:       guest.ID,
		RoomNumber:    guest.RoomNumber,
		CheckInDate:   guest.CheckInDate.Format(time.DateOnly),
		ReceiptNumber: guest.Receipt(),
		Actor:         actor,
		OccurredAt:    at,
	}
}

// ToMessage keys the message by guest so one guest's events stay ordered on a partition.
func (e Event) ToMessage() kafka.Message {
	return kafka.Message{
		Key:   strconv.FormatInt(e.GuestID, 10),
		Value: e,
	}
}
