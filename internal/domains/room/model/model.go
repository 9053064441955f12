package model

const (
	EntityName = "room"

	StatusOccupied  = "occupied"
	StatusAvailable = "available"

	// FirstRoom is the lowest room number; rooms are numbered contiguously up to the configured total.
	FirstRoom = 1

	RecentCheckInLimit = 10
)
