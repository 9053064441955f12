package dto

import (
	guestDto "lodging/internal/domains/guest/model/dto"
)

// Availability partitions the rooms of one date into available and occupied.
type Availability struct {
	Date           string `json:"date"`
	TotalRooms     int    `json:"total_rooms"`
	Available      []int  `json:"available_rooms"`
	Occupied       []int  `json:"occupied_rooms"`
	AvailableCount int    `json:"available_count"`
	OccupiedCount  int    `json:"occupied_count"`
}

type RoomStatus struct {
	Date  string         `json:"date"`
	Rooms map[int]string `json:"rooms"`
}

type Dashboard struct {
	Date           string                   `json:"date"`
	TotalRooms     int                      `json:"total_rooms"`
	CheckedInToday int                      `json:"checked_in_today"`
	AvailableToday int                      `json:"available_today"`
	Recent         []guestDto.RecentCheckIn `json:"recent_checkins"`
}
