package service

import (
	"lodging/internal/domains/room/model"
	"slices"
)

// AvailableSet returns, ascending, every room in 1..total that is not occupied.
func AvailableSet(occupied []int, total int) []int {
	taken := make(map[int]struct{}, len(occupied))
	for _, room := range occupied {
		taken[room] = struct{}{}
	}

	available := make([]int, 0, max(total-len(taken), 0))

	for room := model.FirstRoom; room <= total; room++ {
		if _, ok := taken[room]; !ok {
			available = append(available, room)
		}
	}

	return available
}

// NextAvailable returns the lowest free room, or false when every room is taken.
func NextAvailable(occupied []int, total int) (int, bool) {
	available := AvailableSet(occupied, total)
	if len(available) == 0 {
		return 0, false
	}

	return available[0], true
}

// IsAvailable reports whether room lies in 1..total and is not occupied.
func IsAvailable(room int, occupied []int, total int) bool {
	if room < model.FirstRoom || room > total {
		return false
	}

	return !slices.Contains(occupied, room)
}

// OccupiedSet keeps the occupied rooms inside 1..total, sorted and without duplicates.
func OccupiedSet(occupied []int, total int) []int {
	kept := slices.DeleteFunc(slices.Clone(occupied), func(room int) bool {
		return room < model.FirstRoom || room > total
	})

	slices.Sort(kept)

	return slices.Compact(kept)
}
