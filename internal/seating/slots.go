package seating

import (
	"math"
	"sort"
)

const maxColumnsPerRow = 10

// ColumnsPerRow returns the row width used for a classroom of the given capacity.
func ColumnsPerRow(capacity int) int {
	if capacity <= 0 {
		return 0
	}
	cols := int(math.Ceil(math.Sqrt(float64(capacity * 2))))
	if cols > maxColumnsPerRow {
		cols = maxColumnsPerRow
	}
	return cols
}

// RowCount returns how many rows a classroom of the given capacity spans.
func RowCount(capacity int) int {
	cols := ColumnsPerRow(capacity)
	if cols == 0 {
		return 0
	}
	return (capacity + cols - 1) / cols
}

// BuildSeatSlots expands classroom capacities into seat slots. Classrooms are
// consumed in the order given and each contributes a contiguous, seat-number
// ordered run of slots.
func BuildSeatSlots(classrooms []ClassroomSeatSource) []SeatSlot {
	total := 0
	for _, room := range classrooms {
		if room.Capacity > 0 {
			total += room.Capacity
		}
	}

	slots := make([]SeatSlot, 0, total)
	for _, room := range classrooms {
		cols := ColumnsPerRow(room.Capacity)
		for seat := 1; seat <= room.Capacity; seat++ {
			slots = append(slots, SeatSlot{
				BlockID:     room.BlockID,
				FloorID:     room.FloorID,
				ClassroomID: room.ClassroomID,
				SeatNumber:  seat,
				Row:         (seat-1)/cols + 1,
				Col:         (seat-1)%cols + 1,
			})
		}
	}
	return slots
}

// SortClassrooms orders classrooms by block name, floor number, classroom name
// and finally classroom id. BuildSeatSlots never reorders its input, so callers
// that want a stable seating layout sort first.
func SortClassrooms(classrooms []ClassroomSeatSource) {
	sort.SliceStable(classrooms, func(i, j int) bool {
		a, b := classrooms[i], classrooms[j]
		if a.BlockName != b.BlockName {
			return a.BlockName < b.BlockName
		}
		if a.FloorNumber != b.FloorNumber {
			return a.FloorNumber < b.FloorNumber
		}
		if a.ClassroomName != b.ClassroomName {
			return a.ClassroomName < b.ClassroomName
		}
		return a.ClassroomID < b.ClassroomID
	})
}
