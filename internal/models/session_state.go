package models

// TimerState is the state of a session countdown
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerActive
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerActive:
		return "active"
	case TimerExpired:
		return "expired"
	default:
		return "idle"
	}
}

// SortOrder selects how movements are listed
type SortOrder string

const (
	SortNone       SortOrder = ""
	SortAscending  SortOrder = "asc"
	SortDescending SortOrder = "desc"
)

// IsValidSortOrder checks if the sort order is valid
func IsValidSortOrder(order string) bool {
	switch SortOrder(order) {
	case SortNone, SortAscending, SortDescending:
		return true
	default:
		return false
	}
}
