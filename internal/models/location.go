package models

import "time"

// Priority classifies how urgent a rescue request is.
type Priority string

const (
	PriorityHigh Priority = "high"
	PriorityLow  Priority = "low"
)

// RescueLocation is a single rescue request as served by the remote API.
type RescueLocation struct {
	ID        string    `json:"id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Message   string    `json:"message"`
	Address   string    `json:"address"`
	Priority  Priority  `json:"priority"`
	IsNew     bool      `json:"isNew"`
	CreatedAt time.Time `json:"createdAt"`
}

// PriorityFilter selects which locations a view shows.
type PriorityFilter string

const (
	FilterAll  PriorityFilter = "all"
	FilterHigh PriorityFilter = "high"
	FilterLow  PriorityFilter = "low"
)

// ParsePriorityFilter maps user input to a PriorityFilter.
// The second return value is false for anything other than all/high/low.
func ParsePriorityFilter(s string) (PriorityFilter, bool) {
	switch PriorityFilter(s) {
	case FilterAll, FilterHigh, FilterLow:
		return PriorityFilter(s), true
	}
	return "", false
}

// Matches reports whether a location with priority p passes the filter.
func (f PriorityFilter) Matches(p Priority) bool {
	return f == FilterAll || string(f) == string(p)
}
