package domain

import "time"

type ElectionStatus string

const (
	ElectionPending   ElectionStatus = "pending"
	ElectionActive    ElectionStatus = "active"
	ElectionCompleted ElectionStatus = "completed"
)

func (s ElectionStatus) IsValid() bool {
	switch s {
	case ElectionPending, ElectionActive, ElectionCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether an election may move from s to next.
func (s ElectionStatus) CanTransitionTo(next ElectionStatus) bool {
	switch s {
	case ElectionPending:
		return next == ElectionActive || next == ElectionCompleted
	case ElectionActive:
		return next == ElectionCompleted
	}
	return false
}

type Election struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Status    ElectionStatus `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
}

func (e Election) AcceptsVotes() bool {
	return e.Status == ElectionActive
}
