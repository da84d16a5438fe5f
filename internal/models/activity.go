package models

import "time"

// ActivityLog is one entry of the append-only audit trail.
type ActivityLog struct {
	ID        string    `json:"id"`
	Action    string    `json:"action"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details"`
}
