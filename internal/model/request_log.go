package model

import "time"

// RequestLog is one audit line per inbound HTTP request.
// Rows are append-only; write failures are swallowed by the audit worker.
type RequestLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Method      string    `json:"method" gorm:"size:10;not null"`
	Path        string    `json:"path" gorm:"size:512;not null"`
	RequestedAt time.Time `json:"requested_at" gorm:"not null;index"`
}
