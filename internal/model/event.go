package model

import "time"

const (
	EventBorrowed = "borrowed"
	EventReturned = "returned"
)

// BorrowingEvent is the lifecycle message published to Kafka when a loan
// is opened or closed.
type BorrowingEvent struct {
	EventID       string    `json:"event_id"`
	Action        string    `json:"action"`
	BorrowingID   int       `json:"borrowing_id"`
	CopyID        int       `json:"copy_id"`
	PublicationID int       `json:"publication_id,omitempty"`
	LabID         int       `json:"lab_id,omitempty"`
	Email         string    `json:"email"`
	At            time.Time `json:"at"`
}
