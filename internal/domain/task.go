package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task recurrence values accepted by the report endpoint.
const (
	FrequencyDaily   = "Daily"
	FrequencyWeekly  = "Weekly"
	FrequencyMonthly = "Monthly"
)

// Task belongs to exactly one user. UserID is always set server-side from the
// authenticated caller on create, never from the request body.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description,omitempty" json:"description"`
	DueDate     time.Time          `bson:"dueDate" json:"dueDate"`
	Frequency   string             `bson:"frequency" json:"frequency"`
	UserID      string             `bson:"userId" json:"userId"`
}

// ValidFrequency reports whether f is one of the fixed recurrence values.
// The match is case-sensitive.
func ValidFrequency(f string) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return true
	}
	return false
}
