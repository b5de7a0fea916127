package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation marks input rejected before any storage access.
var ErrValidation = errors.New("validation failed")

// Session is one logged unit of study. The JSON shape is the on-disk format.
type Session struct {
	Date    Date   `json:"date"`
	Minutes int    `json:"minutes"`
	Topic   string `json:"topic"`
}

// NewSession builds a session attributed to the local calendar date of now.
func NewSession(minutes int, topic string, now time.Time) (Session, error) {
	if err := ValidateMinutes(minutes); err != nil {
		return Session{}, err
	}
	return Session{Date: DateOf(now), Minutes: minutes, Topic: topic}, nil
}

// ValidateMinutes rejects non-positive durations.
func ValidateMinutes(minutes int) error {
	if minutes <= 0 {
		return fmt.Errorf("%w: minutes must be positive, got %d", ErrValidation, minutes)
	}
	return nil
}
