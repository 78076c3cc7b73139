package storage

import (
	"time"

	"elevate/internal/models"
)

// CheckRegistration reports the first precondition that keeps email from joining
// event at now, in the order: missing event, closed window, duplicate email, full roster.
func CheckRegistration(event *models.Event, email string, now time.Time) error {
	switch {
	case event == nil:
		return ErrEventNotFound
	case !event.IsRegistrationOpen(now):
		return ErrRegistrationClosed
	case event.HasAttendee(email):
		return ErrAlreadyRegistered
	case event.IsFull():
		return ErrEventFull
	}

	return nil
}
