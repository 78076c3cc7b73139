// Package notifier moves notifications off the request path and delivers them by email.
package notifier

import (
	"time"

	"github.com/google/uuid"

	"elevate/internal/models"
)

type Kind string

const (
	KindWelcome Kind = "welcome"
	KindContact Kind = "contact"
)

// Notification is a unit of asynchronous work. It is JSON encoded when queued.
type Notification struct {
	ID        uuid.UUID       `json:"id"`
	Kind      Kind            `json:"kind"`
	To        string          `json:"to,omitempty"`
	Name      string          `json:"name,omitempty"`
	Contact   *models.Contact `json:"contact,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Welcome greets a newly joined member.
func Welcome(member models.Member, now time.Time) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      KindWelcome,
		To:        member.Email,
		Name:      member.Name,
		CreatedAt: now,
	}
}

// ContactReceived tells the admins about a contact form submission.
func ContactReceived(contact models.Contact, now time.Time) Notification {
	return Notification{
		ID:        uuid.New(),
		Kind:      KindContact,
		Name:      contact.Name,
		Contact:   &contact,
		CreatedAt: now,
	}
}
