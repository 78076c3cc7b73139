package models

import "time"

const (
	SourceWebsite  = "website"
	SourceEvent    = "event"
	SourceReferral = "referral"
	SourceSocial   = "social"
)

type Preferences struct {
	Events    bool `json:"events"`
	Projects  bool `json:"projects"`
	Workshops bool `json:"workshops"`
	General   bool `json:"general"`
}

func DefaultPreferences() Preferences {
	return Preferences{Events: true, Projects: true, Workshops: true, General: true}
}

type Subscriber struct {
	ID             string      `json:"id"`
	Email          string      `json:"email"`
	Name           string      `json:"name,omitempty"`
	IsActive       bool        `json:"isActive"`
	Source         string      `json:"source"`
	Preferences    Preferences `json:"preferences"`
	SubscribedAt   time.Time   `json:"subscribedAt"`
	UnsubscribedAt *time.Time  `json:"unsubscribedAt,omitempty"`
	LastEmailSent  *time.Time  `json:"lastEmailSent,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// Reactivate moves an inactive subscriber back to active. An empty name keeps the stored one.
func (s *Subscriber) Reactivate(name string, now time.Time) {
	s.IsActive = true
	s.UnsubscribedAt = nil
	s.SubscribedAt = now
	s.UpdatedAt = now
	if name != "" {
		s.Name = name
	}
}

func (s *Subscriber) Deactivate(now time.Time) {
	s.IsActive = false
	s.UnsubscribedAt = &now
	s.UpdatedAt = now
}

type SubscribeOutcome int

const (
	Subscribed SubscribeOutcome = iota
	Resubscribed
)

type UnsubscribeOutcome int

const (
	Unsubscribed UnsubscribeOutcome = iota
	AlreadyUnsubscribed
)
