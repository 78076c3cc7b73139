package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"elevate/internal/models"
)

type attendeeDocument struct {
	Name         string    `bson:"name"`
	Email        string    `bson:"email,omitempty"`
	RegisteredAt time.Time `bson:"registeredAt"`
}

type organizerDocument struct {
	Name  string `bson:"name,omitempty"`
	Email string `bson:"email,omitempty"`
	Phone string `bson:"phone,omitempty"`
}

type eventDocument struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty"`
	Title                string             `bson:"title"`
	Description          string             `bson:"description"`
	Date                 time.Time          `bson:"date"`
	Time                 string             `bson:"time"`
	Location             string             `bson:"location"`
	Image                string             `bson:"image"`
	Category             string             `bson:"category"`
	Tags                 []string           `bson:"tags"`
	MaxAttendees         *int               `bson:"maxAttendees,omitempty"`
	RegisteredAttendees  []attendeeDocument `bson:"registeredAttendees"`
	IsActive             bool               `bson:"isActive"`
	IsFeatured           bool               `bson:"isFeatured"`
	RegistrationDeadline *time.Time         `bson:"registrationDeadline,omitempty"`
	Organizer            organizerDocument  `bson:"organizer"`
	CreatedAt            time.Time          `bson:"createdAt"`
	UpdatedAt            time.Time          `bson:"updatedAt"`
}

type memberDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Name       string             `bson:"name"`
	Email      string             `bson:"email"`
	Year       string             `bson:"year"`
	Interests  []string           `bson:"interests"`
	Experience string             `bson:"experience"`
	Motivation string             `bson:"motivation"`
	Phone      string             `bson:"phone,omitempty"`
	GitHub     string             `bson:"github,omitempty"`
	LinkedIn   string             `bson:"linkedin,omitempty"`
	Status     string             `bson:"status"`
	JoinedAt   time.Time          `bson:"joinedAt"`
	LastActive time.Time          `bson:"lastActive"`
	CreatedAt  time.Time          `bson:"createdAt"`
	UpdatedAt  time.Time          `bson:"updatedAt"`
}

type preferencesDocument struct {
	Events    bool `bson:"events"`
	Projects  bool `bson:"projects"`
	Workshops bool `bson:"workshops"`
	General   bool `bson:"general"`
}

type subscriberDocument struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty"`
	Email          string              `bson:"email"`
	Name           string              `bson:"name,omitempty"`
	IsActive       bool                `bson:"isActive"`
	Source         string              `bson:"source"`
	Preferences    preferencesDocument `bson:"preferences"`
	SubscribedAt   time.Time           `bson:"subscribedAt"`
	UnsubscribedAt *time.Time          `bson:"unsubscribedAt,omitempty"`
	LastEmailSent  *time.Time          `bson:"lastEmailSent,omitempty"`
	CreatedAt      time.Time           `bson:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt"`
}

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	Type      string             `bson:"type"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type groupDocument struct {
	Key   string `bson:"_id"`
	Count int64  `bson:"count"`
}

func toEvent(d eventDocument) models.Event {
	e := models.Event{
		ID:                   d.ID.Hex(),
		Title:                d.Title,
		Description:          d.Description,
		Date:                 d.Date,
		Time:                 d.Time,
		Location:             d.Location,
		Image:                d.Image,
		Category:             models.Category(d.Category),
		Tags:                 d.Tags,
		MaxAttendees:         d.MaxAttendees,
		IsActive:             d.IsActive,
		IsFeatured:           d.IsFeatured,
		RegistrationDeadline: d.RegistrationDeadline,
		Organizer: models.Organizer{
			Name:  d.Organizer.Name,
			Email: d.Organizer.Email,
			Phone: d.Organizer.Phone,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}

	e.RegisteredAttendees = make([]models.Attendee, 0, len(d.RegisteredAttendees))
	for _, a := range d.RegisteredAttendees {
		e.RegisteredAttendees = append(e.RegisteredAttendees, models.Attendee{
			Name:         a.Name,
			Email:        a.Email,
			RegisteredAt: a.RegisteredAt,
		})
	}

	return e
}

func fromEvent(e models.Event) eventDocument {
	d := eventDocument{
		Title:                e.Title,
		Description:          e.Description,
		Date:                 e.Date,
		Time:                 e.Time,
		Location:             e.Location,
		Image:                e.Image,
		Category:             string(e.Category),
		Tags:                 e.Tags,
		MaxAttendees:         e.MaxAttendees,
		IsActive:             e.IsActive,
		IsFeatured:           e.IsFeatured,
		RegistrationDeadline: e.RegistrationDeadline,
		Organizer: organizerDocument{
			Name:  e.Organizer.Name,
			Email: e.Organizer.Email,
			Phone: e.Organizer.Phone,
		},
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}

	if d.Tags == nil {
		d.Tags = []string{}
	}

	d.RegisteredAttendees = make([]attendeeDocument, 0, len(e.RegisteredAttendees))
	for _, a := range e.RegisteredAttendees {
		d.RegisteredAttendees = append(d.RegisteredAttendees, fromAttendee(a))
	}

	return d
}

func fromAttendee(a models.Attendee) attendeeDocument {
	return attendeeDocument{
		Name:         a.Name,
		Email:        models.NormalizeEmail(a.Email),
		RegisteredAt: a.RegisteredAt,
	}
}

func toMember(d memberDocument) models.Member {
	return models.Member{
		ID:         d.ID.Hex(),
		Name:       d.Name,
		Email:      d.Email,
		Year:       d.Year,
		Interests:  d.Interests,
		Experience: d.Experience,
		Motivation: d.Motivation,
		Phone:      d.Phone,
		GitHub:     d.GitHub,
		LinkedIn:   d.LinkedIn,
		Status:     d.Status,
		JoinedAt:   d.JoinedAt,
		LastActive: d.LastActive,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
}

func fromMember(m models.Member) memberDocument {
	return memberDocument{
		Name:       m.Name,
		Email:      models.NormalizeEmail(m.Email),
		Year:       m.Year,
		Interests:  m.Interests,
		Experience: m.Experience,
		Motivation: m.Motivation,
		Phone:      m.Phone,
		GitHub:     m.GitHub,
		LinkedIn:   m.LinkedIn,
		Status:     m.Status,
		JoinedAt:   m.JoinedAt,
		LastActive: m.LastActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func fromSubscriber(s models.Subscriber) subscriberDocument {
	return subscriberDocument{
		Email:    models.NormalizeEmail(s.Email),
		Name:     s.Name,
		IsActive: s.IsActive,
		Source:   s.Source,
		Preferences: preferencesDocument{
			Events:    s.Preferences.Events,
			Projects:  s.Preferences.Projects,
			Workshops: s.Preferences.Workshops,
			General:   s.Preferences.General,
		},
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
		LastEmailSent:  s.LastEmailSent,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}

func fromContact(c models.Contact) contactDocument {
	return contactDocument{
		Name:      c.Name,
		Email:     c.Email,
		Subject:   c.Subject,
		Message:   c.Message,
		Type:      c.Type,
		Status:    c.Status,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
