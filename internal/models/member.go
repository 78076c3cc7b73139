package models

import "time"

const (
	MemberStatusPending  = "pending"
	MemberStatusApproved = "approved"
	MemberStatusRejected = "rejected"
)

const (
	ExperienceBeginner     = "beginner"
	ExperienceIntermediate = "intermediate"
	ExperienceAdvanced     = "advanced"
	ExperienceExpert       = "expert"
)

var (
	AcademicYears = []string{"1st", "2nd", "3rd", "4th", "graduate"}

	Interests = []string{
		"Web Development",
		"Mobile Development",
		"AI/Machine Learning",
		"Data Science",
		"Blockchain",
		"IoT",
		"Cybersecurity",
		"Game Development",
		"DevOps",
		"UI/UX Design",
	}
)

type Member struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Year       string    `json:"year"`
	Interests  []string  `json:"interests"`
	Experience string    `json:"experience"`
	Motivation string    `json:"motivation"`
	Phone      string    `json:"phone,omitempty"`
	GitHub     string    `json:"github,omitempty"`
	LinkedIn   string    `json:"linkedin,omitempty"`
	Status     string    `json:"status"`
	JoinedAt   time.Time `json:"joinedAt"`
	LastActive time.Time `json:"lastActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
