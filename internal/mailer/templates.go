package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"
)

const (
	welcomeSubject       = "🎉 Welcome to Elevate Dev Club!"
	contactSubjectPrefix = "🔔 New Contact Form Submission: "
)

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h1>🚀 Welcome to Elevate!</h1>
  <p>Elevate Ideas. Empower Innovation.</p>
  <h2>Hi {{.Name}}! 👋</h2>
  <p>Thank you for joining the Elevate Dev Club! We're thrilled to have you as part of our innovative community of developers, creators, and problem-solvers.</p>
  <h3>What's Next?</h3>
  <ul>
    <li>🎯 Join our Discord server for real-time discussions</li>
    <li>📅 Check out our upcoming events and workshops</li>
    <li>💻 Explore our project gallery and contribute</li>
    <li>🤝 Connect with fellow developers and mentors</li>
    <li>🏆 Participate in hackathons and competitions</li>
  </ul>
  <p><a href="https://discord.gg/elevate">Join Discord Community</a></p>
  <p>Happy Coding! 💻✨<br>The Elevate Team</p>
</div>`))

var contactTmpl = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>New Contact Form Submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> {{.Email}}</p>
  <p><strong>Type:</strong> {{.Type}}</p>
  <p><strong>Subject:</strong> {{.Subject}}</p>
  <p><strong>Message:</strong></p>
  <div>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</div>
  <p><strong>Submission Details:</strong><br>ID: {{.ID}}<br>Received: {{.Received}}</p>
</div>`))

// Welcome renders the greeting sent to a new member.
func Welcome(to, name string) (Message, error) {
	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, struct{ Name string }{Name: name}); err != nil {
		return Message{}, fmt.Errorf("render welcome email: %w", err)
	}

	return Message{To: to, Subject: welcomeSubject, HTML: body.String()}, nil
}

type ContactDetails struct {
	ID       string
	Name     string
	Email    string
	Type     string
	Subject  string
	Message  string
	Received time.Time
}

// ContactNotice renders the admin notification for a contact form submission.
func ContactNotice(to string, c ContactDetails) (Message, error) {
	data := struct {
		ContactDetails
		Lines    []string
		Received string
	}{
		ContactDetails: c,
		Lines:          strings.Split(c.Message, "\n"),
		Received:       c.Received.Format(time.RFC1123),
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return Message{}, fmt.Errorf("render contact email: %w", err)
	}

	return Message{To: to, Subject: contactSubjectPrefix + c.Subject, HTML: body.String()}, nil
}
