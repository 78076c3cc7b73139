package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"elevate/internal/mailer"
	"elevate/internal/metrics"
	"elevate/internal/rabbit"
)

// Deliverer renders notifications into emails and sends them.
type Deliverer struct {
	sender  mailer.Sender
	admin   string
	metrics *metrics.Metrics
}

func NewDeliverer(sender mailer.Sender, admin string, m *metrics.Metrics) *Deliverer {
	return &Deliverer{sender: sender, admin: admin, metrics: m}
}

func (d *Deliverer) Deliver(ctx context.Context, n Notification) error {
	const op = "notifier.Deliverer.Deliver"

	msg, err := d.render(n)
	if err != nil {
		d.metrics.Notification(string(n.Kind), metrics.ResultFailed)
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = d.sender.Send(ctx, msg); err != nil {
		d.metrics.Notification(string(n.Kind), metrics.ResultFailed)
		return fmt.Errorf("%s: %w", op, err)
	}

	d.metrics.Notification(string(n.Kind), metrics.ResultSent)

	return nil
}

func (d *Deliverer) render(n Notification) (mailer.Message, error) {
	switch n.Kind {
	case KindWelcome:
		return mailer.Welcome(n.To, n.Name)
	case KindContact:
		if n.Contact == nil {
			return mailer.Message{}, fmt.Errorf("contact notification %s has no contact", n.ID)
		}
		c := n.Contact
		return mailer.ContactNotice(d.admin, mailer.ContactDetails{
			ID:       c.ID,
			Name:     c.Name,
			Email:    c.Email,
			Type:     c.Type,
			Subject:  c.Subject,
			Message:  c.Message,
			Received: c.CreatedAt,
		})
	default:
		return mailer.Message{}, fmt.Errorf("unknown notification kind %q", n.Kind)
	}
}

// HandleMessage decodes a queued notification and delivers it. Bodies that do not
// decode are reported as permanent failures.
func (d *Deliverer) HandleMessage(ctx context.Context, body []byte) error {
	var n Notification
	if err := json.Unmarshal(body, &n); err != nil {
		return rabbit.Permanent(fmt.Errorf("decode notification: %w", err))
	}

	return d.Deliver(ctx, n)
}
