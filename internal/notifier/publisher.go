package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"elevate/internal/metrics"
)

type Publisher interface {
	Publish(ctx context.Context, id string, body []byte) error
}

// Publish returns a HandleFunc that forwards notifications to a message queue
// instead of delivering them in process.
func Publish(pub Publisher, m *metrics.Metrics) HandleFunc {
	return func(ctx context.Context, n Notification) error {
		const op = "notifier.Publish"

		body, err := json.Marshal(n)
		if err != nil {
			m.Notification(string(n.Kind), metrics.ResultFailed)
			return fmt.Errorf("%s: %w", op, err)
		}

		if err = pub.Publish(ctx, n.ID.String(), body); err != nil {
			m.Notification(string(n.Kind), metrics.ResultFailed)
			return fmt.Errorf("%s: %w", op, err)
		}

		m.Notification(string(n.Kind), metrics.ResultQueued)

		return nil
	}
}
