// Package rabbit is a thin RabbitMQ client bound to a single durable queue.
package rabbit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"elevate/internal/lib/logger/sl"
)

type Client struct {
	log     *slog.Logger
	conn    *amqp.Connection
	pubMu   sync.Mutex
	publish *amqp.Channel
	consume *amqp.Channel
	queue   string
}

func New(log *slog.Logger, url, queue string) (*Client, error) {
	const op = "rabbit.New"

	log = log.With(slog.String("op", op), slog.String("queue", queue))

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to connect to RabbitMQ: %w", op, err)
	}

	pub, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: failed to open publish channel: %w", op, err)
	}

	sub, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: failed to open consume channel: %w", op, err)
	}

	if _, err = pub.QueueDeclare(
		queue,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: failed to declare queue: %w", op, err)
	}

	if err = sub.Qos(1, 0, false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: failed to set qos: %w", op, err)
	}

	log.Info("RabbitMQ initialized")

	return &Client{
		log:     log,
		conn:    conn,
		publish: pub,
		consume: sub,
		queue:   queue,
	}, nil
}

func (c *Client) Close() {
	if c.consume != nil {
		_ = c.consume.Close()
	}
	if c.publish != nil {
		_ = c.publish.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
	c.log.Info("RabbitMQ connection closed")
}

// Publish stores body on the queue as a persistent JSON message.
func (c *Client) Publish(ctx context.Context, id string, body []byte) error {
	const op = "rabbit.Client.Publish"

	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	err := c.publish.PublishWithContext(ctx,
		"",
		c.queue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    id,
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Handler processes one delivery. A nil error acks it. Errors marked with
// Permanent are dropped, anything else is requeued once.
type Handler func(ctx context.Context, body []byte) error

// Consume delivers messages to handler until ctx is done. It returns once the
// consumer is registered; the returned channel closes after the last delivery.
func (c *Client) Consume(ctx context.Context, handler Handler) (<-chan struct{}, error) {
	const op = "rabbit.Client.Consume"

	msgs, err := c.consume.ConsumeWithContext(ctx,
		c.queue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to start consuming messages: %w", op, err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		for d := range msgs {
			c.handle(ctx, d, handler)
		}
	}()

	c.log.Info("started consuming")

	return done, nil
}

func (c *Client) handle(ctx context.Context, d amqp.Delivery, handler Handler) {
	err := handler(ctx, d.Body)
	if err == nil {
		_ = d.Ack(false)
		return
	}

	requeue := !IsPermanent(err) && !d.Redelivered
	c.log.Warn("failed to process message",
		slog.String("message_id", d.MessageId),
		slog.Bool("requeue", requeue),
		sl.Err(err),
	)
	_ = d.Nack(false, requeue)
}
