package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"elevate/internal/config"
	"elevate/internal/lib/logger/sl"
	"elevate/internal/metrics"
)

// HandleFunc performs the actual work for a notification.
type HandleFunc func(ctx context.Context, n Notification) error

// Dispatcher buffers notifications and hands them to a pool of workers, so that
// Notify never waits on a mail server or a broker.
type Dispatcher struct {
	log     *slog.Logger
	handle  HandleFunc
	metrics *metrics.Metrics
	workers int
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Notification
	wg     sync.WaitGroup
}

func NewDispatcher(log *slog.Logger, handle HandleFunc, cfg config.Notifier, m *metrics.Metrics) *Dispatcher {
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	buffer := cfg.Buffer
	if buffer < 0 {
		buffer = 0
	}

	return &Dispatcher{
		log:     log.With(slog.String("component", "notifier")),
		handle:  handle,
		metrics: m,
		workers: workers,
		timeout: cfg.SendTimeout,
		queue:   make(chan Notification, buffer),
	}
}

func (d *Dispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.work()
	}
}

// Notify enqueues n. When the buffer is full or the dispatcher is stopped the
// notification is dropped and logged.
func (d *Dispatcher) Notify(n Notification) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(n, "dispatcher stopped")
		return
	}

	select {
	case d.queue <- n:
	default:
		d.drop(n, "queue is full")
	}
}

func (d *Dispatcher) drop(n Notification, reason string) {
	d.metrics.Notification(string(n.Kind), metrics.ResultDropped)
	d.log.Warn("notification dropped",
		slog.String("id", n.ID.String()),
		slog.String("kind", string(n.Kind)),
		slog.String("reason", reason),
	)
}

// Stop refuses new notifications and waits until the queued ones are handled or ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) work() {
	defer d.wg.Done()

	for n := range d.queue {
		d.process(n)
	}
}

func (d *Dispatcher) process(n Notification) {
	ctx := context.Background()
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	log := d.log.With(
		slog.String("id", n.ID.String()),
		slog.String("kind", string(n.Kind)),
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error("notification handler panicked", slog.Any("panic", r))
		}
	}()

	if err := d.handle(ctx, n); err != nil {
		log.Error("failed to handle notification", sl.Err(err))
		return
	}

	log.Debug("notification handled")
}
