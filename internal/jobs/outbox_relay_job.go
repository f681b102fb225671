package jobs

import (
	"context"
	"log/slog"

	"vinylshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize limits how many staged events one tick ships to the broker.
const relayBatchSize = 100

// OutboxRelayJob ships staged order events from the outbox table to the
// message broker. Runs every second so committed events reach consumers
// with minimal delay.
type OutboxRelayJob struct {
	outbox    ports.EventOutboxReader
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxRelayJob creates a new relay job over the given outbox reader
// and publisher.
func NewOutboxRelayJob(outbox ports.EventOutboxReader, publisher ports.EventPublisher, logger *slog.Logger) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job to run every second.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()

		if err := j.relayPending(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox relay tick failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every second)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

// relayPending publishes one batch of unsent events in staging order.
// A publish failure aborts the batch; unsent messages stay in the outbox
// and are retried on the next tick, so delivery is at-least-once.
func (j *OutboxRelayJob) relayPending(ctx context.Context) error {
	messages, err := j.outbox.FetchPending(ctx, relayBatchSize)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := j.publisher.Publish(ctx, message); err != nil {
			return err
		}

		if err := j.outbox.MarkSent(ctx, message.ID); err != nil {
			return err
		}

		j.logger.DebugContext(ctx, "Event relayed to broker",
			"event_id", message.ID,
			"event_name", message.Name,
			"key", message.Key)
	}

	return nil
}
