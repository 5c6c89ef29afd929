// Package queue_publisher provides functions to publish domain events to RabbitMQ.
// Errors are logged and returned to allow callers to ignore failures without
// interrupting the main request flow.
package queue_publisher

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/PouyaBirvand/blito/internal/queue"
)

// publishAttempts and publishRetryDelay implement the fixed retry policy for
// broker calls: three attempts with a fixed delay, then the failure is
// surfaced to the caller as a notification-worthy error.  Local state is
// never rolled back on broker failure.
const (
	publishAttempts   = 3
	publishRetryDelay = 500 * time.Millisecond
)

// PublishVenueSaved publishes a VenueSavedEvent to the venue.saved queue.
// Messages are marked persistent.  Each attempt dials fresh so a broker
// bounce between saves cannot poison a cached connection.
func PublishVenueSaved(ctx context.Context, event q.VenueSavedEvent) error {
	var lastErr error
	for attempt := 1; attempt <= publishAttempts; attempt++ {
		if lastErr = publishOnce(ctx, event); lastErr == nil {
			return nil
		}
		log.Printf("rabbitmq: publish attempt %d/%d failed: %v", attempt, publishAttempts, lastErr)
		if attempt < publishAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(publishRetryDelay):
			}
		}
	}
	return lastErr
}

func publishOnce(ctx context.Context, event q.VenueSavedEvent) error {
	conn, err := amqp.Dial(q.BrokerURL())
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.VenueQueueName, // name
		true,             // durable
		false,            // autoDelete
		false,            // exclusive
		false,            // noWait
		nil,              // args
	); err != nil {
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	return ch.PublishWithContext(ctx,
		"",               // default exchange
		q.VenueQueueName, // routing key = queue name
		false,            // mandatory
		false,            // immediate
		pub,
	)
}
