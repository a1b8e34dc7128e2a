package messaging

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/opcare/report-triage-service/internal/core/ports"
)

var _ ports.ReportEventPublisher = (*RabbitMQBroker)(nil)

// PublishReportEvent delivers a report lifecycle event to the durable queue.
// The event type travels in the message Type property so consumers can route
// created and updated events without inspecting the body.
func (rmq *RabbitMQBroker) PublishReportEvent(ctx context.Context, eventType string, evt ports.ReportEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	_, err = rmq.cb.Execute(func() (interface{}, error) {
		err := rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange (default)
			rmq.queueName, // routing key == queue name
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Type:         eventType,
				Body:         body,
			},
		)
		return nil, err
	})
	return err
}
