package events

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/HotelBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// channel is the subset of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitPublisher struct {
	conn     *amqp.Connection
	ch       channel
	exchange string
	logger   logger.Logger
}

// NewRabbitPublisher declares a durable topic exchange. An empty url yields a
// publisher that only logs skipped events.
func NewRabbitPublisher(url, exchange string, logger logger.Logger) (*RabbitPublisher, error) {
	if url == "" {
		logger.Warn("rabbitmq url is empty, booking events disabled")
		return &RabbitPublisher{exchange: exchange, logger: logger}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err = ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &RabbitPublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

func (p *RabbitPublisher) PublishBookingEvent(ctx context.Context, event domain.BookingEvent) {
	if p.ch == nil {
		p.logger.Debug("booking event skipped (publisher disabled)",
			logger.String("type", string(event.Type)),
			logger.String("booking_id", event.BookingID),
		)
		return
	}

	if err := ctx.Err(); err != nil {
		p.logger.Debug("booking event skipped (context cancelled)",
			logger.String("booking_id", event.BookingID),
		)
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("failed to encode booking event",
			logger.String("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
		return
	}

	err = p.ch.PublishWithContext(ctx, p.exchange, string(event.Type), false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.BookingID,
		Timestamp:    event.OccurredAt,
		Type:         string(event.Type),
		Body:         body,
	})
	if err != nil {
		p.logger.Error("failed to publish booking event",
			logger.String("type", string(event.Type)),
			logger.String("booking_id", event.BookingID),
			logger.String("error", err.Error()),
		)
	}
}

func (p *RabbitPublisher) Close() error {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
