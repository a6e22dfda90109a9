package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publisher is the part of *amqp.Channel the dispatcher uses.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPDispatcher publishes messages as JSON to a topic exchange with routing
// key "split.<groupId>".
type AMQPDispatcher struct {
	conn     *amqp.Connection
	ch       publisher
	exchange string
}

// DialAMQP connects to the broker and declares a durable topic exchange.
func DialAMQP(url, exchange string) (*AMQPDispatcher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if err := ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}
	return &AMQPDispatcher{conn: conn, ch: ch, exchange: exchange}, nil
}

// RoutingKey returns the routing key used for a group's messages.
func RoutingKey(groupID string) string {
	return "split." + groupID
}

// Dispatch implements Dispatcher.
func (d *AMQPDispatcher) Dispatch(ctx context.Context, msg Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}
	err = d.ch.PublishWithContext(ctx, d.exchange, RoutingKey(msg.GroupID), false, false, amqp.Publishing{
		ContentType:  "application/json",
		MessageId:    msg.NotificationID,
		Timestamp:    time.Now(),
		DeliveryMode: amqp.Persistent,
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish notification %s: %w", msg.NotificationID, err)
	}
	return nil
}

// Close closes the broker connection.
func (d *AMQPDispatcher) Close() error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close()
}
