package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"jobboard/internal/config"
	"jobboard/internal/domain/notification"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

var ErrClosed = errors.New("amqp publisher closed")

// Publisher sends notification events to a durable topic exchange. Routing
// keys take the form notification.<type>.<candidateID>.
type Publisher struct {
	exchange string
	logger   *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
}

func Dial(cfg config.AMQPConfig, logger *zap.Logger) (*Publisher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial amqp: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open amqp channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		cfg.Exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	return &Publisher{exchange: cfg.Exchange, logger: logger.Named("amqp"), conn: conn}, nil
}

// Publish opens a short-lived channel per message; notification volume is low
// and channels are not safe for concurrent use.
func (p *Publisher) Publish(_ context.Context, n notification.Notification) error {
	if p == nil {
		return nil
	}

	key, msg, err := encode(n)
	if err != nil {
		return err
	}

	p.mu.Lock()
	conn := p.conn
	p.mu.Unlock()
	if conn == nil {
		return ErrClosed
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("open amqp channel: %w", err)
	}
	defer ch.Close()

	if err := ch.Publish(p.exchange, key, false, false, msg); err != nil {
		return fmt.Errorf("publish %s: %w", key, err)
	}
	p.logger.Debug("notification published", zap.String("routing_key", key), zap.String("notification_id", n.ID.String()))
	return nil
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil {
		return nil
	}
	err := p.conn.Close()
	p.conn = nil
	return err
}

func routingKey(n notification.Notification) string {
	return fmt.Sprintf("notification.%s.%s", n.Type, n.CandidateID)
}

func encode(n notification.Notification) (string, amqp.Publishing, error) {
	body, err := json.Marshal(n.Event())
	if err != nil {
		return "", amqp.Publishing{}, fmt.Errorf("encode notification: %w", err)
	}
	return routingKey(n), amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    n.ID.String(),
		Timestamp:    n.CreatedAt,
		Type:         string(n.Type),
		Body:         body,
	}, nil
}
