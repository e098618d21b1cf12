package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"autoflow/internal/pkg/config"
	"autoflow/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

// publishChannel is the part of *amqp.Channel the publisher uses.
type publishChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var (
	errEmptyExchange = errs.New("exchange name cannot be empty")
	errNotConnected  = errs.New("publisher is not connected")
)

// AMQPPublisher publishes lifecycle events to a topic exchange, using the
// topic as routing key.
type AMQPPublisher struct {
	mu       sync.Mutex
	cfg      config.AMQPConfig
	conn     *amqp.Connection
	channel  publishChannel
	exchange string
	now      func() time.Time
}

func NewAMQPPublisher(cfg config.AMQPConfig) (*AMQPPublisher, error) {
	if cfg.Exchange == "" {
		return nil, errEmptyExchange
	}
	return &AMQPPublisher{cfg: cfg, exchange: cfg.Exchange, now: time.Now}, nil
}

func newAMQPPublisher(ch publishChannel, exchange string) *AMQPPublisher {
	return &AMQPPublisher{channel: ch, exchange: exchange, now: time.Now}
}

// Connect dials with retry and declares the durable topic exchange. It gives
// up as soon as ctx is done.
func (p *AMQPPublisher) Connect(ctx context.Context) error {
	var conn *amqp.Connection
	attempts := max(p.cfg.ConnectRetries, 1)
	err := retry(ctx, attempts, p.cfg.RetryDelay, func() error {
		var err error
		conn, err = amqp.Dial(p.cfg.URL)
		return err
	})
	if err != nil {
		return errs.Wrapf(err, "failed to connect to RabbitMQ after %d attempts", attempts)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return errs.Wrap(err, "failed to open channel")
	}

	err = ch.ExchangeDeclare(
		p.exchange, // name
		"topic",    // type
		true,       // durable
		false,      // auto-deleted
		false,      // internal
		false,      // no-wait
		nil,        // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return errs.Wrapf(err, "failed to declare exchange %s", p.exchange)
	}
	slog.Info("RabbitMQ exchange declared", "exchange", p.exchange)

	p.mu.Lock()
	p.conn, p.channel = conn, ch
	p.mu.Unlock()
	return nil
}

// retry runs fn up to attempts times, waiting delay, 2*delay, ... between
// failures. The wait is cut short when ctx is done.
func retry(ctx context.Context, attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := range attempts {
		if err = fn(); err == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}
		wait := time.Duration(i+1) * delay
		slog.Warn("failed to connect to RabbitMQ, retrying", "attempt", i+1, "wait", wait.String(), "error", err.Error())

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errs.Wrap(ctx.Err(), err.Error())
		case <-timer.C:
		}
	}
	return err
}

func (p *AMQPPublisher) Publish(ctx context.Context, topic string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errs.Wrapf(err, "failed to marshal %s event", topic)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel == nil {
		return errs.Wrap(errNotConnected, topic)
	}
	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		topic,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    p.now(),
			Type:         topic,
			Body:         body,
		},
	)
	if err != nil {
		return errs.Wrapf(err, "failed to publish to exchange %s with routing key %s", p.exchange, topic)
	}
	slog.Debug("event published", "exchange", p.exchange, "routing_key", topic)
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			return err
		}
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}
