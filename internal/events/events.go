// events публикует события жизненного цикла счетов в RabbitMQ
// (topic-exchange, JSON). Публикация выполняется после фиксации
// транзакции и не влияет на её исход.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pribylovaa/bank-backoffice/internal/models"
	"github.com/pribylovaa/bank-backoffice/internal/pkg/log"
)

// Ключи маршрутизации.
const (
	RoutingAccountClosed = "account.closed"
	RoutingAccountOpened = "account.opened"
)

// Publisher: контракт публикации событий.
type Publisher interface {
	PublishAccountClosed(ctx context.Context, e models.AccountClosedEvent) error
	PublishAccountOpened(ctx context.Context, e models.AccountOpenedEvent) error
	Close()
}

// channel: подмножество *amqp.Channel, нужное издателю.
type channel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// RabbitPublisher публикует события в exchange.
type RabbitPublisher struct {
	mu       sync.Mutex
	conn     *amqp.Connection
	ch       channel
	exchange string
}

// NewRabbitPublisher подключается к брокеру и объявляет durable topic-exchange.
func NewRabbitPublisher(url, exchange string) (*RabbitPublisher, error) {
	const op = "events.NewRabbitPublisher"

	conn, err := amqp.DialConfig(url, amqp.Config{Dial: amqp.DefaultDial(10 * time.Second)})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := newPublisher(ch, exchange)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.conn = conn

	return p, nil
}

func newPublisher(ch channel, exchange string) (*RabbitPublisher, error) {
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		return nil, err
	}

	return &RabbitPublisher{ch: ch, exchange: exchange}, nil
}

func (p *RabbitPublisher) PublishAccountClosed(ctx context.Context, e models.AccountClosedEvent) error {
	return p.publish(ctx, RoutingAccountClosed, e)
}

func (p *RabbitPublisher) PublishAccountOpened(ctx context.Context, e models.AccountOpenedEvent) error {
	return p.publish(ctx, RoutingAccountOpened, e)
}

func (p *RabbitPublisher) publish(ctx context.Context, key string, body any) error {
	const op = "events.publish"

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	// amqp.Channel не потокобезопасен для публикаций.
	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.ch.PublishWithContext(ctx, p.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         payload,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Close закрывает канал и соединение.
func (p *RabbitPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Noop: издатель, когда брокер не сконфигурирован: только debug-лог.
type Noop struct{}

func (Noop) PublishAccountClosed(ctx context.Context, e models.AccountClosedEvent) error {
	log.From(ctx).Debug("event_skipped", slog.String("routing_key", RoutingAccountClosed), slog.Int64("account_id", e.AccountID))
	return nil
}

func (Noop) PublishAccountOpened(ctx context.Context, e models.AccountOpenedEvent) error {
	log.From(ctx).Debug("event_skipped", slog.String("routing_key", RoutingAccountOpened), slog.Int64("account_id", e.AccountID))
	return nil
}

func (Noop) Close() {}

var (
	_ Publisher = (*RabbitPublisher)(nil)
	_ Publisher = Noop{}
)
