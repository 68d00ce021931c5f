package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"venture-hub/internal/ports/notify"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultQueue = "access_requests.events"

	defaultDialTimeout = 3 * time.Second
	// Tras un dial fallido, los Publish fallan sin reintentar hasta que pase este tiempo.
	defaultRedialAfter = 10 * time.Second
)

var ErrBrokerUnavailable = errors.New("rabbitmq: broker unavailable")

// Publisher publica eventos del ledger en una cola durable (exchange por defecto).
// La conexión se abre en el primer Publish y se reabre si el broker la cerró.
// El dial corre fuera de p.mu: un broker caído no encola a los demás Publish.
type Publisher struct {
	url   string
	queue string

	dialTimeout time.Duration
	redialAfter time.Duration
	dial        func(ctx context.Context) (*amqp.Connection, error)
	now         func() time.Time

	mu       sync.Mutex
	conn     *amqp.Connection
	ch       *amqp.Channel
	nextDial time.Time
}

func NewPublisher(url, queue string) (*Publisher, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, errors.New("rabbitmq url is required")
	}
	if strings.TrimSpace(queue) == "" {
		queue = DefaultQueue
	}
	p := &Publisher{
		url:         url,
		queue:       queue,
		dialTimeout: defaultDialTimeout,
		redialAfter: defaultRedialAfter,
		now:         time.Now,
	}
	p.dial = p.dialBroker
	return p, nil
}

func (p *Publisher) Publish(ctx context.Context, e notify.Event) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("rabbitmq: marshal event: %w", err)
	}

	ch, err := p.channel(ctx)
	if err != nil {
		return err
	}

	if err := ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Type:         string(e.Type),
			MessageId:    e.RequestID + ":" + string(e.Type),
			Body:         body,
		},
	); err != nil {
		p.mu.Lock()
		if p.ch == ch {
			p.reset()
		}
		p.mu.Unlock()
		return fmt.Errorf("rabbitmq: publish: %w", err)
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reset()
	return nil
}

// channel devuelve el canal abierto o dialoga uno nuevo sin tomar p.mu durante el dial.
func (p *Publisher) channel(ctx context.Context) (*amqp.Channel, error) {
	p.mu.Lock()
	if p.ch != nil && !p.ch.IsClosed() && p.conn != nil && !p.conn.IsClosed() {
		ch := p.ch
		p.mu.Unlock()
		return ch, nil
	}
	p.reset()
	if p.now().Before(p.nextDial) {
		p.mu.Unlock()
		return nil, ErrBrokerUnavailable
	}
	p.mu.Unlock()

	conn, ch, err := p.open(ctx)
	if err != nil {
		p.mu.Lock()
		p.nextDial = p.now().Add(p.redialAfter)
		p.mu.Unlock()
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Otro Publish ganó la carrera: se usa su canal y se descarta el nuestro.
	if p.ch != nil && !p.ch.IsClosed() {
		_ = ch.Close()
		_ = conn.Close()
		return p.ch, nil
	}
	p.conn = conn
	p.ch = ch
	p.nextDial = time.Time{}
	return ch, nil
}

func (p *Publisher) open(ctx context.Context) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := p.dial(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("rabbitmq: dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq: open channel: %w", err)
	}
	// Idempotente. Durable para sobrevivir reinicios del broker.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("rabbitmq: declare queue: %w", err)
	}
	return conn, ch, nil
}

// dialBroker acota TCP y handshake AMQP a dialTimeout y a ctx.
func (p *Publisher) dialBroker(ctx context.Context) (*amqp.Connection, error) {
	timeout := p.dialTimeout
	if dl, ok := ctx.Deadline(); ok && time.Until(dl) < timeout {
		timeout = time.Until(dl)
	}
	if timeout <= 0 {
		return nil, context.DeadlineExceeded
	}
	return amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial: func(network, addr string) (net.Conn, error) {
			d := net.Dialer{Timeout: timeout}
			conn, err := d.DialContext(ctx, network, addr)
			if err != nil {
				return nil, err
			}
			// El deadline cubre el handshake. amqp lo limpia al abrir la conexión.
			if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
				_ = conn.Close()
				return nil, err
			}
			return conn, nil
		},
	})
}

func (p *Publisher) reset() {
	if p.ch != nil {
		_ = p.ch.Close()
		p.ch = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}
