package bridge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/aarkue/rust4pm/eventlog"
)

const (
	transformOp = "transform_event_log"
	importOp    = "import_xes"
)

// AMQPClient reaches a native engine worker over an AMQP topic exchange.
// Requests go to <engine>.commands.<op>; replies come back on an exclusive
// reply queue matched by correlation id.
type AMQPClient struct {
	ch         *amqp.Channel
	deliveries <-chan amqp.Delivery
	queue      string
	exchange   string
	engineID   string
	logger     *zap.Logger
}

var _ Native = (*AMQPClient)(nil)

func NewAMQPClient(conn *amqp.Connection, exchange, engineID string, logger *zap.Logger) (*AMQPClient, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		false,    // durable
		false,    // delete when unused
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	q, err := ch.QueueDeclare(
		"",    // name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	err = ch.QueueBind(q.Name, q.Name, exchange, false, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	deliveries, err := ch.Consume(
		q.Name, // queue
		"",     // consumer
		true,   // auto-ack
		true,   // exclusive
		false,  // no-local
		false,  // no-wait
		nil,    // args
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	return &AMQPClient{
		ch:         ch,
		deliveries: deliveries,
		queue:      q.Name,
		exchange:   exchange,
		engineID:   engineID,
		logger:     logger,
	}, nil
}

func (c *AMQPClient) Close() error {
	return c.ch.Close()
}

func (c *AMQPClient) TransformEventLog(ctx context.Context, payload []byte) ([]byte, error) {
	return c.call(ctx, transformOp, payload)
}

func (c *AMQPClient) ImportXES(ctx context.Context, path string, dateFormat string) (eventlog.Document, error) {
	req, err := json.Marshal(map[string]string{
		"path":        path,
		"date_format": dateFormat,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	body, err := c.call(ctx, importOp, req)
	if err != nil {
		return nil, err
	}
	var doc eventlog.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid import reply: %v", ErrNativeBridge, err)
	}
	return doc, nil
}

func (c *AMQPClient) call(ctx context.Context, op string, body []byte) ([]byte, error) {
	corrID := uuid.NewString()
	c.logger.Debug("engine call", zap.String("op", op), zap.Int("bytes", len(body)))
	err := c.ch.PublishWithContext(ctx,
		c.exchange,
		c.engineID+".commands."+op,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			Body:          body,
			ContentType:   "application/json",
			CorrelationId: corrID,
			ReplyTo:       c.queue,
		})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNativeBridge, err)
	}
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrNativeBridge, ctx.Err())
		case d, ok := <-c.deliveries:
			if !ok {
				return nil, fmt.Errorf("%w: reply channel closed", ErrNativeBridge)
			}
			if d.CorrelationId != corrID {
				// Stale reply from an abandoned call.
				continue
			}
			if msg, failed := d.Headers["x-error"]; failed {
				return nil, fmt.Errorf("%w: %v", ErrNativeBridge, msg)
			}
			return d.Body, nil
		}
	}
}
