package events

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// AMQPPublisher 将事件写入持久化队列，供下游（通知、审计）消费
type AMQPPublisher struct {
	url   string
	queue string
	dial  func(url string) (*amqp.Connection, error)
}

func NewAMQPPublisher(url, queue string) *AMQPPublisher {
	return &AMQPPublisher{url: url, queue: queue, dial: amqp.Dial}
}

// Publish 异步投递，请求路径不等待 broker
func (p *AMQPPublisher) Publish(_ context.Context, evt Event) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := p.publish(ctx, evt); err != nil {
			logPublishError("amqp", evt, err)
		}
	}()
}

func (p *AMQPPublisher) publish(ctx context.Context, evt Event) error {
	conn, err := p.dial(p.url)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return err
	}

	body, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    evt.OccurredAt,
			Type:         string(evt.Type),
			Body:         body,
		},
	)
}
