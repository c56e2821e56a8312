// Package messaging publica los eventos de asistencia hacia el broker.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sony/gobreaker"

	"github.com/jhoicas/graha-hub/internal/application/ports"
	"github.com/jhoicas/graha-hub/pkg/breaker"
	"github.com/jhoicas/graha-hub/pkg/logger"
)

var _ ports.AttendanceEventPublisher = (*RabbitMQBroker)(nil)

// Channel operaciones del canal AMQP que usa el publicador.
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

var _ Channel = (*amqp.Channel)(nil)

// RabbitMQBroker publica en una cola durable usando el exchange por defecto.
type RabbitMQBroker struct {
	conn      *amqp.Connection
	ch        Channel
	queueName string
	cb        *gobreaker.CircuitBreaker
}

// NewRabbitMQPublisher publica sobre un canal ya abierto cuya cola está declarada.
// cb puede ser nil.
func NewRabbitMQPublisher(ch Channel, queueName string, cb *gobreaker.CircuitBreaker) *RabbitMQBroker {
	return &RabbitMQBroker{ch: ch, queueName: queueName, cb: cb}
}

// NewRabbitMQBroker conecta, abre canal y declara la cola (idempotente).
func NewRabbitMQBroker(amqpURL, queueName string, log *logger.Logger) (*RabbitMQBroker, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("amqp channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("amqp queue declare: %w", err)
	}

	rmq := NewRabbitMQPublisher(ch, queueName, breaker.New(breaker.RabbitMQ, log))
	rmq.conn = conn
	return rmq, nil
}

// PublishAttendance serializa el evento en JSON y lo publica como mensaje persistente.
func (rmq *RabbitMQBroker) PublishAttendance(ctx context.Context, ev ports.AttendanceEvent) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	if deadline, ok := ctx.Deadline(); ok && time.Until(deadline) <= 0 {
		return ctx.Err()
	}

	publish := func() (struct{}, error) {
		return struct{}{}, rmq.ch.PublishWithContext(
			ctx,
			"",            // exchange por defecto
			rmq.queueName, // routing key == cola
			false,         // mandatory
			false,         // immediate
			amqp.Publishing{
				ContentType:  "application/json",
				DeliveryMode: amqp.Persistent,
				Type:         ev.Type,
				Timestamp:    ev.OccurredAt,
				Body:         body,
			},
		)
	}
	if rmq.cb == nil {
		_, err = publish()
		return err
	}
	_, err = breaker.Execute(rmq.cb, publish)
	return err
}

// Close cierra canal y conexión.
func (rmq *RabbitMQBroker) Close() error {
	if rmq.ch != nil {
		if err := rmq.ch.Close(); err != nil {
			return err
		}
	}
	if rmq.conn != nil {
		return rmq.conn.Close()
	}
	return nil
}
