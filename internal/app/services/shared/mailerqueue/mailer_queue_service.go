package mailerqueue

import (
	"context"
	"larib-portal/internal/app/contracts"
	"larib-portal/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes leave notification events to a durable RabbitMQ queue
// consumed by the mailer worker.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

func (s *Service) PublishLeaveEvent(ctx context.Context, message *contracts.LeaveEventMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrRabbitMQPublish(err)
	}

	s.log.Info("leave event published",
		zap.String("event", message.Event),
		zap.String("leave_id", message.LeaveID),
	)
	return nil
}
