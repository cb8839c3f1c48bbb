package service

import (
	"context"

	"bank-transfer-api/logger"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// ConsumerService listens on a RabbitMQ queue and logs every message body it
// receives. It is a pass-through collaborator: no message affects the ledger.
type ConsumerService struct {
	url   string
	queue string
}

func NewConsumerService(url, queue string) *ConsumerService {
	return &ConsumerService{url: url, queue: queue}
}

// Run connects, declares the queue, and consumes until ctx is cancelled or
// the delivery channel closes. Connection and channel are always closed on
// return.
func (s *ConsumerService) Run(ctx context.Context) error {
	conn, err := amqp.Dial(s.url)
	if err != nil {
		return err
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(s.queue, false, false, false, false, nil); err != nil {
		return err
	}

	deliveries, err := ch.Consume(s.queue, "", true, false, false, false, nil)
	if err != nil {
		return err
	}

	logger.Log.WithField("queue", s.queue).Info("Queue consumer started")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return amqp.ErrClosed
			}
			s.handleDelivery(d.RoutingKey, d.Body)
		}
	}
}

// handleDelivery logs one received message.
func (s *ConsumerService) handleDelivery(routingKey string, body []byte) {
	logger.Log.WithFields(logrus.Fields{
		"queue":       s.queue,
		"routing_key": routingKey,
		"bytes":       len(body),
	}).Infof("Received message: %s", body)
}
