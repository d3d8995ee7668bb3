package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
	"github.com/xavierca1/cargram-leads/internal/infra/mail"
)

var ErrNotDelivered = errors.New("notification not delivered")

// Deliverer sends queued notifications; mail.Dispatcher satisfies it.
type Deliverer interface {
	NotifyStaffOfSignup(ctx context.Context, signup *entity.DealerSignup) bool
	SendApplicantWelcome(ctx context.Context, email, dealershipName string) bool
}

type Worker struct {
	Channel   *amqp.Channel
	Deliverer Deliverer
	Log       logrus.FieldLogger
}

func NewWorker(ch *amqp.Channel, deliverer Deliverer, log logrus.FieldLogger) *Worker {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Worker{
		Channel:   ch,
		Deliverer: deliverer,
		Log:       log,
	}
}

// Start consumes until ctx is done or the channel closes. Failed messages are
// rejected without requeue and end up in the DLQ.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.ConsumeWithContext(ctx,
		queueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("registering consumer on %s: %w", queueName, err)
	}

	w.Log.WithField("queue", queueName).Info("notification worker started")

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			if err := w.Handle(ctx, d.Body); err != nil {
				w.Log.WithError(err).Warn("notification rejected")
				d.Nack(false, false)
				continue
			}
			d.Ack(false)
		}
	}
}

func (w *Worker) Handle(ctx context.Context, body []byte) error {
	var msg NotificationMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return fmt.Errorf("decoding notification: %w", err)
	}

	var delivered bool
	switch msg.Kind {
	case mail.KindStaffAlert:
		if msg.Signup == nil {
			return fmt.Errorf("%s without signup", msg.Kind)
		}
		delivered = w.Deliverer.NotifyStaffOfSignup(ctx, msg.Signup)
	case mail.KindApplicantWelcome:
		if msg.Email == "" {
			return fmt.Errorf("%s without recipient", msg.Kind)
		}
		delivered = w.Deliverer.SendApplicantWelcome(ctx, msg.Email, msg.DealershipName)
	default:
		// Unknown kinds are dropped so they do not pile up in the DLQ.
		w.Log.WithField("kind", msg.Kind).Warn("unknown notification kind, dropping")
		return nil
	}

	if !delivered {
		return fmt.Errorf("%s: %w", msg.Kind, ErrNotDelivered)
	}
	return nil
}
