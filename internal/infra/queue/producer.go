package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
	"github.com/xavierca1/cargram-leads/internal/infra/mail"
)

// NotificationMessage is the queued form of one post-signup email.
type NotificationMessage struct {
	Kind           string               `json:"kind"`
	Signup         *entity.DealerSignup `json:"signup,omitempty"`
	Email          string               `json:"email,omitempty"`
	DealershipName string               `json:"dealership_name,omitempty"`
}

type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Producer hands notifications to RabbitMQ instead of sending them inline.
// A true result means the broker accepted the message, not that it was delivered.
type Producer struct {
	Ch  Publisher
	Log logrus.FieldLogger
}

func NewProducer(ch Publisher, log logrus.FieldLogger) *Producer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Producer{Ch: ch, Log: log}
}

func (p *Producer) NotifyStaffOfSignup(ctx context.Context, signup *entity.DealerSignup) bool {
	return p.publish(ctx, NotificationMessage{Kind: mail.KindStaffAlert, Signup: signup})
}

func (p *Producer) SendApplicantWelcome(ctx context.Context, email, dealershipName string) bool {
	return p.publish(ctx, NotificationMessage{
		Kind:           mail.KindApplicantWelcome,
		Email:          email,
		DealershipName: dealershipName,
	})
}

func (p *Producer) publish(ctx context.Context, msg NotificationMessage) bool {
	if err := p.Publish(ctx, msg); err != nil {
		p.Log.WithError(err).WithField("kind", msg.Kind).Error("failed to queue notification")
		return false
	}
	return true
}

func (p *Producer) Publish(ctx context.Context, msg NotificationMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding notification: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publishing to RabbitMQ: %w", err)
	}
	return nil
}
