package usecase

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

const (
	MsgSubscribed        = "Successfully subscribed to Cargram newsletter!"
	MsgAlreadySubscribed = "Email already subscribed to our newsletter."
)

type SubscribeUseCase struct {
	Repo entity.SubscriptionRepository
	Log  logrus.FieldLogger
}

func NewSubscribeUseCase(repo entity.SubscriptionRepository, log logrus.FieldLogger) *SubscribeUseCase {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &SubscribeUseCase{Repo: repo, Log: log}
}

func (uc *SubscribeUseCase) Execute(ctx context.Context, input SubscribeInput) (*SubscribeOutput, error) {
	valid, err := ValidateSubscribeInput(input)
	if err != nil {
		return nil, err
	}

	// Fast path only. The unique index decides under concurrent requests.
	existing, err := uc.Repo.FindByEmail(ctx, valid.Email)
	if err != nil {
		return nil, &StorageError{Op: "find subscription", Err: err}
	}
	if existing != nil {
		return nil, &ConflictError{Field: "email", Message: MsgAlreadySubscribed}
	}

	sub := entity.NewEmailSubscription(valid.Email)
	if err := uc.Repo.Create(ctx, sub); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadySubscribed) {
			return nil, &ConflictError{Field: "email", Message: MsgAlreadySubscribed}
		}
		return nil, &StorageError{Op: "create subscription", Err: err}
	}

	uc.Log.WithField("subscription_id", sub.ID).Info("newsletter subscription created")

	return &SubscribeOutput{
		SubscriptionID: sub.ID,
		Message:        MsgSubscribed,
	}, nil
}

type SubscriptionStatsUseCase struct {
	Repo entity.SubscriptionRepository
}

func NewSubscriptionStatsUseCase(repo entity.SubscriptionRepository) *SubscriptionStatsUseCase {
	return &SubscriptionStatsUseCase{Repo: repo}
}

func (uc *SubscriptionStatsUseCase) Execute(ctx context.Context) (entity.SubscriptionStats, error) {
	stats, err := uc.Repo.Stats(ctx)
	if err != nil {
		return entity.SubscriptionStats{}, &StorageError{Op: "subscription stats", Err: err}
	}
	return stats, nil
}
