package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

var _ entity.SubscriptionRepository = (*SubscriptionRepository)(nil)

type SubscriptionRepository struct {
	DB *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) *SubscriptionRepository {
	return &SubscriptionRepository{DB: db}
}

type subscriptionRow struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	SubscribedAt time.Time `db:"subscribed_at"`
	IsActive     bool      `db:"is_active"`
}

func (row subscriptionRow) toEntity() *entity.EmailSubscription {
	return &entity.EmailSubscription{
		ID:           row.ID,
		Email:        row.Email,
		SubscribedAt: row.SubscribedAt,
		IsActive:     row.IsActive,
	}
}

// FindByEmail returns (nil, nil) when no subscription exists.
func (r *SubscriptionRepository) FindByEmail(ctx context.Context, email string) (*entity.EmailSubscription, error) {
	query := `SELECT id, email, subscribed_at, is_active FROM email_subscriptions WHERE email = $1`

	var row subscriptionRow
	if err := r.DB.GetContext(ctx, &row, query, email); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding subscription by email: %w", err)
	}
	return row.toEntity(), nil
}

func (r *SubscriptionRepository) Create(ctx context.Context, sub *entity.EmailSubscription) error {
	query := `
		INSERT INTO email_subscriptions (id, email, subscribed_at, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING subscribed_at
	`

	err := r.DB.QueryRowxContext(ctx, query,
		sub.ID,
		sub.Email,
		sub.SubscribedAt,
		sub.IsActive,
	).Scan(&sub.SubscribedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrEmailAlreadySubscribed
		}
		return fmt.Errorf("inserting subscription: %w", err)
	}
	return nil
}

func (r *SubscriptionRepository) Stats(ctx context.Context) (entity.SubscriptionStats, error) {
	query := `
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE is_active) AS active
		FROM email_subscriptions
	`

	var counts struct {
		Total  int `db:"total"`
		Active int `db:"active"`
	}
	if err := r.DB.GetContext(ctx, &counts, query); err != nil {
		return entity.SubscriptionStats{}, fmt.Errorf("counting subscriptions: %w", err)
	}

	return entity.SubscriptionStats{
		TotalSubscriptions:  counts.Total,
		ActiveSubscriptions: counts.Active,
	}, nil
}
