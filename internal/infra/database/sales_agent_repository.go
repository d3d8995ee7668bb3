package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

var _ entity.SalesAgentRepository = (*SalesAgentRepository)(nil)

type SalesAgentRepository struct {
	DB *sqlx.DB
}

func NewSalesAgentRepository(db *sqlx.DB) *SalesAgentRepository {
	return &SalesAgentRepository{DB: db}
}

type salesAgentRow struct {
	ID        string    `db:"id"`
	FirstName string    `db:"first_name"`
	LastName  string    `db:"last_name"`
	Email     string    `db:"email"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

func (row salesAgentRow) toEntity() *entity.SalesAgent {
	return &entity.SalesAgent{
		ID:        row.ID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     row.Email,
		IsActive:  row.IsActive,
		CreatedAt: row.CreatedAt,
	}
}

const salesAgentColumns = `id, first_name, last_name, email, is_active, created_at`

// ListActive orders by first name; last name and id break ties so repeated
// reads return the same order.
func (r *SalesAgentRepository) ListActive(ctx context.Context) ([]*entity.SalesAgent, error) {
	query := `
		SELECT ` + salesAgentColumns + `
		FROM sales_agents
		WHERE is_active = TRUE
		ORDER BY first_name ASC, last_name ASC, id ASC
	`

	var rows []salesAgentRow
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("listing active sales agents: %w", err)
	}

	agents := make([]*entity.SalesAgent, 0, len(rows))
	for _, row := range rows {
		agents = append(agents, row.toEntity())
	}
	return agents, nil
}

// FindByID also returns inactive agents; signups keep their preference after
// an agent leaves.
func (r *SalesAgentRepository) FindByID(ctx context.Context, id string) (*entity.SalesAgent, error) {
	query := `SELECT ` + salesAgentColumns + ` FROM sales_agents WHERE id = $1`

	var row salesAgentRow
	if err := r.DB.GetContext(ctx, &row, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding sales agent %s: %w", id, err)
	}
	return row.toEntity(), nil
}
