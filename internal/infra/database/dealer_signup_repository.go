package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/xavierca1/cargram-leads/internal/entity"
)

var _ entity.DealerSignupRepository = (*DealerSignupRepository)(nil)

const dealerSignupColumns = `
	id, dealership_name, contact_name, email, phone, address, city, state, zip_code,
	dealer_license, monthly_inventory, current_software, interested_features,
	sales_agent_id, signup_at, status, notes`

type DealerSignupRepository struct {
	DB *sqlx.DB
}

func NewDealerSignupRepository(db *sqlx.DB) *DealerSignupRepository {
	return &DealerSignupRepository{DB: db}
}

type dealerSignupRow struct {
	ID                 string         `db:"id"`
	DealershipName     string         `db:"dealership_name"`
	ContactName        string         `db:"contact_name"`
	Email              string         `db:"email"`
	Phone              string         `db:"phone"`
	Address            string         `db:"address"`
	City               string         `db:"city"`
	State              string         `db:"state"`
	ZipCode            string         `db:"zip_code"`
	DealerLicense      sql.NullString `db:"dealer_license"`
	MonthlyInventory   string         `db:"monthly_inventory"`
	CurrentSoftware    sql.NullString `db:"current_software"`
	InterestedFeatures pq.StringArray `db:"interested_features"`
	SalesAgentID       sql.NullString `db:"sales_agent_id"`
	SignupAt           time.Time      `db:"signup_at"`
	Status             string         `db:"status"`
	Notes              sql.NullString `db:"notes"`
}

func (row dealerSignupRow) toEntity() *entity.DealerSignup {
	features := []string(row.InterestedFeatures)
	if features == nil {
		features = []string{}
	}
	return &entity.DealerSignup{
		ID:                 row.ID,
		DealershipName:     row.DealershipName,
		ContactName:        row.ContactName,
		Email:              row.Email,
		Phone:              row.Phone,
		Address:            row.Address,
		City:               row.City,
		State:              row.State,
		ZipCode:            row.ZipCode,
		DealerLicense:      stringPtr(row.DealerLicense),
		MonthlyInventory:   row.MonthlyInventory,
		CurrentSoftware:    stringPtr(row.CurrentSoftware),
		InterestedFeatures: features,
		SalesAgentID:       stringPtr(row.SalesAgentID),
		SignupAt:           row.SignupAt,
		Status:             entity.SignupStatus(row.Status),
		Notes:              stringPtr(row.Notes),
	}
}

// Create inserts the signup and copies back what the database assigned.
func (r *DealerSignupRepository) Create(ctx context.Context, s *entity.DealerSignup) error {
	query := `
		INSERT INTO dealer_signups (
			id, dealership_name, contact_name, email, phone, address,
			city, state, zip_code, dealer_license, monthly_inventory,
			current_software, interested_features, sales_agent_id, signup_at, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING signup_at, status
	`

	features := s.InterestedFeatures
	if features == nil {
		features = []string{}
	}

	var status string
	err := r.DB.QueryRowxContext(ctx, query,
		s.ID,
		s.DealershipName,
		s.ContactName,
		s.Email,
		s.Phone,
		s.Address,
		s.City,
		s.State,
		s.ZipCode,
		nullString(s.DealerLicense),
		s.MonthlyInventory,
		nullString(s.CurrentSoftware),
		pq.Array(features),
		nullString(s.SalesAgentID),
		s.SignupAt,
		string(s.Status),
	).Scan(&s.SignupAt, &status)
	if err != nil {
		return fmt.Errorf("inserting dealer signup: %w", err)
	}

	s.Status = entity.SignupStatus(status)
	s.InterestedFeatures = features
	return nil
}

func (r *DealerSignupRepository) List(ctx context.Context) ([]*entity.DealerSignup, error) {
	query := `SELECT ` + dealerSignupColumns + ` FROM dealer_signups ORDER BY signup_at DESC`

	var rows []dealerSignupRow
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("listing dealer signups: %w", err)
	}

	signups := make([]*entity.DealerSignup, 0, len(rows))
	for _, row := range rows {
		signups = append(signups, row.toEntity())
	}
	return signups, nil
}

func (r *DealerSignupRepository) FindByID(ctx context.Context, id string) (*entity.DealerSignup, error) {
	query := `SELECT ` + dealerSignupColumns + ` FROM dealer_signups WHERE id = $1`

	var row dealerSignupRow
	if err := r.DB.GetContext(ctx, &row, query, id); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("finding dealer signup %s: %w", id, err)
	}
	return row.toEntity(), nil
}

// UpdateStatus keeps existing notes when notes is nil. Returns (nil, nil) for an unknown id.
func (r *DealerSignupRepository) UpdateStatus(ctx context.Context, id string, status entity.SignupStatus, notes *string) (*entity.DealerSignup, error) {
	query := `
		UPDATE dealer_signups
		SET status = $2, notes = COALESCE($3, notes)
		WHERE id = $1
		RETURNING ` + dealerSignupColumns

	var row dealerSignupRow
	if err := r.DB.GetContext(ctx, &row, query, id, string(status), nullString(notes)); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("updating dealer signup %s: %w", id, err)
	}
	return row.toEntity(), nil
}
