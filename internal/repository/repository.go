package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/thekey8/prequal-service/internal/models"
)

// Repository provides database operations
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateUser creates a new applicant account
func (r *Repository) CreateUser(user *models.User) error {
	query := `
		INSERT INTO prequal.users (email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRow(query, user.Email, user.FullName, user.PasswordHash).
		Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindUserByEmail retrieves a user by email
func (r *Repository) FindUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, email, full_name, password_hash, created_at
		FROM prequal.users
		WHERE email = $1`
	err := r.db.QueryRow(query, email).
		Scan(&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// ListBankPolicies loads the raw bank policy catalog as flat key/value rows.
func (r *Repository) ListBankPolicies() ([]models.PolicyRow, error) {
	query := `
		SELECT bank_name, policy_key_name, policy_key_value
		FROM prequal.bank_policies
		ORDER BY bank_name, policy_key_name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank policies: %w", err)
	}
	defer rows.Close()

	var policies []models.PolicyRow
	for rows.Next() {
		var row models.PolicyRow
		if err := rows.Scan(&row.BankName, &row.KeyName, &row.KeyValue); err != nil {
			return nil, fmt.Errorf("failed to scan bank policy row: %w", err)
		}
		policies = append(policies, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bank policies: %w", err)
	}
	return policies, nil
}

// SaveApplication stores a form snapshot plus its computed result as a draft.
func (r *Repository) SaveApplication(app *models.Application) error {
	formJSON, err := json.Marshal(app.FormState)
	if err != nil {
		return fmt.Errorf("failed to encode form state: %w", err)
	}
	var resultJSON []byte
	if app.Result != nil {
		if resultJSON, err = json.Marshal(app.Result); err != nil {
			return fmt.Errorf("failed to encode eligibility result: %w", err)
		}
	}

	query := `
		INSERT INTO prequal.applications (user_id, form_state, result, status, offer_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
		RETURNING id, created_at, updated_at`
	err = r.db.QueryRow(query, app.UserID, formJSON, resultJSON, app.Status, app.OfferStatus).
		Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

// ListApplications returns a user's saved applications, newest first.
func (r *Repository) ListApplications(userID int64) ([]models.Application, error) {
	query := `
		SELECT id, user_id, form_state, result, status, offer_status, created_at, updated_at
		FROM prequal.applications
		WHERE user_id = $1
		ORDER BY created_at DESC`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []models.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return apps, nil
}

// FindApplication returns one saved application owned by the user.
func (r *Repository) FindApplication(id, userID int64) (*models.Application, error) {
	query := `
		SELECT id, user_id, form_state, result, status, offer_status, created_at, updated_at
		FROM prequal.applications
		WHERE id = $1 AND user_id = $2`
	row := r.db.QueryRow(query, id, userID)
	app, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("application not found")
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (models.Application, error) {
	var app models.Application
	var formJSON []byte
	var resultJSON []byte
	err := row.Scan(&app.ID, &app.UserID, &formJSON, &resultJSON, &app.Status, &app.OfferStatus, &app.CreatedAt, &app.UpdatedAt)
	if err == sql.ErrNoRows {
		return app, err
	}
	if err != nil {
		return app, fmt.Errorf("failed to scan application: %w", err)
	}
	if err := json.Unmarshal(formJSON, &app.FormState); err != nil {
		return app, fmt.Errorf("failed to decode form state: %w", err)
	}
	if len(resultJSON) > 0 {
		app.Result = &models.EligibilityResult{}
		if err := json.Unmarshal(resultJSON, app.Result); err != nil {
			return app, fmt.Errorf("failed to decode eligibility result: %w", err)
		}
	}
	return app, nil
}

// UpsertEIBORRate stores the latest published rate for one tenor.
func (r *Repository) UpsertEIBORRate(rate models.EIBORRate) error {
	query := `
		INSERT INTO prequal.eibor_rates (period, rate, fetched_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (period) DO UPDATE SET rate = EXCLUDED.rate, fetched_at = EXCLUDED.fetched_at`
	if _, err := r.db.Exec(query, rate.Period, rate.Rate, rate.FetchedAt); err != nil {
		return fmt.Errorf("failed to upsert EIBOR rate: %w", err)
	}
	return nil
}

// ListEIBORRates returns the stored EIBOR tenor rates.
func (r *Repository) ListEIBORRates() ([]models.EIBORRate, error) {
	query := `
		SELECT period, rate, fetched_at
		FROM prequal.eibor_rates
		ORDER BY period`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list EIBOR rates: %w", err)
	}
	defer rows.Close()

	var rates []models.EIBORRate
	for rows.Next() {
		var rate models.EIBORRate
		if err := rows.Scan(&rate.Period, &rate.Rate, &rate.FetchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan EIBOR rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read EIBOR rates: %w", err)
	}
	return rates, nil
}
