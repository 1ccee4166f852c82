package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekey8/prequal-service/internal/models"
)

func TestListBankPolicies(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT bank_name, policy_key_name, policy_key_value").
		WillReturnRows(sqlmock.NewRows([]string{"bank_name", "policy_key_name", "policy_key_value"}).
			AddRow("ADCB", "fixedRate", "4.24").
			AddRow("ADCB", "maximumTenure", "25").
			AddRow("Mashreq", "fixedRate", "4.39"))

	repo := NewRepository(db)
	rows, err := repo.ListBankPolicies()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, models.PolicyRow{BankName: "ADCB", KeyName: "fixedRate", KeyValue: "4.24"}, rows[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO prequal.users").
		WithArgs("sara@example.com", "Sara Haddad", "hash").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), "2026-09-01T10:00:00Z"))

	repo := NewRepository(db)
	user := &models.User{Email: "sara@example.com", FullName: "Sara Haddad", PasswordHash: "hash"}
	require.NoError(t, repo.CreateUser(user))
	assert.Equal(t, int64(7), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveAndListApplications(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	form := models.FormState{CurrentStep: 6}
	form.Income.MonthlySalary = 20000
	result := &models.EligibilityResult{MaxLoanAmount: 1450000, MaxLTV: 80, RecommendedBanks: []models.RecommendedBank{}}
	formJSON, _ := json.Marshal(form)
	resultJSON, _ := json.Marshal(result)
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO prequal.applications").
		WithArgs(int64(7), formJSON, resultJSON, "draft", "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(3), now, now))

	repo := NewRepository(db)
	app := &models.Application{UserID: 7, FormState: form, Result: result, Status: "draft", OfferStatus: "pending"}
	require.NoError(t, repo.SaveApplication(app))
	assert.Equal(t, int64(3), app.ID)

	mock.ExpectQuery("SELECT id, user_id, form_state, result, status, offer_status").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "form_state", "result", "status", "offer_status", "created_at", "updated_at"}).
			AddRow(int64(3), int64(7), formJSON, resultJSON, "draft", "pending", now, now))

	apps, err := repo.ListApplications(7)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, 20000.0, apps[0].FormState.Income.MonthlySalary)
	require.NotNil(t, apps[0].Result)
	assert.Equal(t, 1450000.0, apps[0].Result.MaxLoanAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertEIBORRate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Date(2026, 9, 1, 2, 0, 0, 0, time.UTC)
	mock.ExpectExec("INSERT INTO prequal.eibor_rates").
		WithArgs("3M", 4.37, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(db)
	require.NoError(t, repo.UpsertEIBORRate(models.EIBORRate{Period: "3M", Rate: 4.37, FetchedAt: now}))
	assert.NoError(t, mock.ExpectationsWereMet())
}
