package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thekey8/prequal-service/internal/cache"
	"github.com/thekey8/prequal-service/internal/config"
	"github.com/thekey8/prequal-service/internal/models"
	"github.com/thekey8/prequal-service/internal/repository"
	"github.com/thekey8/prequal-service/internal/service"
	"github.com/thekey8/prequal-service/internal/session"
)

func newTestRouter(t *testing.T) (*mux.Router, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	drafts := cache.NewStoreWithClient(
		redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour, logrus.New())

	cfg := &config.Config{JWTSecret: "test-secret"}
	svc := service.NewService(repository.NewRepository(db), drafts, nil, nil, logrus.New(), cfg)
	h := NewHandler(svc, logrus.New())

	r := mux.NewRouter()
	r.HandleFunc("/eligibility", h.Evaluate).Methods("POST")
	r.HandleFunc("/sessions/{id}", h.ApplyStep).Methods("PUT")
	r.HandleFunc("/sessions/{id}", h.GetSession).Methods("GET")
	r.HandleFunc("/calculator/schedule", h.Schedule).Methods("POST")
	return r, mock
}

func eligibleForm() models.FormState {
	form := session.Initial()
	form.AboutMe.Age = 34
	form.Employment.Duration = models.TenureMoreThanYear
	form.Income.MonthlySalary = 20000
	form.PropertyDetails.PropertyValue = 2000000
	return form
}

func TestEvaluateEndpoint(t *testing.T) {
	router, mock := newTestRouter(t)
	mock.ExpectQuery("SELECT bank_name, policy_key_name, policy_key_value").
		WillReturnRows(sqlmock.NewRows([]string{"bank_name", "policy_key_name", "policy_key_value"}).
			AddRow("ADCB", "fixedRate", "4.24"))

	body, _ := json.Marshal(eligibleForm())
	req := httptest.NewRequest(http.MethodPost, "/eligibility", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Validation struct {
			IsValid bool `json:"isValid"`
		} `json:"validation"`
		Result *models.EligibilityResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Validation.IsValid)
	require.NotNil(t, resp.Result)
	assert.Equal(t, 80.0, resp.Result.MaxLTV)
	require.Len(t, resp.Result.RecommendedBanks, 1)
	assert.Equal(t, "ADCB", resp.Result.RecommendedBanks[0].Bank)
}

func TestEvaluateEndpointValidationFailure(t *testing.T) {
	router, _ := newTestRouter(t)

	form := eligibleForm()
	form.AboutMe.Age = 0
	body, _ := json.Marshal(form)
	req := httptest.NewRequest(http.MethodPost, "/eligibility", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "Age is required")
}

func TestSessionRoundTrip(t *testing.T) {
	router, _ := newTestRouter(t)

	event := session.Event{
		Type: session.EventUpdateStep,
		Payload: &session.StepPayload{
			Income:      &models.Income{MonthlySalary: 18000},
			CurrentStep: 3,
		},
	}
	body, _ := json.Marshal(event)
	req := httptest.NewRequest(http.MethodPut, "/sessions/abc123", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/sessions/abc123", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var state models.FormState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, 18000.0, state.Income.TotalIncome)
	assert.Equal(t, 3, state.CurrentStep)
}

func TestGetUnknownSessionReturns404(t *testing.T) {
	router, _ := newTestRouter(t)
	req := httptest.NewRequest(http.MethodGet, "/sessions/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScheduleEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	body, _ := json.Marshal(map[string]any{"loanAmount": 1000000, "interestRate": 4.99, "loanTermYears": 25})
	req := httptest.NewRequest(http.MethodPost, "/calculator/schedule", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var schedule struct {
		MonthlyPayment float64 `json:"monthlyPayment"`
		Installments   []struct {
			Month int `json:"month"`
		} `json:"installments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &schedule))
	assert.InDelta(t, 5840.0, schedule.MonthlyPayment, 1.0)
	assert.Len(t, schedule.Installments, 300)

	body, _ = json.Marshal(map[string]any{"loanAmount": 0, "interestRate": 4.99, "loanTermYears": 25})
	req = httptest.NewRequest(http.MethodPost, "/calculator/schedule", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
