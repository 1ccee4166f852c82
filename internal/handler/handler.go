package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/thekey8/prequal-service/internal/cache"
	"github.com/thekey8/prequal-service/internal/eligibility"
	"github.com/thekey8/prequal-service/internal/finance"
	"github.com/thekey8/prequal-service/internal/models"
	"github.com/thekey8/prequal-service/internal/service"
	"github.com/thekey8/prequal-service/internal/session"
)

type Handler struct {
	svc *service.Service
	log *logrus.Logger
}

func NewHandler(svc *service.Service, log *logrus.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

// Register handles applicant account creation
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.svc.Register(req.Email, req.FullName, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles user authentication
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}

type evaluateResponse struct {
	Validation eligibility.ValidationResult `json:"validation"`
	Result     *models.EligibilityResult    `json:"result,omitempty"`
}

// Evaluate runs the eligibility pipeline over a submitted form state.
// Validation errors come back as 422 with the error list; an empty offer
// list is a normal 200.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var form models.FormState
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	validation, result, err := h.svc.Evaluate(form)
	if err != nil {
		h.log.Errorf("Evaluation failed: %v", err)
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}

	status := http.StatusOK
	if !validation.IsValid {
		status = http.StatusUnprocessableEntity
	}
	respondJSON(w, status, evaluateResponse{Validation: validation, Result: result})
}

type emailSummaryRequest struct {
	To        string           `json:"to"`
	FirstName string           `json:"firstName"`
	Form      models.FormState `json:"form"`
}

// EmailSummary evaluates a form and mails the summary to the applicant.
func (h *Handler) EmailSummary(w http.ResponseWriter, r *http.Request) {
	var req emailSummaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.To == "" {
		http.Error(w, "recipient is required", http.StatusBadRequest)
		return
	}

	validation, result, err := h.svc.Evaluate(req.Form)
	if err != nil {
		http.Error(w, "evaluation failed", http.StatusInternalServerError)
		return
	}
	if !validation.IsValid || result == nil {
		respondJSON(w, http.StatusUnprocessableEntity, evaluateResponse{Validation: validation})
		return
	}

	if err := h.svc.EmailSummary(req.To, req.FirstName, *result); err != nil {
		http.Error(w, "failed to send summary", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, evaluateResponse{Validation: validation, Result: result})
}

// ApplyStep advances a wizard session by one reducer event.
func (h *Handler) ApplyStep(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	var event session.Event
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	state, err := h.svc.ApplyStep(r.Context(), sessionID, event)
	if err != nil {
		h.log.Errorf("Failed to apply step for session %s: %v", sessionID, err)
		http.Error(w, "failed to update session", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// GetSession returns the stored wizard state for a session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["id"]
	state, err := h.svc.GetDraft(r.Context(), sessionID)
	if err == cache.ErrDraftNotFound {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "failed to load session", http.StatusInternalServerError)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// SaveApplication persists the submitted form with its computed result.
func (h *Handler) SaveApplication(w http.ResponseWriter, r *http.Request) {
	var form models.FormState
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	app, err := h.svc.SaveApplication(r.Context(), form)
	if err != nil {
		h.log.Errorf("Failed to save application: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusCreated, app)
}

// ListApplications returns the caller's saved applications.
func (h *Handler) ListApplications(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListApplications(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}
	respondJSON(w, http.StatusOK, apps)
}

// GetApplication returns one saved application.
func (h *Handler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid application id", http.StatusBadRequest)
		return
	}

	app, err := h.svc.GetApplication(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	respondJSON(w, http.StatusOK, app)
}

type scheduleRequest struct {
	LoanAmount    float64 `json:"loanAmount"`
	InterestRate  float64 `json:"interestRate"`
	LoanTermYears int     `json:"loanTermYears"`
}

// Schedule returns the month-by-month amortization breakdown for a loan.
func (h *Handler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	schedule := finance.Schedule(req.LoanAmount, req.InterestRate, req.LoanTermYears)
	if schedule == nil {
		http.Error(w, "loan amount, rate and term must all be positive", http.StatusBadRequest)
		return
	}
	respondJSON(w, http.StatusOK, schedule)
}

// MarketRates returns the stored EIBOR tenor rates.
func (h *Handler) MarketRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.MarketRates()
	if err != nil {
		http.Error(w, "failed to load rates", http.StatusInternalServerError)
		return
	}
	if rates == nil {
		rates = []models.EIBORRate{}
	}
	respondJSON(w, http.StatusOK, rates)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
