package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/thekey8/prequal-service/internal/cache"
	"github.com/thekey8/prequal-service/internal/config"
	"github.com/thekey8/prequal-service/internal/eligibility"
	"github.com/thekey8/prequal-service/internal/integrations/eibor"
	"github.com/thekey8/prequal-service/internal/middleware"
	"github.com/thekey8/prequal-service/internal/models"
	"github.com/thekey8/prequal-service/internal/policy"
	"github.com/thekey8/prequal-service/internal/repository"
	"github.com/thekey8/prequal-service/internal/session"
	"github.com/thekey8/prequal-service/internal/utils/email"
)

// Service handles business logic
type Service struct {
	repo   *repository.Repository
	drafts *cache.Store
	rates  *eibor.Client
	mailer *email.Sender
	log    *logrus.Logger
	config *config.Config
}

// NewService initializes a new service
func NewService(repo *repository.Repository, drafts *cache.Store, rates *eibor.Client, mailer *email.Sender, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, drafts: drafts, rates: rates, mailer: mailer, log: log, config: cfg}
}

// Register creates a new applicant account with a hashed password
func (s *Service) Register(email, fullName, password string) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hashedPassword),
	}

	if err := s.repo.CreateUser(user); err != nil {
		return nil, err
	}

	s.log.Infof("User registered: %s", user.Email)
	return user, nil
}

// Login authenticates a user and returns a JWT token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", user.ID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(s.config.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// Evaluate runs the validator gate and, when no fatal errors block it, the
// eligibility calculator over the freshly loaded bank catalog. A nil result
// with a failed validation is not an error; the caller decides presentation.
func (s *Service) Evaluate(form models.FormState) (eligibility.ValidationResult, *models.EligibilityResult, error) {
	validation := eligibility.Validate(form)
	if !validation.IsValid {
		s.log.Infof("Evaluation blocked by %d validation errors", len(validation.Errors))
		return validation, nil, nil
	}

	rows, err := s.repo.ListBankPolicies()
	if err != nil {
		return validation, nil, fmt.Errorf("failed to load bank catalog: %w", err)
	}

	banks := policy.Normalize(rows)
	result := eligibility.Calculate(form, banks)

	s.log.Infof("Evaluated applicant: maxLoan=%.0f dbr=%.1f offers=%d",
		result.MaxLoanAmount, result.DBR, len(result.RecommendedBanks))
	return validation, &result, nil
}

// ApplyStep advances a wizard draft by one reducer event and persists the
// new state. A missing draft starts from the initial state.
func (s *Service) ApplyStep(ctx context.Context, sessionID string, event session.Event) (models.FormState, error) {
	state, err := s.drafts.LoadDraft(ctx, sessionID)
	if err == cache.ErrDraftNotFound {
		state = session.Initial()
	} else if err != nil {
		return models.FormState{}, err
	}

	next := session.Apply(state, event)
	if err := s.drafts.SaveDraft(ctx, sessionID, next); err != nil {
		return models.FormState{}, err
	}
	return next, nil
}

// GetDraft returns the stored wizard state for a session.
func (s *Service) GetDraft(ctx context.Context, sessionID string) (models.FormState, error) {
	return s.drafts.LoadDraft(ctx, sessionID)
}

// SaveApplication evaluates the form and stores it with its result as a
// draft application for the authenticated user.
func (s *Service) SaveApplication(ctx context.Context, form models.FormState) (*models.Application, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	validation, result, err := s.Evaluate(form)
	if err != nil {
		return nil, err
	}
	if !validation.IsValid {
		return nil, fmt.Errorf("application is not valid: %v", validation.Errors)
	}

	app := &models.Application{
		UserID:      userID,
		FormState:   form,
		Result:      result,
		Status:      "draft",
		OfferStatus: "pending",
	}
	if err := s.repo.SaveApplication(app); err != nil {
		return nil, err
	}

	s.log.Infof("Application %d saved for user %d", app.ID, userID)
	return app, nil
}

// ListApplications returns the authenticated user's saved applications.
func (s *Service) ListApplications(ctx context.Context) ([]models.Application, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListApplications(userID)
}

// GetApplication returns one saved application owned by the caller.
func (s *Service) GetApplication(ctx context.Context, id int64) (*models.Application, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.FindApplication(id, userID)
}

// EmailSummary mails an eligibility result to the applicant.
func (s *Service) EmailSummary(to, firstName string, result models.EligibilityResult) error {
	return s.mailer.SendEligibilitySummary(to, firstName, result)
}

// MarketRates returns the stored EIBOR tenor rates.
func (s *Service) MarketRates() ([]models.EIBORRate, error) {
	return s.repo.ListEIBORRates()
}

// RefreshEIBORRates pulls the published feed and stores every tenor. Run on
// startup and nightly by cron.
func (s *Service) RefreshEIBORRates() error {
	rates, err := s.rates.FetchRates()
	if err != nil {
		return fmt.Errorf("failed to fetch EIBOR rates: %w", err)
	}
	for _, rate := range rates {
		if err := s.repo.UpsertEIBORRate(rate); err != nil {
			return err
		}
	}
	s.log.Infof("Refreshed %d EIBOR tenor rates", len(rates))
	return nil
}

func userIDFromContext(ctx context.Context) (int64, error) {
	userIDStr, ok := ctx.Value(middleware.UserIDKey).(string)
	if !ok || userIDStr == "" {
		return 0, fmt.Errorf("user ID not found in context")
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid user ID: %w", err)
	}
	return userID, nil
}
