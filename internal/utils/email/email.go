package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/thekey8/prequal-service/internal/config"
	"github.com/thekey8/prequal-service/internal/models"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendEligibilitySummary mails the applicant their headline affordability
// figures and the recommended offers.
func (s *Sender) SendEligibilitySummary(to, firstName string, result models.EligibilityResult) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = "Your Mortgage Pre-Qualification Summary"

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", firstName)
	fmt.Fprintf(&body,
		"Based on the details you provided, here is your pre-qualification summary:\n\n"+
			"Maximum loan amount: AED %.0f\n"+
			"Maximum LTV: %.0f%%\n"+
			"Loan tenure: %d years\n"+
			"Current DBR: %.1f%%\n"+
			"Stress-tested DBR: %.1f%%\n"+
			"Required down payment: AED %.0f\n",
		result.MaxLoanAmount, result.MaxLTV, result.MaxLoanTenure,
		result.DBR, result.StressTestDBR, result.RequiredDownPayment,
	)

	if len(result.RecommendedBanks) == 0 {
		body.WriteString("\nNo eligible bank offers were found for the current inputs. " +
			"One of our advisors will reach out to discuss your options.\n")
	} else {
		body.WriteString("\nRecommended offers:\n")
		for i, offer := range result.RecommendedBanks {
			fmt.Fprintf(&body,
				"%d. %s - %s at %.2f%%, up to AED %.0f, estimated EMI AED %.0f/month\n",
				i+1, offer.Bank, offer.Product, offer.Rate, offer.MaxLoanAmount, offer.EMI,
			)
		}
	}
	body.WriteString("\nThese figures are indicative and subject to bank approval.\n\nBest regards,\nTheKey8 Advisory Team")
	e.Text = []byte(body.String())

	// Send email
	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
