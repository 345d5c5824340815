package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/leo-edge/hr-payroll-backend-go/internal/config"
	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending payroll notifications
type EmailService interface {
	SendSalaryPaid(to, employeeName, cycleStart, cycleEnd string, payable decimal.Decimal, paidAt string) error
	SendReferralBonusDue(to, referrerName, employeeName, employeeID string, paidCycles int) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type salaryPaidEmailData struct {
	EmployeeName string
	CycleStart   string
	CycleEnd     string
	Payable      string
	PaidAt       string
}

// SendSalaryPaid notifies an employee that the cycle's salary was finalized
func (s *emailServiceImpl) SendSalaryPaid(to, employeeName, cycleStart, cycleEnd string, payable decimal.Decimal, paidAt string) error {
	data := salaryPaidEmailData{
		EmployeeName: employeeName,
		CycleStart:   cycleStart,
		CycleEnd:     cycleEnd,
		Payable:      payable.StringFixed(2),
		PaidAt:       paidAt,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "salary_paid.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Salary Paid for %s - %s", cycleStart, cycleEnd), body.String())
}

type referralBonusEmailData struct {
	ReferrerName string
	EmployeeName string
	EmployeeID   string
	PaidCycles   int
}

// SendReferralBonusDue notifies the owner that a referral bonus became due
func (s *emailServiceImpl) SendReferralBonusDue(to, referrerName, employeeName, employeeID string, paidCycles int) error {
	data := referralBonusEmailData{
		ReferrerName: referrerName,
		EmployeeName: employeeName,
		EmployeeID:   employeeID,
		PaidCycles:   paidCycles,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "referral_bonus.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Referral Bonus Due: %s referred by %s", employeeName, referrerName), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
