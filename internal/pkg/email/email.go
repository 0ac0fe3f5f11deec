package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// mailjetSendURL is the transactional send endpoint of the mail provider.
const mailjetSendURL = "https://api.mailjet.com/v3.1/send"

// ConfirmationData carries the candidate fields rendered into the
// admission confirmation email.
type ConfirmationData struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Faculty    string `json:"faculty"`
	Department string `json:"department"`
}

// EmailService defines the interface for outbound email operations
type EmailService interface {
	SendConfirmationEmail(ctx context.Context, data ConfirmationData) error
}

// MailjetConfig holds the credential pair and sender identity for the
// Mailjet send API.
type MailjetConfig struct {
	APIKeyPublic  string
	APIKeyPrivate string
	FromEmail     string
	FromName      string
}

// MailjetService implements EmailService against the Mailjet v3.1 API.
type MailjetService struct {
	config     MailjetConfig
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewMailjetService creates a new MailjetService
func NewMailjetService(config MailjetConfig, logger zerolog.Logger) *MailjetService {
	return &MailjetService{
		config: config,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

type mailjetRecipient struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type mailjetMessage struct {
	From     mailjetRecipient   `json:"From"`
	To       []mailjetRecipient `json:"To"`
	Subject  string             `json:"Subject"`
	HTMLPart string             `json:"HTMLPart"`
}

type mailjetPayload struct {
	Messages []mailjetMessage `json:"Messages"`
}

// SendConfirmationEmail sends the templated admission confirmation to
// the candidate. When the credential pair is not configured the email is
// only logged; callers treat this as success since the email is
// best-effort either way.
func (s *MailjetService) SendConfirmationEmail(ctx context.Context, data ConfirmationData) error {
	if s.config.APIKeyPublic == "" || s.config.APIKeyPrivate == "" {
		s.logger.Warn().
			Str("toEmail", data.Email).
			Str("faculty", data.Faculty).
			Msg("Mailjet credentials not configured - confirmation email not sent")
		return nil
	}

	payload := mailjetPayload{
		Messages: []mailjetMessage{
			{
				From: mailjetRecipient{Email: s.config.FromEmail, Name: s.config.FromName},
				To: []mailjetRecipient{
					{Email: data.Email, Name: fmt.Sprintf("%s %s", data.FirstName, data.LastName)},
				},
				Subject:  "Candidature Envoyée ! - UPG",
				HTMLPart: confirmationBody(data),
			},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, mailjetSendURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(s.config.APIKeyPublic, s.config.APIKeyPrivate)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error().Err(err).Str("toEmail", data.Email).Msg("Failed to reach mail provider")
		return fmt.Errorf("failed to send confirmation email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		s.logger.Error().Int("status", resp.StatusCode).Str("toEmail", data.Email).Msg("Mail provider rejected the message")
		return fmt.Errorf("mail provider returned status %d", resp.StatusCode)
	}

	s.logger.Info().Str("toEmail", data.Email).Msg("Confirmation email sent")
	return nil
}

// confirmationBody renders the admission confirmation HTML.
func confirmationBody(data ConfirmationData) string {
	return fmt.Sprintf(`
		<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 600px; margin: auto; border: 1px solid #002B5B; border-radius: 16px; overflow: hidden;">
			<div style="background-color: #002B5B; padding: 30px; text-align: center;">
				<h1 style="color: #D4AF37; margin: 0; font-size: 24px; text-transform: uppercase; letter-spacing: 2px;">Candidature Envoyée !</h1>
			</div>
			<div style="padding: 40px; background-color: #ffffff; text-align: center;">
				<h2 style="color: #002B5B; font-size: 22px; margin-bottom: 20px;">Félicitations %s %s</h2>
				<p style="font-size: 16px; color: #444; line-height: 1.8; margin-bottom: 25px;">
					Votre dossier a été enregistré avec succès pour la faculté de <strong>%s</strong>.
				</p>
				<div style="background-color: #f8f9fa; border-left: 5px solid #D4AF37; padding: 20px; margin: 25px 0; text-align: left;">
					<p style="margin: 0; font-size: 14px; color: #002B5B;"><strong>Département choisi :</strong> %s</p>
				</div>
				<p style="font-size: 15px; color: #666; margin-top: 30px;">
					Notre commission académique examinera vos pièces justificatives sous peu.
				</p>
			</div>
			<div style="background-color: #002B5B; padding: 20px; text-align: center; font-size: 11px; color: #ffffff; letter-spacing: 1px;">
				© %d UNIVERSITÉ POLYTECHNIQUE DE GOMA<br/>
				Excellence &amp; Innovation Technologique
			</div>
		</div>
	`, data.FirstName, data.LastName, data.Faculty, data.Department, time.Now().Year())
}
