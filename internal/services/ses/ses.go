// Package ses sends report emails via AWS SES
package ses

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"

	"sme-financial-health/internal/utils"
)

// ErrNoSender is returned when no sender address is configured.
var ErrNoSender = errors.New("SES sender email not configured")

// Service handles SES email operations
type Service struct {
	client    *ses.Client
	fromEmail string
}

// EmailParams represents parameters for sending an email
type EmailParams struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
	ReplyTo  string
}

// ReportEmailParams contains data for a report delivery email
type ReportEmailParams struct {
	To               string
	BusinessID       string
	Industry         string
	HealthScore      int
	RiskCategory     string
	RiskColor        string
	ExecutiveSummary string
	Format           string
	ReportURL        string
	ExpiresAt        time.Time
}

// SendEmailResult contains the result of sending an email
type SendEmailResult struct {
	MessageID string    `json:"message_id"`
	SentAt    time.Time `json:"sent_at"`
}

// NewService creates a new SES service that sends from sender.
func NewService(ctx context.Context, region, sender string) (*Service, error) {
	if sender == "" {
		return nil, ErrNoSender
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &Service{
		client:    ses.NewFromConfig(cfg),
		fromEmail: sender,
	}, nil
}

// SendEmail sends a basic email
func (s *Service) SendEmail(ctx context.Context, params EmailParams) (*SendEmailResult, error) {
	input := &ses.SendEmailInput{
		Source: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{params.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(params.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}

	if params.HTMLBody != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(params.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}

	if params.TextBody != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(params.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}

	if params.ReplyTo != "" {
		input.ReplyToAddresses = []string{params.ReplyTo}
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		utils.GetLogger().Error("Failed to send email",
			zap.String("to", params.To),
			zap.String("subject", params.Subject),
			zap.Error(err),
		)
		return nil, fmt.Errorf("failed to send email: %w", err)
	}

	utils.GetLogger().Info("Email sent successfully",
		zap.String("to", params.To),
		zap.String("subject", params.Subject),
		zap.String("messageId", aws.ToString(result.MessageId)),
	)

	return &SendEmailResult{
		MessageID: aws.ToString(result.MessageId),
		SentAt:    time.Now(),
	}, nil
}

// SendReportEmail emails a report summary with its download link.
func (s *Service) SendReportEmail(ctx context.Context, params ReportEmailParams) (*SendEmailResult, error) {
	htmlBody, err := renderReportHTML(params)
	if err != nil {
		return nil, fmt.Errorf("failed to render email template: %w", err)
	}

	return s.SendEmail(ctx, EmailParams{
		To:       params.To,
		Subject:  ReportSubject(params),
		HTMLBody: htmlBody,
		TextBody: renderReportText(params),
	})
}

// ReportSubject returns the subject line for a report email.
func ReportSubject(params ReportEmailParams) string {
	return fmt.Sprintf("Financial Health Report for %s: %d/100 (%s)", params.BusinessID, params.HealthScore, params.RiskCategory)
}

var reportTemplate = template.Must(template.New("report_email").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #003366; color: white; padding: 30px; border-radius: 10px 10px 0 0; text-align: center; }
        .header h1 { margin: 0; font-size: 22px; }
        .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
        .score { font-size: 36px; font-weight: bold; margin: 10px 0; }
        .risk-badge { display: inline-block; color: white; padding: 5px 12px; border-radius: 20px; font-weight: bold; }
        .summary { background: white; border-radius: 8px; padding: 20px; margin: 15px 0; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .cta-button { display: inline-block; background: #003366; color: white; padding: 15px 30px; text-decoration: none; border-radius: 8px; font-weight: bold; margin-top: 20px; }
        .footer { text-align: center; margin-top: 30px; color: #999; font-size: 12px; }
    </style>
</head>
<body>
    <div class="header">
        <h1>SME Financial Health Assessment</h1>
        <p>{{.BusinessID}}{{if .Industry}} &middot; {{.Industry}}{{end}}</p>
    </div>
    <div class="content">
        <div class="score">{{.HealthScore}}/100</div>
        <span class="risk-badge" style="background: {{.RiskColor}};">{{.RiskCategory}}</span>
        {{if .ExecutiveSummary}}
        <div class="summary">{{.ExecutiveSummary}}</div>
        {{end}}
        <div style="text-align: center;">
            <a href="{{.ReportURL}}" class="cta-button">Download {{.Format}} report</a>
        </div>
        <p style="font-size: 12px; color: #666;">This link expires at {{.ExpiresAt.UTC.Format "2006-01-02 15:04 MST"}}.</p>
    </div>
    <div class="footer">
        <p>This email was sent by the Financial Health Assessment Tool</p>
    </div>
</body>
</html>`))

// renderReportHTML renders the HTML email template
func renderReportHTML(params ReportEmailParams) (string, error) {
	if params.RiskColor == "" {
		params.RiskColor = "#6C757D"
	}

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderReportText renders plain text version
func renderReportText(params ReportEmailParams) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Financial Health Report for %s\n\n", params.BusinessID)
	fmt.Fprintf(&sb, "Health Score: %d/100\n", params.HealthScore)
	fmt.Fprintf(&sb, "Risk Category: %s\n\n", params.RiskCategory)
	if params.ExecutiveSummary != "" {
		sb.WriteString(params.ExecutiveSummary + "\n\n")
	}
	fmt.Fprintf(&sb, "Download the %s report: %s\n", params.Format, params.ReportURL)
	fmt.Fprintf(&sb, "The link expires at %s.\n\n", params.ExpiresAt.UTC().Format("2006-01-02 15:04 MST"))
	sb.WriteString("Financial Health Assessment Tool\n")

	return sb.String()
}
