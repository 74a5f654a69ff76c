package notifier

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailSender delivers order confirmations. The SES implementation is used in
// production; tests substitute a recorder.
type EmailSender interface {
	SendOrderConfirmation(ctx context.Context, recipient, customerName string, orderID uint, total float64) error
}

type SESConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Sender          string
}

type SESEmailSender struct {
	client *ses.Client
	sender string
}

func NewSESEmailSender(ctx context.Context, cfg SESConfig) (*SESEmailSender, error) {
	if cfg.Sender == "" {
		return nil, fmt.Errorf("notifier: sender email address is not configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("notifier: load aws config: %w", err)
	}

	return &SESEmailSender{
		client: ses.NewFromConfig(awsCfg),
		sender: cfg.Sender,
	}, nil
}

func (s *SESEmailSender) SendOrderConfirmation(ctx context.Context, recipient, customerName string, orderID uint, total float64) error {
	if recipient == "" {
		return fmt.Errorf("notifier: recipient email address is empty")
	}

	subject := fmt.Sprintf("Order #%d Confirmation", orderID)
	totalStr := strconv.FormatFloat(total, 'f', 2, 64)

	bodyHTML := fmt.Sprintf(`
        <html>
        <body>
            <p>Dear %s,</p>
            <p>Thank you for your order! Your order #%d has been successfully placed.</p>
            <p><strong>Order Details:</strong></p>
            <ul>
                <li>Order ID: %d</li>
                <li>Total Amount: %s</li>
            </ul>
            <p>Best regards,</p>
            <p>The Back Office Team</p>
        </body>
        </html>`, customerName, orderID, orderID, totalStr)

	bodyText := fmt.Sprintf(
		"Dear %s,\n\nThank you for your order! Your order #%d has been successfully placed.\n\n"+
			"Order Details:\nOrder ID: %d\nTotal Amount: %s\n\n"+
			"Best regards,\nThe Back Office Team",
		customerName, orderID, orderID, totalStr)

	input := &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Charset: aws.String("UTF-8"),
				Data:    aws.String(subject),
			},
			Body: &types.Body{
				Html: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyHTML),
				},
				Text: &types.Content{
					Charset: aws.String("UTF-8"),
					Data:    aws.String(bodyText),
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("notifier: send email: %w", err)
	}
	return nil
}
