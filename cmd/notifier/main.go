package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"go.uber.org/zap"

	awsclient "github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/aws"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/client/whatsapp"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/helpers"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/interfaces"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/services"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
)

// Application holds the worker dependencies
type Application struct {
	notifier   interfaces.NotificationService
	logger     *zap.Logger
	maxRetries int
}

// DeliveryResult records the outcome of one queued notification job
type DeliveryResult struct {
	MessageID   string `json:"message_id"`
	Channel     string `json:"channel"`
	Reference   string `json:"reference"`
	Delivered   bool   `json:"delivered"`
	ShouldRetry bool   `json:"should_retry"`
	Error       string `json:"error,omitempty"`
}

// HandleSQSEvent delivers each queued notification job
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Notifier handling SQS event",
		zap.Int("record_count", len(event.Records)))

	results := make([]DeliveryResult, 0, len(event.Records))
	hasFailures := false

	for _, record := range event.Records {
		result := app.processRecord(ctx, record)
		results = append(results, result)

		if !result.Delivered && result.ShouldRetry {
			hasFailures = true
		}
	}

	// Log summary
	successCount := 0
	for _, result := range results {
		if result.Delivered {
			successCount++
		}
	}

	logger.Info("Notification delivery completed",
		zap.Int("total", len(results)),
		zap.Int("success", successCount),
		zap.Int("failed", len(results)-successCount),
		zap.Bool("has_failures", hasFailures))

	// Returning an error sends the batch back to the queue for redelivery
	if hasFailures {
		return fmt.Errorf("failed to deliver %d of %d notifications", len(results)-successCount, len(results))
	}

	return nil
}

// processRecord delivers a single queued notification
func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) DeliveryResult {
	result := DeliveryResult{
		MessageID: record.MessageId,
	}

	// Parse the notification job
	var notification params.NotificationParams
	if err := json.Unmarshal([]byte(record.Body), &notification); err != nil {
		// A malformed body will never deliver, so drop it instead of retrying
		logger.Error("Failed to unmarshal notification job",
			zap.String("message_id", record.MessageId),
			zap.Error(err))
		result.Error = fmt.Sprintf("unmarshal error: %v", err)
		return result
	}

	result.Channel = notification.Channel
	result.Reference = notification.Reference

	// SQS counts every delivery attempt for us
	receiveCount := 1
	if raw, ok := record.Attributes["ApproximateReceiveCount"]; ok {
		if parsed, err := strconv.Atoi(raw); err == nil {
			receiveCount = parsed
		}
	}

	// Check if we've exceeded max retries
	if receiveCount > app.maxRetries {
		logger.Warn("Max delivery attempts exceeded, dropping notification",
			zap.String("message_id", record.MessageId),
			zap.String("channel", notification.Channel),
			zap.String("reference", notification.Reference),
			zap.Int("receive_count", receiveCount))
		result.Error = "max delivery attempts exceeded"
		result.ShouldRetry = false
		return result
	}

	// Attempt delivery on the notification's channel
	if err := app.notifier.Deliver(ctx, notification); err != nil {
		logger.Error("Failed to deliver notification",
			zap.String("message_id", record.MessageId),
			zap.String("channel", notification.Channel),
			zap.String("reference", notification.Reference),
			zap.Int("receive_count", receiveCount),
			zap.Error(err))
		result.Error = err.Error()
		result.ShouldRetry = true
		return result
	}

	result.Delivered = true

	logger.Info("Notification delivered from queue",
		zap.String("message_id", record.MessageId),
		zap.String("channel", notification.Channel),
		zap.String("reference", notification.Reference))

	return result
}

func main() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
	}
	if !helpers.IsValidStage(stage) {
		panic(fmt.Sprintf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal))
	}

	// Initialize logger
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing notifier for stage", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	// Initialize AWS Secrets Manager Client
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// The worker exists to deliver email and WhatsApp jobs, so unlike the
	// API it cannot run with either channel unconfigured
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Fatal("Failed to get Resend API Key", zap.Error(err))
	}

	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		fromEmail = "bookings@gaithtours.com"
	}
	fromName := os.Getenv("EMAIL_FROM_NAME")
	if fromName == "" {
		fromName = "Gaith Tours"
	}
	emailService := services.NewEmailService(resendAPIKey, fromEmail, fromName)

	whatsappBaseURL := os.Getenv("WHATSAPP_BASE_URL")
	if whatsappBaseURL == "" {
		logger.Fatal("WHATSAPP_BASE_URL environment variable is required")
	}
	whatsappSenderID := os.Getenv("WHATSAPP_SENDER_ID")
	if whatsappSenderID == "" {
		logger.Fatal("WHATSAPP_SENDER_ID environment variable is required")
	}
	var whatsappCreds whatsapp.WhatsAppConfig
	err = secretsClient.GetSecretJSON(ctx, "WHATSAPP_CREDENTIALS_ARN", "WHATSAPP_CREDENTIALS", &whatsappCreds)
	if err != nil || whatsappCreds.AccountSID == "" || whatsappCreds.AuthToken == "" {
		logger.Fatal("Failed to get WhatsApp gateway credentials", zap.Error(err))
	}
	whatsappCreds.BaseURL = whatsappBaseURL
	whatsappCreds.SenderID = whatsappSenderID
	whatsappClient := whatsapp.NewWhatsAppClient(whatsappCreds)

	maxRetries := 3
	if raw := os.Getenv("NOTIFIER_MAX_RETRIES"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			maxRetries = parsed
		}
	}

	app := &Application{
		// The worker is the end of the pipeline, so no queue is wired back in
		notifier:   services.NewNotificationService(emailService, whatsappClient, nil),
		logger:     logger.Log,
		maxRetries: maxRetries,
	}

	logger.Info("Starting notifier", zap.Int("max_retries", maxRetries))
	lambda.Start(app.HandleSQSEvent)
}
