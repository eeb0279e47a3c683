package aws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/logger"
	"github.com/MahmoudMetwally2699/gaithTours-sub003/internal/types/api/params"
)

// QueuePublisher sends notification jobs to the SQS queue drained by the
// notifier worker.
type QueuePublisher struct {
	client   *sqs.Client
	queueURL string
}

// NewQueuePublisher creates a publisher bound to the given queue URL.
func NewQueuePublisher(ctx context.Context, queueURL string) (*QueuePublisher, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("notification queue URL is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &QueuePublisher{
		client:   sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// PublishNotification enqueues a notification job. The channel and reference
// ride as message attributes so the worker can route and deduplicate without
// parsing the body.
func (p *QueuePublisher) PublishNotification(ctx context.Context, notification params.NotificationParams) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	_, err = p.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(p.queueURL),
		MessageBody: aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"Channel": {
				StringValue: aws.String(notification.Channel),
				DataType:    aws.String("String"),
			},
			"Reference": {
				StringValue: aws.String(notification.Reference),
				DataType:    aws.String("String"),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	logger.Log.Debug("Notification queued",
		zap.String("channel", notification.Channel),
		zap.String("reference", notification.Reference),
	)

	return nil
}
