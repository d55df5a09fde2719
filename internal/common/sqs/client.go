package sqs

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	awssqs "github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
)

//go:generate mockgen -source=client.go -destination=mock/client.go -package=mock

// Client is the narrow queue surface the position keeper needs: a cheap depth
// probe, short-visibility receive, batch delete, and the publish side used by
// upstream writers.
type Client interface {
	ApproximateDepth(ctx context.Context) (int64, error)
	Receive(ctx context.Context) ([]Message, error)
	DeleteBatch(ctx context.Context, messages []Message) error
	Publish(ctx context.Context, msg models.QueueMessage) error
}

type client struct {
	api sqsiface.SQSAPI
	cfg config.QueueConfig
}

var _ Client = (*client)(nil)

func NewClient(api sqsiface.SQSAPI, cfg config.QueueConfig) (Client, error) {
	if cfg.URL == "" {
		return nil, ErrQueueURLRequired
	}
	if cfg.MaxBatchMessages <= 0 || cfg.MaxBatchMessages > 10 {
		cfg.MaxBatchMessages = config.DefaultMaxBatchMessages
	}
	if cfg.VisibilityTimeout <= 0 {
		cfg.VisibilityTimeout = config.DefaultVisibilityTimeout
	}
	return &client{api: api, cfg: cfg}, nil
}

// ApproximateDepth reads ApproximateNumberOfMessages. The count is eventually
// consistent, which is fine: it only gates whether a drain pass starts at all.
func (c *client) ApproximateDepth(ctx context.Context) (int64, error) {
	out, err := c.api.GetQueueAttributesWithContext(ctx, &awssqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(c.cfg.URL),
		AttributeNames: []*string{aws.String(awssqs.QueueAttributeNameApproximateNumberOfMessages)},
	})
	if err != nil {
		return 0, fmt.Errorf("get queue attributes: %w", err)
	}
	raw, ok := out.Attributes[awssqs.QueueAttributeNameApproximateNumberOfMessages]
	if !ok || raw == nil {
		return 0, nil
	}
	depth, err := strconv.ParseInt(aws.StringValue(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse queue depth %q: %w", aws.StringValue(raw), err)
	}
	return depth, nil
}

// Receive polls once without waiting. Messages come back invisible for the
// configured visibility timeout; anything not deleted within that window
// reappears for the next pass.
func (c *client) Receive(ctx context.Context) ([]Message, error) {
	out, err := c.api.ReceiveMessageWithContext(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:            aws.String(c.cfg.URL),
		MaxNumberOfMessages: aws.Int64(c.cfg.MaxBatchMessages),
		VisibilityTimeout:   aws.Int64(int64(c.cfg.VisibilityTimeout.Seconds())),
		WaitTimeSeconds:     aws.Int64(0),
	})
	if err != nil {
		return nil, fmt.Errorf("receive message: %w", err)
	}

	messages := make([]Message, 0, len(out.Messages))
	for _, m := range out.Messages {
		messages = append(messages, Message{
			ID:            aws.StringValue(m.MessageId),
			ReceiptHandle: aws.StringValue(m.ReceiptHandle),
			Body:          []byte(aws.StringValue(m.Body)),
		})
	}
	return messages, nil
}

func (c *client) DeleteBatch(ctx context.Context, messages []Message) error {
	if len(messages) == 0 {
		return ErrEmptyBatch
	}

	entries := make([]*awssqs.DeleteMessageBatchRequestEntry, 0, len(messages))
	for i, m := range messages {
		entries = append(entries, &awssqs.DeleteMessageBatchRequestEntry{
			Id:            aws.String(strconv.Itoa(i)),
			ReceiptHandle: aws.String(m.ReceiptHandle),
		})
	}

	out, err := c.api.DeleteMessageBatchWithContext(ctx, &awssqs.DeleteMessageBatchInput{
		QueueUrl: aws.String(c.cfg.URL),
		Entries:  entries,
	})
	if err != nil {
		return fmt.Errorf("delete message batch: %w", err)
	}
	for _, failed := range out.Failed {
		log.Warn(ctx, "[QUEUE] failed to delete message",
			log.String("entry_id", aws.StringValue(failed.Id)),
			log.String("code", aws.StringValue(failed.Code)),
			log.String("message", aws.StringValue(failed.Message)),
		)
	}
	if len(out.Failed) > 0 {
		return fmt.Errorf("delete message batch: %d of %d entries failed", len(out.Failed), len(entries))
	}
	return nil
}

// Publish sends one transaction event to the FIFO queue. The group id pins all
// events for a transaction to a single ordered lane; the dedup id collapses
// retried sends of the same snapshot.
func (c *client) Publish(ctx context.Context, msg models.QueueMessage) error {
	body, err := msg.Marshal()
	if err != nil {
		return fmt.Errorf("marshal queue message: %w", err)
	}
	_, err = c.api.SendMessageWithContext(ctx, &awssqs.SendMessageInput{
		QueueUrl:               aws.String(c.cfg.URL),
		MessageBody:            aws.String(string(body)),
		MessageGroupId:         aws.String(msg.GroupID()),
		MessageDeduplicationId: aws.String(msg.DeduplicationID()),
	})
	if err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}
