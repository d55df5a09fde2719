package sqs

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	awssqs "github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willipe53/onebor-position-keeper/internal/common/log"
	"github.com/willipe53/onebor-position-keeper/internal/config"
	"github.com/willipe53/onebor-position-keeper/internal/models"
)

func TestMain(m *testing.M) {
	log.InitForTest()
	m.Run()
}

type fakeSQS struct {
	sqsiface.SQSAPI

	attributesOut *awssqs.GetQueueAttributesOutput
	receiveIn     *awssqs.ReceiveMessageInput
	receiveOut    *awssqs.ReceiveMessageOutput
	deleteIn      *awssqs.DeleteMessageBatchInput
	deleteOut     *awssqs.DeleteMessageBatchOutput
	sendIn        *awssqs.SendMessageInput
	err           error
}

func (f *fakeSQS) GetQueueAttributesWithContext(_ aws.Context, _ *awssqs.GetQueueAttributesInput, _ ...request.Option) (*awssqs.GetQueueAttributesOutput, error) {
	return f.attributesOut, f.err
}

func (f *fakeSQS) ReceiveMessageWithContext(_ aws.Context, in *awssqs.ReceiveMessageInput, _ ...request.Option) (*awssqs.ReceiveMessageOutput, error) {
	f.receiveIn = in
	return f.receiveOut, f.err
}

func (f *fakeSQS) DeleteMessageBatchWithContext(_ aws.Context, in *awssqs.DeleteMessageBatchInput, _ ...request.Option) (*awssqs.DeleteMessageBatchOutput, error) {
	f.deleteIn = in
	return f.deleteOut, f.err
}

func (f *fakeSQS) SendMessageWithContext(_ aws.Context, in *awssqs.SendMessageInput, _ ...request.Option) (*awssqs.SendMessageOutput, error) {
	f.sendIn = in
	return &awssqs.SendMessageOutput{}, f.err
}

func testQueueConfig() config.QueueConfig {
	return config.QueueConfig{
		URL:               "https://sqs.us-east-1.amazonaws.com/123/transactions.fifo",
		MaxBatchMessages:  10,
		VisibilityTimeout: 30 * time.Second,
	}
}

func TestNewClient_RequiresURL(t *testing.T) {
	_, err := NewClient(&fakeSQS{}, config.QueueConfig{})
	assert.ErrorIs(t, err, ErrQueueURLRequired)
}

func TestApproximateDepth(t *testing.T) {
	fake := &fakeSQS{
		attributesOut: &awssqs.GetQueueAttributesOutput{
			Attributes: map[string]*string{
				awssqs.QueueAttributeNameApproximateNumberOfMessages: aws.String("17"),
			},
		},
	}
	c, err := NewClient(fake, testQueueConfig())
	require.NoError(t, err)

	depth, err := c.ApproximateDepth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(17), depth)
}

func TestApproximateDepth_MissingAttributeIsZero(t *testing.T) {
	fake := &fakeSQS{attributesOut: &awssqs.GetQueueAttributesOutput{}}
	c, err := NewClient(fake, testQueueConfig())
	require.NoError(t, err)

	depth, err := c.ApproximateDepth(context.Background())
	require.NoError(t, err)
	assert.Zero(t, depth)
}

func TestReceive_UsesVisibilityWithoutWaiting(t *testing.T) {
	fake := &fakeSQS{
		receiveOut: &awssqs.ReceiveMessageOutput{
			Messages: []*awssqs.Message{
				{
					MessageId:     aws.String("m-1"),
					ReceiptHandle: aws.String("rh-1"),
					Body:          aws.String(`{"transaction_id":42}`),
				},
			},
		},
	}
	c, err := NewClient(fake, testQueueConfig())
	require.NoError(t, err)

	messages, err := c.Receive(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "rh-1", messages[0].ReceiptHandle)
	assert.Equal(t, int64(30), aws.Int64Value(fake.receiveIn.VisibilityTimeout))
	assert.Equal(t, int64(0), aws.Int64Value(fake.receiveIn.WaitTimeSeconds))
	assert.Equal(t, int64(10), aws.Int64Value(fake.receiveIn.MaxNumberOfMessages))
}

func TestDeleteBatch(t *testing.T) {
	fake := &fakeSQS{deleteOut: &awssqs.DeleteMessageBatchOutput{}}
	c, err := NewClient(fake, testQueueConfig())
	require.NoError(t, err)

	err = c.DeleteBatch(context.Background(), []Message{
		{ReceiptHandle: "rh-1"},
		{ReceiptHandle: "rh-2"},
	})
	require.NoError(t, err)
	require.Len(t, fake.deleteIn.Entries, 2)
	assert.Equal(t, "rh-2", aws.StringValue(fake.deleteIn.Entries[1].ReceiptHandle))
}

func TestDeleteBatch_Empty(t *testing.T) {
	c, err := NewClient(&fakeSQS{}, testQueueConfig())
	require.NoError(t, err)
	assert.ErrorIs(t, c.DeleteBatch(context.Background(), nil), ErrEmptyBatch)
}

func TestDeleteBatch_PartialFailure(t *testing.T) {
	fake := &fakeSQS{
		deleteOut: &awssqs.DeleteMessageBatchOutput{
			Failed: []*awssqs.BatchResultErrorEntry{
				{Id: aws.String("0"), Code: aws.String("ReceiptHandleIsInvalid")},
			},
		},
	}
	c, err := NewClient(fake, testQueueConfig())
	require.NoError(t, err)

	err = c.DeleteBatch(context.Background(), []Message{{ReceiptHandle: "rh-1"}})
	assert.Error(t, err)
}

func TestPublish_SetsGroupAndDedup(t *testing.T) {
	fake := &fakeSQS{}
	c, err := NewClient(fake, testQueueConfig())
	require.NoError(t, err)

	msg := models.QueueMessage{
		Operation:         models.QueueOperationCreate,
		TransactionID:     42,
		PortfolioEntityID: 7,
		TransactionTypeID: 3,
		StatusID:          models.TransactionStatusQueued,
		Timestamp:         "2026-08-31T10:00:00Z",
	}
	require.NoError(t, c.Publish(context.Background(), msg))
	assert.Equal(t, "transaction-42", aws.StringValue(fake.sendIn.MessageGroupId))
	assert.Equal(t, "42-create-2026-08-31T10:00:00Z", aws.StringValue(fake.sendIn.MessageDeduplicationId))
}
