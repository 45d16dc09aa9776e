package sns

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tasker-otp/internal/config"
	"github.com/tasker-otp/internal/domain"
)

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, in *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	args := m.Called(ctx, in)
	out, _ := args.Get(0).(*sns.PublishOutput)
	return out, args.Error(1)
}

const topic = "arn:aws:sns:us-east-1:000000000000:task-reminders"

func TestNotify_PublishesSummary(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.MatchedBy(func(in *sns.PublishInput) bool {
		return aws.ToString(in.TopicArn) == topic &&
			aws.ToString(in.Subject) == "Task Reminder" &&
			aws.ToString(in.Message) == "You still have 2 tasks to complete" &&
			aws.ToString(in.MessageAttributes["incomplete_count"].StringValue) == "2"
	})).Return(&sns.PublishOutput{MessageId: aws.String("m1")}, nil).Once()

	err := NewNotifierWithClient(pub, topic).Notify(context.Background(), domain.NewTaskSummary(2))
	require.NoError(t, err)
	pub.AssertExpectations(t)
}

func TestNotify_PublishError_Wrapped(t *testing.T) {
	pub := &mockPublisher{}
	pub.On("Publish", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

	err := NewNotifierWithClient(pub, topic).Notify(context.Background(), domain.NewTaskSummary(1))
	assert.ErrorContains(t, err, "publish task summary: throttled")
}

func TestNewNotifier_RequiresTopic(t *testing.T) {
	_, err := NewNotifier(context.Background(), config.Reminder{})
	assert.ErrorContains(t, err, "topic ARN")
}

func TestNewNotifier_StaticCredentials(t *testing.T) {
	n, err := NewNotifier(context.Background(), config.Reminder{
		SNSTopicARN:    topic,
		AWSRegion:      "us-east-1",
		AWSEndpointURL: "http://localhost:4566",
		AWSAccessKeyID: "test",
		AWSSecretKey:   "test",
	})
	require.NoError(t, err)
	assert.Equal(t, topic, n.topicARN)
}
