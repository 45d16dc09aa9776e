package sns

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/tasker-otp/internal/config"
	"github.com/tasker-otp/internal/domain"
)

// Publisher is the subset of the SNS client the notifier uses.
type Publisher interface {
	Publish(ctx context.Context, in *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Notifier publishes task summaries to an SNS topic; subscribers (mobile
// push, email, SMS) fan them out to the user.
type Notifier struct {
	client   Publisher
	topicARN string
}

// NewNotifier builds an SNS client from cfg. When cfg.AWSEndpointURL is set
// (LocalStack), all traffic goes to that endpoint.
func NewNotifier(ctx context.Context, cfg config.Reminder) (*Notifier, error) {
	if cfg.SNSTopicARN == "" {
		return nil, errors.New("SNS topic ARN is required")
	}
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.AWSRegion))
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	clientOpts := []func(*sns.Options){}
	if cfg.AWSEndpointURL != "" {
		clientOpts = append(clientOpts, func(o *sns.Options) {
			o.BaseEndpoint = aws.String(cfg.AWSEndpointURL)
		})
	}
	return NewNotifierWithClient(sns.NewFromConfig(awsCfg, clientOpts...), cfg.SNSTopicARN), nil
}

func NewNotifierWithClient(client Publisher, topicARN string) *Notifier {
	return &Notifier{client: client, topicARN: topicARN}
}

func (n *Notifier) Notify(ctx context.Context, msg domain.Notification) error {
	_, err := n.client.Publish(ctx, publishInput(n.topicARN, msg))
	if err != nil {
		return fmt.Errorf("publish task summary: %w", err)
	}
	return nil
}

func publishInput(topicARN string, msg domain.Notification) *sns.PublishInput {
	return &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Subject:  aws.String(msg.Title),
		Message:  aws.String(msg.Body),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"incomplete_count": {
				DataType:    aws.String("Number"),
				StringValue: aws.String(strconv.Itoa(msg.Count)),
			},
		},
	}
}
