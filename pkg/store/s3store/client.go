// Package s3store writes every document as a JSON object to S3 or an
// S3-compatible service.
package s3store

import (
	"context"
	"errors"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Client is the subset of *s3.Client used by this package.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadBucket(ctx context.Context, params *s3.HeadBucketInput, optFns ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
}

// Option configures NewClient.
type Option func(*clientOptions)

type clientOptions struct {
	httpClient    *http.Client
	configOptions []func(*config.LoadOptions) error
}

// WithHTTPClient sets the HTTP client used for S3 requests.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = c }
}

// WithConfigOption adds an AWS config load option.
func WithConfigOption(opt func(*config.LoadOptions) error) Option {
	return func(o *clientOptions) { o.configOptions = append(o.configOptions, opt) }
}

// NewClient builds an *s3.Client from cfg. Static credentials are used when
// both keys are set, the default AWS chain otherwise.
func NewClient(ctx context.Context, cfg Config, opts ...Option) (*s3.Client, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	awsOptions := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
		awsOptions = append(awsOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretKey, ""),
		))
	}
	if o.httpClient != nil {
		awsOptions = append(awsOptions, config.WithHTTPClient(o.httpClient))
	}
	awsOptions = append(awsOptions, o.configOptions...)

	awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadConfig, err)
	}

	return s3.NewFromConfig(awsConfig, func(so *s3.Options) {
		if cfg.Endpoint != "" {
			so.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		so.UsePathStyle = cfg.ForcePathStyle
	}), nil
}

// Healthcheck checks that the bucket exists and is reachable.
func Healthcheck(client Client, bucket string) func(context.Context) error {
	return func(ctx context.Context) error {
		if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucket)}); err != nil {
			return errors.Join(ErrHealthcheckFailed, classify(err, "head bucket"))
		}
		return nil
	}
}
