// Package publish uploads rendered pages to S3-compatible object storage.
package publish

import (
	"bytes"
	"context"
	"os"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/forge/internal/config"
	"github.com/vango-dev/forge/internal/errors"
)

// Client is the part of the S3 API the publisher needs.
type Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Publisher uploads pages under a key prefix in one bucket.
type Publisher struct {
	client       Client
	bucket       string
	prefix       string
	cacheControl string
	now          func() time.Time
}

// New creates a Publisher from the publish section of the config.
func New(client Client, cfg config.PublishConfig) (*Publisher, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("E060")
	}
	return &Publisher{
		client:       client,
		bucket:       cfg.Bucket,
		prefix:       strings.Trim(cfg.Prefix, "/"),
		cacheControl: cfg.CacheControl,
		now:          time.Now,
	}, nil
}

// Key returns the object key a page named name is stored under. It is
// empty when name has no path left after cleaning.
func (p *Publisher) Key(name string) string {
	name = strings.TrimPrefix(path.Clean("/"+name), "/")
	if name == "" || p.prefix == "" {
		return name
	}
	return p.prefix + "/" + name
}

// Publish uploads html as name and returns the object key. layout is
// recorded in the object metadata.
func (p *Publisher) Publish(ctx context.Context, name, layout string, html []byte) (string, error) {
	key := p.Key(name)
	if key == "" {
		return "", errors.New("E061").
			WithDetailf("object name %q is empty after cleaning.", name).
			WithSuggestion("Pass a file name such as --name index.html")
	}
	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(html),
		ContentLength: aws.Int64(int64(len(html))),
		ContentType:   aws.String("text/html; charset=utf-8"),
		Metadata: map[string]string{
			"forge-layout": path.Base(layout),
			"published-at": p.now().UTC().Format(time.RFC3339),
		},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", errors.New("E061").
			WithDetailf("s3://%s/%s", p.bucket, key).
			Wrap(err)
	}
	return key, nil
}

// NewClient builds an S3 client for cfg. Credentials are read from the
// standard AWS environment variables.
func NewClient(cfg config.PublishConfig) *s3.Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	if opts.Region == "" {
		opts.Region = os.Getenv("AWS_REGION")
	}
	if opts.Region == "" {
		opts.Region = "us-east-1"
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials(ctx context.Context) (aws.Credentials, error) {
	creds := aws.Credentials{
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "Environment",
	}
	if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
		return aws.Credentials{}, errors.New("E060").
			WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set.")
	}
	return creds, nil
}
