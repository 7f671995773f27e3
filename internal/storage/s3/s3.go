package s3

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	aws_config "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"

	"github.com/bookit-dev/bookit/internal/config"
	internal_errors "github.com/bookit-dev/bookit/internal/errors"
	"github.com/bookit-dev/bookit/internal/logger"
)

// Uploader is the subset of the S3 client the gateway needs. Tests swap in
// a fake.
type Uploader interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Gateway relocates uploaded photos to object storage and hands back stable
// public URLs. The client is long-lived and safe for concurrent use.
type Gateway struct {
	client   Uploader
	bucket   string
	endpoint string
}

const uploadTimeout = 30 * time.Second

func New(ctx context.Context, cfg *config.Config) (*Gateway, error) {
	awsCfg, err := aws_config.LoadDefaultConfig(ctx,
		aws_config.WithRegion(cfg.Public.S3.Region),
		aws_config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey(),
			cfg.S3SecretKey(),
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Public.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Public.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &Gateway{client: client, bucket: cfg.Public.S3.Bucket, endpoint: cfg.Public.S3.Endpoint}, nil
}

// NewWithUploader builds a gateway around an existing client.
func NewWithUploader(client Uploader, bucket, endpoint string) *Gateway {
	return &Gateway{client: client, bucket: bucket, endpoint: endpoint}
}

// Store uploads one photo with public-read visibility and returns its URL.
func (g *Gateway) Store(ctx context.Context, data io.Reader, size int64, mimeType string) (string, error) {
	key := objectKey(mimeType)

	ctx, cancel := context.WithTimeout(ctx, uploadTimeout)
	defer cancel()

	_, err := g.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(g.bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(mimeType),
		ACL:           types.ObjectCannedACLPublicRead,
	})
	if err != nil {
		logger.Log.Error("s3 upload failed", "bucket", g.bucket, "key", key, "error", err)
		return "", &internal_errors.ErrorWithStatusCode{Message: "Error uploading files", StatusCode: http.StatusInternalServerError}
	}

	return g.publicURL(key), nil
}

// objectKey builds a collision-resistant object name with an extension
// derived from the MIME type.
func objectKey(mimeType string) string {
	ext := ""
	if exts, err := mime.ExtensionsByType(mimeType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return uuid.New().String() + ext
}

func (g *Gateway) publicURL(key string) string {
	if g.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimSuffix(g.endpoint, "/"), g.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", g.bucket, key)
}
