package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"
	"lodging/config"
	"lodging/infras/otel"
	"lodging/shared/constant"
	"net/url"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
)

const (
	otelAttrFileName = "file_name"
	otelAttrBucket   = "bucket"
)

type S3 interface {
	UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (url string, err error)
	DeleteFile(ctx context.Context, bucketName, directory, objectName string) error
	Enabled() bool
}

type s3Impl struct {
	client *s3.Client
	cfg    *config.Config
	otel   otel.Otel
}

func (svc *s3Impl) Enabled() bool {
	return true
}

func (svc *s3Impl) bucket(name string) string {
	if name != "" {
		return name
	}

	return svc.cfg.External.S3.BucketName
}

// ObjectKey joins directory and name into a key without a leading slash.
func ObjectKey(directory, name string) string {
	return strings.TrimPrefix(path.Join(directory, name), "/")
}

// PublicURL is the address an archived object is served from.
func PublicURL(domain, key string) string {
	link, err := url.JoinPath(domain, key)
	if err != nil {
		return strings.TrimSuffix(domain, "/") + "/" + key
	}

	return link
}

func (svc *s3Impl) trace(ctx context.Context, operation, bucket, key string) (context.Context, otel.Scope) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+"."+operation)
	scope.SetAttributes(map[string]any{
		otelAttrFileName: key,
		otelAttrBucket:   bucket,
	})

	return ctx, scope
}

func (svc *s3Impl) UploadFileBytes(ctx context.Context, bucketName, directory, fileName, contentType string, fileData []byte) (link string, err error) {
	bucket, key := svc.bucket(bucketName), ObjectKey(directory, fileName)

	ctx, scope := svc.trace(ctx, "UploadFileBytes", bucket, key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	_, err = svc.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileData),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileData))),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("failed to upload object")

		return constant.Empty, fmt.Errorf("failed to upload object %s: %w", key, err)
	}

	log.Debug().Str("bucket", bucket).Str("key", key).Int("bytes", len(fileData)).Msg("object uploaded")

	return PublicURL(svc.cfg.External.S3.PublicDomain, key), nil
}

func (svc *s3Impl) DeleteFile(ctx context.Context, bucketName, directory, objectName string) (err error) {
	bucket, key := svc.bucket(bucketName), ObjectKey(directory, objectName)

	ctx, scope := svc.trace(ctx, "DeleteFile", bucket, key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = svc.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}); err != nil {
		log.Error().Err(err).Str("bucket", bucket).Str("key", key).Msg("failed to delete object")

		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}

	return nil
}

// disabled stands in when archiving is off; uploads return an empty URL.
type disabled struct{}

func (disabled) Enabled() bool {
	return false
}

func (disabled) UploadFileBytes(_ context.Context, _, _, _, _ string, _ []byte) (string, error) {
	return constant.Empty, nil
}

func (disabled) DeleteFile(_ context.Context, _, _, _ string) error {
	return nil
}

// New builds a path-style client for an S3 compatible endpoint.
func New(cfg *config.Config, otel otel.Otel) S3 {
	settings := cfg.External.S3
	if !settings.Enable {
		log.Info().Msg("object storage disabled, documents will not be archived")

		return disabled{}
	}

	awsCfg, err := awsConfig.LoadDefaultConfig(context.Background(),
		awsConfig.WithRegion(settings.Region),
		awsConfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			settings.AccessKeyID,
			settings.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to load object storage configuration, documents will not be archived")

		return disabled{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if settings.APIEndpoint != "" {
			o.BaseEndpoint = aws.String(settings.APIEndpoint)
		}

		o.UsePathStyle = true
	})

	log.Info().Str("endpoint", settings.APIEndpoint).Str("bucket", settings.BucketName).Msg("object storage enabled")

	return &s3Impl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}
