package s3_storage

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"localbuzz-feed-service/internal/config"
	"localbuzz-feed-service/internal/custom_errors"
	"localbuzz-feed-service/internal/logger"
	"localbuzz-feed-service/internal/model"
)

type S3Store struct {
	svc    *s3.S3
	bucket string
	urlTTL time.Duration
	log    *logger.Logger
}

func NewS3Store(cfg config.S3, log *logger.Logger) (*S3Store, error) {
	awsCfg := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return &S3Store{
		svc:    s3.New(sess),
		bucket: cfg.Bucket,
		urlTTL: time.Duration(cfg.URLTTLMinutes) * time.Minute,
		log:    log,
	}, nil
}

func (s *S3Store) GenerateUploadURL(ctx context.Context, contentType string) (*model.UploadTarget, error) {
	key := "post-images/" + uuid.NewString() + extForContentType(contentType)

	req, _ := s.svc.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	req.SetContext(ctx)

	uploadURL, err := req.Presign(s.urlTTL)
	if err != nil {
		s.log.Error("Failed to presign upload URL",
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, custom_errors.ErrExternalServiceError
	}

	return &model.UploadTarget{
		UploadURL: uploadURL,
		PublicURL: s.publicURL(key),
		Key:       key,
	}, nil
}

func (s *S3Store) publicURL(key string) string {
	region := aws.StringValue(s.svc.Config.Region)
	if endpoint := aws.StringValue(s.svc.Config.Endpoint); endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", endpoint, s.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, region, key)
}

func extForContentType(contentType string) string {
	exts, err := mime.ExtensionsByType(contentType)
	if err != nil || len(exts) == 0 {
		return ""
	}
	return exts[0]
}
