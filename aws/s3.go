package aws

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/viper"
)

// Upload stores an object under key and leaves failure handling to the
// caller. Nothing is retried here.
func (s *S3Client) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) error {
	_, err := s.C.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        s.Bucket,
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object to S3, %w", err)
	}

	return nil
}

func (s *S3Client) Delete(ctx context.Context, key string) error {
	_, err := s.C.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: s.Bucket,
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3, %w", err)
	}

	return nil
}

// SignedUploadSlot returns a presigned PUT URL for key so the admin
// frontend can push large files straight to the bucket.
func (s *S3Client) SignedUploadSlot(ctx context.Context, key, contentType string) (string, error) {
	req, err := s.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      s.Bucket,
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(viper.GetDuration("s3.sign_expiry")))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL, %w", err)
	}

	return req.URL, nil
}
