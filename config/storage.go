package config

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"

	"swiftinvoice-backend/utils"
)

// UploadLogo stores an uploaded logo image in the configured bucket and
// returns its public URL. Returns an empty URL without error when no bucket
// is configured, so invoice creation keeps working in local setups.
func UploadLogo(data []byte, filename, contentType string) (string, error) {
	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		utils.Log.Warnw("logo upload skipped, S3_BUCKET not configured", "filename", filename)
		return "", nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(os.Getenv("AWS_REGION")),
	})
	if err != nil {
		return "", fmt.Errorf("failed to create storage session: %w", err)
	}

	key := fmt.Sprintf("logos/%d-%s", time.Now().UnixMilli(), filename)

	uploader := s3manager.NewUploader(sess)
	_, err = uploader.Upload(&s3manager.UploadInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, key), nil
}
