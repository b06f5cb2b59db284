package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// UploadResult is what the media gateway reports back after a
// successful upload.
type UploadResult struct {
	URL  string `json:"url"`
	Size int64  `json:"size"`
}

// Uploader forwards received files to S3-compatible object storage.
type Uploader struct {
	client   *s3.Client
	bucket   string
	region   string
	folder   string
	endpoint string
}

// NewUploader creates an uploader for the given bucket. A non-empty
// endpoint switches to path-style addressing for S3-compatible hosts.
func NewUploader(ctx context.Context, region, bucket, accessKey, secretKey, endpoint, folder string) (*Uploader, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load storage config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &Uploader{
		client:   client,
		bucket:   bucket,
		region:   region,
		folder:   folder,
		endpoint: endpoint,
	}, nil
}

// Upload stores the file under the configured folder and returns its
// public URL and byte size. No retry; errors propagate to the caller.
func (u *Uploader) Upload(ctx context.Context, file multipart.File, header *multipart.FileHeader) (*UploadResult, error) {
	key := fmt.Sprintf("%s/%s%s", u.folder, uuid.New().String(), filepath.Ext(header.Filename))

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(header.Size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	return &UploadResult{
		URL:  u.objectURL(key),
		Size: header.Size,
	}, nil
}

func (u *Uploader) objectURL(key string) string {
	if u.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", u.endpoint, u.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key)
}
