package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ClientMinio is the subset of the minio client used by the blob store,
// kept as an interface so tests can substitute a mock.
type ClientMinio interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (info minio.UploadInfo, err error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// MinioS3Client is the S3-backed BlobStore. Selected with UPLOADS_DRIVER=s3.
type MinioS3Client struct {
	endpoint   string
	useSSL     bool
	bucketName string
	client     ClientMinio
}

const (
	defaultContentType = "application/octet-stream"
	objectPrefix       = "images"
)

// NewMinioS3Client creates a new MinioS3Client instance.
func NewMinioS3Client(endpoint, accessKeyID, secretAccessKey, bucketName string, useSSL bool) (*MinioS3Client, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Minio S3 client: %w", err)
	}

	return &MinioS3Client{
		endpoint:   endpoint,
		useSSL:     useSSL,
		bucketName: bucketName,
		client:     minioClient,
	}, nil
}

func (s3 *MinioS3Client) baseURL() string {
	scheme := "http"
	if s3.useSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s3.endpoint, s3.bucketName, objectPrefix)
}

// Save uploads a blob to the bucket and returns its derived URL.
func (s3 *MinioS3Client) Save(filename string, object io.Reader, size int64) (string, error) {
	objectName := fmt.Sprintf("%s/%s", objectPrefix, filename)
	_, err := s3.client.PutObject(context.Background(),
		s3.bucketName,
		objectName,
		object,
		size,
		minio.PutObjectOptions{ContentType: defaultContentType})
	if err != nil {
		return "", fmt.Errorf("can not upload blob to s3: %w", err)
	}
	return fmt.Sprintf("%s/%s", s3.baseURL(), filename), nil
}

func (s3 *MinioS3Client) Delete(url string) error {
	if !s3.Owns(url) {
		return nil
	}
	objectName := fmt.Sprintf("%s/%s", objectPrefix, url[strings.LastIndex(url, "/")+1:])
	if err := s3.client.RemoveObject(context.Background(), s3.bucketName, objectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("can not remove blob from s3: %w", err)
	}
	return nil
}

func (s3 *MinioS3Client) Owns(url string) bool {
	return strings.HasPrefix(url, s3.baseURL()+"/")
}
