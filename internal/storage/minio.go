package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"openflexSite/internal/config"
)

// MinIOUploader 将对象写入 S3 兼容存储，公开 URL 基于 public endpoint 拼接。
// 要求目标 Bucket 配置为公共可读（站点图片本就是公开资源）。
type MinIOUploader struct {
	client    *minio.Client
	bucket    string
	publicURL *url.URL
}

// NewMinIOUploader 根据配置初始化 MinIO 客户端，并确保目标 Bucket 存在。
func NewMinIOUploader(cfg config.MinIOConfig) (*MinIOUploader, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio client: %w", err)
	}

	publicURL, err := url.Parse(cfg.PublicEndpoint)
	if err != nil {
		return nil, fmt.Errorf("parse minio public endpoint: %w", err)
	}
	if publicURL.Host == "" {
		return nil, fmt.Errorf("invalid minio public endpoint, host missing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if !cfg.AutoCreateBucket {
			return nil, fmt.Errorf("bucket %q does not exist (auto create disabled)", cfg.Bucket)
		}
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{Region: cfg.Region}); err != nil {
			return nil, fmt.Errorf("make bucket %q: %w", cfg.Bucket, err)
		}
	}

	return &MinIOUploader{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: publicURL,
	}, nil
}

// Upload 写入对象并返回其永久公开 URL。
func (u *MinIOUploader) Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error) {
	opts := minio.PutObjectOptions{ContentType: contentType}
	if _, err := u.client.PutObject(ctx, u.bucket, objectKey, reader, size, opts); err != nil {
		return "", fmt.Errorf("put object %q: %w", objectKey, err)
	}
	return u.objectURL(objectKey), nil
}

func (u *MinIOUploader) objectURL(objectKey string) string {
	base := strings.TrimRight(u.publicURL.String(), "/")
	return base + "/" + u.bucket + "/" + objectKey
}
