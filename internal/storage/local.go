package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// LocalUploader 把对象写到本地磁盘的公开目录下，由 HTTP 层静态托管。
type LocalUploader struct {
	baseDir string
	baseURL string
}

// NewLocalUploader 创建基础目录（若缺失）并返回实例。
func NewLocalUploader(baseDir, publicBaseURL string) (*LocalUploader, error) {
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("upload base dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{
		baseDir: baseDir,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Upload 将对象写入磁盘并返回公开 URL。
// objectKey 形如 uploads/<name>，磁盘上只保留文件名部分。
func (u *LocalUploader) Upload(_ context.Context, objectKey string, reader io.Reader, _ int64, _ string) (string, error) {
	name := path.Base(objectKey)
	target := filepath.Join(u.baseDir, name)

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create file %q: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", fmt.Errorf("write file %q: %w", target, err)
	}

	return u.baseURL + "/uploads/" + name, nil
}

// BaseDir 返回静态托管所需的目录路径。
func (u *LocalUploader) BaseDir() string {
	return u.baseDir
}
