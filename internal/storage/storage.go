package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Uploader 是上传后端的统一接口：写入一个不可变对象并返回可公开访问的 URL。
// 后端由配置选择（MinIO 或本地磁盘），调用方不感知差异。
// 本服务从不删除已上传的对象，内容覆盖后留下的孤儿文件是预期行为。
type Uploader interface {
	Upload(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) (string, error)
}

// NewObjectKey 生成不会与并发上传冲突的存储键：
// 毫秒时间戳 + 随机后缀，保留原始扩展名。
func NewObjectKey(originalName string) string {
	ext := strings.ToLower(path.Ext(originalName))
	if ext == "" {
		ext = ".jpg"
	}
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("uploads/%d_%s%s", time.Now().UnixMilli(), suffix, ext)
}
