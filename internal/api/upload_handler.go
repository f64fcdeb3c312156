package api

import (
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/dutchcoders/go-clamd"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"openflexSite/internal/storage"
)

// 上传尺寸上限固定 10 MiB，超限直接拒绝，不触碰存储。
const maxUploadBytes = 10 << 20

// UploadHandler 接收单个图片文件，校验后写入存储并返回公开 URL。
// 服务本身不记录 URL 与内容行的对应关系，也从不回收孤儿文件。
type UploadHandler struct {
	Uploader    storage.Uploader
	Logger      *slog.Logger
	RedisClient *redis.Client
	ClamdAddr   string
	MaxPerDay   int
}

// NewUploadHandler 构造 UploadHandler。
func NewUploadHandler(uploader storage.Uploader, logger *slog.Logger, redisClient *redis.Client, clamdAddr string, maxPerDay int) *UploadHandler {
	return &UploadHandler{
		Uploader:    uploader,
		Logger:      logger,
		RedisClient: redisClient,
		ClamdAddr:   clamdAddr,
		MaxPerDay:   maxPerDay,
	}
}

// Upload 处理 multipart 表单里的 file 字段。
// 校验顺序：文件存在 → 尺寸 → MIME → 每日限额 →（可选）病毒扫描 → 存储。
func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, "no file provided")
		return
	}

	if file.Size > maxUploadBytes {
		BadRequest(c, "file too large (max 10 MiB)")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		BadRequest(c, "only image uploads are allowed")
		return
	}

	ctx := c.Request.Context()

	if h.RedisClient != nil && h.MaxPerDay > 0 {
		key := "uploads:" + time.Now().UTC().Format("2006-01-02")
		count, err := incrWithTTL(ctx, h.RedisClient, key, 24*time.Hour)
		if err != nil {
			// 限流计数失败不阻断上传，只记日志。
			h.Logger.Warn("upload rate counter", slog.String("error", err.Error()))
		} else if count > int64(h.MaxPerDay) {
			TooManyRequests(c, "daily upload limit reached")
			return
		}
	}

	if h.ClamdAddr != "" {
		if ok := h.scanFile(c, file); !ok {
			return
		}
	}

	reader, err := file.Open()
	if err != nil {
		h.Logger.Error("open upload", slog.String("error", err.Error()))
		Internal(c, "failed to read file")
		return
	}
	defer reader.Close()

	objectKey := storage.NewObjectKey(file.Filename)
	url, err := h.Uploader.Upload(ctx, objectKey, reader, file.Size, contentType)
	if err != nil {
		h.Logger.Error("store upload",
			slog.String("objectKey", objectKey),
			slog.String("error", err.Error()),
		)
		Internal(c, "failed to store file")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// scanFile 通过 clamd 扫描上传内容；返回 false 表示响应已写出。
func (h *UploadHandler) scanFile(c *gin.Context, file *multipart.FileHeader) bool {
	reader, err := file.Open()
	if err != nil {
		Internal(c, "failed to open file")
		return false
	}

	clamdClient := clamd.NewClamd(h.ClamdAddr)
	abortChan := make(chan bool)
	scanChan, err := clamdClient.ScanStream(reader, abortChan)
	reader.Close()
	if err != nil {
		h.Logger.Error("scan file", slog.String("error", err.Error()))
		Internal(c, "failed to scan file")
		return false
	}
	defer close(abortChan)

	for result := range scanChan {
		if result.Status != clamd.RES_OK {
			BadRequest(c, "malicious file detected")
			return false
		}
	}
	return true
}
