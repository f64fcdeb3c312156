package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"openflexSite/internal/content"
	"openflexSite/internal/database"
)

type clientCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl" binding:"required"`
	Order   *int   `json:"order"`
}

type clientUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl" binding:"required"`
	Order   int    `json:"order"`
}

type clientBatchItem struct {
	ID      uint   `json:"id" binding:"required"`
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoUrl" binding:"required"`
	Order   int    `json:"order"`
}

type clientBatchResult struct {
	ID     uint             `json:"id"`
	OK     bool             `json:"ok"`
	Client *database.Client `json:"client,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// ListClients 按 order 升序返回全部客户（同序按 ID 升序）。
func (h *ContentHandler) ListClients(c *gin.Context) {
	clients, err := h.store.ListClients(c.Request.Context())
	if err != nil {
		h.logger.Error("list clients", slog.String("error", err.Error()))
		Internal(c, "failed to fetch clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// CreateClient 新增客户。未指定 order 时默认排在末尾
// （取当前集合大小），保证追加不打乱既有顺序。
func (h *ContentHandler) CreateClient(c *gin.Context) {
	var req clientCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	client, err := h.store.CreateClient(c.Request.Context(), content.ClientInput{
		Name:    req.Name,
		LogoURL: req.LogoURL,
		Order:   req.Order,
	})
	if err != nil {
		h.logger.Error("create client", slog.String("error", err.Error()))
		Internal(c, "failed to create client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// UpdateClient 按 ID 更新一条客户记录。
func (h *ContentHandler) UpdateClient(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid client id")
		return
	}

	var req clientUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	client, err := h.store.UpdateClient(c.Request.Context(), id, req.Name, req.LogoURL, req.Order)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "client not found")
			return
		}
		h.logger.Error("update client", slog.String("error", err.Error()))
		Internal(c, "failed to update client")
		return
	}
	c.JSON(http.StatusOK, client)
}

// DeleteClient 按 ID 删除一条客户记录。
func (h *ContentHandler) DeleteClient(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid client id")
		return
	}

	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "client not found")
			return
		}
		h.logger.Error("delete client", slog.String("error", err.Error()))
		Internal(c, "failed to delete client")
		return
	}
	Message(c, "client deleted")
}

// BatchUpdateClients 并发保存多条客户记录并逐项报告结果。
// 全部成功返回 200，部分失败返回 207；已成功的行不回滚。
func (h *ContentHandler) BatchUpdateClients(c *gin.Context) {
	var items []clientBatchItem
	if err := c.ShouldBindJSON(&items); err != nil {
		BadRequest(c, err.Error())
		return
	}

	updates := make([]content.ClientUpdate, 0, len(items))
	for _, item := range items {
		updates = append(updates, content.ClientUpdate{
			ID:      item.ID,
			Name:    item.Name,
			LogoURL: item.LogoURL,
			Order:   item.Order,
		})
	}

	results := h.store.UpdateClientsBatch(c.Request.Context(), updates)

	out := make([]clientBatchResult, 0, len(results))
	failed := 0
	for _, r := range results {
		item := clientBatchResult{ID: r.ID, OK: r.Err == nil, Client: r.Client}
		if r.Err != nil {
			failed++
			if errors.Is(r.Err, gorm.ErrRecordNotFound) {
				item.Error = "client not found"
			} else {
				h.logger.Error("batch update client",
					slog.Uint64("id", uint64(r.ID)),
					slog.String("error", r.Err.Error()),
				)
				item.Error = "failed to update client"
			}
		}
		out = append(out, item)
	}

	status := http.StatusOK
	if failed > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, gin.H{"results": out, "failed": failed})
}
