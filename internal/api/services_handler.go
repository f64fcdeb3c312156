package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"openflexSite/internal/content"
)

type serviceRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Features    string `json:"features"`
	ImageURL    string `json:"imageUrl"`
}

func (r serviceRequest) input() content.ServiceInput {
	return content.ServiceInput{
		Title:       r.Title,
		Description: r.Description,
		Features:    r.Features,
		ImageURL:    r.ImageURL,
	}
}

// ListServices 按插入顺序返回全部服务。
func (h *ContentHandler) ListServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		h.logger.Error("list services", slog.String("error", err.Error()))
		Internal(c, "failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService 新增一条服务。
func (h *ContentHandler) CreateService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	service, err := h.store.CreateService(c.Request.Context(), req.input())
	if err != nil {
		h.logger.Error("create service", slog.String("error", err.Error()))
		Internal(c, "failed to create service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// UpdateService 按 ID 更新一条服务。
func (h *ContentHandler) UpdateService(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid service id")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	service, err := h.store.UpdateService(c.Request.Context(), id, req.input())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "service not found")
			return
		}
		h.logger.Error("update service", slog.String("error", err.Error()))
		Internal(c, "failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService 按 ID 删除一条服务。
func (h *ContentHandler) DeleteService(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid service id")
		return
	}

	if err := h.store.DeleteService(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "service not found")
			return
		}
		h.logger.Error("delete service", slog.String("error", err.Error()))
		Internal(c, "failed to delete service")
		return
	}
	Message(c, "service deleted")
}

// DeleteAllServices 清空服务表。配合逐条 POST 使用时存在部分失败
// 窗口，整体替换请改用 ReplaceServices。
func (h *ContentHandler) DeleteAllServices(c *gin.Context) {
	if err := h.store.DeleteAllServices(c.Request.Context()); err != nil {
		h.logger.Error("delete all services", slog.String("error", err.Error()))
		Internal(c, "failed to delete services")
		return
	}
	Message(c, "all services deleted")
}

// ReplaceServices 在单个事务里整体替换服务集合，
// 避免「先清空再逐条创建」留下的部分失败窗口。
func (h *ContentHandler) ReplaceServices(c *gin.Context) {
	var reqs []serviceRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		BadRequest(c, err.Error())
		return
	}

	inputs := make([]content.ServiceInput, 0, len(reqs))
	for _, r := range reqs {
		inputs = append(inputs, r.input())
	}

	services, err := h.store.ReplaceServices(c.Request.Context(), inputs)
	if err != nil {
		h.logger.Error("replace services", slog.String("error", err.Error()))
		Internal(c, "failed to replace services")
		return
	}
	c.JSON(http.StatusOK, services)
}
