package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"openflexSite/internal/content"
)

type faqRequest struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

// ListFAQs 按创建顺序（ID 升序）返回全部 FAQ。
func (h *ContentHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.store.ListFAQs(c.Request.Context())
	if err != nil {
		h.logger.Error("list faqs", slog.String("error", err.Error()))
		Internal(c, "failed to fetch FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}

// CreateFAQ 新增一条 FAQ。
func (h *ContentHandler) CreateFAQ(c *gin.Context) {
	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	faq, err := h.store.CreateFAQ(c.Request.Context(), content.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		h.logger.Error("create faq", slog.String("error", err.Error()))
		Internal(c, "failed to create FAQ")
		return
	}
	c.JSON(http.StatusOK, faq)
}

// UpdateFAQ 按 ID 更新一条 FAQ。
func (h *ContentHandler) UpdateFAQ(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid faq id")
		return
	}

	var req faqRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	faq, err := h.store.UpdateFAQ(c.Request.Context(), id, content.FAQInput{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "faq not found")
			return
		}
		h.logger.Error("update faq", slog.String("error", err.Error()))
		Internal(c, "failed to update FAQ")
		return
	}
	c.JSON(http.StatusOK, faq)
}

// DeleteFAQ 按 ID 删除一条 FAQ，其余行的 ID 不变。
func (h *ContentHandler) DeleteFAQ(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		BadRequest(c, "invalid faq id")
		return
	}

	if err := h.store.DeleteFAQ(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "faq not found")
			return
		}
		h.logger.Error("delete faq", slog.String("error", err.Error()))
		Internal(c, "failed to delete FAQ")
		return
	}
	Message(c, "faq deleted")
}
