package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"openflexSite/internal/content"
)

// PublicHandler 是面向公开站点的只读投影。
// 单例未配置返回 404（区别于 500 的后端故障），集合为空返回空数组，
// 渲染端据此决定回落到硬编码文案还是跳过整个区块。
type PublicHandler struct {
	store  *content.Store
	logger *slog.Logger
}

// NewPublicHandler 构造 PublicHandler。
func NewPublicHandler(store *content.Store, logger *slog.Logger) *PublicHandler {
	return &PublicHandler{store: store, logger: logger}
}

// GetHero 返回首屏内容；未配置时 404。
func (h *PublicHandler) GetHero(c *gin.Context) {
	hero, err := h.store.Hero(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "hero content not found")
			return
		}
		h.logger.Error("fetch hero", slog.String("error", err.Error()))
		Internal(c, "failed to fetch hero content")
		return
	}
	c.JSON(http.StatusOK, hero)
}

// GetAbout 返回关于内容；未配置时 404。
func (h *PublicHandler) GetAbout(c *gin.Context) {
	about, err := h.store.About(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "about content not found")
			return
		}
		h.logger.Error("fetch about", slog.String("error", err.Error()))
		Internal(c, "failed to fetch about content")
		return
	}
	c.JSON(http.StatusOK, about)
}

// GetContact 返回联系方式；未配置时 404。
func (h *PublicHandler) GetContact(c *gin.Context) {
	contact, err := h.store.Contact(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c, "contact content not found")
			return
		}
		h.logger.Error("fetch contact", slog.String("error", err.Error()))
		Internal(c, "failed to fetch contact content")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// GetServices 返回全部服务，可能为空数组。
func (h *PublicHandler) GetServices(c *gin.Context) {
	services, err := h.store.ListServices(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch services", slog.String("error", err.Error()))
		Internal(c, "failed to fetch services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetClients 按 order 升序返回全部客户，可能为空数组。
func (h *PublicHandler) GetClients(c *gin.Context) {
	clients, err := h.store.ListClients(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch clients", slog.String("error", err.Error()))
		Internal(c, "failed to fetch clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// GetFAQs 按创建顺序返回全部 FAQ，可能为空数组。
func (h *PublicHandler) GetFAQs(c *gin.Context) {
	faqs, err := h.store.ListFAQs(c.Request.Context())
	if err != nil {
		h.logger.Error("fetch faqs", slog.String("error", err.Error()))
		Internal(c, "failed to fetch FAQs")
		return
	}
	c.JSON(http.StatusOK, faqs)
}
