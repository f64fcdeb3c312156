package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"openflexSite/internal/content"
)

// ContentHandler 负责后台内容的 CRUD。写路径只有这里一个入口，
// 公开站点通过 PublicHandler 只读同一份数据。
type ContentHandler struct {
	store  *content.Store
	logger *slog.Logger
}

// NewContentHandler 构造 ContentHandler。
func NewContentHandler(store *content.Store, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{store: store, logger: logger}
}

var errInvalidID = errors.New("invalid id")

// idParam 解析路径中的 :id。
func idParam(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

type heroRequest struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"imageUrl"`
}

type aboutRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
}

type contactRequest struct {
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

// GetHero 返回当前首屏内容，未配置时返回 null。
func (h *ContentHandler) GetHero(c *gin.Context) {
	hero, err := h.store.Hero(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		h.logger.Error("fetch hero", slog.String("error", err.Error()))
		Internal(c, "failed to fetch hero data")
		return
	}
	c.JSON(http.StatusOK, hero)
}

// PutHero 整体保存首屏内容：有则更新，无则创建。
func (h *ContentHandler) PutHero(c *gin.Context) {
	var req heroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	hero, err := h.store.SaveHero(c.Request.Context(), content.HeroInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.logger.Error("save hero", slog.String("error", err.Error()))
		Internal(c, "failed to update hero data")
		return
	}
	c.JSON(http.StatusOK, hero)
}

// GetAbout 返回关于内容，未配置时返回 null。
func (h *ContentHandler) GetAbout(c *gin.Context) {
	about, err := h.store.About(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		h.logger.Error("fetch about", slog.String("error", err.Error()))
		Internal(c, "failed to fetch about data")
		return
	}
	c.JSON(http.StatusOK, about)
}

// PutAbout 整体保存关于内容，语义同 PutHero。
func (h *ContentHandler) PutAbout(c *gin.Context) {
	var req aboutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	about, err := h.store.SaveAbout(c.Request.Context(), content.AboutInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.logger.Error("save about", slog.String("error", err.Error()))
		Internal(c, "failed to update about data")
		return
	}
	c.JSON(http.StatusOK, about)
}

// GetContact 返回联系方式，未配置时返回 null。
func (h *ContentHandler) GetContact(c *gin.Context) {
	contact, err := h.store.Contact(c.Request.Context())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		h.logger.Error("fetch contact", slog.String("error", err.Error()))
		Internal(c, "failed to fetch contact data")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// PutContact 保存联系方式。email/phone 均必填；
// 校验失败时不触碰存储。行固定 upsert 到 ID=1。
func (h *ContentHandler) PutContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "email and phone are required")
		return
	}

	contact, err := h.store.SaveContact(c.Request.Context(), req.Email, req.Phone)
	if err != nil {
		h.logger.Error("save contact", slog.String("error", err.Error()))
		Internal(c, "failed to update contact data")
		return
	}
	c.JSON(http.StatusOK, contact)
}
