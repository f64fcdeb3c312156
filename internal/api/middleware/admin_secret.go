package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminSecretMiddleware 用共享密钥保护后台接口。
// 这只是一个静态口令网关，不构成认证体系；真正的会话/令牌
// 校验属于外部协作方的职责。
func AdminSecretMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.TrimSpace(secret) == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "admin api secret is not configured"})
			c.Abort()
			return
		}
		// 密钥必须走 Header，避免 query 泄露到浏览器/日志。
		token := strings.TrimSpace(c.GetHeader("X-Admin-Secret"))
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
