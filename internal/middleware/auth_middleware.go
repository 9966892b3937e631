package middleware

import (
	"context"
	"net/http"
	"strings"

	"estatehub/internal/utils"
	"estatehub/pkg/auth"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthRequired verifies the bearer token and stores the caller identity in
// both the gin context and the request context.
func AuthRequired(verifier auth.TokenVerifier, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			log.LogSecurityEvent("missing_token", "low", map[string]interface{}{
				"path":      c.FullPath(),
				"client_ip": c.ClientIP(),
			})
			utils.AbortWithError(c, http.StatusUnauthorized, utils.CodeNoToken, utils.ErrNoToken)
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.LogSecurityEvent("invalid_token", "medium", map[string]interface{}{
				"path":      c.FullPath(),
				"client_ip": c.ClientIP(),
				"error":     err.Error(),
			})
			utils.AbortWithError(c, http.StatusUnauthorized, utils.CodeInvalidToken, utils.ErrInvalidToken+": "+err.Error())
			return
		}

		c.Set(utils.ContextIdentity, identity)
		c.Set(utils.ContextUserEmail, identity.Email)
		c.Set(utils.ContextUserUID, identity.UID)

		ctx := auth.WithIdentity(c.Request.Context(), identity)
		ctx = context.WithValue(ctx, logger.UserEmailKey, identity.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// bearerToken returns the second space-separated part of the header, the way
// "Bearer <token>" is split.
func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
