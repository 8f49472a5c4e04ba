package middleware

import (
	"strings"
	"time"

	"agenda_backend/internal/apperrors"
	"agenda_backend/internal/auth"
	"agenda_backend/internal/logger"
	"agenda_backend/internal/repositories"
	"agenda_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the bearer token. A valid signature is not
// enough: the token's jti must still exist in access_tokens, which is
// how logout revokes tokens before they expire.
func AuthMiddleware(tokenRepo repositories.AccessTokenRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		if !ok {
			abortUnauthorized(c, apperrors.ErrUnauthorized)
			return
		}
		gormDB := db.(*gorm.DB)

		record, err := tokenRepo.FindByTokenID(gormDB, claims.ID)
		if err != nil || time.Now().After(record.ExpiresAt) {
			abortUnauthorized(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set("userID", claims.UserID)
		ctx := logger.WithUserID(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err *apperrors.AppError) {
	apperrors.HandleError(c, err)
	c.Abort()
}
