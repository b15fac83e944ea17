package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taskforge/internal/core/domain"
	"taskforge/internal/core/ports"
	"taskforge/pkg/apierrors"
)

const (
	UserIDHeader     = "X-User-Id"
	userIDContextKey = "user_id"
)

// RequireUser resolves the caller-supplied X-User-Id header against the user
// directory. A missing header or an unknown user aborts with 401; a header
// that is not a number aborts with 400.
func RequireUser(users ports.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader(UserIDHeader)
		if header == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang),
			)
			return
		}

		userID, err := strconv.ParseUint(header, 10, 64)
		if err != nil || userID == 0 {
			c.AbortWithStatusJSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidUserHeader, lang),
			)
			return
		}

		if _, err := users.Resolve(c.Request.Context(), userID); err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				c.AbortWithStatusJSON(
					http.StatusUnauthorized,
					apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgAuthRequired, lang),
				)
				return
			}

			zap.L().Error("failed to resolve user", zap.Uint64("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgAuthRequired, lang),
			)
			return
		}

		c.Set(userIDContextKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uint64 {
	if value, exists := c.Get(userIDContextKey); exists {
		if id, ok := value.(uint64); ok {
			return id
		}
	}
	return 0
}
