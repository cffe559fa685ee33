package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"auction-scheduler/internal/handler/httperr"
	"auction-scheduler/internal/pkg/errs"
	"auction-scheduler/internal/usecase"

	"github.com/gin-gonic/gin"
)

var errMissingToken = errs.New("access token required")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxOperatorKey = "operator"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireOperator accepts "Authorization: Bearer <token>" carrying an operator token.
func (m *AuthMiddleware) RequireOperator() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errMissingToken, httperr.CodeUnauthorized, "Access token required", nil)
			return
		}

		operator, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, httperr.CodeUnauthorized, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxOperatorKey, operator)
		c.Set("jwt_claims", map[string]any{
			"operator": operator,
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetOperator(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxOperatorKey)
	if !exists {
		return "", false
	}
	operator, ok := v.(string)
	return operator, ok
}
