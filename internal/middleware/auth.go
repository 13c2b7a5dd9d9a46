package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/taskhub/taskhub-api/internal/auth"
)

const contextKeyUserID = "user_id"

// RequireAuth validates the bearer token and stores the authenticated user id
// in the request context.
func RequireAuth(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, "missing Authorization header")
			return
		}

		scheme, token, found := strings.Cut(header, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") {
			unauthorized(c, "invalid Authorization header format")
			return
		}

		claims, err := tokens.Parse(token)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}

		sub, _ := claims["sub"].(string)
		userID, err := uuid.Parse(sub)
		if err != nil {
			unauthorized(c, "invalid token subject")
			return
		}

		c.Set(contextKeyUserID, userID)
		c.Next()
	}
}

// UserID returns the authenticated user id from the request context.
func UserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(contextKeyUserID)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(401, gin.H{
		"code":    401,
		"status":  "401 Unauthorized",
		"message": message,
	})
}
