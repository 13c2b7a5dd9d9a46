package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/taskhub/taskhub-api/internal/database"
)

var errRequestFailed = errors.New("request failed")

// Transaction opens the per-request transaction scope: the handler chain runs
// inside one storage transaction, committed on success and rolled back when
// the request ends in a handler error or a server-side failure status.
func Transaction(tx *database.TxManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = tx.Do(c.Request.Context(), func(ctx context.Context) error {
			c.Request = c.Request.WithContext(ctx)
			c.Next()
			if len(c.Errors) > 0 || c.Writer.Status() >= 500 {
				return errRequestFailed
			}
			return nil
		})
	}
}
