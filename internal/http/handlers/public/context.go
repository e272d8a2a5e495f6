package public

import (
	handlershared "github.com/subhe-sadik/shop-api/internal/http/handlers/shared"
	"github.com/subhe-sadik/shop-api/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// cartKey reads the session key set by the cart middleware.
func cartKey(c *gin.Context) (string, bool) {
	value, exists := c.Get("cart_key")
	if !exists {
		respondError(c, response.CodeBadRequest, "missing cart key", nil)
		return "", false
	}
	key, ok := value.(string)
	if !ok || key == "" {
		respondError(c, response.CodeBadRequest, "missing cart key", nil)
		return "", false
	}
	return key, true
}
