package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// queryFloat parses a float query parameter, reporting whether it was
// present and valid.
func queryFloat(c *gin.Context, key string) (float64, bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
