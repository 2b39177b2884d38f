package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(v), nil
}
