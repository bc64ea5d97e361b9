package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the root probe.
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "server started"})
}

// paramID parses a numeric path parameter; on failure it writes the 400 and
// reports false.
func paramID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "invalid " + name,
		})
		return 0, false
	}
	return uint(id), true
}

// queryLimit reads an optional ?limit= value; 0 means no limit.
func queryLimit(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
