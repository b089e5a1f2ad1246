package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "InnStay API is running"})
}

// NotFound answers unknown routes with the usual error body.
func NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "route_not_found", "Route not found: "+c.Request.Method+" "+c.Request.URL.Path)
}
