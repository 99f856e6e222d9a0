package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetLogo serves the decorative logo if one was loaded at startup.
func (h *Controller) GetLogo(c *gin.Context) {
	if !h.Logo.Present() {
		c.JSON(http.StatusNotFound, gin.H{"error": "Logo not available"})
		return
	}
	c.Data(http.StatusOK, h.Logo.ContentType, h.Logo.Data)
}
