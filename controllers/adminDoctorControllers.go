package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cmu-health/models"
)

func (h *Controller) AvailabilityOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": models.AvailabilityStatuses})
}

func (h *Controller) UpdateAvailability(c *gin.Context) {
	var form models.AvailabilityForm
	if !h.bindJSON(c, &form) {
		return
	}

	update, err := h.Admin.SetAvailability(form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordAvailabilityUpdate(update.Availability)

	c.JSON(http.StatusOK, gin.H{"message": update.Message, "data": update})
}
