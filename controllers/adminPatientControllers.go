package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cmu-health/models"
)

// ViewPatientHistory returns the records and the text the history box shows.
func (h *Controller) ViewPatientHistory(c *gin.Context) {
	records, text := h.Admin.PatientHistory()
	c.JSON(http.StatusOK, gin.H{"data": records, "text": text})
}

// UpdatePatientHistory replaces the whole history from the box's text.
func (h *Controller) UpdatePatientHistory(c *gin.Context) {
	var form models.PatientHistoryForm
	if !h.bindJSON(c, &form) {
		return
	}

	result := h.Admin.ReplacePatientHistory(form.Text)
	h.Metrics.RecordDroppedHistoryLines(len(result.Dropped))

	c.JSON(http.StatusOK, gin.H{
		"message": "Patient history updated successfully.",
		"data":    result,
	})
}
