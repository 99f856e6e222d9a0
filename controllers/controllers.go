package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"cmu-health/assets"
	"cmu-health/authentication"
	"cmu-health/monitoring"
	"cmu-health/services"
	"cmu-health/validation"
)

var validate = validator.New()

// Controller carries everything the screens need. It is built once in main
// and shared by every route.
type Controller struct {
	Booking     *services.BookingService
	Admin       *services.AdminService
	AdminAuth   *authentication.AdminAuth
	PatientAuth *authentication.PatientAuth
	Metrics     *monitoring.Metrics
	Log         logrus.FieldLogger

	// Mailer is nil when SMTP is not configured.
	Mailer Mailer
	Logo   assets.Logo
}

// respondError turns a service error into the message the user sees.
func (h *Controller) respondError(c *gin.Context, err error) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		h.Metrics.RecordValidationFailure(verr.Field)
		c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "field": verr.Field})
	case errors.Is(err, services.ErrMissingSelection):
		h.Metrics.RecordValidationFailure("selection")
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields must be selected."})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials."})
	default:
		h.Log.WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// bindJSON decodes the request body into form. Decoder details are logged,
// never echoed back.
func (h *Controller) bindJSON(c *gin.Context, form interface{}) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		h.Log.WithError(err).WithField("path", c.FullPath()).Warn("invalid request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return false
	}
	return true
}
