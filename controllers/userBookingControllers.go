package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"cmu-health/models"
)

func (h *Controller) GetDepartments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Booking.Departments()})
}

// GetDoctorsByDepartment answers with an empty list for unknown departments.
func (h *Controller) GetDoctorsByDepartment(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Booking.ListDoctors(c.Param("department"))})
}

func (h *Controller) GetSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.Booking.Slots()})
}

func (h *Controller) BookAppointment(c *gin.Context) {
	var form models.BookingForm
	if !h.bindJSON(c, &form) {
		return
	}

	conf, err := h.Booking.Book(form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordBooking(conf.Department)

	c.JSON(http.StatusOK, gin.H{
		"message":    conf.Message,
		"data":       conf,
		"email_sent": h.mailConfirmation(form.PatientEmail, conf),
	})
}

// BookAppointmentSlip books and answers with the PDF confirmation slip.
func (h *Controller) BookAppointmentSlip(c *gin.Context) {
	var form models.BookingForm
	if !h.bindJSON(c, &form) {
		return
	}

	conf, err := h.Booking.Book(form)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordBooking(conf.Department)

	slip, err := h.Booking.Slip(conf)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="appointment-%s.pdf"`, conf.ID))
	c.Data(http.StatusOK, "application/pdf", slip)
}

// mailConfirmation sends the slip when an address was given and SMTP is set
// up. A failed send does not undo the booking.
func (h *Controller) mailConfirmation(email string, conf models.Confirmation) bool {
	if email == "" || h.Mailer == nil {
		return false
	}

	log := h.Log.WithField("confirmation_id", conf.ID)
	slip, err := h.Booking.Slip(conf)
	if err != nil {
		log.WithError(err).Warn("could not render confirmation slip")
		return false
	}
	if err := h.Mailer.Send(email, "Appointment confirmation", conf.Message, "appointment.pdf", slip); err != nil {
		log.WithError(err).Warn("could not e-mail confirmation")
		return false
	}
	return true
}

func (h *Controller) GetPatientHistory(c *gin.Context) {
	rec, ok := h.Booking.PatientHistory(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "No history found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": rec})
}
