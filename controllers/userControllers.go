package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cmu-health/authentication"
	"cmu-health/models"
	"cmu-health/validation"
)

// PatientSignup checks the signup form. Nothing is stored; a valid form is
// simply acknowledged.
func (h *Controller) PatientSignup(c *gin.Context) {
	var form models.SignupForm
	if !h.bindJSON(c, &form) {
		return
	}

	if err := validation.ValidateSignup(form.Email, form.Password, form.Phone); err != nil {
		h.respondError(c, err)
		return
	}

	h.Log.WithField("email", form.Email).Info("patient registered")
	c.JSON(http.StatusOK, gin.H{"message": "Registration successful!"})
}

// PatientLogin opens the appointment screen. The demo accepts any non-empty
// username and password.
func (h *Controller) PatientLogin(c *gin.Context) {
	var form models.LoginForm
	if !h.bindJSON(c, &form) {
		return
	}
	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required."})
		return
	}

	token, err := h.PatientAuth.GenerateToken(form.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func (h *Controller) PatientLogout(c *gin.Context) {
	claims, ok := c.Get(authentication.PatientClaimsKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Patient not authenticated"})
		return
	}
	if err := h.PatientAuth.Revoke(c.Request.Context(), claims.(*models.PatientClaims)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "You are successfully logged out"})
}
