package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cmu-health/authentication"
	"cmu-health/models"
	"cmu-health/services"
)

// AdminLogin hands out an admin token only for the configured pair.
func (h *Controller) AdminLogin(c *gin.Context) {
	var form models.AdminLoginForm
	if !h.bindJSON(c, &form) {
		return
	}
	if err := validate.Struct(form); err != nil {
		h.Metrics.RecordAdminLogin(false)
		h.respondError(c, services.ErrInvalidCredentials)
		return
	}

	if err := h.Admin.Login(form.Username, form.Password); err != nil {
		h.Metrics.RecordAdminLogin(false)
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordAdminLogin(true)

	token, err := h.AdminAuth.GenerateToken(form.Username)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "token": token})
}

func (h *Controller) AdminLogout(c *gin.Context) {
	claims, ok := c.Get(authentication.AdminClaimsKey)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin not authenticated"})
		return
	}
	if err := h.AdminAuth.Revoke(c.Request.Context(), claims.(*models.AdminClaims)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}
