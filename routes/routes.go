package routes

import (
	"github.com/gin-gonic/gin"

	"cmu-health/controllers"
	"cmu-health/monitoring"
)

// UserRoutes wires the screens of the clinic app onto a gin engine.
func UserRoutes(h *controllers.Controller) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), monitoring.RequestLogger(h.Log, h.Metrics))

	r.GET("/health", h.Health)
	r.GET("/metrics", gin.WrapH(h.Metrics.Handler()))
	r.GET("/logo", h.GetLogo)

	//user routes
	r.POST("/users/signup", h.PatientSignup)
	r.POST("/users/login", h.PatientLogin)

	user := r.Group("/user")
	user.Use(h.PatientAuth.Middleware())
	{
		user.GET("/departments", h.GetDepartments)
		user.GET("/departments/:department/doctors", h.GetDoctorsByDepartment)
		user.GET("/slots", h.GetSlots)
		user.POST("/book/appointment", h.BookAppointment)
		user.POST("/book/appointment/slip", h.BookAppointmentSlip)
		user.GET("/patient/history/:name", h.GetPatientHistory)
		user.POST("/logout", h.PatientLogout)
	}

	//Admin routes
	r.POST("/admin/login", h.AdminLogin)

	admin := r.Group("/admin")
	admin.Use(h.AdminAuth.Middleware())
	{
		admin.POST("/logout", h.AdminLogout)
		admin.GET("/doctors/availability/options", h.AvailabilityOptions)
		admin.POST("/update/availability", h.UpdateAvailability)
		admin.GET("/patient/history", h.ViewPatientHistory)
		admin.PUT("/patient/history", h.UpdatePatientHistory)
	}

	return r
}
