package v1

import (
	"github.com/fireduino/fireduino-api/internal/session"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Public routes: login, registration and its helpers
	api.POST("/admin/login", h.adminLogin)
	api.POST("/mobile/login", h.mobileLogin)
	api.POST("/mobile/user", h.registerUser)
	api.POST("/mobile/validateEmail", h.validateEmail)
	api.POST("/mobile/verify", h.verifyInviteKey)
	api.GET("/mobile/establishments", h.listEstablishmentsMobile)
	api.POST("/validate", h.validateToken)
	api.GET("/system/health", h.healthCheck)

	// Admin console routes
	admin := api.Group("/admin", session.AuthMiddleware(h.sessions, h.logger), session.RequireAdmin())
	{
		admin.POST("/department", h.createDepartment)
		admin.PUT("/department/:id", h.updateDepartment)
		admin.GET("/department/:id", h.getDepartment)
		admin.GET("/departments", h.listDepartments)

		admin.POST("/establishment", h.createEstablishment)
		admin.PUT("/establishment/:id", h.updateEstablishment)
		admin.GET("/establishment/:id", h.getEstablishment)
		admin.GET("/establishments", h.listEstablishmentsAdmin)

		admin.GET("/invitekey", h.generateInviteKey)
		admin.GET("/config", h.getConfig)
	}

	// Mobile routes for authenticated establishment users
	mobile := api.Group("/mobile", session.AuthMiddleware(h.sessions, h.logger))
	{
		mobile.POST("/fireduino", h.registerFireduino)
		mobile.GET("/fireduino/:mac", h.getFireduino)
		mobile.GET("/fireduinos", h.listFireduinos)
		mobile.GET("/departments", h.listDepartmentsMobile)

		mobile.GET("/incidents", h.listIncidents)
		mobile.GET("/incident/:id", h.getIncident)
		mobile.GET("/dashboard", h.getDashboard)

		mobile.POST("/report", h.createReport)
		mobile.PUT("/report", h.editReport)
		mobile.GET("/reports", h.listReports)
		mobile.GET("/sms", h.listSMSHistory)

		mobile.POST("/access", h.recordDeviceAccess)
		mobile.GET("/accessLogs", h.listAccessLogs)
		mobile.GET("/loginHistory", h.listLoginHistory)
		mobile.GET("/editHistory", h.listReportEdits)
	}
}
